package main

import "ams/internal/app/server"

func main() {
	server.Run()
}
