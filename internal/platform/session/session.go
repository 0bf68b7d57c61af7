package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// Cache is a small file-backed key-value store. The authenticated user is
// kept under a fixed key so a restarted process can restore the session
// without re-authentication. This is a convenience cache, not a credential
// store.
type Cache struct {
	mu   sync.Mutex
	path string
}

var ErrNotFound = errors.New("session key not found")

func New(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) Put(key string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.read()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	data[key] = raw
	return c.write(data)
}

func (c *Cache) Get(key string, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.read()
	if err != nil {
		return err
	}
	raw, ok := data[key]
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (c *Cache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, err := c.read()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return c.write(data)
}

func (c *Cache) read() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]json.RawMessage{}, nil
		}
		return nil, err
	}
	data := map[string]json.RawMessage{}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt cache file is discarded rather than wedging login.
		return map[string]json.RawMessage{}, nil
	}
	return data, nil
}

func (c *Cache) write(data map[string]json.RawMessage) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	tmp := c.path + ".tmp"
	if dir := filepath.Dir(c.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, c.path)
}
