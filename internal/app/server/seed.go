package server

import (
	"time"

	"ams/internal/domain/appraisal"
	"ams/internal/domain/auth"
	"ams/internal/domain/directory"
	"ams/internal/platform/config"
)

type seedUser struct {
	id         string
	name       string
	role       string
	department string
	email      string
	joined     string
}

// The demo dataset: one Super Admin, three HR, three Managers, three Team
// Leads, six Employees, and three open April 2025 cycles.
var seedUsers = []seedUser{
	{"1", "Zian Chen", directory.RoleSuperAdmin, "Executive", "zian@corp.ai", "2018-05-20"},

	{"2", "Eswar HR", directory.RoleHR, "Human Resources", "eswar@corp.ai", "2021-03-15"},
	{"3", "Durai HR", directory.RoleHR, "Human Resources", "durai@corp.ai", "2021-06-10"},
	{"10", "Priya Sharma", directory.RoleHR, "Human Resources", "priya@corp.ai", "2022-09-01"},

	{"4", "Hari Manager", directory.RoleManager, "Engineering", "hari@corp.ai", "2019-11-20"},
	{"5", "Devjith Manager", directory.RoleManager, "Product", "devjith@corp.ai", "2020-05-12"},
	{"11", "Sarah Jenkins", directory.RoleManager, "Sales", "sarah@corp.ai", "2019-01-15"},

	{"6", "Harish TL", directory.RoleTeamLead, "Frontend", "harish@corp.ai", "2022-01-10"},
	{"12", "Marcus Aurelius", directory.RoleTeamLead, "Backend", "marcus@corp.ai", "2021-11-30"},
	{"13", "Elena Rodriguez", directory.RoleTeamLead, "Design", "elena@corp.ai", "2023-02-14"},

	{"7", "Alice Smith", directory.RoleEmployee, "Frontend", "alice@corp.ai", "2024-04-20"},
	{"8", "Bob Johnson", directory.RoleEmployee, "Backend", "bob@corp.ai", "2023-04-15"},
	{"9", "Charlie Brown", directory.RoleEmployee, "Design", "charlie@corp.ai", "2024-05-01"},
	{"14", "David Lee", directory.RoleEmployee, "Mobile", "david@corp.ai", "2023-08-22"},
	{"15", "Fiona Gallagher", directory.RoleEmployee, "DevOps", "fiona@corp.ai", "2022-12-05"},
	{"16", "George Miller", directory.RoleEmployee, "Frontend", "george@corp.ai", "2024-01-10"},
}

var seedAppraisals = []appraisal.Appraisal{
	{ID: "a1", EmployeeID: "7", Month: "April", Year: 2025, Status: appraisal.StatusPendingAssignment, Ratings: []appraisal.AppraisalRating{}},
	{ID: "a2", EmployeeID: "8", Month: "April", Year: 2025, Status: appraisal.StatusPendingAssignment, Ratings: []appraisal.AppraisalRating{}},
	{ID: "a3", EmployeeID: "9", Month: "April", Year: 2025, Status: appraisal.StatusPendingAssignment, Ratings: []appraisal.AppraisalRating{}},
}

func seed(cfg config.Config, users *directory.Store, appraisals *appraisal.Store) error {
	hash, err := auth.HashPassword(cfg.DemoPassword)
	if err != nil {
		return err
	}

	for _, entry := range seedUsers {
		joined, err := time.Parse("2006-01-02", entry.joined)
		if err != nil {
			return err
		}
		user := directory.User{
			ID:          entry.id,
			Name:        entry.name,
			Role:        entry.role,
			Department:  entry.department,
			Email:       entry.email,
			JoiningDate: joined,
		}
		if err := users.Append(user, hash); err != nil {
			return err
		}
	}

	for _, record := range seedAppraisals {
		if err := appraisals.Append(record); err != nil {
			return err
		}
	}
	return nil
}
