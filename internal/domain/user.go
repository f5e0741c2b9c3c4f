package domain

import "time"

type Role string

const (
	RoleTechnician Role = "TECHNICIAN"
	RoleManager    Role = "MANAGER"
	RoleManagerIT  Role = "MANAGER_IT"
	RoleAdmin      Role = "ADMIN"
)

// ManagerRoles are the roles allowed to edit rosters and profiles.
var ManagerRoles = []Role{RoleManager, RoleManagerIT, RoleAdmin}

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	BranchID     string    `json:"branchId"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
