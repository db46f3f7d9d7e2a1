package domain

import "time"

const (
	RoleAdmin   = "Admin"
	RoleDefault = "Default"
)

type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
