// Package model holds the entities exchanged with the SWEeM backend and the
// pure date/status helpers shared by the timeline engine and the UI.
package model

import (
	"github.com/google/uuid"
)

// Role is the backend's user role enum (wire format: bare integer).
type Role int

const (
	RoleManager Role = 0
	RoleAdmin   Role = 1
)

func (r Role) String() string {
	if r == RoleAdmin {
		return "Admin"
	}
	return "Manager"
}

// Cycle advances to the next role, wrapping. Used by the role selector field.
func (r Role) Cycle() Role {
	if r == RoleManager {
		return RoleAdmin
	}
	return RoleManager
}

type Client struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	ProjectsTotal     int       `json:"projectsTotal"`
	ProjectsCompleted int       `json:"projectsCompleted"`
}

func (c Client) DisplayName() string {
	if c.Name == "" {
		return "Unnamed Client"
	}
	return c.Name
}

type Project struct {
	ID         uuid.UUID `json:"id"`
	ClientID   uuid.UUID `json:"clientId"`
	Name       string    `json:"name"`
	StartDate  Date      `json:"startDate"`
	PlannedEnd Date      `json:"plannedEndDate"`
	ActualEnd  *Date     `json:"actualEndDate"`
	ManagerID  uuid.UUID `json:"managerId"`
}

func (p Project) DisplayName() string {
	if p.Name == "" {
		return "Unnamed Project"
	}
	return p.Name
}

// EffectiveEnd is the actual end date when the project is finished, otherwise
// the planned end. Bar lengths and status classification both use it.
func (p Project) EffectiveEnd() Date {
	if p.ActualEnd != nil {
		return *p.ActualEnd
	}
	return p.PlannedEnd
}

// DurationDays is EffectiveEnd - StartDate in days. Negative only for invalid
// spans, which layout rejects.
func (p Project) DurationDays() int {
	return p.StartDate.DaysUntil(p.EffectiveEnd())
}

type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Login string    `json:"login"`
	Role  Role      `json:"role"`
}

func (u User) DisplayName() string {
	if u.Name == "" {
		return "Unnamed User"
	}
	return u.Name
}

// IsManager reports whether the user can be assigned to projects.
func (u User) IsManager() bool {
	return u.Role == RoleManager
}

// Page is the backend's paginated result wrapper.
type Page[T any] struct {
	Items       []T  `json:"items"`
	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalCount  int  `json:"totalCount"`
	TotalPages  int  `json:"totalPages"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}
