package model

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Drafts are the write-side DTOs built from form input. Validation mirrors
// the backend's rules so obviously bad submissions never leave the client.

type ClientDraft struct {
	Name              string `json:"name"`
	Address           string `json:"address,omitempty"`
	ProjectsTotal     int    `json:"projectsTotal"`
	ProjectsCompleted int    `json:"projectsCompleted"`
}

func (d ClientDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	return nil
}

type ProjectDraft struct {
	ClientID   uuid.UUID `json:"clientId"`
	Name       string    `json:"name"`
	StartDate  Date      `json:"startDate"`
	PlannedEnd Date      `json:"plannedEndDate"`
	ActualEnd  *Date     `json:"actualEndDate,omitempty"`
	ManagerID  uuid.UUID `json:"managerId"`
}

func (d ProjectDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if d.ClientID == uuid.Nil {
		return errors.New("client is required")
	}
	if d.ManagerID == uuid.Nil {
		return errors.New("manager is required")
	}
	if d.PlannedEnd.Before(d.StartDate) {
		return errors.New("end date must be after start date")
	}
	return nil
}

type UserDraft struct {
	Name     string `json:"name"`
	Login    string `json:"login"`
	Password string `json:"password,omitempty"`
	Role     Role   `json:"role"`
}

// ValidateCreate requires a password; ValidateUpdate leaves it optional so
// edits keep the existing one when the field is left blank.
func (d UserDraft) ValidateCreate() error {
	if err := d.validateCommon(); err != nil {
		return err
	}
	if d.Password == "" {
		return errors.New("password is required")
	}
	if len(d.Password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}

func (d UserDraft) ValidateUpdate() error {
	if err := d.validateCommon(); err != nil {
		return err
	}
	if d.Password != "" && len(d.Password) < 4 {
		return errors.New("password must be at least 4 characters")
	}
	return nil
}

func (d UserDraft) validateCommon() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(d.Login) == "" {
		return errors.New("login is required")
	}
	return nil
}
