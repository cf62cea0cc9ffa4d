package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestClientDraftValidate(t *testing.T) {
	if err := (ClientDraft{Name: "Acme"}).Validate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}
	if err := (ClientDraft{Name: "   "}).Validate(); err == nil {
		t.Error("blank name accepted")
	}
}

func TestProjectDraftValidate(t *testing.T) {
	valid := ProjectDraft{
		Name:       "Harbor upgrade",
		ClientID:   uuid.New(),
		ManagerID:  uuid.New(),
		StartDate:  mustParse(t, "2026-01-10"),
		PlannedEnd: mustParse(t, "2026-03-01"),
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*ProjectDraft)
	}{
		{"blank name", func(d *ProjectDraft) { d.Name = "" }},
		{"missing client", func(d *ProjectDraft) { d.ClientID = uuid.Nil }},
		{"missing manager", func(d *ProjectDraft) { d.ManagerID = uuid.Nil }},
		{"end before start", func(d *ProjectDraft) { d.PlannedEnd = mustParse(t, "2026-01-01") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := valid
			tc.mutate(&d)
			if err := d.Validate(); err == nil {
				t.Error("invalid draft accepted")
			}
		})
	}

	// A single-day project is legal.
	sameDay := valid
	sameDay.PlannedEnd = sameDay.StartDate
	if err := sameDay.Validate(); err != nil {
		t.Errorf("same-day span rejected: %v", err)
	}
}

func TestUserDraftValidate(t *testing.T) {
	base := UserDraft{Name: "Sam", Login: "sam", Password: "hunter2"}
	if err := base.ValidateCreate(); err != nil {
		t.Errorf("valid draft rejected: %v", err)
	}

	noPass := base
	noPass.Password = ""
	if err := noPass.ValidateCreate(); err == nil {
		t.Error("create without password accepted")
	}
	if err := noPass.ValidateUpdate(); err != nil {
		t.Errorf("update may omit the password: %v", err)
	}

	short := base
	short.Password = "abc"
	if err := short.ValidateCreate(); err == nil {
		t.Error("short password accepted on create")
	}
	if err := short.ValidateUpdate(); err == nil {
		t.Error("short password accepted on update")
	}

	noLogin := base
	noLogin.Login = " "
	if err := noLogin.ValidateCreate(); err == nil {
		t.Error("blank login accepted")
	}
}
