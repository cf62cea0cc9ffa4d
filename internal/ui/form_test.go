package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sweem/internal/model"
)

func testClients() []model.Client {
	return []model.Client{
		{ID: uuid.New(), Name: "Acme"},
		{ID: uuid.New(), Name: "Globex"},
	}
}

func testUsers() []model.User {
	return []model.User{
		{ID: uuid.New(), Name: "Sam", Login: "sam", Role: model.RoleManager},
		{ID: uuid.New(), Name: "Alex", Login: "alex", Role: model.RoleAdmin},
	}
}

func TestClientFormCreateAndSubmit(t *testing.T) {
	f := newClientForm(nil)
	if f.isEdit() {
		t.Error("create form reports edit mode")
	}
	if f.focused != 0 {
		t.Errorf("focused = %d, want the name field", f.focused)
	}

	// Submitting an empty name keeps the form open with a message.
	if f.validate() {
		t.Error("empty name validated")
	}
	if f.errMsg == "" {
		t.Error("no validation message")
	}

	for _, r := range "Acme" {
		f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if !f.validate() {
		t.Errorf("valid form rejected: %s", f.errMsg)
	}
	if d := f.clientDraft(); d.Name != "Acme" {
		t.Errorf("draft name = %q", d.Name)
	}
}

func TestClientFormEditPrefills(t *testing.T) {
	c := model.Client{ID: uuid.New(), Name: "Acme", Address: "Dock 4"}
	f := newClientForm(&c)
	if !f.isEdit() || f.editID != c.ID {
		t.Error("edit id not carried")
	}
	if f.textValue(0) != "Acme" || f.textValue(1) != "Dock 4" {
		t.Errorf("prefill = %q / %q", f.textValue(0), f.textValue(1))
	}
}

func TestProjectFormEditPrefills(t *testing.T) {
	clients, users := testClients(), testUsers()
	today := model.NewDate(2026, time.June, 1)
	p := model.Project{
		ID:         uuid.New(),
		Name:       "Harbor upgrade",
		ClientID:   clients[1].ID,
		ManagerID:  users[1].ID,
		StartDate:  model.NewDate(2026, time.May, 1),
		PlannedEnd: model.NewDate(2026, time.July, 1),
	}
	f := newProjectForm(&p, clients, users, today)

	if f.fields[1].selected != 1 {
		t.Errorf("client selector = %d, want 1", f.fields[1].selected)
	}
	if f.fields[2].selected != 1 {
		t.Errorf("manager selector = %d, want 1", f.fields[2].selected)
	}
	d := f.projectDraft()
	if d.ClientID != clients[1].ID || d.ManagerID != users[1].ID {
		t.Error("selector ids lost in draft")
	}
	if d.StartDate.String() != "2026-05-01" || d.PlannedEnd.String() != "2026-07-01" {
		t.Errorf("dates = %s / %s", d.StartDate, d.PlannedEnd)
	}
}

func TestProjectFormCreateDefaults(t *testing.T) {
	today := model.NewDate(2026, time.June, 1)
	f := newProjectForm(nil, testClients(), testUsers(), today)
	d := f.projectDraft()
	if !d.StartDate.Equal(today) {
		t.Errorf("default start = %s, want today", d.StartDate)
	}
	if got := today.DaysUntil(d.PlannedEnd); got != 30 {
		t.Errorf("default span = %d days, want 30", got)
	}
}

func TestFormNavigationAndSteppers(t *testing.T) {
	today := model.NewDate(2026, time.June, 1)
	f := newProjectForm(nil, testClients(), testUsers(), today)

	// enter advances through the data fields instead of submitting.
	action, _ := f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != formContinue || f.focused != 1 {
		t.Fatalf("enter on text: action=%v focused=%d", action, f.focused)
	}

	// up/down cycle a selector.
	f.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if f.fields[1].selected != 1 {
		t.Errorf("selector = %d after up, want 1", f.fields[1].selected)
	}
	f.handleKey(tea.KeyMsg{Type: tea.KeyDown})
	if f.fields[1].selected != 0 {
		t.Errorf("selector = %d after down, want 0", f.fields[1].selected)
	}

	// tab to the start date, then step it.
	f.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	f.handleKey(tea.KeyMsg{Type: tea.KeyTab})
	if f.focused != 3 {
		t.Fatalf("focused = %d, want the start date", f.focused)
	}
	f.handleKey(tea.KeyMsg{Type: tea.KeyUp})
	if got := f.fields[3].date.String(); got != "2026-06-02" {
		t.Errorf("date after up = %s", got)
	}
	f.handleKey(tea.KeyMsg{Type: tea.KeyLeft})
	if got := f.fields[3].date.String(); got != "2026-05-26" {
		t.Errorf("date after left = %s", got)
	}

	// shift+tab walks backwards and wraps.
	f.moveFocus(0)
	f.handleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.focused != len(f.fields)-1 {
		t.Errorf("focused = %d, want the cancel button", f.focused)
	}

	action, _ = f.handleKey(tea.KeyMsg{Type: tea.KeyEnter})
	if action != formCancelled {
		t.Errorf("enter on cancel: action = %v", action)
	}
	action, _ = f.handleKey(tea.KeyMsg{Type: tea.KeyEsc})
	if action != formCancelled {
		t.Errorf("esc: action = %v", action)
	}
}

func TestUserFormValidation(t *testing.T) {
	f := newUserForm(nil)
	for i, s := range []string{"Sam", "sam", "hunter2"} {
		f.moveFocus(i)
		for _, r := range s {
			f.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
	if !f.validate() {
		t.Errorf("valid user rejected: %s", f.errMsg)
	}

	d := f.userDraft()
	if d.Login != "sam" || d.Password != "hunter2" || d.Role != model.RoleManager {
		t.Errorf("draft = %+v", d)
	}

	// Editing an existing user may leave the password blank.
	u := testUsers()[1]
	edit := newUserForm(&u)
	if edit.fields[3].selected != int(model.RoleAdmin) {
		t.Errorf("role selector = %d", edit.fields[3].selected)
	}
	if !edit.validate() {
		t.Errorf("edit without password rejected: %s", edit.errMsg)
	}
}
