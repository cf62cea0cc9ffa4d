package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sweem/internal/api"
	"sweem/internal/model"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldDate
	fieldSelect
	fieldButton
)

type formField struct {
	label string
	kind  fieldKind

	input textinput.Model // fieldText
	date  model.Date      // fieldDate

	// fieldSelect: display options with parallel entity IDs (nil for
	// value-only selectors like the role).
	options  []string
	ids      []uuid.UUID
	selected int

	isCancel bool // fieldButton
}

type formState struct {
	entity  entityKind
	editID  uuid.UUID // uuid.Nil in create mode
	title   string
	fields  []formField
	focused int
	errMsg  string
}

func (f *formState) isEdit() bool { return f.editID != uuid.Nil }

func textField(label, value, placeholder string) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Width = 32
	ti.SetValue(value)
	return formField{label: label, kind: fieldText, input: ti}
}

func passwordField(label string) formField {
	f := textField(label, "", "")
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '•'
	return f
}

func dateField(label string, value model.Date) formField {
	return formField{label: label, kind: fieldDate, date: value}
}

func selectField(label string, options []string, ids []uuid.UUID, selected int) formField {
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return formField{label: label, kind: fieldSelect, options: options, ids: ids, selected: selected}
}

func buttons() []formField {
	return []formField{
		{label: "Save", kind: fieldButton},
		{label: "Cancel", kind: fieldButton, isCancel: true},
	}
}

func newClientForm(existing *model.Client) *formState {
	f := &formState{entity: entityClient, title: "New Client"}
	name, address := "", ""
	if existing != nil {
		f.editID = existing.ID
		f.title = "Edit Client"
		name, address = existing.Name, existing.Address
	}
	f.fields = append([]formField{
		textField("Name", name, "Client name"),
		textField("Address", address, "Optional"),
	}, buttons()...)
	f.fields[0].input.Focus()
	return f
}

func newProjectForm(existing *model.Project, clients []model.Client, users []model.User, today model.Date) *formState {
	f := &formState{entity: entityProject, title: "New Project"}

	clientNames := make([]string, len(clients))
	clientIDs := make([]uuid.UUID, len(clients))
	for i, c := range clients {
		clientNames[i] = c.DisplayName()
		clientIDs[i] = c.ID
	}
	userNames := make([]string, len(users))
	userIDs := make([]uuid.UUID, len(users))
	for i, u := range users {
		userNames[i] = u.DisplayName()
		userIDs[i] = u.ID
	}

	name := ""
	clientIdx, managerIdx := 0, 0
	start, end := today, today.AddDays(30)
	if existing != nil {
		f.editID = existing.ID
		f.title = "Edit Project"
		name = existing.Name
		start, end = existing.StartDate, existing.PlannedEnd
		for i, id := range clientIDs {
			if id == existing.ClientID {
				clientIdx = i
				break
			}
		}
		for i, id := range userIDs {
			if id == existing.ManagerID {
				managerIdx = i
				break
			}
		}
	}

	f.fields = append([]formField{
		textField("Name", name, "Project name"),
		selectField("Client", clientNames, clientIDs, clientIdx),
		selectField("Manager", userNames, userIDs, managerIdx),
		dateField("Start Date", start),
		dateField("End Date", end),
	}, buttons()...)
	f.fields[0].input.Focus()
	return f
}

func newUserForm(existing *model.User) *formState {
	f := &formState{entity: entityUser, title: "New User"}
	name, login := "", ""
	role := 0
	if existing != nil {
		f.editID = existing.ID
		f.title = "Edit User"
		name, login = existing.Name, existing.Login
		role = int(existing.Role)
	}
	f.fields = append([]formField{
		textField("Name", name, "Full name"),
		textField("Login", login, "Login"),
		passwordField("Password"),
		selectField("Role", []string{model.RoleManager.String(), model.RoleAdmin.String()}, nil, role),
	}, buttons()...)
	f.fields[0].input.Focus()
	return f
}

func (f *formState) current() *formField {
	return &f.fields[f.focused]
}

func (f *formState) nextField() {
	f.moveFocus((f.focused + 1) % len(f.fields))
}

func (f *formState) prevField() {
	f.moveFocus((f.focused - 1 + len(f.fields)) % len(f.fields))
}

func (f *formState) moveFocus(to int) {
	if f.fields[f.focused].kind == fieldText {
		f.fields[f.focused].input.Blur()
	}
	f.focused = to
	if f.fields[f.focused].kind == fieldText {
		f.fields[f.focused].input.Focus()
	}
}

// formAction tells the owning model what the form wants after a key.
type formAction int

const (
	formContinue formAction = iota
	formCancelled
	formSubmitted
)

func (f *formState) handleKey(msg tea.KeyMsg) (formAction, tea.Cmd) {
	field := f.current()
	switch msg.String() {
	case "esc":
		return formCancelled, nil
	case "tab", "down":
		if msg.String() == "down" && field.kind != fieldButton && field.kind != fieldText {
			f.stepField(field, -1)
			return formContinue, nil
		}
		f.nextField()
		return formContinue, nil
	case "shift+tab", "up":
		if msg.String() == "up" && field.kind != fieldButton && field.kind != fieldText {
			f.stepField(field, 1)
			return formContinue, nil
		}
		f.prevField()
		return formContinue, nil
	case "left":
		if field.kind == fieldDate {
			field.date = field.date.AddDays(-7)
		}
		return formContinue, nil
	case "right":
		if field.kind == fieldDate {
			field.date = field.date.AddDays(7)
		}
		return formContinue, nil
	case "enter":
		switch {
		case field.kind == fieldButton && field.isCancel:
			return formCancelled, nil
		case field.kind == fieldButton:
			return formSubmitted, nil
		default:
			// Enter advances through data fields rather than submitting.
			f.nextField()
			return formContinue, nil
		}
	}

	if field.kind == fieldText {
		var cmd tea.Cmd
		field.input, cmd = field.input.Update(msg)
		return formContinue, cmd
	}
	return formContinue, nil
}

// stepField adjusts a date by one day or cycles a selector.
func (f *formState) stepField(field *formField, dir int) {
	switch field.kind {
	case fieldDate:
		field.date = field.date.AddDays(dir)
	case fieldSelect:
		if n := len(field.options); n > 0 {
			field.selected = (field.selected + dir + n) % n
		}
	}
}

func (f *formState) textValue(i int) string {
	return f.fields[i].input.Value()
}

func (f *formState) selectedID(i int) uuid.UUID {
	field := f.fields[i]
	if field.selected < len(field.ids) {
		return field.ids[field.selected]
	}
	return uuid.Nil
}

// validate builds the draft for the form's entity and reports the first
// validation failure into errMsg. ok is false when the form should stay open.
func (f *formState) validate() bool {
	var err error
	switch f.entity {
	case entityClient:
		err = f.clientDraft().Validate()
	case entityProject:
		err = f.projectDraft().Validate()
	default:
		if f.isEdit() {
			err = f.userDraft().ValidateUpdate()
		} else {
			err = f.userDraft().ValidateCreate()
		}
	}
	if err != nil {
		f.errMsg = err.Error()
		return false
	}
	f.errMsg = ""
	return true
}

func (f *formState) clientDraft() model.ClientDraft {
	return model.ClientDraft{
		Name:    f.textValue(0),
		Address: f.textValue(1),
	}
}

func (f *formState) projectDraft() model.ProjectDraft {
	return model.ProjectDraft{
		Name:       f.textValue(0),
		ClientID:   f.selectedID(1),
		ManagerID:  f.selectedID(2),
		StartDate:  f.fields[3].date,
		PlannedEnd: f.fields[4].date,
	}
}

func (f *formState) userDraft() model.UserDraft {
	return model.UserDraft{
		Name:     f.textValue(0),
		Login:    f.textValue(1),
		Password: f.textValue(2),
		Role:     model.Role(f.fields[3].selected),
	}
}

// submitCmd issues the create or update call for a validated form.
func (f *formState) submitCmd(client *api.Client) tea.Cmd {
	entity, editID := f.entity, f.editID
	switch entity {
	case entityClient:
		draft := f.clientDraft()
		return func() tea.Msg {
			if editID != uuid.Nil {
				if _, err := client.UpdateClient(context.Background(), editID, draft); err != nil {
					return apiErrMsg{err}
				}
				return updatedMsg{entity}
			}
			id, err := client.CreateClient(context.Background(), draft)
			if err != nil {
				return apiErrMsg{err}
			}
			return createdMsg{entity, id}
		}
	case entityProject:
		draft := f.projectDraft()
		return func() tea.Msg {
			if editID != uuid.Nil {
				if _, err := client.UpdateProject(context.Background(), editID, draft); err != nil {
					return apiErrMsg{err}
				}
				return updatedMsg{entity}
			}
			id, err := client.CreateProject(context.Background(), draft)
			if err != nil {
				return apiErrMsg{err}
			}
			return createdMsg{entity, id}
		}
	default:
		draft := f.userDraft()
		return func() tea.Msg {
			if editID != uuid.Nil {
				if _, err := client.UpdateUser(context.Background(), editID, draft); err != nil {
					return apiErrMsg{err}
				}
				return updatedMsg{entity}
			}
			id, err := client.CreateUser(context.Background(), draft)
			if err != nil {
				return apiErrMsg{err}
			}
			return createdMsg{entity, id}
		}
	}
}
