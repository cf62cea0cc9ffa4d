package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sweem/internal/api"
)

// confirmState is the delete confirmation dialog. The No button starts
// focused so a stray enter never deletes anything.
type confirmState struct {
	entity     entityKind
	id         uuid.UUID
	name       string
	yesFocused bool
}

func newConfirm(entity entityKind, id uuid.UUID, name string) *confirmState {
	return &confirmState{entity: entity, id: id, name: name}
}

type confirmAction int

const (
	confirmOpen confirmAction = iota
	confirmYes
	confirmNo
)

func (c *confirmState) handleKey(msg tea.KeyMsg) confirmAction {
	switch msg.String() {
	case "left", "right", "tab", "h", "l":
		c.yesFocused = !c.yesFocused
	case "y":
		return confirmYes
	case "n", "esc", "q":
		return confirmNo
	case "enter":
		if c.yesFocused {
			return confirmYes
		}
		return confirmNo
	}
	return confirmOpen
}

func (c *confirmState) deleteCmd(client *api.Client) tea.Cmd {
	return deleteCmd(client, c.entity, c.id)
}
