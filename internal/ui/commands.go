package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"sweem/internal/api"
	"sweem/internal/model"
)

// Messages produced by the API commands. Every backend interaction runs as a
// tea.Cmd so the update loop stays synchronous and single-threaded.

type tickMsg time.Time

type connectionMsg bool

type projectsLoadedMsg []model.Project
type clientsLoadedMsg []model.Client
type usersLoadedMsg []model.User

type entityKind int

const (
	entityClient entityKind = iota
	entityProject
	entityUser
)

func (e entityKind) String() string {
	switch e {
	case entityClient:
		return "Client"
	case entityProject:
		return "Project"
	default:
		return "User"
	}
}

type createdMsg struct {
	entity entityKind
	id     uuid.UUID
}

type updatedMsg struct {
	entity entityKind
}

type deletedMsg struct {
	entity entityKind
	id     uuid.UUID
}

type apiErrMsg struct {
	err error
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func checkConnectionCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		return connectionMsg(client.Health(context.Background()))
	}
}

func fetchProjectsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		projects, err := client.AllProjects(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return projectsLoadedMsg(projects)
	}
}

func fetchClientsCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		clients, err := client.AllClients(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return clientsLoadedMsg(clients)
	}
}

func fetchUsersCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := client.AllUsers(context.Background())
		if err != nil {
			return apiErrMsg{err}
		}
		return usersLoadedMsg(users)
	}
}

func refreshAllCmd(client *api.Client) tea.Cmd {
	return tea.Batch(
		checkConnectionCmd(client),
		fetchProjectsCmd(client),
		fetchClientsCmd(client),
		fetchUsersCmd(client),
	)
}

// refreshEntityCmd reloads only the listing that a CRUD operation touched.
func refreshEntityCmd(client *api.Client, entity entityKind) tea.Cmd {
	switch entity {
	case entityClient:
		return fetchClientsCmd(client)
	case entityProject:
		return fetchProjectsCmd(client)
	default:
		return fetchUsersCmd(client)
	}
}

func deleteCmd(client *api.Client, entity entityKind, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch entity {
		case entityClient:
			err = client.DeleteClient(context.Background(), id)
		case entityProject:
			err = client.DeleteProject(context.Background(), id)
		default:
			err = client.DeleteUser(context.Background(), id)
		}
		if err != nil {
			return apiErrMsg{err}
		}
		return deletedMsg{entity: entity, id: id}
	}
}
