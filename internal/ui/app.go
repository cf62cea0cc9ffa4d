package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"sweem/internal/api"
	"sweem/internal/config"
	"sweem/internal/model"
	"sweem/internal/timeline"
)

type tab int

const (
	tabClients tab = iota
	tabTimeline
	tabUsers
	tabCount
)

func (t tab) String() string {
	switch t {
	case tabClients:
		return "Clients"
	case tabTimeline:
		return "Timeline"
	default:
		return "Users"
	}
}

type mode int

const (
	modeNormal mode = iota
	modeForm
	modeConfirm
)

const errPopupTTL = 5 * time.Second

type Model struct {
	api *api.Client
	cfg config.Config
	th  theme

	width  int
	height int

	activeTab tab
	mode      mode

	projects []model.Project
	clients  []model.Client
	users    []model.User

	vp         timeline.State
	listCursor int

	form    *formState
	confirm *confirmState

	logs logRing

	errMsg string
	errAt  time.Time

	connected   bool
	loading     bool
	lastRefresh time.Time
	showHelp    bool

	today model.Date
}

func newModel(client *api.Client, cfg config.Config) Model {
	return Model{
		api:       client,
		cfg:       cfg,
		th:        newTheme(),
		activeTab: tabTimeline,
		vp:        timeline.NewState(cfg.Timeline.MinZoom, cfg.Timeline.MaxZoom),
		logs:      newLogRing(50),
		loading:   true,
		today:     model.Today(),
	}
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(client *api.Client, cfg config.Config) error {
	p := tea.NewProgram(newModel(client, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(refreshAllCmd(m.api), m.tick())
}

func (m Model) tick() tea.Cmd {
	return tickCmd(time.Duration(m.cfg.TickMillis) * time.Millisecond)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tickMsg:
		m.vp.Tick()
		m.today = model.Today()
		if m.errMsg != "" && time.Since(m.errAt) > errPopupTTL {
			m.errMsg = ""
		}
		return m, m.tick()

	case connectionMsg:
		was := m.connected
		m.connected = bool(msg)
		if was && !m.connected {
			m.logs.warning("backend unreachable")
		}
		return m, nil

	case projectsLoadedMsg:
		m.projects = msg
		m.loading = false
		m.lastRefresh = time.Now()
		m.connected = true
		// First load picks the first project; an out-of-range index from a
		// shrunken list is left alone and reads as no selection until a
		// later refresh revalidates it.
		if m.vp.Selected < 0 && len(m.projects) > 0 {
			m.vp.Selected = 0
		}
		m.vp.Reset()
		m.logs.info(fmt.Sprintf("loaded %s", fmtCount(len(m.projects), "project")))
		return m, nil

	case clientsLoadedMsg:
		m.clients = msg
		m.loading = false
		m.lastRefresh = time.Now()
		m.connected = true
		if m.activeTab == tabClients {
			m.listCursor = clampCursor(m.listCursor, len(m.clients))
		}
		return m, nil

	case usersLoadedMsg:
		m.users = msg
		m.loading = false
		m.lastRefresh = time.Now()
		m.connected = true
		if m.activeTab == tabUsers {
			m.listCursor = clampCursor(m.listCursor, len(m.users))
		}
		return m, nil

	case createdMsg:
		m.logs.success(fmt.Sprintf("%s created", msg.entity))
		m.closeForm()
		return m, refreshEntityCmd(m.api, msg.entity)

	case updatedMsg:
		m.logs.success(fmt.Sprintf("%s updated", msg.entity))
		m.closeForm()
		return m, refreshEntityCmd(m.api, msg.entity)

	case deletedMsg:
		m.logs.success(fmt.Sprintf("%s deleted", msg.entity))
		m.confirm = nil
		m.mode = modeNormal
		return m, refreshEntityCmd(m.api, msg.entity)

	case apiErrMsg:
		m.loading = false
		m.errMsg = msg.err.Error()
		m.errAt = time.Now()
		m.logs.error(msg.err.Error())
		if m.mode == modeConfirm {
			m.confirm = nil
			m.mode = modeNormal
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The error popup swallows the first keypress.
	if m.errMsg != "" {
		m.errMsg = ""
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	default:
		return m.updateNormal(msg)
	}
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, cmd := m.form.handleKey(msg)
	switch action {
	case formCancelled:
		m.closeForm()
		return m, nil
	case formSubmitted:
		if !m.form.validate() {
			return m, nil
		}
		return m, m.form.submitCmd(m.api)
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.confirm.handleKey(msg) {
	case confirmYes:
		return m, m.confirm.deleteCmd(m.api)
	case confirmNo:
		m.confirm = nil
		m.mode = modeNormal
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.Keys
	switch key := msg.String(); key {
	case keys.Quit:
		return m, tea.Quit

	case keys.Help:
		m.showHelp = true
		return m, nil

	case "tab":
		m.activeTab = (m.activeTab + 1) % tabCount
		m.listCursor = 0
		return m, nil
	case "shift+tab":
		m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		m.listCursor = 0
		return m, nil

	case keys.Refresh:
		m.loading = true
		m.logs.info("refreshing")
		return m, refreshAllCmd(m.api)

	case keys.Create:
		return m.openCreateForm()
	case keys.Edit:
		return m.openEditForm()
	case keys.Delete:
		return m.openConfirm()
	}

	if m.activeTab == tabTimeline {
		return m.updateTimelineKeys(msg)
	}
	return m.updateListKeys(msg)
}

func (m Model) updateTimelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.cfg.Keys
	tl := m.cfg.Timeline
	switch key := msg.String(); key {
	case keys.Left, "left":
		m.vp.ScrollLeft(tl.DayStep)
	case keys.Right, "right":
		m.vp.ScrollRight(tl.DayStep)
	case "H", "shift+left":
		m.vp.ScrollLeft(tl.WeekStep)
	case "L", "shift+right":
		m.vp.ScrollRight(tl.WeekStep)

	case keys.Down, "down":
		m.vp.SelectNext(len(m.projects))
		m.jumpToSelected()
	case keys.Up, "up":
		m.vp.SelectPrevious(len(m.projects))
		m.jumpToSelected()

	case keys.ZoomIn, "=":
		m.vp.ZoomIn()
	case keys.ZoomOut:
		m.vp.ZoomOut()

	case keys.Today:
		m.vp.CenterOnToday(m.epoch(), m.today, m.barWidth())
	case keys.Start, "home":
		m.vp.Reset()
	case keys.Jump:
		m.jumpToSelected()
	}
	return m, nil
}

func (m Model) updateListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.clients)
	if m.activeTab == tabUsers {
		n = len(m.users)
	}
	keys := m.cfg.Keys
	switch key := msg.String(); key {
	case keys.Down, "down":
		m.listCursor = wrapIndex(m.listCursor, 1, n)
	case keys.Up, "up":
		m.listCursor = wrapIndex(m.listCursor, -1, n)
	case keys.First:
		m.listCursor = 0
	case keys.Last:
		if n > 0 {
			m.listCursor = n - 1
		}
	}
	return m, nil
}

func (m *Model) jumpToSelected() {
	p, ok := m.vp.SelectedProject(m.projects)
	if !ok {
		return
	}
	m.vp.JumpTo(p, m.epoch(), m.width, m.cfg.Timeline.SidePanelWidth)
}

func (m Model) epoch() model.Date {
	return timeline.Epoch(m.projects, m.today, m.cfg.Timeline.LookbackDays)
}

// barWidth is the number of day columns available to the gantt bars.
func (m Model) barWidth() int {
	w := m.width - m.cfg.Timeline.SidePanelWidth
	if w < 0 {
		return 0
	}
	return w
}

func (m Model) openCreateForm() (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabClients:
		m.form = newClientForm(nil)
	case tabUsers:
		m.form = newUserForm(nil)
	default:
		if len(m.clients) == 0 || len(m.users) == 0 {
			m.logs.warning("create a client and a user before adding projects")
			return m, nil
		}
		m.form = newProjectForm(nil, m.clients, m.users, m.today)
	}
	m.mode = modeForm
	return m, nil
}

func (m Model) openEditForm() (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabClients:
		if m.listCursor >= len(m.clients) {
			return m, nil
		}
		c := m.clients[m.listCursor]
		m.form = newClientForm(&c)
	case tabUsers:
		if m.listCursor >= len(m.users) {
			return m, nil
		}
		u := m.users[m.listCursor]
		m.form = newUserForm(&u)
	default:
		p, ok := m.vp.SelectedProject(m.projects)
		if !ok {
			return m, nil
		}
		m.form = newProjectForm(&p, m.clients, m.users, m.today)
	}
	m.mode = modeForm
	return m, nil
}

func (m Model) openConfirm() (tea.Model, tea.Cmd) {
	switch m.activeTab {
	case tabClients:
		if m.listCursor >= len(m.clients) {
			return m, nil
		}
		c := m.clients[m.listCursor]
		m.confirm = newConfirm(entityClient, c.ID, c.DisplayName())
	case tabUsers:
		if m.listCursor >= len(m.users) {
			return m, nil
		}
		u := m.users[m.listCursor]
		m.confirm = newConfirm(entityUser, u.ID, u.DisplayName())
	default:
		p, ok := m.vp.SelectedProject(m.projects)
		if !ok {
			return m, nil
		}
		m.confirm = newConfirm(entityProject, p.ID, p.DisplayName())
	}
	m.mode = modeConfirm
	return m, nil
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = modeNormal
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}

func wrapIndex(i, delta, n int) int {
	if n == 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}
