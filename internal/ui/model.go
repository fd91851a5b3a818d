// Package ui implements the terminal frontend: an items panel and a profile
// panel over the items API, with a switch between two configured backends.
package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/celery8911/nest-aws/internal/app/domain/github"
	"github.com/celery8911/nest-aws/internal/app/domain/item"
	"github.com/celery8911/nest-aws/internal/client"
)

// Endpoint is one selectable backend.
type Endpoint struct {
	Name string
	URL  string
}

// panelState is the per-panel request lifecycle. Panels are independent and
// re-entrant: a new request from any terminal state re-enters loading.
type panelState int

const (
	stateIdle panelState = iota
	stateLoading
	stateSuccess
	stateError
)

const requestTimeout = 15 * time.Second

type (
	itemsMsg      []item.Item
	itemsErrMsg   struct{ err error }
	mutatedMsg    struct{}
	mutateErrMsg  struct{ err error }
	profileMsg    github.Profile
	profileErrMsg struct{ err error }
)

// Model is the Bubble Tea model for the board.
type Model struct {
	api       *client.Client
	endpoints [2]Endpoint
	active    int

	itemsState panelState
	items      []item.Item
	itemsErr   string
	cursor     int

	adding   bool
	inputs   [2]textinput.Model // title, content
	focusIdx int
	formErr  string

	confirming bool

	profileState panelState
	profile      github.Profile
	profileErr   string
}

// NewModel builds the board model pointing at the first endpoint.
func NewModel(primary, secondary Endpoint) Model {
	title := textinput.New()
	title.Placeholder = "title"
	title.CharLimit = 0
	title.Focus()

	content := textinput.New()
	content.Placeholder = "content"
	content.CharLimit = 0

	return Model{
		api:       client.New(primary.URL, nil),
		endpoints: [2]Endpoint{primary, secondary},
		inputs:    [2]textinput.Model{title, content},
	}
}

// Init loads the items panel on mount. The profile panel stays idle until
// the user asks for it.
func (m Model) Init() tea.Cmd {
	return fetchItems(m.api)
}

func fetchItems(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		items, err := api.ListItems(ctx)
		if err != nil {
			return itemsErrMsg{err: err}
		}
		return itemsMsg(items)
	}
}

func createItem(api *client.Client, title, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := api.CreateItem(ctx, title, content); err != nil {
			return mutateErrMsg{err: err}
		}
		return mutatedMsg{}
	}
}

func deleteItem(api *client.Client, id int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		if _, err := api.DeleteItem(ctx, id); err != nil {
			return mutateErrMsg{err: err}
		}
		return mutatedMsg{}
	}
}

func fetchProfile(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		profile, err := api.Profile(ctx)
		if err != nil {
			return profileErrMsg{err: err}
		}
		return profileMsg(profile)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsMsg:
		m.itemsState = stateSuccess
		m.items = msg
		m.itemsErr = ""
		if m.cursor >= len(m.items) {
			m.cursor = max(0, len(m.items)-1)
		}
		return m, nil

	case itemsErrMsg:
		m.itemsState = stateError
		m.itemsErr = msg.err.Error()
		return m, nil

	case mutatedMsg:
		// A successful create or delete always re-issues the list.
		m.itemsState = stateLoading
		return m, fetchItems(m.api)

	case mutateErrMsg:
		m.itemsState = stateError
		m.itemsErr = msg.err.Error()
		return m, nil

	case profileMsg:
		m.profileState = stateSuccess
		m.profile = github.Profile(msg)
		m.profileErr = ""
		return m, nil

	case profileErrMsg:
		m.profileState = stateError
		m.profileErr = msg.err.Error()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.adding {
		return m.handleAddKey(msg)
	}
	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "a":
		m.adding = true
		m.focusIdx = 0
		m.formErr = ""
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		m.inputs[0].Focus()
		m.inputs[1].Blur()

	case "d":
		if m.itemsState == stateSuccess && len(m.items) > 0 {
			m.confirming = true
		}

	case "r":
		m.itemsState = stateLoading
		return m, fetchItems(m.api)

	case "p":
		m.profileState = stateLoading
		return m, fetchProfile(m.api)

	case "s":
		m.switchBackend()
	}

	return m, nil
}

// switchBackend flips the active endpoint and clears both panels' data and
// error state. It does not refetch; the user triggers the next request.
func (m *Model) switchBackend() {
	m.active = 1 - m.active
	m.api.SetBaseURL(m.endpoints[m.active].URL)

	m.itemsState = stateIdle
	m.items = nil
	m.itemsErr = ""
	m.cursor = 0

	m.profileState = stateIdle
	m.profile = github.Profile{}
	m.profileErr = ""
}

func (m Model) handleAddKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.adding = false
		m.formErr = ""
		return m, nil

	case "tab", "shift+tab":
		m.focusIdx = 1 - m.focusIdx
		m.syncFocus()
		return m, nil

	case "enter":
		if m.focusIdx == 0 {
			m.focusIdx = 1
			m.syncFocus()
			return m, nil
		}
		title := m.inputs[0].Value()
		content := m.inputs[1].Value()
		// Presence is validated here, before any network call.
		if title == "" || content == "" {
			m.formErr = "title and content are required"
			return m, nil
		}
		m.adding = false
		m.formErr = ""
		m.itemsState = stateLoading
		return m, createItem(m.api, title, content)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIdx], cmd = m.inputs[m.focusIdx].Update(msg)
	return m, cmd
}

func (m *Model) syncFocus() {
	for i := range m.inputs {
		if i == m.focusIdx {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirming = false
		if m.cursor < len(m.items) {
			m.itemsState = stateLoading
			return m, deleteItem(m.api, m.items[m.cursor].ID)
		}
	case "n", "N", "esc":
		m.confirming = false
	}
	return m, nil
}
