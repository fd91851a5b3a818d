package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/celery8911/nest-aws/internal/app/domain/item"
)

func testModel() Model {
	return NewModel(
		Endpoint{Name: "local", URL: "http://localhost:3000"},
		Endpoint{Name: "lambda", URL: "http://lambda.example.test"},
	)
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model, cmd
}

func TestInitFetchesItems(t *testing.T) {
	m := testModel()
	if m.Init() == nil {
		t.Fatal("expected an initial items fetch")
	}
	if m.profileState != stateIdle {
		t.Fatal("profile panel must stay idle until requested")
	}
}

func TestItemsMsgEntersSuccess(t *testing.T) {
	m := testModel()
	items := []item.Item{
		{ID: 2, Title: "b", CreatedAt: time.Now()},
		{ID: 1, Title: "a", CreatedAt: time.Now().Add(-time.Minute)},
	}

	m, _ = update(t, m, itemsMsg(items))
	if m.itemsState != stateSuccess || len(m.items) != 2 {
		t.Fatalf("unexpected state after items: %v %d", m.itemsState, len(m.items))
	}

	m, _ = update(t, m, itemsErrMsg{err: errTest})
	if m.itemsState != stateError || m.itemsErr == "" {
		t.Fatal("expected error state with message")
	}

	// A later success clears the previous error.
	m, _ = update(t, m, itemsMsg(items))
	if m.itemsState != stateSuccess || m.itemsErr != "" {
		t.Fatal("expected recovery to success state")
	}
}

func TestProfileFetchOnDemand(t *testing.T) {
	m := testModel()

	m, cmd := update(t, m, key("p"))
	if m.profileState != stateLoading || cmd == nil {
		t.Fatal("expected loading state and a fetch command")
	}

	m, _ = update(t, m, profileErrMsg{err: errTest})
	if m.profileState != stateError {
		t.Fatal("expected error state")
	}
}

func TestSwitchBackendClearsPanels(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, itemsMsg([]item.Item{{ID: 1, Title: "a"}}))
	m, _ = update(t, m, key("p"))
	m, _ = update(t, m, profileErrMsg{err: errTest})

	m, cmd := update(t, m, key("s"))
	if cmd != nil {
		t.Fatal("switching must not trigger a refetch")
	}
	if m.active != 1 {
		t.Fatalf("expected second endpoint active, got %d", m.active)
	}
	if m.api.BaseURL() != "http://lambda.example.test" {
		t.Fatalf("client not repointed: %s", m.api.BaseURL())
	}
	if m.itemsState != stateIdle || len(m.items) != 0 {
		t.Fatal("items panel not cleared")
	}
	if m.profileState != stateIdle || m.profileErr != "" {
		t.Fatal("profile panel not cleared")
	}

	// Switching again returns to the first endpoint.
	m, _ = update(t, m, key("s"))
	if m.active != 0 || m.api.BaseURL() != "http://localhost:3000" {
		t.Fatal("expected switch back to primary")
	}
}

func TestAddFormValidatesBeforeNetwork(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, itemsMsg(nil))

	m, _ = update(t, m, key("a"))
	if !m.adding {
		t.Fatal("expected add form open")
	}

	// Submitting the empty form stays local; no command is produced.
	m, cmd := update(t, m, key("enter")) // advance to content field
	if cmd != nil {
		t.Fatal("field advance must not produce a command")
	}
	m, cmd = update(t, m, key("enter"))
	if cmd != nil {
		t.Fatal("empty form must not reach the network")
	}
	if !m.adding || m.formErr == "" {
		t.Fatal("expected form kept open with a validation message")
	}

	// Filled form submits.
	m.inputs[0].SetValue("title")
	m.inputs[1].SetValue("content")
	m, cmd = update(t, m, key("enter"))
	if cmd == nil {
		t.Fatal("expected a create command")
	}
	if m.adding || m.itemsState != stateLoading {
		t.Fatal("expected form closed and items panel loading")
	}
}

func TestAddFormCancel(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, key("a"))
	m, cmd := update(t, m, key("esc"))
	if m.adding || cmd != nil {
		t.Fatal("expected form dismissed without a command")
	}
}

func TestDeleteConfirmation(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, itemsMsg([]item.Item{{ID: 5, Title: "a"}}))

	m, _ = update(t, m, key("d"))
	if !m.confirming {
		t.Fatal("expected confirmation prompt")
	}

	// Declining keeps the item.
	m, cmd := update(t, m, key("n"))
	if m.confirming || cmd != nil {
		t.Fatal("expected prompt dismissed without a command")
	}

	m, _ = update(t, m, key("d"))
	m, cmd = update(t, m, key("y"))
	if cmd == nil {
		t.Fatal("expected a delete command")
	}
	if m.itemsState != stateLoading {
		t.Fatal("expected items panel loading during delete")
	}
}

func TestDeleteIgnoredWithoutItems(t *testing.T) {
	m := testModel()
	m, _ = update(t, m, itemsMsg(nil))

	m, _ = update(t, m, key("d"))
	if m.confirming {
		t.Fatal("no confirmation prompt without items")
	}
}

func TestMutationRefetchesItems(t *testing.T) {
	m := testModel()
	m, cmd := update(t, m, mutatedMsg{})
	if m.itemsState != stateLoading || cmd == nil {
		t.Fatal("expected list refetch after a mutation")
	}
}

var errTest = &testErr{}

type testErr struct{}

func (*testErr) Error() string { return "boom" }
