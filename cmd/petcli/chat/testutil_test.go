package chat

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petcli/internal/config"
)

// fakeClient is a canned llm.Client for tests.
type fakeClient struct {
	reply string
	err   error
	calls int
}

func (f *fakeClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestModel builds a ready model against a temp config dir and home.
func newTestModel(t *testing.T, client *fakeClient) Model {
	t.Helper()
	t.Setenv("PETCLI_CONFIG_DIR", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg := config.Default()
	cfg.PetName = "Whiskers"
	m := New(cfg, client, testNow)

	// Simulate the first window-size message so the view is laid out.
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// submit types a line and presses Enter.
func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	m.textinput.SetValue(line)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model), cmd
}

// lastDisplayed returns the text of the newest display message.
func lastDisplayed(t *testing.T, m Model) string {
	t.Helper()
	all := m.display.All()
	if len(all) == 0 {
		t.Fatal("display log is empty")
	}
	return all[len(all)-1].Text
}
