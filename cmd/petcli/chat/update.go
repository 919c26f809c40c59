package chat

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petcli/internal/history"
	"petcli/internal/llm"
	"petcli/internal/logging"
	"petcli/internal/pet"
	"petcli/internal/router"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.abortPending()
			m.saveSession()
			return m, tea.Quit

		case tea.KeyCtrlX:
			// Cancel the in-flight AI request, keep the loop alive.
			if m.isLoading {
				m.abortPending()
				m.appendSystem("Request cancelled.")
			}
			return m, nil

		// Scrolling stays responsive whether or not a request is pending.
		case tea.KeyUp:
			m.viewport.LineUp(1)
			return m, nil
		case tea.KeyDown:
			m.viewport.LineDown(1)
			return m, nil
		case tea.KeyPgUp:
			m.viewport.ViewUp()
			return m, nil
		case tea.KeyPgDown:
			m.viewport.ViewDown()
			return m, nil

		case tea.KeyEnter:
			return m.handleSubmit()
		}

		// Everything else edits the input line.
		m.textinput, tiCmd = m.textinput.Update(msg)
		return m, tiCmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.ready = true
		return m, nil

	case petReplyMsg:
		// Only the completion whose id matches the current slot may land.
		// A cancelled request can still deliver after its slot was reused,
		// and must not steal the reply or error of the one in flight.
		if !m.isLoading || msg.id != m.requestSeq {
			return m, nil
		}
		m.isLoading = false
		m.cancelPending = nil
		m.appendPet(msg.reply)
		m.saveSession()
		return m, nil

	case petErrMsg:
		if !m.isLoading || msg.id != m.requestSeq {
			return m, nil
		}
		m.isLoading = false
		m.cancelPending = nil
		logging.Get(logging.CategoryAPI).Errorf("completion failed: %v", msg.err)
		m.appendSystem("(" + m.petState.Name + " looks confused) " + msg.err.Error())
		return m, nil

	case idleTickMsg:
		m.petState = pet.Advance(m.petState, pet.EventIdle, time.Time(msg))
		return m, idleTick()
	}

	m.spinner, spCmd = m.spinner.Update(msg)
	return m, spCmd
}

// handleSubmit routes one submitted input line.
func (m Model) handleSubmit() (tea.Model, tea.Cmd) {
	raw := m.textinput.Value()
	in := router.Classify(raw)
	// A blank line or a bare "$" has nothing to send.
	if in.Payload == "" && in.Kind != router.KindCommand {
		return m, nil
	}

	switch in.Kind {
	case router.KindCommand:
		return m.handleCommand(in)

	case router.KindShellQuery:
		if m.isLoading {
			m.appendSystem("One moment, still thinking about the last one...")
			m.textinput.Reset()
			return m, nil
		}
		m.appendUser(raw)
		m.textinput.Reset()
		// A shell query also lands in the recent-commands ring, like the
		// original did for $-prefixed lines.
		m.commands.Add(in.Payload)
		return m.startRequest(in.Payload, true)

	default:
		if m.isLoading {
			m.appendSystem("One moment, still thinking about the last one...")
			m.textinput.Reset()
			return m, nil
		}
		m.appendUser(in.Payload)
		m.textinput.Reset()
		return m.startRequest(in.Payload, false)
	}
}

// abortPending cancels the in-flight request, if any.
func (m *Model) abortPending() {
	if m.cancelPending != nil {
		m.cancelPending()
		m.cancelPending = nil
	}
	m.isLoading = false
}

// layout sizes the panes from the window dimensions.
func (m *Model) layout() {
	petHeight := strings.Count(m.cfg.PetASCII, "\n") + 3 // art + border + title
	inputHeight := 3
	footerHeight := 1
	chatHeight := m.height - petHeight - inputHeight - footerHeight - 2
	if chatHeight < 3 {
		chatHeight = 3
	}
	chatWidth := m.width - 4
	if chatWidth < 20 {
		chatWidth = 20
	}
	m.viewport.Width = chatWidth
	m.viewport.Height = chatHeight
	m.textinput.Width = chatWidth - 4
	m.refreshViewport()
}

// historyTurns converts the tail of the log into prompt context turns.
func (m Model) historyTurns() []llm.Turn {
	var turns []llm.Turn
	var pendingUser string
	for _, msg := range m.hist.All() {
		switch msg.Role {
		case history.RoleUser:
			pendingUser = msg.Text
		case history.RolePet:
			if pendingUser != "" {
				turns = append(turns, llm.Turn{User: pendingUser, Pet: msg.Text})
				pendingUser = ""
			}
		}
	}
	return turns
}
