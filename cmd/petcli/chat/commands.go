package chat

import (
	tea "github.com/charmbracelet/bubbletea"

	"petcli/internal/router"
)

// handleCommand processes a classified /command. Unknown commands report a
// single informational message and change nothing.
func (m Model) handleCommand(in router.Input) (tea.Model, tea.Cmd) {
	switch in.Command {
	case router.CommandStats:
		m.appendSystem(m.petState.StatsLine())
		m.textinput.Reset()
		return m, nil

	case router.CommandClear:
		// Clears the window only; the conversation log and its snapshot
		// survive until /purge.
		m.display.Clear()
		m.appendSystem("Chat window cleared.")
		m.textinput.Reset()
		return m, nil

	case router.CommandPurge:
		m.hist.Clear()
		m.display.Clear()
		m.appendSystem("Chat history has been purged from disk.")
		m.textinput.Reset()
		m.saveSession()
		return m, nil

	case router.CommandHelp:
		m.appendSystem(router.HelpText)
		m.textinput.Reset()
		return m, nil

	case router.CommandExit:
		m.abortPending()
		m.appendPet("Goodbye! Take care! 👋")
		m.saveSession()
		return m, tea.Quit

	default:
		m.appendSystem("Command " + in.Payload + " not recognized. Try /help.")
		m.textinput.Reset()
		return m, nil
	}
}
