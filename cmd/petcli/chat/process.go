package chat

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petcli/internal/llm"
	"petcli/internal/logging"
	"petcli/internal/pet"
)

// classifyEvent maps a chat line to the mood event it carries. Mentioning a
// treat or play is direct affection; anything else is ordinary chat.
func classifyEvent(input string) pet.Event {
	lower := strings.ToLower(input)
	switch {
	case strings.Contains(lower, "treat"):
		return pet.EventTreat
	case strings.Contains(lower, "play"):
		return pet.EventPlay
	default:
		return pet.EventChat
	}
}

// startRequest applies the interaction to the mood engine, fills the
// pending-request slot, and returns the command that performs the AI call
// off the loop. The caller has already checked isLoading.
func (m Model) startRequest(input string, shellQuery bool) (tea.Model, tea.Cmd) {
	// The interaction happened whether or not the network cooperates, so
	// the mood moves now, not when the reply lands.
	event := pet.EventChat
	system := llm.PetSystemPrompt
	if shellQuery {
		system = llm.ShellSystemPrompt
	} else {
		event = classifyEvent(input)
	}
	m.petState = pet.Advance(m.petState, event, time.Now())

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	m.isLoading = true
	m.cancelPending = cancel
	m.requestSeq++
	id := m.requestSeq

	prompt := llm.BuildPrompt(input, m.historyTurns(), m.commands.Recent(5))
	client := m.client

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		defer cancel()
		start := time.Now()
		reply, err := client.Complete(ctx, system, prompt)
		if err != nil {
			return petErrMsg{id: id, err: err}
		}
		logging.Get(logging.CategoryAPI).Infof("completion ok in %s", time.Since(start).Round(time.Millisecond))
		return petReplyMsg{id: id, reply: reply}
	})
}
