package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"petcli/cmd/petcli/ui"
	"petcli/internal/history"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderPetPanel(),
		m.renderChatPanel(),
		m.renderInput(),
		m.renderFooter(),
	)
}

// renderPetPanel draws the ASCII pet with a border colored by mood.
func (m Model) renderPetPanel() string {
	moodColor := ui.MoodColor(m.petState.Mood())
	title := fmt.Sprintf(" %s · %s (%d%%) ", m.petState.Name, m.petState.Mood(), m.petState.MoodPercent())

	art := strings.Trim(m.cfg.PetASCII, "\n")
	width := m.width - 4
	if width < 20 {
		width = 20
	}

	panel := m.styles.PetPanel.
		BorderForeground(moodColor).
		Width(width)
	header := lipgloss.NewStyle().Foreground(moodColor).Bold(true).Render(title)
	body := m.styles.PetArt.Width(width).Foreground(moodColor).Render(art)

	return panel.Render(header + "\n" + body)
}

func (m Model) renderChatPanel() string {
	return m.styles.ChatPanel.Render(m.viewport.View())
}

func (m Model) renderInput() string {
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return m.styles.InputBox.Width(width).Render(m.textinput.View())
}

func (m Model) renderFooter() string {
	if m.isLoading {
		return m.styles.Footer.Render(m.spinner.View() + " " + m.petState.Name + " is thinking... (Ctrl+X to cancel)")
	}
	return m.styles.Footer.Render("↑/↓ scroll · PgUp/PgDn page · Enter send · Esc quit")
}

// renderHistory formats the whole log for the viewport.
func (m Model) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.display.All() {
		switch msg.Role {
		case history.RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("You:") + " ")
			sb.WriteString(m.styles.Body.Render(msg.Text))
			sb.WriteString("\n")

		case history.RoleSystem:
			sb.WriteString(m.styles.Muted.Render(msg.Text))
			sb.WriteString("\n\n")

		default: // pet
			label := m.styles.PetLabel.
				Foreground(ui.MoodColor(m.petState.Mood())).
				Render(m.petState.Name + ":")
			sb.WriteString(label + " ")
			sb.WriteString(m.safeRenderMarkdown(msg.Text))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown renders a pet reply as markdown, falling back to plain
// text if glamour fails or panics.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return strings.TrimRight(rendered, "\n") + "\n"
		}
	}
	return content
}
