// Package chat provides the interactive TUI: an animated pet panel above a
// chat pane, driven by a single bubbletea loop. The package is split across
// files the usual way:
//   - model.go: types, messages, constructor
//   - update.go: the Update loop and key dispatch
//   - commands.go: /command handling
//   - process.go: the async AI request
//   - view.go: rendering
//   - session.go: state persistence
package chat

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/google/uuid"

	"petcli/cmd/petcli/ui"
	"petcli/internal/config"
	"petcli/internal/history"
	"petcli/internal/llm"
	"petcli/internal/pet"
	"petcli/internal/shellhist"
)

// idleTickInterval is how often the mood engine gets an Idle event so the
// pet visibly sulks when ignored.
const idleTickInterval = 30 * time.Second

// requestTimeout bounds one AI call. No retries; a timeout is surfaced
// inline like any other adapter failure.
const requestTimeout = 60 * time.Second

// Messages merged back into the loop. Reply and error messages carry the id
// of the request that produced them so a completion from a cancelled request
// can never be mistaken for the current one.
type (
	// petReplyMsg carries a completed AI reply.
	petReplyMsg struct {
		id    int
		reply string
	}

	// petErrMsg carries an adapter failure for inline display.
	petErrMsg struct {
		id  int
		err error
	}

	// idleTickMsg drives mood decay.
	idleTickMsg time.Time
)

// Model is the single bubbletea model driving the whole program.
type Model struct {
	// UI components
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	styles    ui.Styles
	renderer  *glamour.TermRenderer

	// Domain state, owned by this loop. The conversation log holds only
	// user/pet turns and is what persists; the display log additionally
	// carries system notices and is what the viewport shows.
	cfg      config.Config
	petState pet.State
	hist     *history.Store
	display  *history.Store
	commands *shellhist.Ring

	// Backend
	client llm.Client

	// Pending-request slot: at most one AI call in flight. cancelPending
	// aborts it; the reply or error is merged back as a message. requestSeq
	// increments per request, so the slot's current id is always requestSeq
	// and anything older is stale.
	isLoading     bool
	cancelPending context.CancelFunc
	requestSeq    int

	sessionID string
	width     int
	height    int
	ready     bool
}

// New assembles the model from loaded config, restored state, and a client.
func New(cfg config.Config, client llm.Client, now time.Time) Model {
	styles := ui.NewStyles()

	ti := textinput.New()
	ti.Placeholder = "Say something... (Enter to send, Esc to quit)"
	ti.Focus()
	ti.Prompt = "| "
	ti.CharLimit = 1024
	ti.PromptStyle = styles.UserLabel
	ti.TextStyle = styles.Body

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	vp := viewport.New(80, 20)

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithStylePath(ui.GlamourStyle()),
		glamour.WithWordWrap(76),
	)

	hist := history.New(cfg.HistoryLimit)
	display := history.New(cfg.HistoryLimit)
	petState := pet.NewState(cfg.PetName, now)

	// Restore the previous session if a snapshot exists. The config owns
	// the name, so a renamed pet keeps its mood and memories.
	if snap, ok := config.LoadSnapshot(); ok {
		petState = snap.Pet
		petState.Name = cfg.PetName
		hist.Replace(snap.Messages)
		display.Replace(snap.Messages)
	}

	commands := shellhist.NewRing(cfg.CommandHistoryLimit)
	_ = commands.LoadFromHome()

	m := Model{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		styles:    styles,
		renderer:  renderer,
		cfg:       cfg,
		petState:  petState,
		hist:      hist,
		display:   display,
		commands:  commands,
		client:    client,
		sessionID: uuid.NewString(),
	}

	m.appendSystem("Welcome back! Type your message and press Enter to chat. /help lists commands.")
	return m
}

// Init starts the cursor blink, the spinner, and the idle ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		idleTick(),
	)
}

func idleTick() tea.Cmd {
	return tea.Tick(idleTickInterval, func(t time.Time) tea.Msg {
		return idleTickMsg(t)
	})
}

// appendSystem shows an inline system notice. Notices live only in the
// display log, so /stats, /help, errors and unknown-command reports never
// count against or mutate the conversation history.
func (m *Model) appendSystem(text string) {
	m.display.Append(history.Message{Role: history.RoleSystem, Text: text, Time: time.Now()})
	m.refreshViewport()
}

// appendPet adds a pet reply to both logs.
func (m *Model) appendPet(text string) {
	msg := history.Message{Role: history.RolePet, Text: text, Time: time.Now()}
	m.hist.Append(msg)
	m.display.Append(msg)
	m.refreshViewport()
}

// appendUser adds the user's line to both logs.
func (m *Model) appendUser(text string) {
	msg := history.Message{Role: history.RoleUser, Text: text, Time: time.Now()}
	m.hist.Append(msg)
	m.display.Append(msg)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
}
