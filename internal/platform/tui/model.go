package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/board"
	"github.com/vovakirdan/tui-ladders/internal/config"
	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// MatchRecorder stores finished matches. *storage.Store implements it.
type MatchRecorder interface {
	SaveMatch(result storage.MatchResult) (int64, error)
}

// Options configures a Model.
type Options struct {
	Config   config.Config
	Runtime  core.RuntimeConfig
	Recorder MatchRecorder // Optional
	Logger   *log.Logger   // Optional; nil discards
	Die      engine.Die    // Optional; nil uses a die seeded from Runtime.Seed
}

// teleportPause tracks a turn whose landing square is still on screen.
type teleportPause struct {
	seq     int
	outcome engine.TurnOutcome
}

// Model is the Bubble Tea model for one game of snakes and ladders.
// It owns a single engine session and processes one input at a time.
type Model struct {
	session  *engine.Session
	cfg      config.Config
	runtime  core.RuntimeConfig
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	recorder MatchRecorder
	logger   *log.Logger

	pause    *teleportPause
	pauseSeq int

	matchID   string
	startedAt time.Time
	saved     bool // Whether the current win has been recorded

	width    int
	height   int
	quitting bool
}

// NewModel creates a model in the initial game configuration.
func NewModel(opts Options) (Model, error) {
	die := opts.Die
	if die == nil {
		die = engine.NewRandomDie(opts.Runtime.Seed)
	}

	session, err := engine.New(engine.Options{
		Teleports: opts.Config.TeleportMap(),
		Die:       die,
	})
	if err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:   session,
		cfg:       opts.Config,
		runtime:   opts.Runtime,
		screen:    core.NewScreen(board.SurfaceW, board.GridH+board.StatusH),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		recorder:  opts.Recorder,
		logger:    logger,
		matchID:   storage.NewMatchID(),
		startedAt: time.Now(),
		width:     opts.Runtime.ScreenW,
		height:    opts.Runtime.ScreenH,
	}, nil
}

// Init starts the model. There is no background work.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case PauseDoneMsg:
		if m.pause != nil && m.pause.seq == msg.Seq {
			m.pause = nil
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionAdvance:
		// Input during the landing pause is dropped
		if m.pause != nil {
			return m, nil
		}
		if m.session.IsOver() {
			m.restart()
			return m, nil
		}
		return m.roll()
	}

	return m, nil
}

// roll plays one turn and starts the landing pause when the player teleported.
func (m Model) roll() (tea.Model, tea.Cmd) {
	out, err := m.session.Roll()
	if err != nil {
		m.logger.Error("roll rejected", "error", err)
		return m, nil
	}

	m.logger.Debug("turn",
		"player", out.Player+1,
		"kind", out.Kind,
		"roll", out.Roll,
		"from", out.From,
		"to", out.To,
		"final", out.Final,
		"via", out.Via,
	)

	if out.Kind == engine.OutcomeWin {
		m.recordWin(out)
	}

	if out.Teleported() && m.runtime.TeleportPause > 0 {
		m.pauseSeq++
		m.pause = &teleportPause{seq: m.pauseSeq, outcome: out}
		return m, pauseCmd(m.runtime.TeleportPause, m.pauseSeq)
	}

	return m, nil
}

// restart resets the session and begins a new match.
func (m *Model) restart() {
	m.session.Reset()
	m.pause = nil
	m.matchID = storage.NewMatchID()
	m.startedAt = time.Now()
	m.saved = false
	m.logger.Info("new game", "match", m.matchID)
}

// recordWin saves the finished match once. Storage errors are logged and
// never interrupt play.
func (m *Model) recordWin(out engine.TurnOutcome) {
	names := m.cfg.Names()
	m.logger.Info("game won",
		"match", m.matchID,
		"winner", names[out.Player],
		"turns", m.session.Turns(),
	)

	if m.recorder == nil || m.saved {
		return
	}

	via := "direct"
	if out.Teleported() {
		via = strings.ToLower(out.Via.String())
	}

	_, err := m.recorder.SaveMatch(storage.MatchResult{
		MatchID:    m.matchID,
		Winner:     out.Player,
		WinnerName: names[out.Player],
		Turns:      m.session.Turns(),
		Via:        via,
		Duration:   int(time.Since(m.startedAt).Seconds()),
	})
	if err != nil {
		m.logger.Warn("could not record match", "error", err)
	}
	m.saved = true
}

// Frame returns what the board currently shows. During a landing pause the
// acting player is drawn on the landing square with the move message.
func (m Model) Frame() board.Frame {
	f := board.FrameFromSnapshot(m.session.Snapshot(), m.session.Teleports(), m.cfg.Names(), m.cfg.Markers())

	if m.pause != nil {
		out := m.pause.outcome
		f.Positions[out.Player] = out.To
		f.Message = board.LandingMessage(out, f.Names)
		f.Winner = -1
	}
	return f
}

// Snapshot returns the engine snapshot.
func (m Model) Snapshot() engine.Snapshot {
	return m.session.Snapshot()
}

// Pausing reports whether a landing pause is on screen.
func (m Model) Pausing() bool {
	return m.pause != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		return renderTooSmall(m.width, m.height)
	}

	board.Draw(m.screen, m.Frame())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// tooSmall reports whether the terminal cannot fit the board surface.
// An unknown size (zero) is treated as large enough.
func (m Model) tooSmall() bool {
	if m.width == 0 || m.height == 0 {
		return false
	}
	return m.width < board.SurfaceW || m.height < board.SurfaceH
}

func renderTooSmall(width, height int) string {
	s := core.NewScreen(width, height)
	y := height / 2
	s.DrawTextCentered(y, "Window too small", core.ColorDefault)
	s.DrawTextCentered(y+1, "Please resize terminal", core.ColorDefault)
	return s.String()
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
