package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/game"
	"github.com/vovakirdan/tui-breakout/internal/storage"
)

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame

	lastTick  time.Time
	runStart  time.Time
	runActive bool // The player has left the menu and a run is underway
	recorded  bool // Score and run already persisted for this run
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the game.
func NewModel(g *game.Game, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	g.Reset(cfg)

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is fixed-size in simulation space; only the render
		// buffer follows the terminal.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordAbandonedRun()
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDt(m.lastTick, now)
	m.lastTick = now

	before := m.game.Phase()
	result := m.game.Step(m.inputFrame, dt)
	after := m.game.Phase()

	// A serve phase entered from the menu or a finished run marks the start
	// of a new run.
	if after == game.PhaseBallOnPaddle && (before == game.PhaseMainMenu || before.Terminal()) {
		m.runStart = now
		m.runActive = true
		m.recorded = false
	}

	if after.Terminal() && !m.recorded {
		m.recordRun(after)
	}

	m.inputFrame.Clear()

	if result.Quit {
		m.recordAbandonedRun()
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// recordRun persists the score and the run record for a finished session.
func (m *Model) recordRun(phase game.Phase) {
	m.recorded = true
	m.runActive = false

	if m.store == nil {
		return
	}

	tel := m.game.Telemetry()
	if tel.Score > 0 {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveScore(tel.Score)
	}

	outcome := storage.OutcomeGameOver
	if phase == game.PhaseVictory {
		outcome = storage.OutcomeVictory
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Score:        tel.Score,
		LevelReached: tel.Level,
		LivesLeft:    tel.Lives,
		Outcome:      outcome,
		DurationSecs: int(time.Since(m.runStart).Seconds()),
	})
}

// recordAbandonedRun persists a run the player quit mid-game.
func (m *Model) recordAbandonedRun() {
	if !m.runActive || m.recorded || m.store == nil {
		return
	}
	m.recorded = true
	m.runActive = false

	tel := m.game.Telemetry()
	if tel.Score > 0 {
		//nolint:errcheck // Best-effort save
		m.store.SaveScore(tel.Score)
	}

	//nolint:errcheck // Best-effort save
	m.store.SaveRun(storage.RunRecord{
		Score:        tel.Score,
		LevelReached: tel.Level,
		LivesLeft:    tel.Lives,
		Outcome:      storage.OutcomeQuit,
		DurationSecs: int(time.Since(m.runStart).Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local play session.
func Run(store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(game.New(), store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
