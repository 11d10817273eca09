package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/antonvlasov/swoop/internal/core"
	"github.com/antonvlasov/swoop/internal/sim"
	"github.com/antonvlasov/swoop/internal/storage"
)

// Model is the Bubble Tea model driving a Swoop session.
type Model struct {
	game    *sim.Game
	screen  *core.Screen
	store   *storage.Store
	profile string
	clock   sim.Clock
	runtime core.RuntimeConfig

	frame         int // for invulnerability blink
	runBestStreak int
	runSaved      bool // one history row per game over
	quitting      bool
	backToCaller  bool
}

// NewModel creates a Bubble Tea model around an already constructed game.
// store may be nil; run history is then skipped.
func NewModel(game *sim.Game, store *storage.Store, rt core.RuntimeConfig) Model {
	return Model{
		game:    game,
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:   store,
		profile: rt.Profile,
		clock:   sim.NewWallClock(game.Config().Physics.MaxFrameDelta),
		runtime: rt,
		// A game handed over mid game-over already had its run recorded
		// by the model that left it there.
		runSaved: game.State() == sim.RunGameOver,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Only the projection changes; the simulation world is fixed size.
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey maps keyboard input onto the game's input methods. The game
// itself decides whether an input applies in its current state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.recordRun()
		m.quitting = true
		return m, tea.Quit

	case "b":
		if m.game.State() == sim.RunGameOver || m.game.State() == sim.RunPaused {
			m.recordRun()
			m.backToCaller = true
			return m, tea.Quit
		}

	case " ", "up", "w":
		m.game.Tap()

	case "p":
		if m.game.State() == sim.RunPaused {
			m.game.Resume()
		} else {
			m.game.Pause()
		}

	case "esc":
		m.game.Pause()

	case "r":
		if m.game.State() == sim.RunGameOver {
			m.recordRun()
			m.runSaved = false
			m.runBestStreak = 0
			m.game.Restart()
		}

	case "c":
		// Continuing resumes the same run, so nothing is recorded yet.
		if m.game.ContinueAvailable() {
			m.game.ContinueWithAd()
		}
	}

	return m, nil
}

// handleTick advances the simulation by real elapsed time.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.frame++
	m.game.Tick(m.clock.Delta())

	if s := m.game.Streak(); s > m.runBestStreak {
		m.runBestStreak = s
	}

	return m, tickCmd(m.runtime.TickRate)
}

// recordRun appends a history row once the run is truly over. Deferred to
// restart/back/quit rather than the game-over tick so a continued run gets
// a single row with its final score. Best-effort: a storage failure never
// interrupts play.
func (m *Model) recordRun() {
	if m.game.State() != sim.RunGameOver || m.runSaved {
		return
	}
	m.runSaved = true
	if m.store == nil || m.game.Score() == 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.RunEntry{
		Profile:       m.profile,
		Score:         m.game.Score(),
		BestStreak:    m.runBestStreak,
		Phase:         m.game.Phase().String(),
		ContinuesUsed: m.game.ContinuesUsed(),
		DurationSecs:  m.game.Now(),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToCaller {
		return ""
	}

	hidePlayer := m.game.Invulnerable() && (m.frame/6)%2 == 1
	drawGame(m.screen, m.game, hidePlayer)
	m.drawOverlay()

	return RenderScreen(m.screen)
}

// drawOverlay draws the state-dependent message box over the world.
func (m Model) drawOverlay() {
	switch m.game.State() {
	case sim.RunWaiting:
		drawCenteredMessage(m.screen, "SWOOP", "Press Space to start")

	case sim.RunPaused:
		drawCenteredMessage(m.screen, "PAUSED", "P to resume  |  B for records")

	case sim.RunGameOver:
		lines := []string{
			fmt.Sprintf("Score: %d  |  Best: %d", m.game.Score(), m.game.BestScore()),
			"R to restart  |  B for records",
		}
		if m.game.ContinueAvailable() {
			lines = append(lines, "C to continue")
		}
		drawCenteredMessage(m.screen, "GAME OVER", lines...)
	}
}

// IsQuitting reports whether the user quit the program entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToCaller reports whether the user backed out to the caller's screen.
func (m Model) BackToCaller() bool {
	return m.backToCaller
}

// Run drives the game in the terminal until the user quits. Backing out of
// a paused or finished run opens the records browser; backing out of that
// returns to the same game.
func Run(game *sim.Game, store *storage.Store, rt core.RuntimeConfig) error {
	for {
		model := NewModel(game, store, rt)

		p := tea.NewProgram(
			model,
			tea.WithAltScreen(),
		)

		final, err := p.Run()
		if err != nil {
			return err
		}

		m, ok := final.(Model)
		if !ok || !m.BackToCaller() {
			return nil
		}
		rt = m.runtime // carry resizes across screens

		goBack, err := RunRecords(store, rt.Profile, rt.ScreenW, rt.ScreenH)
		if err != nil || !goBack {
			return err
		}
	}
}
