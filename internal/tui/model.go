// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/verte-zerg/guessmaster/internal/game"
	"github.com/verte-zerg/guessmaster/internal/model"
	"github.com/verte-zerg/guessmaster/internal/stats"
	"github.com/verte-zerg/guessmaster/internal/store"
)

// Model implements the Bubble Tea game UI.
type Model struct {
	session *game.Session
	store   *store.Store
	logger  zerolog.Logger

	width  int
	height int

	input     textinput.Model
	menuIndex int

	showBoard bool
	board     table.Model
	recent    table.Model
	report    stats.Report
	boardErr  string
}

// NewModel constructs a game TUI model. st may be nil to disable the scoreboard.
func NewModel(session *game.Session, st *store.Store, logger zerolog.Logger) *Model {
	m := &Model{
		session: session,
		store:   st,
		logger:  logger,
		input:   newGuessInput(),
		board:   buildBoardTable(nil),
		recent:  buildRecentTable(nil),
	}
	if session.State().Status == game.StatusInProgress {
		m.input.Focus()
	}
	m.refreshReport()
	return m
}

func newGuessInput() textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "???"
	input.CharLimit = 3
	input.Width = 4
	return input
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.input.Focused() {
		return textinput.Blink
	}
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyTab:
			m.showBoard = !m.showBoard
			return m, nil
		case tea.KeyEsc:
			m.newGame()
			return m, nil
		}
		switch m.session.State().Status {
		case game.StatusSelecting:
			return m.updateSelecting(msg)
		case game.StatusInProgress:
			return m.updatePlaying(msg)
		default:
			return m.updateFinished(msg)
		}
	}
	if m.input.Focused() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tiers := game.Tiers()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.menuIndex = (m.menuIndex + len(tiers) - 1) % len(tiers)
		return m, nil
	case "down", "j":
		m.menuIndex = (m.menuIndex + 1) % len(tiers)
		return m, nil
	case "enter":
		return m, m.startRound(tiers[m.menuIndex])
	}
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if tier, err := game.ParseTier(string(msg.Runes)); err == nil {
			return m, m.startRound(tier)
		}
	}
	return m, nil
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		m.submit()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "enter", "n":
		m.newGame()
	case "r":
		return m, m.startRound(m.session.State().Tier)
	}
	return m, nil
}

func (m *Model) startRound(tier game.Tier) tea.Cmd {
	m.session.Start(tier)
	m.input.Reset()
	for i, t := range game.Tiers() {
		if t == tier {
			m.menuIndex = i
		}
	}
	return m.input.Focus()
}

func (m *Model) newGame() {
	m.session.Reset()
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) submit() {
	switch m.session.SubmitGuess(m.input.Value()) {
	case game.OutcomeInvalidInput, game.OutcomeIgnored:
		return
	}
	m.input.Reset()
	if m.session.State().Finished() {
		m.input.Blur()
		m.finishRound()
	}
}

func (m *Model) finishRound() {
	if m.store == nil {
		return
	}
	result, ok := m.session.Result()
	if !ok {
		return
	}
	if _, err := m.store.InsertRound(context.Background(), result); err != nil {
		m.logger.Warn().Err(err).Msg("failed to record round")
	}
	m.refreshReport()
}

func (m *Model) refreshReport() {
	if m.store == nil {
		return
	}
	report, err := stats.BuildReport(context.Background(), m.store, model.ScoreFilter{})
	if err != nil {
		m.logger.Warn().Err(err).Msg("failed to load scoreboard")
		m.boardErr = err.Error()
		return
	}
	m.boardErr = ""
	m.report = report
	m.board = buildBoardTable(report.Tiers)
	m.recent = buildRecentTable(report.Recent)
}
