package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/guessmaster/internal/game"
)

const cardWidth = 44

var (
	yellow = lipgloss.Color("#FACC15")
	cyan   = lipgloss.Color("#22D3EE")
	orange = lipgloss.Color("#FB923C")
	green  = lipgloss.Color("#22C55E")
	red    = lipgloss.Color("#EF4444")
	pink   = lipgloss.Color("#EC4899")

	tierColors = map[game.Tier]lipgloss.Color{
		game.TierEasy:   lipgloss.Color("#4ADE80"),
		game.TierMedium: yellow,
		game.TierHard:   orange,
		game.TierInsane: lipgloss.Color("#F87171"),
	}

	cardStyle = lipgloss.NewStyle().
			Width(cardWidth).
			Padding(1, 2).
			Border(lipgloss.ThickBorder(), true).
			BorderForeground(yellow)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#000000")).
			Background(yellow).
			Bold(true).
			Padding(0, 2)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE047")).Bold(true)
	menuStyle     = lipgloss.NewStyle().
			Width(cardWidth-8).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	menuActiveStyle = menuStyle.Copy().BorderForeground(pink).Bold(true)
	usedStyle       = lipgloss.NewStyle().
			Foreground(cyan).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(cyan)
	leftStyle = usedStyle.Copy().Foreground(orange).BorderForeground(orange)
	inputBox  = lipgloss.NewStyle().
			Foreground(green).
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), true).
			BorderForeground(green)
	actionStyle   = lipgloss.NewStyle().Foreground(pink).Bold(true)
	alertStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	newGameStyle  = lipgloss.NewStyle().Foreground(yellow).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	retroStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE047")).Bold(true)
	boardErrStyle = lipgloss.NewStyle().Foreground(red)
)

// View implements tea.Model.
func (m *Model) View() string {
	sections := []string{m.renderCard(), retroStyle.Render("● INSERT COIN ●  |  ● PRESS START ●")}
	if m.showBoard {
		sections = append(sections, m.renderBoard())
	}
	if footer := m.renderFooter(); footer != "" {
		sections = append(sections, footer)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderCard() string {
	st := m.session.State()
	lines := []string{titleStyle.Render("GUESS MASTER"), ""}
	if st.Status == game.StatusSelecting {
		lines = append(lines, subtitleStyle.Render("SELECT DIFFICULTY"), "")
		for i, tier := range game.Tiers() {
			lines = append(lines, m.renderTierButton(i, tier))
		}
		lines = append(lines, "", hintStyle.Render("1-4 or ↑↓ enter · tab board · q quit"))
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	}

	header := tierLabel(st.Tier) + subtitleStyle.Render(" | "+game.RangeLabel())
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		usedStyle.Render("USED: "+game.Counter(st.Attempts)),
		"  ",
		leftStyle.Render("LEFT: "+game.Counter(st.Remaining())),
	)
	lines = append(lines, header, "", counters, "", m.renderInput(st), actionStyle.Render(game.ActionLabel(st)))
	if msg := game.Message(st); msg != "" {
		lines = append(lines, "", outcomeStyle(st.Last).Render(msg))
	}
	lines = append(lines, "", newGameStyle.Render("⟲ NEW GAME ⟲")+hintStyle.Render(" esc"))
	if st.Finished() {
		lines = append(lines, hintStyle.Render("enter new game · r replay · q quit"))
	}
	if trail := guessTrail(st.Guesses); trail != "" {
		lines = append(lines, hintStyle.Render(trail))
	}
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) renderTierButton(i int, tier game.Tier) string {
	text := tierLabel(tier) + " - " + lipgloss.NewStyle().Foreground(cyan).Render(fmt.Sprintf("%d TRIES", tier.MaxTries()))
	text = fmt.Sprintf("%d  %s", i+1, text)
	if i == m.menuIndex {
		return menuActiveStyle.Render("► " + text + " ◄")
	}
	return menuStyle.Render(text)
}

func (m *Model) renderInput(st game.State) string {
	if st.Finished() {
		return inputBox.Copy().Faint(true).Render("---")
	}
	return inputBox.Render(m.input.View())
}

func (m *Model) renderFooter() string {
	if m.store == nil || len(m.report.Rounds) == 0 {
		return ""
	}
	s := m.report.Summary
	segments := []string{
		fmt.Sprintf("Rounds %d", s.Rounds),
		fmt.Sprintf("Won %d · %.1f%%", s.Wins, s.WinRate*100),
		fmt.Sprintf("Streak %d", s.Streak),
	}
	if s.Best > 0 {
		segments = append(segments, fmt.Sprintf("Best %d %s", s.Best, strings.ToLower(game.Pluralize(s.Best))))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func tierLabel(tier game.Tier) string {
	return lipgloss.NewStyle().Foreground(tierColors[tier]).Bold(true).Render(tier.Label())
}

func outcomeStyle(out game.Outcome) lipgloss.Style {
	switch out {
	case game.OutcomeWon:
		return alertStyle.Copy().Background(green)
	case game.OutcomeTooLow:
		return alertStyle.Copy().Background(cyan)
	case game.OutcomeTooHigh:
		return alertStyle.Copy().Background(orange)
	default:
		return alertStyle.Copy().Background(red)
	}
}

func guessTrail(guesses []int) string {
	if len(guesses) == 0 {
		return ""
	}
	parts := make([]string, len(guesses))
	for i, g := range guesses {
		parts[i] = fmt.Sprintf("%d", g)
	}
	return "Guesses: " + strings.Join(parts, " ")
}
