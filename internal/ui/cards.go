package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/render"
)

// gridColumns returns how many cards fit per row: the configured count,
// reduced until each card is at least MinCardWidth wide.
func gridColumns(configured, width int) int {
	cols := max(configured, 1)
	for cols > 1 && cardWidth(cols, width) < MinCardWidth {
		cols--
	}
	return cols
}

// cardWidth is the outer width of one card in a row of cols cards.
func cardWidth(cols, width int) int {
	if cols <= 0 {
		cols = 1
	}
	return (width - CardGap*(cols-1)) / cols
}

// renderCard draws one fragment at the given outer width.
func (m Model) renderCard(f render.Fragment, width int) string {
	styles := m.theme.Styles()
	box := styles.Card
	if f.Leader {
		box = styles.LeaderCard
	}
	inner := max(width-box.GetHorizontalFrameSize(), 4)

	nameStyle := styles.Text.Bold(true)
	if f.Leader {
		nameStyle = styles.WarningText.Bold(true)
	}

	lines := []string{
		nameStyle.Render(truncate(f.Name, inner)),
		styles.AccentText.Render(truncate("↗ "+f.LinkLabel, inner)),
		styles.FaintText.Render(truncateMiddle(f.Profile, inner)),
		styles.MutedText.Render(truncateMiddle("◉ "+f.Image, inner)),
	}
	return box.Width(inner + box.GetHorizontalPadding()).Render(strings.Join(lines, "\n"))
}

// renderGrid lays cards out in rows of cols.
func (m Model) renderGrid(cards []render.Fragment, cols, width int) string {
	if len(cards) == 0 {
		return ""
	}
	w := cardWidth(cols, width)
	gap := strings.Repeat(" ", CardGap)

	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		var cells []string
		for i, card := range cards[start:end] {
			if i > 0 {
				cells = append(cells, gap)
			}
			cells = append(cells, m.renderCard(card, w))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSection draws a mounted section, or nothing when it is hidden.
func (m Model) renderSection(sec section, width int) string {
	if !sec.shown || sec.empty() {
		return ""
	}
	styles := m.theme.Styles()

	var b strings.Builder
	if sec.Title != "" {
		b.WriteString(styles.SectionTitle.Render(sec.Title))
		b.WriteString("\n")
	}
	if sec.Message != "" {
		msgStyle := styles.MutedText
		if sec.Title == render.ErrorTitle {
			msgStyle = styles.DangerText
		}
		b.WriteString(msgStyle.Render(sec.Message))
		b.WriteString("\n")
		return b.String()
	}

	cols := gridColumns(m.columns(), width)
	if grid := m.renderGrid(sec.visibleCards(), cols, width); grid != "" {
		b.WriteString(grid)
		b.WriteString("\n")
	}
	return b.String()
}
