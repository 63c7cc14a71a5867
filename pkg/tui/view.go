package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kpscli/kps/pkg/problem"
)

const (
	minWidth  = 40
	minHeight = 10
)

// View implements tea.Model.
func (m Model) View() string {
	w := max(m.width, minWidth)
	h := max(m.height, minHeight)

	if m.showHelpModal {
		return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.renderHelpModal())
	}

	rule := strings.Repeat("─", w)
	// header, rule above and below the panels, footer
	bodyHeight := h - 4

	left := listWidth(w)
	right := max(w-left-1, 20)
	divider := strings.TrimSuffix(strings.Repeat(dividerStyle.Render("│")+"\n", bodyHeight), "\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panel(m.renderListPanel(left, bodyHeight), left, bodyHeight),
		divider,
		panel(m.renderPreviewPanel(right, bodyHeight), right, bodyHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(w),
		rule,
		body,
		rule,
		m.renderFooter(w),
	)
}

// panel pins block to exactly width x height cells.
func panel(block string, width, height int) string {
	return lipgloss.NewStyle().
		Width(width).MaxWidth(width).
		Height(height).MaxHeight(height).
		Render(block)
}

func listWidth(total int) int {
	w := total / 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m Model) renderHeader(width int) string {
	title := titleStyle.Render("kps")
	if name := m.store.Config.ProjectName; name != "" {
		title += mutedStyle.Render(" · " + name)
	}

	counts := countByPlatform(m.items)
	var parts []string
	for _, platform := range problem.Platforms {
		parts = append(parts, fmt.Sprintf("%s %d", platform.DisplayName(), counts[platform]))
	}
	count := mutedStyle.Render(strings.Join(parts, "  "))

	gap := width - lipgloss.Width(title) - lipgloss.Width(count)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + count
}

func (m Model) renderListPanel(width, height int) string {
	if len(m.items) == 0 {
		return emptyStyle.Render("No solutions yet.\nRun 'kps new' to create one.")
	}

	// Scroll so the cursor stays visible.
	start := 0
	if m.cursor >= height {
		start = m.cursor - height + 1
	}
	end := start + height
	if end > len(m.items) {
		end = len(m.items)
	}

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, m.renderItem(m.items[i], i == m.cursor, width))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderItem(item Item, isSelected bool, width int) string {
	if item.IsSectionHeader {
		return sectionStyle(item.Platform).Render(item.Name)
	}

	icon := markerRow
	if isSelected {
		icon = markerCursor
	}
	line := fmt.Sprintf(" %s %s", icon, item.Solution.Problem.FileName())
	if isSelected {
		pad := width - lipgloss.Width(line)
		if pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		return cursorStyle.Render(line)
	}
	return rowStyle.Render(line)
}

func (m Model) renderPreviewPanel(width, height int) string {
	sol := m.Selected()
	if sol == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(previewTitleStyle.Render(sol.Problem.String()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(sol.Problem.URL()))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.store.Root.Rel(sol.Path)))
	b.WriteString("\n")

	lines := strings.Split(strings.Trim(m.preview, "\n"), "\n")
	if limit := height - 3; len(lines) > limit && limit > 0 {
		lines = lines[:limit]
	}
	b.WriteString(strings.Join(lines, "\n"))

	return previewStyle.Width(width).Render(b.String())
}

func (m Model) renderFooter(width int) string {
	if m.statusMsg != "" && m.now().Before(m.statusTimeout) {
		return statusStyle.Render(m.statusMsg)
	}
	return mutedStyle.Render(m.keys.ShortHelp())
}

func (m Model) renderHelpModal() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	for _, binding := range m.keys.FullHelp() {
		b.WriteString(helpKeyStyle.Render(binding[0]))
		b.WriteString(helpDescStyle.Render(binding[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Press Esc or ? to close"))

	return modalStyle.Render(b.String())
}
