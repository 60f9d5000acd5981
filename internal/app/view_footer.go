package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) renderStatus(width, rows int) string {
	statusRows, _ := m.buildStatusRows(width, rows)
	style := statusStyle
	if m.mode == modeFilter {
		style = filterStatus
	}
	for len(statusRows) < rows {
		statusRows = append(statusRows, "")
	}

	rendered := make([]string, 0, len(statusRows))
	for _, line := range statusRows {
		line = " " + truncate(line, max(0, width-1))
		rendered = append(rendered, style.Width(width).Render(line))
	}
	return strings.Join(rendered, "\n")
}

// buildStatusRows packs the help and status segments into at most rowLimit
// rows of width columns, joined by " | ". The second result is false when
// something had to be cut.
func (m *Model) buildStatusRows(width, rowLimit int) ([]string, bool) {
	if width <= 0 || rowLimit <= 0 {
		return nil, true
	}

	help := m.statusHelpSegments()
	status := strings.TrimSpace(m.status)

	segments := make([]string, 0, len(help)+1)
	if len(help) > 0 {
		segments = append(segments, m.t("footer.keys", nil)+": "+help[0])
		segments = append(segments, help[1:]...)
	}
	if status != "" {
		segments = append(segments, m.t("footer.status", nil)+": "+status)
	}

	rows := make([]string, 1, rowLimit)
	rowIndex := 0
	fit := true
	for _, seg := range segments {
		segment := strings.TrimSpace(seg)
		if segment == "" {
			continue
		}
		if lipgloss.Width(segment) > width {
			segment = truncateWithEllipsis(segment, width)
		}

		candidate := segment
		if rows[rowIndex] != "" {
			candidate = rows[rowIndex] + " | " + segment
		}
		if lipgloss.Width(candidate) <= width {
			rows[rowIndex] = candidate
			continue
		}
		if rowIndex+1 < rowLimit {
			rowIndex++
			rows = append(rows, segment)
			continue
		}

		fit = false
		rows[rowIndex] = truncateWithEllipsis(rows[rowIndex]+" | "+segment, width)
		break
	}
	return rows, fit
}

func (m *Model) statusHelpSegments() []string {
	if m.mode == modeFilter {
		return []string{"Enter ✓", "Esc ✗"}
	}
	return []string{
		m.primaryActionKey(actionSectionNext, "→") + "/" + m.primaryActionKey(actionSectionPrev, "←") + " " + m.t("key.section", nil),
		m.primaryActionKey(actionLanguageToggle, "T") + " " + m.t("key.language", nil),
		m.primaryActionKey(actionScrollUp, "↑") + "/" + m.primaryActionKey(actionScrollDown, "↓") + " " + m.t("key.scroll", nil),
		m.primaryActionKey(actionFilter, "/") + " " + m.t("key.filter", nil),
		m.primaryActionKey(actionHelp, "?") + " " + m.t("key.help", nil),
		m.primaryActionKey(actionQuit, "Q") + " " + m.t("key.quit", nil),
	}
}
