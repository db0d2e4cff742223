package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"burrow/internal/domain"
	"burrow/internal/format"
	"burrow/internal/report"
)

const (
	usageBarWidth = 20
	maxPathWidth  = 60
	sizeColWidth  = 16
)

type uiStyles struct {
	headerStyle lipgloss.Style
	mutedStyle  lipgloss.Style
	sizeStyle   lipgloss.Style
	barStyle    lipgloss.Style
	dirStyle    lipgloss.Style
	warnStyle   lipgloss.Style
	cursorStyle lipgloss.Style
	panelBorder lipgloss.Style
}

func stylesFor(model Model) uiStyles {
	if strings.ToLower(model.theme) == "light" {
		return uiStyles{
			headerStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
			mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
			sizeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
			barStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
			dirStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
			warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("124")).Bold(true),
			cursorStyle: lipgloss.NewStyle().Reverse(true),
			panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return uiStyles{
		headerStyle: lipgloss.NewStyle().Bold(true),
		mutedStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		sizeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
		barStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		dirStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),
		warnStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true),
		cursorStyle: lipgloss.NewStyle().Reverse(true),
		panelBorder: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
	}
}

func (model Model) View() string {
	styles := stylesFor(model)
	if model.showHelp {
		return renderHelpView(model, styles)
	}
	header := renderHeader(model, styles)
	body := renderRows(model, styles)
	footer := renderFooter(model, styles)
	return strings.Join([]string{header, body, footer}, "\n")
}

func renderHeader(model Model, styles uiStyles) string {
	title := styles.headerStyle.Render("Disk Usage") + "  " + truncatePath(model.session.Current(), maxPathWidth)
	totals := fmt.Sprintf("%s %s    %s %s",
		styles.mutedStyle.Render("Total:"),
		styles.headerStyle.Render(format.Bytes(model.listing.TotalBytes)),
		styles.mutedStyle.Render("Items:"),
		styles.headerStyle.Render(humanize.Comma(int64(len(model.listing.Entries)))),
	)
	content := title + "\n" + totals
	return styles.panelBorder.Width(contentWidth(model.width)).Render(content)
}

func renderRows(model Model, styles uiStyles) string {
	height := model.listHeight()
	if height < 3 {
		height = 3
	}
	lines := make([]string, 0, height)

	switch {
	case model.loading && !model.haveListing:
		lines = append(lines, model.spin.View()+" Scanning...")
	case model.listing.Failed():
		lines = append(lines, styles.warnStyle.Render(model.listing.Fail.String()))
	case len(model.listing.Entries) == 0 && !model.hasParentRow():
		lines = append(lines, styles.mutedStyle.Render("(empty directory)"))
	default:
		lines = append(lines, entryLines(model, styles, height)...)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:height], "\n")
}

func entryLines(model Model, styles uiStyles, height int) []string {
	maxBytes := model.listing.MaxEntryBytes()
	rows := model.rowCount()
	start := model.viewTop
	if start > rows {
		start = rows
	}
	end := start + height
	if end > rows {
		end = rows
	}

	lines := make([]string, 0, end-start)
	for index := start; index < end; index++ {
		line := renderRow(model, styles, index, maxBytes)
		if index == model.cursor {
			line = styles.cursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	if rows == len(model.listing.Entries)+1 && len(model.listing.Entries) == 0 {
		lines = append(lines, styles.mutedStyle.Render("(empty directory)"))
	}
	return lines
}

func renderRow(model Model, styles uiStyles, index int, maxBytes int64) string {
	if model.hasParentRow() {
		if index == 0 {
			return fmt.Sprintf("%*s  %-*s  %s", sizeColWidth, "/..", usageBarWidth, "",
				styles.mutedStyle.Render("(parent directory)"))
		}
		index--
	}
	entry := model.listing.Entries[index]

	sizeLabel := format.EntrySize(entry)
	bar := usageBar(entry, maxBytes)

	name := entry.Name
	if entry.Kind == domain.KindDir {
		name = styles.dirStyle.Render("/" + name)
	}
	if !entry.SizeKnown() {
		name += "  " + styles.warnStyle.Render("permission denied")
	}
	return fmt.Sprintf("%s  %s  %s",
		styles.sizeStyle.Render(fmt.Sprintf("%*s", sizeColWidth, sizeLabel)),
		styles.barStyle.Render(fmt.Sprintf("%-*s", usageBarWidth, bar)),
		name)
}

// usageBar scales against the largest entry of the current listing;
// bars are not comparable across directories. Unknown sizes draw an
// empty bar but never feed the total.
func usageBar(entry domain.Entry, maxBytes int64) string {
	if !entry.SizeKnown() || maxBytes <= 0 {
		return ""
	}
	pct := float64(entry.SizeBytes) / float64(maxBytes) * 100.0
	return strings.TrimRight(report.Bar(pct, usageBarWidth), "░")
}

func renderFooter(model Model, styles uiStyles) string {
	status := model.status
	if model.loading {
		status = model.spin.View() + " " + status
	}
	statusStyle := styles.mutedStyle
	if strings.HasPrefix(model.status, "!") {
		statusStyle = styles.warnStyle
	}
	keys := "→/enter open  ←/backspace parent  d delete  r refresh  ? help  q quit"
	if model.confirmingDelete {
		keys = "y confirm  n cancel"
	}
	return statusStyle.Render(status) + "\n" + styles.mutedStyle.Render(keys)
}

func renderHelpView(model Model, styles uiStyles) string {
	lines := []string{
		styles.headerStyle.Render("Disk Usage Explorer"),
		"",
		styles.headerStyle.Render("Navigation"),
		"↑/↓ move cursor",
		"→/enter open directory (files cannot be opened)",
		"←/backspace go to parent (/.. row does the same)",
		"r refresh the current directory",
		"",
		styles.headerStyle.Render("Deletion"),
		"d asks for confirmation; whitelisted paths are refused",
		"actual purging is done by the cleanup commands",
		"",
		styles.headerStyle.Render("Notes"),
		"sizes marked with + are lower bounds (some subtree was unreadable)",
		"bars compare entries within the current directory only",
		"",
		"Press ? to close help, q to quit",
	}
	width := model.width
	if width <= 0 {
		width = 80
	}
	return styles.panelBorder.Width(contentWidth(width)).Render(strings.Join(lines, "\n"))
}

func truncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	return "..." + path[len(path)-(max-3):]
}

func contentWidth(width int) int {
	if width-2 < 20 {
		return 20
	}
	return width - 2
}
