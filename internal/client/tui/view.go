package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/oluccaa/qualidade-sub001/internal/explorer"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

const gridCellWidth = 22

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	crumbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	cursorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	folderStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	approvedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pendingStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cellStyle     = lipgloss.NewStyle().Width(gridCellWidth).Border(lipgloss.RoundedBorder()).Padding(0, 1)
	activeCell    = cellStyle.BorderForeground(lipgloss.Color("212"))
	viewerStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).Padding(1, 2)
)

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.loginView()
	case screenViewer:
		return m.viewerView()
	case screenNotFound:
		return m.notFoundView()
	}

	var b strings.Builder
	b.WriteString(m.browseView())
	if m.screen == screenPrompt {
		b.WriteString("\n")
		b.WriteString(m.promptLabel())
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString(m.footer())
	return b.String()
}

func (m Model) loginView() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Steel Quality Portal"))
	b.WriteString("\n\n")
	b.WriteString(m.email.View())
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")
	if m.busy {
		b.WriteString(m.spinner.View() + " signing in\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	}
	b.WriteString(statusStyle.Render("tab switch field • enter sign in • ctrl+c quit"))
	return b.String()
}

func (m Model) promptLabel() string {
	switch m.prompt {
	case promptReject:
		return fmt.Sprintf("Reject %s: ", m.target.Name)
	case promptConfirmDelete:
		return fmt.Sprintf("Delete %d item(s)? ", m.explorer.Selection().Count())
	case promptGoto:
		return "Go to: "
	default:
		return "Search: "
	}
}

func (m Model) browseView() string {
	st := m.explorer.State()

	names := make([]string, 0, len(st.Breadcrumbs))
	for _, c := range st.Breadcrumbs {
		names = append(names, c.Name)
	}
	header := crumbStyle.Render(strings.Join(names, " / "))
	if st.SearchTerm != "" {
		header += crumbStyle.Render(fmt.Sprintf("  (search %q)", st.SearchTerm))
	}

	var body string
	switch {
	case len(st.Items) == 0:
		body = statusStyle.Render("empty folder")
	case st.ViewMode == explorer.ViewGrid:
		body = m.gridView(st.Items)
	default:
		body = m.listView(st.Items)
	}

	out := header + "\n\n" + body + "\n"
	if st.HasMore {
		out += statusStyle.Render("more entries: press m") + "\n"
	}
	return out
}

func (m Model) marks(n models.FileNode) string {
	sel := "[ ]"
	if m.explorer.Selection().Has(n.ID) {
		sel = "[x]"
	}
	fav := " "
	if n.IsFavorite {
		fav = "★"
	}
	return sel + " " + fav
}

func (m Model) listView(items []models.FileNode) string {
	rows := make([]string, 0, len(items))
	for i, n := range items {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("> ")
		}
		rows = append(rows, fmt.Sprintf("%s%s %s %s", pointer, m.marks(n), nodeName(n), statusBadge(n)))
	}
	return strings.Join(rows, "\n")
}

func (m Model) gridView(items []models.FileNode) string {
	perRow := 4
	if m.width > 0 {
		perRow = max(1, m.width/(gridCellWidth+4))
	}

	var rows []string
	for start := 0; start < len(items); start += perRow {
		end := min(start+perRow, len(items))
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			n := items[i]
			style := cellStyle
			if i == m.cursor {
				style = activeCell
			}
			cells = append(cells, style.Render(m.marks(n)+"\n"+nodeName(n)+"\n"+statusBadge(n)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func nodeName(n models.FileNode) string {
	if n.IsFolder() {
		return folderStyle.Render(n.Name + "/")
	}
	return n.Name
}

func statusBadge(n models.FileNode) string {
	if n.IsFolder() || n.Metadata == nil {
		return ""
	}
	switch n.Metadata.Status {
	case models.StatusApproved:
		return approvedStyle.Render("APPROVED")
	case models.StatusRejected:
		return rejectedStyle.Render("REJECTED")
	default:
		return pendingStyle.Render("PENDING")
	}
}

func (m Model) footer() string {
	var b strings.Builder
	b.WriteString("\n")
	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " working\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n")
	case m.status != "":
		b.WriteString(statusStyle.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewerView() string {
	st := m.viewer.State()

	var b strings.Builder
	b.WriteString(titleStyle.Render(st.File.Name))
	b.WriteString(fmt.Sprintf("  %d/%d  zoom %.0f%%", st.Index+1, st.Count, st.Zoom*100))
	if st.Fullscreen {
		b.WriteString("  fullscreen")
	}
	b.WriteString("\n\n")
	switch {
	case st.Err != nil:
		b.WriteString(errorStyle.Render(st.Err.Error()))
	case st.URL == "":
		b.WriteString(m.spinner.View() + " loading")
	default:
		b.WriteString(st.URL)
	}
	if st.File.Metadata != nil {
		b.WriteString("\n\n" + statusBadge(st.File))
		if st.File.Metadata.RejectionReason != "" {
			b.WriteString("  " + st.File.Metadata.RejectionReason)
		}
	}

	style := viewerStyle
	if st.Fullscreen && m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(b.String()) + "\n" +
		statusStyle.Render("←/→ sibling • +/- zoom • 0 reset • f fullscreen • esc close")
}

func (m Model) notFoundView() string {
	return errorStyle.Render("Not found") + "\n\n" +
		fmt.Sprintf("Document %q does not exist in this folder or you cannot see it.\n\n", m.missing) +
		statusStyle.Render("backspace back")
}
