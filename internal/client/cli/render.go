package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/oluccaa/qualidade-sub001/internal/explorer"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

const timeLayout = "2006-01-02 15:04"

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func statusLabel(n models.FileNode) string {
	if n.IsFolder() || n.Metadata == nil {
		return ""
	}
	s := string(n.Metadata.Status)
	if n.Metadata.Status == models.StatusRejected && n.Metadata.RejectionReason != "" {
		s += ": " + n.Metadata.RejectionReason
	}
	return s
}

func renderListing(s explorer.State, selected func(string) bool) string {
	var b strings.Builder

	crumbs := make([]string, 0, len(s.Breadcrumbs))
	for _, c := range s.Breadcrumbs {
		crumbs = append(crumbs, c.Name)
	}
	b.WriteString(strings.Join(crumbs, " / "))
	if s.SearchTerm != "" {
		fmt.Fprintf(&b, "  (search: %q)", s.SearchTerm)
	}
	b.WriteString("\n")

	if len(s.Items) == 0 {
		b.WriteString("(empty)")
		return b.String()
	}

	t := newTable("#", "", "Name", "Type", "Size", "Status", "Updated")
	for i, n := range s.Items {
		mark := ""
		if selected(n.ID) {
			mark = "*"
		}
		if n.IsFavorite {
			mark += "♥"
		}
		size := ""
		if !n.IsFolder() {
			size = humanSize(n.Size)
		}
		t.Row(strconv.Itoa(i+1), mark, n.Name, string(n.Type), size, statusLabel(n), n.UpdatedAt.Local().Format(timeLayout))
	}
	b.WriteString(t.String())

	if s.HasMore {
		fmt.Fprintf(&b, "\n%d shown, type 'more' for the next page", len(s.Items))
	}
	return b.String()
}

func renderHistory(events []models.InspectionEvent) string {
	if len(events) == 0 {
		return "No inspections recorded"
	}
	t := newTable("When", "By", "From", "To", "Reason")
	for _, e := range events {
		t.Row(e.CreatedAt.Local().Format(timeLayout), e.ActorName, string(e.FromStatus), string(e.ToStatus), e.RejectionReason)
	}
	return t.String()
}

func renderMetadata(n models.FileNode) string {
	m := n.Metadata
	if m == nil {
		return n.Name + ": no inspection data"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n  batch: %s  grade: %s  invoice: %s\n  status: %s", n.Name, m.BatchNumber, m.Grade, m.InvoiceNumber, m.Status)
	if m.InspectedAt != nil {
		fmt.Fprintf(&b, " by %s at %s", m.InspectedBy, m.InspectedAt.Local().Format(timeLayout))
	}
	if m.RejectionReason != "" {
		fmt.Fprintf(&b, "\n  reason: %s", m.RejectionReason)
	}
	return b.String()
}
