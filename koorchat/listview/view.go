// Package listview renders conversation-list snapshots as styled terminal
// rows.
package listview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/digimonkt/koor-chat-go/koorchat/convlist"
	"github.com/digimonkt/koor-chat-go/koorchat/timefmt"
)

const (
	maxPreviewLength = 42
	dotOnline        = "●"
	dotOffline       = "○"
)

// Styles groups the lipgloss styles used for a row.
type Styles struct {
	Online  lipgloss.Style
	Offline lipgloss.Style
	Name    lipgloss.Style
	Active  lipgloss.Style
	Preview lipgloss.Style
	Time    lipgloss.Style
	Badge   lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles returns the stock color scheme.
func DefaultStyles() Styles {
	return Styles{
		Online:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Offline: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Name:    lipgloss.NewStyle().Bold(true),
		Active:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Preview: lipgloss.NewStyle(),
		Time:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Badge:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
	}
}

// Placeholder is shown when history came back with no conversations.
const Placeholder = "No record found!"

// RenderRow renders one conversation row.
func RenderRow(st Styles, row convlist.Row) string {
	dot := st.Offline.Render(dotOffline)
	if row.Online {
		dot = st.Online.Render(dotOnline)
	}

	nameStyle := st.Name
	if row.Active {
		nameStyle = st.Active
	}
	name := nameStyle.Render(row.Name)

	parts := []string{dot, name}
	if row.HasMessage {
		parts = append(parts, st.Time.Render(timefmt.Time(row.Timestamp)))
		parts = append(parts, st.Preview.Render(truncate(row.Preview, maxPreviewLength)))
	}
	if row.Unread > 0 {
		parts = append(parts, st.Badge.Render(fmt.Sprintf("%d", row.Unread)))
	}
	return strings.Join(parts, " ")
}

// Render renders the whole snapshot, one row per line, newest first.
func Render(st Styles, snap convlist.Snapshot) string {
	if snap.Placeholder {
		return st.Muted.Render(Placeholder)
	}
	lines := make([]string, 0, len(snap.Rows))
	for _, row := range snap.Rows {
		lines = append(lines, RenderRow(st, row))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
