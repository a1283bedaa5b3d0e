// Package report renders the outcome of the last command: the per-resource
// lines of a reconciliation pass, or the egress-identity result.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/privlock/privlock-tui/internal/reconcile"
	"github.com/privlock/privlock-tui/internal/state"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/ui/view"
)

// Model is the pass-report view.
type Model struct {
	store    *state.Store
	theme    theme.Theme
	viewport viewport.Model
	width    int
	height   int
}

// New constructs a report view backed by the store.
func New(store *state.Store, th theme.Theme) view.Model {
	return &Model{store: store, theme: th, viewport: viewport.Model{}}
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	snapshot := m.store.Snapshot()

	var lines []string
	lines = append(lines, m.theme.Title.Render(snapshot.ReportTitle))
	lines = append(lines, "")

	switch {
	case snapshot.Identity != nil:
		lines = append(lines, m.identityLines(snapshot)...)
	case len(snapshot.Outcomes) > 0:
		for _, out := range snapshot.Outcomes {
			lines = append(lines, m.outcomeLine(out))
		}
	default:
		lines = append(lines, m.theme.Subtle.Render("nothing to report yet"))
	}

	lines = append(lines, "")
	lines = append(lines, m.theme.Subtle.Render("esc to return to the menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	m.viewport.SetContent(m.theme.Body.Copy().Width(max(0, m.width)).Render(content))
	return m.viewport.View()
}

// outcomeLine is the color-coded status line: green applied, yellow
// informational, red failed.
func (m *Model) outcomeLine(out reconcile.Outcome) string {
	var marker string
	switch out.Result {
	case reconcile.ResultApplied:
		marker = m.theme.Success.Render("[ok]")
	case reconcile.ResultChecked:
		marker = m.theme.Success.Render("[--]")
	case reconcile.ResultNotFound:
		marker = m.theme.Warning.Render("[??]")
	default:
		marker = m.theme.Danger.Render("[!!]")
	}

	line := fmt.Sprintf("%s %-11s %-34s %s", marker, out.Kind, out.Resource, out.Observed)
	if out.Reason != "" {
		line += ": " + m.theme.Danger.Render(out.Reason)
	}
	return strings.TrimRight(line, " ")
}

func (m *Model) identityLines(snapshot state.Snapshot) []string {
	report := snapshot.Identity

	var lines []string
	if report.PublicIP == "" {
		lines = append(lines, m.theme.Danger.Render("public IP unavailable"))
	} else {
		lines = append(lines, fmt.Sprintf("%s %s", m.theme.Subtle.Render("public ip"), m.theme.Success.Render(report.PublicIP)))
	}

	if report.Geo != nil {
		geo := report.Geo
		lines = append(lines,
			fmt.Sprintf("%s %s, %s, %s", m.theme.Subtle.Render("location "), geo.City, geo.Region, geo.Country),
			fmt.Sprintf("%s %.4f, %.4f", m.theme.Subtle.Render("lat/lon  "), geo.Lat, geo.Lon),
			fmt.Sprintf("%s %s", m.theme.Subtle.Render("isp      "), geo.ISP),
		)
	} else if report.PublicIP != "" {
		lines = append(lines, m.theme.Warning.Render("geolocation unavailable"))
	}

	if snapshot.IdentityErr != "" {
		lines = append(lines, "", m.theme.Danger.Render(snapshot.IdentityErr))
	}
	return lines
}

func (m *Model) Title() string { return "Report" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(3, height)
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
