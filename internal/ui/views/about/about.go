// Package about renders the documentation screen: what the tool manages
// and on which host it is running.
package about

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shirou/gopsutil/v3/host"

	"github.com/privlock/privlock-tui/internal/policy"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/ui/view"
	"github.com/privlock/privlock-tui/internal/util"
)

type hostInfoMsg struct {
	hostname string
	platform string
	uptime   time.Duration
	err      error
}

// Model is the about/documentation view.
type Model struct {
	theme   theme.Theme
	table   policy.Lockdown
	version string
	width   int
	height  int

	hostname string
	platform string
	uptime   time.Duration
	hostErr  string
}

// New constructs the about view for the given lockdown table.
func New(th theme.Theme, table policy.Lockdown, version string) view.Model {
	return &Model{theme: th, table: table, version: version}
}

// Init fetches host details off the UI loop.
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		info, err := host.Info()
		if err != nil {
			return hostInfoMsg{err: err}
		}
		return hostInfoMsg{
			hostname: info.Hostname,
			platform: fmt.Sprintf("%s %s (%s)", info.Platform, info.PlatformVersion, info.KernelArch),
			uptime:   time.Duration(info.Uptime) * time.Second,
		}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if info, ok := msg.(hostInfoMsg); ok {
		if info.err != nil {
			m.hostErr = info.err.Error()
		} else {
			m.hostname = info.hostname
			m.platform = info.platform
			m.uptime = info.uptime
		}
	}
	return m, nil
}

func (m *Model) View() string {
	lines := []string{
		m.theme.Title.Render("privlock " + m.version),
		"",
		"An administrative console for Windows privacy controls.",
		"Lockdown disables the location, sensor, and telemetry services",
		"below, switches off wireless adapters, and writes the",
		"LocationAndSensors policy values. Revert is the exact inverse,",
		"derived from the same table. Every change is confirmed by an",
		"independent re-read and reported per resource.",
		"",
		m.theme.Header.Render("Managed services"),
	}
	for _, name := range m.table.Services {
		lines = append(lines, "  "+name)
	}
	lines = append(lines, "", m.theme.Header.Render("Policy values under "+m.table.KeyPath))
	for _, kv := range m.table.Keys {
		lines = append(lines, fmt.Sprintf("  %s = %d", kv.Name, kv.Value))
	}

	lines = append(lines, "", m.theme.Header.Render("Host"))
	switch {
	case m.hostErr != "":
		lines = append(lines, "  "+m.theme.Warning.Render(m.hostErr))
	case m.hostname == "" && m.platform == "":
		lines = append(lines, "  "+m.theme.Subtle.Render("detecting..."))
	default:
		lines = append(lines,
			"  "+util.Fallback(m.hostname, "unknown host"),
			"  "+util.Fallback(m.platform, "unknown platform"),
			fmt.Sprintf("  up %s", m.uptime.Truncate(time.Minute)),
		)
	}

	lines = append(lines, "", m.theme.Subtle.Render("esc to return to the menu"))

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return m.theme.Body.Copy().Width(max(0, m.width)).Render(body)
}

func (m *Model) Title() string { return "About" }

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTheme(th theme.Theme) { m.theme = th }

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
