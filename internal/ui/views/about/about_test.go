package about

import (
	"strings"
	"testing"
	"time"

	"github.com/privlock/privlock-tui/internal/policy"
	"github.com/privlock/privlock-tui/internal/theme"
	"github.com/privlock/privlock-tui/internal/util"
)

func TestAboutViewListsManagedResources(t *testing.T) {
	table := policy.Default()
	m := New(theme.New(theme.Options{}), table, "1.2.3").(*Model)
	m.SetSize(100, 30)

	out := util.StripANSI(m.View())
	checks := append([]string{"privlock 1.2.3", table.KeyPath}, table.Services...)
	for _, kv := range table.Keys {
		checks = append(checks, kv.Name)
	}
	for _, c := range checks {
		if !strings.Contains(out, c) {
			t.Fatalf("expected view to contain %q, got:\n%s", c, out)
		}
	}
}

func TestAboutViewShowsHostDetails(t *testing.T) {
	m := New(theme.New(theme.Options{}), policy.Default(), "dev").(*Model)
	m.SetSize(100, 30)

	m.Update(hostInfoMsg{
		hostname: "desk-01",
		platform: "Microsoft Windows 11 Pro 10.0.22631 (x86_64)",
		uptime:   90 * time.Minute,
	})

	out := util.StripANSI(m.View())
	for _, c := range []string{"desk-01", "Windows 11 Pro", "up 1h30m0s"} {
		if !strings.Contains(out, c) {
			t.Fatalf("expected view to contain %q, got:\n%s", c, out)
		}
	}
}
