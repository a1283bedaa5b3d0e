package keymap

import (
	"strings"
	"testing"
)

func TestShortHelpListsAllBindings(t *testing.T) {
	help := DefaultGlobal().ShortHelp()

	for _, want := range []string{"quit", "menu", "run", "up", "down"} {
		if !strings.Contains(help, want) {
			t.Fatalf("short help missing %q: %s", want, help)
		}
	}
}

func TestQuitBindingCoversUpperAndLowerCase(t *testing.T) {
	keys := DefaultGlobal().Quit.Keys()

	found := map[string]bool{}
	for _, k := range keys {
		found[k] = true
	}
	if !found["q"] || !found["Q"] {
		t.Fatalf("quit must match q and Q, got %v", keys)
	}
}
