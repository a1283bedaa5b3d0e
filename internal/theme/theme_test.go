package theme

import "testing"

func TestSelectModePrecedence(t *testing.T) {
	cases := []struct {
		name      string
		override  string
		preferred string
		want      Mode
	}{
		{"override wins", "light", "dark", ModeLight},
		{"preferred when no override", "", "light", ModeLight},
		{"auto resolves dark", "auto", "", ModeDark},
		{"garbage falls through", "neon", "dark", ModeDark},
		{"nothing set", "", "", ModeDark},
		{"whitespace and case", "  LIGHT ", "", ModeLight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := New(Options{Override: tc.override, Preferred: tc.preferred})
			if th.Mode != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, th.Mode)
			}
		})
	}
}
