package resource_test

import (
	"context"
	"testing"

	"github.com/privlock/privlock-tui/internal/resource"
	"github.com/privlock/privlock-tui/internal/resource/resourcetest"
)

func TestAdapterApplyDisables(t *testing.T) {
	mgr := resourcetest.NewAdapters(resource.Adapter{
		Name:        "Wi-Fi",
		Description: "Intel(R) Wireless-AC 9560",
		Status:      resource.AdapterUp,
	})
	res := resource.NewAdapter("Wi-Fi", mgr)

	if err := res.Apply(context.Background(), resource.ModeLockdown); err != nil {
		t.Fatalf("apply: %v", err)
	}

	st, err := res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !st.Found || st.Summary != string(resource.AdapterDisabled) {
		t.Fatalf("expected disabled adapter, got %+v", st)
	}
}

func TestAdapterApplyRestoreEnables(t *testing.T) {
	mgr := resourcetest.NewAdapters(resource.Adapter{
		Name:        "Wi-Fi 2",
		Description: "Realtek 8822CE Wireless LAN",
		Status:      resource.AdapterDisabled,
	})
	res := resource.NewAdapter("Wi-Fi 2", mgr)

	if err := res.Apply(context.Background(), resource.ModeRestore); err != nil {
		t.Fatalf("apply: %v", err)
	}

	st, err := res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Summary != string(resource.AdapterUp) {
		t.Fatalf("expected up adapter, got %+v", st)
	}
}

func TestAdapterApplyVanishedAdapterNoOps(t *testing.T) {
	mgr := resourcetest.NewAdapters(resource.Adapter{Name: "Wi-Fi", Status: resource.AdapterUp})
	res := resource.NewAdapter("Wi-Fi", mgr)
	mgr.Remove("Wi-Fi")

	if err := res.Apply(context.Background(), resource.ModeLockdown); err != nil {
		t.Fatalf("vanished adapter must be success-equivalent, got %v", err)
	}

	st, err := res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Found {
		t.Fatalf("expected Found=false after removal, got %+v", st)
	}
}

func TestAdapterProbeReenumeratesEveryCall(t *testing.T) {
	mgr := resourcetest.NewAdapters(resource.Adapter{Name: "Wi-Fi", Status: resource.AdapterUp})
	res := resource.NewAdapter("Wi-Fi", mgr)

	st, err := res.Probe(context.Background())
	if err != nil || !st.Found {
		t.Fatalf("expected adapter present, got %+v err=%v", st, err)
	}

	mgr.Remove("Wi-Fi")

	st, err = res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Found {
		t.Fatal("probe must not cache a previous enumeration")
	}
}
