package resource_test

import (
	"context"
	"testing"

	"github.com/privlock/privlock-tui/internal/resource"
	"github.com/privlock/privlock-tui/internal/resource/resourcetest"
)

const testPath = `SOFTWARE\Policies\Vendor\Feature`

func TestPolicyKeyApplyCreatesPathAndWritesValue(t *testing.T) {
	store := resourcetest.NewPolicies()
	res := resource.NewPolicyKey(testPath, "DisableFeature", 1, store)

	if err := res.Apply(context.Background(), resource.ModeLockdown); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if !store.HasPath(testPath) {
		t.Fatal("container path should be created on first write")
	}
	v, err := store.Value(testPath, "DisableFeature")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
}

func TestPolicyKeyApplyOverwritesExistingValue(t *testing.T) {
	store := resourcetest.NewPolicies()
	if err := store.EnsurePath(testPath); err != nil {
		t.Fatal(err)
	}
	if err := store.SetValue(testPath, "DisableFeature", 7); err != nil {
		t.Fatal(err)
	}

	res := resource.NewPolicyKey(testPath, "DisableFeature", 1, store)
	if err := res.Apply(context.Background(), resource.ModeLockdown); err != nil {
		t.Fatalf("apply: %v", err)
	}

	v, err := store.Value(testPath, "DisableFeature")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Fatalf("expected prior value overwritten with 1, got %d", v)
	}
}

func TestPolicyKeyRestoreDeletesValue(t *testing.T) {
	store := resourcetest.NewPolicies()
	res := resource.NewPolicyKey(testPath, "DisableFeature", 1, store)
	if err := res.Apply(context.Background(), resource.ModeLockdown); err != nil {
		t.Fatal(err)
	}

	if err := res.Apply(context.Background(), resource.ModeRestore); err != nil {
		t.Fatalf("restore: %v", err)
	}

	st, err := res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Found {
		t.Fatalf("expected value removed, got %+v", st)
	}
}

func TestPolicyKeyRestoreMissingValueIsSatisfied(t *testing.T) {
	store := resourcetest.NewPolicies()
	res := resource.NewPolicyKey(testPath, "DisableFeature", 1, store)

	if err := res.Apply(context.Background(), resource.ModeRestore); err != nil {
		t.Fatalf("deleting an absent value is an already-satisfied revert, got %v", err)
	}
}

func TestPolicyKeyProbeUnconfigured(t *testing.T) {
	store := resourcetest.NewPolicies()
	res := resource.NewPolicyKey(testPath, "DisableFeature", 1, store)

	st, err := res.Probe(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if st.Found {
		t.Fatal("expected Found=false for missing container path")
	}
	if st.Summary != "not configured" {
		t.Fatalf("unexpected summary %q", st.Summary)
	}
}
