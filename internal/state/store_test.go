package state

import (
	"testing"

	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/reconcile"
	"github.com/privlock/privlock-tui/internal/resource"
)

func TestFinishPassReplacesPreviousReport(t *testing.T) {
	store := NewStore()
	store.BeginRun("lockdown")

	snap := store.Snapshot()
	if !snap.Busy || snap.Running != "lockdown" {
		t.Fatalf("expected busy store, got %+v", snap)
	}

	store.FinishPass("Lockdown", []reconcile.Outcome{
		{Resource: "lfsvc", Kind: resource.KindService, Result: reconcile.ResultApplied},
	})

	snap = store.Snapshot()
	if snap.Busy || snap.Running != "" {
		t.Fatalf("expected idle store, got %+v", snap)
	}
	if snap.ReportTitle != "Lockdown" || len(snap.Outcomes) != 1 {
		t.Fatalf("unexpected report %+v", snap)
	}
}

func TestFinishIdentityClearsOutcomes(t *testing.T) {
	store := NewStore()
	store.FinishPass("Status", []reconcile.Outcome{{Resource: "lfsvc"}})

	store.FinishIdentity(identity.Report{PublicIP: "203.0.113.7"}, "")

	snap := store.Snapshot()
	if snap.Outcomes != nil {
		t.Fatalf("expected outcomes cleared, got %+v", snap.Outcomes)
	}
	if snap.Identity == nil || snap.Identity.PublicIP != "203.0.113.7" {
		t.Fatalf("expected identity report, got %+v", snap.Identity)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore()
	store.FinishPass("Status", []reconcile.Outcome{{Resource: "lfsvc"}})

	snap := store.Snapshot()
	snap.Outcomes[0].Resource = "mutated"
	snap.Identity = &identity.Report{PublicIP: "tampered"}

	fresh := store.Snapshot()
	if fresh.Outcomes[0].Resource != "lfsvc" {
		t.Fatalf("snapshot mutation leaked into store: %+v", fresh.Outcomes)
	}
	if fresh.Identity != nil {
		t.Fatal("snapshot mutation leaked identity into store")
	}
}

func TestSetErrorClearsBusy(t *testing.T) {
	store := NewStore()
	store.BeginRun("identity")

	store.SetError("network unreachable")

	snap := store.Snapshot()
	if snap.Busy {
		t.Fatal("error must clear the busy flag")
	}
	if snap.LastError != "network unreachable" {
		t.Fatalf("unexpected error %q", snap.LastError)
	}
}

func TestActiveViewRoundTrips(t *testing.T) {
	store := NewStore()
	if store.ActiveView() != ViewMenu {
		t.Fatalf("expected menu by default, got %s", store.ActiveView())
	}

	store.SetActiveView(ViewReport)
	if store.ActiveView() != ViewReport {
		t.Fatalf("expected report, got %s", store.ActiveView())
	}
}
