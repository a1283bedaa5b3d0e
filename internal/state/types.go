package state

import (
	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/reconcile"
)

// ViewKind identifies a routed view.
type ViewKind string

const (
	ViewMenu   ViewKind = "menu"
	ViewReport ViewKind = "report"
	ViewAbout  ViewKind = "about"
)

// Snapshot is a copy of the application state shared between views. The
// only durable state this program has lives in the OS itself; everything
// here is the ephemeral result of the last command.
type Snapshot struct {
	ActiveView ViewKind

	// Busy is set while a pass is running; Running labels it.
	Busy    bool
	Running string

	// ReportTitle and Outcomes describe the last reconciliation pass.
	ReportTitle string
	Outcomes    []reconcile.Outcome

	// Identity holds the last egress-identity result, when that was the
	// last command. IdentityErr carries its (possibly partial) failure.
	Identity    *identity.Report
	IdentityErr string

	LastError string
}
