// Package controller defines the narrow interfaces the UI dispatches
// commands through, keeping views decoupled from the runner and the
// identity client.
package controller

import (
	"context"

	"github.com/privlock/privlock-tui/internal/identity"
	"github.com/privlock/privlock-tui/internal/reconcile"
)

// Lockdown drives reconciliation passes over the managed resource sets.
type Lockdown interface {
	// Lockdown converges services, wireless adapters, and policy values.
	Lockdown(ctx context.Context) []reconcile.Outcome
	// Status probes the same sets without mutating anything.
	Status(ctx context.Context) []reconcile.Outcome
	// DisableRadios converges services and wireless adapters only.
	DisableRadios(ctx context.Context) []reconcile.Outcome
	// ApplyPolicies writes the policy values only.
	ApplyPolicies(ctx context.Context) []reconcile.Outcome
	// Revert is the full inverse of Lockdown.
	Revert(ctx context.Context) []reconcile.Outcome
}

// Identity resolves network egress identity.
type Identity interface {
	Query(ctx context.Context) (identity.Report, error)
}

// Command names one menu action.
type Command string

const (
	CommandLockdown      Command = "lockdown"
	CommandStatus        Command = "status"
	CommandDisableRadios Command = "disable radios"
	CommandApplyPolicies Command = "apply policies"
	CommandRevert        Command = "revert"
	CommandIdentity      Command = "identity"
	CommandAbout         Command = "about"
)
