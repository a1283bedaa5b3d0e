// Package runner composes reconciliation passes over the lockdown table.
// Each menu command maps to one method here; the UI never touches the
// subsystems directly.
package runner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/privlock/privlock-tui/internal/policy"
	"github.com/privlock/privlock-tui/internal/reconcile"
	"github.com/privlock/privlock-tui/internal/resource"
)

// Runner executes reconciliation passes. Resource sets are rebuilt from
// the policy table (and a fresh adapter enumeration) on every call; the
// runner holds no state between invocations.
type Runner struct {
	table    policy.Lockdown
	rec      *reconcile.Reconciler
	services resource.ServiceManager
	adapters resource.AdapterManager
	policies resource.PolicyStore
	log      *zap.Logger
}

// Options wire a Runner.
type Options struct {
	Table    policy.Lockdown
	Services resource.ServiceManager
	Adapters resource.AdapterManager
	Policies resource.PolicyStore
	Logger   *zap.Logger
}

// New builds a runner over the given subsystems.
func New(opts Options) *Runner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		table:    opts.Table,
		rec:      reconcile.New(log),
		services: opts.Services,
		adapters: opts.Adapters,
		policies: opts.Policies,
		log:      log,
	}
}

// Lockdown converges every managed set: services disabled and stopped,
// wireless adapters disabled, policy values written.
func (r *Runner) Lockdown(ctx context.Context) []reconcile.Outcome {
	defer r.logPass("lockdown", time.Now())
	outcomes := r.rec.Reconcile(ctx, r.serviceResources(), resource.ModeLockdown)
	outcomes = append(outcomes, r.reconcileWireless(ctx, resource.ModeLockdown)...)
	outcomes = append(outcomes, r.rec.Reconcile(ctx, r.keyResources(), resource.ModeLockdown)...)
	return outcomes
}

// Status probes the same three sets without mutating anything.
func (r *Runner) Status(ctx context.Context) []reconcile.Outcome {
	defer r.logPass("status", time.Now())
	outcomes := r.rec.Status(ctx, r.serviceResources())
	outcomes = append(outcomes, r.statusWireless(ctx)...)
	outcomes = append(outcomes, r.rec.Status(ctx, r.keyResources())...)
	return outcomes
}

// DisableRadios converges services and wireless adapters only, leaving
// the policy values untouched.
func (r *Runner) DisableRadios(ctx context.Context) []reconcile.Outcome {
	defer r.logPass("disable radios", time.Now())
	outcomes := r.rec.Reconcile(ctx, r.serviceResources(), resource.ModeLockdown)
	return append(outcomes, r.reconcileWireless(ctx, resource.ModeLockdown)...)
}

// ApplyPolicies writes the policy values only.
func (r *Runner) ApplyPolicies(ctx context.Context) []reconcile.Outcome {
	defer r.logPass("apply policies", time.Now())
	return r.rec.Reconcile(ctx, r.keyResources(), resource.ModeLockdown)
}

// Revert is the declared inverse of Lockdown: services back to
// automatic/running, adapters enabled, policy values deleted and their
// container path removed if present.
func (r *Runner) Revert(ctx context.Context) []reconcile.Outcome {
	defer r.logPass("revert", time.Now())
	outcomes := r.rec.Reconcile(ctx, r.serviceResources(), resource.ModeRestore)
	outcomes = append(outcomes, r.reconcileWireless(ctx, resource.ModeRestore)...)
	outcomes = append(outcomes, r.rec.Reconcile(ctx, r.keyResources(), resource.ModeRestore)...)
	return append(outcomes, r.removePolicyPath())
}

func (r *Runner) serviceResources() []resource.Resource {
	resources := make([]resource.Resource, 0, len(r.table.Services))
	for _, name := range r.table.Services {
		resources = append(resources, resource.NewService(name, r.services))
	}
	return resources
}

func (r *Runner) keyResources() []resource.Resource {
	resources := make([]resource.Resource, 0, len(r.table.Keys))
	for _, kv := range r.table.Keys {
		resources = append(resources, resource.NewPolicyKey(r.table.KeyPath, kv.Name, kv.Value, r.policies))
	}
	return resources
}

// wirelessResources enumerates adapters fresh and keeps the wireless
// ones. The bool reports whether enumeration itself worked.
func (r *Runner) wirelessResources(ctx context.Context) ([]resource.Resource, reconcile.Outcome, bool) {
	adapters, err := r.adapters.List(ctx)
	if err != nil {
		r.log.Warn("adapter enumeration failed", zap.Error(err))
		return nil, reconcile.Outcome{
			Resource: "wireless adapters",
			Kind:     resource.KindAdapter,
			Result:   reconcile.ResultFailed,
			Reason:   fmt.Sprintf("enumerate: %v", err),
		}, false
	}

	var resources []resource.Resource
	for _, adapter := range adapters {
		if policy.IsWireless(adapter.Description) {
			resources = append(resources, resource.NewAdapter(adapter.Name, r.adapters))
		}
	}
	if len(resources) == 0 {
		return nil, reconcile.Outcome{
			Resource: "wireless adapters",
			Kind:     resource.KindAdapter,
			Result:   reconcile.ResultNotFound,
			Observed: "none present",
		}, false
	}
	return resources, reconcile.Outcome{}, true
}

func (r *Runner) reconcileWireless(ctx context.Context, mode resource.Mode) []reconcile.Outcome {
	resources, fallback, ok := r.wirelessResources(ctx)
	if !ok {
		return []reconcile.Outcome{fallback}
	}
	return r.rec.Reconcile(ctx, resources, mode)
}

func (r *Runner) statusWireless(ctx context.Context) []reconcile.Outcome {
	resources, fallback, ok := r.wirelessResources(ctx)
	if !ok {
		return []reconcile.Outcome{fallback}
	}
	return r.rec.Status(ctx, resources)
}

// removePolicyPath deletes the container key and, like every other
// mutation, trusts only an independent re-read for the observed column.
func (r *Runner) removePolicyPath() reconcile.Outcome {
	out := reconcile.Outcome{
		Resource: r.table.KeyPath,
		Kind:     resource.KindPolicyKey,
	}
	if err := r.policies.DeletePath(r.table.KeyPath); err != nil {
		out.Result = reconcile.ResultFailed
		out.Reason = err.Error()
		r.log.Warn("policy path removal failed", zap.String("path", r.table.KeyPath), zap.Error(err))
		return out
	}

	out.Result = reconcile.ResultApplied
	switch exists, err := r.policies.PathExists(r.table.KeyPath); {
	case err != nil:
		out.Result = reconcile.ResultFailed
		out.Reason = "confirm: " + err.Error()
	case exists:
		out.Result = reconcile.ResultFailed
		out.Reason = "confirm: path still present"
	default:
		out.Observed = "removed"
	}
	return out
}

func (r *Runner) logPass(name string, started time.Time) {
	r.log.Info("pass finished",
		zap.String("pass", name),
		zap.Duration("took", time.Since(started)))
}
