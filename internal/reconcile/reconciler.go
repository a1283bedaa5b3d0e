// Package reconcile implements the apply-then-reprobe engine shared by
// every resource kind. The underlying subsystems do not reliably report
// success synchronously, so re-reading after a mutation is the only
// trustworthy confirmation.
package reconcile

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/privlock/privlock-tui/internal/resource"
)

// Result classifies the end state of one reconciliation step.
type Result string

const (
	// ResultApplied means the mutation was accepted; Observed carries the
	// re-probed state.
	ResultApplied Result = "applied"
	// ResultChecked means a status-only probe found the resource.
	ResultChecked Result = "checked"
	// ResultNotFound means the resource is unknown to its subsystem.
	// Informational, not a failure.
	ResultNotFound Result = "not found"
	// ResultFailed means a mutation or probe failed; Reason explains why.
	ResultFailed Result = "failed"
)

// Outcome is the per-resource report a pass produces. Outcomes are
// rendered and logged, never persisted.
type Outcome struct {
	Resource string
	Kind     resource.Kind
	Result   Result
	Observed string
	Reason   string
}

// Reconciler runs sequential passes over resource batches. A failure on
// one resource never aborts processing of the rest: N resources in, N
// outcomes out.
type Reconciler struct {
	log *zap.Logger
}

// New builds a reconciler. A nil logger is replaced with a no-op one.
func New(log *zap.Logger) *Reconciler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Reconciler{log: log}
}

// Reconcile applies mode to each resource in declaration order, then
// immediately re-probes it and packages the observed state.
func (r *Reconciler) Reconcile(ctx context.Context, resources []resource.Resource, mode resource.Mode) []Outcome {
	outcomes := make([]Outcome, 0, len(resources))
	for _, res := range resources {
		outcomes = append(outcomes, r.reconcileOne(ctx, res, mode))
	}
	return outcomes
}

// Status probes each resource without mutating anything. It shares the
// probe path with Reconcile, so status display and post-apply
// confirmation can never disagree.
func (r *Reconciler) Status(ctx context.Context, resources []resource.Resource) []Outcome {
	outcomes := make([]Outcome, 0, len(resources))
	for _, res := range resources {
		outcomes = append(outcomes, r.probeOne(ctx, res))
	}
	return outcomes
}

func (r *Reconciler) reconcileOne(ctx context.Context, res resource.Resource, mode resource.Mode) Outcome {
	out := Outcome{Resource: res.Name(), Kind: res.Kind()}

	switch err := res.Apply(ctx, mode); {
	case err == nil:
		out.Result = ResultApplied
	case errors.Is(err, resource.ErrNotFound):
		out.Result = ResultNotFound
	default:
		out.Result = ResultFailed
		out.Reason = err.Error()
	}

	st, err := res.Probe(ctx)
	switch {
	case err != nil && out.Result == ResultApplied:
		out.Result = ResultFailed
		out.Reason = "confirm: " + err.Error()
	case err != nil:
		out.Observed = "unknown"
	default:
		out.Observed = st.Summary
	}

	r.log.Info("reconcile",
		zap.String("kind", string(out.Kind)),
		zap.String("resource", out.Resource),
		zap.String("mode", string(mode)),
		zap.String("result", string(out.Result)),
		zap.String("observed", out.Observed),
		zap.String("reason", out.Reason))
	return out
}

func (r *Reconciler) probeOne(ctx context.Context, res resource.Resource) Outcome {
	out := Outcome{Resource: res.Name(), Kind: res.Kind()}

	st, err := res.Probe(ctx)
	switch {
	case err != nil:
		out.Result = ResultFailed
		out.Reason = err.Error()
	case !st.Found:
		out.Result = ResultNotFound
		out.Observed = st.Summary
	default:
		out.Result = ResultChecked
		out.Observed = st.Summary
	}
	return out
}
