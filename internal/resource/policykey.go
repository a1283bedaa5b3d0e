package resource

import (
	"context"
	"errors"
	"fmt"
)

// PolicyStore is the key/value policy subsystem. Paths are registry-style
// container paths; values are named integers downstream OS components read.
type PolicyStore interface {
	EnsurePath(path string) error
	SetValue(path, name string, value uint32) error
	Value(path, name string) (uint32, error)
	DeleteValue(path, name string) error
	DeletePath(path string) error
	PathExists(path string) (bool, error)
}

// PolicyKeyResource manages a single named integer value under a fixed
// container path.
type PolicyKeyResource struct {
	path  string
	name  string
	value uint32
	store PolicyStore
}

// NewPolicyKey wraps one policy value with its store. value is what
// lockdown writes; restore deletes the value regardless.
func NewPolicyKey(path, name string, value uint32, store PolicyStore) *PolicyKeyResource {
	return &PolicyKeyResource{path: path, name: name, value: value, store: store}
}

func (r *PolicyKeyResource) Name() string { return r.name }
func (r *PolicyKeyResource) Kind() Kind   { return KindPolicyKey }

// Probe reports the stored integer, or Found=false when the value or its
// container path does not exist.
func (r *PolicyKeyResource) Probe(ctx context.Context) (State, error) {
	v, err := r.store.Value(r.path, r.name)
	if errors.Is(err, ErrUnconfigured) || errors.Is(err, ErrNotFound) {
		return State{Found: false, Summary: "not configured"}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("read policy value %s: %w", r.name, err)
	}
	return State{Found: true, Summary: fmt.Sprintf("%s=%d", r.name, v)}, nil
}

// Apply writes the lockdown value (creating the container path if absent,
// idempotently) or deletes it on restore. Deleting a value that is already
// gone counts as satisfied.
func (r *PolicyKeyResource) Apply(ctx context.Context, mode Mode) error {
	if mode == ModeRestore {
		err := r.store.DeleteValue(r.path, r.name)
		if errors.Is(err, ErrUnconfigured) || errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("delete policy value %s: %w", r.name, err)
		}
		return nil
	}
	if err := r.store.EnsurePath(r.path); err != nil {
		return fmt.Errorf("ensure policy path %s: %w", r.path, err)
	}
	if err := r.store.SetValue(r.path, r.name, r.value); err != nil {
		return fmt.Errorf("set policy value %s: %w", r.name, err)
	}
	return nil
}
