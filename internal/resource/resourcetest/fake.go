// Package resourcetest provides in-memory subsystem fakes shared by unit
// tests across the module.
package resourcetest

import (
	"context"
	"sync"

	"github.com/privlock/privlock-tui/internal/resource"
)

// Services is an in-memory resource.ServiceManager. Unknown identifiers
// return resource.ErrNotFound; names listed in Fail make every mutation
// fail with the given error.
type Services struct {
	mu       sync.Mutex
	state    map[string]resource.ServiceState
	Fail     map[string]error
	Mutation int
}

// NewServices seeds the fake with the given service table.
func NewServices(seed map[string]resource.ServiceState) *Services {
	state := make(map[string]resource.ServiceState, len(seed))
	for name, st := range seed {
		state[name] = st
	}
	return &Services{state: state, Fail: map[string]error{}}
}

func (s *Services) Query(_ context.Context, name string) (resource.ServiceState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.state[name]
	if !ok {
		return resource.ServiceState{}, resource.ErrNotFound
	}
	return st, nil
}

func (s *Services) SetStartupMode(_ context.Context, name string, mode resource.StartupMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Mutation++
	if err := s.failure(name); err != nil {
		return err
	}
	st := s.state[name]
	st.Startup = mode
	s.state[name] = st
	return nil
}

func (s *Services) Start(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Mutation++
	if err := s.failure(name); err != nil {
		return err
	}
	st := s.state[name]
	st.Run = resource.RunRunning
	s.state[name] = st
	return nil
}

func (s *Services) Stop(_ context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Mutation++
	if err := s.failure(name); err != nil {
		return err
	}
	st := s.state[name]
	st.Run = resource.RunStopped
	s.state[name] = st
	return nil
}

func (s *Services) failure(name string) error {
	if _, ok := s.state[name]; !ok {
		return resource.ErrNotFound
	}
	if err, ok := s.Fail[name]; ok {
		return err
	}
	return nil
}

// Adapters is an in-memory resource.AdapterManager.
type Adapters struct {
	mu       sync.Mutex
	list     []resource.Adapter
	ListErr  error
	Fail     map[string]error
	Mutation int
}

// NewAdapters seeds the fake with the given adapter set.
func NewAdapters(adapters ...resource.Adapter) *Adapters {
	return &Adapters{list: append([]resource.Adapter{}, adapters...), Fail: map[string]error{}}
}

func (a *Adapters) List(_ context.Context) ([]resource.Adapter, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.ListErr != nil {
		return nil, a.ListErr
	}
	return append([]resource.Adapter{}, a.list...), nil
}

func (a *Adapters) SetEnabled(_ context.Context, name string, enabled bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Mutation++
	if err, ok := a.Fail[name]; ok {
		return err
	}
	for idx, adapter := range a.list {
		if adapter.Name != name {
			continue
		}
		if enabled {
			a.list[idx].Status = resource.AdapterUp
		} else {
			a.list[idx].Status = resource.AdapterDisabled
		}
		return nil
	}
	return resource.ErrNotFound
}

// Remove drops an adapter, simulating hardware disappearing mid-pass.
func (a *Adapters) Remove(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.list[:0]
	for _, adapter := range a.list {
		if adapter.Name != name {
			kept = append(kept, adapter)
		}
	}
	a.list = kept
}

// Policies is an in-memory resource.PolicyStore keyed by path then name.
type Policies struct {
	mu       sync.Mutex
	paths    map[string]map[string]uint32
	Fail     map[string]error
	Mutation int
}

// NewPolicies returns an empty policy store.
func NewPolicies() *Policies {
	return &Policies{paths: map[string]map[string]uint32{}, Fail: map[string]error{}}
}

func (p *Policies) EnsurePath(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.paths[path]; !ok {
		p.paths[path] = map[string]uint32{}
	}
	return nil
}

func (p *Policies) SetValue(path, name string, value uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Mutation++
	if err, ok := p.Fail[name]; ok {
		return err
	}
	values, ok := p.paths[path]
	if !ok {
		return resource.ErrUnconfigured
	}
	values[name] = value
	return nil
}

func (p *Policies) Value(path, name string) (uint32, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	values, ok := p.paths[path]
	if !ok {
		return 0, resource.ErrUnconfigured
	}
	v, ok := values[name]
	if !ok {
		return 0, resource.ErrUnconfigured
	}
	return v, nil
}

func (p *Policies) DeleteValue(path, name string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Mutation++
	if err, ok := p.Fail[name]; ok {
		return err
	}
	values, ok := p.paths[path]
	if !ok {
		return resource.ErrUnconfigured
	}
	if _, ok := values[name]; !ok {
		return resource.ErrUnconfigured
	}
	delete(values, name)
	return nil
}

func (p *Policies) DeletePath(path string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Mutation++
	delete(p.paths, path)
	return nil
}

// PathExists reports whether the container path currently exists. An
// injected failure keyed by the path wins.
func (p *Policies) PathExists(path string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.Fail[path]; ok {
		return false, err
	}
	_, ok := p.paths[path]
	return ok, nil
}

// HasPath is PathExists without the error, for test assertions.
func (p *Policies) HasPath(path string) bool {
	exists, err := p.PathExists(path)
	return err == nil && exists
}
