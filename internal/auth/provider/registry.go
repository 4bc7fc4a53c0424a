package provider

import "fmt"

// Registry holds all configured SSO providers and allows lookup by
// provider name. It performs no auth logic itself.
type Registry struct {
	names     []string
	providers map[string]Verifier
}

// NewRegistry registers the given providers by name.
// Provider names must be unique.
func NewRegistry(list ...Verifier) *Registry {
	m := make(map[string]Verifier)
	names := make([]string, 0, len(list))
	for _, p := range list {
		m[p.Name()] = p
		names = append(names, p.Name())
	}
	return &Registry{names: names, providers: m}
}

// Get returns the provider by name or an error if not registered.
func (r *Registry) Get(name string) (Verifier, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown sso provider: %s", name)
	}
	return p, nil
}

// All returns the registered providers in registration order.
func (r *Registry) All() []Verifier {
	out := make([]Verifier, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.providers[name])
	}
	return out
}
