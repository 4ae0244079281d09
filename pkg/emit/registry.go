package emit

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory describes a registered emitter and builds instances of it.
type Factory struct {
	Name        string
	Extension   string
	Description string
	New         func(opts Options) Emitter
}

// Emitter registry
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register registers an emitter factory in the global registry.
// Called by emitter implementations in their init() functions.
func Register(f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[strings.ToLower(f.Name)] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := factories[strings.ToLower(name)]
	return f, ok
}

// Get returns an emitter by name, configured with opts.
func Get(name string, opts Options) (Emitter, bool) {
	f, ok := Lookup(name)
	if !ok {
		return nil, false
	}
	return f.New(opts), true
}

// New decodes params into Options and returns the named emitter.
func New(name string, params map[string]any) (Emitter, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown language %q (available: %s)", name, strings.Join(List(), ", "))
	}
	opts, err := DecodeOptions(params)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Name, err)
	}
	return f.New(opts), nil
}

// List returns all registered emitter names (sorted).
func List() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Factories returns all registered factories, sorted by name.
func Factories() []Factory {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Factory, 0, len(factories))
	for _, f := range factories {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
