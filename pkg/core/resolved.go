package core

// Constant is a fully resolved name/value pair.
type Constant struct {
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	Origin Origin `json:"-"`
}

// ResolvedSet is the resolver's output and the only input emitters see.
// Constants are ordered as declared: base values first, then composites.
type ResolvedSet struct {
	Name        string
	Description string
	Kind        Kind
	AsPreproc   bool
	Constants   []Constant
}

// Lookup returns the constant with the given name.
func (r *ResolvedSet) Lookup(name string) (Constant, bool) {
	for _, c := range r.Constants {
		if c.Name == name {
			return c, true
		}
	}
	return Constant{}, false
}

// Values returns the resolved values in output order.
func (r *ResolvedSet) Values() []int64 {
	out := make([]int64, len(r.Constants))
	for i, c := range r.Constants {
		out[i] = c.Value
	}
	return out
}

// Names returns the constant names in output order.
func (r *ResolvedSet) Names() []string {
	out := make([]string, len(r.Constants))
	for i, c := range r.Constants {
		out[i] = c.Name
	}
	return out
}
