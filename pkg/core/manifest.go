package core

// Target is an output path (without extension) and the definitions written into it.
type Target struct {
	Path string
	Sets []string
}

// Manifest is the decoded form of one schema file: independent constant sets
// plus the output targets they are written to.
type Manifest struct {
	Sets    []*ConstantSet
	Targets []Target
}

// Set returns the constant set with the given name.
func (m *Manifest) Set(name string) (*ConstantSet, bool) {
	for _, s := range m.Sets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
