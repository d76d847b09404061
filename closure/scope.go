package closure

// Scope is an ordered set of named bindings representing the constructing
// lexical scope. It is mutable: bindings may be defined or reassigned until
// the scope is captured. Insertion order is preserved so that captures are
// deterministic.
//
// A Scope is not safe for concurrent mutation; it models a single stack frame.
type Scope struct {
	order []string
	vars  map[string]any
}

func NewScope() *Scope {
	return &Scope{vars: make(map[string]any)}
}

// Define binds name to value in this scope. Redefining an existing name
// replaces its value and keeps its original position.
func (s *Scope) Define(name string, value any) {
	if _, ok := s.vars[name]; !ok {
		s.order = append(s.order, name)
	}
	s.vars[name] = value
}

// Lookup returns the value bound to name, if any.
func (s *Scope) Lookup(name string) (any, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Names returns the bound names in definition order.
func (s *Scope) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}
