package charm

import "strconv"

// StackRegistry maps stack names (by Term value equality) to the Stack bound
// to them, tracks which one is current, and holds each stack's private
// reference map used by getref/setref. References are scoped per stack:
// switching the current stack hides the previous stack's references
// (spec.md §9).
type StackRegistry struct {
	stacks  map[string]*Stack
	refs    map[string]map[string]Term
	current *Stack
}

// NewStackRegistry returns an empty registry with no current stack. The
// runner creates the initial stack (conventionally named "main") before
// executing any terms.
func NewStackRegistry() *StackRegistry {
	return &StackRegistry{
		stacks: make(map[string]*Stack),
		refs:   make(map[string]map[string]Term),
	}
}

// termKey maps a Term to a map key consistent with Equal. The canonical
// printed form alone is not enough: ToString renders a Number's numeric
// tag as plain decimal, so Number(5) and FloatNumber(5.0) both print "5"
// and would collide even though Equal treats them as distinct (term.go
// never equates across numeric tags). Prefixing with Kind and NumTag keeps
// the key as fine-grained as Equal.
func termKey(t Term) string {
	return strconv.Itoa(int(t.Kind)) + ":" + strconv.Itoa(int(t.NumTag)) + ":" + ToString(t)
}

// Create creates a new Stack with the given positive capacity and name,
// stores it under name (overwriting any previous stack of the same name),
// and switches current to it.
func (r *StackRegistry) Create(name Term, capacity int) *Stack {
	s := NewStack(name, capacity)
	key := termKey(name)
	r.stacks[key] = s
	if _, ok := r.refs[key]; !ok {
		r.refs[key] = make(map[string]Term)
	}
	r.current = s
	return s
}

// Switch sets current to the stack bound to name, dying with UnknownStack if
// none is registered under that name.
func (r *StackRegistry) Switch(name Term) {
	s, ok := r.stacks[termKey(name)]
	if !ok {
		die("switchstack", UnknownStack, "no stack named %s", ToString(name))
	}
	r.current = s
}

// Current returns the active stack.
func (r *StackRegistry) Current() *Stack { return r.current }

// GetRef reads the reference bound to name on the current stack. An unset
// name reads back as an empty List, a sentinel chosen once and used
// consistently by every read.
func (r *StackRegistry) GetRef(name Term) Term {
	refs := r.refs[termKey(r.current.Name())]
	if v, ok := refs[termKey(name)]; ok {
		return v
	}
	return List()
}

// SetRef binds name to value in the current stack's reference map.
func (r *StackRegistry) SetRef(name, value Term) {
	key := termKey(r.current.Name())
	refs := r.refs[key]
	if refs == nil {
		refs = make(map[string]Term)
		r.refs[key] = refs
	}
	refs[termKey(name)] = value
}
