package charm

// Analyzer is the repository of user definitions: it stores each Definition
// body by name, judges whether a definition is safe to inline, performs the
// one-level inline rewrite, and judges tail-call shape. Re-definition
// overwrites; definitions are never removed.
type Analyzer struct {
	defs map[string][]Term
}

// NewAnalyzer returns an empty definition store.
func NewAnalyzer() *Analyzer {
	return &Analyzer{defs: make(map[string][]Term)}
}

// AddDefinition registers def's body under its name, overwriting any prior
// definition of the same name.
func (a *Analyzer) AddDefinition(def Term) {
	if def.Kind != KindDefinition {
		die("add_definition", ParseContractViolation, "attempted to register a non-definition term %v", def.Kind)
	}
	a.defs[def.Name] = def.Body
}

// Lookup returns the registered body for name, if any.
func (a *Analyzer) Lookup(name string) ([]Term, bool) {
	body, ok := a.defs[name]
	return body, ok
}

// IsInlineable reports whether def's body does not transitively reference
// def's own name. The check recurses into nested List terms — they are
// inert data at runtime but may later be activated by `i`, so a self-call
// hidden inside one still disqualifies — but it does not itself inline
// them; inlining is always exactly one level deep (see DoInline).
func (a *Analyzer) IsInlineable(def Term) bool {
	return !bodyReferences(def.Name, def.Body)
}

func bodyReferences(name string, body []Term) bool {
	for _, t := range body {
		switch t.Kind {
		case KindList:
			if bodyReferences(name, t.List) {
				return true
			}
		case KindDefined:
			if t.Name == name {
				return true
			}
		}
	}
	return false
}

// DoInline attempts a one-level inline rewrite of call (a Defined term) into
// out: if call's name refers to a registered, inline-ready definition, its
// body's terms are appended to out and DoInline returns true; otherwise out
// is left untouched and DoInline returns false. Lists inside the appended
// body are not themselves recursively rewritten — a nested list is only
// ever activated via `i`, at which point it runs through the same
// interpreter, and any further inlining the author wanted has already been
// applied explicitly via the `inline` built-in.
func (a *Analyzer) DoInline(out *[]Term, call Term) bool {
	body, ok := a.defs[call.Name]
	if !ok {
		return false
	}
	if !a.IsInlineable(Term{Kind: KindDefinition, Name: call.Name, Body: body}) {
		return false
	}
	*out = append(*out, cloneTerms(body)...)
	return true
}

// IsTailCallRecursive is a purely syntactic check: true iff the final term
// of def's body is a Defined term naming def itself. It does not see
// through conditionals — the common `[cond] [... f] [... f] ifthen` shape is
// instead handled dynamically by the ifthen built-in (§4.5).
func IsTailCallRecursive(def Term) bool {
	if len(def.Body) == 0 {
		return false
	}
	last := def.Body[len(def.Body)-1]
	return last.Kind == KindDefined && last.Name == def.Name
}
