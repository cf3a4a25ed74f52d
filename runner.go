package charm

// RunnerContext is the execution frame describing who called us: the
// currently-executing user definition, if any, and a reference to the
// analyzer. It is threaded down through every nested invocation so that
// control-flow built-ins (ifthen, chiefly) can detect a tail call back to
// the enclosing definition.
type RunnerContext struct {
	// DefName and DefBody describe the enclosing user definition.
	// HasDef is false at the top level and inside any `i`-activated list,
	// which deliberately starts a fresh context with no enclosing
	// definition — a list run via `i` can never be mistaken for a tail-call
	// site (spec.md §9).
	HasDef  bool
	DefName string
	DefBody []Term

	Analyzer *Analyzer
}

// builtin is one entry of the built-in table: either a SimpleBuiltin or a
// ContextBuiltin, selected by takesContext. Mirrors the original
// interpreter's BuiltinFunction, which stores either shape behind a
// std::variant and dispatches on a takesContext flag (PredefinedFunctions.cpp).
type builtin struct {
	simple       SimpleBuiltin
	withContext  ContextBuiltin
	takesContext bool
}

// SimpleBuiltin is a built-in operator that does not need to see the
// enclosing RunnerContext.
type SimpleBuiltin func(rt *Runtime)

// ContextBuiltin is a built-in operator that needs the current
// RunnerContext: currently only `i`, `ifthen`, and `inline`.
type ContextBuiltin func(rt *Runtime, ctx *RunnerContext)

// Runtime is the driver: it owns the stack registry, the definition
// analyzer, the built-in table, and the I/O/logging surface built-ins write
// through. It threads a RunnerContext through every dispatched Defined term.
type Runtime struct {
	registry *StackRegistry
	analyzer *Analyzer
	builtins map[string]builtin

	io    *ioSurface
	trace func(format string, args ...interface{})

	initialCapacity  int
	initialStackName string
}

// registerBuiltin adds a context-free built-in to the table. Re-registering
// a name overwrites it; the built-in table is populated once, in New.
func (rt *Runtime) registerBuiltin(name string, fn SimpleBuiltin) {
	rt.builtins[name] = builtin{simple: fn}
}

// registerContextBuiltin adds a built-in that receives the current
// RunnerContext alongside the Runtime handle.
func (rt *Runtime) registerContextBuiltin(name string, fn ContextBuiltin) {
	rt.builtins[name] = builtin{withContext: fn, takesContext: true}
}

// Stack returns the currently-active stack.
func (rt *Runtime) Stack() *Stack { return rt.registry.Current() }

// RunProgram executes terms at the top level: no enclosing definition, on
// whichever stack is current (initially the one New creates). This is
// spec.md §4.6's run(terms, analyzer) entry point.
func (rt *Runtime) RunProgram(terms []Term) {
	rt.runTerms(terms, &RunnerContext{Analyzer: rt.analyzer})
}

// RunWithContext continues execution of terms under a supplied context.
// This is spec.md §4.6's run_with_context(terms, context) entry point, used
// by the control-flow built-ins i and ifthen to recurse into list
// bodies without losing — or, for `i`, by deliberately losing — the
// enclosing-definition information needed for tail-call detection.
func (rt *Runtime) RunWithContext(terms []Term, ctx *RunnerContext) {
	rt.runTerms(terms, ctx)
}

func (rt *Runtime) runTerms(terms []Term, ctx *RunnerContext) {
	for _, term := range terms {
		switch term.Kind {
		case KindNumber, KindString, KindList:
			rt.Stack().Push(term.Clone())
		case KindDefinition:
			rt.analyzer.AddDefinition(term)
		case KindDefined:
			rt.dispatch(term.Name, ctx)
		}
	}
}

// dispatch resolves a Defined term: built-in first, user definition second
// (shadowing a built-in is not supported, spec.md §9), else UnknownFunction.
func (rt *Runtime) dispatch(name string, ctx *RunnerContext) {
	if rt.trace != nil {
		rt.trace("dispatch %q (depth %d)", name, rt.Stack().Len())
	}

	if b, ok := rt.builtins[name]; ok {
		if b.takesContext {
			b.withContext(rt, ctx)
		} else {
			b.simple(rt)
		}
		return
	}

	body, ok := rt.analyzer.Lookup(name)
	if !ok {
		die(name, UnknownFunction, "no built-in or user definition named %q", name)
	}

	callCtx := &RunnerContext{HasDef: true, DefName: name, DefBody: body, Analyzer: rt.analyzer}
	def := Term{Kind: KindDefinition, Name: name, Body: body}
	if !IsTailCallRecursive(def) {
		rt.runTerms(body, callCtx)
		return
	}

	// The body's last term is a bare self-call with no conditional guarding
	// it (the guarded `[cond] [...] [...] ifthen` shape is instead handled
	// dynamically inside the ifthen built-in). Rewrite into a local loop so
	// that idiomatic Charm recursion runs in constant host-stack space
	// instead of growing the host call stack once per iteration.
	stripped := body[:len(body)-1]
	for {
		rt.runTerms(stripped, callCtx)
	}
}
