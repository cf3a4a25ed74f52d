package charm

// registerRefBuiltins registers getref and setref. References are scoped to
// the current stack (spec.md §3, §9): see StackRegistry.GetRef/SetRef.
func (rt *Runtime) registerRefBuiltins() {
	rt.registerBuiltin("getref", func(rt *Runtime) {
		name := rt.Stack().Pop()
		rt.Stack().Push(rt.registry.GetRef(name))
	})

	rt.registerBuiltin("setref", func(rt *Runtime) {
		value := rt.Stack().Pop()
		name := rt.Stack().Pop()
		rt.registry.SetRef(name, value)
	})
}
