package charm

// registerStackMgmtBuiltins registers createstack, getstack, and
// switchstack.
func (rt *Runtime) registerStackMgmtBuiltins() {
	rt.registerBuiltin("createstack", func(rt *Runtime) {
		name := rt.Stack().Pop()
		capacity := rt.Stack().Pop()
		if !IsInt(capacity) {
			die("createstack", TypeError, "non-integer passed to `createstack`")
		}
		if capacity.Int <= 0 {
			die("createstack", ArityError, "negative integer or zero passed to `createstack`")
		}
		rt.registry.Create(name, int(capacity.Int))
	})

	rt.registerBuiltin("getstack", func(rt *Runtime) {
		rt.Stack().Push(rt.Stack().Name())
	})

	rt.registerBuiltin("switchstack", func(rt *Runtime) {
		name := rt.Stack().Pop()
		rt.registry.Switch(name)
	})
}
