package charm

// registerCompareBuiltins registers eq.
func (rt *Runtime) registerCompareBuiltins() {
	rt.registerBuiltin("eq", func(rt *Runtime) {
		a := rt.Stack().Pop()
		b := rt.Stack().Pop()
		if Equal(a, b) {
			rt.Stack().Push(Number(1))
		} else {
			rt.Stack().Push(Number(0))
		}
	})
}
