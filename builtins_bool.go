package charm

// registerBoolBuiltins registers xor, requiring two integers and pushing
// (a>0) XOR (b>0) as 0/1.
func (rt *Runtime) registerBoolBuiltins() {
	rt.registerBuiltin("xor", func(rt *Runtime) {
		a := rt.Stack().Pop()
		b := rt.Stack().Pop()
		if !IsInt(a) || !IsInt(b) {
			die("xor", TypeError, "non-integer passed to logic function")
		}
		av, bv := a.Int > 0, b.Int > 0
		if av != bv {
			rt.Stack().Push(Number(1))
		} else {
			rt.Stack().Push(Number(0))
		}
	})
}
