package charm

// registerStackBuiltins registers dup, pop, and swap — the stack-juggling
// group that does not look at the payload of the terms it moves around.
func (rt *Runtime) registerStackBuiltins() {
	rt.registerBuiltin("dup", func(rt *Runtime) {
		t := rt.Stack().Pop()
		rt.Stack().Push(t)
		rt.Stack().Push(t.Clone())
	})

	rt.registerBuiltin("pop", func(rt *Runtime) {
		rt.Stack().Pop()
	})

	rt.registerBuiltin("swap", func(rt *Runtime) {
		i := rt.Stack().Pop()
		j := rt.Stack().Pop()
		if !IsInt(i) || !IsInt(j) {
			die("swap", TypeError, "non-integer index passed to `swap`")
		}
		if i.Int < 0 || j.Int < 0 {
			die("swap", IndexOutOfRange, "negative index passed to `swap`")
		}
		cap := int64(rt.Stack().capacity)
		if i.Int >= cap || j.Int >= cap {
			die("swap", IndexOutOfRange, "index overflowing stack capacity %d passed to `swap`", cap)
		}
		rt.Stack().Swap(int(i.Int), int(j.Int))
	})
}
