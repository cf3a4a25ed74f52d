package charm

// registerIOBuiltins registers p, pstring, newline, getline, and the
// debugging built-in type.
func (rt *Runtime) registerIOBuiltins() {
	rt.registerBuiltin("p", func(rt *Runtime) {
		rt.io.writeString(ToString(rt.Stack().Pop()))
	})

	rt.registerBuiltin("pstring", func(rt *Runtime) {
		t := rt.Stack().Pop()
		if t.Kind != KindString {
			die("pstring", TypeError, "non-string passed to `pstring`")
		}
		rt.io.writeString(t.Str)
	})

	rt.registerBuiltin("newline", func(rt *Runtime) {
		rt.io.writeString("\n")
	})

	rt.registerBuiltin("getline", func(rt *Runtime) {
		rt.Stack().Push(String(rt.io.readLine()))
	})

	rt.registerBuiltin("type", func(rt *Runtime) {
		t := rt.Stack().Pop()
		rt.Stack().Push(t)
		rt.Stack().Push(String(t.Kind.String()))
	})
}
