package charm

// registerStringBuiltins registers tostring, char, and ord.
func (rt *Runtime) registerStringBuiltins() {
	rt.registerBuiltin("tostring", func(rt *Runtime) {
		t := rt.Stack().Pop()
		rt.Stack().Push(String(ToString(t)))
	})

	rt.registerBuiltin("char", func(rt *Runtime) {
		t := rt.Stack().Pop()
		if !IsInt(t) {
			die("char", TypeError, "non-integer passed to `char`")
		}
		if t.Int < 0 {
			die("char", TypeError, "negative integer passed to `char`")
		}
		rt.Stack().Push(String(string([]byte{byte(t.Int)})))
	})

	rt.registerBuiltin("ord", func(rt *Runtime) {
		t := rt.Stack().Pop()
		if t.Kind != KindString {
			die("ord", TypeError, "non-string passed to `ord`")
		}
		if len(t.Str) == 0 {
			die("ord", TypeError, "empty string passed to `ord`")
		}
		rt.Stack().Push(Number(int64(t.Str[0])))
	})
}
