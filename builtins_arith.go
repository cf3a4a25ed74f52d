package charm

// registerArithBuiltins registers the integer arithmetic operators and the
// two type-inspecific math operators abs and toint. All but abs/toint
// require the integer tag; TypeError otherwise (spec.md §4.5).
func (rt *Runtime) registerArithBuiltins() {
	rt.registerBuiltin("+", func(rt *Runtime) {
		a := rt.Stack().Pop()
		b := rt.Stack().Pop()
		requireInts("+", a, b)
		rt.Stack().Push(Number(a.Int + b.Int))
	})

	rt.registerBuiltin("-", func(rt *Runtime) {
		a := rt.Stack().Pop() // first-popped (top)
		b := rt.Stack().Pop() // second-popped
		requireInts("-", a, b)
		// "3 4 -" leaves 1 (4 - 3): the term pushed last (the top, a) minus
		// the one beneath it (b).
		rt.Stack().Push(Number(a.Int - b.Int))
	})

	rt.registerBuiltin("*", func(rt *Runtime) {
		a := rt.Stack().Pop()
		b := rt.Stack().Pop()
		requireInts("*", a, b)
		rt.Stack().Push(Number(a.Int * b.Int))
	})

	rt.registerBuiltin("/", func(rt *Runtime) {
		a := rt.Stack().Pop() // divisor (first-popped/top)
		b := rt.Stack().Pop() // dividend (second-popped)
		requireInts("/", a, b)
		if a.Int == 0 {
			die("/", TypeError, "division by zero")
		}
		rt.Stack().Push(Number(b.Int % a.Int))
		rt.Stack().Push(Number(b.Int / a.Int))
	})

	rt.registerBuiltin("abs", func(rt *Runtime) {
		t := rt.Stack().Pop()
		switch {
		case IsInt(t):
			if t.Int < 0 {
				t.Int = -t.Int
			}
		case IsFloat(t):
			if t.Float < 0 {
				t.Float = -t.Float
			}
		default:
			die("abs", TypeError, "non-number passed to `abs`")
		}
		rt.Stack().Push(t)
	})

	rt.registerBuiltin("toint", func(rt *Runtime) {
		t := rt.Stack().Pop()
		switch {
		case IsFloat(t):
			rt.Stack().Push(Number(int64(t.Float)))
		case IsInt(t):
			rt.Stack().Push(t)
		default:
			die("toint", TypeError, "non-number passed to `toint`")
		}
	})
}

func requireInts(op string, ts ...Term) {
	for _, t := range ts {
		if !IsInt(t) {
			die(op, TypeError, "non-integer passed to `%s`", op)
		}
	}
}
