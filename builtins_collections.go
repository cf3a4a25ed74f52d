package charm

// registerCollectionBuiltins registers len, at, insert, concat, and split —
// the operators shared by List and String, grounded directly on
// PredefinedFunctions.cpp's "TRAVERSABLE (STRING / LIST) MANIPULATIONS"
// section.
func (rt *Runtime) registerCollectionBuiltins() {
	rt.registerBuiltin("len", func(rt *Runtime) {
		t := rt.Stack().Pop()
		rt.Stack().Push(t)
		switch t.Kind {
		case KindList:
			rt.Stack().Push(Number(int64(len(t.List))))
		case KindString:
			rt.Stack().Push(Number(int64(len(t.Str))))
		default:
			// Not a list or string: reporting a length of 0 would be
			// misleading about emptiness that was never checked, so this
			// reports 1, matching the original's comment and choice.
			rt.Stack().Push(Number(1))
		}
	})

	rt.registerBuiltin("at", func(rt *Runtime) {
		idx := rt.Stack().Pop()
		container := rt.Stack().Pop()
		rt.Stack().Push(container)
		if !IsInt(idx) {
			die("at", TypeError, "non-integer index passed to `at`")
		}
		switch container.Kind {
		case KindList:
			if len(container.List) < 1 {
				die("at", IndexOutOfRange, "empty list passed to `at`")
			}
			i := wrapIndex(idx.Int, len(container.List))
			rt.Stack().Push(List(container.List[i]))
		case KindString:
			if len(container.Str) < 1 {
				die("at", IndexOutOfRange, "empty string passed to `at`")
			}
			i := wrapIndex(idx.Int, len(container.Str))
			rt.Stack().Push(String(container.Str[i : i+1]))
		default:
			die("at", TypeError, "neither a list nor a string was passed to `at`")
		}
	})

	rt.registerBuiltin("insert", func(rt *Runtime) {
		idx := rt.Stack().Pop()
		elem := rt.Stack().Pop()
		container := rt.Stack().Pop()
		if !IsInt(idx) {
			die("insert", TypeError, "non-integer index passed to `insert`")
		}
		switch container.Kind {
		case KindList:
			if elem.Kind != KindList {
				die("insert", TypeError, "attempted to `insert` a non-list into a list")
			}
			i := 0
			if len(container.List) > 0 {
				i = wrapIndex(idx.Int, len(container.List))
			}
			out := make([]Term, 0, len(container.List)+len(elem.List))
			out = append(out, container.List[:i]...)
			out = append(out, elem.List...)
			out = append(out, container.List[i:]...)
			container.List = out
		case KindString:
			if elem.Kind != KindString {
				die("insert", TypeError, "attempted to `insert` a non-string into a string")
			}
			i := 0
			if len(container.Str) > 0 {
				i = wrapIndex(idx.Int, len(container.Str))
			}
			container.Str = container.Str[:i] + elem.Str + container.Str[i:]
		default:
			die("insert", TypeError, "non-list/string passed to `insert`")
		}
		rt.Stack().Push(container)
	})

	rt.registerBuiltin("concat", func(rt *Runtime) {
		top := rt.Stack().Pop()
		below := rt.Stack().Pop()
		switch {
		case top.Kind == KindList && below.Kind == KindList:
			out := make([]Term, 0, len(below.List)+len(top.List))
			out = append(out, below.List...)
			out = append(out, top.List...)
			rt.Stack().Push(List(out...))
		case top.Kind == KindString && below.Kind == KindString:
			rt.Stack().Push(String(below.Str + top.Str))
		default:
			die("concat", TypeError, "unmatching types passed to `concat`")
		}
	})

	rt.registerBuiltin("split", func(rt *Runtime) {
		idx := rt.Stack().Pop()
		container := rt.Stack().Pop()
		if !IsInt(idx) {
			die("split", TypeError, "non-integer passed to `split`")
		}
		switch container.Kind {
		case KindList:
			n := int64(len(container.List))
			if idx.Int < 0 || idx.Int > n {
				die("split", IndexOutOfRange, "out of bounds index passed to `split`")
			}
			rt.Stack().Push(List(container.List[:idx.Int]...))
			rt.Stack().Push(List(container.List[idx.Int:]...))
		case KindString:
			n := int64(len(container.Str))
			if idx.Int < 0 || idx.Int > n {
				die("split", IndexOutOfRange, "out of bounds index passed to `split`")
			}
			rt.Stack().Push(String(container.Str[:idx.Int]))
			rt.Stack().Push(String(container.Str[idx.Int:]))
		default:
			die("split", TypeError, "non-list/string passed to `split`")
		}
	})
}

// wrapIndex wraps i into [0, size) by modulo, the way `at`/`insert` do in
// the original interpreter (`i % size`). size is assumed > 0 by callers.
func wrapIndex(i int64, size int) int {
	m := i % int64(size)
	if m < 0 {
		m += int64(size)
	}
	return int(m)
}
