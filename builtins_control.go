package charm

// registerControlBuiltins registers i, q, ifthen, and inline. Of these, i,
// ifthen, and inline are the only built-ins that take_context (spec.md
// §4.6), because they need to see the RunnerContext to recurse correctly, to
// detect a tail call, or to reach the analyzer for inlining; q does not.
func (rt *Runtime) registerControlBuiltins() {
	rt.registerContextBuiltin("i", func(rt *Runtime, ctx *RunnerContext) {
		t := rt.Stack().Pop()
		if t.Kind != KindList {
			die("i", TypeError, "non-list passed to `i`")
		}
		// Deliberately start a fresh context with no enclosing definition:
		// a list activated via `i` must never be mistaken for a tail-call
		// site by a nested `ifthen` (spec.md §9).
		rt.RunWithContext(t.List, &RunnerContext{Analyzer: ctx.Analyzer})
	})

	rt.registerBuiltin("q", func(rt *Runtime) {
		t := rt.Stack().Pop()
		rt.Stack().Push(List(t))
	})

	rt.registerContextBuiltin("ifthen", ifthenBuiltin)

	rt.registerContextBuiltin("inline", func(rt *Runtime, ctx *RunnerContext) {
		t := rt.Stack().Pop()
		if t.Kind != KindList {
			die("inline", TypeError, "non-list passed to `inline`")
		}
		var out []Term
		for _, e := range t.List {
			if e.Kind == KindDefined {
				if !ctx.Analyzer.DoInline(&out, e) {
					out = append(out, e)
				}
			} else {
				out = append(out, e)
			}
		}
		rt.Stack().Push(List(out...))
	})
}

// ifthenBuiltin implements spec.md §4.5's ifthen, including its tail-call
// elimination: when invoked inside a user definition D, a truthy or falsy
// branch ending with Defined(D.name) has that trailing self-call stripped
// and is run as a local loop instead of recursing, so idiomatic Charm loops
// run in constant host-stack depth (spec.md §5). Per spec.md §9's resolution
// of the original's Open Question, cond is re-evaluated on every iteration
// in every case, including when both branches tail-call.
func ifthenBuiltin(rt *Runtime, ctx *RunnerContext) {
	falsy := rt.Stack().Pop()
	truthy := rt.Stack().Pop()
	cond := rt.Stack().Pop()
	if cond.Kind != KindList || truthy.Kind != KindList || falsy.Kind != KindList {
		die("ifthen", TypeError, "non-list passed to `ifthen`")
	}

	truthyTail := ctx.HasDef && endsWithSelfCall(truthy.List, ctx.DefName)
	falsyTail := ctx.HasDef && endsWithSelfCall(falsy.List, ctx.DefName)

	evalCond := func() bool {
		rt.RunWithContext(cond.List, ctx)
		c := rt.Stack().Pop()
		if !IsInt(c) {
			die("ifthen", TypeError, "`ifthen` condition returned non-integer")
		}
		return c.Int > 0
	}

	switch {
	case truthyTail && falsyTail:
		strippedTruthy := truthy.List[:len(truthy.List)-1]
		strippedFalsy := falsy.List[:len(falsy.List)-1]
		for {
			if evalCond() {
				rt.RunWithContext(strippedTruthy, ctx)
			} else {
				rt.RunWithContext(strippedFalsy, ctx)
			}
		}

	case truthyTail:
		stripped := truthy.List[:len(truthy.List)-1]
		for {
			if evalCond() {
				rt.RunWithContext(stripped, ctx)
				continue
			}
			rt.RunWithContext(falsy.List, ctx)
			return
		}

	case falsyTail:
		stripped := falsy.List[:len(falsy.List)-1]
		for {
			if evalCond() {
				rt.RunWithContext(truthy.List, ctx)
				return
			}
			rt.RunWithContext(stripped, ctx)
		}

	default:
		if evalCond() {
			rt.RunWithContext(truthy.List, ctx)
		} else {
			rt.RunWithContext(falsy.List, ctx)
		}
	}
}

func endsWithSelfCall(body []Term, defName string) bool {
	if len(body) == 0 {
		return false
	}
	last := body[len(body)-1]
	return last.Kind == KindDefined && last.Name == defName
}
