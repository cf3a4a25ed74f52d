package charm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Runner_literalsPushAndClone(t *testing.T) {
	rt := New()
	rt.RunProgram([]Term{Number(1), String("a"), List(Number(2))})
	assert.True(t, Equal(List(Number(2)), rt.Stack().Pop()))
	assert.True(t, Equal(String("a"), rt.Stack().Pop()))
	assert.True(t, Equal(Number(1), rt.Stack().Pop()))
}

func Test_Runner_definitionThenCall(t *testing.T) {
	rt := New()
	rt.RunProgram([]Term{
		Definition("square", Defined("dup"), Defined("*")),
		Number(5),
		Defined("square"),
	})
	assert.Equal(t, int64(25), rt.Stack().Pop().Int)
}

// A built-in always wins dispatch over a same-named user definition
// (spec.md §9): redefining "dup" does not shadow the built-in.
func Test_Runner_builtinWinsOverUserDefinition(t *testing.T) {
	rt := New()
	rt.RunProgram([]Term{
		Definition("dup", Number(999)),
		Number(7),
		Defined("dup"),
	})
	assert.Equal(t, int64(7), rt.Stack().Pop().Int)
	assert.Equal(t, int64(7), rt.Stack().Pop().Int)
}

func Test_Runner_unknownFunctionDies(t *testing.T) {
	rt := New()
	assert.PanicsWithValue(t, &RuntimeError{Op: "nope", Kind: UnknownFunction, Msg: `no built-in or user definition named "nope"`}, func() {
		rt.RunProgram([]Term{Defined("nope")})
	})
}

// A bare (unconditioned) self-call in tail position is rewritten into a
// host-stack-constant loop by the runner itself (spec.md §5) — here the loop
// terminates via a stack underflow once the operand stack it recurses on
// runs dry, rather than via any conditional, demonstrating the rewrite
// doesn't change observable behavior.
func Test_Runner_bareTailSelfCall_loopsUntilUnderflow(t *testing.T) {
	rt := New(WithStackCapacity(16))
	rt.analyzer.AddDefinition(Definition("drain", Defined("pop"), Defined("drain")))
	rt.Stack().Push(Number(1))
	rt.Stack().Push(Number(2))
	rt.Stack().Push(Number(3))
	assert.PanicsWithValue(t, &RuntimeError{Op: "pop", Kind: StackUnderflow, Msg: `stack "main" is empty`}, func() {
		rt.dispatch("drain", &RunnerContext{Analyzer: rt.analyzer})
	})
}

// End-to-end Run: successful programs return a nil error through the single
// recover boundary, and a fatal built-in error comes back as a plain error
// instead of propagating the panic.
func Test_Runner_Run_recoversFatalErrorsIntoReturnValue(t *testing.T) {
	var buf bytes.Buffer
	rt := New(WithOutput(&buf))
	err := rt.Run([]Term{Number(3), Number(4), Defined("+"), Defined("tostring"), Defined("pstring")})
	require.NoError(t, err)
	assert.Equal(t, "7", buf.String())

	err = rt.Run([]Term{Defined("missing")})
	require.Error(t, err)
	rerr, ok := err.(*RuntimeError)
	require.True(t, ok)
	assert.Equal(t, UnknownFunction, rerr.Kind)
}

// Inlining a one-level call changes nothing observable: running the inlined
// list produces the same result as calling the original definition.
func Test_Runner_inlineIsObservationallyTransparent(t *testing.T) {
	rt := New()
	rt.analyzer.AddDefinition(Definition("double", Number(2), Defined("*")))

	direct := New()
	direct.analyzer.AddDefinition(Definition("double", Number(2), Defined("*")))
	direct.Stack().Push(Number(5))
	direct.dispatch("double", &RunnerContext{Analyzer: direct.analyzer})
	wantResult := direct.Stack().Pop().Int

	rt.Stack().Push(List(Number(5), Defined("double")))
	rt.dispatch("inline", &RunnerContext{Analyzer: rt.analyzer})
	inlined := rt.Stack().Pop()
	rt.Stack().Push(inlined)
	rt.dispatch("i", &RunnerContext{Analyzer: rt.analyzer})

	assert.Equal(t, wantResult, rt.Stack().Pop().Int)
}
