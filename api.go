package charm

import (
	"io"
	"io/ioutil"
)

// DefaultStackName and DefaultStackCapacity describe the initial stack New
// creates before the caller's program ever runs (spec.md §3).
const (
	DefaultStackName     = "main"
	DefaultStackCapacity = 4096
)

// New constructs a Runtime: registers the full built-in table, applies opts,
// and creates the initial "main" stack as current — mirroring the teacher's
// New(opts ...VMOption) *VM (api.go), which likewise applies a set of
// default options before the caller's.
func New(opts ...Option) *Runtime {
	rt := &Runtime{
		registry:         NewStackRegistry(),
		analyzer:         NewAnalyzer(),
		builtins:         make(map[string]builtin),
		io:               newIOSurface(ioutil.Discard, emptyReader{}),
		initialCapacity:  DefaultStackCapacity,
		initialStackName: DefaultStackName,
	}
	rt.registerBuiltins()
	for _, opt := range opts {
		if opt != nil {
			opt.apply(rt)
		}
	}
	rt.registry.Create(String(rt.initialStackName), rt.initialCapacity)
	return rt
}

// Run executes terms at the top level and returns any fatal runtime error.
// This is the single panic/recover boundary described in SPEC_FULL.md §2:
// every built-in and the runner itself report failure by panicking (via
// die), and Run is where that unwind is finally caught and turned back into
// a plain Go error, matching spec.md §7's "all runtime errors are fatal"
// policy and spec.md §6's "exit zero on success, nonzero with a diagnostic
// on any fatal error" contract.
func (rt *Runtime) Run(terms []Term) (err error) {
	defer recoverFatal(&err)
	rt.RunProgram(terms)
	return nil
}

type emptyReader struct{}

func (emptyReader) Read([]byte) (int, error) { return 0, io.EOF }
