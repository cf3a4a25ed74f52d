/* Command charm runs a small, fixed Charm program against the interpreter
core in github.com/charmlang/charm.

Source-level lexing and parsing are out of scope for the core (see the
package doc comment on github.com/charmlang/charm): this command stands in
for that missing front end with one embedded example program, a counting
loop that exercises tail-call elimination end to end, so the runtime can be
exercised from the command line without a parser.
*/
package main

import (
	"os"

	"github.com/charmlang/charm"
	"github.com/charmlang/charm/internal/tracelog"
	"github.com/spf13/cobra"
)

var (
	cfgPath       string
	traceFlag     bool
	stackCapacity int
)

func main() {
	root := &cobra.Command{
		Use:   "charm",
		Short: "Run the built-in Charm example program",
		Long: `charm runs a fixed example Charm program (a tail-recursive
countdown) against the interpreter core, standing in for the source-level
parser this repository does not implement.`,
		RunE: run,
	}
	root.Flags().StringVar(&cfgPath, "config", "", "path to a charm.yaml config file")
	root.Flags().BoolVar(&traceFlag, "trace", false, "log one line per dispatched term")
	root.Flags().IntVar(&stackCapacity, "stack-capacity", 0, "override the initial stack's capacity (0: use config/default)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}
	if stackCapacity > 0 {
		cfg.StackCapacity = stackCapacity
	}
	if traceFlag {
		cfg.Trace = true
	}

	log := &tracelog.Logger{}
	log.SetOutput(os.Stderr)
	defer func() { os.Exit(log.ExitCode()) }()

	opts := []charm.Option{
		charm.WithOutput(os.Stdout),
		charm.WithInput(os.Stdin),
		charm.WithStackCapacity(cfg.StackCapacity),
		charm.WithStackName(cfg.StackName),
	}
	if cfg.Trace {
		opts = append(opts, charm.WithTrace(log.Leveledf("TRACE")))
	}

	rt := charm.New(opts...)
	log.ErrorIf(rt.Run(countdownExample(10)))
	return nil
}

// countdownExample builds the term sequence for:
//
//	countdown := [ dup 0 eq ] [ pop ] [ dup tostring pstring newline -1 + countdown ] ifthen
//	<n> countdown
//
// printing n, n-1, ..., 1 and leaving the stack empty. It demonstrates the
// ifthen built-in's tail-call elimination: the trailing self-call in the
// falsy branch never grows the host call stack, however large n is.
func countdownExample(n int64) []charm.Term {
	return []charm.Term{
		charm.Definition("countdown",
			charm.List(charm.Defined("dup"), charm.Number(0), charm.Defined("eq")),
			charm.List(charm.Defined("pop")),
			charm.List(
				charm.Defined("dup"), charm.Defined("tostring"), charm.Defined("pstring"), charm.Defined("newline"),
				charm.Number(-1), charm.Defined("+"), charm.Defined("countdown"),
			),
			charm.Defined("ifthen"),
		),
		charm.Number(n),
		charm.Defined("countdown"),
	}
}
