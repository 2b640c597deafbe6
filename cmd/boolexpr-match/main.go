// Command boolexpr-match evaluates a boolean expression against a set
// of terms given on the command line:
//
//	boolexpr-match "foo or (bar and baz)" foo qux
//
// It prints ✅ and exits 0 when the expression matches, prints ❌ and
// exits 1 when it does not, and exits 2 with an error message on a
// malformed expression.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/AlexanderGrooff/boolexpr-match/internal/log"
	"github.com/AlexanderGrooff/boolexpr-match/pkg/boolexpr"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
	exitBadExpr = 2
)

// errNoMatch marks the expression-evaluated-false outcome so main can
// map it to its own exit code. It is never printed: a false match is
// not an error, and must stay distinguishable from one.
var errNoMatch = errors.New("expression did not match")

type options struct {
	quiet     bool
	logLevel  string
	logFormat string
}

func (o *options) addFlags(flags *pflag.FlagSet) {
	flags.BoolVarP(&o.quiet, "quiet", "q", false, "suppress the match indicator, report via exit code only")
	flags.StringVar(&o.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	flags.StringVar(&o.logFormat, "log-format", "text", "log format (text, json)")
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "boolexpr-match <expression> [term]...",
		Short: "Test whether a set of terms matches a boolean expression",
		Long: `boolexpr-match parses a boolean expression ("and", "or", "not",
parentheses, bare identifiers) and evaluates it against the set built
from the given terms. An identifier is true when it equals one of the
terms exactly.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cmd, opts, args[0], args[1:])
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func runMatch(cmd *cobra.Command, opts *options, expression string, terms []string) error {
	logger := log.New(&log.Config{
		Level:  opts.logLevel,
		Format: log.Format(opts.logFormat),
		Output: cmd.ErrOrStderr(),
	})

	matcher, err := boolexpr.Parse(expression)
	if err != nil {
		return err
	}

	collection := boolexpr.NewSet(terms...)
	logger.Debug("evaluating expression",
		"expression", matcher.Expression(),
		"terms", len(collection))

	matched, err := matcher.Evaluate(collection)
	if err != nil {
		return err
	}

	if !opts.quiet {
		indicator := "✅"
		if !matched {
			indicator = "❌"
		}
		fmt.Fprintln(cmd.OutOrStdout(), indicator)
	}

	if !matched {
		return errNoMatch
	}
	return nil
}

func main() {
	err := newRootCommand().Execute()
	switch {
	case err == nil:
		os.Exit(exitMatch)
	case errors.Is(err, errNoMatch):
		os.Exit(exitNoMatch)
	default:
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitBadExpr)
	}
}
