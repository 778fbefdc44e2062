package resolver

import (
	"fmt"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/diagnostics"
)

// Partition is a def's positional parameters split into the three
// ranges a splat parameter creates: Before binds one-to-one to the
// parameters ahead of the splat, Splat is the (possibly empty) run of
// arguments the splat parameter absorbs as a tuple, and After binds
// one-to-one to the parameters behind the splat. For a non-variadic
// def, Splat is always empty and Before holds every argument.
type Partition struct {
	Before []PositionalArg
	Splat  []PositionalArg
	After  []PositionalArg
}

// PartitionArgs splits args against def's parameter shape. For a
// non-variadic def it reports WrongArity when more positional actuals
// are given than the def has parameters, or when fewer than
// RequiredArity (which leaves out defaulted parameters) are given and
// the call supplies no named arguments (since named arguments may
// cover any non-splat slot, their mere presence defers the question to
// the matcher's per-parameter binding, which reports a more specific
// MissingArg instead). For a variadic def every parameter before and
// after the splat takes one positional actual, and WrongArity is
// reported when fewer actuals than those parameters are given, whether
// or not the call has named arguments.
func PartitionArgs(name string, call *ast.Call, def *ast.Def, args []PositionalArg) (*Partition, error) {
	hasNamed := len(call.NamedArgs) > 0

	if !def.IsVariadic() {
		if len(args) > len(def.Args) {
			return nil, wrongArityError(name, call, def, len(args), def.MaxFixedArity())
		}
		if !hasNamed && len(args) < def.RequiredArity() {
			return nil, wrongArityError(name, call, def, len(args), def.RequiredArity())
		}
		return &Partition{Before: args}, nil
	}

	before := def.SplatIndex
	after := len(def.Args) - def.SplatIndex - 1
	if len(args) < before+after {
		return nil, wrongArityError(name, call, def, len(args), def.RequiredArity())
	}
	return &Partition{
		Before: args[:before],
		Splat:  args[before : len(args)-after],
		After:  args[len(args)-after:],
	}, nil
}

// wrongArityError reports expected as the bound the call actually
// violated: the minimum required arity when too few positional
// arguments were given, or the maximum accepted arity when too many
// were given to a def with default-valued parameters (RequiredArity
// alone would understate what a non-variadic def with defaults
// accepts).
func wrongArityError(name string, call *ast.Call, def *ast.Def, given, expected int) *diagnostics.Error {
	return diagnostics.New(diagnostics.CodeWrongArity, call.GetToken(),
		fmt.Sprintf("wrong number of arguments for '%s' (given %d, expected %d)", name, given, expected))
}
