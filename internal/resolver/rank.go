package resolver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/f/onyx-lang/internal/ast"
	"github.com/f/onyx-lang/internal/diagnostics"
)

// Rank picks the best-scoring candidate among matches. Zero candidates
// is reported by the caller as NoOverloadMatches (it needs the call's
// argument types to render the message, which Rank doesn't have).
// Exactly one candidate is returned outright. A tie for the top score
// is Ambiguous, with one exception: redefinition idempotence. When two
// or more tied candidates share the same textual signature (method
// name, parameter names and restrictions, and splat position; see
// defSignature), they are not distinct overloads
// competing for the call — they are the same def declared more than
// once — so the later-declared one wins and the earlier ones never
// participate. matches preserves the declaration order of the defs the
// caller looked up, so the last candidate seen for a given signature is
// the latest declaration.
func Rank(call *ast.Call, matches []*Candidate) (*Candidate, error) {
	if len(matches) == 0 {
		return nil, nil
	}
	best := matches[0].Score
	for _, m := range matches[1:] {
		if m.Score > best {
			best = m.Score
		}
	}

	bySignature := map[string]*Candidate{}
	var order []string
	for _, m := range matches {
		if m.Score != best {
			continue
		}
		sig := defSignature(m.Def)
		if _, ok := bySignature[sig]; !ok {
			order = append(order, sig)
		}
		bySignature[sig] = m
	}

	if len(order) == 1 {
		return bySignature[order[0]], nil
	}

	top := make([]*Candidate, len(order))
	for i, sig := range order {
		top[i] = bySignature[sig]
	}
	names := make([]string, len(top))
	for i, c := range top {
		names[i] = defSignature(c.Def)
	}
	sort.Strings(names)
	return nil, diagnostics.New(diagnostics.CodeAmbiguous, call.GetToken(),
		fmt.Sprintf("ambiguous call to '%s', matches: %s", call.Name, strings.Join(names, ", ")))
}

func defSignature(d *ast.Def) string {
	parts := make([]string, len(d.Args))
	for i, a := range d.Args {
		restr := "?"
		if a.Restriction != nil {
			restr = a.Restriction.String()
		}
		prefix := ""
		if i == d.SplatIndex {
			prefix = "*"
		}
		parts[i] = prefix + a.Name + " : " + restr
	}
	return fmt.Sprintf("%s(%s)", d.Name, strings.Join(parts, ", "))
}
