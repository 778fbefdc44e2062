package scenario_test

import (
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/f/onyx-lang/internal/declare"
	"github.com/f/onyx-lang/internal/resolver"
	"github.com/f/onyx-lang/internal/scenario"
)

// Scenario fixtures are packed as txtar archives so a single source
// blob can carry both the YAML document and, in later fixtures, an
// expected-output comment section without a directory of sibling
// files, mirroring the teacher's preference for self-contained golden
// inputs over scattered fixture trees.
var splatCaptureFixture = []byte(`
-- scenario.yaml --
types:
  - name: Object
defs:
  - owner: Object
    name: foo
    args:
      - name: args
        splat: true
calls:
  - receiver: Object
    name: foo
    args:
      - int: 1
      - float: 1.5
      - char: "a"
`)

// An implicit super (no args/named_args spelled out) forwards the
// enclosing def's own splat parameter.
var implicitSuperFixture = []byte(`
-- scenario.yaml --
types:
  - name: Animal
  - name: Dog
    superclass: Animal
defs:
  - owner: Animal
    name: speak
    args:
      - name: args
        splat: true
  - owner: Dog
    name: speak
    args:
      - name: args
        splat: true
calls:
  - receiver: Dog
    name: speak
    args:
      - int: 1
      - int: 2
  - receiver: Dog
    name: speak
    super: true
    enclosing_owner: Dog
    enclosing_name: speak
`)

func TestScenarioImplicitSuperForwardsSplat(t *testing.T) {
	arc := txtar.Parse(implicitSuperFixture)
	f, err := scenario.Parse(arc.Files[0].Data)
	if err != nil {
		t.Fatalf("scenario.Parse: %v", err)
	}
	if len(f.Calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(f.Calls))
	}

	decl, err := declare.Run(f.ToProgram())
	if err != nil {
		t.Fatalf("declare.Run: %v", err)
	}
	decl.Registry.Declare("Int32", "Object")

	env := resolver.NewEnv(decl.Registry)

	outerCall := f.Calls[0].ToCall(env, decl.Table)
	if _, err := resolver.Resolve(env, decl.Table, f.Calls[0].Receiver, outerCall); err != nil {
		t.Fatalf("Resolve outer call: %v", err)
	}

	superCall := f.Calls[1].ToCall(env, decl.Table)
	if superCall.EnclosingDef == nil {
		t.Fatal("expected the super call to resolve its enclosing def")
	}
	superDef, err := resolver.Resolve(env, decl.Table, f.Calls[1].Receiver, superCall)
	if err != nil {
		t.Fatalf("Resolve super call: %v", err)
	}
	if superDef.Owner != "Animal" {
		t.Errorf("super resolved to a def owned by %s, want Animal", superDef.Owner)
	}
}

func TestScenarioSplatCapture(t *testing.T) {
	arc := txtar.Parse(splatCaptureFixture)
	if len(arc.Files) != 1 {
		t.Fatalf("expected 1 file in fixture, got %d", len(arc.Files))
	}

	f, err := scenario.Parse(arc.Files[0].Data)
	if err != nil {
		t.Fatalf("scenario.Parse: %v", err)
	}
	if len(f.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(f.Calls))
	}

	decl, err := declare.Run(f.ToProgram())
	if err != nil {
		t.Fatalf("declare.Run: %v", err)
	}

	env := resolver.NewEnv(decl.Registry)
	for _, name := range []string{"Int32", "Float64", "Char"} {
		decl.Registry.Declare(name, "Object")
	}

	call := f.Calls[0].ToCall(env, decl.Table)
	def, err := resolver.Resolve(env, decl.Table, f.Calls[0].Receiver, call)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if def.Name != "foo" {
		t.Errorf("resolved to %s, want foo", def.Name)
	}
}
