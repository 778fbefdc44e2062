// Package symbols tracks method definitions per owning type, the way
// the teacher's symbol table tracks trait dispatch targets, but keyed
// on a single-inheritance class chain instead of a trait scope chain.
package symbols

import "github.com/f/onyx-lang/internal/ast"

// DefSet is every overload of one method name declared on one type.
type DefSet struct {
	Name string
	Defs []*ast.Def
}

// Table indexes every declared Def by owning type name and method
// name, and knows each type's superclass so overload lookup and
// super-call forwarding can walk the ancestor chain the way the
// teacher's symbol table walks its outer scope chain.
type Table struct {
	superclass map[string]string           // type name -> superclass name
	methods    map[string]map[string]*DefSet // type name -> method name -> overloads
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{
		superclass: map[string]string{},
		methods:    map[string]map[string]*DefSet{},
	}
}

// DeclareType records typeName's superclass ("" for a root class).
func (t *Table) DeclareType(typeName, superclassName string) {
	t.superclass[typeName] = superclassName
	if _, ok := t.methods[typeName]; !ok {
		t.methods[typeName] = map[string]*DefSet{}
	}
}

// AddDef registers def as an overload of its own Owner/Name.
func (t *Table) AddDef(def *ast.Def) {
	byName, ok := t.methods[def.Owner]
	if !ok {
		byName = map[string]*DefSet{}
		t.methods[def.Owner] = byName
	}
	set, ok := byName[def.Name]
	if !ok {
		set = &DefSet{Name: def.Name}
		byName[def.Name] = set
	}
	set.Defs = append(set.Defs, def)
}

// OwnDefs returns the overloads of name declared directly on typeName,
// without searching ancestors.
func (t *Table) OwnDefs(typeName, name string) []*ast.Def {
	byName, ok := t.methods[typeName]
	if !ok {
		return nil
	}
	set, ok := byName[name]
	if !ok {
		return nil
	}
	return set.Defs
}

// Lookup returns every overload of name visible from typeName,
// starting with typeName's own overloads and then, if typeName
// declares none, walking up the superclass chain. Unlike Ruby-style
// method resolution this does not merge overloads across levels: a
// subclass that defines any overload of name shadows the superclass's
// overloads of that name entirely, matching ordinary single-dispatch
// override semantics.
func (t *Table) Lookup(typeName, name string) []*ast.Def {
	seen := map[string]bool{}
	for cur := typeName; cur != "" && !seen[cur]; cur = t.superclass[cur] {
		seen[cur] = true
		if defs := t.OwnDefs(cur, name); len(defs) > 0 {
			return defs
		}
	}
	return nil
}

// LookupAbove returns every overload of name visible starting at
// typeName's superclass, skipping typeName's own overloads. This is
// the lookup a `super` call uses.
func (t *Table) LookupAbove(typeName, name string) []*ast.Def {
	super, ok := t.superclass[typeName]
	if !ok || super == "" {
		return nil
	}
	return t.Lookup(super, name)
}
