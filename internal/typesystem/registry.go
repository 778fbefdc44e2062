package typesystem

import "github.com/f/onyx-lang/internal/config"

// Registry holds every declared class, keyed by name, and answers the
// compatibility/alias questions the matcher needs. It is deliberately
// much thinner than the teacher's HM Subst/Constraint machinery: there
// are no type variables here, only a closed, already-resolved set of
// classes plus the tuples and unions built over them.
type Registry struct {
	classes map[string]*Class
	aliases map[string]string
}

// NewRegistry returns a registry pre-seeded with Object as the implicit
// root of every class that declares no explicit superclass.
func NewRegistry() *Registry {
	r := &Registry{
		classes: map[string]*Class{},
		aliases: map[string]string{},
	}
	r.classes[config.ObjectTypeName] = &Class{Name: config.ObjectTypeName}
	return r
}

// Declare registers a class named name whose superclass is
// superclassName ("" or "Object" for a root class). It is safe to call
// Declare before the superclass itself has been declared: an unknown
// superclass is registered as a placeholder Class, and a later Declare
// of that name fills in the same Class in place.
func (r *Registry) Declare(name, superclassName string) *Class {
	c, ok := r.classes[name]
	if !ok {
		c = &Class{Name: name}
		r.classes[name] = c
	}
	if superclassName != "" && superclassName != name {
		if super, ok := r.classes[superclassName]; ok {
			c.Superclass = super
		} else {
			super = &Class{Name: superclassName}
			r.classes[superclassName] = super
			c.Superclass = super
		}
	} else if c.Superclass == nil && name != config.ObjectTypeName {
		c.Superclass = r.classes[config.ObjectTypeName]
	}
	return c
}

// Alias records that fromName is another spelling of toName, e.g. a
// type alias declaration. RemoveAlias follows the chain to the
// underlying name.
func (r *Registry) Alias(fromName, toName string) {
	r.aliases[fromName] = toName
}

// RemoveAlias follows alias chains and returns the underlying class
// for name, or nil if name is unknown. Matches spec's remove_alias.
func (r *Registry) RemoveAlias(name string) *Class {
	seen := map[string]bool{}
	for {
		if seen[name] {
			return nil
		}
		seen[name] = true
		if target, ok := r.aliases[name]; ok {
			name = target
			continue
		}
		return r.classes[name]
	}
}

// Lookup returns the class registered under name, resolving aliases.
func (r *Registry) Lookup(name string) (*Class, bool) {
	c := r.RemoveAlias(name)
	return c, c != nil
}

// CompatibleWith reports whether actual may be passed where restriction
// requires: every member of actual (if it is a union) must be
// compatible with at least one member of restriction (if it is itself
// a union), via single-inheritance ancestry. A nil restriction accepts
// anything. Matches spec's compatible_with predicate.
func (r *Registry) CompatibleWith(actual, restriction Type) bool {
	if restriction == nil {
		return true
	}
	for _, a := range unionMembers(actual) {
		ok := false
		for _, want := range unionMembers(restriction) {
			if classCompatible(a, want) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func classCompatible(actual, want Type) bool {
	ac, aok := actual.(*Class)
	wc, wok := want.(*Class)
	if aok && wok {
		return ac.IsSubclassOf(wc) || ac.Name == wc.Name
	}
	// Tuples and other non-class shapes must match structurally.
	return actual.String() == want.String()
}

func unionMembers(t Type) []Type {
	if u, ok := t.(*Union); ok {
		return u.Members
	}
	return []Type{t}
}
