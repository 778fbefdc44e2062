package config

// Version is the current onyx-resolve version.
// Set at build time via -ldflags, or by editing this file directly.
var Version = "0.1.0"

const ScenarioFileExt = ".yaml"

// ScenarioFileExtensions are all recognized scenario document extensions.
var ScenarioFileExtensions = []string{".yaml", ".yml"}

// HasScenarioExt reports whether path ends with a recognized scenario
// document extension.
func HasScenarioExt(path string) bool {
	for _, ext := range ScenarioFileExtensions {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

// DefaultDaemonSocket is the default address the resolution daemon
// listens on when no --listen flag is given.
const DefaultDaemonSocket = "127.0.0.1:4741"

// DefaultCachePath is the default sqlite resolution cache location,
// relative to the daemon's working directory.
const DefaultCachePath = "onyx-resolve-cache.db"

// Built-in class names. A new registry is seeded with Object only; the
// resolver declares the others under Object when it first types a
// literal of that kind.
const (
	ObjectTypeName = "Object"
	NilTypeName    = "Nil"
	BoolTypeName   = "Bool"
	Int32TypeName  = "Int32"
	Float64TypeName = "Float64"
	CharTypeName   = "Char"
	StringTypeName = "String"
)
