// Package cli implements the onyx-resolve command-line entry point:
// resolving a scenario document directly, or running the resolution
// daemon.
package cli

import (
	"fmt"
	"io"
	"net"
	"os"

	"github.com/mattn/go-isatty"
	"google.golang.org/grpc"

	"github.com/f/onyx-lang/internal/config"
	"github.com/f/onyx-lang/internal/daemon"
	"github.com/f/onyx-lang/internal/declare"
	"github.com/f/onyx-lang/internal/resolver"
	"github.com/f/onyx-lang/internal/scenario"
)

// Run executes the CLI for args (excluding argv[0]) and returns the
// process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage())
		return 2
	}

	switch args[0] {
	case "resolve":
		return runResolve(args[1:], stdout, stderr)
	case "daemon":
		return runDaemon(args[1:], stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, config.Version)
		return 0
	default:
		fmt.Fprintln(stderr, usage())
		return 2
	}
}

func usage() string {
	return "usage: onyx-resolve <resolve|daemon|version> [args]"
}

func runResolve(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: onyx-resolve resolve <scenario.yaml>")
		return 2
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	f, err := scenario.Parse(data)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	decl, err := declare.Run(f.ToProgram())
	if err != nil {
		fmt.Fprintln(stderr, colorize(stderr, err.Error(), 31))
		return 1
	}

	env := resolver.NewEnv(decl.Registry)
	failed := false
	for _, cd := range f.Calls {
		call := cd.ToCall(env, decl.Table)
		def, rerr := resolver.Resolve(env, decl.Table, cd.Receiver, call)
		if rerr != nil {
			failed = true
			fmt.Fprintln(stdout, colorize(stdout, fmt.Sprintf("%s: %s", cd.Name, rerr.Error()), 31))
			continue
		}
		fmt.Fprintln(stdout, colorize(stdout, fmt.Sprintf("%s -> %s#%s (%s)", cd.Name, def.Owner, def.Name, call.ResolvedType), 32))
	}
	if failed {
		return 1
	}
	return 0
}

func runDaemon(args []string, stdout, stderr io.Writer) int {
	listen := config.DefaultDaemonSocket
	cachePath := config.DefaultCachePath
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--listen":
			i++
			if i < len(args) {
				listen = args[i]
			}
		case "--cache":
			i++
			if i < len(args) {
				cachePath = args[i]
			}
		}
	}

	cache, err := daemon.OpenCache(cachePath)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer cache.Close()

	srv := &daemon.Server{Cache: cache}
	desc, err := srv.ServiceDesc()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	lis, err := net.Listen("tcp", listen)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	fmt.Fprintf(stdout, "resolution daemon listening on %s (cache: %s)\n", listen, cachePath)

	grpcServer := grpc.NewServer()
	grpcServer.RegisterService(desc, srv)
	if err := grpcServer.Serve(lis); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

// colorize wraps s in an ANSI color code when w is a terminal, the way
// the teacher's CLI output decides whether to colorize diagnostics.
func colorize(w io.Writer, s string, code int) string {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return s
	}
	return fmt.Sprintf("\x1b[%dm%s\x1b[0m", code, s)
}
