// Command tcdesugar runs the type-class desugaring pass over a module
// fixture and one or more externs fixtures, printing the rewritten
// module's declaration list. Flag shape follows the teacher's own
// cmd/nar/nar.go: plain flag.String/flag.Bool, one LogWriter collecting
// errors across the whole run, flushed once at the end.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"tcdesugar/ast"
	"tcdesugar/desugar"
	"tcdesugar/internal/diagnostics"
	"tcdesugar/internal/fixtures"
)

func main() {
	module := flag.String("module", "", "path to a module fixture (YAML)")
	externsFlags := multiFlag{}
	flag.Var(&externsFlags, "externs", "path to an externs fixture (YAML); may be repeated")
	verbose := flag.Bool("verbose", false, "dump intermediate structures")
	noColor := flag.Bool("no-color", false, "disable colorized module headers in the output")
	flag.Parse()

	log := diagnostics.NewLogWriter(*verbose)
	color := !*noColor && isatty.IsTerminal(os.Stdout.Fd())

	if *module == "" {
		log.Err(fmt.Errorf("no input packages, run tcdesugar as `tcdesugar -module <path>`"))
		log.Flush(os.Stdout)
		os.Exit(1)
	}

	m, err := loadModule(*module)
	if err != nil {
		log.Err(err)
		log.Flush(os.Stdout)
		os.Exit(1)
	}

	var externsFiles []ast.ExternsFile
	for _, path := range externsFlags {
		ef, err := loadExterns(path)
		if err != nil {
			log.Err(err)
			continue
		}
		externsFiles = append(externsFiles, ef)
	}
	if log.HasErrors() {
		log.Flush(os.Stdout)
		os.Exit(1)
	}

	log.Debug("input module", m)

	desugared, err := desugar.Run(externsFiles, []*ast.Module{m})
	if err != nil {
		log.Err(err)
		log.Flush(os.Stdout)
		os.Exit(1)
	}

	for _, out := range desugared {
		log.Debug("desugared module", out)
		data, err := fixtures.MarshalModule(out)
		if err != nil {
			log.Err(err)
			continue
		}
		if color {
			fmt.Fprintf(os.Stdout, "\x1b[32m# %s\x1b[0m\n", out.Name)
		} else {
			fmt.Fprintf(os.Stdout, "# %s\n", out.Name)
		}
		os.Stdout.Write(data)
	}

	log.Flush(os.Stdout)
}

func loadModule(path string) (*ast.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading module fixture %s: %w", path, err)
	}
	return fixtures.UnmarshalModule(data)
}

func loadExterns(path string) (ast.ExternsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ast.ExternsFile{}, fmt.Errorf("reading externs fixture %s: %w", path, err)
	}
	return fixtures.UnmarshalExternsFile(data)
}

// multiFlag collects repeated -externs flags into a slice, the same way
// the teacher collects repeated positional package paths via flag.Args.
type multiFlag []string

func (f *multiFlag) String() string { return fmt.Sprint([]string(*f)) }

func (f *multiFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}
