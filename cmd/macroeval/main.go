// macroeval replaces the macro tokens in lines of text with values taken
// from a values file, formatted according to a catalog, or with the
// catalog's example values.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/offermacros.mod/format"
	"github.com/nickwells/offermacros.mod/macros"
)

// Exit statuses
const (
	exitOK      = 0
	exitMissing = 1
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	a, err := parseFlags(args, errOut)
	if err != nil {
		return exitError
	}

	level := slog.LevelInfo
	if a.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(errOut,
		&slog.HandlerOptions{Level: level}))

	ev, lk, err := setup(a, logger)
	if err != nil {
		logger.Error("setup failed", "error", err)
		return exitError
	}

	src, lines := "arg", a.text
	if len(lines) == 0 {
		src = "stdin"
		if lines, err = readLines(in); err != nil {
			logger.Error("cannot read the text", "error", err)
			return exitError
		}
	}

	status := exitOK
	loc := location.New(src)
	for _, line := range lines {
		loc.Incr()
		r, err := ev.Evaluate(line, lk, loc)
		if err != nil {
			logger.Error("evaluation failed", "error", err)
			return exitError
		}
		if r.IsMissing {
			logger.Warn("missing macro values",
				"at", loc.String(),
				"tokens", strings.Join(r.MissingTokens, ", "))
			status = exitMissing
			continue
		}
		fmt.Fprintln(out, r.Value)
	}
	return status
}

// setup builds the evaluator and the lookup from the arguments
func setup(a cliArgs, logger *slog.Logger) (
	*macros.Evaluator, macros.Lookup, error,
) {
	opts := []macros.OptFunc{macros.Prefix(a.prefix)}
	if a.locale != "" {
		opts = append(opts, macros.Locale(a.locale))
	}
	ev, err := macros.New(opts...)
	if err != nil {
		return nil, nil, err
	}

	var cat macros.Catalog
	if a.catalog != "" {
		cat, err = loadCatalog(a)
		if err != nil {
			return nil, nil, err
		}
		logger.Debug("catalog loaded",
			"name", a.catalog, "macros", len(cat))
	}

	if a.preview {
		if cat == nil {
			return nil, nil, errors.New("-preview needs a -catalog")
		}
		return ev, macros.ExampleLookup(cat), nil
	}

	var entries []macros.Entry
	if a.values != "" {
		data, err := os.ReadFile(a.values)
		if err != nil {
			return nil, nil, err
		}
		entries, err = macros.ParseValues(data)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", a.values, err)
		}
		logger.Debug("values loaded",
			"file", a.values, "entries", len(entries))
	}

	lk := macros.NewLookup(format.Apply(cat, entries)...)
	if a.requireAll {
		lk = lk.MarkUnsupplied(cat)
	}
	return ev, lk, nil
}

// loadCatalog finds and reads the catalog named in the arguments
func loadCatalog(a cliArgs) (macros.Catalog, error) {
	var lOpts []macros.LoaderOptFunc
	if len(a.catalogDirs) > 0 {
		lOpts = append(lOpts,
			macros.Dirs(a.catalogDirs...),
			macros.Suffix(a.suffix))
	}
	l, err := macros.NewLoader(lOpts...)
	if err != nil {
		return nil, err
	}
	return l.Load(a.catalog)
}

// readLines returns the lines read from r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}
