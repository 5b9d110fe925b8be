package main

import (
	"flag"
	"io"
	"strings"

	"github.com/nickwells/offermacros.mod/macros"
)

// dirList collects the values of a repeatable flag
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(s string) error {
	*d = append(*d, s)
	return nil
}

type cliArgs struct {
	catalog     string
	catalogDirs dirList
	suffix      string
	values      string
	prefix      string
	locale      string
	preview     bool
	requireAll  bool
	verbose     bool
	text        []string
}

func parseFlags(args []string, errOut io.Writer) (cliArgs, error) {
	var a cliArgs

	fs := flag.NewFlagSet("macroeval", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.StringVar(&a.catalog, "catalog", "", "Catalog name, or path if no -catalog-dir is given")
	fs.Var(&a.catalogDirs, "catalog-dir", "Directory to search for the catalog (repeatable)")
	fs.StringVar(&a.suffix, "catalog-suffix", ".yaml", "Suffix to try when searching for the catalog")
	fs.StringVar(&a.values, "values", "", "YAML file of macro values")
	fs.StringVar(&a.prefix, "prefix", macros.DfltPrefix, "String introducing a macro token")
	fs.StringVar(&a.locale, "locale", "", "Locale for formatting values (e.g., en-GB)")
	fs.BoolVar(&a.preview, "preview", false, "Use the catalog example values")
	fs.BoolVar(&a.requireAll, "require-all", false, "Report catalog macros with no value as missing")
	fs.BoolVar(&a.verbose, "verbose", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return a, err
	}
	a.text = fs.Args()
	return a, nil
}
