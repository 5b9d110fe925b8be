package macros

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nickwells/check.mod/v2/check"
	"github.com/nickwells/filecheck.mod/filecheck"
	"gopkg.in/yaml.v3"
)

// Loader records the information needed to find and read catalog files
//
// You should create a new Loader with NewLoader. If you give it catalog
// directories then Load will search them for the named catalog, trying
// each of the suffixes in turn. Otherwise the name is taken as the path of
// the catalog file.
type Loader struct {
	cDirs    []string
	suffixes []string
}

// LoaderOptFunc is the type of the options that can be passed to NewLoader
type LoaderOptFunc func(l *Loader) error

// NewLoader creates a new Loader object.
func NewLoader(opts ...LoaderOptFunc) (*Loader, error) {
	l := &Loader{
		cDirs:    make([]string, 0),
		suffixes: []string{""},
	}

	for _, o := range opts {
		if err := o(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Dirs returns a LoaderOptFunc that will add the directory names to the,
// initially empty, set of directories to be searched. Each of the passed
// values must be a directory, an error will be returned if not and none of
// the passed values will be added.
func Dirs(dirs ...string) LoaderOptFunc {
	return func(l *Loader) error {
		if len(dirs) == 0 {
			return fmt.Errorf("at least one catalog directory must be passed")
		}

		es := filecheck.Provisos{
			Checks:    []check.FileInfo{check.FileInfoIsDir},
			Existence: filecheck.MustExist,
		}
		for _, dir := range dirs {
			err := es.StatusCheck(dir)
			if err != nil {
				return err
			}
		}

		l.cDirs = append(l.cDirs, dirs...)
		return nil
	}
}

// Suffix returns a LoaderOptFunc that will add a suffix to the list of
// strings to be tried as suffixes. Any suffix must be complete and include
// the separator (if any). For instance ".yaml". The suffixes are tried in
// the order they are added and there is always a first, empty suffix so
// that a catalog name will always match a file with the exact same name.
func Suffix(suffix string) LoaderOptFunc {
	return func(l *Loader) error {
		l.suffixes = append(l.suffixes, suffix)

		return nil
	}
}

var catalogFile = filecheck.Provisos{
	Checks:    []check.FileInfo{check.FileInfoIsRegular},
	Existence: filecheck.MustExist,
}

// Load reads the named catalog. If there are no catalog directories the
// name is used as the file name. Otherwise each directory is searched in
// turn for a regular file with the name and one of the suffixes and the
// first one found is read. An error is returned if no file is found or
// the file cannot be read or is not a valid catalog.
func (l *Loader) Load(name string) (Catalog, error) {
	if len(l.cDirs) == 0 {
		if err := catalogFile.StatusCheck(name); err != nil {
			return nil, err
		}
		return readCatalog(name)
	}

	for _, cd := range l.cDirs {
		for _, suffix := range l.suffixes {
			fName := filepath.Join(cd, name+suffix)
			if catalogFile.StatusCheck(fName) == nil {
				return readCatalog(fName)
			}
		}
	}

	errStr := fmt.Sprintf("Catalog '%s' was not found", name)
	if len(l.cDirs) == 1 {
		errStr += " in the catalog directory: " + l.cDirs[0]
	} else {
		errStr += " in any of the catalog directories: " +
			strings.Join(l.cDirs, ", ")
	}

	return nil, errors.New(errStr)
}

// readCatalog reads and parses the catalog file
func readCatalog(fName string) (Catalog, error) {
	data, err := os.ReadFile(fName)
	if err != nil {
		return nil, err
	}
	cat, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("bad catalog file %q: %w", fName, err)
	}
	return cat, nil
}

// ParseCatalog parses the YAML catalog and checks it. The catalog must be a
// sequence of macro definitions.
func ParseCatalog(data []byte) (Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := cat.Check(); err != nil {
		return nil, err
	}
	return cat, nil
}

// ParseValues parses a YAML mapping of macro keys to values and returns the
// corresponding entries in the order they are given. Integer and float
// values give number values, other scalars give string values and a null
// value gives an Unavailable entry.
func ParseValues(data []byte) ([]Entry, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse values: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("parse values: line %d: expected a mapping",
			m.Line)
	}

	entries := make([]Entry, 0, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		kn, vn := m.Content[i], m.Content[i+1]
		if vn.Kind != yaml.ScalarNode {
			return nil,
				fmt.Errorf("parse values: line %d: the value of %q"+
					" must be a single value", vn.Line, kn.Value)
		}

		switch vn.Tag {
		case "!!null":
			entries = append(entries, Unavailable(kn.Value))
		case "!!int", "!!float":
			var f float64
			if err := vn.Decode(&f); err != nil {
				return nil, fmt.Errorf("parse values: line %d: %w",
					vn.Line, err)
			}
			entries = append(entries,
				Entry{Key: kn.Value, Value: NumberValue(f)})
		default:
			entries = append(entries,
				Entry{Key: kn.Value, Value: StringValue(vn.Value)})
		}
	}
	return entries, nil
}
