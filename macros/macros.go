package macros

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/nickwells/location.mod/location"
	"golang.org/x/text/language"
)

// DfltPrefix is the default string introducing a macro token. It is used by
// Evaluate to find macro keys in the string to be evaluated.
const DfltPrefix = "@"

// keyChars is the pattern matching a macro key
const keyChars = `[a-zA-Z0-9_-]+`

// dfltLocName is the name given to the location of text evaluated by the
// package-level functions
const dfltLocName = "text"

// Evaluator records the information needed to evaluate macros
//
// You should create a new Evaluator with New, giving the prefix and locale
// if the defaults are not wanted. You can then use Evaluate, Substitute or
// Preview to replace the macro tokens in a string. An Evaluator is not
// changed by evaluating strings and so can be shared between goroutines.
type Evaluator struct {
	prefix  string
	locale  string
	tokenRE *regexp.Regexp
}

// OptFunc is the type of the options that can be passed to New
type OptFunc func(e *Evaluator) error

// New creates a new Evaluator object.
func New(opts ...OptFunc) (*Evaluator, error) {
	e := &Evaluator{
		prefix: DfltPrefix,
	}

	for _, o := range opts {
		if err := o(e); err != nil {
			return nil, err
		}
	}

	e.tokenRE = regexp.MustCompile(
		regexp.QuoteMeta(e.prefix) + "(" + keyChars + ")")

	return e, nil
}

// Prefix returns an OptFunc that will change the string that introduces a
// macro token. The default value is given by DfltPrefix. The prefix is
// matched literally and must not be empty.
func Prefix(prefix string) OptFunc {
	return func(e *Evaluator) error {
		if prefix == "" {
			return fmt.Errorf("the macro prefix must not be empty")
		}
		e.prefix = prefix

		return nil
	}
}

// Locale returns an OptFunc that sets the locale passed to each Formatter.
// The locale must be a valid BCP-47 language tag; it is passed to the
// formatters exactly as given.
func Locale(tag string) OptFunc {
	return func(e *Evaluator) error {
		if _, err := language.Parse(tag); err != nil {
			return fmt.Errorf("bad locale %q: %w", tag, err)
		}
		e.locale = tag

		return nil
	}
}

// Prefix returns the string introducing a macro token
func (e *Evaluator) Prefix() string { return e.prefix }

// Locale returns the locale passed to the formatters
func (e *Evaluator) Locale() string { return e.locale }

// Token records a macro token found in a string. Start and End give the
// byte offsets of the whole token, including the prefix.
type Token struct {
	Key   string
	Start int
	End   int
}

// Tokens returns the macro tokens in the string in the order they appear.
// The key of each token is the longest run of key characters following the
// prefix.
func (e *Evaluator) Tokens(raw string) []Token {
	var toks []Token
	for _, m := range e.tokenRE.FindAllStringSubmatchIndex(raw, -1) {
		toks = append(toks, Token{Key: raw[m[2]:m[3]], Start: m[0], End: m[1]})
	}
	return toks
}

// Evaluate searches the string for macro tokens and replaces them with the
// text given by the corresponding entry in the lookup.
//
// A token whose key has no entry, or whose entry has an undefined value, is
// left unchanged. If any token has an entry marked as Unavailable the
// result reports the missing tokens and has an empty Value.
//
// If a Formatter returns an error then the evaluation stops and the error
// is returned, naming the token and its location.
func (e *Evaluator) Evaluate(raw string, lk Lookup, loc *location.L) (
	Result, error,
) {
	if raw == "" {
		return Result{}, nil
	}
	if loc == nil {
		loc = location.New(dfltLocName)
	}

	var missing []string
	seenMissing := map[string]bool{}

	var b strings.Builder
	b.Grow(len(raw))
	last := 0
	for _, tok := range e.Tokens(raw) {
		entry, ok := lk[tok.Key]
		if !ok {
			continue
		}
		if entry.Unavailable {
			if !seenMissing[tok.Key] {
				seenMissing[tok.Key] = true
				missing = append(missing, e.prefix+tok.Key)
			}
			continue
		}
		if !entry.Value.IsDefined() {
			continue
		}

		val, err := entry.text(e.locale)
		if err != nil {
			return Result{},
				fmt.Errorf("Macro '%s%s' at %s could not be formatted: %w",
					e.prefix, tok.Key, loc, err)
		}
		b.WriteString(raw[last:tok.Start])
		b.WriteString(val)
		last = tok.End
	}

	if len(missing) > 0 {
		return Result{IsMissing: true, MissingTokens: missing}, nil
	}

	b.WriteString(raw[last:])
	return Result{Value: b.String()}, nil
}

// Substitute evaluates the string using a Lookup built from the entries
func (e *Evaluator) Substitute(raw string, loc *location.L, entries ...Entry) (
	Result, error,
) {
	return e.Evaluate(raw, NewLookup(entries...), loc)
}

// Preview evaluates the string using the example values from the catalog
func (e *Evaluator) Preview(raw string, cat Catalog, loc *location.L) (
	Result, error,
) {
	return e.Evaluate(raw, ExampleLookup(cat), loc)
}

// newWithPrefix returns an Evaluator using the prefix or, if it is empty,
// the default prefix
func newWithPrefix(prefix string) (*Evaluator, error) {
	if prefix == "" {
		prefix = DfltPrefix
	}
	return New(Prefix(prefix))
}

// Evaluate replaces the macro tokens in raw with the values given by the
// substitutions. An empty prefix means that DfltPrefix is used.
func Evaluate(raw string, subs []Entry, prefix string) (Result, error) {
	e, err := newWithPrefix(prefix)
	if err != nil {
		return Result{}, err
	}
	return e.Substitute(raw, location.New(dfltLocName), subs...)
}

// EvaluateExamples replaces the macro tokens in raw with the example values
// from the catalog. An empty prefix means that DfltPrefix is used.
func EvaluateExamples(raw string, cat Catalog, prefix string) (Result, error) {
	e, err := newWithPrefix(prefix)
	if err != nil {
		return Result{}, err
	}
	return e.Preview(raw, cat, location.New(dfltLocName))
}
