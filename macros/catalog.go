package macros

import (
	"errors"
	"fmt"
	"regexp"

	"gopkg.in/yaml.v3"
)

// ValueKind describes the kind of value a macro holds. It is used to choose
// how the value should be formatted.
type ValueKind string

// These are the known kinds of macro value. An empty ValueKind is treated
// as KindString.
const (
	KindCurrency   ValueKind = "currency"
	KindPercentage ValueKind = "percentage"
	KindNumber     ValueKind = "number"
	KindString     ValueKind = "string"
	KindURL        ValueKind = "url"
)

// IsValid reports whether the kind is one of the known kinds (or empty)
func (k ValueKind) IsValid() bool {
	switch k {
	case "", KindCurrency, KindPercentage, KindNumber, KindString, KindURL:
		return true
	}
	return false
}

// IsNumeric reports whether values of this kind must be numbers
func (k ValueKind) IsNumeric() bool {
	return k == KindCurrency || k == KindPercentage || k == KindNumber
}

// CurrencyRef holds the keys of the fields which hold the currency code for
// a currency macro. In a catalog file it can be given either as a single
// key or as a list of keys.
type CurrencyRef []string

// UnmarshalYAML accepts either a scalar or a sequence of scalars
func (cr *CurrencyRef) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		if n.Value == "" {
			*cr = nil
			return nil
		}
		*cr = CurrencyRef{n.Value}
		return nil
	case yaml.SequenceNode:
		var keys []string
		if err := n.Decode(&keys); err != nil {
			return err
		}
		*cr = keys
		return nil
	}
	return fmt.Errorf("line %d: the currency must be a key or a list of keys",
		n.Line)
}

// Definition describes a field that can be referred to by a macro token.
type Definition struct {
	Key         string      `yaml:"key"`
	DisplayName string      `yaml:"display_name"`
	Description string      `yaml:"description"`
	Kind        ValueKind   `yaml:"data_type"`
	Example     string      `yaml:"example"`
	CurrencyRef CurrencyRef `yaml:"currency,omitempty"`
}

// Catalog is the ordered collection of the macros available to the user
type Catalog []Definition

var keyRE = regexp.MustCompile(`^` + keyChars + `$`)

// Check returns a non-nil error if any of the definitions has a badly
// formed key or an unknown kind or if any key is used more than once. All
// the problems found are reported.
func (c Catalog) Check() error {
	var errs []error
	seen := make(map[string]int, len(c))
	for i, d := range c {
		if !keyRE.MatchString(d.Key) {
			errs = append(errs,
				fmt.Errorf("macro %d: bad key %q: it must match %s",
					i+1, d.Key, keyChars))
		}
		if !d.Kind.IsValid() {
			errs = append(errs,
				fmt.Errorf("macro %d (%s): unknown data type %q",
					i+1, d.Key, d.Kind))
		}
		if prev, ok := seen[d.Key]; ok {
			errs = append(errs,
				fmt.Errorf("macro %d: the key %q was already used by macro %d",
					i+1, d.Key, prev))
			continue
		}
		seen[d.Key] = i + 1
	}
	return errors.Join(errs...)
}

// Find returns the definition with the given key and true, or a zero
// Definition and false if there is no such definition
func (c Catalog) Find(key string) (Definition, bool) {
	for _, d := range c {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Keys returns the keys of the catalog in order
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, d := range c {
		keys = append(keys, d.Key)
	}
	return keys
}

// DisplayName returns the display name of the macro with the given key. If
// there is no such macro, or it has no display name, the key is returned.
func (c Catalog) DisplayName(key string) string {
	if d, ok := c.Find(key); ok && d.DisplayName != "" {
		return d.DisplayName
	}
	return key
}
