package macros

import "strings"

// Result holds the outcome of an evaluation. If IsMissing is false then
// Value holds the evaluated text. Otherwise Value is empty and
// MissingTokens lists the tokens for which there was no data, each given
// once, in the order they first appear.
type Result struct {
	IsMissing     bool
	Value         string
	MissingTokens []string
}

// MissingError reports the tokens for which there was no data
type MissingError struct {
	Tokens []string
}

// Error returns the error message
func (err *MissingError) Error() string {
	if len(err.Tokens) == 1 {
		return "no value is available for the macro " + err.Tokens[0]
	}
	return "no values are available for the macros " +
		strings.Join(err.Tokens, ", ")
}

// Err returns a *MissingError if the result is missing any values and nil
// otherwise
func (r Result) Err() error {
	if !r.IsMissing {
		return nil
	}
	return &MissingError{Tokens: r.MissingTokens}
}
