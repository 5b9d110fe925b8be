package macros_test

import (
	"fmt"

	"github.com/nickwells/location.mod/location"
	"github.com/nickwells/offermacros.mod/macros"
)

// Example_withDirs demonstrates how the macros package might be used with
// catalog directories and the example values from the catalog
func Example_withDirs() {
	l, err := macros.NewLoader(
		macros.Dirs("testdata/catalogs1", "testdata/catalogs2"),
		macros.Suffix(".yaml"))
	if err != nil {
		fmt.Printf("Unexpected error creating a new catalog loader")
		return
	}
	cat, err := l.Load("offer")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	m, err := macros.New()
	if err != nil {
		fmt.Printf("Unexpected error creating a new evaluator")
		return
	}

	strs := []string{
		"A base salary of @baseSalary",
		"@rsuShares units",
		"@unknown stays as it is",
	}
	loc := location.New("strSlice")
	for _, str := range strs {
		loc.Incr()
		r, err := m.Preview(str, cat, loc)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(r.Value)
	}

	_, err = l.Load("XXX")
	fmt.Println("Error:", err)
	// Output:
	// A base salary of $100,000
	// 1000 units
	// @unknown stays as it is
	// Error: Catalog 'XXX' was not found in any of the catalog directories: testdata/catalogs1, testdata/catalogs2
}

// Example_withoutDirs demonstrates how the macros package might be used
// with values given directly
func Example_withoutDirs() {
	m, err := macros.New()
	if err != nil {
		fmt.Printf("Unexpected error creating a new evaluator")
		return
	}
	entries := []macros.Entry{
		{Key: "baseSalary", Value: macros.NumberValue(100000)},
		{Key: "title", Value: macros.StringValue("Engineer")},
		{
			Key:   "bonus",
			Value: macros.NumberValue(10),
			Formatter: func(v macros.Value, _ string) (string, error) {
				return v.String() + "%", nil
			},
		},
		macros.Unavailable("relocation"),
	}

	strs := []string{
		"Your base salary will be @baseSalary!",
		"As @title you get a bonus of @bonus",
		"Whoops - no such macro @XXX",
		"Relocation: @relocation",
	}
	loc := location.New("strSlice")
	for _, str := range strs {
		loc.Incr()
		r, err := m.Substitute(str, loc, entries...)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		if r.IsMissing {
			fmt.Println("Missing:", r.MissingTokens)
			continue
		}
		fmt.Println(r.Value)
	}
	// Output:
	// Your base salary will be 100000!
	// As Engineer you get a bonus of 10%
	// Whoops - no such macro @XXX
	// Missing: [@relocation]
}

// ExampleEvaluate demonstrates the package-level evaluation function with
// a non-default prefix
func ExampleEvaluate() {
	r, err := macros.Evaluate("#rsuShares units",
		[]macros.Entry{{Key: "rsuShares", Value: macros.NumberValue(1000)}},
		"#")
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(r.Value)
	// Output:
	// 1000 units
}
