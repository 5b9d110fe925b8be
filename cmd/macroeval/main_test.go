package main

import (
	"bytes"
	"strings"
	"testing"
)

const (
	testCatalogDir  = "../../macros/testdata/catalogs2"
	testCatalogFile = testCatalogDir + "/offer.yaml"
	testValuesFile  = "../../macros/testdata/values.yaml"
)

func TestRun(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		in        string
		expStatus int
		expOut    string
		expErrOut string
	}{
		{
			name: "preview",
			args: []string{
				"-catalog", "offer", "-catalog-dir", testCatalogDir,
				"-preview", "@rsuShares units", "@baseSalary!",
			},
			expOut: "1000 units\n$100,000!\n",
		},
		{
			name: "values",
			args: []string{
				"-catalog", testCatalogFile, "-values", testValuesFile,
				"@rsuShares units for the @title (@nonesuch)",
			},
			expOut: "1,500.5 units for the Senior Engineer (@nonesuch)\n",
		},
		{
			name: "values, custom prefix, stdin",
			args: []string{
				"-catalog", testCatalogFile, "-values", testValuesFile,
				"-prefix", "#",
			},
			in:     "a #title\nb @title\n",
			expOut: "a Senior Engineer\nb @title\n",
		},
		{
			name: "missing",
			args: []string{
				"-catalog", testCatalogFile, "-values", testValuesFile,
				"Sign-on: @sign-on", "@rsuShares",
			},
			expStatus: exitMissing,
			expOut:    "1,500.5\n",
			expErrOut: "@sign-on",
		},
		{
			name: "require all",
			args: []string{
				"-catalog", testCatalogFile, "-values", testValuesFile,
				"-require-all", "@totalStockGrantValue",
			},
			expStatus: exitMissing,
			expErrOut: "@totalStockGrantValue",
		},
		{
			name: "without require all",
			args: []string{
				"-catalog", testCatalogFile, "-values", testValuesFile,
				"@totalStockGrantValue",
			},
			expOut: "@totalStockGrantValue\n",
		},
		{
			name:      "preview needs a catalog",
			args:      []string{"-preview", "@x"},
			expStatus: exitError,
			expErrOut: "-preview needs a -catalog",
		},
		{
			name: "catalog not found",
			args: []string{
				"-catalog", "nonesuch", "-catalog-dir", testCatalogDir, "@x",
			},
			expStatus: exitError,
			expErrOut: "Catalog 'nonesuch' was not found",
		},
		{
			name:      "bad flag",
			args:      []string{"-nonesuch"},
			expStatus: exitError,
		},
		{
			name:      "bad locale",
			args:      []string{"-locale", "not a locale!", "@x"},
			expStatus: exitError,
			expErrOut: "bad locale",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			status := run(tc.args, strings.NewReader(tc.in), &out, &errOut)
			if status != tc.expStatus {
				t.Errorf("expected exit status %d, got %d (stderr: %s)",
					tc.expStatus, status, errOut.String())
			}
			if out.String() != tc.expOut {
				t.Errorf("expected output:\n%q\ngot:\n%q",
					tc.expOut, out.String())
			}
			if !strings.Contains(errOut.String(), tc.expErrOut) {
				t.Errorf("expected stderr to contain %q, got:\n%s",
					tc.expErrOut, errOut.String())
			}
		})
	}
}

func TestRunCurrency(t *testing.T) {
	var out, errOut bytes.Buffer
	status := run([]string{
		"-catalog", testCatalogFile, "-values", testValuesFile,
		"@baseSalary",
	}, strings.NewReader(""), &out, &errOut)
	if status != exitOK {
		t.Fatalf("unexpected exit status %d (stderr: %s)",
			status, errOut.String())
	}
	got := strings.TrimSuffix(out.String(), "\n")
	if !strings.HasPrefix(got, "€") || !strings.HasSuffix(got, "120,000") {
		t.Errorf("expected a euro amount of 120,000, got %q", got)
	}
}
