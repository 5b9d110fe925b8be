/*

The macros package can be used to replace macro tokens in free text, such as
an offer-letter caption, with the values of the fields they name. A token is
a prefix (by default '@') followed by a key made of letters, digits,
underscores and hyphens, so "@baseSalary" names the field "baseSalary".

You describe the fields that can be used in a Catalog of Definitions and you
supply the values for a particular evaluation as a list of Entries. Each
Entry may carry a Formatter which turns its value into the text that
replaces the token. You construct an Evaluator with New and then call
Evaluate (or Substitute or Preview) on each string that you wish to expand.

A token whose key has no entry is left in the text unchanged. An entry that
is marked Unavailable means that the field is known but there is no data
for it; any such token causes the whole evaluation to be reported as
missing, with the offending tokens listed, and no substituted text is
returned. A caller which wants every catalog field to be either resolved or
reported can use Lookup.MarkUnsupplied.

Alternatively the example values given in the Catalog can be used in place
of real values to give a preview of the text.

Catalogs can be read from YAML files, optionally searched for in a set of
catalog directories, and values can be read from a YAML mapping.

*/
package macros
