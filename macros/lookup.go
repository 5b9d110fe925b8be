package macros

// Lookup maps a macro key to the entry giving its value. A new Lookup
// should be built for each evaluation.
type Lookup map[string]Entry

// NewLookup builds a Lookup from the entries. If a key appears more than
// once the last entry for that key is used.
func NewLookup(entries ...Entry) Lookup {
	lk := make(Lookup, len(entries))
	for _, e := range entries {
		lk[e.Key] = e
	}
	return lk
}

// ExampleLookup builds a Lookup using the example value of each macro in
// the catalog. The entries have no formatter.
func ExampleLookup(cat Catalog) Lookup {
	lk := make(Lookup, len(cat))
	for _, d := range cat {
		lk[d.Key] = Entry{Key: d.Key, Value: StringValue(d.Example)}
	}
	return lk
}

// MarkUnsupplied returns a copy of the Lookup in which every key in the
// catalog which has no entry is marked as Unavailable. Tokens for such keys
// will then be reported as missing rather than left in place.
func (lk Lookup) MarkUnsupplied(cat Catalog) Lookup {
	marked := make(Lookup, len(lk)+len(cat))
	for k, e := range lk {
		marked[k] = e
	}
	for _, d := range cat {
		if _, ok := marked[d.Key]; !ok {
			marked[d.Key] = Unavailable(d.Key)
		}
	}
	return marked
}
