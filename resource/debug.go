package resource

import "fmt"

// ResourceDebugCheck samples r's monotonicity contract (spec.md §4.1) for
// one ordered pair of parent states: if parentLo is LessEqual parentHi,
// extending both along the same arc must preserve that order. It is an
// opt-in runtime check for development builds and property tests — the
// catalog itself never calls it during a real search, since sampling one
// pair per call is too slow to run on every label extension.
func ResourceDebugCheck(r Resource, a Arc, parentLo, parentHi Value) error {
	if !r.LessEqual(parentLo, parentHi) {
		return fmt.Errorf("%w: %s: parentLo is not LessEqual parentHi", ErrMisdeclared, r.Name())
	}

	childLo := r.Extend(a, parentLo)
	childHi := r.Extend(a, parentHi)
	if !r.LessEqual(childLo, childHi) {
		return fmt.Errorf("%w: %s: REF is not monotone on arc %d->%d", ErrMisdeclared, r.Name(), a.From, a.To)
	}

	return nil
}

// CatalogDebugCheck runs ResourceDebugCheck against every resource in cat
// for one ordered pair of parent state tuples, returning the first
// violation found.
func CatalogDebugCheck(cat *Catalog, a Arc, parentLo, parentHi []Value) error {
	for i := 0; i < cat.Len(); i++ {
		if err := ResourceDebugCheck(cat.At(i), a, parentLo[i], parentHi[i]); err != nil {
			return err
		}
	}

	return nil
}
