// Package preprocess turns a parsed instance.Instance into the cost
// matrix, travel-time matrix, and arc-feasibility filter the ESPPTWC
// model is built from (spec.md §6, component X).
package preprocess

import "errors"

// ErrNilInstance indicates Build was called with a nil *instance.Instance.
var ErrNilInstance = errors.New("preprocess: nil instance")
