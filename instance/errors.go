// Package instance parses the Solomon benchmark text format into an
// in-memory Instance, validating it before any solver object is built
// from it (spec.md §7's InstanceError kind).
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers branch with errors.Is(err, ErrX), never string comparison.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     context (line numbers, ids, values) is attached with fmt.Errorf("%w: ...")
//     at the call site.
package instance

import "errors"

// ErrTooFewFields indicates a CUSTOMER line had fewer than the seven
// whitespace-separated fields the Solomon format requires, or the VEHICLE
// data line had fewer than two (K and Q).
var ErrTooFewFields = errors.New("instance: too few fields on customer line")

// ErrMalformedField indicates a field that should parse as an integer or
// float did not.
var ErrMalformedField = errors.New("instance: malformed numeric field")

// ErrMissingVehicleSection indicates the text had no VEHICLE header, so K
// and Q could not be read.
var ErrMissingVehicleSection = errors.New("instance: missing VEHICLE section")

// ErrMissingCustomerSection indicates no customer rows were read: the text
// had no CUSTOMER header, or the section held no data rows.
var ErrMissingCustomerSection = errors.New("instance: missing CUSTOMER section")

// ErrNoDepot indicates customer id 0, the depot, was never present.
var ErrNoDepot = errors.New("instance: depot (id 0) not found")

// ErrDuplicateID indicates the same customer id appeared twice.
var ErrDuplicateID = errors.New("instance: duplicate customer id")

// ErrNegativeDemand indicates a customer's demand field was negative.
var ErrNegativeDemand = errors.New("instance: negative demand")

// ErrReversedWindow indicates a customer's ready time exceeded its due time.
var ErrReversedWindow = errors.New("instance: ready time after due time")

// ErrNegativeServiceTime indicates a customer's service time was negative.
var ErrNegativeServiceTime = errors.New("instance: negative service time")

// ErrNonPositiveCapacity indicates the VEHICLE section's capacity Q was
// not a positive number.
var ErrNonPositiveCapacity = errors.New("instance: non-positive vehicle capacity")

// ErrNonPositiveVehicleCount indicates the VEHICLE section's K was not a
// positive integer.
var ErrNonPositiveVehicleCount = errors.New("instance: non-positive vehicle count")

// ErrWindowNotBounded indicates a customer's time window was not contained
// within the depot's own window — no vehicle leaving no earlier than the
// depot opens and returning no later than the depot closes could ever
// serve that customer.
var ErrWindowNotBounded = errors.New("instance: customer window exceeds depot window")

// ErrNoCustomers indicates the CUSTOMER section had only the depot row
// and no actual customers.
var ErrNoCustomers = errors.New("instance: no customers present")

// ErrMissingID indicates a gap in the 0..N customer id sequence: some id
// in that range was never present as a CUSTOMER row.
var ErrMissingID = errors.New("instance: missing customer id")
