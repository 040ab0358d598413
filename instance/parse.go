package instance

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// method names used as error-context prefixes, mirroring the teacher
// corpus's canonical-constructor-name convention for wrapped errors.
const (
	methodParse = "Parse"
)

// Parse reads Solomon benchmark text from r and returns a validated
// Instance, or an error wrapping one of this package's sentinels.
//
// The expected format (spec.md §6):
//
//	<title line, ignored>
//	VEHICLE
//	NUMBER     CAPACITY
//	<K>        <Q>
//	CUSTOMER
//	CUST NO.  XCOORD  YCOORD  DEMAND  READY TIME  DUE DATE  SERVICE TIME
//	<id> <x> <y> <demand> <ready> <due> <service>
//	...
//
// Header label lines (VEHICLE, CUSTOMER, and the column-name rows) are
// recognized by leading non-numeric tokens and skipped; only lines whose
// first field parses as an integer are treated as data rows. Blank lines
// are ignored everywhere.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)

	var (
		section   string
		haveK     bool
		k         int
		q         int64
		customers []Customer
		seen      = make(map[int]bool)
	)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "VEHICLE"):
			section = "vehicle"
			continue
		case strings.HasPrefix(upper, "CUSTOMER"):
			section = "customer"
			continue
		}

		fields := strings.Fields(line)

		switch section {
		case "vehicle":
			if !haveK {
				n, err := strconv.Atoi(fields[0])
				if err != nil {
					// Column-header row ("NUMBER CAPACITY"); not data yet.
					continue
				}
				if len(fields) < 2 {
					return nil, fmt.Errorf("%s: %w", methodParse, ErrTooFewFields)
				}
				capacity, err := strconv.ParseInt(fields[1], 10, 64)
				if err != nil {
					return nil, fmt.Errorf("%s: %w: capacity %q", methodParse, ErrMalformedField, fields[1])
				}
				k, q, haveK = n, capacity, true
			}
		case "customer":
			if _, err := strconv.Atoi(fields[0]); err != nil {
				// Column-header row; not data yet.
				continue
			}
			c, err := parseCustomerLine(fields)
			if err != nil {
				return nil, err
			}
			if seen[c.ID] {
				return nil, fmt.Errorf("%s: %w: id %d", methodParse, ErrDuplicateID, c.ID)
			}
			seen[c.ID] = true
			customers = append(customers, c)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodParse, err)
	}

	if !haveK {
		return nil, fmt.Errorf("%s: %w", methodParse, ErrMissingVehicleSection)
	}
	if len(customers) == 0 {
		return nil, fmt.Errorf("%s: %w", methodParse, ErrMissingCustomerSection)
	}

	inst, err := assemble(k, q, customers)
	if err != nil {
		return nil, err
	}
	if err := validate(inst); err != nil {
		return nil, err
	}

	return inst, nil
}

// parseCustomerLine converts one whitespace-separated CUSTOMER row into a
// Customer, per spec.md §6: "id x y demand ready_time due_time service_time".
func parseCustomerLine(fields []string) (Customer, error) {
	if len(fields) < 7 {
		return Customer{}, fmt.Errorf("%s: %w: got %d fields", methodParse, ErrTooFewFields, len(fields))
	}

	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: id %q", methodParse, ErrMalformedField, fields[0])
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: x %q", methodParse, ErrMalformedField, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: y %q", methodParse, ErrMalformedField, fields[2])
	}
	demand, err := strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: demand %q", methodParse, ErrMalformedField, fields[3])
	}
	ready, err := strconv.ParseFloat(fields[4], 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: ready time %q", methodParse, ErrMalformedField, fields[4])
	}
	due, err := strconv.ParseFloat(fields[5], 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: due time %q", methodParse, ErrMalformedField, fields[5])
	}
	service, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return Customer{}, fmt.Errorf("%s: %w: service time %q", methodParse, ErrMalformedField, fields[6])
	}

	return Customer{
		ID:          id,
		X:           x,
		Y:           y,
		Demand:      demand,
		ReadyTime:   ready,
		DueTime:     due,
		ServiceTime: service,
	}, nil
}

// assemble sorts customers by id, fills Instance.Customers so index i holds
// id i, and derives N from the maximum id seen.
func assemble(k int, q int64, customers []Customer) (*Instance, error) {
	var depot *Customer
	maxID := 0
	byID := make(map[int]Customer, len(customers))
	for _, c := range customers {
		cc := c
		byID[c.ID] = cc
		if c.ID == 0 {
			depot = &cc
		}
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	if depot == nil {
		return nil, fmt.Errorf("%s: %w", methodParse, ErrNoDepot)
	}
	if maxID == 0 {
		return nil, fmt.Errorf("%s: %w", methodParse, ErrNoCustomers)
	}

	ordered := make([]Customer, maxID+1)
	for id := 0; id <= maxID; id++ {
		c, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%s: %w: id %d", methodParse, ErrMissingID, id)
		}
		ordered[id] = c
	}

	return &Instance{N: maxID, K: k, Q: q, Customers: ordered}, nil
}

// Validate runs spec.md §7's InstanceError checks against an Instance built
// by means other than Parse (instancegen's synthetic generator, or a
// caller assembling one by hand), so the same invariants are enforced
// regardless of origin.
func Validate(in *Instance) error {
	return validate(in)
}

// validate enforces spec.md §7's InstanceError conditions, and SPEC_FULL.md
// §4.9's depot-window-bounds-every-customer-window extension, upfront and
// before any solver object is constructed from the result.
func validate(in *Instance) error {
	if in.K <= 0 {
		return fmt.Errorf("%s: %w: K=%d", methodParse, ErrNonPositiveVehicleCount, in.K)
	}
	if in.Q <= 0 {
		return fmt.Errorf("%s: %w: Q=%d", methodParse, ErrNonPositiveCapacity, in.Q)
	}

	depot := in.Depot()
	for _, c := range in.Customers {
		if c.Demand < 0 {
			return fmt.Errorf("%s: %w: customer %d demand=%d", methodParse, ErrNegativeDemand, c.ID, c.Demand)
		}
		if c.ServiceTime < 0 {
			return fmt.Errorf("%s: %w: customer %d", methodParse, ErrNegativeServiceTime, c.ID)
		}
		if c.ReadyTime > c.DueTime {
			return fmt.Errorf("%s: %w: customer %d [%g,%g]", methodParse, ErrReversedWindow, c.ID, c.ReadyTime, c.DueTime)
		}
		if c.ID == depot.ID {
			continue
		}
		if c.ReadyTime < depot.ReadyTime || c.DueTime > depot.DueTime {
			return fmt.Errorf("%s: %w: customer %d [%g,%g] outside depot [%g,%g]",
				methodParse, ErrWindowNotBounded, c.ID, c.ReadyTime, c.DueTime, depot.ReadyTime, depot.DueTime)
		}
	}

	return nil
}
