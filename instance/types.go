package instance

// Customer is one row of the Solomon CUSTOMER section: a physical location
// with a demand, a service duration, and a time window bounding when
// service may begin. Id 0 is always the depot and carries zero demand and
// zero service time by convention.
type Customer struct {
	ID          int
	X, Y        float64
	Demand      int64
	ReadyTime   float64
	DueTime     float64
	ServiceTime float64
}

// Instance is the parsed, validated content of a Solomon benchmark file:
// vehicle count K, capacity Q, and one Customer per id 0..N (component I
// of spec.md §6, "the parser yields N, K, Q, coordinate arrays, demands,
// time windows, and service times").
type Instance struct {
	// N is the number of customers, excluding the depot.
	N int

	// K is the number of vehicles available, from the VEHICLE section.
	K int

	// Q is vehicle capacity, from the VEHICLE section.
	Q int64

	// Customers holds every row, indexed by id: Customers[0] is the depot,
	// Customers[1..N] are the customers in ascending id order.
	Customers []Customer
}

// Depot returns the depot row (id 0).
func (in *Instance) Depot() Customer {
	return in.Customers[0]
}

// Customer returns the row for the given id, or false if id is out of range.
func (in *Instance) Customer(id int) (Customer, bool) {
	if id < 0 || id >= len(in.Customers) {
		return Customer{}, false
	}

	return in.Customers[id], true
}
