package slab

// Order is a unit of demand: a weight to place into exactly one slab and a
// color category constraining which orders may share a slab.
type Order struct {
	Quantity int
	Color    int
}

// Instance describes one steel mill slab design problem: the producible
// slab sizes in ascending order and the orders to assign. Instances are
// read once at load time and never mutated.
type Instance struct {
	SlabSizes []int
	NbColors  int
	Orders    []Order
}

// NbOrders returns the number of orders in the instance. Orders are
// identified by their index 0..NbOrders-1.
func (in *Instance) NbOrders() int {
	return len(in.Orders)
}

// MaxSize returns the largest producible slab size, or 0 when the instance
// has no sizes.
func (in *Instance) MaxSize() int {
	if len(in.SlabSizes) == 0 {
		return 0
	}
	return in.SlabSizes[len(in.SlabSizes)-1]
}

// SumQuantities returns the total weight over all orders, the natural upper
// bound for waste table construction.
func (in *Instance) SumQuantities() int {
	sum := 0
	for _, order := range in.Orders {
		sum += order.Quantity
	}
	return sum
}

// Slab is one proposed slab: an unordered collection of order indices.
type Slab []int

// Candidate is a full proposed partition of orders into slabs. Empty slabs
// are permitted and contribute nothing to the objective. Candidates are
// produced and owned by an external search process; the evaluator never
// retains them between calls.
type Candidate []Slab

// WasteTable maps a slab content value to the minimal extra steel produced
// when a slab is filled to exactly that content. Entry c is zero when c is
// 0 or matches a producible size, and the distance to the next larger size
// otherwise. Entries beyond the largest size are not valid fill levels.
// Built once per instance and shared read-only across evaluations.
type WasteTable []int

// Score summarises one evaluation. Waste and Penalty are derived values
// that callers can use when they need the breakdown in addition to the
// raw cost; Cost is always Waste + Penalty and lower is better.
type Score struct {
	Waste    float64
	Penalty  float64
	Cost     float64
	Feasible bool
}

// Evaluator describes the behaviour required from a partition scorer.
type Evaluator interface {
	Evaluate(candidate Candidate) (Score, error)
}
