package slab

import "math/rand"

// RandomCandidate draws a uniformly random partition: each order is
// assigned to one of NbOrders slab slots chosen from rng, then grouped.
// Empty slabs are kept; they are legal and contribute nothing to the
// objective. The PRNG is passed explicitly so generation stays
// deterministic and reproducible under test.
func RandomCandidate(inst *Instance, rng *rand.Rand) Candidate {
	nbOrders := inst.NbOrders()
	if nbOrders == 0 {
		return Candidate{}
	}

	slabs := make(Candidate, nbOrders)
	for order := 0; order < nbOrders; order++ {
		id := rng.Intn(nbOrders)
		slabs[id] = append(slabs[id], order)
	}
	return slabs
}
