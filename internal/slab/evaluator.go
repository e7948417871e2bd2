package slab

import (
	"fmt"
)

const (
	// MaxColorsPerSlab is the fixed limit on distinct order colors per slab.
	MaxColorsPerSlab = 2
	// PenaltyUnit dwarfs any feasible waste magnitude, so a search always
	// prefers a feasibility improvement over a waste improvement.
	PenaltyUnit = 1_000_000
)

type tableEvaluator struct {
	inst  *Instance
	table WasteTable
}

// NewEvaluator creates an Evaluator scoring candidates against the given
// instance and its precomputed waste table. The evaluator holds no mutable
// state, so one instance is safe for concurrent use across candidates.
func NewEvaluator(inst *Instance, table WasteTable) Evaluator {
	return &tableEvaluator{inst: inst, table: table}
}

// Evaluate maps a candidate partition to a scalar cost: waste summed over
// nonempty slabs plus penalties for color, capacity, and coverage
// violations. Violations are scored rather than rejected, so a search can
// traverse infeasible candidates and improve out of them; only an order
// index outside the instance is a hard error.
//
// Two quirks are intentional (see DESIGN.md): the coverage
// penalty is a single flat PenaltyUnit no matter how many orders are
// missing or duplicated, and a slab whose content exceeds the largest size
// falls back to a waste of maxSize - content, which is negative and
// slightly offsets the overflow penalty.
func (e *tableEvaluator) Evaluate(candidate Candidate) (Score, error) {
	nbOrders := e.inst.NbOrders()
	maxSize := e.inst.MaxSize()

	seen := make([]int, nbOrders)
	waste := 0
	penalty := 0

	for _, s := range candidate {
		if len(s) == 0 {
			continue
		}

		colors := make(map[int]struct{}, MaxColorsPerSlab+1)
		content := 0
		for _, idx := range s {
			if idx < 0 || idx >= nbOrders {
				return Score{}, fmt.Errorf("%w: order %d not in [0, %d)", ErrInvalidCandidate, idx, nbOrders)
			}
			seen[idx]++
			order := e.inst.Orders[idx]
			colors[order.Color] = struct{}{}
			content += order.Quantity
		}

		if excess := len(colors) - MaxColorsPerSlab; excess > 0 {
			penalty += PenaltyUnit * excess
		}
		if content > maxSize {
			penalty += PenaltyUnit * (content - maxSize)
		}
		if content <= maxSize && content < len(e.table) {
			waste += e.table[content]
		} else {
			waste += maxSize - content
		}
	}

	for _, n := range seen {
		if n != 1 {
			penalty += PenaltyUnit
			break
		}
	}

	return Score{
		Waste:    float64(waste),
		Penalty:  float64(penalty),
		Cost:     float64(waste) + float64(penalty),
		Feasible: penalty == 0,
	}, nil
}
