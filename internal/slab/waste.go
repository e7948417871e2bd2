package slab

// BuildWasteTable precomputes the waste profile for the given producible
// sizes: a table of length upperBound+1 whose entry c holds the minimal
// extra steel produced when a slab is filled to content exactly c.
//
// The table is built in a single ascending walk, so construction is linear
// in upperBound. Evaluations reuse it for the whole search run; computing
// the distance to the next larger size per call would dominate runtime.
func BuildWasteTable(slabSizes []int, upperBound int) (WasteTable, error) {
	if len(slabSizes) == 0 {
		return nil, ErrInvalidSlabSizes
	}
	if upperBound < 0 {
		return nil, ErrInvalidUpperBound
	}

	table := make(WasteTable, upperBound+1)
	prev := 0
	for _, size := range slabSizes {
		if size <= 0 {
			return nil, ErrInvalidSlabSizes
		}
		if size < prev {
			return nil, ErrUnsortedSlabSizes
		}
		for content := prev + 1; content < size && content <= upperBound; content++ {
			table[content] = size - content
		}
		prev = size
	}

	return table, nil
}
