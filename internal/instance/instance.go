// Package instance reads problem instances from their flat integer format:
// the number of producible slab sizes followed by the sizes in ascending
// order, the number of colors, the number of orders, and one
// quantity/color pair per order. Tokens may be separated by any whitespace.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/eugenenazirov/slab-designer/internal/slab"
)

var (
	// ErrMalformed is returned when the input is truncated, contains
	// non-integer tokens, or declares non-positive counts or quantities.
	ErrMalformed = errors.New("malformed instance")
)

// Parse reads a full instance from r. Slab size ordering is deliberately
// not checked here; an unsorted instance must fail waste table
// construction instead of being silently corrected.
func Parse(r io.Reader) (*slab.Instance, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func(field string) (int, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return 0, fmt.Errorf("read %s: %w", field, err)
			}
			return 0, fmt.Errorf("%w: missing %s", ErrMalformed, field)
		}
		value, err := strconv.Atoi(sc.Text())
		if err != nil {
			return 0, fmt.Errorf("%w: %s: invalid integer %q", ErrMalformed, field, sc.Text())
		}
		return value, nil
	}

	nbSizes, err := next("slab size count")
	if err != nil {
		return nil, err
	}
	if nbSizes <= 0 {
		return nil, fmt.Errorf("%w: slab size count must be positive, got %d", ErrMalformed, nbSizes)
	}

	sizes := make([]int, 0, nbSizes)
	for i := 0; i < nbSizes; i++ {
		size, err := next(fmt.Sprintf("slab size %d", i))
		if err != nil {
			return nil, err
		}
		if size <= 0 {
			return nil, fmt.Errorf("%w: slab size %d must be positive, got %d", ErrMalformed, i, size)
		}
		sizes = append(sizes, size)
	}

	nbColors, err := next("color count")
	if err != nil {
		return nil, err
	}
	if nbColors <= 0 {
		return nil, fmt.Errorf("%w: color count must be positive, got %d", ErrMalformed, nbColors)
	}

	nbOrders, err := next("order count")
	if err != nil {
		return nil, err
	}
	if nbOrders <= 0 {
		return nil, fmt.Errorf("%w: order count must be positive, got %d", ErrMalformed, nbOrders)
	}

	orders := make([]slab.Order, 0, nbOrders)
	for i := 0; i < nbOrders; i++ {
		quantity, err := next(fmt.Sprintf("order %d quantity", i))
		if err != nil {
			return nil, err
		}
		if quantity <= 0 {
			return nil, fmt.Errorf("%w: order %d quantity must be positive, got %d", ErrMalformed, i, quantity)
		}
		color, err := next(fmt.Sprintf("order %d color", i))
		if err != nil {
			return nil, err
		}
		orders = append(orders, slab.Order{Quantity: quantity, Color: color})
	}

	return &slab.Instance{
		SlabSizes: sizes,
		NbColors:  nbColors,
		Orders:    orders,
	}, nil
}

// Load reads and parses the instance file at path.
func Load(path string) (*slab.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open instance file: %w", err)
	}
	defer f.Close()

	inst, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return inst, nil
}
