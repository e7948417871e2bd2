package instance

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/eugenenazirov/slab-designer/internal/slab"
)

const sampleInstance = `3 3 5 9
3
4
2 1
3 1
4 2
1 3
`

func TestParse(t *testing.T) {
	t.Parallel()

	inst, err := Parse(strings.NewReader(sampleInstance))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if want := []int{3, 5, 9}; !slices.Equal(inst.SlabSizes, want) {
		t.Fatalf("expected slab sizes %v, got %v", want, inst.SlabSizes)
	}
	if inst.NbColors != 3 {
		t.Fatalf("expected 3 colors, got %d", inst.NbColors)
	}
	want := []slab.Order{
		{Quantity: 2, Color: 1},
		{Quantity: 3, Color: 1},
		{Quantity: 4, Color: 2},
		{Quantity: 1, Color: 3},
	}
	if !slices.Equal(inst.Orders, want) {
		t.Fatalf("expected orders %v, got %v", want, inst.Orders)
	}
	if inst.MaxSize() != 9 {
		t.Fatalf("expected max size 9, got %d", inst.MaxSize())
	}
	if inst.SumQuantities() != 10 {
		t.Fatalf("expected quantity sum 10, got %d", inst.SumQuantities())
	}
}

func TestParseSingleLineFormat(t *testing.T) {
	t.Parallel()

	inst, err := Parse(strings.NewReader("2 10 20 1 1 5 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.NbOrders() != 1 {
		t.Fatalf("expected 1 order, got %d", inst.NbOrders())
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "TruncatedSizes", input: "3 3 5"},
		{name: "TruncatedOrders", input: "1 10 1 2 4 1"},
		{name: "NonIntegerToken", input: "1 10 1 1 x 1"},
		{name: "ZeroSizeCount", input: "0 1 1"},
		{name: "NonPositiveSize", input: "2 0 10 1 1 4 1"},
		{name: "NonPositiveColorCount", input: "1 10 0 1 4 1"},
		{name: "NonPositiveOrderCount", input: "1 10 1 0"},
		{name: "NonPositiveQuantity", input: "1 10 1 1 -4 1"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tc.input)); !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
		})
	}
}

func TestParseKeepsUnsortedSizesForBuilderToReject(t *testing.T) {
	t.Parallel()

	inst, err := Parse(strings.NewReader("2 50 30 1 1 10 1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := slab.BuildWasteTable(inst.SlabSizes, inst.SumQuantities()); !errors.Is(err, slab.ErrUnsortedSlabSizes) {
		t.Fatalf("expected ErrUnsortedSlabSizes, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "instance.txt")
	if err := os.WriteFile(path, []byte(sampleInstance), 0o600); err != nil {
		t.Fatalf("failed to write instance file: %v", err)
	}

	inst, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inst.NbOrders() != 4 {
		t.Fatalf("expected 4 orders, got %d", inst.NbOrders())
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
