package storage

import (
	"errors"
	"sync"

	"github.com/eugenenazirov/slab-designer/internal/slab"
)

var (
	// ErrNoInstance indicates that no problem instance has been loaded yet.
	ErrNoInstance = errors.New("no instance loaded")
)

// Storage provides access to the problem instance currently being served
// and its precomputed waste table.
type Storage interface {
	Get() (*slab.Instance, slab.WasteTable, error)
	Set(inst *slab.Instance) error
}

// MemoryStorage keeps the current instance in-memory and guards access
// with a RWMutex. The waste table is built once per Set and shared
// read-only with every evaluation afterwards.
type MemoryStorage struct {
	mu    sync.RWMutex
	inst  *slab.Instance
	table slab.WasteTable
}

// NewMemoryStorage initialises an empty store; Get fails with
// ErrNoInstance until the first successful Set.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

// Get returns the current instance and its waste table. Both are shared
// read-only between callers and must not be mutated.
func (s *MemoryStorage) Get() (*slab.Instance, slab.WasteTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.inst == nil {
		return nil, nil, ErrNoInstance
	}
	return s.inst, s.table, nil
}

// Set builds the waste table for inst and swaps both in atomically. When
// construction fails (unsorted or non-positive sizes) the previously
// stored instance is left untouched.
func (s *MemoryStorage) Set(inst *slab.Instance) error {
	table, err := slab.BuildWasteTable(inst.SlabSizes, inst.SumQuantities())
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.inst = inst
	s.table = table
	s.mu.Unlock()

	return nil
}
