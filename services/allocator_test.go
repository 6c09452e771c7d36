package services

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plateapp/reservations/models"
)

// fakeRegistry scripts the allocator's view of the world so races and
// failures can be replayed deterministically.
type fakeRegistry struct {
	tables       []models.Table
	denied       map[uint]bool
	listCalls    int
	reserveCalls []uint
}

func (f *fakeRegistry) ListAvailable(section string) ([]models.Table, error) {
	f.listCalls++
	return f.tables, nil
}

func (f *fakeRegistry) TryReserve(tableID uint) (bool, error) {
	f.reserveCalls = append(f.reserveCalls, tableID)
	return !f.denied[tableID], nil
}

func TestAllocatePicksSmallestAdequateTable(t *testing.T) {
	registry := NewTableRegistry(setupServiceDB(t))
	allocator := NewAllocator(registry)

	_, err := registry.CreateTable("italian", 8)
	require.NoError(t, err)
	small, err := registry.CreateTable("italian", 4)
	require.NoError(t, err)

	assignment, err := allocator.Allocate(3, "italian")
	require.NoError(t, err)
	assert.Equal(t, small.ID, assignment.Table.ID, "must take the capacity-4 table over the capacity-8 one")
	assert.Equal(t, uint(90), assignment.DurationMinutes)
}

func TestAllocateSkipsTooSmallTables(t *testing.T) {
	registry := NewTableRegistry(setupServiceDB(t))
	allocator := NewAllocator(registry)

	_, err := registry.CreateTable("italian", 2)
	require.NoError(t, err)
	big, err := registry.CreateTable("italian", 6)
	require.NoError(t, err)

	assignment, err := allocator.Allocate(5, "italian")
	require.NoError(t, err)
	assert.Equal(t, big.ID, assignment.Table.ID)
}

func TestAllocatePartyTooLargeFailsFast(t *testing.T) {
	fake := &fakeRegistry{}
	allocator := NewAllocator(fake)

	_, err := allocator.Allocate(20, "")
	assert.ErrorIs(t, err, ErrPartyTooLarge)
	assert.Zero(t, fake.listCalls, "no registry access on a rejected party size")
	assert.Empty(t, fake.reserveCalls)
}

func TestAllocateNoAdequateCapacity(t *testing.T) {
	fake := &fakeRegistry{
		tables: []models.Table{
			{ID: 1, Section: "italian", Capacity: 2, IsAvailable: true},
		},
	}
	allocator := NewAllocator(fake)

	_, err := allocator.Allocate(4, "italian")
	assert.ErrorIs(t, err, ErrNoTableAvailable)
	assert.Empty(t, fake.reserveCalls, "an undersized table must never be claimed")
}

func TestAllocateRetriesAfterLostRace(t *testing.T) {
	fake := &fakeRegistry{
		tables: []models.Table{
			{ID: 1, Section: "italian", Capacity: 4, IsAvailable: true},
			{ID: 2, Section: "italian", Capacity: 6, IsAvailable: true},
		},
		denied: map[uint]bool{1: true},
	}
	allocator := NewAllocator(fake)

	assignment, err := allocator.Allocate(4, "italian")
	require.NoError(t, err)
	assert.Equal(t, uint(2), assignment.Table.ID, "losing table 1 must fall through to table 2")
	assert.Equal(t, []uint{1, 2}, fake.reserveCalls)
}

func TestAllocateAllRacesLost(t *testing.T) {
	fake := &fakeRegistry{
		tables: []models.Table{
			{ID: 1, Section: "italian", Capacity: 4, IsAvailable: true},
			{ID: 2, Section: "italian", Capacity: 6, IsAvailable: true},
		},
		denied: map[uint]bool{1: true, 2: true},
	}
	allocator := NewAllocator(fake)

	_, err := allocator.Allocate(4, "italian")
	assert.ErrorIs(t, err, ErrNoTableAvailable)
	assert.Equal(t, []uint{1, 2}, fake.reserveCalls, "each lost table is tried exactly once")
}

// TestConcurrentAllocationsNeverDoubleBook drives more allocations than
// there are tables: exactly one winner per table, everyone else walks away
// with ErrNoTableAvailable.
func TestConcurrentAllocationsNeverDoubleBook(t *testing.T) {
	registry := NewTableRegistry(setupServiceDB(t))
	allocator := NewAllocator(registry)

	const tables = 3
	const callers = 8
	for i := 0; i < tables; i++ {
		_, err := registry.CreateTable("italian", 4)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	results := make(chan error, callers)
	assigned := make(chan uint, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assignment, err := allocator.Allocate(2, "italian")
			results <- err
			if err == nil {
				assigned <- assignment.Table.ID
			}
		}()
	}
	wg.Wait()
	close(results)
	close(assigned)

	var wins, misses int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.ErrorIs(t, err, ErrNoTableAvailable)
		misses++
	}
	assert.Equal(t, tables, wins)
	assert.Equal(t, callers-tables, misses)

	seen := make(map[uint]bool)
	for id := range assigned {
		assert.False(t, seen[id], "table %d was assigned twice", id)
		seen[id] = true
	}
}
