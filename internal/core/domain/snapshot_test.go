package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/core/domain"
)

func TestNewSnapshot(t *testing.T) {
	t.Parallel()

	zeta := domain.NewEntry("/dd/Zeta-1", "/src/Zeta.xcodeproj")
	alpha := domain.NewEntry("/dd/alpha-1", "/src/alpha.xcodeproj")
	beta := domain.NewEntry("/dd/Beta-1", "/src/Beta.xcworkspace")
	input := []*domain.Entry{zeta, alpha, beta}

	s := domain.NewSnapshot(input, true)

	require.Len(t, s.Entries, 3)
	assert.Equal(t, []string{"alpha", "Beta", "Zeta"}, names(s.Entries))
	assert.Same(t, zeta, input[0], "input slice must not be reordered")
	assert.True(t, s.Loading)
	assert.False(t, s.NoData())
}

func TestSnapshot_Totals(t *testing.T) {
	t.Parallel()

	a := domain.NewEntry("/dd/A-1", "/src/A.xcodeproj")
	b := domain.NewEntry("/dd/B-1", "/src/B.xcodeproj")
	c := domain.NewEntry("/dd/C-1", "/src/C.xcodeproj")
	s := domain.NewSnapshot([]*domain.Entry{a, b, c}, false)

	assert.Equal(t, 3, s.Pending())
	assert.Zero(t, s.TotalBytes())

	a.CompleteSizing(100)
	b.CompleteSizing(250)

	assert.Equal(t, 1, s.Pending())
	assert.Equal(t, uint64(350), s.TotalBytes())
}

func TestSnapshot_NoData(t *testing.T) {
	t.Parallel()

	assert.True(t, domain.NewSnapshot(nil, false).NoData())
	assert.True(t, domain.Snapshot{}.NoData())
}

func TestSnapshot_Zombies(t *testing.T) {
	t.Parallel()

	live := domain.NewEntry("/dd/Live-1", "/src/Live.xcodeproj")
	gone := domain.NewEntry("/dd/Gone-1", "/gone/Gone.xcodeproj")
	base := domain.NewSnapshot([]*domain.Entry{live, gone}, false)

	s := base.WithZombies([]*domain.Entry{gone})

	assert.True(t, s.IsZombie(gone))
	assert.False(t, s.IsZombie(live))
	assert.Equal(t, []*domain.Entry{gone}, s.ZombieEntries())
	assert.Empty(t, base.ZombieEntries(), "the original snapshot is unchanged")
}

func TestSortEntries_TieBreaksOnRoot(t *testing.T) {
	t.Parallel()

	second := domain.NewEntry("/dd/App-2", "/b/App.xcodeproj")
	first := domain.NewEntry("/dd/App-1", "/a/App.xcodeproj")
	entries := []*domain.Entry{second, first}

	domain.SortEntries(entries)

	assert.Same(t, first, entries[0])
	assert.Same(t, second, entries[1])
}

func TestOperation_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "reload", domain.OpReload.String())
	assert.Equal(t, "delete", domain.OpDeleteOne.String())
	assert.Equal(t, "delete-all", domain.OpDeleteAll.String())
	assert.Equal(t, "delete-module-cache", domain.OpDeleteModuleCache.String())
	assert.Equal(t, "sweep-zombies", domain.OpSweepZombies.String())
	assert.Equal(t, "unknown", domain.Operation(200).String())

	assert.False(t, domain.OpReload.Destructive())
	assert.True(t, domain.OpSweepZombies.Destructive())
}

func names(entries []*domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name()
	}
	return out
}
