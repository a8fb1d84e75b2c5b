package domain_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/core/domain"
)

func TestNewEntry(t *testing.T) {
	t.Parallel()

	e := domain.NewEntry("/dd/App-abc", "/src/App/App.xcodeproj")

	assert.Equal(t, "/dd/App-abc", e.Root())
	assert.Equal(t, "/src/App/App.xcodeproj", e.ProjectPath())
	assert.Equal(t, "App", e.Name())
	assert.True(t, e.Loading())
	assert.Zero(t, e.Size())
}

func TestEntry_ID(t *testing.T) {
	t.Parallel()

	a := domain.NewEntry("/dd/App-abc", "/src/App.xcodeproj")
	b := domain.NewEntry("/dd/App-abc", "/elsewhere/App.xcodeproj")
	c := domain.NewEntry("/dd/Other-def", "/src/App.xcodeproj")

	assert.Equal(t, a.ID(), b.ID(), "ID depends on the root only")
	assert.NotEqual(t, a.ID(), c.ID())
}

func TestEntry_CompleteSizing(t *testing.T) {
	t.Parallel()

	e := domain.NewEntry("/dd/App-abc", "/src/App.xcodeproj")

	require.True(t, e.CompleteSizing(4096))
	size, loading := e.Sizing()
	assert.Equal(t, uint64(4096), size)
	assert.False(t, loading)

	assert.False(t, e.CompleteSizing(1), "second completion must be ignored")
	assert.Equal(t, uint64(4096), e.Size())
	assert.False(t, e.Loading())
}

func TestEntry_CompleteSizing_Concurrent(t *testing.T) {
	t.Parallel()

	e := domain.NewEntry("/dd/App-abc", "")

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners int
	)
	for i := range workers {
		wg.Add(1)
		go func(size uint64) {
			defer wg.Done()
			if e.CompleteSizing(size) {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}(uint64(i + 1))
	}
	wg.Wait()

	assert.Equal(t, 1, winners)
	assert.False(t, e.Loading())
	assert.NotZero(t, e.Size())
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		root        string
		projectPath string
		expected    string
	}{
		{
			name:        "xcodeproj",
			root:        "/dd/App-abc",
			projectPath: "/src/App/App.xcodeproj",
			expected:    "App",
		},
		{
			name:        "xcworkspace",
			root:        "/dd/Suite-abc",
			projectPath: "/src/Suite.xcworkspace",
			expected:    "Suite",
		},
		{
			name:        "swift package",
			root:        "/dd/Kit-abc",
			projectPath: "/src/Kit/.swiftpm",
			expected:    ".swiftpm",
		},
		{
			name:        "plain directory",
			root:        "/dd/Pkg-abc",
			projectPath: "/src/Pkg",
			expected:    "Pkg",
		},
		{
			name:        "empty project path falls back to root",
			root:        "/dd/Orphan-abc",
			projectPath: "",
			expected:    "Orphan-abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, domain.DisplayName(tt.root, tt.projectPath))
		})
	}
}
