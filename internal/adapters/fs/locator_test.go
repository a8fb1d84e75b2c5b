package fs_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/adapters/fs"
	"go.trai.ch/xclean/internal/core/domain"
)

func TestLocator_DerivedDataRoot(t *testing.T) {
	t.Parallel()

	home := filepath.Join("/Users", "dev")

	tests := []struct {
		name        string
		override    string
		home        func() (string, error)
		expected    string
		errContains string
	}{
		{
			name:     "default layout",
			home:     func() (string, error) { return home, nil },
			expected: filepath.Join(home, "Library", "Developer", "Xcode", "DerivedData"),
		},
		{
			name:     "override wins",
			override: "/tmp/dd/",
			home: func() (string, error) {
				panic("home directory must not be consulted")
			},
			expected: "/tmp/dd",
		},
		{
			name:        "home lookup fails",
			home:        func() (string, error) { return "", errors.New("$HOME is not defined") },
			errContains: domain.ErrLibraryUnavailable.Error(),
		},
		{
			name:        "empty home",
			home:        func() (string, error) { return "", nil },
			errContains: domain.ErrLibraryUnavailable.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			root, err := fs.NewLocatorWithHome(tt.override, tt.home).DerivedDataRoot()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, root)
		})
	}
}

func TestLocator_UsesUserHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := fs.NewLocator("").DerivedDataRoot()
	require.NoError(t, err)
	assert.Equal(t, domain.DerivedDataPath(filepath.Join(home, "Library")), root)
}
