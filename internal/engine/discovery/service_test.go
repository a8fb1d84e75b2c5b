package discovery_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/adapters/fs"
	"go.trai.ch/xclean/internal/adapters/plist"
	"go.trai.ch/xclean/internal/core/domain"
	"go.trai.ch/xclean/internal/core/ports/mocks"
	"go.trai.ch/xclean/internal/engine/discovery"
	"go.trai.ch/xclean/internal/engine/dispatch"
	"go.uber.org/mock/gomock"
)

const metadataTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<plist version="1.0">
<dict>
	<key>WorkspacePath</key>
	<string>%s</string>
</dict>
</plist>
`

// addEntry creates root/name with an info.plist pointing at projectPath and a
// payload file of the given size.
func addEntry(t *testing.T, root, name, projectPath string, payload int) string {
	t.Helper()

	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Build"), domain.DirPerm))
	metadata := []byte(fmt.Sprintf(metadataTemplate, projectPath))
	require.NoError(t, os.WriteFile(domain.MetadataPath(dir), metadata, domain.FilePerm))
	if payload > 0 {
		blob := filepath.Join(dir, "Build", "blob.o")
		require.NoError(t, os.WriteFile(blob, make([]byte, payload), domain.FilePerm))
	}
	return dir
}

func newService(t *testing.T, root string) *discovery.Service {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	return discovery.NewService(
		fs.NewFileSystem(),
		plist.NewReader(),
		fs.NewSizer(fs.NewWalker()),
		fs.NewLocator(root),
		log,
		2,
	)
}

func TestService_TryCreate(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	valid := addEntry(t, root, "App-abc", "/gone/App.xcodeproj", 0)

	noMetadata := filepath.Join(root, "NoMeta-abc")
	require.NoError(t, os.MkdirAll(noMetadata, domain.DirPerm))

	invalid := filepath.Join(root, "Broken-abc")
	require.NoError(t, os.MkdirAll(invalid, domain.DirPerm))
	require.NoError(t, os.WriteFile(domain.MetadataPath(invalid), []byte("<plist><dict>"), domain.FilePerm))

	noKey := filepath.Join(root, "NoKey-abc")
	require.NoError(t, os.MkdirAll(noKey, domain.DirPerm))
	require.NoError(t, os.WriteFile(domain.MetadataPath(noKey), []byte(`<plist version="1.0"><dict><key>Other</key><string>x</string></dict></plist>`), domain.FilePerm))

	file := filepath.Join(root, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), domain.FilePerm))

	tests := []struct {
		name   string
		dir    string
		wantOK bool
	}{
		{name: "valid entry with vanished project", dir: valid, wantOK: true},
		{name: "missing metadata", dir: noMetadata},
		{name: "malformed metadata", dir: invalid},
		{name: "metadata without workspace path", dir: noKey},
		{name: "regular file", dir: file},
		{name: "missing directory", dir: filepath.Join(root, "Missing-abc")},
	}

	svc := newService(t, root)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, ok := svc.TryCreate(context.Background(), tt.dir, discovery.Completion{})
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				assert.Nil(t, entry)
				return
			}
			assert.Equal(t, tt.dir, entry.Root())
			assert.Equal(t, "/gone/App.xcodeproj", entry.ProjectPath())
			assert.Equal(t, "App", entry.Name())
		})
	}
	svc.Wait()
}

func TestService_SizingCompletesOnExecutor(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dir := addEntry(t, root, "App-abc", "/src/App.xcodeproj", 2048)
	metadataSize := fileSize(t, domain.MetadataPath(dir))

	loop := dispatch.NewLoop()
	var notified atomic.Int32
	done := discovery.Completion{
		Executor: loop,
		Notify: func(*domain.Entry) {
			notified.Add(1)
		},
	}

	svc := newService(t, root)
	entry, ok := svc.TryCreate(context.Background(), dir, done)
	require.True(t, ok)

	svc.Wait()
	assert.True(t, entry.Loading(), "completion must wait for the executor")
	assert.Zero(t, notified.Load())

	assert.Equal(t, 1, loop.Drain())
	size, loading := entry.Sizing()
	assert.False(t, loading)
	assert.Equal(t, uint64(2048)+metadataSize, size)
	assert.Equal(t, int32(1), notified.Load())
}

func TestService_ListAll(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	addEntry(t, root, "A-1", "/src/A.xcodeproj", 10)
	addEntry(t, root, "B-2", "/src/B.xcworkspace", 20)
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.ModuleCacheDirName, "X"), domain.DirPerm))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "Junk"), domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.txt"), []byte("x"), domain.FilePerm))

	svc := newService(t, root)
	entries := svc.Discover(context.Background(), discovery.Completion{})
	svc.Wait()

	snapshot := domain.NewSnapshot(entries, false)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, "A", snapshot.Entries[0].Name())
	assert.Equal(t, "B", snapshot.Entries[1].Name())
	assert.Zero(t, snapshot.Pending())
}

func TestService_MissingRoot(t *testing.T) {
	t.Parallel()

	svc := newService(t, filepath.Join(t.TempDir(), "absent"))

	assert.Empty(t, svc.ListAll(context.Background(), discovery.Completion{}))

	root, ok := svc.DerivedDataRoot()
	assert.True(t, ok, "a missing directory is still a resolvable root")
	cache, ok := svc.ModuleCacheRoot()
	assert.True(t, ok)
	assert.Equal(t, domain.ModuleCachePath(root), cache)
}

func TestService_UnresolvableRoot(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	locator := mocks.NewMockRootLocator(ctrl)
	locator.EXPECT().DerivedDataRoot().Return("", domain.ErrLibraryUnavailable).AnyTimes()

	svc := discovery.NewService(
		mocks.NewMockFileSystem(ctrl),
		mocks.NewMockMetadataReader(ctrl),
		mocks.NewMockSizer(ctrl),
		locator,
		log,
		1,
	)

	_, ok := svc.DerivedDataRoot()
	assert.False(t, ok)
	_, ok = svc.ModuleCacheRoot()
	assert.False(t, ok)
	assert.Empty(t, svc.Discover(context.Background(), discovery.Completion{}))
}

func TestService_FailedScanCompletesWithZero(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	fsMock := mocks.NewMockFileSystem(ctrl)
	fsMock.EXPECT().IsDir("/dd/App-1").Return(true)
	meta := mocks.NewMockMetadataReader(ctrl)
	meta.EXPECT().ReadWorkspacePath("/dd/App-1").Return("/src/App.xcodeproj", nil)
	sizer := mocks.NewMockSizer(ctrl)
	sizer.EXPECT().SizeOf("/dd/App-1").Return(uint64(0), false)

	svc := discovery.NewService(fsMock, meta, sizer, mocks.NewMockRootLocator(ctrl), log, 1)
	entry, ok := svc.TryCreate(context.Background(), "/dd/App-1", discovery.Completion{})
	require.True(t, ok)
	svc.Wait()

	size, loading := entry.Sizing()
	assert.False(t, loading)
	assert.Zero(t, size)
}

func TestService_ConcurrentScansOfSameRootShareWork(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Debug(gomock.Any()).AnyTimes()
		fsMock := mocks.NewMockFileSystem(ctrl)
		fsMock.EXPECT().IsDir("/dd/App-1").Return(true).Times(2)
		meta := mocks.NewMockMetadataReader(ctrl)
		meta.EXPECT().ReadWorkspacePath("/dd/App-1").Return("/src/App.xcodeproj", nil).Times(2)

		release := make(chan struct{})
		sizer := mocks.NewMockSizer(ctrl)
		sizer.EXPECT().SizeOf("/dd/App-1").DoAndReturn(func(string) (uint64, bool) {
			<-release
			return 42, true
		}).Times(1)

		svc := discovery.NewService(fsMock, meta, sizer, mocks.NewMockRootLocator(ctrl), log, 4)

		first, ok := svc.TryCreate(context.Background(), "/dd/App-1", discovery.Completion{})
		require.True(t, ok)
		second, ok := svc.TryCreate(context.Background(), "/dd/App-1", discovery.Completion{})
		require.True(t, ok)

		synctest.Wait()
		assert.True(t, first.Loading())
		assert.True(t, second.Loading())

		close(release)
		svc.Wait()

		assert.Equal(t, uint64(42), first.Size())
		assert.Equal(t, uint64(42), second.Size())
		assert.Equal(t, first.ID(), second.ID())
	})
}

func fileSize(t *testing.T, path string) uint64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return uint64(info.Size())
}

func TestService_ScanReadsMetadataOnly(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	addEntry(t, root, "A-1", "/src/A.xcodeproj", 10)
	addEntry(t, root, "B-2", "/gone/B.xcodeproj", 20)
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.ModuleCacheDirName, "X"), domain.DirPerm))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	// The sizer mock has no expectations: any size scan fails the test.
	svc := discovery.NewService(
		fs.NewFileSystem(),
		plist.NewReader(),
		mocks.NewMockSizer(ctrl),
		fs.NewLocator(root),
		log,
		1,
	)

	entries := svc.Scan()
	svc.Wait()

	snapshot := domain.NewSnapshot(entries, false)
	require.Len(t, snapshot.Entries, 2)
	assert.Equal(t, "A", snapshot.Entries[0].Name())
	assert.Equal(t, "/gone/B.xcodeproj", snapshot.Entries[1].ProjectPath())
	assert.Equal(t, 2, snapshot.Pending(), "scanned entries are never sized")
}
