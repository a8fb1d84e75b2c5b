package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/xclean/internal/adapters/linear"
	"go.trai.ch/xclean/internal/core/domain"
)

func newTestPresenter(t *testing.T) (*linear.Presenter, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return linear.NewPresenter(stdout, stderr), stdout, stderr
}

func TestPresenter_Table(t *testing.T) {
	p, stdout, _ := newTestPresenter(t)

	alpha := domain.NewEntry("/dd/Alpha-1", "/src/Alpha.xcodeproj")
	alpha.CompleteSizing(1536)
	beta := domain.NewEntry("/dd/Beta-2", "/gone/Beta.xcworkspace")
	beta.CompleteSizing(3000000)
	orphan := domain.NewEntry("/dd/Orphan-3", "")
	orphan.CompleteSizing(12)
	pending := domain.NewEntry("/dd/Pending-4", "/src/Pending.xcodeproj")

	snapshot := domain.NewSnapshot([]*domain.Entry{pending, orphan, beta, alpha}, false)
	p.Table(snapshot.Entries, func(e *domain.Entry) bool { return e == beta })

	g := goldie.New(t)
	g.Assert(t, "table_basic", stdout.Bytes())
}

func TestPresenter_TableEmpty(t *testing.T) {
	p, stdout, _ := newTestPresenter(t)

	p.Table(nil, nil)

	g := goldie.New(t)
	g.Assert(t, "table_empty", stdout.Bytes())
}

func TestPresenter_Messages(t *testing.T) {
	p, stdout, stderr := newTestPresenter(t)

	p.Removed(2, 2048)
	p.Removed(1, 5)
	p.Done("Nothing to clean")
	p.OnDeleteFailed(domain.OpDeleteOne, errors.New("permission denied"))
	p.OnUnavailable(domain.OpDeleteAll)

	g := goldie.New(t)
	g.Assert(t, "messages_stdout", stdout.Bytes())
	g.Assert(t, "messages_stderr", stderr.Bytes())
}

func TestPresenter_Preferences(t *testing.T) {
	p, stdout, _ := newTestPresenter(t)

	p.Preferences(true, time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC), true)
	p.Preferences(false, time.Time{}, false)

	g := goldie.New(t)
	g.Assert(t, "preferences", stdout.Bytes())
}

func TestPresenter_KeepsLatestSnapshot(t *testing.T) {
	p, stdout, _ := newTestPresenter(t)
	assert.True(t, p.Snapshot().NoData())

	entry := domain.NewEntry("/dd/App-1", "/src/App.xcodeproj")
	p.OnSnapshot(domain.NewSnapshot([]*domain.Entry{entry}, true))
	p.OnEntrySized(entry)

	got := p.Snapshot()
	assert.True(t, got.Loading)
	assert.Same(t, entry, got.Entries[0])
	assert.Empty(t, stdout.String())
}
