package watcher_test

import (
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu       sync.Mutex
			calls    int
			received []string
		)
		d := watcher.NewDebouncer(500*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			received = paths
		})

		d.Add("/dd/Beta-2")
		d.Add("/dd/Alpha-1")
		d.Add("/dd/Beta-2")

		time.Sleep(600 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Equal(t, 1, calls)
		assert.Equal(t, []string{"/dd/Alpha-1", "/dd/Beta-2"}, received)
	})
}

func TestDebouncer_TimerReset(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls int
		)
		count := func() int {
			mu.Lock()
			defer mu.Unlock()
			return calls
		}
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		d.Add("/dd/A-1")
		time.Sleep(50 * time.Millisecond)
		d.Add("/dd/B-2")
		time.Sleep(50 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 0, count())

		time.Sleep(60 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, count())
	})
}

func TestDebouncer_Flush(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var calls int
		var received []string
		d := watcher.NewDebouncer(100*time.Millisecond, func(paths []string) {
			calls++
			received = paths
		})

		d.Flush()
		assert.Zero(t, calls, "nothing pending")

		d.Add("/dd/A-1")
		d.Flush()
		require.Equal(t, 1, calls)
		assert.Equal(t, []string{"/dd/A-1"}, received)

		time.Sleep(150 * time.Millisecond)
		synctest.Wait()
		assert.Equal(t, 1, calls, "the stopped timer must not fire again")
	})
}

func TestDebouncer_FlushAfterFire(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls int
		)
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		d.Add("/dd/A-1")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		d.Flush()

		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, 1, calls)
	})
}

func TestDebouncer_NilCallback(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		d := watcher.NewDebouncer(50*time.Millisecond, nil)
		d.Add("/dd/A-1")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()
		d.Add("/dd/B-2")
		d.Flush()
	})
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var (
			mu    sync.Mutex
			calls int
		)
		count := func() int {
			mu.Lock()
			defer mu.Unlock()
			return calls
		}
		d := watcher.NewDebouncer(100*time.Millisecond, func([]string) {
			mu.Lock()
			calls++
			mu.Unlock()
		})

		d.Add("/dd/A-1")
		d.Stop()
		d.Add("/dd/B-2")

		time.Sleep(200 * time.Millisecond)
		synctest.Wait()
		assert.Zero(t, count(), "nothing fires once stopped")

		d.Stop()
	})
}

func TestDebouncer_StopWaitsForRunningCallback(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		release := make(chan struct{})
		var finished bool
		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			<-release
			finished = true
		})

		d.Add("/dd/A-1")
		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		stopped := make(chan struct{})
		go func() {
			d.Stop()
			close(stopped)
		}()
		synctest.Wait()
		select {
		case <-stopped:
			t.Fatal("Stop returned while the callback was running")
		default:
		}

		close(release)
		<-stopped
		assert.True(t, finished)
	})
}
