package cleanup_test

import (
	"context"
	"sync/atomic"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/xclean/internal/core/ports/mocks"
	"go.trai.ch/xclean/internal/engine/cleanup"
	"go.uber.org/mock/gomock"
)

type fakeSweeper struct {
	calls atomic.Int32
	busy  atomic.Bool
}

func (f *fakeSweeper) SweepZombies(context.Context) (<-chan error, bool) {
	f.calls.Add(1)
	ch := make(chan error, 1)
	ch <- nil
	return ch, !f.busy.Load()
}

func TestSweeper_TicksOnlyWhenAutoCleanIsOn(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mocks.NewMockPreferences(ctrl)
		log := mocks.NewMockLogger(ctrl)

		var enabled atomic.Bool
		prefs.EXPECT().AutoClean().DoAndReturn(enabled.Load).AnyTimes()

		target := &fakeSweeper{}
		sweeper := cleanup.NewSweeper(target, prefs, log, 10*time.Minute)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- sweeper.Run(ctx) }()

		time.Sleep(25 * time.Minute)
		synctest.Wait()
		assert.Zero(t, target.calls.Load(), "auto-clean is off")

		enabled.Store(true)
		time.Sleep(10 * time.Minute)
		synctest.Wait()
		assert.Equal(t, int32(1), target.calls.Load())

		time.Sleep(20 * time.Minute)
		synctest.Wait()
		assert.Equal(t, int32(3), target.calls.Load())

		cancel()
		assert.NoError(t, <-done)
	})
}

func TestSweeper_LogsDroppedRequests(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		ctrl := gomock.NewController(t)
		prefs := mocks.NewMockPreferences(ctrl)
		prefs.EXPECT().AutoClean().Return(true).AnyTimes()
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Debug("zombie sweep already running, skipping tick").Times(1)

		target := &fakeSweeper{}
		target.busy.Store(true)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- cleanup.NewSweeper(target, prefs, log, time.Minute).Run(ctx) }()

		time.Sleep(90 * time.Second)
		synctest.Wait()
		cancel()
		assert.NoError(t, <-done)
		assert.Equal(t, int32(1), target.calls.Load())
	})
}
