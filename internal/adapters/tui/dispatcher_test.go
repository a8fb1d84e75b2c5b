package tui_test

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.trai.ch/xclean/internal/adapters/tui"
	"go.uber.org/mock/gomock"
)

func TestDispatcher_RunsInsideUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newModel(t, ctrl)

	dispatcher := tui.NewDispatcher()
	renderer := tui.NewRenderer(m, dispatcher,
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
		tea.WithoutRenderer(),
	)
	require.NoError(t, renderer.Start(t.Context()))

	ran := make(chan struct{})
	go dispatcher.Dispatch(func() { close(ran) })

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("dispatched function did not run")
	}

	require.NoError(t, renderer.Stop())
	require.NoError(t, renderer.Wait())

	// The program is gone; dispatching must not block.
	dispatcher.Dispatch(func() { t.Error("ran after exit") })
}
