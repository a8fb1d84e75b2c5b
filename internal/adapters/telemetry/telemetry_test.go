package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/xclean/internal/adapters/telemetry"
	"go.trai.ch/xclean/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_RecordsAttributesAndErrors(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	tracer := telemetry.NewOTelTracer(provider, "test")

	_, span := tracer.Start(context.Background(), "cleanup.delete")
	span.SetAttribute("path", "/dd/App-1")
	span.SetAttribute("entries", 3)
	span.SetAttribute("bytes", uint64(2048))
	span.SetAttribute("zombie", true)
	span.SetAttribute("other", struct{ N int }{N: 1})
	span.RecordError(errors.New("permission denied"))
	span.RecordError(nil)
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	got := ended[0]

	assert.Equal(t, "cleanup.delete", got.Name())
	assert.Equal(t, codes.Error, got.Status().Code)
	assert.Equal(t, "permission denied", got.Status().Description)
	assert.Contains(t, got.Attributes(), attribute.String("path", "/dd/App-1"))
	assert.Contains(t, got.Attributes(), attribute.Int("entries", 3))
	assert.Contains(t, got.Attributes(), attribute.Int64("bytes", 2048))
	assert.Contains(t, got.Attributes(), attribute.Bool("zombie", true))
	assert.Contains(t, got.Attributes(), attribute.String("other", "{1}"))
	require.Len(t, got.Events(), 1, "only the non-nil error is recorded")
}

func TestLogBridge_LogsFinishedSpans(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	var lines []string
	log.EXPECT().Debug(gomock.Any()).Do(func(msg string) {
		lines = append(lines, msg)
	}).Times(2)

	tracer := telemetry.NewOTelTracer(telemetry.NewProvider(log), telemetry.InstrumentationName)

	_, ok := tracer.Start(context.Background(), "cleanup.reload")
	ok.SetAttribute("entries", 2)
	ok.End()

	_, failed := tracer.Start(context.Background(), "cleanup.delete-all")
	failed.RecordError(errors.New("busy"))
	failed.End()

	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "span cleanup.reload took ")
	assert.Contains(t, lines[0], "entries=2")
	assert.NotContains(t, lines[0], "error=")
	assert.Contains(t, lines[1], "span cleanup.delete-all took ")
	assert.Contains(t, lines[1], `error="busy"`)
}

func TestNoOpTracer(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	gotCtx, span := telemetry.NewNoOpTracer().Start(ctx, "noop")
	assert.Equal(t, ctx, gotCtx)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("ignored"))
	span.End()
}
