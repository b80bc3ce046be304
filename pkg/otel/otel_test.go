package otel

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"

	"katalog/pkg/logger"
)

func TestAddSpan_UsesInjectedTracer(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	ctx := InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := AddSpan(ctx, "catalog.create", attribute.String("book.title", "Dune"))

	assert.NotEqual(t, trace.TraceID{}.String(), GetTraceID(ctx))
	span.End()

	ended := rec.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "catalog.create", ended[0].Name())
	assert.Contains(t, ended[0].Attributes(), attribute.String("book.title", "Dune"))
}

func TestAddSpan_WithoutTracerIsNoop(t *testing.T) {
	ctx, span := AddSpan(context.Background(), "nothing")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
	assert.Equal(t, trace.TraceID{}.String(), GetTraceID(ctx))
}

func TestInitTracing_WithoutExporter(t *testing.T) {
	log := logger.New(&bytes.Buffer{}, logger.LevelInfo, "test", GetTraceID)

	tp, shutdown, err := InitTracing(log, Config{ServiceName: "test", Probability: 1})
	require.NoError(t, err)
	defer func() { assert.NoError(t, shutdown(context.Background())) }()

	ctx, span := AddSpan(InjectTracing(context.Background(), tp.Tracer("test")), "op")
	defer span.End()
	assert.True(t, span.SpanContext().IsValid())
	assert.NotEqual(t, trace.TraceID{}.String(), GetTraceID(ctx))
}

func TestInitTracing_RequiresServiceName(t *testing.T) {
	log := logger.New(&bytes.Buffer{}, logger.LevelInfo, "test", GetTraceID)

	_, _, err := InitTracing(log, Config{Probability: 1})
	assert.Error(t, err)
}

func TestInitMetrics_WithoutHostIsNoop(t *testing.T) {
	log := logger.New(&bytes.Buffer{}, logger.LevelInfo, "test", GetTraceID)

	shutdown, err := InitMetrics(log, Config{ServiceName: "test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}
