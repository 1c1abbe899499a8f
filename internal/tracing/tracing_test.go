package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"

	"clinicdesk/internal/config"
)

func TestSetup_Disabled(t *testing.T) {
	shutdown, err := Setup(context.Background(), "clinicdesk", config.TracingConfig{Enabled: false})
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NoError(t, shutdown(context.Background()))

	fields := otel.GetTextMapPropagator().Fields()
	assert.Contains(t, fields, "traceparent")
}

func TestSetup_Enabled(t *testing.T) {
	// the gRPC exporter connects lazily, so no collector is needed here
	shutdown, err := Setup(context.Background(), "clinicdesk", config.TracingConfig{
		Enabled:     true,
		Endpoint:    "127.0.0.1:4317",
		SampleRatio: 1,
	})
	require.NoError(t, err)

	ctx, span := otel.Tracer("test").Start(context.Background(), "op")
	assert.True(t, span.SpanContext().IsValid())
	span.End()

	shutdownCtx, cancel := context.WithTimeout(ctx, 0)
	defer cancel()
	_ = shutdown(shutdownCtx)
}
