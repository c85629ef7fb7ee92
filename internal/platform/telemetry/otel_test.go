package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestNew_Disabled(t *testing.T) {
	p, err := New(context.Background(), &Config{Protocol: "carrier-pigeon"})
	require.NoError(t, err)

	assert.Nil(t, p.traces)
	assert.Nil(t, p.metrics)
	assert.ElementsMatch(t, []string{"traceparent", "tracestate", "baggage"}, otel.GetTextMapPropagator().Fields())
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_UnknownProtocol(t *testing.T) {
	_, err := New(context.Background(), &Config{Enabled: true, Protocol: "carrier-pigeon"})

	require.EqualError(t, err, `unknown telemetry protocol "carrier-pigeon"`)
}

func TestNewResource(t *testing.T) {
	res, err := newResource(&Config{ServiceName: "storefront", Version: "1.4.0", Environment: "qa"})
	require.NoError(t, err)

	attrs := res.Set()

	name, ok := attrs.Value(semconv.ServiceNameKey)
	require.True(t, ok)
	assert.Equal(t, "storefront", name.AsString())

	env, ok := attrs.Value(semconv.DeploymentEnvironmentKey)
	require.True(t, ok)
	assert.Equal(t, "qa", env.AsString())
}
