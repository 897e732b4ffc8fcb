package telemetry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

var (
	errTracerDown = errors.New("tracer exporter down")
	errMeterDown  = errors.New("meter exporter down")
)

type fakeProvider struct {
	err    error
	called bool
}

func (that *fakeProvider) Shutdown(context.Context) error {
	that.called = true
	return that.err
}

func TestInit_Disabled(t *testing.T) {
	// Given: telemetry switched off
	shutdown, err := Init(context.Background(), config.Telemetry{Enabled: false})

	// Then: a no-op shutdown is returned
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestShutdownProviders(t *testing.T) {
	ctx := context.Background()

	t.Run("Shuts down both providers", func(t *testing.T) {
		tracerProvider, meterProvider := &fakeProvider{}, &fakeProvider{}

		err := shutdownProviders(ctx, tracerProvider, meterProvider)

		require.NoError(t, err)
		assert.True(t, tracerProvider.called)
		assert.True(t, meterProvider.called)
	})

	t.Run("Still shuts down the meter provider when the tracer fails", func(t *testing.T) {
		// Given: a tracer provider whose shutdown fails
		tracerProvider := &fakeProvider{err: errTracerDown}
		meterProvider := &fakeProvider{}

		// When: the providers are shut down
		err := shutdownProviders(ctx, tracerProvider, meterProvider)

		// Then: the meter provider was shut down anyway and the tracer error is reported
		require.ErrorIs(t, err, errTracerDown)
		assert.True(t, meterProvider.called)
	})

	t.Run("Joins both failures", func(t *testing.T) {
		// Given: both providers fail to shut down
		tracerProvider := &fakeProvider{err: errTracerDown}
		meterProvider := &fakeProvider{err: errMeterDown}

		// When: the providers are shut down
		err := shutdownProviders(ctx, tracerProvider, meterProvider)

		// Then: both errors can be matched
		require.ErrorIs(t, err, errTracerDown)
		require.ErrorIs(t, err, errMeterDown)
	})
}
