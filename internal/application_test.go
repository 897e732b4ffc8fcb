package application

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("Plays a console game to the end", func(t *testing.T) {
		// Given: console mode with redis and telemetry disabled
		conf := &config.Config{Mode: config.ModeConsole}

		var out bytes.Buffer

		// When: a scripted game is played
		err := run(ctx, newTestLogger(), conf, strings.NewReader("0 0\n0 1\n1 0\n"), &out)

		// Then: the session ends with the bot's win
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(out.String(), "AI wins!\n"))
	})

	t.Run("Returns error when console input ends early", func(t *testing.T) {
		conf := &config.Config{Mode: config.ModeConsole}

		err := run(ctx, newTestLogger(), conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})

	t.Run("Returns error for an unknown mode", func(t *testing.T) {
		conf := &config.Config{Mode: "batch"}

		err := run(ctx, newTestLogger(), conf, strings.NewReader(""), io.Discard)

		require.ErrorIs(t, err, ErrUnknownMode)
	})

	t.Run("Server mode returns only after the port is released", func(t *testing.T) {
		// Given: a free port and server mode
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		require.NoError(t, err)
		port := strconv.Itoa(listener.Addr().(*net.TCPAddr).Port)
		require.NoError(t, listener.Close())

		conf := &config.Config{Mode: config.ModeServer, HTTPPort: port}

		serverCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- run(serverCtx, newTestLogger(), conf, strings.NewReader(""), io.Discard)
		}()

		require.Eventually(t, func() bool {
			conn, dialErr := net.Dial("tcp", "127.0.0.1:"+port)
			if dialErr != nil {
				return false
			}
			_ = conn.Close()
			return true
		}, 5*time.Second, 10*time.Millisecond)

		// When: the context is cancelled
		cancel()

		// Then: run returns cleanly and the port can be bound again at once
		select {
		case err = <-done:
			require.NoError(t, err)
		case <-time.After(10 * time.Second):
			t.Fatal("run did not return after cancellation")
		}

		rebound, err := net.Listen("tcp", ":"+port)
		require.NoError(t, err)
		require.NoError(t, rebound.Close())
	})

	t.Run("Returns error when redis is unreachable", func(t *testing.T) {
		// Given: redis enabled on a port nothing listens on
		conf := &config.Config{
			Mode: config.ModeServer,
			Redis: config.Redis{
				Enabled: true,
				Host:    "127.0.0.1",
				Port:    "1",
			},
		}

		// When: the application starts
		err := run(ctx, newTestLogger(), conf, strings.NewReader(""), io.Discard)

		// Then: the connection error is returned before any server starts
		require.ErrorContains(t, err, "could not connect to redis storage")
	})
}
