// internal/protocol/session.go
package protocol

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ChunkSize is the per-write payload limit of the printer link.
const ChunkSize = 100

// Session drives one composed document through a Transport. Exactly one
// session exists per print request; every print performs discovery and
// connection from scratch. No retry or reconnection happens on failure.
type Session struct {
	transport Transport
	logger    *zap.Logger
	state     SessionState
}

// NewSession creates a session around a fresh transport.
func NewSession(transport Transport, logger *zap.Logger) *Session {
	return &Session{
		transport: transport,
		logger:    logger.With(zap.String("component", "ble-session")),
		state:     StateIdle,
	}
}

// State returns the current session state.
func (s *Session) State() SessionState {
	return s.state
}

// Run streams the payload to the printer: discover, connect, resolve the
// characteristic, then write sequential chunks, each awaited before the
// next. Success means the platform accepted every chunk write; the
// printer offers no application-level acknowledgement.
func (s *Session) Run(ctx context.Context, payload []byte) error {
	defer s.transport.Close()

	s.transition(StateDiscovering)
	peripheral, err := s.transport.Discover(ctx)
	if err != nil {
		return s.fail(err)
	}
	s.logger.Info("Printer selected",
		zap.String("address", peripheral.Address),
		zap.String("name", peripheral.Name),
	)

	s.transition(StateConnecting)
	if err := s.transport.Connect(ctx, peripheral); err != nil {
		return s.fail(err)
	}

	s.transition(StateResolving)
	if err := s.transport.ResolveCharacteristic(ctx); err != nil {
		return s.fail(err)
	}

	s.transition(StateStreaming)
	chunks := Chunks(payload, ChunkSize)
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return s.fail(err)
		}
		if err := s.transport.WriteChunk(ctx, chunk); err != nil {
			return s.fail(fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err))
		}
	}

	s.state = StateCompleted
	s.logger.Info("Document streamed",
		zap.Int("bytes", len(payload)),
		zap.Int("chunks", len(chunks)),
	)
	return nil
}

// transition advances the state machine.
func (s *Session) transition(next SessionState) {
	s.logger.Debug("Session state change",
		zap.String("from", string(s.state)),
		zap.String("to", string(next)),
	)
	s.state = next
}

// fail records the terminal state. The cancellation and permission
// sentinels pass through unchanged; anything else is wrapped with the
// stage it failed in.
func (s *Session) fail(err error) error {
	stage := s.state
	s.state = StateFailed

	if errors.Is(err, ErrSelectionCancelled) || errors.Is(err, ErrPermissionDenied) {
		return err
	}
	return &TransportError{Stage: stage, Err: err}
}

// Chunks splits data into fixed-size pieces. Concatenating the result in
// order reproduces the original byte sequence exactly.
func Chunks(data []byte, size int) [][]byte {
	if size <= 0 || len(data) == 0 {
		return nil
	}
	chunks := make([][]byte, 0, (len(data)+size-1)/size)
	for start := 0; start < len(data); start += size {
		end := start + size
		if end > len(data) {
			end = len(data)
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}
