// internal/protocol/session_test.go
package protocol

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// mockTransport records the session's calls and fails on demand.
type mockTransport struct {
	peripheral  Peripheral
	discoverErr error
	connectErr  error
	resolveErr  error
	writeErr    error
	failOnChunk int // 1-based; 0 means never

	chunks [][]byte
	closed bool
}

func (m *mockTransport) Discover(ctx context.Context) (Peripheral, error) {
	if m.discoverErr != nil {
		return Peripheral{}, m.discoverErr
	}
	return m.peripheral, nil
}

func (m *mockTransport) Connect(ctx context.Context, peripheral Peripheral) error {
	return m.connectErr
}

func (m *mockTransport) ResolveCharacteristic(ctx context.Context) error {
	return m.resolveErr
}

func (m *mockTransport) WriteChunk(ctx context.Context, chunk []byte) error {
	if m.failOnChunk > 0 && len(m.chunks)+1 == m.failOnChunk {
		return m.writeErr
	}
	copied := make([]byte, len(chunk))
	copy(copied, chunk)
	m.chunks = append(m.chunks, copied)
	return nil
}

func (m *mockTransport) Close() error {
	m.closed = true
	return nil
}

func TestChunksFixedSizes(t *testing.T) {
	payload := bytes.Repeat([]byte{0x41}, 250)

	chunks := Chunks(payload, ChunkSize)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 100)
	assert.Len(t, chunks[1], 100)
	assert.Len(t, chunks[2], 50)
}

func TestChunksRoundTrip(t *testing.T) {
	for _, size := range []int{1, 99, 100, 101, 250, 1000, 1001} {
		payload := make([]byte, size)
		for i := range payload {
			payload[i] = byte(i)
		}

		chunks := Chunks(payload, ChunkSize)

		expected := (size + ChunkSize - 1) / ChunkSize
		assert.Len(t, chunks, expected, "size %d", size)
		assert.Equal(t, payload, bytes.Join(chunks, nil), "size %d", size)
	}
}

func TestChunksEmptyPayload(t *testing.T) {
	assert.Empty(t, Chunks(nil, ChunkSize))
	assert.Empty(t, Chunks([]byte{}, ChunkSize))
}

func TestSessionStreamsSequentially(t *testing.T) {
	transport := &mockTransport{peripheral: Peripheral{Address: "AA:BB:CC:DD:EE:FF", Name: "RPP02N"}}
	session := NewSession(transport, zap.NewNop())

	payload := bytes.Repeat([]byte{0x2A}, 250)
	err := session.Run(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, StateCompleted, session.State())
	assert.Equal(t, payload, bytes.Join(transport.chunks, nil))
	assert.Len(t, transport.chunks, 3)
	assert.True(t, transport.closed)
}

func TestSessionSelectionCancelledPassesThrough(t *testing.T) {
	transport := &mockTransport{discoverErr: ErrSelectionCancelled}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(context.Background(), []byte("doc"))

	assert.ErrorIs(t, err, ErrSelectionCancelled)
	assert.Equal(t, StateFailed, session.State())
	assert.True(t, transport.closed)
}

func TestSessionPermissionDeniedPassesThrough(t *testing.T) {
	transport := &mockTransport{discoverErr: ErrPermissionDenied}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(context.Background(), []byte("doc"))

	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Equal(t, StateFailed, session.State())
}

func TestSessionConnectFaultCarriesStage(t *testing.T) {
	transport := &mockTransport{connectErr: fmt.Errorf("link loss")}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(context.Background(), []byte("doc"))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, StateConnecting, transportErr.Stage)
	assert.Equal(t, StateFailed, session.State())
}

func TestSessionResolveFaultCarriesStage(t *testing.T) {
	transport := &mockTransport{resolveErr: fmt.Errorf("service missing")}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(context.Background(), []byte("doc"))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, StateResolving, transportErr.Stage)
}

func TestSessionWriteFaultStopsStreaming(t *testing.T) {
	transport := &mockTransport{
		writeErr:    errors.New("gatt write rejected"),
		failOnChunk: 2,
	}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(context.Background(), bytes.Repeat([]byte{0x01}, 250))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, StateStreaming, transportErr.Stage)
	// The first chunk went out; nothing after the fault did.
	assert.Len(t, transport.chunks, 1)
}

func TestSessionAbandonedMidStream(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	transport := &mockTransport{}
	session := NewSession(transport, zap.NewNop())

	err := session.Run(ctx, bytes.Repeat([]byte{0x01}, 10))

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Empty(t, transport.chunks)
}
