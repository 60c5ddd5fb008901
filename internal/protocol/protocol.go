// internal/protocol/protocol.go
package protocol

import (
	"context"
	"errors"
	"fmt"
)

// Peripheral describes a discovered BLE printer.
type Peripheral struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
	RSSI    int16  `json:"rssi,omitempty"`
}

// Transport is the BLE capability a Session drives through one print job.
// Production implementations bind to the host Bluetooth stack; tests
// inject a mock.
type Transport interface {
	// Discover scans for a printer advertising the print service and
	// returns the selected peripheral. A context cancelled while no
	// peripheral has been selected is reported as ErrSelectionCancelled.
	Discover(ctx context.Context) (Peripheral, error)

	// Connect establishes the GATT-level connection.
	Connect(ctx context.Context, peripheral Peripheral) error

	// ResolveCharacteristic fetches the print service and its writable
	// characteristic by their fixed UUIDs. Failure here is a protocol
	// mismatch fatal to the session.
	ResolveCharacteristic(ctx context.Context) error

	// WriteChunk writes one chunk without response and returns once the
	// platform has accepted the write.
	WriteChunk(ctx context.Context, chunk []byte) error

	// Close releases the connection.
	Close() error
}

// TransportFactory hands out a fresh Transport per print job. Sessions are
// never pooled or reused across requests.
type TransportFactory interface {
	NewTransport() Transport
}

// SessionState is the lifecycle of one transport session.
type SessionState string

const (
	StateIdle        SessionState = "idle"
	StateDiscovering SessionState = "discovering"
	StateConnecting  SessionState = "connecting"
	StateResolving   SessionState = "resolving_characteristic"
	StateStreaming   SessionState = "streaming"
	StateCompleted   SessionState = "completed"
	StateFailed      SessionState = "failed"
)

var (
	// ErrSelectionCancelled marks the user declining the printer pick.
	// It is an expected outcome, not a fault.
	ErrSelectionCancelled = errors.New("printer selection cancelled")

	// ErrPermissionDenied marks the platform refusing Bluetooth access.
	ErrPermissionDenied = errors.New("bluetooth access denied")
)

// TransportError wraps any other discovery, connect or write fault with
// the session stage it occurred in.
type TransportError struct {
	Stage SessionState
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failed while %s: %v", e.Stage, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
