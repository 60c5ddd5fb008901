// internal/protocol/ble_connection.go
package protocol

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"tinygo.org/x/bluetooth"
)

// GATT profile of the target printer. The UUIDs are fixed by the
// hardware; changing them breaks compatibility.
var (
	printerServiceUUID        = bluetooth.New16BitUUID(0x18F0)
	printerCharacteristicUUID = bluetooth.New16BitUUID(0x2AF1)
)

// BLEConfig holds tuning for the host Bluetooth stack binding.
type BLEConfig struct {
	ScanTimeout    time.Duration
	ConnectTimeout time.Duration

	// PrinterAddress or PrinterName pin the selection to a known printer.
	// When unset, the first peripheral advertising the print service wins.
	PrinterAddress string
	PrinterName    string
}

// BLEConnection implements Transport on the host Bluetooth stack. One
// connection serves exactly one session and is discarded afterwards.
type BLEConnection struct {
	config  *BLEConfig
	adapter *bluetooth.Adapter
	logger  *zap.Logger
	mutex   sync.Mutex

	address        bluetooth.Address
	device         bluetooth.Device
	characteristic bluetooth.DeviceCharacteristic
	connected      bool
	resolved       bool
}

// NewBLEConnection creates a transport bound to the default adapter.
func NewBLEConnection(config *BLEConfig, logger *zap.Logger) *BLEConnection {
	return &BLEConnection{
		config:  config,
		adapter: bluetooth.DefaultAdapter,
		logger:  logger.With(zap.String("protocol", "ble")),
	}
}

// BLEFactory builds a fresh BLEConnection per print job.
type BLEFactory struct {
	config *BLEConfig
	logger *zap.Logger
}

// NewBLEFactory creates a transport factory for the configured printer.
func NewBLEFactory(config *BLEConfig, logger *zap.Logger) *BLEFactory {
	return &BLEFactory{config: config, logger: logger}
}

// NewTransport returns a fresh, unconnected transport.
func (f *BLEFactory) NewTransport() Transport {
	return NewBLEConnection(f.config, f.logger)
}

// Discover enables the adapter and scans for a peripheral advertising the
// print service. The scan ends on the first acceptable hit, on context
// cancellation, or when the scan window elapses.
func (bc *BLEConnection) Discover(ctx context.Context) (Peripheral, error) {
	if err := bc.adapter.Enable(); err != nil {
		if isPermissionError(err) {
			return Peripheral{}, ErrPermissionDenied
		}
		return Peripheral{}, fmt.Errorf("enable bluetooth adapter: %w", err)
	}

	scanCtx := ctx
	if bc.config.ScanTimeout > 0 {
		var cancel context.CancelFunc
		scanCtx, cancel = context.WithTimeout(ctx, bc.config.ScanTimeout)
		defer cancel()
	}

	type scanHit struct {
		address    bluetooth.Address
		peripheral Peripheral
	}
	found := make(chan scanHit, 1)

	go func() {
		<-scanCtx.Done()
		bc.adapter.StopScan()
	}()

	bc.logger.Info("Scanning for printer",
		zap.String("service_uuid", printerServiceUUID.String()),
	)

	err := bc.adapter.Scan(func(adapter *bluetooth.Adapter, result bluetooth.ScanResult) {
		if !result.HasServiceUUID(printerServiceUUID) {
			return
		}
		if !bc.matchesPinnedPrinter(result) {
			return
		}
		hit := scanHit{
			address: result.Address,
			peripheral: Peripheral{
				Address: result.Address.String(),
				Name:    result.LocalName(),
				RSSI:    result.RSSI,
			},
		}
		select {
		case found <- hit:
			adapter.StopScan()
		default:
		}
	})
	if err != nil {
		return Peripheral{}, fmt.Errorf("scan: %w", err)
	}

	select {
	case hit := <-found:
		bc.address = hit.address
		return hit.peripheral, nil
	default:
	}

	if errors.Is(ctx.Err(), context.Canceled) {
		return Peripheral{}, ErrSelectionCancelled
	}
	return Peripheral{}, fmt.Errorf("no printer advertising %s found", printerServiceUUID.String())
}

// matchesPinnedPrinter applies the optional address/name pin from config.
func (bc *BLEConnection) matchesPinnedPrinter(result bluetooth.ScanResult) bool {
	if bc.config.PrinterAddress != "" &&
		!strings.EqualFold(result.Address.String(), bc.config.PrinterAddress) {
		return false
	}
	if bc.config.PrinterName != "" && result.LocalName() != bc.config.PrinterName {
		return false
	}
	return true
}

// Connect establishes the GATT connection to the discovered peripheral.
func (bc *BLEConnection) Connect(ctx context.Context, peripheral Peripheral) error {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	params := bluetooth.ConnectionParams{}
	if bc.config.ConnectTimeout > 0 {
		params.ConnectionTimeout = bluetooth.NewDuration(bc.config.ConnectTimeout)
	}

	device, err := bc.adapter.Connect(bc.address, params)
	if err != nil {
		return fmt.Errorf("connect %s: %w", peripheral.Address, err)
	}

	bc.device = device
	bc.connected = true
	bc.logger.Info("Printer connected", zap.String("address", peripheral.Address))
	return nil
}

// ResolveCharacteristic fetches the print service and its writable
// characteristic by UUID.
func (bc *BLEConnection) ResolveCharacteristic(ctx context.Context) error {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	if !bc.connected {
		return fmt.Errorf("not connected")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	services, err := bc.device.DiscoverServices([]bluetooth.UUID{printerServiceUUID})
	if err != nil {
		return fmt.Errorf("discover print service: %w", err)
	}
	if len(services) == 0 {
		return fmt.Errorf("print service %s not offered", printerServiceUUID.String())
	}

	characteristics, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{printerCharacteristicUUID})
	if err != nil {
		return fmt.Errorf("discover print characteristic: %w", err)
	}
	if len(characteristics) == 0 {
		return fmt.Errorf("print characteristic %s not offered", printerCharacteristicUUID.String())
	}

	bc.characteristic = characteristics[0]
	bc.resolved = true
	return nil
}

// WriteChunk writes one chunk without response.
func (bc *BLEConnection) WriteChunk(ctx context.Context, chunk []byte) error {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	if !bc.resolved {
		return fmt.Errorf("print characteristic not resolved")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := bc.characteristic.WriteWithoutResponse(chunk); err != nil {
		return fmt.Errorf("write chunk: %w", err)
	}
	return nil
}

// Close disconnects from the peripheral.
func (bc *BLEConnection) Close() error {
	bc.mutex.Lock()
	defer bc.mutex.Unlock()

	if !bc.connected {
		return nil
	}
	bc.connected = false
	bc.resolved = false

	if err := bc.device.Disconnect(); err != nil {
		bc.logger.Warn("Printer disconnect failed", zap.Error(err))
		return err
	}
	return nil
}

// isPermissionError detects the platform denying Bluetooth access.
func isPermissionError(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "permission") || strings.Contains(msg, "not authorized")
}
