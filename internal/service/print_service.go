// internal/service/print_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arifrahmanandika/kangserpis/internal/model"
	"github.com/arifrahmanandika/kangserpis/internal/protocol"
	"github.com/arifrahmanandika/kangserpis/internal/receipt"
	"github.com/arifrahmanandika/kangserpis/internal/repository"
	"github.com/arifrahmanandika/kangserpis/internal/utils"
)

// PrintKind identifies the document type of a print job.
type PrintKind string

const (
	KindIntakeSlip   PrintKind = "intake_slip"
	KindSaleReceipt  PrintKind = "sale_receipt"
	KindPeriodReport PrintKind = "period_report"
)

// PrintStatus is the terminal status of a print job.
type PrintStatus string

const (
	PrintSucceeded        PrintStatus = "succeeded"
	PrintCancelled        PrintStatus = "cancelled"
	PrintPermissionDenied PrintStatus = "permission_denied"
	PrintTransportFailed  PrintStatus = "transport_failed"
)

// PrintOutcome describes how a print job ended. A cancelled or failed
// delivery is an outcome, not an error: the document composed fine and
// the caller decides whether to retry with a fresh job.
type PrintOutcome struct {
	JobID  string      `json:"job_id"`
	Kind   PrintKind   `json:"kind"`
	Status PrintStatus `json:"status"`
	Detail string      `json:"detail,omitempty"`
}

// Succeeded reports whether the document reached the printer.
func (o *PrintOutcome) Succeeded() bool {
	return o.Status == PrintSucceeded
}

// Notifier receives operator-facing notices about finished print jobs.
type Notifier interface {
	Notify(title, description, severity string)
}

// PrintService composes receipt documents and streams them to the
// thermal printer over a fresh transport session per job.
type PrintService struct {
	settingsRepo repository.SettingsRepository
	txRepo       repository.TransactionRepository
	reports      *ReportService
	factory      protocol.TransportFactory
	notifier     Notifier
	logger       *zap.Logger
}

// NewPrintService creates a new print service.
func NewPrintService(
	settingsRepo repository.SettingsRepository,
	txRepo repository.TransactionRepository,
	reports *ReportService,
	factory protocol.TransportFactory,
	notifier Notifier,
	logger *zap.Logger,
) *PrintService {
	return &PrintService{
		settingsRepo: settingsRepo,
		txRepo:       txRepo,
		reports:      reports,
		factory:      factory,
		notifier:     notifier,
		logger:       logger,
	}
}

// PrintIntakeSlip prints a customer hand-in slip for a repair intake.
func (s *PrintService) PrintIntakeSlip(ctx context.Context, slip *model.IntakeSlip) (*PrintOutcome, error) {
	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	document := receipt.ComposeIntakeSlip(slip, profile)
	return s.deliver(ctx, KindIntakeSlip, []byte(document))
}

// PrintSaleReceipt prints the receipt for a completed transaction.
func (s *PrintService) PrintSaleReceipt(ctx context.Context, transactionID string) (*PrintOutcome, error) {
	sale, err := s.txRepo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if len(sale.Services) == 0 {
		return nil, fmt.Errorf("transaction %s has no service lines", transactionID)
	}

	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	document := receipt.ComposeSaleReceipt(sale, profile)
	return s.deliver(ctx, KindSaleReceipt, []byte(document))
}

// PrintPeriodReport aggregates the period and prints the sales report.
// An empty period still prints, with zero totals and no detail section.
func (s *PrintService) PrintPeriodReport(ctx context.Context, query model.ReportQuery) (*PrintOutcome, error) {
	result, err := s.reports.GenerateReport(ctx, query)
	if err != nil {
		return nil, err
	}

	profile, err := s.settingsRepo.GetProfile(ctx)
	if err != nil {
		return nil, err
	}

	document := receipt.ComposePeriodReport(result, query, profile)
	return s.deliver(ctx, KindPeriodReport, []byte(document))
}

// deliver runs one transport session for the document and maps the
// session error into a job outcome.
func (s *PrintService) deliver(ctx context.Context, kind PrintKind, document []byte) (*PrintOutcome, error) {
	jobID := uuid.New().String()

	opLogger := utils.NewOperationLogger(s.logger, string(kind), jobID)
	opLogger.Start(zap.Int("document_bytes", len(document)))

	session := protocol.NewSession(s.factory.NewTransport(), s.logger)
	err := session.Run(ctx, document)

	outcome := &PrintOutcome{JobID: jobID, Kind: kind, Status: PrintSucceeded}

	switch {
	case err == nil:
		opLogger.Success()
		s.notify("Struk tercetak", fmt.Sprintf("Dokumen %s berhasil dicetak", kind), "info")

	case errors.Is(err, protocol.ErrSelectionCancelled):
		outcome.Status = PrintCancelled
		outcome.Detail = "printer selection cancelled"
		opLogger.Error(err)
		s.notify("Cetak dibatalkan", "Pemilihan printer dibatalkan", "warning")

	case errors.Is(err, protocol.ErrPermissionDenied):
		outcome.Status = PrintPermissionDenied
		outcome.Detail = "bluetooth permission denied"
		opLogger.Error(err)
		s.notify("Cetak gagal", "Izin Bluetooth ditolak", "error")

	default:
		outcome.Status = PrintTransportFailed
		outcome.Detail = err.Error()
		var transportErr *protocol.TransportError
		if errors.As(err, &transportErr) {
			outcome.Detail = fmt.Sprintf("%s stage: %v", transportErr.Stage, transportErr.Err)
		}
		opLogger.Error(err)
		s.notify("Cetak gagal", "Printer tidak dapat dihubungi", "error")
	}

	return outcome, nil
}

func (s *PrintService) notify(title, description, severity string) {
	if s.notifier != nil {
		s.notifier.Notify(title, description, severity)
	}
}
