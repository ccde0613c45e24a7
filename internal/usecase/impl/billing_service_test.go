package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"rxsupply/internal/domain/billing"
	"rxsupply/internal/domain/entity"
	domainerrors "rxsupply/internal/domain/errors"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestBillingService(invoiceRepo *mockInvoiceRepository, dispatcher *mockNotificationDispatcher, paymentSvc *mockPaymentLinkService, qrcodeSvc *mockQRCodeService) *billingService {
	return &billingService{
		invoiceRepo:   invoiceRepo,
		dispatcher:    dispatcher,
		paymentSvc:    paymentSvc,
		qrcodeSvc:     qrcodeSvc,
		logger:        slog.Default(),
		reminderGrace: billing.DefaultReminderGrace,
		now:           func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func pendingInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:            uuid.New(),
		InvoiceNumber: "INV-2026-0042",
		Status:        entity.InvoiceStatusPending,
		Amount:        100,
		TotalAmount:   100,
		DueDate:       time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		CustomerInfo: entity.CustomerInfo{
			Name:  "Lakeview Pharmacy",
			Email: "ap@lakeviewrx.com",
		},
	}
}

func TestBillingService_ApplyInvoiceAction_MarkPaid(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	svc := newTestBillingService(invoiceRepo, dispatcher, new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	invoiceRepo.On("UpdateStatusIfCurrent", ctx, inv.ID, entity.InvoiceStatusPending, entity.InvoiceStatusPaid).Return(nil)
	dispatcher.On("DispatchInvoiceNotification", ctx, mock.AnythingOfType("*service.InvoiceNotification")).Return(nil)

	view, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionMarkPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, view.Status)
	invoiceRepo.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestBillingService_ApplyInvoiceAction_PersistFailureDoesNotAdvanceStatus(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	svc := newTestBillingService(invoiceRepo, dispatcher, new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	invoiceRepo.On("UpdateStatusIfCurrent", ctx, inv.ID, entity.InvoiceStatusPending, entity.InvoiceStatusPaid).
		Return(errors.New("connection reset"))

	_, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionMarkPaid)
	require.Error(t, err)

	// The in-memory invoice must still show the old status, and no
	// notification may have been dispatched for the unpersisted change.
	assert.Equal(t, entity.InvoiceStatusPending, inv.Status)
	dispatcher.AssertNotCalled(t, "DispatchInvoiceNotification", mock.Anything, mock.Anything)
}

func TestBillingService_ApplyInvoiceAction_ConcurrentUpdateConflict(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	svc := newTestBillingService(invoiceRepo, dispatcher, new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	invoiceRepo.On("UpdateStatusIfCurrent", ctx, inv.ID, entity.InvoiceStatusPending, entity.InvoiceStatusPaid).
		Return(repository.ErrInvoiceStatusConflict)

	_, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionMarkPaid)
	assert.ErrorIs(t, err, domainerrors.ErrInvoiceStateConflict)
	dispatcher.AssertNotCalled(t, "DispatchInvoiceNotification", mock.Anything, mock.Anything)
}

func TestBillingService_ApplyInvoiceAction_SendIssuesPaymentLink(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	paymentSvc := new(mockPaymentLinkService)
	svc := newTestBillingService(invoiceRepo, dispatcher, paymentSvc, new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()
	inv.Status = entity.InvoiceStatusNeedsPaymentLink

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	paymentSvc.On("CreatePaymentLink", ctx, inv).
		Return(&service.PaymentLink{URL: "https://pay.example.com/l/abc123"}, nil)
	invoiceRepo.On("UpdatePaymentLink", ctx, inv.ID, "https://pay.example.com/l/abc123").Return(nil)
	invoiceRepo.On("UpdateStatusIfCurrent", ctx, inv.ID, entity.InvoiceStatusNeedsPaymentLink, entity.InvoiceStatusPaymentLinkSent).Return(nil)
	dispatcher.On("DispatchInvoiceNotification", ctx, mock.MatchedBy(func(n *service.InvoiceNotification) bool {
		return n.Recipient == "ap@lakeviewrx.com" && n.Action == string(entity.InvoiceActionSend)
	})).Return(nil)

	view, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionSend)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaymentLinkSent, view.Status)
	assert.Equal(t, "https://pay.example.com/l/abc123", view.PaymentLinkURL)
	invoiceRepo.AssertExpectations(t)
	paymentSvc.AssertExpectations(t)
}

func TestBillingService_ApplyInvoiceAction_GatewayFailureBlocksSend(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	paymentSvc := new(mockPaymentLinkService)
	svc := newTestBillingService(invoiceRepo, dispatcher, paymentSvc, new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()
	inv.Status = entity.InvoiceStatusNeedsPaymentLink

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	paymentSvc.On("CreatePaymentLink", ctx, inv).Return(nil, errors.New("gateway timeout"))

	_, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionSend)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentLinkUnavailable)
	assert.Equal(t, entity.InvoiceStatusNeedsPaymentLink, inv.Status)
	invoiceRepo.AssertNotCalled(t, "UpdateStatusIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "DispatchInvoiceNotification", mock.Anything, mock.Anything)
}

func TestBillingService_ApplyInvoiceAction_RemindIsStatusPreserving(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	svc := newTestBillingService(invoiceRepo, dispatcher, new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	dispatcher.On("DispatchInvoiceNotification", ctx, mock.MatchedBy(func(n *service.InvoiceNotification) bool {
		return n.Action == string(entity.InvoiceActionRemind) && n.Recipient == "ap@lakeviewrx.com"
	})).Return(nil)

	view, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionRemind)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPending, view.Status)
	invoiceRepo.AssertNotCalled(t, "UpdateStatusIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_ApplyInvoiceAction_TerminalStatusIsNoOp(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	dispatcher := new(mockNotificationDispatcher)
	svc := newTestBillingService(invoiceRepo, dispatcher, new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()
	inv.Status = entity.InvoiceStatusPaid

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	dispatcher.On("DispatchInvoiceNotification", ctx, mock.AnythingOfType("*service.InvoiceNotification")).Return(nil)

	view, err := svc.ApplyInvoiceAction(ctx, inv.ID, entity.InvoiceActionSend)
	require.NoError(t, err)
	assert.Equal(t, entity.InvoiceStatusPaid, view.Status)
	invoiceRepo.AssertNotCalled(t, "UpdateStatusIfCurrent", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBillingService_ApplyInvoiceAction_NotFound(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	svc := newTestBillingService(invoiceRepo, new(mockNotificationDispatcher), new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	id := uuid.New()

	invoiceRepo.On("FindInvoiceByID", ctx, id).Return(nil, repository.ErrInvoiceNotFound)

	_, err := svc.ApplyInvoiceAction(ctx, id, entity.InvoiceActionMarkPaid)
	assert.ErrorIs(t, err, domainerrors.ErrInvoiceNotFound)
}

func TestBillingService_GetInvoice_ReminderEligibility(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	svc := newTestBillingService(invoiceRepo, new(mockNotificationDispatcher), new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()
	// Due a month before the fixed "now", well past the grace window.
	inv.DueDate = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)

	view, err := svc.GetInvoice(ctx, inv.ID)
	require.NoError(t, err)
	assert.True(t, view.ReminderEligible)
}

func TestBillingService_ListInvoices_FilterPassedThrough(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	svc := newTestBillingService(invoiceRepo, new(mockNotificationDispatcher), new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	status := entity.InvoiceStatusOverdue

	invoiceRepo.On("ListInvoices", ctx, repository.InvoiceFilter{Status: &status}).
		Return([]*entity.Invoice{pendingInvoice()}, nil)

	views, err := svc.ListInvoices(ctx, &status)
	require.NoError(t, err)
	assert.Len(t, views, 1)
	invoiceRepo.AssertExpectations(t)
}

func TestBillingService_PaymentLinkQR(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	qrcodeSvc := new(mockQRCodeService)
	svc := newTestBillingService(invoiceRepo, new(mockNotificationDispatcher), new(mockPaymentLinkService), qrcodeSvc)

	ctx := context.Background()
	inv := pendingInvoice()
	inv.PaymentLinkURL = "https://pay.example.com/l/abc123"

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)
	qrcodeSvc.On("GeneratePaymentQR", inv.PaymentLinkURL).Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := svc.PaymentLinkQR(ctx, inv.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestBillingService_PaymentLinkQR_MissingLink(t *testing.T) {
	invoiceRepo := new(mockInvoiceRepository)
	svc := newTestBillingService(invoiceRepo, new(mockNotificationDispatcher), new(mockPaymentLinkService), new(mockQRCodeService))

	ctx := context.Background()
	inv := pendingInvoice()

	invoiceRepo.On("FindInvoiceByID", ctx, inv.ID).Return(inv, nil)

	_, err := svc.PaymentLinkQR(ctx, inv.ID)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentLinkMissing)
}
