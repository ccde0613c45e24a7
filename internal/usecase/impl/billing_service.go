package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"rxsupply/config"
	deliverycontext "rxsupply/internal/delivery/context"
	"rxsupply/internal/domain/billing"
	"rxsupply/internal/domain/entity"
	domainerrors "rxsupply/internal/domain/errors"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/domain/service"
	"rxsupply/internal/usecase"
)

type billingService struct {
	invoiceRepo   repository.InvoiceRepository
	dispatcher    service.NotificationDispatcher
	paymentSvc    service.PaymentLinkService
	qrcodeSvc     service.QRCodeService
	logger        *slog.Logger
	reminderGrace time.Duration
	now           func() time.Time
}

// BillingServiceParams holds dependencies for BillingService, injected by Fx.
type BillingServiceParams struct {
	fx.In

	InvoiceRepo repository.InvoiceRepository
	Dispatcher  service.NotificationDispatcher
	PaymentSvc  service.PaymentLinkService
	QRCodeSvc   service.QRCodeService
	Logger      *slog.Logger
	Config      *config.Config
}

// NewBillingService creates a new billing service instance
func NewBillingService(params BillingServiceParams) usecase.BillingUsecase {
	grace := billing.DefaultReminderGrace
	if params.Config != nil && params.Config.Billing != nil && params.Config.Billing.ReminderGraceDays > 0 {
		grace = time.Duration(params.Config.Billing.ReminderGraceDays) * 24 * time.Hour
	}

	return &billingService{
		invoiceRepo:   params.InvoiceRepo,
		dispatcher:    params.Dispatcher,
		paymentSvc:    params.PaymentSvc,
		qrcodeSvc:     params.QRCodeSvc,
		logger:        params.Logger,
		reminderGrace: grace,
		now:           time.Now,
	}
}

// GetInvoice retrieves one invoice with derived fields
func (s *billingService) GetInvoice(ctx context.Context, id uuid.UUID) (*usecase.InvoiceView, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	return s.view(inv), nil
}

// ListInvoices retrieves invoices, optionally filtered by status
func (s *billingService) ListInvoices(ctx context.Context, status *entity.InvoiceStatus) ([]*usecase.InvoiceView, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx, repository.InvoiceFilter{Status: status})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	views := make([]*usecase.InvoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, s.view(inv))
	}

	return views, nil
}

// ApplyInvoiceAction runs one operator action through the lifecycle state
// machine. The status is persisted with a conditional update before any
// notification is emitted, so a customer is never notified about a state
// that was not recorded.
func (s *billingService) ApplyInvoiceAction(ctx context.Context, id uuid.UUID, action entity.InvoiceAction) (*usecase.InvoiceView, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	next, changed := billing.NextStatus(inv.Status, action)

	if changed {
		// Issue the payment link before the status flips to
		// payment_link_sent; a sent status without a link is a lie.
		if next == entity.InvoiceStatusPaymentLinkSent {
			if err := s.issuePaymentLink(ctx, inv); err != nil {
				return nil, err
			}
		}

		if err := s.invoiceRepo.UpdateStatusIfCurrent(ctx, inv.ID, inv.Status, next); err != nil {
			if errors.Is(err, repository.ErrInvoiceStatusConflict) {
				return nil, domainerrors.ErrInvoiceStateConflict
			}

			return nil, errors.Wrap(err, "failed to persist invoice status")
		}

		inv.Status = next
	}

	if err := s.notify(ctx, inv, action); err != nil {
		// The status change is already durable; surface the failed side
		// effect so the operator can re-trigger the notification.
		return nil, errors.Wrap(err, "failed to dispatch invoice notification")
	}

	return s.view(inv), nil
}

// PaymentLinkQR renders the invoice's payment link as a PNG QR code
func (s *billingService) PaymentLinkQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	inv, err := s.invoiceRepo.FindInvoiceByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrInvoiceNotFound) {
			return nil, domainerrors.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice")
	}

	if inv.PaymentLinkURL == "" {
		return nil, domainerrors.ErrPaymentLinkMissing
	}

	png, err := s.qrcodeSvc.GeneratePaymentQR(inv.PaymentLinkURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// issuePaymentLink asks the gateway for a link and records it on the invoice.
func (s *billingService) issuePaymentLink(ctx context.Context, inv *entity.Invoice) error {
	link, err := s.paymentSvc.CreatePaymentLink(ctx, inv)
	if err != nil {
		s.logger.Error("Payment gateway refused payment link",
			slog.String("invoice_number", inv.InvoiceNumber),
			slog.Any("error", err),
		)

		return domainerrors.ErrPaymentLinkUnavailable
	}

	if err := s.invoiceRepo.UpdatePaymentLink(ctx, inv.ID, link.URL); err != nil {
		return errors.Wrap(err, "failed to record payment link")
	}

	inv.PaymentLinkURL = link.URL

	return nil
}

// notify publishes the human-readable notification for the action.
func (s *billingService) notify(ctx context.Context, inv *entity.Invoice, action entity.InvoiceAction) error {
	msg := billing.ComposeActionMessage(inv, action)

	notification := &service.InvoiceNotification{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		InvoiceID:     inv.ID.String(),
		InvoiceNumber: inv.InvoiceNumber,
		Action:        string(action),
		Recipient:     msg.Recipient,
		Subject:       msg.Subject,
		Body:          msg.Body,
	}

	return s.dispatcher.DispatchInvoiceNotification(ctx, notification)
}

// view derives the non-persisted presentation fields.
func (s *billingService) view(inv *entity.Invoice) *usecase.InvoiceView {
	return &usecase.InvoiceView{
		Invoice:          inv,
		ReminderEligible: billing.ReminderEligible(inv, s.now(), s.reminderGrace),
	}
}
