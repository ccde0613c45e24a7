package postgres

import (
	"context"

	"rxsupply/internal/domain/billing"
	"rxsupply/internal/domain/entity"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// invoiceRepository implements the repository.InvoiceRepository interface.
type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository is the constructor for invoiceRepository.
func NewInvoiceRepository(db *gorm.DB) repository.InvoiceRepository {
	return &invoiceRepository{
		db: db,
	}
}

// FindInvoiceByID retrieves an invoice by its unique ID.
func (repo *invoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by ID")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// FindInvoiceByNumber retrieves an invoice by its human-readable number.
func (repo *invoiceRepository) FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoiceM model.InvoiceModel

	if err := repo.db.WithContext(ctx).
		Where("invoice_number = ?", number).
		First(&invoiceM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrInvoiceNotFound
		}

		return nil, errors.Wrap(err, "failed to find invoice by number")
	}

	return toInvoiceDomain(&invoiceM), nil
}

// ListInvoices retrieves invoices matching the filter, newest first.
func (repo *invoiceRepository) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	query := repo.db.WithContext(ctx).Model(&model.InvoiceModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var invoiceModels []*model.InvoiceModel
	if err := query.
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list invoices")
	}

	invoices := make([]*entity.Invoice, 0, len(invoiceModels))
	for _, invoiceM := range invoiceModels {
		invoices = append(invoices, toInvoiceDomain(invoiceM))
	}

	return invoices, nil
}

// UpdateStatusIfCurrent atomically moves the invoice from expected to next
// status. The status predicate rides in the WHERE clause so two operators
// acting on the same invoice cannot both win.
func (repo *invoiceRepository) UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, expected, next entity.InvoiceStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Update("status", string(next))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update invoice status")
	}

	if result.RowsAffected == 0 {
		// Either the invoice is gone or its status moved under us.
		var count int64
		if err := repo.db.WithContext(ctx).
			Model(&model.InvoiceModel{}).
			Where("id = ?", id).
			Count(&count).Error; err != nil {
			return errors.Wrap(err, "failed to check invoice existence")
		}
		if count == 0 {
			return repository.ErrInvoiceNotFound
		}

		return repository.ErrInvoiceStatusConflict
	}

	return nil
}

// UpdatePaymentLink records the gateway payment link issued for the invoice.
func (repo *invoiceRepository) UpdatePaymentLink(ctx context.Context, id uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.InvoiceModel{}).
		Where("id = ?", id).
		Update("payment_link_url", url)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update payment link")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInvoiceNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toInvoiceDomain converts a GORM InvoiceModel to a domain Invoice entity.
// customer_info and items pass through the billing normalizers because older
// rows double-encoded them.
func toInvoiceDomain(data *model.InvoiceModel) *entity.Invoice {
	if data == nil {
		return nil
	}

	return &entity.Invoice{
		ID:             data.ID,
		InvoiceNumber:  data.InvoiceNumber,
		OrderID:        data.OrderID,
		CustomerID:     data.CustomerID,
		Status:         entity.InvoiceStatus(data.Status),
		Amount:         data.Amount,
		TaxAmount:      data.TaxAmount,
		TotalAmount:    data.TotalAmount,
		DueDate:        data.DueDate,
		PaymentMethod:  entity.PaymentMethod(data.PaymentMethod),
		PaymentLinkURL: data.PaymentLinkURL,
		CustomerInfo:   billing.NormalizeCustomerInfo(data.CustomerInfo),
		Items:          billing.NormalizeItems(data.Items),
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

