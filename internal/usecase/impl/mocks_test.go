package impl

import (
	"context"

	"rxsupply/internal/domain/entity"
	"rxsupply/internal/domain/repository"
	"rxsupply/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// Hand-rolled testify mocks for the repository and service interfaces used
// by the use case tests.

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) ListActiveProducts(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Product), args.Error(1)
}

func (m *mockProductRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Product), args.Error(1)
}

func (m *mockProductRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.ProductSizeVariant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.ProductSizeVariant), args.Error(1)
}

type mockPricingRepository struct {
	mock.Mock
}

func (m *mockPricingRepository) ListRules(ctx context.Context) ([]*entity.GroupPricingRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.GroupPricingRule), args.Error(1)
}

type mockInvoiceRepository struct {
	mock.Mock
}

func (m *mockInvoiceRepository) FindInvoiceByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *mockInvoiceRepository) FindInvoiceByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Invoice), args.Error(1)
}

func (m *mockInvoiceRepository) ListInvoices(ctx context.Context, filter repository.InvoiceFilter) ([]*entity.Invoice, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Invoice), args.Error(1)
}

func (m *mockInvoiceRepository) UpdateStatusIfCurrent(ctx context.Context, id uuid.UUID, expected, next entity.InvoiceStatus) error {
	args := m.Called(ctx, id, expected, next)

	return args.Error(0)
}

func (m *mockInvoiceRepository) UpdatePaymentLink(ctx context.Context, id uuid.UUID, url string) error {
	args := m.Called(ctx, id, url)

	return args.Error(0)
}

type mockNotificationDispatcher struct {
	mock.Mock
}

func (m *mockNotificationDispatcher) DispatchInvoiceNotification(ctx context.Context, notification *service.InvoiceNotification) error {
	args := m.Called(ctx, notification)

	return args.Error(0)
}

func (m *mockNotificationDispatcher) Close() error {
	args := m.Called()

	return args.Error(0)
}

type mockPaymentLinkService struct {
	mock.Mock
}

func (m *mockPaymentLinkService) CreatePaymentLink(ctx context.Context, inv *entity.Invoice) (*service.PaymentLink, error) {
	args := m.Called(ctx, inv)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*service.PaymentLink), args.Error(1)
}

type mockQRCodeService struct {
	mock.Mock
}

func (m *mockQRCodeService) GeneratePaymentQR(url string) ([]byte, error) {
	args := m.Called(url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]byte), args.Error(1)
}
