package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"

	"insure-dw.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.User), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock QuoteRepository
type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) Create(ctx context.Context, quote *entities.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) GetByID(ctx context.Context, id uint) (*entities.Quote, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Quote), args.Error(1)
}

func (m *MockQuoteRepository) List(ctx context.Context, limit, offset int) ([]*entities.Quote, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Quote), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuoteRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Quote, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Quote), args.Error(1)
}

func (m *MockQuoteRepository) ListBindable(ctx context.Context) ([]*entities.Quote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Quote), args.Error(1)
}

func (m *MockQuoteRepository) SetBindTime(ctx context.Context, id uint, bindTime time.Time) error {
	args := m.Called(ctx, id, bindTime)
	return args.Error(0)
}

// Mock PolicyRepository
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) Create(ctx context.Context, policy *entities.Policy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

func (m *MockPolicyRepository) GetByID(ctx context.Context, id uint) (*entities.Policy, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Policy), args.Error(1)
}

func (m *MockPolicyRepository) GetByQuote(ctx context.Context, quoteID uint) (*entities.Policy, error) {
	args := m.Called(ctx, quoteID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Policy), args.Error(1)
}

func (m *MockPolicyRepository) List(ctx context.Context, limit, offset int) ([]*entities.Policy, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.Policy), args.Get(1).(int64), args.Error(2)
}

func (m *MockPolicyRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Policy, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Policy), args.Error(1)
}

func (m *MockPolicyRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock PaymentRepository
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *entities.PaymentTransaction) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uint) (*entities.PaymentTransaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) List(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*entities.PaymentTransaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockPaymentRepository) ListByPolicy(ctx context.Context, policyID uint) ([]*entities.PaymentTransaction, error) {
	args := m.Called(ctx, policyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) ListBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error) {
	args := m.Called(ctx, success)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) ListByType(ctx context.Context, paymentType entities.PaymentType) ([]*entities.PaymentTransaction, error) {
	args := m.Called(ctx, paymentType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PaymentTransaction), args.Error(1)
}

func (m *MockPaymentRepository) LatestSuccessTimeForUser(ctx context.Context, userID uint) (null.Time, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(null.Time), args.Error(1)
}

func (m *MockPaymentRepository) CountFailedForUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// Mock FeatureRepository
type MockFeatureRepository struct {
	mock.Mock
}

func (m *MockFeatureRepository) Upsert(ctx context.Context, feature *entities.Feature) error {
	args := m.Called(ctx, feature)
	return args.Error(0)
}

func (m *MockFeatureRepository) Get(ctx context.Context, featureType entities.FeatureType, entityID string) (*entities.Feature, error) {
	args := m.Called(ctx, featureType, entityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *MockFeatureRepository) EnsureMetadata(ctx context.Context, items []*entities.FeatureMetadata) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *MockFeatureRepository) ListMetadata(ctx context.Context) ([]*entities.FeatureMetadata, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FeatureMetadata), args.Error(1)
}

// Mock StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountUsersWithQuotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountUsersWithPolicies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountQuotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountBoundQuotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountBindableQuotes(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountPolicies(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountPoliciesWithPayments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountPayments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountSuccessfulPayments(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatsRepository) CountPaymentsByType(ctx context.Context, paymentType entities.PaymentType) (int64, int64, error) {
	args := m.Called(ctx, paymentType)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

// Mock QueryRepository
type MockQueryRepository struct {
	mock.Mock
}

func (m *MockQueryRepository) DescribeSchema(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockQueryRepository) ExecuteQuery(ctx context.Context, query string) (*entities.SQLResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.SQLResult), args.Error(1)
}

// Mock ChatClient
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) ValidateKey(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockChatClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
