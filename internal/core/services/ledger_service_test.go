package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/core/services"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// MockLedgerRepository is a mock type for the LedgerRepository interface
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) CreateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerRepository) FindEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

type LedgerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLedgerRepository
	service  portssvc.LedgerSvcFacade
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockRepo)
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_Success() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:        "credit",
		Amount:      decimal.RequireFromString("150.75"),
		Description: "Invoice payment",
	}

	suite.mockRepo.On("CreateEntry", ctx, mock.AnythingOfType("domain.LedgerEntry")).
		Return(&domain.LedgerEntry{
			EntryID:     "64f1c0ffee0000c0ffee0001",
			Kind:        domain.Credit,
			Amount:      req.Amount,
			Description: req.Description,
			Timestamp:   time.Now(),
		}, nil).Once()

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(domain.Credit, entry.Kind)
	suite.True(entry.Amount.Equal(req.Amount))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_StampsTimestamp() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:        "debit",
		Amount:      decimal.RequireFromString("10.00"),
		Description: "Office supplies",
	}

	suite.mockRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return !e.Timestamp.IsZero() && time.Since(e.Timestamp) < time.Second
	})).Return(&domain.LedgerEntry{Kind: domain.Debit, Amount: req.Amount, Timestamp: time.Now()}, nil).Once()

	_, err := suite.service.CreateEntry(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RejectsZeroAmount() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:        "credit",
		Amount:      decimal.Zero,
		Description: "Nothing",
	}

	entry, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *LedgerServiceTestSuite) TestCreateEntry_RejectsNegativeAmount() {
	ctx := context.Background()
	req := dto.CreateLedgerEntryRequest{
		Kind:        "debit",
		Amount:      decimal.RequireFromString("-5.00"),
		Description: "Bad",
	}

	_, err := suite.service.CreateEntry(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestSummary_CreditsMinusDebits() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{Kind: domain.Credit, Amount: decimal.RequireFromString("100.00")},
		{Kind: domain.Debit, Amount: decimal.RequireFromString("40.00")},
	}
	suite.mockRepo.On("FindEntries", ctx).Return(entries, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal("100.00", summary.TotalCredit.StringFixed(2))
	suite.Equal("40.00", summary.TotalDebit.StringFixed(2))
	suite.Equal("60.00", summary.Balance.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestSummary_EmptyLedgerIsZero() {
	ctx := context.Background()
	suite.mockRepo.On("FindEntries", ctx).Return([]domain.LedgerEntry{}, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.True(summary.TotalCredit.IsZero())
	suite.True(summary.TotalDebit.IsZero())
	suite.True(summary.Balance.IsZero())
}

func (suite *LedgerServiceTestSuite) TestSummary_NegativeBalance() {
	ctx := context.Background()
	entries := []domain.LedgerEntry{
		{Kind: domain.Credit, Amount: decimal.RequireFromString("10.00")},
		{Kind: domain.Debit, Amount: decimal.RequireFromString("25.50")},
	}
	suite.mockRepo.On("FindEntries", ctx).Return(entries, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal("-15.50", summary.Balance.StringFixed(2))
}

func (suite *LedgerServiceTestSuite) TestSummary_NoFloatDrift() {
	ctx := context.Background()
	// Classic binary-float trap: 0.1 + 0.2. Decimal arithmetic must keep it exact.
	entries := []domain.LedgerEntry{
		{Kind: domain.Credit, Amount: decimal.RequireFromString("0.1")},
		{Kind: domain.Credit, Amount: decimal.RequireFromString("0.2")},
	}
	suite.mockRepo.On("FindEntries", ctx).Return(entries, nil).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().NoError(err)
	suite.Equal("0.30", summary.TotalCredit.StringFixed(2))
	suite.Equal("0.30", summary.Balance.StringFixed(2))
}

func (suite *LedgerServiceTestSuite) TestSummary_RepoErrorPassesThrough() {
	ctx := context.Background()
	suite.mockRepo.On("FindEntries", ctx).
		Return(nil, fmt.Errorf("%w: store down", apperrors.ErrUnavailable)).Once()

	summary, err := suite.service.Summary(ctx)

	suite.Require().Error(err)
	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestAggregateEntries_UnknownKindCountsAsDebit(t *testing.T) {
	// A document with an off-enum kind (written out-of-band) must weigh on
	// the debit side rather than quietly inflating the balance.
	entries := []domain.LedgerEntry{
		{Kind: domain.Credit, Amount: decimal.RequireFromString("5.00")},
		{Kind: domain.EntryKind("transfer"), Amount: decimal.RequireFromString("99.00")},
	}

	summary := services.AggregateEntries(entries)

	if got := summary.TotalDebit.StringFixed(2); got != "99.00" {
		t.Fatalf("expected totalDebit 99.00, got %s", got)
	}
	if got := summary.Balance.StringFixed(2); got != "-94.00" {
		t.Fatalf("expected balance -94.00, got %s", got)
	}
}
