package services_test

import (
	"context"
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

// MockBillRepository is a mock type for the BillRepository interface
type MockBillRepository struct {
	mock.Mock
}

func (m *MockBillRepository) CreateBill(ctx context.Context, bill domain.Bill) (*domain.Bill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}

func (m *MockBillRepository) FindBills(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bill), args.Error(1)
}

type BillServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBillRepository
	service  portssvc.BillSvcFacade
}

func (suite *BillServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBillRepository)
	suite.service = services.NewBillService(suite.mockRepo, domain.Payable)
}

func (suite *BillServiceTestSuite) TestCreateBill_StartsPending() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		Description: "Office rent",
		Amount:      decimal.RequireFromString("1200.00"),
		DueDate:     "2026-09-10",
	}

	suite.mockRepo.On("CreateBill", ctx, mock.MatchedBy(func(b domain.Bill) bool {
		return b.Status == domain.StatusPending &&
			b.DueDate.Year() == 2026 && b.DueDate.Month() == time.September && b.DueDate.Day() == 10
	})).Return(&domain.Bill{
		BillID:      "64f1c0ffee0000c0ffee0002",
		Description: req.Description,
		Amount:      req.Amount,
		Status:      domain.StatusPending,
	}, nil).Once()

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, bill.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsBadDueDate() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		Description: "Bad date",
		Amount:      decimal.RequireFromString("10.00"),
		DueDate:     "10/09/2026",
	}

	bill, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.Nil(bill)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateBill")
}

func (suite *BillServiceTestSuite) TestCreateBill_RejectsNonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateBillRequest{
		Description: "Zero",
		Amount:      decimal.Zero,
		DueDate:     "2026-09-10",
	}

	_, err := suite.service.CreateBill(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *BillServiceTestSuite) TestListBills_PassesThrough() {
	ctx := context.Background()
	bills := []domain.Bill{
		{BillID: "a", Description: "First", Status: domain.StatusPending},
		{BillID: "b", Description: "Second", Status: domain.StatusSettled},
	}
	suite.mockRepo.On("FindBills", ctx).Return(bills, nil).Once()

	got, err := suite.service.ListBills(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 2)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestBillServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BillServiceTestSuite))
}
