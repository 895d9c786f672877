package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/core/services"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// MockInventoryRepository is a mock type for the InventoryRepository interface
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) CreateLot(ctx context.Context, lot domain.InventoryLot) (*domain.InventoryLot, error) {
	args := m.Called(ctx, lot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryLot), args.Error(1)
}

func (m *MockInventoryRepository) FindLots(ctx context.Context) ([]domain.InventoryLot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryLot), args.Error(1)
}

func (m *MockInventoryRepository) CountLots(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type InventoryServiceTestSuite struct {
	suite.Suite
	mockRepo *MockInventoryRepository
	service  portssvc.InventorySvcFacade
}

func (suite *InventoryServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockInventoryRepository)
	suite.service = services.NewInventoryService(suite.mockRepo)
}

func (suite *InventoryServiceTestSuite) TestCreateLot_ComputesTotal() {
	ctx := context.Background()
	req := dto.CreateInventoryLotRequest{
		Product:   "Cabo HDMI",
		Quantity:  12,
		UnitPrice: decimal.RequireFromString("19.90"),
	}

	suite.mockRepo.On("CreateLot", ctx, mock.MatchedBy(func(l domain.InventoryLot) bool {
		return l.Total.Equal(decimal.RequireFromString("238.80"))
	})).Return(&domain.InventoryLot{LotID: "l1", Total: decimal.RequireFromString("238.80")}, nil).Once()

	lot, err := suite.service.CreateLot(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("238.80", lot.Total.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateLot_SmallLotTotal() {
	ctx := context.Background()
	req := dto.CreateInventoryLotRequest{
		Product:   "Adaptador USB",
		Quantity:  5,
		UnitPrice: decimal.RequireFromString("2.50"),
	}

	suite.mockRepo.On("CreateLot", ctx, mock.MatchedBy(func(l domain.InventoryLot) bool {
		return l.Total.Equal(decimal.RequireFromString("12.50"))
	})).Return(&domain.InventoryLot{LotID: "l3", Total: decimal.RequireFromString("12.50")}, nil).Once()

	lot, err := suite.service.CreateLot(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("12.50", lot.Total.StringFixed(2))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateLot_ZeroQuantityHasZeroTotal() {
	ctx := context.Background()
	req := dto.CreateInventoryLotRequest{
		Product:   "Mouse",
		Quantity:  0,
		UnitPrice: decimal.RequireFromString("45.00"),
	}

	suite.mockRepo.On("CreateLot", ctx, mock.MatchedBy(func(l domain.InventoryLot) bool {
		return l.Total.IsZero()
	})).Return(&domain.InventoryLot{LotID: "l2"}, nil).Once()

	_, err := suite.service.CreateLot(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *InventoryServiceTestSuite) TestCreateLot_RejectsNegativeUnitPrice() {
	ctx := context.Background()
	req := dto.CreateInventoryLotRequest{
		Product:   "Teclado",
		Quantity:  1,
		UnitPrice: decimal.RequireFromString("-1.00"),
	}

	lot, err := suite.service.CreateLot(ctx, req)

	suite.Require().Error(err)
	suite.Nil(lot)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateLot")
}

func TestInventoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InventoryServiceTestSuite))
}
