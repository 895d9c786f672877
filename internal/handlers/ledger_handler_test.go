package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/dto"
	"github.com/gestorpme/gestor_backend/internal/handlers"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerService) Summary(ctx context.Context) (*domain.LedgerSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerSummary), args.Error(1)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

type LedgerHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockLedgerService
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockLedgerService)
	handler := handlers.NewLedgerHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/api/v1/ledger", handler.CreateEntry)
	suite.router.GET("/api/v1/ledger", handler.ListEntries)
	suite.router.GET("/api/v1/ledger/summary", handler.Summary)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_Created() {
	suite.mockService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateLedgerEntryRequest")).
		Return(&domain.LedgerEntry{
			EntryID:     "64f1c0ffee0000c0ffee0001",
			Kind:        domain.Credit,
			Amount:      decimal.RequireFromString("99.90"),
			Description: "Sale",
		}, nil).Once()

	body := `{"kind":"credit","amount":"99.90","description":"Sale"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LedgerEntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("credit", resp.Kind)
	suite.Equal("99.90", resp.Amount)
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_BadKindIs400() {
	body := `{"kind":"transfer","amount":"10.00","description":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateEntry")
}

func (suite *LedgerHandlerTestSuite) TestCreateEntry_ValidationErrorIs400() {
	suite.mockService.On("CreateEntry", mock.Anything, mock.AnythingOfType("dto.CreateLedgerEntryRequest")).
		Return(nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)).Once()

	body := `{"kind":"debit","amount":"-1.00","description":"x"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestListEntries_StoreDownIs503() {
	suite.mockService.On("ListEntries", mock.Anything).
		Return(nil, fmt.Errorf("%w: document store connection string not configured", apperrors.ErrUnavailable)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	var resp handlers.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Error)
}

func (suite *LedgerHandlerTestSuite) TestSummary_OK() {
	suite.mockService.On("Summary", mock.Anything).
		Return(&domain.LedgerSummary{
			TotalCredit: decimal.RequireFromString("100.00"),
			TotalDebit:  decimal.RequireFromString("40.00"),
			Balance:     decimal.RequireFromString("60.00"),
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ledger/summary", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LedgerSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("60.00", resp.Balance)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
