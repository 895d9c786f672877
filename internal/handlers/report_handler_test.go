package handlers_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/handlers"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/report"
)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) LedgerReport(ctx context.Context) (*report.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Document), args.Error(1)
}

func (m *MockReportService) PayablesReport(ctx context.Context) (*report.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Document), args.Error(1)
}

func (m *MockReportService) ReceivablesReport(ctx context.Context) (*report.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Document), args.Error(1)
}

func (m *MockReportService) SalesReport(ctx context.Context) (*report.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Document), args.Error(1)
}

func (m *MockReportService) InventoryReport(ctx context.Context) (*report.Document, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*report.Document), args.Error(1)
}

func (m *MockReportService) Render(w io.Writer, doc *report.Document) error {
	args := m.Called(w, doc)
	if args.Error(0) == nil {
		_, _ = w.Write([]byte("%PDF-1.3 fake"))
	}
	return args.Error(0)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

type ReportHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockReportService
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockReportService)
	handler := handlers.NewReportHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/api/v1/reports/ledger", handler.LedgerReport)
}

func (suite *ReportHandlerTestSuite) TestLedgerReport_StreamsAttachment() {
	doc := &report.Document{Title: "CASH FLOW REPORT", FileStem: "ledger-report"}
	suite.mockService.On("LedgerReport", mock.Anything).Return(doc, nil).Once()
	suite.mockService.On("Render", mock.Anything, doc).Return(nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))

	disposition := w.Header().Get("Content-Disposition")
	wantPrefix := `attachment; filename="ledger-report-`
	suite.True(strings.HasPrefix(disposition, wantPrefix), "got %q", disposition)
	suite.Contains(disposition, time.Now().Format("2006-01-02")+`.pdf"`)
	suite.True(strings.HasPrefix(w.Body.String(), "%PDF"))
}

func (suite *ReportHandlerTestSuite) TestLedgerReport_StoreDownIs503BeforeAnyBytes() {
	suite.mockService.On("LedgerReport", mock.Anything).
		Return(nil, fmt.Errorf("%w: store down", apperrors.ErrUnavailable)).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.Equal("application/json; charset=utf-8", w.Header().Get("Content-Type"))
	suite.mockService.AssertNotCalled(suite.T(), "Render")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
