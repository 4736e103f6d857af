package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	"github.com/SscSPs/fx_deals_warehouse/internal/core/domain"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock DealService ---
type MockDealService struct {
	mock.Mock
}

func (m *MockDealService) ImportDeal(ctx context.Context, req dto.CreateDealRequest) (*domain.Deal, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) ImportDeals(ctx context.Context, reqs []dto.CreateDealRequest) []domain.DealImportResult {
	args := m.Called(ctx, reqs)
	return args.Get(0).([]domain.DealImportResult)
}

func (m *MockDealService) GetDealByID(ctx context.Context, dealID string) (*domain.Deal, error) {
	args := m.Called(ctx, dealID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Deal), args.Error(1)
}

func (m *MockDealService) ListDeals(ctx context.Context, params portssvc.ListDealsParams) ([]domain.Deal, int64, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]domain.Deal), args.Get(1).(int64), args.Error(2)
}

// Ensure mock implements the interface
var _ portssvc.DealSvcFacade = (*MockDealService)(nil)

// --- Test Suite ---
type DealHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockDealService *MockDealService
}

func (suite *DealHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockDealService = new(MockDealService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDealRoutes(v1, suite.mockDealService)
}

func (suite *DealHandlerTestSuite) performRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func sampleDomainDeal() *domain.Deal {
	return &domain.Deal{
		ID:           1,
		DealID:       "D1",
		FromCurrency: "USD",
		ToCurrency:   "EUR",
		Timestamp:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Amount:       decimal.RequireFromString("100.00"),
		CreatedAt:    time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func sampleBody() map[string]any {
	return map[string]any{
		"dealId":       "D1",
		"fromCurrency": "USD",
		"toCurrency":   "EUR",
		"timestamp":    "2024-01-01T10:00:00Z",
		"amount":       "100.00",
	}
}

// --- Import single ---

func (suite *DealHandlerTestSuite) TestImportDeal_Created() {
	deal := sampleDomainDeal()
	suite.mockDealService.On("ImportDeal", mock.Anything, mock.MatchedBy(func(req dto.CreateDealRequest) bool {
		return req.DealID == "D1" && req.FromCurrency == "USD" && req.ToCurrency == "EUR"
	})).Return(deal, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", sampleBody())

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("D1", resp.DealID)
	suite.Equal(int64(1), resp.ID)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestImportDeal_ZonelessTimestampAccepted() {
	deal := sampleDomainDeal()
	body := sampleBody()
	body["timestamp"] = "2024-01-01T10:00:00"

	suite.mockDealService.On("ImportDeal", mock.Anything, mock.MatchedBy(func(req dto.CreateDealRequest) bool {
		return req.Timestamp.Equal(time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC))
	})).Return(deal, nil).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", body)

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestImportDeal_Duplicate() {
	suite.mockDealService.On("ImportDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest")).
		Return(nil, apperrors.NewConflictError("deal with ID 'D1' already exists")).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", sampleBody())

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "already exists")
}

func (suite *DealHandlerTestSuite) TestImportDeal_BusinessRuleViolation() {
	suite.mockDealService.On("ImportDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest")).
		Return(nil, apperrors.NewValidationFailedError("invalid ISO currency code provided")).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", sampleBody())

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "invalid ISO currency code")
}

func (suite *DealHandlerTestSuite) TestImportDeal_FieldErrorsReportedTogether() {
	body := sampleBody()
	body["dealId"] = ""
	body["fromCurrency"] = "usd"

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", body)

	suite.Equal(http.StatusBadRequest, w.Code)

	var resp struct {
		Error       string            `json:"error"`
		FieldErrors map[string]string `json:"fieldErrors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Invalid input data", resp.Error)
	suite.Len(resp.FieldErrors, 2)
	suite.mockDealService.AssertNotCalled(suite.T(), "ImportDeal", mock.Anything, mock.Anything)
}

func (suite *DealHandlerTestSuite) TestImportDeal_UnexpectedErrorIsGeneric() {
	suite.mockDealService.On("ImportDeal", mock.Anything, mock.AnythingOfType("dto.CreateDealRequest")).
		Return(nil, apperrors.NewAppError(500, "pool exhausted", nil)).Once()

	w := suite.performRequest(http.MethodPost, "/api/v1/deals", sampleBody())

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "pool exhausted")
	suite.Contains(w.Body.String(), "Failed to import deal")
}

// --- Batch import ---

func (suite *DealHandlerTestSuite) TestImportDeals_MultiStatus() {
	deal := sampleDomainDeal()
	results := []domain.DealImportResult{
		domain.NewImportSuccess(deal),
		domain.NewImportFailure("D1", "deal with ID 'D1' already exists"),
		domain.NewImportFailure("D4", "invalid ISO currency code provided"),
	}
	suite.mockDealService.On("ImportDeals", mock.Anything, mock.MatchedBy(func(reqs []dto.CreateDealRequest) bool {
		return len(reqs) == 3
	})).Return(results).Once()

	batch := []map[string]any{sampleBody(), sampleBody(), sampleBody()}
	w := suite.performRequest(http.MethodPost, "/api/v1/deals/batch", batch)

	suite.Equal(http.StatusMultiStatus, w.Code)

	var resp dto.BatchImportDealsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.TotalReceived)
	suite.Equal(1, resp.SuccessCount)
	suite.Equal(2, resp.FailureCount)
	suite.Require().Len(resp.Results, 3)
	suite.True(resp.Results[0].Success)
	suite.False(resp.Results[1].Success)
	suite.False(resp.Results[2].Success)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestImportDeals_MalformedItemStillReachesService() {
	// A batch item failing field-shape rules is decoded and handed to the
	// service so it becomes that item's outcome, not a whole-batch rejection.
	results := []domain.DealImportResult{
		domain.NewImportFailure("", "invalid deal data: dealId failed on 'required'"),
	}
	suite.mockDealService.On("ImportDeals", mock.Anything, mock.MatchedBy(func(reqs []dto.CreateDealRequest) bool {
		return len(reqs) == 1 && reqs[0].DealID == ""
	})).Return(results).Once()

	body := sampleBody()
	body["dealId"] = ""
	w := suite.performRequest(http.MethodPost, "/api/v1/deals/batch", []map[string]any{body})

	suite.Equal(http.StatusMultiStatus, w.Code)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestImportDeals_EmptyBatchRejected() {
	w := suite.performRequest(http.MethodPost, "/api/v1/deals/batch", []map[string]any{})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockDealService.AssertNotCalled(suite.T(), "ImportDeals", mock.Anything, mock.Anything)
}

// --- Get / List ---

func (suite *DealHandlerTestSuite) TestGetDealByID_OK() {
	deal := sampleDomainDeal()
	suite.mockDealService.On("GetDealByID", mock.Anything, "D1").Return(deal, nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/deals/D1", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DealResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("D1", resp.DealID)
}

func (suite *DealHandlerTestSuite) TestGetDealByID_NotFound() {
	suite.mockDealService.On("GetDealByID", mock.Anything, "MISSING").
		Return(nil, apperrors.NewNotFoundError("deal with ID 'MISSING' not found")).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/deals/MISSING", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Contains(w.Body.String(), "not found")
}

func (suite *DealHandlerTestSuite) TestListDeals_DefaultsApplied() {
	deals := []domain.Deal{*sampleDomainDeal()}
	expectedParams := portssvc.ListDealsParams{Page: 0, Size: 20, SortBy: "createdAt", SortDir: "desc"}

	suite.mockDealService.On("ListDeals", mock.Anything, expectedParams).
		Return(deals, int64(41), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/deals", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDealsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(41), resp.TotalElements)
	suite.Equal(3, resp.TotalPages)
	suite.Len(resp.Items, 1)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestListDeals_PassesQueryParams() {
	expectedParams := portssvc.ListDealsParams{Page: 2, Size: 5, SortBy: "amount", SortDir: "asc"}

	suite.mockDealService.On("ListDeals", mock.Anything, expectedParams).
		Return([]domain.Deal{}, int64(12), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/deals?page=2&size=5&sortBy=amount&sortDir=asc", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDealsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(2, resp.Page)
	suite.Equal(5, resp.Size)
	suite.Equal(3, resp.TotalPages)
	suite.mockDealService.AssertExpectations(suite.T())
}

func (suite *DealHandlerTestSuite) TestListDeals_MetadataReflectsClampedParams() {
	// An oversized page size is clamped before the service call, and the
	// echoed metadata must report the size actually queried.
	expectedParams := portssvc.ListDealsParams{
		Page: 0, Size: portssvc.MaxPageSize, SortBy: "createdAt", SortDir: "desc",
	}

	suite.mockDealService.On("ListDeals", mock.Anything, expectedParams).
		Return([]domain.Deal{}, int64(500), nil).Once()

	w := suite.performRequest(http.MethodGet, "/api/v1/deals?page=-4&size=100000", nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListDealsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(0, resp.Page)
	suite.Equal(portssvc.MaxPageSize, resp.Size)
	suite.Equal(3, resp.TotalPages)
	suite.mockDealService.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestDealHandler(t *testing.T) {
	suite.Run(t, new(DealHandlerTestSuite))
}
