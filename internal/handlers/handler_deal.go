package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/fx_deals_warehouse/internal/apperrors"
	portssvc "github.com/SscSPs/fx_deals_warehouse/internal/core/ports/services"
	"github.com/SscSPs/fx_deals_warehouse/internal/dto"
	"github.com/SscSPs/fx_deals_warehouse/internal/platform/logging"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// dealHandler handles HTTP requests related to FX deals.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(ds portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{
		dealService: ds,
	}
}

// RegisterDealRoutes registers all deal-related routes.
func RegisterDealRoutes(rg *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := newDealHandler(dealService)

	deals := rg.Group("/deals")
	{
		deals.POST("", h.importDeal)
		deals.POST("/batch", h.importDeals)
		deals.GET("", h.listDeals)
		deals.GET("/:dealId", h.getDealByID)
	}
}

// importDeal godoc
// @Summary Import a single FX deal
// @Description Validates and persists one FX deal. Duplicate deal IDs are rejected.
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.CreateDealRequest true "Deal details"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} map[string]string "Invalid deal data"
// @Failure 409 {object} map[string]string "Deal ID already exists"
// @Failure 500 {object} map[string]string "Failed to import deal"
// @Router /deals [post]
func (h *dealHandler) importDeal(c *gin.Context) {
	logger := logging.FromCtx(c.Request.Context())
	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			logger.Warn("Field validation failed for ImportDeal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "Invalid input data",
				"fieldErrors": fieldErrorMap(validationErrs),
			})
			return
		}
		logger.Warn("Failed to bind JSON for ImportDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("deal_id", req.DealID))
	logger.Info("Received request to import deal")

	deal, err := h.dealService.ImportDeal(c.Request.Context(), req)
	if err != nil {
		respondWithDealError(c, logger, err, "Failed to import deal")
		return
	}

	logger.Info("Deal imported successfully", slog.Int64("id", deal.ID))
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// importDeals godoc
// @Summary Batch import FX deals
// @Description Imports multiple FX deals. Each deal is processed independently; successful deals are persisted even if others fail (no rollback across the batch).
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deals body []dto.CreateDealRequest true "Deals to import"
// @Success 207 {object} dto.BatchImportDealsResponse
// @Failure 400 {object} map[string]string "Malformed request body"
// @Router /deals/batch [post]
func (h *dealHandler) importDeals(c *gin.Context) {
	logger := logging.FromCtx(c.Request.Context())

	// Decode without binding-level validation: a field-shape failure in one
	// item must become that item's outcome, not a rejection of the batch.
	var reqs []dto.CreateDealRequest
	if err := json.NewDecoder(c.Request.Body).Decode(&reqs); err != nil {
		logger.Warn("Failed to decode batch import body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	if len(reqs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Batch must contain at least one deal"})
		return
	}

	logger.Info("Received batch import request", slog.Int("deal_count", len(reqs)))

	results := h.dealService.ImportDeals(c.Request.Context(), reqs)
	resp := dto.ToBatchImportDealsResponse(results)

	logger.Info("Batch import completed",
		slog.Int("success_count", resp.SuccessCount),
		slog.Int("failure_count", resp.FailureCount),
	)
	c.JSON(http.StatusMultiStatus, resp)
}

// getDealByID godoc
// @Summary Get an FX deal by its unique ID
// @Description Retrieves a specific deal using its caller-supplied unique identifier
// @Tags deals
// @Produce  json
// @Param   dealId path string true "Deal unique ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} map[string]string "Deal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve deal"
// @Router /deals/{dealId} [get]
func (h *dealHandler) getDealByID(c *gin.Context) {
	logger := logging.FromCtx(c.Request.Context())
	dealID := c.Param("dealId")

	logger = logger.With(slog.String("deal_id", dealID))
	logger.Info("Received request to get deal by ID")

	deal, err := h.dealService.GetDealByID(c.Request.Context(), dealID)
	if err != nil {
		respondWithDealError(c, logger, err, "Failed to retrieve deal")
		return
	}

	logger.Info("Deal retrieved successfully")
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// listDeals godoc
// @Summary List FX deals
// @Description Retrieves deals with pagination and sorting support
// @Tags deals
// @Produce  json
// @Param   page query int false "Page number (0-based)" default(0)
// @Param   size query int false "Page size" default(20)
// @Param   sortBy query string false "Sort field" default(createdAt)
// @Param   sortDir query string false "Sort direction (asc/desc)" default(desc)
// @Success 200 {object} dto.ListDealsResponse
// @Failure 500 {object} map[string]string "Failed to list deals"
// @Router /deals [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	logger := logging.FromCtx(c.Request.Context())

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	// Sanitize here so the echoed paging metadata matches what is queried.
	params := portssvc.ListDealsParams{
		Page:    page,
		Size:    size,
		SortBy:  c.DefaultQuery("sortBy", "createdAt"),
		SortDir: c.DefaultQuery("sortDir", "desc"),
	}.Sanitized()

	deals, total, err := h.dealService.ListDeals(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list deals from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deals"})
		return
	}

	logger.Info("Deals listed successfully", slog.Int("count", len(deals)), slog.Int64("total", total))
	c.JSON(http.StatusOK, dto.ToListDealsResponse(deals, params.Page, params.Size, total))
}

// respondWithDealError maps service errors to wire responses. Client-caused
// errors carry their own safe message; anything else gets a generic body and
// a full server-side log line.
func respondWithDealError(c *gin.Context, logger *slog.Logger, err error, genericMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate deal rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": clientMessage(err)})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Invalid deal rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": clientMessage(err)})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Deal not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": clientMessage(err)})
	default:
		logger.Error(genericMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericMsg})
	}
}

// clientMessage extracts the client-safe message from an AppError, falling
// back to the raw error text.
func clientMessage(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}

// fieldErrorMap flattens binding validation failures into a field -> message
// map so callers see every failing field at once.
func fieldErrorMap(errs validator.ValidationErrors) map[string]string {
	fieldErrors := make(map[string]string, len(errs))
	for _, fe := range errs {
		fieldErrors[fe.Field()] = fieldErrorMessage(fe)
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must not exceed %s characters", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "uppercase":
		return "must be uppercase"
	default:
		return fmt.Sprintf("failed validation on '%s'", fe.Tag())
	}
}
