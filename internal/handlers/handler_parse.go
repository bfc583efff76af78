package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/moneyparse/internal/core/domain"
	portssvc "github.com/SscSPs/moneyparse/internal/core/ports/services"
	"github.com/SscSPs/moneyparse/internal/dto"
	"github.com/SscSPs/moneyparse/internal/middleware"
	"github.com/gin-gonic/gin"
)

// parseHandler handles HTTP requests that extract amounts from text.
type parseHandler struct {
	parseService    portssvc.ParseSvcFacade
	currencyService portssvc.CurrencyReaderSvc
}

// newParseHandler creates a new parseHandler.
func newParseHandler(ps portssvc.ParseSvcFacade, cs portssvc.CurrencyReaderSvc) *parseHandler {
	return &parseHandler{
		parseService:    ps,
		currencyService: cs,
	}
}

// registerParseRoutes registers the extraction and pipeline routes.
func registerParseRoutes(rg *gin.RouterGroup, ps portssvc.ParseSvcFacade, cs portssvc.CurrencyReaderSvc) {
	h := newParseHandler(ps, cs)

	rg.POST("/parse", h.extract)
	rg.POST("/parse/:pattern", h.parsePattern)
	rg.POST("/pipeline", h.runPipeline)
}

// respond formats the amount with the currency's minor unit digits when the
// currency is known.
func (h *parseHandler) respond(ctx context.Context, e *domain.Extraction) dto.ExtractionResponse {
	if e.CurrencyCode == "" {
		return dto.ToExtractionResponse(*e, nil)
	}
	currency, err := h.currencyService.GetCurrencyByCode(ctx, e.CurrencyCode)
	if err != nil {
		return dto.ToExtractionResponse(*e, nil)
	}
	return dto.ToExtractionResponse(*e, currency)
}

// extract godoc
// @Summary Extract a monetary amount from text
// @Description Runs the tolerant recognizers in precedence order and returns the first match
// @Tags parse
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseRequest true "Text to scan"
// @Success 200 {object} dto.ExtractionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No amount found"
// @Router /parse [post]
func (h *parseHandler) extract(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Extract", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	extraction, err := h.parseService.Extract(c.Request.Context(), req.Text, req.DefaultCurrency, req.Patterns)
	if err != nil {
		respondWithError(c, logger, err, "Failed to extract amount")
		return
	}

	c.JSON(http.StatusOK, h.respond(c.Request.Context(), extraction))
}

// parsePattern godoc
// @Summary Parse text with one recognizer
// @Description Runs the strict form of a single recognizer against the whole text
// @Tags parse
// @Accept  json
// @Produce  json
// @Param   pattern path string true "Recognizer" Enums(contextual_phrase, slang_term, symbol, abbreviation, magnitude_combo, separated_number, plain_number)
// @Param   request body dto.ParseRequest true "Text to parse"
// @Success 200 {object} dto.ExtractionResponse
// @Failure 400 {object} map[string]string "Invalid input or format"
// @Failure 422 {object} map[string]string "Unknown currency, minor unit mismatch or overflow"
// @Router /parse/{pattern} [post]
func (h *parseHandler) parsePattern(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	kind := domain.PatternKind(c.Param("pattern"))
	if !kind.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown pattern: " + string(kind)})
		return
	}

	var req dto.ParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ParsePattern", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("pattern", string(kind)))
	extraction, err := h.parseService.ParsePattern(c.Request.Context(), kind, req.Text, req.DefaultCurrency)
	if err != nil {
		respondWithError(c, logger, err, "Failed to parse amount")
		return
	}

	c.JSON(http.StatusOK, h.respond(c.Request.Context(), extraction))
}

// runPipeline godoc
// @Summary Run the detection pipeline
// @Description Runs the currency, numeric and recognizer steps and returns the resulting context
// @Tags parse
// @Accept  json
// @Produce  json
// @Param   request body dto.PipelineRequest true "Text to scan"
// @Success 200 {object} dto.PipelineResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /pipeline [post]
func (h *parseHandler) runPipeline(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PipelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RunPipeline", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.parseService.RunPipeline(c.Request.Context(), req.Text)
	if err != nil {
		respondWithError(c, logger, err, "Failed to run pipeline")
		return
	}

	c.JSON(http.StatusOK, dto.ToPipelineResponse(result))
}
