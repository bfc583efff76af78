package handlers_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/moneyparse/internal/catalog"
	portsrepo "github.com/SscSPs/moneyparse/internal/core/ports/repositories"
	"github.com/SscSPs/moneyparse/internal/core/services"
	"github.com/SscSPs/moneyparse/internal/dto"
	"github.com/SscSPs/moneyparse/internal/handlers"
	"github.com/SscSPs/moneyparse/internal/middleware"
	"github.com/SscSPs/moneyparse/internal/platform/config"
	"github.com/SscSPs/moneyparse/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type HandlersTestSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	cfg := &config.Config{
		IsProduction:   true,
		JWTSecret:      suite.jwtSecret,
		JWTIssuer:      "moneyparse",
		MaxInputLength: 200,
	}
	container := services.NewServiceContainer(cfg, catalog.Default(), portsrepo.RepositoryProvider{}, metrics.NewMetrics())

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		Issuer:    "moneyparse",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *HandlersTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestExtract_Success() {
	w := suite.do(http.MethodPost, "/api/v1/parse", gin.H{"text": "Paid $10"}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.ExtractionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("symbol", string(resp.Pattern))
	suite.Equal("10", resp.Amount)
	suite.Equal("USD", resp.CurrencyCode)
	suite.Equal("10.00", resp.Formatted)
	suite.Equal("$", resp.Token)
}

func (suite *HandlersTestSuite) TestExtract_DefaultCurrencyAndPatterns() {
	w := suite.do(http.MethodPost, "/api/v1/parse", gin.H{"text": "Paid $10", "defaultCurrency": "CAD"}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"currencyCode":"CAD"`)

	w = suite.do(http.MethodPost, "/api/v1/parse", gin.H{"text": "Paid $10", "patterns": []string{"plain_number"}}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"pattern":"plain_number"`)
}

func (suite *HandlersTestSuite) TestExtract_Errors() {
	tests := []struct {
		name   string
		body   gin.H
		status int
	}{
		{"missing text", gin.H{}, http.StatusBadRequest},
		{"unknown default currency", gin.H{"text": "Paid $10", "defaultCurrency": "ZZZ"}, http.StatusBadRequest},
		{"unknown pattern", gin.H{"text": "Paid $10", "patterns": []string{"bogus"}}, http.StatusBadRequest},
		{"nothing found", gin.H{"text": "hello world"}, http.StatusNotFound},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/parse", tt.body, "")
			suite.Equal(tt.status, w.Code, w.Body.String())
			suite.Contains(w.Body.String(), `"error"`)
		})
	}
}

func (suite *HandlersTestSuite) TestParsePattern() {
	tests := []struct {
		name    string
		pattern string
		text    string
		status  int
		body    string
	}{
		{"separated number", "separated_number", "1,000", http.StatusOK, `"amount":"1000"`},
		{"contextual phrase", "contextual_phrase", "a dollar and 23 cents", http.StatusOK, `"amount":"1.23"`},
		{"format error", "plain_number", "1,000", http.StatusBadRequest, "Invalid plain number format"},
		{"overflow", "plain_number", "9007199254740992", http.StatusUnprocessableEntity, `"value":"9007199254740992"`},
		{"unknown currency", "contextual_phrase", "twenty bananas", http.StatusUnprocessableEntity, "Unrecognized currency"},
		{"minor unit mismatch", "contextual_phrase", "one yen and 5 cents", http.StatusUnprocessableEntity, "Minor unit not supported"},
		{"unknown pattern", "bogus", "10", http.StatusNotFound, "Unknown pattern"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			w := suite.do(http.MethodPost, "/api/v1/parse/"+tt.pattern, gin.H{"text": tt.text}, "")
			suite.Equal(tt.status, w.Code, w.Body.String())
			suite.Contains(w.Body.String(), tt.body)
		})
	}
}

func (suite *HandlersTestSuite) TestRunPipeline() {
	w := suite.do(http.MethodPost, "/api/v1/pipeline", gin.H{"text": "I paid $1,200.50 today"}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp dto.PipelineResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("I paid $1,200.50 today", resp.Original)
	suite.Equal("USD", resp.Currency)
	suite.Require().NotNil(resp.Amount)
	suite.Require().Contains(resp.Matches, "symbol")
	suite.Equal("1200.5", resp.Matches["symbol"].Amount)

	w = suite.do(http.MethodPost, "/api/v1/pipeline", gin.H{"text": "nothing to see"}, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"amount":null`)
}

func (suite *HandlersTestSuite) TestInputTooLong() {
	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	w := suite.do(http.MethodPost, "/api/v1/pipeline", gin.H{"text": string(long)}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCurrencies_Read() {
	w := suite.do(http.MethodGet, "/api/v1/currencies", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var list dto.ListCurrenciesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Equal(len(catalog.ISO4217()), list.Count)

	w = suite.do(http.MethodGet, "/api/v1/currencies/usd", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"number":"840"`)

	w = suite.do(http.MethodGet, "/api/v1/currencies/ZZZ", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do(http.MethodGet, "/api/v1/currencies/TOOLONG", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateCurrency() {
	body := gin.H{"currencyCode": "QQQ", "name": "Quux", "precision": 0}

	w := suite.do(http.MethodPost, "/api/v1/currencies", body, "")
	suite.Equal(http.StatusUnauthorized, w.Code)

	userID := uuid.NewString()
	w = suite.do(http.MethodPost, "/api/v1/currencies", body, suite.generateTestToken(userID))
	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), userID)

	w = suite.do(http.MethodPost, "/api/v1/currencies", gin.H{"currencyCode": "qqq", "name": "lower"}, suite.generateTestToken(userID))
	suite.Equal(http.StatusBadRequest, w.Code, "codes must be upper case")

	// The new code is usable as an abbreviation straight away.
	w = suite.do(http.MethodPost, "/api/v1/parse/abbreviation", gin.H{"text": "QQQ 12"}, "")
	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	suite.Contains(w.Body.String(), `"currencyCode":"QQQ"`)
	suite.Contains(w.Body.String(), `"formatted":"12"`)
}

func (suite *HandlersTestSuite) TestMetricsEndpoint() {
	suite.do(http.MethodPost, "/api/v1/parse", gin.H{"text": "Paid $10"}, "")

	w := suite.do(http.MethodGet, "/metrics", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "moneyparse_recognizer_calls_total")
}
