package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/moneyparse/internal/apperrors"
	"github.com/SscSPs/moneyparse/internal/catalog"
	"github.com/SscSPs/moneyparse/internal/core/domain"
	portssvc "github.com/SscSPs/moneyparse/internal/core/ports/services"
	"github.com/SscSPs/moneyparse/internal/core/services"
	"github.com/SscSPs/moneyparse/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SaveCurrencies(ctx context.Context, currencies []domain.Currency) error {
	args := m.Called(ctx, currencies)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	catalog  *catalog.Catalog
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.catalog = catalog.Default()
	suite.service = services.NewCurrencyService(suite.catalog, services.WithCurrencyRepository(suite.mockRepo))
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "TST",
		Number:       "999",
		Symbol:       "T",
		Name:         "Test Currency",
		Precision:    3,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.MatchedBy(func(c domain.Currency) bool {
		return c.CurrencyCode == req.CurrencyCode && c.Symbol == req.Symbol && c.Name == req.Name && c.CreatedBy == creatorUserID && c.LastUpdatedBy == creatorUserID
	})).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(req.CurrencyCode, currency.CurrencyCode)
	suite.Equal(req.Number, currency.Number)
	suite.Equal(3, currency.Precision)
	suite.Equal(creatorUserID, currency.CreatedBy)

	stored, ok := suite.catalog.ByCode("TST")
	suite.True(ok, "created currency is published to the catalog")
	suite.Equal("Test Currency", stored.Name)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_UpdateKeepsCreationRecord() {
	ctx := context.Background()
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	suite.catalog.Upsert(domain.Currency{
		CurrencyCode: "TST",
		Name:         "Old Name",
		AuditFields:  domain.AuditFields{CreatedAt: created, CreatedBy: "founder"},
	})

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, dto.CreateCurrencyRequest{CurrencyCode: "TST", Name: "New Name"}, "editor")

	suite.Require().NoError(err)
	suite.Equal(created, currency.CreatedAt)
	suite.Equal("founder", currency.CreatedBy)
	suite.Equal("editor", currency.LastUpdatedBy)
	suite.Equal("New Name", currency.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_SaveError() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateCurrencyRequest{
		CurrencyCode: "ERR",
		Symbol:       "E",
		Name:         "Error Currency",
	}
	expectedErr := assert.AnError

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(expectedErr).Once()

	currency, err := suite.service.CreateCurrency(ctx, req, creatorUserID)

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	_, ok := suite.catalog.ByCode("ERR")
	suite.False(ok, "failed writes are not published")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), "usd")

	suite.Require().NoError(err)
	suite.Equal("USD", currency.CurrencyCode)
	suite.Equal("840", currency.Number)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "NTF").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ntf")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_FallsBackToRepository() {
	ctx := context.Background()
	stored := &domain.Currency{CurrencyCode: "QQQ", Name: "Quux", Precision: 1}
	suite.mockRepo.On("FindCurrencyByCode", ctx, "QQQ").Return(stored, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "QQQ")

	suite.Require().NoError(err)
	suite.Equal(stored, currency)
	_, ok := suite.catalog.ByCode("QQQ")
	suite.True(ok, "repository hits are cached in the catalog")

	// Second lookup is served from the catalog.
	_, err = suite.service.GetCurrencyByCode(ctx, "QQQ")
	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "ERR").Return(nil, assert.AnError).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ERR")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NoRepository() {
	service := services.NewCurrencyService(catalog.Default())

	_, err := service.GetCurrencyByCode(context.Background(), "NTF")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	currencies, err := suite.service.ListCurrencies(context.Background())

	suite.Require().NoError(err)
	suite.Len(currencies, suite.catalog.Len())
	suite.Equal("AED", currencies[0].CurrencyCode)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	service := services.NewCurrencyService(catalog.New(nil))

	currencies, err := service.ListCurrencies(context.Background())

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
