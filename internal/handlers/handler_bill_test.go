package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/hlmsouza/home_ledger_app/internal/handlers"
	"github.com/hlmsouza/home_ledger_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BillService ---
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) GetBillByID(ctx context.Context, ownerID, billID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockBillService) ListBills(ctx context.Context, ownerID string, params portsrepo.ListEntriesParams) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.LedgerEntry]), args.Error(1)
}
func (m *MockBillService) ListBillsByPayableMonth(ctx context.Context, ownerID string, start, end time.Time, page, size int) (*domain.Page[domain.LedgerEntry], error) {
	args := m.Called(ctx, ownerID, start, end, page, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Page[domain.LedgerEntry]), args.Error(1)
}
func (m *MockBillService) CreateBill(ctx context.Context, ownerID string, req dto.CreateEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockBillService) UpdateBill(ctx context.Context, ownerID, billID string, req dto.UpdateEntryRequest) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, ownerID, billID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockBillService) DeleteBill(ctx context.Context, ownerID, billID string) error {
	args := m.Called(ctx, ownerID, billID)
	return args.Error(0)
}

var _ portssvc.BillSvcFacade = (*MockBillService)(nil)

// --- Mock PersonUserService ---
type MockPersonUserService struct {
	mock.Mock
}

func (m *MockPersonUserService) GetPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error) {
	args := m.Called(ctx, personUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonUser), args.Error(1)
}
func (m *MockPersonUserService) GetPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonUser), args.Error(1)
}
func (m *MockPersonUserService) GetPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonUser), args.Error(1)
}
func (m *MockPersonUserService) CreatePersonUser(ctx context.Context, req dto.CreatePersonUserRequest) (*domain.PersonUser, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonUser), args.Error(1)
}
func (m *MockPersonUserService) UpdatePersonUser(ctx context.Context, personUserID string, req dto.UpdatePersonUserRequest) (*domain.PersonUser, error) {
	args := m.Called(ctx, personUserID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PersonUser), args.Error(1)
}

var _ portssvc.PersonUserSvcFacade = (*MockPersonUserService)(nil)

// --- Test Suite ---
type BillHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockBillService *MockBillService
	mockPersonUsers *MockPersonUserService
	jwtSecret       string
	authUserID      string
	owner           *domain.PersonUser
}

func (suite *BillHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "hla-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BillHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.authUserID = uuid.NewString()
	suite.owner = &domain.PersonUser{
		PersonUserID: uuid.NewString(),
		Email:        "owner@example.com",
		AuthUserID:   suite.authUserID,
		Name:         "Owner",
	}

	suite.mockBillService = new(MockBillService)
	suite.mockPersonUsers = new(MockPersonUserService)

	cfg := &config.Config{JWTSecret: suite.jwtSecret}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		Bill:       suite.mockBillService,
		PersonUser: suite.mockPersonUsers,
	})
}

func (suite *BillHandlerTestSuite) doRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.authUserID))
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *BillHandlerTestSuite) TestGetBillByID_Success() {
	billID := uuid.NewString()
	settledAt := time.Now().Add(-24 * time.Hour)
	bill := &domain.LedgerEntry{
		EntryID:      billID,
		OwnerID:      suite.owner.PersonUserID,
		Kind:         domain.KindBill,
		Description:  "Electricity",
		DueDate:      time.Now().Add(-48 * time.Hour),
		Settled:      true,
		SettledAt:    &settledAt,
		Amount:       decimal.RequireFromString("150.00"),
		AmountMasked: "R$ 150,00",
		CategoryID:   uuid.NewString(),
	}

	suite.mockPersonUsers.On("GetPersonUserByAuthUserID", mock.Anything, suite.authUserID).
		Return(suite.owner, nil).Once()
	suite.mockBillService.On("GetBillByID", mock.Anything, suite.owner.PersonUserID, billID).
		Return(bill, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+billID)

	suite.Equal(http.StatusOK, w.Code)

	var body dto.EntryResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal(billID, body.EntryID)
	// Settled entries report PAID regardless of the due date.
	suite.Equal("PAID", body.Status)
	suite.Equal("R$ 150,00", body.Amount)
	suite.NotNil(body.SettledAt)

	suite.mockBillService.AssertExpectations(suite.T())
	suite.mockPersonUsers.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestGetBillByID_NotFound() {
	billID := uuid.NewString()

	suite.mockPersonUsers.On("GetPersonUserByAuthUserID", mock.Anything, suite.authUserID).
		Return(suite.owner, nil).Once()
	suite.mockBillService.On("GetBillByID", mock.Anything, suite.owner.PersonUserID, billID).
		Return(nil, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills/"+billID)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BillHandlerTestSuite) TestListBills_ClampsPageSize() {
	suite.mockPersonUsers.On("GetPersonUserByAuthUserID", mock.Anything, suite.authUserID).
		Return(suite.owner, nil).Once()
	suite.mockBillService.On("ListBills", mock.Anything, suite.owner.PersonUserID,
		mock.MatchedBy(func(p portsrepo.ListEntriesParams) bool {
			return p.Page == 2 && p.Size == 200
		}),
	).Return(domain.NewPage([]domain.LedgerEntry{}, 2, 200, 0, ""), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills?page=2&size=99999")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockBillService.AssertExpectations(suite.T())
}

func (suite *BillHandlerTestSuite) TestListBills_UnregisteredUser() {
	suite.mockPersonUsers.On("GetPersonUserByAuthUserID", mock.Anything, suite.authUserID).
		Return(nil, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/bills")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockBillService.AssertNotCalled(suite.T(), "ListBills")
}

func (suite *BillHandlerTestSuite) TestGetBillByID_MissingToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bills/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPersonUsers.AssertNotCalled(suite.T(), "GetPersonUserByAuthUserID")
}

// --- Run Test Suite ---
func TestBillHandler(t *testing.T) {
	suite.Run(t, new(BillHandlerTestSuite))
}
