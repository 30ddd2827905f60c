package services_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/core/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PersonUserRepository ---
type MockPersonUserRepository struct {
	mock.Mock
}

func (m *MockPersonUserRepository) FindPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error) {
	args := m.Called(ctx, personUserID)
	var person *domain.PersonUser
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.PersonUser)
	}
	return person, args.Error(1)
}

func (m *MockPersonUserRepository) FindPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error) {
	args := m.Called(ctx, email)
	var person *domain.PersonUser
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.PersonUser)
	}
	return person, args.Error(1)
}

func (m *MockPersonUserRepository) FindPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error) {
	args := m.Called(ctx, authUserID)
	var person *domain.PersonUser
	if args.Get(0) != nil {
		person = args.Get(0).(*domain.PersonUser)
	}
	return person, args.Error(1)
}

func (m *MockPersonUserRepository) SavePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error) {
	args := m.Called(ctx, person)
	var stored *domain.PersonUser
	if args.Get(0) != nil {
		stored = args.Get(0).(*domain.PersonUser)
	}
	return stored, args.Error(1)
}

func (m *MockPersonUserRepository) UpdatePersonUser(ctx context.Context, person domain.PersonUser) (*domain.PersonUser, error) {
	args := m.Called(ctx, person)
	var fresh *domain.PersonUser
	if args.Get(0) != nil {
		fresh = args.Get(0).(*domain.PersonUser)
	}
	return fresh, args.Error(1)
}

// --- Test Suite ---
type PersonUserServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockPersonUserRepository
	mockCache *MockCacheGateway
	service   portssvc.PersonUserSvcFacade
}

func (suite *PersonUserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPersonUserRepository)
	suite.mockCache = new(MockCacheGateway)
	suite.service = services.NewPersonUserCacheService(suite.mockRepo, suite.mockCache)
}

func (suite *PersonUserServiceTestSuite) samplePerson() *domain.PersonUser {
	return &domain.PersonUser{
		PersonUserID: "pu-1",
		Email:        "ana@example.com",
		AuthUserID:   "auth-1",
		Name:         "Ana",
	}
}

func (suite *PersonUserServiceTestSuite) TestGetByEmail_SingleCachedKeyRecovered() {
	ctx := context.Background()
	person := suite.samplePerson()
	cached, err := json.Marshal(person)
	suite.Require().NoError(err)
	canonical := "person-user/ana@example.com/pu-1/auth-1"

	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/ana@example.com/*/*").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Recover", ctx, canonical).Return(string(cached), true, nil).Once()

	result, err := suite.service.GetPersonUserByEmail(ctx, "ana@example.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.Equal("pu-1", result.PersonUserID)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPersonUserByEmail", mock.Anything, mock.Anything)
}

func (suite *PersonUserServiceTestSuite) TestGetByEmail_MissWritesCanonicalKey() {
	ctx := context.Background()
	person := suite.samplePerson()

	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/ana@example.com/*/*").
		Return(uint64(0), []string{}, nil).Once()
	suite.mockRepo.On("FindPersonUserByEmail", ctx, "ana@example.com").Return(person, nil).Once()
	suite.mockCache.On("Save", ctx, "person-user/ana@example.com/pu-1/auth-1", mock.Anything, 20*time.Minute).
		Return(nil).Once()

	result, err := suite.service.GetPersonUserByEmail(ctx, "ana@example.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PersonUserServiceTestSuite) TestGetByEmail_DuplicateKeysReconciled() {
	ctx := context.Background()
	person := suite.samplePerson()
	duplicates := []string{
		"person-user/ana@example.com/pu-1/auth-1",
		"person-user/ana@example.com/pu-1/stale-auth",
	}

	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/ana@example.com/*/*").
		Return(uint64(0), duplicates, nil).Once()
	// Every conflicting key is dropped before the repository is consulted.
	suite.mockCache.On("Delete", ctx, duplicates).Return(nil).Once()
	suite.mockRepo.On("FindPersonUserByEmail", ctx, "ana@example.com").Return(person, nil).Once()
	suite.mockCache.On("Save", ctx, "person-user/ana@example.com/pu-1/auth-1", mock.Anything, 20*time.Minute).
		Return(nil).Once()

	result, err := suite.service.GetPersonUserByEmail(ctx, "ana@example.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockCache.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *PersonUserServiceTestSuite) TestGetByID_ScanLoopsUntilCursorZero() {
	ctx := context.Background()
	person := suite.samplePerson()
	cached, err := json.Marshal(person)
	suite.Require().NoError(err)
	canonical := "person-user/ana@example.com/pu-1/auth-1"

	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/*/pu-1/*").
		Return(uint64(42), []string{}, nil).Once()
	suite.mockCache.On("Scan", ctx, uint64(42), "person-user/*/pu-1/*").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Recover", ctx, canonical).Return(string(cached), true, nil).Once()

	result, err := suite.service.GetPersonUserByID(ctx, "pu-1")

	suite.Require().NoError(err)
	suite.Require().NotNil(result)
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PersonUserServiceTestSuite) TestGetByAuthUserID_NotFound() {
	ctx := context.Background()

	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/*/*/ghost").
		Return(uint64(0), []string{}, nil).Once()
	suite.mockRepo.On("FindPersonUserByAuthUserID", ctx, "ghost").Return(nil, nil).Once()

	result, err := suite.service.GetPersonUserByAuthUserID(ctx, "ghost")

	suite.Require().NoError(err)
	suite.Nil(result)
	suite.mockCache.AssertNotCalled(suite.T(), "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PersonUserServiceTestSuite) TestCreatePersonUser_WritesCanonicalKey() {
	ctx := context.Background()
	req := dto.CreatePersonUserRequest{
		Email:      "ana@example.com",
		AuthUserID: "auth-1",
		Name:       "Ana",
	}
	stored := suite.samplePerson()

	suite.mockRepo.On("SavePersonUser", ctx, mock.MatchedBy(func(p domain.PersonUser) bool {
		return p.Email == req.Email && p.AuthUserID == req.AuthUserID && p.PersonUserID != ""
	})).Return(stored, nil).Once()
	suite.mockCache.On("Save", ctx, "person-user/ana@example.com/pu-1/auth-1", mock.Anything, 20*time.Minute).
		Return(nil).Once()

	created, err := suite.service.CreatePersonUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCache.AssertExpectations(suite.T())
}

func (suite *PersonUserServiceTestSuite) TestUpdatePersonUser_DropsOldAxesAfterWrite() {
	ctx := context.Background()
	person := suite.samplePerson()
	cached, err := json.Marshal(person)
	suite.Require().NoError(err)
	canonical := "person-user/ana@example.com/pu-1/auth-1"

	newEmail := "ana.new@example.com"
	req := dto.UpdatePersonUserRequest{Email: &newEmail}
	fresh := *person
	fresh.Email = newEmail

	// Lookup by id first.
	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/*/pu-1/*").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Recover", ctx, canonical).Return(string(cached), true, nil).Once()

	suite.mockRepo.On("UpdatePersonUser", ctx, mock.MatchedBy(func(p domain.PersonUser) bool {
		return p.Email == newEmail
	})).Return(&fresh, nil).Once()

	// Old-axis keys are scanned and dropped only after the write succeeded.
	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/ana@example.com/*/*").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/*/pu-1/*").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Scan", ctx, uint64(0), "person-user/*/*/auth-1").
		Return(uint64(0), []string{canonical}, nil).Once()
	suite.mockCache.On("Delete", ctx, []string{canonical}).Return(nil).Times(3)
	suite.mockCache.On("Save", ctx, "person-user/ana.new@example.com/pu-1/auth-1", mock.Anything, 20*time.Minute).
		Return(nil).Once()

	updated, err := suite.service.UpdatePersonUser(ctx, "pu-1", req)

	suite.Require().NoError(err)
	suite.Require().NotNil(updated)
	suite.Equal(newEmail, updated.Email)
	suite.mockCache.AssertExpectations(suite.T())
}

func TestPersonUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PersonUserServiceTestSuite))
}
