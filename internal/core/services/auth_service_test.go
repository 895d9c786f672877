package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/gestorpme/gestor_backend/internal/apperrors"
	"github.com/gestorpme/gestor_backend/internal/core/domain"
	"github.com/gestorpme/gestor_backend/internal/core/services"
	"github.com/gestorpme/gestor_backend/internal/dto"
	portssvc "github.com/gestorpme/gestor_backend/internal/core/ports/services"
	"github.com/gestorpme/gestor_backend/internal/platform/config"
)

// MockUserRepository is a mock type for the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// fakeMailer records the last message instead of dialing a relay.
type fakeMailer struct {
	enabled  bool
	sendErr  error
	lastTo   string
	lastBody string
}

func (f *fakeMailer) Enabled() bool { return f.enabled }

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.lastTo = to
	f.lastBody = body
	return nil
}

type AuthServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	mailer   *fakeMailer
	service  portssvc.AuthSvcFacade
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.mailer = &fakeMailer{enabled: true}
	cfg := &config.Config{
		JWTSecret:         "test-secret",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "gestor-test",
	}
	suite.service = services.NewAuthService(suite.mockRepo, cfg, suite.mailer)
}

func (suite *AuthServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}

	suite.mockRepo.On("CreateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash != "" && u.PasswordHash != req.Password &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) == nil
	})).Return(&domain.User{UserID: "u1", Name: req.Name, Email: req.Email}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret123"}

	suite.mockRepo.On("CreateUser", ctx, mock.AnythingOfType("domain.User")).
		Return(nil, apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *AuthServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: "u1", Email: "ana@example.com", PasswordHash: string(hash)}, nil).Once()

	user, token, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "secret123"})

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
	suite.NotEmpty(token)
}

func (suite *AuthServiceTestSuite) TestLogin_WrongPassword() {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: "u1", PasswordHash: string(hash)}, nil).Once()

	_, token, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ana@example.com", Password: "wrong"})

	suite.Require().Error(err)
	suite.Empty(token)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestLogin_UnknownEmailIsUnauthorized() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	_, _, err := suite.service.Login(ctx, dto.LoginRequest{Email: "ghost@example.com", Password: "x"})

	// Not 404: a login probe must not reveal which emails exist.
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *AuthServiceTestSuite) TestResetPassword_MailsTempAndStoresHash() {
	ctx := context.Background()
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: "u1", Name: "Ana", Email: "ana@example.com"}, nil).Once()
	suite.mockRepo.On("UpdatePasswordHash", ctx, "u1", mock.AnythingOfType("string")).
		Return(nil).Once()

	err := suite.service.ResetPassword(ctx, "ana@example.com")

	suite.Require().NoError(err)
	suite.Equal("ana@example.com", suite.mailer.lastTo)
	suite.Contains(suite.mailer.lastBody, "temporary password")
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *AuthServiceTestSuite) TestResetPassword_MailerDisabledIsUnavailable() {
	ctx := context.Background()
	suite.mailer.enabled = false

	err := suite.service.ResetPassword(ctx, "ana@example.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindUserByEmail")
}

func (suite *AuthServiceTestSuite) TestResetPassword_SendFailureKeepsOldPassword() {
	ctx := context.Background()
	suite.mailer.sendErr = apperrors.ErrUnavailable
	suite.mockRepo.On("FindUserByEmail", ctx, "ana@example.com").
		Return(&domain.User{UserID: "u1", Email: "ana@example.com"}, nil).Once()

	err := suite.service.ResetPassword(ctx, "ana@example.com")

	suite.Require().Error(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdatePasswordHash")
}

func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
