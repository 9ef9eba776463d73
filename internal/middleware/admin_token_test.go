package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"keyhub/internal/common"
	"keyhub/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (*models.AdminUser, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AdminUser), args.Error(1)
}

func (m *mockAuthService) Token(username, password string) string {
	args := m.Called(username, password)
	return args.String(0)
}

type AdminTokenTestSuite struct {
	suite.Suite
	mockAuth *mockAuthService
	echo     *echo.Echo
}

func (suite *AdminTokenTestSuite) SetupTest() {
	suite.mockAuth = &mockAuthService{}
	suite.mockAuth.Test(suite.T())
	suite.echo = echo.New()
}

func (suite *AdminTokenTestSuite) TearDownTest() {
	suite.mockAuth.AssertExpectations(suite.T())
}

func TestAdminTokenTestSuite(t *testing.T) {
	suite.Run(t, new(AdminTokenTestSuite))
}

func (suite *AdminTokenTestSuite) serve(req *http.Request, next echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := suite.echo.NewContext(req, rec)
	handler := AdminToken(suite.mockAuth)(next)
	assert.NoError(suite.T(), handler(c))
	return rec
}

func (suite *AdminTokenTestSuite) TestMissingToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)

	called := false
	rec := suite.serve(req, func(c echo.Context) error {
		called = true
		return nil
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "UNAUTHORIZED")
	assert.False(suite.T(), called)
	suite.mockAuth.AssertNotCalled(suite.T(), "Authenticate", mock.Anything, mock.Anything)
}

func (suite *AdminTokenTestSuite) TestInvalidToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set(AdminTokenHeader, "bogus")

	suite.mockAuth.On("Authenticate", mock.Anything, "bogus").Return(nil, common.ErrUnauthorized)

	rec := suite.serve(req, func(c echo.Context) error {
		suite.T().Fatal("handler reached with invalid token")
		return nil
	})

	assert.Equal(suite.T(), http.StatusUnauthorized, rec.Code)
	assert.Contains(suite.T(), rec.Body.String(), "UNAUTHORIZED")
}

func (suite *AdminTokenTestSuite) TestValidTokenStoresAdmin() {
	user := &models.AdminUser{ID: uuid.New(), Username: "ops"}
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.Header.Set(AdminTokenHeader, "good-token")

	suite.mockAuth.On("Authenticate", mock.Anything, "good-token").Return(user, nil)

	rec := suite.serve(req, func(c echo.Context) error {
		actor := common.AdminFromContext(c.Request().Context())
		assert.NotNil(suite.T(), actor)
		assert.Equal(suite.T(), "ops", actor.Username)
		return c.NoContent(http.StatusOK)
	})

	assert.Equal(suite.T(), http.StatusOK, rec.Code)
}
