//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "festivo/internal/handler/dto/request"
	resdto "festivo/internal/handler/dto/response"
	"festivo/tests/common/dbtest"
	"festivo/tests/common/httptest"
	"festivo/tests/e2e"
	"festivo/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "Ana Reyes", "ana@example.com", "customer")
	dbtest.CreateTestUser(s.T(), s.DB, "Admin One", "admin@example.com", "admin")
	inactiveID := dbtest.CreateTestUser(s.T(), s.DB, "Gone User", "inactive@example.com", "customer")

	ctx := s.T().Context()
	_, err := s.DB.Exec(ctx, "UPDATE users SET is_active = false WHERE id = $1", inactiveID)
	require.NoError(s.T(), err)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
	}{
		{
			name:           "valid credentials",
			email:          "ana@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unknown user",
			email:          "nobody@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "wrong password",
			email:          "ana@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "inactive account",
			email:          "inactive@example.com",
			password:       "password123",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty password",
			email:          "ana@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{Email: tt.email, Password: tt.password}
			rec := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var response resdto.LoginResponse
				httptest.AssertSuccessResponse(t, rec, http.StatusOK, &response)
				require.Equal(t, "customer", response.Role)
				require.NotNil(t, httptest.ExtractCookie(rec, "access_token"))
				require.NotNil(t, httptest.ExtractCookie(rec, "refresh_token"))
			}
		})
	}
}

func (s *authSuite) TestRegisterAndMe() {
	s.Run("register then fetch the profile with the session cookie", func() {
		t := s.T()

		reqBody := reqdto.RegisterRequest{
			FullName: "Jose Rizal",
			Email:    "jose@example.com",
			Password: "password123",
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")

		var created resdto.UserResponse
		httptest.AssertSuccessResponse(t, rec, http.StatusCreated, &created)
		require.Equal(t, "jose@example.com", created.Email)
		require.Equal(t, "customer", created.Role)

		cookies := helper.Login(t, s.Router, "jose@example.com", "password123")

		meRec := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, meURL, nil, cookies, "")
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(t, meRec, http.StatusOK, &me)
		require.Equal(t, created.ID, me.ID)
	})

	s.Run("duplicate email is rejected", func() {
		t := s.T()

		reqBody := reqdto.RegisterRequest{
			FullName: "Ana Again",
			Email:    "ana@example.com",
			Password: "password123",
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Email is already registered")
	})

	s.Run("weak password reports the field", func() {
		t := s.T()

		reqBody := reqdto.RegisterRequest{
			FullName: "Short Pass",
			Email:    "short@example.com",
			Password: "short",
		}
		rec := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertFieldError(t, rec, "password")
	})
}
