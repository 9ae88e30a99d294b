//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"hotel-backoffice/internal/handler/dto/request"
	resdto "hotel-backoffice/internal/handler/dto/response"
	"hotel-backoffice/tests/common/httptest"
	"hotel-backoffice/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) registerUser(email, password, role string) resdto.AuthResponse {
	t := s.T()

	reqBody := request.RegisterRequest{Email: email, Password: password, Role: role}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "registration failed: %s", w.Body.String())

	var res resdto.AuthResponse
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
	require.NotEmpty(t, res.AccessToken)
	return res
}

func (s *authSuite) TestRegisterAndLogin() {
	s.Run("register issues a working token", func() {
		res := s.registerUser("admin@hotel.example", "password123", "admin")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, res.AccessToken)
		var me resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("admin@hotel.example", me.Email)
		s.Equal("admin", me.Role)
		s.True(me.IsActive)
	})

	s.Run("duplicate registration is rejected", func() {
		s.registerUser("staff@hotel.example", "password123", "staff")

		reqBody := request.RegisterRequest{Email: "staff@hotel.example", Password: "password123", Role: "staff"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already registered")
	})

	s.Run("login with registered credentials", func() {
		s.registerUser("staff@hotel.example", "password123", "staff")

		tests := []struct {
			name           string
			email          string
			password       string
			expectedStatus int
		}{
			{name: "valid credentials", email: "staff@hotel.example", password: "password123", expectedStatus: http.StatusOK},
			{name: "unknown user", email: "nobody@hotel.example", password: "password123", expectedStatus: http.StatusUnauthorized},
			{name: "wrong password", email: "staff@hotel.example", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
			{name: "empty email", email: "", password: "password123", expectedStatus: http.StatusBadRequest},
			{name: "empty password", email: "staff@hotel.example", password: "", expectedStatus: http.StatusBadRequest},
		}

		for _, tt := range tests {
			reqBody := request.LoginRequest{Email: tt.email, Password: tt.password}
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
			s.Equal(tt.expectedStatus, w.Code, "%s: %s", tt.name, w.Body.String())

			if tt.expectedStatus == http.StatusOK {
				var res resdto.AuthResponse
				require.NoError(s.T(), httptest.DecodeResponseBody(s.T(), w.Body, &res))
				s.NotEmpty(res.AccessToken)
				s.Equal(tt.email, res.User.Email)
			}
		}
	})

	s.Run("deactivated account cannot log in", func() {
		s.registerUser("gone@hotel.example", "password123", "staff")
		_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'gone@hotel.example'")
		require.NoError(s.T(), err)

		reqBody := request.LoginRequest{Email: "gone@hotel.example", Password: "password123"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "inactive")
	})

	s.Run("protected routes reject missing tokens", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("logout answers 204 for an authenticated user", func() {
		res := s.registerUser("staff@hotel.example", "password123", "staff")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, res.AccessToken)
		s.Equal(http.StatusNoContent, w.Code)
	})
}
