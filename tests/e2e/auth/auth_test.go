//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"servicedesk/internal/domain/user"
	reqdto "servicedesk/internal/handler/dto/request"
	"servicedesk/tests/common/httptest"
	"servicedesk/tests/e2e"
	jwtHelper "servicedesk/tests/e2e/common/helper"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	logoutURL   = "/api/auth/logout"
	refreshURL  = "/api/auth/refresh"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwtHelper *jwtHelper.JWTTestHelper
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = jwtHelper.NewJWTTestHelper(s.DB, s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.jwtHelper.CreateTestUserWithDB(s.T(), s.DB, "test@example.com", string(user.RoleAdmin))
	s.jwtHelper.CreateTestUserWithDB(s.T(), s.DB, "customer@example.com", string(user.RoleUser))
	s.jwtHelper.CreateTestUserWithDB(s.T(), s.DB, "staff@example.com", string(user.RoleEmployee))
}

func (s *authSuite) TestRegister() {
	tests := []struct {
		name           string
		username       string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid registration",
			username:       "new.user",
			email:          "new@example.com",
			password:       "password123",
			expectedStatus: http.StatusCreated,
			description:    "a fresh account should be created",
		},
		{
			name:           "duplicate email",
			username:       "other.user",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusConflict,
			description:    "an already-registered email must be rejected",
		},
		{
			name:           "duplicate username",
			username:       "test",
			email:          "unused@example.com",
			password:       "password123",
			expectedStatus: http.StatusConflict,
			description:    "an already-taken username must be rejected",
		},
		{
			name:           "short password",
			username:       "weak.user",
			email:          "weak@example.com",
			password:       "short",
			expectedStatus: http.StatusBadRequest,
			description:    "passwords shorter than 8 characters must be rejected",
		},
		{
			name:           "malformed email",
			username:       "bad.user",
			email:          "not-an-email",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "a malformed email must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.RegisterRequest{
				Username: tt.username,
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusCreated {
				body := w.Body.String()
				require.Contains(t, body, tt.email)
				require.Contains(t, body, `"role":"user"`, "self-registered accounts must get the user role")
				require.NotContains(t, body, "password", "password material must never leak")

				// The new account can log in straight away.
				s.jwtHelper.LoginUser(t, s.Router, tt.email, tt.password)
			}
		})
	}
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name           string
		email          string
		password       string
		expectedStatus int
		description    string
	}{
		{
			name:           "valid credentials",
			email:          "test@example.com",
			password:       "password123",
			expectedStatus: http.StatusOK,
			description:    "a known account should be able to log in",
		},
		{
			name:           "unknown user",
			email:          "nonexistent@example.com",
			password:       "password123",
			expectedStatus: http.StatusUnauthorized,
			description:    "an unknown account must be rejected",
		},
		{
			name:           "wrong password",
			email:          "test@example.com",
			password:       "wrongpassword",
			expectedStatus: http.StatusUnauthorized,
			description:    "a wrong password must be rejected",
		},
		{
			name:           "empty email",
			email:          "",
			password:       "password123",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty email must be rejected",
		},
		{
			name:           "empty password",
			email:          "test@example.com",
			password:       "",
			expectedStatus: http.StatusBadRequest,
			description:    "an empty password must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				accessCookie := httptest.ExtractCookie(w, "access_token")
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(t, accessCookie, "access token cookie missing")
				require.NotNil(t, refreshCookie, "refresh token cookie missing")
				require.True(t, accessCookie.HttpOnly, "access token cookie must be HttpOnly")
			}
		})
	}
}

func (s *authSuite) TestRefresh() {
	tests := []struct {
		name              string
		setupRefreshToken func() string
		expectedStatus    int
		description       string
	}{
		{
			name: "valid refresh token",
			setupRefreshToken: func() string {
				reqBody := reqdto.LoginRequest{
					Email:    "test@example.com",
					Password: "password123",
				}
				w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, reqBody, "")
				refreshCookie := httptest.ExtractCookie(w, "refresh_token")
				require.NotNil(s.T(), refreshCookie)
				return refreshCookie.Value
			},
			expectedStatus: http.StatusOK,
			description:    "a valid refresh token should mint a new pair",
		},
		{
			name: "garbage refresh token",
			setupRefreshToken: func() string {
				return "invalid-refresh-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "a garbage refresh token must be rejected",
		},
		{
			name: "missing refresh token",
			setupRefreshToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "an absent refresh token must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			reqBody := reqdto.RefreshRequest{
				RefreshToken: tt.setupRefreshToken(),
			}

			w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, reqBody, "")
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				require.Contains(t, w.Body.String(), "access_token", "response should carry the new pair")
			}
		})
	}
}

func (s *authSuite) TestLogout() {
	tests := []struct {
		name           string
		setupToken     func() string
		expectedStatus int
		description    string
	}{
		{
			name: "valid token",
			setupToken: func() string {
				return s.jwtHelper.LoginUser(s.T(), s.Router, "test@example.com", "password123")
			},
			expectedStatus: http.StatusNoContent,
			description:    "an authenticated session can log out",
		},
		{
			name: "garbage token",
			setupToken: func() string {
				return "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "a garbage token must be rejected",
		},
		{
			name: "missing token",
			setupToken: func() string {
				return ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "an unauthenticated logout must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			token := tt.setupToken()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)
		})
	}
}

func (s *authSuite) TestMe() {
	tests := []struct {
		name           string
		setupUser      func() (string, string, string) // email, role, token
		expectedStatus int
		description    string
	}{
		{
			name: "admin account",
			setupUser: func() (string, string, string) {
				email := "admin@example.com"
				role := string(user.RoleAdmin)
				token := s.jwtHelper.CreateAndLoginWithDB(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "an admin should see its own profile",
		},
		{
			name: "customer account",
			setupUser: func() (string, string, string) {
				email := "customer2@example.com"
				role := string(user.RoleUser)
				token := s.jwtHelper.CreateAndLoginWithDB(s.T(), s.DB, s.Router, email, role)
				return email, role, token
			},
			expectedStatus: http.StatusOK,
			description:    "a customer should see its own profile",
		},
		{
			name: "garbage token",
			setupUser: func() (string, string, string) {
				return "", "", "invalid-token"
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "a garbage token must be rejected",
		},
		{
			name: "missing token",
			setupUser: func() (string, string, string) {
				return "", "", ""
			},
			expectedStatus: http.StatusUnauthorized,
			description:    "an unauthenticated request must be rejected",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()

			email, role, token := tt.setupUser()
			w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
			require.Equal(t, tt.expectedStatus, w.Code, tt.description)

			if tt.expectedStatus == http.StatusOK {
				responseBody := w.Body.String()
				require.Contains(t, responseBody, email)
				require.Contains(t, responseBody, role)
				require.NotContains(t, responseBody, "password", "password material must never leak")
			}
		})
	}
}

func (s *authSuite) TestTokenExpiry() {
	s.Run("expired token is rejected", func() {
		t := s.T()

		userID := s.jwtHelper.CreateTestUser(t, "expiry@example.com", string(user.RoleAdmin))
		expiredToken := s.jwtHelper.CreateExpiredToken(t, userID, string(user.RoleAdmin))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, expiredToken)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *authSuite) TestAuthenticationRequired() {
	s.Run("protected endpoints reject anonymous requests", func() {
		t := s.T()

		endpoints := []struct {
			method string
			path   string
		}{
			{http.MethodPost, logoutURL},
			{http.MethodGet, meURL},
			{http.MethodGet, "/api/cart"},
			{http.MethodGet, "/api/incidents"},
			{http.MethodGet, "/api/messages/contacts"},
		}

		for _, endpoint := range endpoints {
			w := httptest.PerformRequest(t, s.Router, endpoint.method, endpoint.path, nil, "")
			require.Equal(t, http.StatusUnauthorized, w.Code, "anonymous %s %s should be rejected", endpoint.method, endpoint.path)
		}
	})
}

func (s *authSuite) TestConcurrentLogin() {
	s.Run("parallel sessions stay valid", func() {
		t := s.T()

		email := "concurrent@example.com"
		s.jwtHelper.CreateTestUser(t, email, string(user.RoleAdmin))

		token1 := s.jwtHelper.LoginUser(t, s.Router, email, "password123")
		token2 := s.jwtHelper.LoginUser(t, s.Router, email, "password123")

		w1 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token1)
		w2 := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token2)

		require.Equal(t, http.StatusOK, w1.Code)
		require.Equal(t, http.StatusOK, w2.Code)
	})
}
