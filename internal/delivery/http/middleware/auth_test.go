package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims *Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func invoke(middlewareFunc echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := middlewareFunc(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return rec, handler(c)
}

func TestJWTAcceptsValidToken(t *testing.T) {
	token := signToken(t, &Claims{UserID: "user-1", EmployeeID: "emp-1", Role: RoleEmployee}, testSecret)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWT(testSecret)(func(c echo.Context) error {
		claims := ClaimsFrom(c)
		require.NotNil(t, claims)
		assert.Equal(t, "emp-1", claims.EmployeeID)
		assert.Equal(t, RoleEmployee, claims.Role)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTRejectsMissingHeader(t *testing.T) {
	_, err := invoke(JWT(testSecret), "")

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	token := signToken(t, &Claims{UserID: "user-1", Role: RoleAdmin}, "other-secret")

	_, err := invoke(JWT(testSecret), "Bearer "+token)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestRequireRoles(t *testing.T) {
	e := echo.New()

	run := func(role string, allowed ...string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set("claims", &Claims{UserID: "user-1", Role: role})

		handler := RequireRoles(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		return handler(c)
	}

	assert.NoError(t, run(RoleAdmin, RoleAdmin, RoleManager))
	assert.NoError(t, run(RoleManager, RoleAdmin, RoleManager))

	err := run(RoleEmployee, RoleAdmin, RoleManager)
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
}
