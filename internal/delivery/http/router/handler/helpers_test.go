package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"

	deliverycontext "hauspet/internal/delivery/context"
	"hauspet/internal/delivery/http/middleware"
	"hauspet/internal/delivery/http/validator"
	"hauspet/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

var testUser = &entity.User{
	ID:        7,
	Email:     "owner@example.com",
	FirstName: "Maya",
	Role:      entity.RoleUser,
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Validator = validator.New()

	return e
}

// signedIn stands in for the auth middleware.
func signedIn(user *entity.User) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetCurrentUser(c, user)

			return next(c)
		}
	}
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func ptr[T any](v T) *T {
	return &v
}
