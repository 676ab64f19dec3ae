package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hauspet/config"
	"hauspet/internal/delivery/http/middleware"
	"hauspet/internal/delivery/http/router"
	"hauspet/internal/delivery/http/router/handler"
	"hauspet/internal/infra/auth"
	"hauspet/internal/infra/persistence/model"
	"hauspet/internal/infra/persistence/postgres"
	"hauspet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newAuthFlowEcho wires the real account stack over in-memory SQLite.
func newAuthFlowEcho(t *testing.T, tokenTTL time.Duration) *echo.Echo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(&model.UserModel{}, &model.PetModel{}))

	cfg := testConfig()
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.Auth = &config.AuthConfig{SecretKey: "flow-secret", TokenTTL: tokenTTL}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	userUC := impl.NewUserService(impl.UserServiceParams{
		TxManager:    postgres.NewTransactionManager(db),
		UserRepo:     postgres.NewUserRepository(db),
		Hasher:       auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		TokenService: tokens,
		Logger:       log,
	})

	e := NewEcho(cfg, log)
	router.NewRouter(router.RouterParams{
		UserHandler:      handler.NewUserHandler(handler.UserHandlerParams{UserUC: userUC, Logger: log}),
		PetHandler:       &handler.PetHandler{},
		AIHandler:        &handler.AIHandler{},
		TelemetryHandler: &handler.TelemetryHandler{},
		AlertHandler:     &handler.AlertHandler{},
		DeviceHandler:    &handler.DeviceHandler{},
		AuthMiddleware:   middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{UserUC: userUC}),
	}).RegisterRoutes(e)

	return e
}

func doJSON(e *echo.Echo, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthFlow_RegisterLoginProfile(t *testing.T) {
	e := newAuthFlowEcho(t, time.Hour)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","password":"pw","firstName":"Ada"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"email":"a@x.com","password":"other"}`, "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"pw"}`, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = doJSON(e, http.MethodGet, "/api/v1/user/profile", "", login.Token)
	require.Equal(t, http.StatusOK, rec.Code)

	var profile map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "a@x.com", profile["email"])
	assert.Equal(t, "Ada", profile["firstName"])
	assert.Nil(t, profile["lastName"])
	assert.Equal(t, "user", profile["role"])

	// The conflicting registration left the first password intact.
	rec = doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"email":"a@x.com","password":"other"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(e, http.MethodGet, "/api/v1/user/profile", "", login.Token+"x")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthFlow_ExpiredTokenIsRejected(t *testing.T) {
	e := newAuthFlowEcho(t, time.Nanosecond)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/register", `{"email":"b@x.com","password":"pw"}`, "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var reg struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reg))
	time.Sleep(1100 * time.Millisecond)

	rec = doJSON(e, http.MethodGet, "/api/v1/user/profile", "", reg.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthFlow_LoginUnknownEmail(t *testing.T) {
	e := newAuthFlowEcho(t, time.Hour)

	rec := doJSON(e, http.MethodPost, "/api/v1/auth/login", `{"email":"nobody@x.com","password":"pw"}`, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not found. Please register.")
}
