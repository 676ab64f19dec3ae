package handler

import (
	"net/http"
	"testing"

	"hauspet/internal/domain/entity"
	domainerrors "hauspet/internal/domain/errors"
	mockusecase "hauspet/internal/mocks/usecase"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDeviceTestServer(t *testing.T) (*mockusecase.MockDeviceUsecase, *echo.Echo) {
	t.Helper()
	uc := mockusecase.NewMockDeviceUsecase(t)
	h := NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	g := e.Group("/devices", signedIn(testUser))
	g.POST("", h.RegisterDevice)
	g.DELETE("/:deviceId", h.UnregisterDevice)

	return uc, e
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	uc, e := newDeviceTestServer(t)
	uc.EXPECT().RegisterDevice(mock.Anything, uint(7), &usecase.DeviceInfo{
		FCMToken: "fcm-1",
		DeviceID: "phone-1",
		Platform: "ios",
	}).Return(&entity.UserDevice{ID: 9, UserID: 7, FCMToken: "fcm-1", DeviceID: "phone-1", Platform: "ios", IsActive: true}, nil)

	rec := serve(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","device_id":"phone-1","platform":"ios"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"fcm_token":"fcm-1"`)
	assert.Contains(t, rec.Body.String(), `"is_active":true`)
}

func TestDeviceHandler_RegisterDeviceValidation(t *testing.T) {
	_, e := newDeviceTestServer(t)

	rec := serve(e, http.MethodPost, "/devices", `{"fcm_token":"fcm-1","platform":"windows"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_FAILED"`)
	assert.Contains(t, rec.Body.String(), "device_id is required")
}

func TestDeviceHandler_UnregisterDevice(t *testing.T) {
	t.Run("owned device", func(t *testing.T) {
		uc, e := newDeviceTestServer(t)
		uc.EXPECT().UnregisterDevice(mock.Anything, uint(7), "phone-1").Return(nil)

		rec := serve(e, http.MethodDelete, "/devices/phone-1", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"message":"Device unregistered successfully"}`, rec.Body.String())
	})

	t.Run("unknown device", func(t *testing.T) {
		uc, e := newDeviceTestServer(t)
		uc.EXPECT().UnregisterDevice(mock.Anything, uint(7), "ghost").Return(domainerrors.ErrDeviceNotFound)

		rec := serve(e, http.MethodDelete, "/devices/ghost", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
