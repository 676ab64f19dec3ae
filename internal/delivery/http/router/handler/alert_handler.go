package handler

import (
	"net/http"

	"hauspet/internal/domain/entity"
	"hauspet/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AlertHandler lists the health alerts raised for the caller's pets.
type AlertHandler struct {
	alertUC usecase.AlertUsecase
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(alertUC usecase.AlertUsecase) *AlertHandler {
	return &AlertHandler{alertUC: alertUC}
}

// ListAlerts returns the newest alerts first.
func (h *AlertHandler) ListAlerts(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	alerts, err := h.alertUC.ListAlerts(c.Request().Context(), user.ID)
	if err != nil {
		return errors.WithStack(err)
	}
	if alerts == nil {
		alerts = []*entity.HealthAlert{}
	}

	return c.JSON(http.StatusOK, alerts)
}
