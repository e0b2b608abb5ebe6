package handler

import (
	"log/slog"
	"net/http"

	"bookshelf/internal/delivery/http/response"
	domainerrors "bookshelf/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SystemHandler serves the liveness and storage probes.
type SystemHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSystemHandler is the constructor for SystemHandler, injected by Fx.
func NewSystemHandler(db *gorm.DB, logger *slog.Logger) *SystemHandler {
	return &SystemHandler{
		db:     db,
		logger: logger,
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "healthy"}, "Service is healthy")
}

// DBCheck verifies the database connection is usable.
func (h *SystemHandler) DBCheck(c echo.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "failed to get database handle"))
	}

	if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		h.logger.Error("Database check failed", slog.Any("error", err))

		return errors.WithStack(domainerrors.NewDatabaseExecuteError(err, "database ping failed"))
	}

	return response.Success(c, http.StatusOK, map[string]string{"database_status": "healthy"}, "Database is healthy")
}
