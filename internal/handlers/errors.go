package handlers

import (
	"errors"
	"net/http"

	"github.com/pixperk/pocketmind-server/internal/services"
	"github.com/pixperk/pocketmind-server/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondServiceError translates service sentinel errors into HTTP status
// codes. Unknown errors are logged with detail server-side and surface as a
// generic 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		utils.NotFound(c, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrUserExists),
		errors.Is(err, services.ErrDebtorNotFound),
		errors.Is(err, services.ErrSelfLoan),
		errors.Is(err, services.ErrDueDateRequired):
		utils.Error(c, http.StatusBadRequest, err.Error())
	default:
		logrus.WithError(err).WithField("path", c.FullPath()).Error("unexpected service error")
		utils.InternalError(c)
	}
}
