package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-summarizer/errors"
	"github.com/johnquangdev/meeting-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/meeting-summarizer/internal/usecase/errors"
)

// getRequestID reads the request ID set by the RequestID middleware
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes a standardized 200 response using provided logger
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleSuccessStatus(logger, c, http.StatusOK, data)
}

// HandleCreated writes a standardized 201 response using provided logger
func HandleCreated(logger *zap.Logger, c echo.Context, data interface{}) error {
	return handleSuccessStatus(logger, c, http.StatusCreated, data)
}

func handleSuccessStatus(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	resp := common.SuccessResponse{
		Code:    errors.ErrorCode_HTTP_OK,
		Message: "success",
		Data:    data,
	}

	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, resp)
}

// HandleError centralizes error handling and logging using provided logger.
// Errors that are not an AppError are translated with toAppError first.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := toAppError(err, "")

	if logger != nil {
		log := logger.Warn
		if appErr.HTTPCode >= http.StatusInternalServerError {
			log = logger.Error
		}
		log("http.response.error",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Stringer("app_code", appErr.Code),
			zap.Error(err),
		)
	}

	info := ""
	if appErr.Raw != nil {
		info = appErr.Raw.Error()
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Code:    appErr.Code,
		Message: appErr.Message,
		Info:    info,
		Details: appErr.Details,
	})
}

// toAppError maps domain and use case errors onto API errors. id names the
// resource the request addressed and is only used for not-found details.
func toAppError(err error, id string) errors.AppError {
	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		return appErr
	}

	switch {
	case stdErrors.Is(err, entities.ErrStoreUnavailable):
		return errors.ErrStoreUnavailable(err)
	case stdErrors.Is(err, entities.ErrTaskNotFound):
		return errors.ErrTaskNotFound(id)
	case stdErrors.Is(err, entities.ErrMeetingNotFound):
		return errors.ErrMeetingNotFound(id)
	case stdErrors.Is(err, usecaseErrors.ErrTranscriptRequired):
		return errors.ErrTranscriptRequired()
	case stdErrors.Is(err, usecaseErrors.ErrSearchQueryRequired):
		return errors.ErrSearchQueryRequired()
	case stdErrors.Is(err, usecaseErrors.ErrTaskDescriptionRequired),
		stdErrors.Is(err, usecaseErrors.ErrMeetingIDRequired),
		stdErrors.Is(err, usecaseErrors.ErrInvalidCalendarRange),
		stdErrors.Is(err, usecaseErrors.ErrInvalidPriority),
		stdErrors.Is(err, usecaseErrors.ErrInvalidStatus):
		return errors.ErrInvalidArgument(err.Error())
	default:
		return errors.ErrInternal(err)
	}
}

// bindAndValidate binds the request into req and runs the registered validator
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return errors.ErrInvalidPayload().WithDetail("reason", err.Error())
	}
	if err := c.Validate(req); err != nil {
		return errors.ErrValidationFailed(err)
	}
	return nil
}
