package orderingserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	menuapp "github.com/Apurer/bites-ordering-api/internal/domains/menu/application"
	orderingapp "github.com/Apurer/bites-ordering-api/internal/domains/ordering/application"
	orderingdomain "github.com/Apurer/bites-ordering-api/internal/domains/ordering/domain"
	orderingports "github.com/Apurer/bites-ordering-api/internal/domains/ordering/ports"
	apierrors "github.com/Apurer/bites-ordering-api/internal/shared/errors"
)

var responder = apierrors.NewChainedResponder("", mapOrderingError, mapMenuError)

// respondError converts use-case errors into RFC 7807 responses.
func respondError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	responder.RespondError(c, err)
}

func mapOrderingError(err error) (apierrors.ProblemDetail, bool) {
	var verr *orderingdomain.ValidationError
	switch {
	case errors.As(err, &verr):
		reasons := make([]string, 0, len(verr.Reasons))
		for _, r := range verr.Reasons {
			reasons = append(reasons, string(r))
		}
		return apierrors.NewValidationProblem(reasons, verr.Messages()), true
	case errors.Is(err, orderingapp.ErrInvalidInput):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	case errors.Is(err, orderingports.ErrAccessDenied):
		return apierrors.ErrUnauthorized.WithDetail(err.Error()), true
	case errors.Is(err, orderingports.ErrSessionRequired):
		return apierrors.ErrBadRequest.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}

func mapMenuError(err error) (apierrors.ProblemDetail, bool) {
	if errors.Is(err, menuapp.ErrItemNotFound) {
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
