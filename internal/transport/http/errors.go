package transport

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/padoca/ordering/internal/domains/cart/adapters/http/mapper"
	cartdomain "github.com/padoca/ordering/internal/domains/cart/domain"
	catalogapp "github.com/padoca/ordering/internal/domains/catalog/application"
	catalogports "github.com/padoca/ordering/internal/domains/catalog/ports"
	orderapp "github.com/padoca/ordering/internal/domains/orders/application"
	orderdomain "github.com/padoca/ordering/internal/domains/orders/domain"
	orderports "github.com/padoca/ordering/internal/domains/orders/ports"
	apierrors "github.com/padoca/ordering/internal/shared/errors"
)

// respondServiceError translates application and domain errors into RFC 7807
// problem responses. The stock-conflict case carries the shortfall report so
// the client can show what changed before the customer retries.
func respondServiceError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var conflict *orderports.StockConflictError
	if errors.As(err, &conflict) {
		apierrors.Respond(c, apierrors.ErrConflict.
			WithDetail("stock changed since the cart was built").
			WithExtension("shortfalls", cartmapper.FromShortfalls(conflict.Report.Shortfalls)))
		return
	}

	switch {
	case errors.Is(err, catalogports.ErrNotFound), errors.Is(err, orderports.ErrNotFound):
		apierrors.Respond(c, apierrors.ErrNotFound.WithDetail(err.Error()))
	case errors.Is(err, catalogapp.ErrInvalidInput), errors.Is(err, orderapp.ErrInvalidInput):
		apierrors.Respond(c, apierrors.ErrValidation.WithDetail(err.Error()))
	case errors.Is(err, cartdomain.ErrOutOfStock), errors.Is(err, cartdomain.ErrStockLimitReached):
		apierrors.Respond(c, apierrors.ErrConflict.WithDetail(err.Error()))
	case errors.Is(err, orderdomain.ErrAlreadyFinalized),
		errors.Is(err, orderdomain.ErrNotCancellable),
		errors.Is(err, orderdomain.ErrInvalidTransition):
		apierrors.Respond(c, apierrors.ErrConflict.WithDetail(err.Error()))
	default:
		apierrors.Respond(c, apierrors.ErrInternal.WithDetail(err.Error()))
	}
}

func respondBadRequest(c *gin.Context, err error) {
	apierrors.Respond(c, apierrors.ErrBadRequest.WithDetail(err.Error()))
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		respondBadRequest(c, err)
		return 0, false
	}
	return id, true
}
