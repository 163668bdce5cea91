package http

import (
	"errors"
	"net/http"

	"github.com/link/inventory-platform/internal/inventory/domain"
	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/resilience"
	"github.com/link/inventory-platform/pkg/validation"
)

// pathParamError reports an unusable path parameter.
type pathParamError struct {
	param     string
	malformed bool
}

func (e *pathParamError) Error() string {
	if e.malformed {
		return e.param + " must be an integer"
	}
	return e.param + " must be positive"
}

func (e *pathParamError) detail() string {
	subject := "product"
	if e.param == "id" {
		subject = "inventory"
	}
	if e.malformed {
		return "The " + subject + " ID must be an integer"
	}
	return "The " + subject + " ID must be a positive number"
}

// writeError translates err into a JSON:API error document.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *validation.Error
		paramErr      *pathParamError
		serviceErr    *domain.ProductServiceError
		mismatchErr   *document.TypeMismatchError
	)

	switch {
	case errors.As(err, &validationErr):
		errs := make([]document.Error, 0, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			e := document.NewError(http.StatusBadRequest, "Validation Error", f.Message)
			e.Source = document.AttributePointer(f.Field)
			errs = append(errs, e)
		}
		document.WriteErrors(w, http.StatusBadRequest, errs...)

	case errors.As(err, &paramErr):
		title := "Constraint Violation"
		if paramErr.malformed {
			title = "Bad Request"
		}
		e := document.NewError(http.StatusBadRequest, title, paramErr.detail())
		e.Source = document.Parameter(paramErr.param)
		document.WriteErrors(w, http.StatusBadRequest, e)

	case errors.Is(err, domain.ErrInventoryAlreadyExists):
		writeSingle(w, http.StatusConflict, "Inventory Already Exists", err.Error())

	case errors.Is(err, domain.ErrInventoryNotFound):
		writeSingle(w, http.StatusNotFound, "Inventory Not Found", err.Error())

	case errors.Is(err, domain.ErrProductNotFound):
		writeSingle(w, http.StatusNotFound, "Product Not Found", err.Error())

	case errors.Is(err, domain.ErrInsufficientStock):
		writeSingle(w, http.StatusConflict, "Insufficient Stock", err.Error())

	case errors.As(err, &serviceErr):
		status := serviceErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		writeSingle(w, status, "Product Service Error",
			"Error communicating with product service: "+serviceErr.Message)

	case errors.Is(err, resilience.ErrCircuitOpen):
		writeSingle(w, http.StatusServiceUnavailable, "Circuit Breaker Open", "Product service temporarily unavailable")

	case errors.Is(err, resilience.ErrTimeout), errors.Is(err, resilience.ErrRateLimited):
		writeSingle(w, http.StatusGatewayTimeout, "Request Timeout",
			"Service response timeout exceeded: Product service response timeout")

	case errors.Is(err, domain.ErrProductServiceUnavailable):
		writeSingle(w, http.StatusServiceUnavailable, "Service Unavailable", "Product service is not available")

	case errors.Is(err, document.ErrUnsupportedMediaType):
		writeSingle(w, http.StatusUnsupportedMediaType, "Unsupported Media Type", "Content-Type must be "+document.MediaType)

	case errors.As(err, &mismatchErr):
		writeSingle(w, http.StatusConflict, "Conflict", mismatchErr.Error())

	case errors.Is(err, document.ErrMalformedDocument):
		writeSingle(w, http.StatusBadRequest, "Bad Request", err.Error())

	default:
		logger.Error(r.Context()).Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unhandled error")
		writeSingle(w, http.StatusInternalServerError, "Internal Server Error", "An unexpected error occurred")
	}
}

func writeSingle(w http.ResponseWriter, status int, title, detail string) {
	document.WriteErrors(w, status, document.NewError(status, title, detail))
}
