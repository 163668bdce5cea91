package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/link/inventory-platform/internal/product/domain"
	"github.com/link/inventory-platform/pkg/document"
	"github.com/link/inventory-platform/pkg/logger"
	"github.com/link/inventory-platform/pkg/validation"
)

var (
	errMalformedID   = errors.New("product id must be an integer")
	errNonPositiveID = errors.New("product id must be positive")
)

// writeError translates err into a JSON:API error document.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *validation.Error
		notFoundErr   *domain.NotFoundError
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

	case errors.As(err, &notFoundErr):
		document.WriteErrors(w, http.StatusNotFound, document.NewError(http.StatusNotFound,
			"Product Not Found",
			fmt.Sprintf("The product was not found for the provided ID: %d", notFoundErr.ID)))

	case errors.Is(err, domain.ErrProductNotFound):
		document.WriteErrors(w, http.StatusNotFound, document.NewError(http.StatusNotFound,
			"Product Not Found", "The product was not found"))

	case errors.Is(err, domain.ErrProductAlreadyExists):
		document.WriteErrors(w, http.StatusConflict, document.NewError(http.StatusConflict,
			"Product Already Exists", "The product already exists"))

	case errors.Is(err, domain.ErrInvalidPageRequest):
		document.WriteErrors(w, http.StatusBadRequest, document.NewError(http.StatusBadRequest,
			"Bad Request", "Invalid pagination parameters"))

	case errors.Is(err, errNonPositiveID):
		e := document.NewError(http.StatusBadRequest, "Constraint Violation", "The product ID must be a positive number")
		e.Source = document.Parameter("id")
		document.WriteErrors(w, http.StatusBadRequest, e)

	case errors.Is(err, errMalformedID):
		e := document.NewError(http.StatusBadRequest, "Bad Request", "The product ID must be an integer")
		e.Source = document.Parameter("id")
		document.WriteErrors(w, http.StatusBadRequest, e)

	case errors.Is(err, document.ErrUnsupportedMediaType):
		document.WriteErrors(w, http.StatusUnsupportedMediaType, document.NewError(http.StatusUnsupportedMediaType,
			"Unsupported Media Type", "Content-Type must be "+document.MediaType))

	case errors.As(err, &mismatchErr):
		document.WriteErrors(w, http.StatusConflict, document.NewError(http.StatusConflict,
			"Conflict", mismatchErr.Error()))

	case errors.Is(err, document.ErrMalformedDocument):
		document.WriteErrors(w, http.StatusBadRequest, document.NewError(http.StatusBadRequest,
			"Bad Request", err.Error()))

	default:
		logger.Error(r.Context()).Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("Unhandled error")
		document.WriteErrors(w, http.StatusInternalServerError, document.NewError(http.StatusInternalServerError,
			"Internal Server Error", "An unexpected error occurred"))
	}
}
