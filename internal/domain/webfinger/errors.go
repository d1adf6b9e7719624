package webfinger

import (
	"errors"

	"github.com/Anvoria/webfinger-proxy/internal/utils"
	"github.com/gofiber/fiber/v2"
)

var (
	// ErrMissingResource is returned when the resource query parameter is absent
	ErrMissingResource = errors.New("missing resource parameter")

	// ErrInvalidResourceFormat is returned when the resource does not start with "acct:"
	ErrInvalidResourceFormat = errors.New("invalid resource format, must start with 'acct:'")
)

// API errors sent to clients for the lookup failures above
var (
	ErrMissingResourceAPI       = utils.NewAPIError("MISSING_RESOURCE", ErrMissingResource.Error(), fiber.StatusBadRequest)
	ErrInvalidResourceFormatAPI = utils.NewAPIError("INVALID_RESOURCE_FORMAT", ErrInvalidResourceFormat.Error(), fiber.StatusBadRequest)
)

// toAPIError maps a lookup error onto the API error sent to the client
func toAPIError(err error) *utils.APIError {
	switch {
	case errors.Is(err, ErrMissingResource):
		return ErrMissingResourceAPI
	case errors.Is(err, ErrInvalidResourceFormat):
		return ErrInvalidResourceFormatAPI
	default:
		return utils.ErrInternalServer
	}
}
