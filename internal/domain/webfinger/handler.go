package webfinger

import (
	"log/slog"

	"github.com/Anvoria/webfinger-proxy/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// RequestIDKey is the fiber locals key the request ID middleware stores under
const RequestIDKey = "requestid"

type Handler struct {
	service ServiceInterface
}

func NewHandler(s ServiceInterface) *Handler {
	return &Handler{service: s}
}

// WebFinger handles GET /.well-known/webfinger.
// Only the resource parameter is read; a rel filter is ignored and all links are returned.
func (h *Handler) WebFinger(c *fiber.Ctx) error {
	args := c.Context().QueryArgs()
	requestID := c.Locals(RequestIDKey)

	if !args.Has("resource") {
		slog.Warn("Rejected webfinger request", "error", ErrMissingResource, "request_id", requestID)
		return utils.ErrorResponse(c, toAPIError(ErrMissingResource))
	}

	// string() copies out of the fasthttp buffer, which is reused after the request
	resource := string(args.Peek("resource"))

	if rels := args.PeekMulti("rel"); len(rels) > 0 {
		slog.Debug("Ignoring rel filter", "rel_count", len(rels), "request_id", requestID)
	}

	resp, err := h.service.Lookup(resource)
	if err != nil {
		slog.Warn("Rejected webfinger request", "error", err, "resource", resource, "request_id", requestID)
		return utils.ErrorResponse(c, toAPIError(err))
	}

	slog.Info("WebFinger request processed", "resource", resp.Subject, "request_id", requestID)
	return c.JSON(resp)
}
