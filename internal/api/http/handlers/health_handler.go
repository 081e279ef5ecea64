package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{serviceName: serviceName, version: version}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness. All state is in process memory, so
// readiness follows liveness.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ready",
		"service": h.serviceName,
		"version": h.version,
	})
}
