package controllers

import (
	"runtime"

	"github.com/gofiber/fiber/v2"
	"github.com/sofya-ai/meet-launcher/version"
)

type HealthCheckController struct{}

func NewHealthCheckController() *HealthCheckController {
	return &HealthCheckController{}
}

func (hc *HealthCheckController) HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).SendString("Healthy")
}

func (hc *HealthCheckController) HandleVersion(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"version": version.Version,
		"runtime": runtime.Version(),
	})
}
