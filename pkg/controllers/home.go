package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/models"
)

// HomeController renders the tabbed landing page.
type HomeController struct {
	MeetingModel *models.MeetingModel
}

func NewHomeController(m *models.MeetingModel) *HomeController {
	return &HomeController{
		MeetingModel: m,
	}
}

// HandleHome renders the tab selected by the "tab" query parameter.
func (hc *HomeController) HandleHome(c *fiber.Ctx) error {
	tab := models.TabFromQuery(c.Query(config.TabQueryKey))

	page, err := hc.MeetingModel.NewHomePage(tab)
	if err != nil {
		return err
	}

	return c.Render("index", page)
}
