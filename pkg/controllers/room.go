package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/models"
)

// RoomController renders the pages that hand off to the media SDK.
type RoomController struct {
	RoomModel *models.RoomModel
}

func NewRoomController(m *models.RoomModel) *RoomController {
	return &RoomController{
		RoomModel: m,
	}
}

// HandleRoomPage handles /rooms/:roomName.
func (rc *RoomController) HandleRoomPage(c *fiber.Ctx) error {
	page, err := rc.RoomModel.GetRoomPage(c.Params("roomName"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	return c.Render("room", page)
}

// HandleCustomRoomPage handles /custom/?liveKitUrl=..&token=..
func (rc *RoomController) HandleCustomRoomPage(c *fiber.Ctx) error {
	page, err := rc.RoomModel.GetCustomRoomPage(c.Query(config.LiveKitUrlQueryKey), c.Query(config.TokenQueryKey))
	if err != nil {
		c.Status(fiber.StatusBadRequest)
	}

	return c.Render("custom", page)
}
