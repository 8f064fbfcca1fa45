package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/models"
)

// MeetingController turns the two home page forms into redirects.
type MeetingController struct {
	MeetingModel *models.MeetingModel
}

func NewMeetingController(m *models.MeetingModel) *MeetingController {
	return &MeetingController{
		MeetingModel: m,
	}
}

// HandleStartDemoMeeting redirects to a freshly generated room.
func (mc *MeetingController) HandleStartDemoMeeting(c *fiber.Ctx) error {
	req := &models.DemoMeetingReq{
		E2EE:       isChecked(c.FormValue(config.E2EEFormKey)),
		Passphrase: c.FormValue(config.PassphraseFormKey),
	}

	u, err := mc.MeetingModel.StartDemoMeeting(req)
	if err != nil {
		return err
	}

	return c.Redirect(u, fiber.StatusSeeOther)
}

// HandleCustomConnect redirects to the custom room page, or re-renders the
// custom tab with a 400 when the form is incomplete.
func (mc *MeetingController) HandleCustomConnect(c *fiber.Ctx) error {
	req := &models.CustomConnectionReq{
		ServerUrl:  c.FormValue(config.ServerUrlFormKey),
		Token:      c.FormValue(config.TokenFormKey),
		E2EE:       isChecked(c.FormValue(config.E2EEFormKey)),
		Passphrase: c.FormValue(config.PassphraseFormKey),
	}

	u, err := mc.MeetingModel.ConnectCustom(req)
	switch {
	case errors.Is(err, models.ErrMissingServerUrlOrToken), errors.Is(err, models.ErrInvalidServerUrl):
		page, perr := mc.MeetingModel.NewHomePage(models.TabCustom)
		if perr != nil {
			return perr
		}
		page.Error = err.Error()
		page.ServerUrl = req.ServerUrl
		page.Token = req.Token
		page.E2EE = req.E2EE
		if req.Passphrase != "" {
			page.Passphrase = req.Passphrase
		}
		return c.Status(fiber.StatusBadRequest).Render("index", page)
	case err != nil:
		return err
	}

	return c.Redirect(u, fiber.StatusSeeOther)
}

// browsers send "on" for a checked box without a value attribute
func isChecked(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}
