package factory

import (
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/controllers"
)

// ApplicationControllers holds all the controllers.
type ApplicationControllers struct {
	HomeController        *controllers.HomeController
	MeetingController     *controllers.MeetingController
	RoomController        *controllers.RoomController
	HealthCheckController *controllers.HealthCheckController
}

// Application is the root struct holding all dependencies.
type Application struct {
	Controllers *ApplicationControllers
	AppConfig   *config.AppConfig
}
