//go:build wireinject
// +build wireinject

package factory

import (
	"github.com/google/wire"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/controllers"
	"github.com/sofya-ai/meet-launcher/pkg/models"
)

// build the dependency set for models
var modelSet = wire.NewSet(
	models.NewMeetingModel,
	models.NewRoomModel,
)

// build the dependency set for controllers
var controllerSet = wire.NewSet(
	controllers.NewHomeController,
	controllers.NewMeetingController,
	controllers.NewRoomController,
	controllers.NewHealthCheckController,
)

// NewAppFactory is the injector function that wire will implement.
func NewAppFactory(appConfig *config.AppConfig) (*Application, error) {
	wire.Build(
		modelSet,
		controllerSet,
		wire.FieldsOf(new(*config.AppConfig), "Logger"),

		wire.Struct(new(ApplicationControllers), "*"),
		wire.Struct(new(Application), "*"),
	)
	return nil, nil // This return value is ignored.
}
