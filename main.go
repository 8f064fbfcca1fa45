package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/sofya-ai/meet-launcher/helpers"
	"github.com/sofya-ai/meet-launcher/pkg/config"
	"github.com/sofya-ai/meet-launcher/pkg/factory"
	"github.com/sofya-ai/meet-launcher/pkg/logging"
	"github.com/sofya-ai/meet-launcher/pkg/routers"
	"github.com/sofya-ai/meet-launcher/version"
	"github.com/urfave/cli/v3"
)

func main() {
	cli.VersionPrinter = func(c *cli.Command) {
		fmt.Printf("%s\n", c.Version)
	}

	app := &cli.Command{
		Name:        "meet-launcher",
		Usage:       "Start or join a LiveKit video conference room",
		Description: "without option will start server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Configuration file",
				DefaultText: "config.yaml",
				Value:       "config.yaml",
			},
		},
		Action:  startServer,
		Version: version.Version,
	}
	err := app.Run(context.Background(), os.Args)
	if err != nil {
		logrus.Fatalln(err)
	}
}

func startServer(ctx context.Context, c *cli.Command) error {
	appCnf, err := helpers.ReadYamlConfigFile(c.String("config"))
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(&appCnf.LogSettings)
	if err != nil {
		return fmt.Errorf("failed to setup logger: %w", err)
	}
	appCnf.Logger = logger

	// now prepare our server
	err = helpers.PrepareServer(appCnf)
	if err != nil {
		logger.Fatalln(err)
	}

	appFactory, err := factory.NewAppFactory(config.GetConfig())
	if err != nil {
		logger.Fatalln(err)
	}

	// defer close connections
	defer helpers.HandleCloseConnections()

	rt := routers.New(appFactory.AppConfig, appFactory.Controllers)
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		sig := <-sigChan
		logger.Infoln("exit requested, shutting down", "signal", sig)
		_ = rt.Shutdown()
	}()

	logger.Infof("listening on port %d", appCnf.Client.Port)
	return rt.Listen(fmt.Sprintf(":%d", appCnf.Client.Port))
}
