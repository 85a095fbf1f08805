package main

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/client"
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("go-notes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	// the configured version stands in when the binary was built without ldflags
	if buildVersion == "" {
		buildVersion = cfg.Version
	}
	ui := tui.New(serverAdapter, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	app, err := client.NewApp(serverAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
