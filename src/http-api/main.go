package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/config"
	"github.com/jack-barr3tt/comboios/src/common/utils"
	"github.com/jack-barr3tt/comboios/src/http-api/api"
)

func main() {
	cfg, cfgErr := config.Load("")

	utils.InitLogger()
	defer utils.SyncLogger()
	log := utils.GetLogger()

	if cfgErr != nil {
		log.Fatalw("failed to load config", "error", cfgErr)
	}

	cp := cfg.NewAPI(comboios.Client(utils.NewHTTPClient()), comboios.Logger(log))
	app := api.NewApp(api.NewServer(cp, log), cfg.RequestTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Infow("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Warnw("fiber shutdown failed", "error", err)
		}
	}()

	log.Infow("listening", "addr", cfg.HTTPAddr, "request_timeout", cfg.RequestTimeout, "upstream_timeout", cfg.UpstreamTimeout)
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.Fatalw("fiber listen failed", "error", err)
	}
}
