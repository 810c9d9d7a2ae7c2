package main

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/config"
	"github.com/jack-barr3tt/comboios/src/common/utils"
	"github.com/jack-barr3tt/comboios/src/mcp-server/tools"

	"github.com/mark3labs/mcp-go/server"
)

const version = "0.1.0"

func main() {
	cfg, cfgErr := config.Load("")

	utils.InitLoggerTo(zapcore.Lock(os.Stderr))
	defer utils.SyncLogger()
	log := utils.GetLogger()

	if cfgErr != nil {
		log.Fatalw("failed to load config", "error", cfgErr)
	}

	cp := cfg.NewAPI(comboios.Client(utils.NewHTTPClient()), comboios.Logger(log))
	s := tools.NewServer(tools.NewToolbox(cp, log), version)

	log.Infow("serving MCP over stdio", "version", version)
	if err := server.ServeStdio(s); err != nil {
		log.Fatalw("mcp server stopped", "error", err)
	}
}
