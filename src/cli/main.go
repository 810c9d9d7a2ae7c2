package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"go.uber.org/zap/zapcore"

	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/config"
	"github.com/jack-barr3tt/comboios/src/common/relay"
	"github.com/jack-barr3tt/comboios/src/common/utils"
)

type Globals struct {
	Relay   string        `help:"Base URL of the relay server." default:"http://localhost:3000" env:"RELAY_URL"`
	Direct  bool          `help:"Query the upstream hosts directly instead of the relay."`
	Output  string        `help:"Output format." short:"o" enum:"table,json,yaml" default:"table"`
	Timeout time.Duration `help:"Per-request timeout." default:"10s"`
}

var CLI struct {
	Globals

	Search  SearchCmd  `cmd:"" help:"Search stations by name."`
	Station StationCmd `cmd:"" help:"Show the trains passing a station."`
	Train   TrainCmd   `cmd:"" help:"Show a train's live state and route."`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("comboios"),
		kong.Description("Stations, timetables and trains from Comboios de Portugal."),
		kong.UsageOnError(),
	)

	utils.InitLoggerTo(zapcore.Lock(os.Stderr))
	defer utils.SyncLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, err := newSource(CLI.Globals)
	kctx.FatalIfErrorf(err)

	app := &App{
		Ctx:    ctx,
		Source: source,
		Out:    os.Stdout,
		Format: CLI.Output,
	}
	kctx.FatalIfErrorf(kctx.Run(app))
}

// newSource picks the relay by default. --direct reads the upstream hosts
// from the same environment as the relay server.
func newSource(g Globals) (Source, error) {
	log := utils.GetLogger()
	if !g.Direct {
		return relay.NewClient(g.Relay, utils.NewHTTPClient(), g.Timeout, log), nil
	}

	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	api := cfg.NewAPI(
		comboios.Client(utils.NewHTTPClient()),
		comboios.DefaultRequestTimeout(g.Timeout),
		comboios.Logger(log),
	)
	return Direct{API: api}, nil
}
