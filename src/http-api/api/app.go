package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDKey = "requestid"

func NewApp(server *APIServer, requestTimeout time.Duration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "comboios-server",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(server.Logger))
	app.Use(cors.New())

	RegisterHandlers(app, server, requestTimeout)

	return app
}

func RegisterHandlers(router fiber.Router, server *APIServer, requestTimeout time.Duration) {
	withTimeout := func(h fiber.Handler) fiber.Handler {
		return timeout.NewWithContext(h, requestTimeout)
	}

	router.Get("/ping", server.GetPing)
	router.Get("/stations", withTimeout(server.GetStations))
	router.Get("/stations/timetable/:stationId", withTimeout(server.GetStationTimetable))
	router.Get("/trains/:trainId", withTimeout(server.GetTrain))
}

func requestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		if err := c.Next(); err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		if c.Path() != "/ping" {
			log.Infow("request",
				"method", c.Method(),
				"path", c.Path(),
				"status", c.Response().StatusCode(),
				"latency", time.Since(start),
				"request_id", c.Locals(requestIDKey),
			)
		}

		return nil
	}
}
