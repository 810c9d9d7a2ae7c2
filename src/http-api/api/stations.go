package api

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jack-barr3tt/comboios/src/common/types"
)

func (s *APIServer) GetStations(c *fiber.Ctx) error {
	query := strings.Clone(c.Query("query"))
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error:   "Bad Request",
			Message: "query parameter is required",
		})
	}

	s.Logger.Infow("finding stations", "query", query)

	stations, err := s.API.SearchStations(c.UserContext(), query)
	if err != nil {
		return s.failure(c, err, "Failed to search stations")
	}

	return c.JSON(AppResponse[[]types.Station]{Data: stations})
}

func (s *APIServer) GetStationTimetable(c *fiber.Ctx) error {
	stationID := strings.Clone(c.Params("stationId"))

	s.Logger.Infow("finding timetable for station", "station_id", stationID)

	timetable, err := s.API.GetStationTimetable(c.UserContext(), stationID)
	if err != nil {
		return s.failure(c, err, "Failed to retrieve station timetable")
	}

	return c.JSON(AppResponse[[]types.Timetable]{Data: timetable})
}
