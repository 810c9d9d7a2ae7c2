package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"github.com/jack-barr3tt/comboios/src/common/types"
)

func (s *APIServer) GetTrain(c *fiber.Ctx) error {
	trainID, err := comboios.ParseTrainID(c.Params("trainId"))
	if err != nil {
		return s.failure(c, err, "Invalid train id")
	}

	s.Logger.Infow("finding train details", "train_id", trainID)

	train, err := s.API.GetTrainDetails(c.UserContext(), trainID)
	if err != nil {
		return s.failure(c, err, "Failed to retrieve train details")
	}

	return c.JSON(AppResponse[*types.Train]{Data: train})
}
