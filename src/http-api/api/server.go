package api

import (
	"github.com/jack-barr3tt/comboios/src/common/comboios"
	"go.uber.org/zap"
)

type APIServer struct {
	API    *comboios.API
	Logger *zap.SugaredLogger
}

func NewServer(api *comboios.API, logger *zap.SugaredLogger) *APIServer {
	return &APIServer{
		API:    api,
		Logger: logger,
	}
}
