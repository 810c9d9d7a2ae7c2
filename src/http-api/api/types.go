package api

type AppResponse[T any] struct {
	Data T `json:"data"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
