package domain

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageSuccessPing          = "pong"
)

type Location struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}
