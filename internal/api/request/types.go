package request

// PlayRequest is the request body for playing a point sequence
type PlayRequest struct {
	Sequence string `json:"sequence"`
}
