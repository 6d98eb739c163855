package response

// GameResult is the response for a played sequence.
// Scores holds one display line per point played.
type GameResult struct {
	Sequence string   `json:"sequence"`
	Scores   []string `json:"scores"`
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
