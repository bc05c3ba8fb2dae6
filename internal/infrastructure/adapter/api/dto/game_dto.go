package dto

// GameResponse is one entry of the game catalogue
type GameResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	RTPTheoretical string `json:"rtpTheoretical"`
}

// HealthResponse reports whether the service can reach its store
type HealthResponse struct {
	Status string `json:"status"`
}
