package dto

// RegisterPlayerRequest represents the API request for opening an account
type RegisterPlayerRequest struct {
	Email string `json:"email" binding:"omitempty,email,max=254"`
}

// PlayerResponse represents a newly registered player
type PlayerResponse struct {
	PlayerID     string `json:"playerId"`
	Email        string `json:"email,omitempty"`
	BalanceCents string `json:"balanceCents"`
	Balance      string `json:"balance"`
}
