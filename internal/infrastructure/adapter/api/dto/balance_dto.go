package dto

// BalanceResponse represents the API response for a player's balance.
// BalanceCents is the exact value; Balance is for display only.
type BalanceResponse struct {
	PlayerID     string `json:"playerId"`
	BalanceCents string `json:"balanceCents"`
	Balance      string `json:"balance"`
}

// ReconcileResponse compares the stored balance with the sum of the log
type ReconcileResponse struct {
	PlayerID       string `json:"playerId"`
	BalanceCents   string `json:"balanceCents"`
	LedgerSumCents string `json:"ledgerSumCents"`
	Consistent     bool   `json:"consistent"`
}
