package dto

// AmountRequest represents a deposit or withdrawal
type AmountRequest struct {
	AmountCents string `json:"amountCents" binding:"required,cents"`
}

// BetRequest represents a stake placed on a game
type BetRequest struct {
	GameCode    string `json:"gameCode" binding:"required,gamecode"`
	AmountCents string `json:"amountCents" binding:"required,cents"`
}

// SettleRequest represents the outcome of a previously placed bet
type SettleRequest struct {
	GameCode    string `json:"gameCode" binding:"required,gamecode"`
	Outcome     string `json:"outcome" binding:"required,oneof=WIN LOSS"`
	StakeCents  string `json:"stakeCents" binding:"required,cents"`
	PayoutCents string `json:"payoutCents" binding:"omitempty,cents"`
}

// PlayRequest represents a bet that is settled in the same call
type PlayRequest struct {
	GameCode    string  `json:"gameCode" binding:"required,gamecode"`
	AmountCents string  `json:"amountCents" binding:"required,cents"`
	Outcome     string  `json:"outcome" binding:"required,oneof=WIN LOSS"`
	PayoutCents *string `json:"payoutCents" binding:"omitempty,cents"`
}

// TransactionResponse is one ledger entry
type TransactionResponse struct {
	ID                string         `json:"id"`
	Type              string         `json:"type"`
	AmountCents       string         `json:"amountCents"`
	BalanceAfterCents string         `json:"balanceAfterCents"`
	Game              string         `json:"game,omitempty"`
	Meta              map[string]any `json:"meta,omitempty"`
	IdempotencyKey    string         `json:"idempotencyKey,omitempty"`
	CreatedAt         string         `json:"createdAt"`
}

// MutationResponse is returned by deposit, withdraw, bet and settle.
// Transaction is omitted when nothing was appended.
type MutationResponse struct {
	Transaction  *TransactionResponse `json:"transaction,omitempty"`
	BalanceCents string               `json:"balanceCents"`
	Balance      string               `json:"balance"`
	Replayed     bool                 `json:"replayed,omitempty"`
}

// PlayResponse is returned by play. Payout is omitted on a loss.
type PlayResponse struct {
	Bet          *TransactionResponse `json:"bet"`
	Payout       *TransactionResponse `json:"payout,omitempty"`
	BalanceCents string               `json:"balanceCents"`
	Balance      string               `json:"balance"`
	Replayed     bool                 `json:"replayed,omitempty"`
}

// TransactionQuery holds the history query string
type TransactionQuery struct {
	Type  string `form:"type"`
	Game  string `form:"game"`
	From  string `form:"from"`
	To    string `form:"to"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1"`
}

// TransactionPageResponse is one page of history, newest first
type TransactionPageResponse struct {
	Page  int                   `json:"page"`
	Limit int                   `json:"limit"`
	Total int64                 `json:"total"`
	Items []TransactionResponse `json:"items"`
}
