package dto

import (
	"time"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// FromTransaction maps a ledger entry to its wire form
func FromTransaction(tx *entity.Transaction) *TransactionResponse {
	if tx == nil {
		return nil
	}
	return &TransactionResponse{
		ID:                tx.ID,
		Type:              string(tx.Type),
		AmountCents:       entity.FormatCentsString(tx.AmountCents),
		BalanceAfterCents: entity.FormatCentsString(tx.BalanceAfterCents),
		Game:              string(tx.GameCode),
		Meta:              tx.Meta,
		IdempotencyKey:    tx.IdempotencyKey,
		CreatedAt:         tx.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// FromMutation maps a single-entry mutation result
func FromMutation(result *usecase.MutationResult) MutationResponse {
	return MutationResponse{
		Transaction:  FromTransaction(result.Transaction),
		BalanceCents: entity.FormatCentsString(result.BalanceCents),
		Balance:      entity.FormatCents(result.BalanceCents),
		Replayed:     result.Replayed,
	}
}

// FromPlay maps a play result
func FromPlay(result *usecase.PlayResult) PlayResponse {
	return PlayResponse{
		Bet:          FromTransaction(result.Bet),
		Payout:       FromTransaction(result.Payout),
		BalanceCents: entity.FormatCentsString(result.BalanceCents),
		Balance:      entity.FormatCents(result.BalanceCents),
		Replayed:     result.Replayed,
	}
}

// FromPage maps a page of history
func FromPage(page *persistence.TransactionPage) TransactionPageResponse {
	items := make([]TransactionResponse, 0, len(page.Items))
	for _, tx := range page.Items {
		items = append(items, *FromTransaction(tx))
	}
	return TransactionPageResponse{
		Page:  page.Page,
		Limit: page.Limit,
		Total: page.Total,
		Items: items,
	}
}

// FromGames maps the game catalogue
func FromGames(games []*entity.Game) []GameResponse {
	out := make([]GameResponse, 0, len(games))
	for _, g := range games {
		out = append(out, GameResponse{
			ID:             g.ID.String(),
			Code:           string(g.Code),
			Name:           g.Name,
			RTPTheoretical: g.RTPTheoretical.StringFixed(2),
		})
	}
	return out
}
