package player

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	coreport "github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/notification"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/usecase"
)

// DefaultInitialCreditCents is credited to every new account unless configured otherwise
const DefaultInitialCreditCents int64 = 100000

// emailRule accepts a bare address only; display-name forms are rejected
const emailRule = "email,max=254"

var validate = validator.New()

// PlayerUseCase handles player account business logic
type PlayerUseCase struct {
	store              persistence.LedgerStore
	dispatcher         notification.Dispatcher
	idGenerator        coreport.IDGenerator
	timeProvider       coreport.TimeProvider
	logger             coreport.Logger
	initialCreditCents int64
}

var _ usecase.PlayerUseCase = (*PlayerUseCase)(nil)

// NewPlayerUseCase creates a new PlayerUseCase. A negative initial credit is treated as zero.
func NewPlayerUseCase(
	store persistence.LedgerStore,
	dispatcher notification.Dispatcher,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	initialCreditCents int64,
) *PlayerUseCase {
	if initialCreditCents < 0 {
		initialCreditCents = 0
	}

	return &PlayerUseCase{
		store:              store,
		dispatcher:         dispatcher,
		idGenerator:        idGenerator,
		timeProvider:       timeProvider,
		logger:             logger,
		initialCreditCents: initialCreditCents,
	}
}

// Register opens an account. The initial credit is written as the account's first
// DEPOSIT in the same atomic unit, so the balance always equals the log.
func (u *PlayerUseCase) Register(ctx context.Context, cmd usecase.RegisterPlayerCommand) (*entity.Player, error) {
	email := strings.TrimSpace(cmd.Email)
	if email != "" {
		if err := validate.Var(email, emailRule); err != nil {
			return nil, fmt.Errorf("%w: invalid email", errs.ErrInvalidRequest)
		}
	}

	player, err := entity.NewPlayer(u.idGenerator.NewPlayerID(), email, u.timeProvider)
	if err != nil {
		return nil, err
	}

	var credit *entity.Transaction
	if u.initialCreditCents > 0 {
		credit, err = entity.NewTransaction(player.ID, entity.TransactionDeposit, u.initialCreditCents)
		if err != nil {
			return nil, err
		}
		credit.WithMeta(entity.MetaReason, entity.ReasonInitialCredit)
	}

	if err := u.store.CreateAccount(ctx, player, credit); err != nil {
		u.logger.Warn("Failed to register player", map[string]any{
			"player_id": player.ID.String(),
			"error":     err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Player registered", map[string]any{
		"player_id":            player.ID.String(),
		"initial_credit_cents": u.initialCreditCents,
	})

	events := []notification.Event{
		notification.AggregateChangedEvent{Kind: notification.AggregatePlayer, At: player.CreatedAt},
	}
	if credit != nil {
		events = append([]notification.Event{
			notification.TransactionCreatedEvent{PlayerID: player.ID, Transaction: credit},
			notification.BalanceChangedEvent{PlayerID: player.ID, BalanceCents: player.BalanceCents(), At: player.UpdatedAt},
		}, events...)
	}
	u.dispatcher.Dispatch(events...)

	return player, nil
}
