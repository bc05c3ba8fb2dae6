package memory

import (
	"context"
	"fmt"
	"maps"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/amirhossein-jamali/casino-wallet/internal/domain/entity"
	errs "github.com/amirhossein-jamali/casino-wallet/internal/domain/error"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/core"
	"github.com/amirhossein-jamali/casino-wallet/internal/domain/port/persistence"
)

// Write operations passed to a FailureHook
const (
	OpApplyMutation = "apply_mutation"
	OpCreateAccount = "create_account"
)

// FailureHook is called after a write has been prepared and before it commits.
// Returning an error aborts the write with no visible effect.
type FailureHook func(operation string, playerID uuid.UUID) error

// account is one player's committed state. Commits replace the player pointer
// and only ever append to the log. mu guards every field.
type account struct {
	mu     sync.RWMutex
	player *entity.Player
	log    []*entity.Transaction
	keys   map[string]*entity.Transaction
}

// LedgerStore is an in-process LedgerStore. Writes are exclusive per account;
// mu only guards the account and email indexes and the failure hook.
type LedgerStore struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*account
	emails   map[string]uuid.UUID

	idGenerator  core.IDGenerator
	timeProvider core.TimeProvider
	failureHook  FailureHook
}

var _ persistence.LedgerStore = (*LedgerStore)(nil)

// NewLedgerStore creates an empty in-memory ledger
func NewLedgerStore(idGenerator core.IDGenerator, timeProvider core.TimeProvider) *LedgerStore {
	return &LedgerStore{
		accounts:     make(map[uuid.UUID]*account),
		emails:       make(map[string]uuid.UUID),
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
	}
}

// SetFailureHook installs or clears (nil) the failure injection hook
func (s *LedgerStore) SetFailureHook(hook FailureHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failureHook = hook
}

// CreateAccount registers the player and its optional initial credit
func (s *LedgerStore) CreateAccount(ctx context.Context, player *entity.Player, initialCredit *entity.Transaction) error {
	if err := ctx.Err(); err != nil {
		return errs.StoreUnavailable(OpCreateAccount, err)
	}

	s.mu.RLock()
	taken := s.registered(player)
	hook := s.failureHook
	s.mu.RUnlock()
	if taken {
		return errs.ErrDuplicatePlayer
	}

	next := *player
	acc := &account{player: &next, keys: make(map[string]*entity.Transaction)}

	var entry *entity.Transaction
	if initialCredit != nil {
		if initialCredit.PlayerID != player.ID || initialCredit.Type != entity.TransactionDeposit {
			return fmt.Errorf("%w: initial credit must be a DEPOSIT for the new player", errs.ErrInvalidRequest)
		}
		if err := next.Apply(initialCredit.SignedAmount(), s.timeProvider); err != nil {
			return err
		}
		entry = s.stamp(initialCredit, &next)
		acc.log = append(acc.log, entry)
	}

	if err := injectFailure(hook, OpCreateAccount, player.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// A concurrent registration may have won while the hook ran
	if s.registered(player) {
		return errs.ErrDuplicatePlayer
	}
	s.accounts[player.ID] = acc
	if player.Email != "" {
		s.emails[player.Email] = player.ID
	}

	*player = next
	if entry != nil {
		*initialCredit = *entry
	}
	return nil
}

// registered reports whether the player's id or email is taken; callers hold mu
func (s *LedgerStore) registered(player *entity.Player) bool {
	if _, exists := s.accounts[player.ID]; exists {
		return true
	}
	if player.Email != "" {
		if _, taken := s.emails[player.Email]; taken {
			return true
		}
	}
	return false
}

// lookup returns the player's account and the current failure hook
func (s *LedgerStore) lookup(playerID uuid.UUID) (*account, FailureHook, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[playerID]
	if !ok {
		return nil, nil, errs.ErrPlayerNotFound
	}
	return acc, s.failureHook, nil
}

// ApplyMutation checks sufficiency, moves the balance and appends record atomically
func (s *LedgerStore) ApplyMutation(
	ctx context.Context,
	playerID uuid.UUID,
	deltaCents int64,
	record *entity.Transaction,
) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, errs.StoreUnavailable(OpApplyMutation, err)
	}
	if record == nil || record.PlayerID != playerID || record.SignedAmount() != deltaCents {
		return 0, fmt.Errorf("%w: record does not match delta %d", errs.ErrInvalidAmount, deltaCents)
	}

	acc, hook, err := s.lookup(playerID)
	if err != nil {
		return 0, err
	}

	acc.mu.Lock()
	defer acc.mu.Unlock()

	if record.IdempotencyKey != "" {
		if _, used := acc.keys[record.IdempotencyKey]; used {
			return 0, errs.ErrDuplicateRequest
		}
	}

	// Work on a copy so a rejected or failed write leaves no trace
	next := *acc.player
	if err := next.Apply(deltaCents, s.timeProvider); err != nil {
		return 0, err
	}
	entry := s.stamp(record, &next)

	if err := injectFailure(hook, OpApplyMutation, playerID); err != nil {
		return 0, err
	}

	acc.player = &next
	acc.log = append(acc.log, entry)
	if entry.IdempotencyKey != "" {
		acc.keys[entry.IdempotencyKey] = entry
	}

	*record = *cloneTransaction(entry)
	return next.BalanceCents(), nil
}

// GetBalance returns the committed balance
func (s *LedgerStore) GetBalance(ctx context.Context, playerID uuid.UUID) (int64, error) {
	acc, _, err := s.lookup(playerID)
	if err != nil {
		return 0, err
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()
	return acc.player.BalanceCents(), nil
}

// ListTransactions filters, orders by createdAt DESC, id DESC and pages the log
func (s *LedgerStore) ListTransactions(ctx context.Context, filter persistence.TransactionFilter) (*persistence.TransactionPage, error) {
	acc, _, err := s.lookup(filter.PlayerID)
	if err != nil {
		return nil, err
	}

	acc.mu.RLock()
	matched := make([]*entity.Transaction, 0, len(acc.log))
	for _, tx := range acc.log {
		if matches(tx, filter) {
			matched = append(matched, tx)
		}
	}
	acc.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	page := &persistence.TransactionPage{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: int64(len(matched)),
		Items: []*entity.Transaction{},
	}

	start := filter.Offset()
	if start >= len(matched) {
		return page, nil
	}
	end := len(matched)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}

	for _, tx := range matched[start:end] {
		page.Items = append(page.Items, cloneTransaction(tx))
	}
	return page, nil
}

// FindByIdempotencyKey returns entries stored under key or its payout key, oldest first
func (s *LedgerStore) FindByIdempotencyKey(ctx context.Context, playerID uuid.UUID, key string) ([]*entity.Transaction, error) {
	acc, _, err := s.lookup(playerID)
	if err != nil {
		return nil, err
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()

	var found []*entity.Transaction
	for _, k := range []string{key, entity.PayoutIdempotencyKey(key)} {
		if tx, ok := acc.keys[k]; ok {
			found = append(found, cloneTransaction(tx))
		}
	}
	return found, nil
}

// SumSignedAmounts folds the player's log
func (s *LedgerStore) SumSignedAmounts(ctx context.Context, playerID uuid.UUID) (int64, error) {
	acc, _, err := s.lookup(playerID)
	if err != nil {
		return 0, err
	}

	acc.mu.RLock()
	defer acc.mu.RUnlock()
	return entity.SumSignedAmounts(acc.log), nil
}

// stamp builds the committed copy of record for the given post-mutation player state
func (s *LedgerStore) stamp(record *entity.Transaction, player *entity.Player) *entity.Transaction {
	entry := cloneTransaction(record)
	entry.ID = s.idGenerator.NewTransactionID()
	entry.BalanceAfterCents = player.BalanceCents()
	entry.CreatedAt = player.UpdatedAt
	return entry
}

// injectFailure runs hook, if any; ApplyMutation callers hold the account lock
func injectFailure(hook FailureHook, operation string, playerID uuid.UUID) error {
	if hook == nil {
		return nil
	}
	return hook(operation, playerID)
}

func matches(tx *entity.Transaction, filter persistence.TransactionFilter) bool {
	if filter.Type != "" && tx.Type != filter.Type {
		return false
	}
	if filter.GameCode != "" && tx.GameCode != filter.GameCode {
		return false
	}
	if filter.From != nil && tx.CreatedAt.Before(*filter.From) {
		return false
	}
	if filter.To != nil && tx.CreatedAt.After(*filter.To) {
		return false
	}
	return true
}

func cloneTransaction(tx *entity.Transaction) *entity.Transaction {
	clone := *tx
	if tx.GameID != nil {
		id := *tx.GameID
		clone.GameID = &id
	}
	if tx.Meta != nil {
		clone.Meta = maps.Clone(tx.Meta)
	}
	return &clone
}
