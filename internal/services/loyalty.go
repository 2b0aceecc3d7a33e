package cloudz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	config "github.com/clouddistrictclub/cloud-district-app/internal/config"
	interf "github.com/clouddistrictclub/cloud-district-app/internal/interfaces"
	models "github.com/clouddistrictclub/cloud-district-app/internal/models"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// метрики

var (
	ledgerEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cloudz_ledger_entries_total",
			Help: "Кол-во записей леджера",
		},
		[]string{"type"},
	)

	ledgerInconsistentTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudz_ledger_inconsistent_total",
			Help: "Кол-во несогласованных записей баланса и леджера",
		},
	)

	ledgerDriftTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cloudz_ledger_drift_corrected_total",
			Help: "Кол-во исправленных сверкой расхождений",
		},
	)
)

type LoyaltyService struct {
	logger *zap.Logger
	db     interf.LoyaltyStorage
	cache  interf.CacheStorage
	alerts interf.AlertPublisher
	tiers  *config.TierTable
	locks  *accountLocks
	now    func() time.Time
}

// cache и alerts могут быть nil
func NewLoyaltyService(logger *zap.Logger, db interf.LoyaltyStorage, cache interf.CacheStorage, alerts interf.AlertPublisher, tiers *config.TierTable) *LoyaltyService {
	return &LoyaltyService{
		logger: logger,
		db:     db,
		cache:  cache,
		alerts: alerts,
		tiers:  tiers,
		locks:  newAccountLocks(),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *LoyaltyService) Log(msg string, service string, err error) {
	s.logger.Error(msg,
		zap.String("service", service),
		zap.Error(err),
	)
}

func (s *LoyaltyService) Tiers() *config.TierTable {
	return s.tiers
}

// Блокировки на счет: все изменения одного счета идут последовательно
type accountLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*accountLock
}

type accountLock struct {
	mu   sync.Mutex
	refs int
}

func newAccountLocks() *accountLocks {
	return &accountLocks{locks: make(map[uuid.UUID]*accountLock)}
}

func (l *accountLocks) Lock(id uuid.UUID) (unlock func()) {
	l.mu.Lock()
	lock, ok := l.locks[id]
	if !ok {
		lock = &accountLock{}
		l.locks[id] = lock
	}
	lock.refs++
	l.mu.Unlock()

	lock.mu.Lock()
	var once sync.Once
	return func() {
		once.Do(func() {
			lock.mu.Unlock()
			l.mu.Lock()
			lock.refs--
			if lock.refs == 0 {
				delete(l.locks, id)
			}
			l.mu.Unlock()
		})
	}
}

// AppendLedgerEntry - единая точка изменения баланса
func (s *LoyaltyService) AppendLedgerEntry(ctx context.Context, userId uuid.UUID, typeTnx models.LedgerType, amount int64, reference string) (models.LedgerEntry, error) {
	unlock := s.locks.Lock(userId)
	defer unlock()
	return s.appendEntry(ctx, userId, typeTnx, amount, reference, "")
}

// вызывается под блокировкой счета
func (s *LoyaltyService) appendEntry(ctx context.Context, userId uuid.UUID, typeTnx models.LedgerType, amount int64, reference string, key string) (models.LedgerEntry, error) {
	if amount == 0 {
		return models.LedgerEntry{}, fmt.Errorf("ledger amount must be nonzero: %w", models.ErrInvalidAmount)
	}
	if !typeTnx.Valid() {
		return models.LedgerEntry{}, fmt.Errorf("ledger type %q: %w", typeTnx, models.ErrInvalidAmount)
	}
	if key != "" {
		exists, err := s.db.LedgerKeyExists(ctx, key)
		if err != nil {
			return models.LedgerEntry{}, err
		}
		if exists {
			return models.LedgerEntry{}, fmt.Errorf("%s: %w", key, models.ErrDuplicateLedgerKey)
		}
	}

	balance, err := s.db.IncrementBalance(ctx, userId, amount)
	if err != nil {
		return models.LedgerEntry{}, err
	}

	entry := models.LedgerEntry{
		ID:             uuid.New(),
		UserID:         userId,
		Type:           typeTnx,
		Amount:         amount,
		BalanceAfter:   balance,
		Reference:      reference,
		IdempotencyKey: key,
		CreatedAt:      s.now(),
	}
	err = s.db.InsertLedgerEntry(ctx, entry)
	if err != nil {
		// откат инкремента
		_, rerr := s.db.IncrementBalance(ctx, userId, -amount)
		if rerr != nil {
			s.inconsistent(ctx, userId, amount, fmt.Sprintf("insert: %v; rollback: %v", err, rerr))
			return models.LedgerEntry{}, fmt.Errorf("%w: account %s amount %d: %v", models.ErrInconsistentLedgerWrite, userId, amount, err)
		}
		if errors.Is(err, models.ErrDuplicateLedgerKey) {
			return models.LedgerEntry{}, err
		}
		return models.LedgerEntry{}, fmt.Errorf("insert ledger entry: %w", err)
	}

	ledgerEntriesTotal.WithLabelValues(string(typeTnx)).Inc()
	s.invalidateBalance(ctx, userId)
	return entry, nil
}

// баланс и леджер разошлись
func (s *LoyaltyService) inconsistent(ctx context.Context, userId uuid.UUID, amount int64, detail string) {
	ledgerInconsistentTotal.Inc()
	s.logger.Error("Inconsistent ledger write",
		zap.String("service", "appendEntry"),
		zap.String("user", userId.String()),
		zap.Int64("amount", amount),
		zap.String("detail", detail),
	)
	s.alert(ctx, models.LedgerAlert{
		UserID: userId,
		Kind:   models.AlertInconsistentWrite,
		Amount: amount,
		Detail: detail,
		At:     s.now(),
	})
	s.invalidateBalance(ctx, userId)
}

func (s *LoyaltyService) alert(ctx context.Context, alert models.LedgerAlert) {
	if s.alerts == nil {
		return
	}
	if err := s.alerts.PublishLedgerAlert(ctx, alert); err != nil {
		s.Log("Publish alert", "alert", err)
	}
}

// Reconcile сверяет баланс с суммой леджера и дописывает корректирующую запись
func (s *LoyaltyService) Reconcile(ctx context.Context, userId uuid.UUID) (models.Reconciliation, error) {
	unlock := s.locks.Lock(userId)
	defer unlock()

	account, err := s.db.GetAccount(ctx, userId)
	if err != nil {
		return models.Reconciliation{}, err
	}
	sum, err := s.db.SumLedger(ctx, userId)
	if err != nil {
		return models.Reconciliation{}, err
	}
	result := models.Reconciliation{
		UserID:    userId,
		Balance:   account.Balance,
		LedgerSum: sum,
		Drift:     account.Balance - sum,
	}
	if result.Drift == 0 {
		return result, nil
	}

	// баланс не меняется, запись фиксирует расхождение
	entry := models.LedgerEntry{
		ID:           uuid.New(),
		UserID:       userId,
		Type:         models.AdminAdjustment,
		Amount:       result.Drift,
		BalanceAfter: account.Balance,
		Reference:    fmt.Sprintf("Automatic reconciliation: ledger drift %+d corrected", result.Drift),
		CreatedAt:    s.now(),
	}
	if err := s.db.InsertLedgerEntry(ctx, entry); err != nil {
		return result, fmt.Errorf("insert corrective entry: %w", err)
	}
	result.Corrective = &entry

	ledgerDriftTotal.Inc()
	ledgerEntriesTotal.WithLabelValues(string(models.AdminAdjustment)).Inc()
	s.logger.Error("Ledger drift corrected",
		zap.String("service", "Reconcile"),
		zap.String("user", userId.String()),
		zap.Int64("balance", account.Balance),
		zap.Int64("ledger", sum),
		zap.Int64("drift", result.Drift),
	)
	s.alert(ctx, models.LedgerAlert{
		UserID: userId,
		Kind:   models.AlertReconciled,
		Amount: result.Drift,
		Detail: entry.Reference,
		At:     entry.CreatedAt,
	})
	return result, nil
}

// ReconcileAll - сверка всех счетов, возвращает только счета с расхождением
func (s *LoyaltyService) ReconcileAll(ctx context.Context, workers int) ([]models.Reconciliation, error) {
	ids, err := s.db.ListAccountIDs(ctx)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = 1
	}

	// семафор
	semch := make(chan struct{}, workers)
	wg := &sync.WaitGroup{}
	mu := &sync.Mutex{}
	var drifted []models.Reconciliation
	var failed int

	for _, id := range ids {
		select {
		case <-ctx.Done():
			wg.Wait()
			return drifted, ctx.Err()
		case semch <- struct{}{}:
		}
		wg.Add(1)
		go func(id uuid.UUID) {
			defer func() {
				wg.Done()
				<-semch
			}()
			result, err := s.Reconcile(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failed++
				s.logger.Error("Reconcile error",
					zap.Error(err),
					zap.String("service", "ReconcileAll"),
					zap.String("user", id.String()))
				return
			}
			if result.Drift != 0 {
				drifted = append(drifted, result)
			}
		}(id)
	}
	wg.Wait()

	if failed > 0 {
		return drifted, fmt.Errorf("reconcile failed for %d of %d accounts", failed, len(ids))
	}
	return drifted, nil
}

// баланс через кэш
func (s *LoyaltyService) GetBalance(ctx context.Context, userId uuid.UUID) (int64, error) {
	if s.cache != nil {
		points, err := s.cache.GetBalance(ctx, userId)
		if err == nil {
			return points, nil
		}
		// чтение и запись в кэш под блокировкой счета, иначе можно положить баланс до изменения
		unlock := s.locks.Lock(userId)
		defer unlock()
	}
	account, err := s.db.GetAccount(ctx, userId)
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		_ = s.cache.SetBalance(ctx, userId, account.Balance)
	}
	return account.Balance, nil
}

// инвалидировать кэш баланса
func (s *LoyaltyService) invalidateBalance(ctx context.Context, userId uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateBalance(ctx, userId); err != nil {
		s.Log("Invalidate balance", "cache", err)
	}
}

// История леджера пользователя
func (s *LoyaltyService) GetLedger(ctx context.Context, userId uuid.UUID) ([]models.LedgerEntry, error) {
	if _, err := s.db.GetAccount(ctx, userId); err != nil {
		return nil, err
	}
	entries, err := s.db.GetLedger(ctx, userId)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.LedgerEntry{}
	}
	return entries, nil
}

const (
	adminLedgerLimit    = 50
	adminLedgerLimitMax = 200
)

// Леджер всех пользователей для админки
func (s *LoyaltyService) GetAdminLedger(ctx context.Context, filter models.LedgerFilter) (models.AdminLedgerPage, error) {
	if filter.Limit <= 0 {
		filter.Limit = adminLedgerLimit
	}
	if filter.Limit > adminLedgerLimitMax {
		filter.Limit = adminLedgerLimitMax
	}
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Type != "" && !filter.Type.Valid() {
		return models.AdminLedgerPage{}, fmt.Errorf("ledger type %q: %w", filter.Type, models.ErrInvalidAmount)
	}

	entries, total, err := s.db.ListLedger(ctx, filter)
	if err != nil {
		return models.AdminLedgerPage{}, err
	}

	// email владельцев
	seen := make(map[uuid.UUID]struct{})
	var ids []uuid.UUID
	for _, e := range entries {
		if _, ok := seen[e.UserID]; !ok {
			seen[e.UserID] = struct{}{}
			ids = append(ids, e.UserID)
		}
	}
	emails := make(map[uuid.UUID]string, len(ids))
	if len(ids) > 0 {
		accounts, err := s.db.GetAccounts(ctx, ids)
		if err != nil {
			return models.AdminLedgerPage{}, err
		}
		for _, a := range accounts {
			emails[a.ID] = a.Email
		}
	}

	page := models.AdminLedgerPage{
		Entries: make([]models.AdminLedgerEntry, len(entries)),
		Total:   total,
		Skip:    filter.Skip,
		Limit:   filter.Limit,
	}
	for i, e := range entries {
		email, ok := emails[e.UserID]
		if !ok {
			email = "unknown"
		}
		page.Entries[i] = models.AdminLedgerEntry{LedgerEntry: e, UserEmail: email}
	}
	return page, nil
}
