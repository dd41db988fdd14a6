package bank

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Service is the bank directory: code and BIC lookups, plus reload control.
// ResolveBIC and ResolveBankName satisfy the directory dependency of the
// IBAN service, where a miss is a boolean rather than an error.
type Service interface {
	ResolveBIC(ctx context.Context, bankCode string) (string, bool)
	ResolveBankName(ctx context.Context, bic string) (string, bool)
	LookupByBankCode(ctx context.Context, bankCode string) (*Record, error)
	LookupByBIC(ctx context.Context, bic string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, int64, error)
	Reload(ctx context.Context) error
	Watch(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}

type service struct {
	store   DirectoryStore
	loader  Loader
	cache   CacheOperator
	metrics MetricsCollector
}

// NewService creates a directory service backed by store. loader may be nil
// for stores that are their own source of truth (Postgres); cache may be nil
// to disable the read-through cache.
func NewService(store DirectoryStore, loader Loader, cache CacheOperator, metrics MetricsCollector) Service {
	if store == nil {
		panic("directory store is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{
		store:   store,
		loader:  loader,
		cache:   cache,
		metrics: metrics,
	}
}

func (s *service) ResolveBIC(ctx context.Context, bankCode string) (string, bool) {
	rec, err := s.LookupByBankCode(ctx, bankCode)
	if err != nil {
		return "", false
	}
	return rec.BIC, true
}

func (s *service) ResolveBankName(ctx context.Context, bic string) (string, bool) {
	rec, err := s.LookupByBIC(ctx, bic)
	if err != nil {
		return "", false
	}
	return rec.BankName, true
}

func (s *service) LookupByBankCode(ctx context.Context, bankCode string) (*Record, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("directory_lookup_code", time.Since(start))
	}()

	code := canonical(bankCode)
	if rec, ok := s.fromCache(ctx, "code", code); ok {
		s.metrics.RecordLookup("bank_code", "hit")
		return rec, nil
	}

	rec, err := s.store.BankByCode(ctx, code)
	if err != nil {
		s.metrics.RecordLookup("bank_code", "miss")
		return nil, err
	}
	s.metrics.RecordLookup("bank_code", "hit")
	s.toCache(ctx, "code", code, rec)
	return rec, nil
}

func (s *service) LookupByBIC(ctx context.Context, bic string) (*Record, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("directory_lookup_bic", time.Since(start))
	}()

	b := canonical(bic)
	if rec, ok := s.fromCache(ctx, "bic", b); ok {
		s.metrics.RecordLookup("bic", "hit")
		return rec, nil
	}

	rec, err := s.store.BankByBIC(ctx, b)
	if err != nil && len(b) == 8 {
		// An 8-character BIC addresses the primary office; the directory
		// stores the 11-character form.
		rec, err = s.store.BankByBIC(ctx, b+"XXX")
	}
	if err != nil {
		s.metrics.RecordLookup("bic", "miss")
		return nil, err
	}
	s.metrics.RecordLookup("bic", "hit")
	s.toCache(ctx, "bic", b, rec)
	return rec, nil
}

// List pages through the directory. Pages go straight to the store; caching
// windows over a reloadable record set buys nothing.
func (s *service) List(ctx context.Context, limit, offset int) ([]Record, int64, error) {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("directory_list", time.Since(start))
	}()

	return s.store.List(ctx, limit, offset)
}

func (s *service) fromCache(ctx context.Context, keyType, value string) (*Record, bool) {
	if s.cache == nil {
		return nil, false
	}
	key := s.cache.GenerateKey("bank", keyType, value)
	var rec Record
	found, err := s.cache.Get(ctx, key, &rec)
	if err != nil || !found {
		s.metrics.RecordCacheMiss(key)
		return nil, false
	}
	s.metrics.RecordCacheHit(key)
	return &rec, true
}

func (s *service) toCache(ctx context.Context, keyType, value string, rec *Record) {
	if s.cache == nil {
		return
	}
	key := s.cache.GenerateKey("bank", keyType, value)
	if err := s.cache.Set(ctx, key, rec); err != nil {
		logrus.WithError(err).Debug("directory cache set failed")
	}
}

// Reload pulls a fresh record set from the loader and swaps it into the
// store. On failure the previous snapshot stays live.
func (s *service) Reload(ctx context.Context) error {
	start := time.Now()
	defer func() {
		s.metrics.RecordOperationDuration("directory_reload", time.Since(start))
	}()

	if s.loader == nil {
		return ErrNoLoader
	}

	records, err := s.loader.Load(ctx)
	if err != nil {
		s.metrics.RecordReload("error", 0)
		return fmt.Errorf("failed to load directory: %w", err)
	}
	if err := s.store.ReplaceAll(ctx, records); err != nil {
		s.metrics.RecordReload("error", 0)
		return fmt.Errorf("failed to replace directory records: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, "bank:*"); err != nil {
			logrus.WithError(err).Warn("directory cache invalidation failed")
		}
	}
	s.metrics.RecordReload("ok", len(records))
	logrus.WithField("records", len(records)).Info("bank directory reloaded")
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
