package bank

import (
	"context"
	"time"
)

// Record is one directory row: a national bank code with the BIC and
// institution name it resolves to.
type Record struct {
	BankCode string `json:"bank_code"`
	BIC      string `json:"bic"`
	BankName string `json:"bank_name"`
	Country  string `json:"country"`
}

// DirectoryStore holds the directory records. Implementations must be safe
// for concurrent readers; ReplaceAll swaps the full record set atomically.
// List orders by bank code so pages are stable across requests.
type DirectoryStore interface {
	BankByCode(ctx context.Context, bankCode string) (*Record, error)
	BankByBIC(ctx context.Context, bic string) (*Record, error)
	List(ctx context.Context, limit, offset int) ([]Record, int64, error)
	ReplaceAll(ctx context.Context, records []Record) error
	Count(ctx context.Context) (int64, error)
}

// Loader produces a fresh record set, typically from a CSV file.
type Loader interface {
	Load(ctx context.Context) ([]Record, error)
}

// CacheOperator defines the caching operations the directory service needs
type CacheOperator interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPattern(ctx context.Context, pattern string) error
	GenerateKey(entityType, keyType string, value interface{}) string
}

// MetricsCollector defines the interface for collecting directory metrics
type MetricsCollector interface {
	RecordLookup(kind, outcome string)
	RecordCacheHit(key string)
	RecordCacheMiss(key string)
	RecordReload(outcome string, records int)
	RecordOperationDuration(operation string, duration time.Duration)
}
