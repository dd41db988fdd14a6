package bank

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// canonical strips all whitespace and uppercases, so "370 400 44" and
// "37040044" address the same directory row.
func canonical(s string) string {
	return strings.ToUpper(strings.Join(strings.Fields(s), ""))
}

// memoryStore is an in-memory DirectoryStore fed by ReplaceAll. Lookups take
// a read lock; reloads build fresh maps and swap them under the write lock,
// so readers never observe a half-loaded directory.
type memoryStore struct {
	mu     sync.RWMutex
	byCode map[string]Record
	byBIC  map[string]Record
}

// NewMemoryStore returns an empty in-memory directory store.
func NewMemoryStore() DirectoryStore {
	return &memoryStore{
		byCode: make(map[string]Record),
		byBIC:  make(map[string]Record),
	}
}

func (m *memoryStore) BankByCode(_ context.Context, bankCode string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byCode[canonical(bankCode)]
	if !ok {
		return nil, ErrBankNotFound
	}
	return &rec, nil
}

func (m *memoryStore) BankByBIC(_ context.Context, bic string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.byBIC[canonical(bic)]
	if !ok {
		return nil, ErrBankNotFound
	}
	return &rec, nil
}

func (m *memoryStore) List(_ context.Context, limit, offset int) ([]Record, int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ordered := make([]Record, 0, len(m.byCode))
	for _, rec := range m.byCode {
		ordered = append(ordered, rec)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].BankCode < ordered[j].BankCode })

	total := int64(len(ordered))
	if offset >= len(ordered) {
		return []Record{}, total, nil
	}
	end := offset + limit
	if end > len(ordered) {
		end = len(ordered)
	}
	return ordered[offset:end], total, nil
}

func (m *memoryStore) ReplaceAll(_ context.Context, records []Record) error {
	byCode := make(map[string]Record, len(records))
	byBIC := make(map[string]Record, len(records))
	for _, rec := range records {
		code := canonical(rec.BankCode)
		if _, ok := byCode[code]; !ok {
			byCode[code] = rec
		}
		// Several bank codes may share one BIC; the first row wins for
		// name resolution.
		bic := canonical(rec.BIC)
		if _, ok := byBIC[bic]; !ok {
			byBIC[bic] = rec
		}
	}

	m.mu.Lock()
	m.byCode = byCode
	m.byBIC = byBIC
	m.mu.Unlock()
	return nil
}

func (m *memoryStore) Count(_ context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.byCode)), nil
}
