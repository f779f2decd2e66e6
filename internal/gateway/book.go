package gateway

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// AppraisalBook is the in-memory appraisal ledger. A production gateway
// would push these into the DMS scheduler; the kiosk only needs the id
// back.
type AppraisalBook struct {
	mu      sync.RWMutex
	entries map[string]AppraisalEntry
}

// AppraisalEntry is one booked appraisal.
type AppraisalEntry struct {
	ID       string
	Request  AppraisalRequest
	BookedAt time.Time
}

// NewAppraisalBook creates an empty ledger.
func NewAppraisalBook() *AppraisalBook {
	return &AppraisalBook{entries: make(map[string]AppraisalEntry)}
}

// Book records a request and returns its appraisal id.
func (b *AppraisalBook) Book(req AppraisalRequest) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := uuid.NewString()
	b.entries[id] = AppraisalEntry{ID: id, Request: req, BookedAt: time.Now()}
	return id
}

// Get looks up a booked appraisal.
func (b *AppraisalBook) Get(id string) (AppraisalEntry, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	e, ok := b.entries[id]
	return e, ok
}

// Len returns the number of booked appraisals.
func (b *AppraisalBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}
