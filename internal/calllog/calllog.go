// internal/calllog/calllog.go
package calllog

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"tradie-receptionist/internal/model"
)

// Store is the in-memory audit trail of completed calls. Best effort and
// process-scoped: entries live until restart, which is all the dashboard
// endpoints need.
type Store struct {
	mu      sync.Mutex
	records []model.CallRecord
	byCall  map[string]int
}

func NewStore() *Store {
	return &Store{byCall: make(map[string]int)}
}

// Append records a structured call report. Returns the stored record.
func (s *Store) Append(tenantID, callID string, report model.CallReport) model.CallRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := model.CallRecord{
		ID:        uuid.New(),
		TenantID:  tenantID,
		CallID:    callID,
		Report:    report,
		CreatedAt: time.Now().UTC(),
	}
	s.records = append(s.records, rec)
	if callID != "" {
		s.byCall[callID] = len(s.records) - 1
	}
	return rec
}

// AttachTranscript adds the end-of-call transcript and summary to an already
// logged call. A miss is fine: the call may have had no report.
func (s *Store) AttachTranscript(callID, transcript, summary string, duration float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i, ok := s.byCall[callID]
	if !ok {
		return false
	}
	s.records[i].Transcript = transcript
	s.records[i].Summary = summary
	s.records[i].Duration = duration
	return true
}

// ListByTenant returns a tenant's real (non-spam) calls, newest first,
// capped at limit, plus total/real/spam counts.
func (s *Store) ListByTenant(tenantID string, limit int) (calls []model.CallRecord, total, real, spam int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.records {
		if rec.TenantID != tenantID {
			continue
		}
		total++
		if rec.Report.IsSpam {
			spam++
			continue
		}
		real++
		calls = append(calls, rec)
	}

	// newest first
	for i, j := 0, len(calls)-1; i < j; i, j = i+1, j-1 {
		calls[i], calls[j] = calls[j], calls[i]
	}
	if limit > 0 && len(calls) > limit {
		calls = calls[:limit]
	}
	return calls, total, real, spam
}
