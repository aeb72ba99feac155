package memcache

import (
	"sync"
	"time"

	"talentflow/pkg/assessment"
)

// DraftStore keeps in-progress assessment answers per job+candidate so a
// candidate can resume a half-filled form. Drafts are transient by design:
// the interpreter never persists answers, so an expiring in-memory map is
// all the runtime needs.
type DraftStore interface {
	Set(jobID, candidateID string, answers assessment.Answers, ttl time.Duration)

	// Peek reads without consuming. Returns false if missing or expired.
	Peek(jobID, candidateID string) (assessment.Answers, bool)

	// Consume returns the draft and removes it (done on successful submit).
	Consume(jobID, candidateID string) (assessment.Answers, bool)
}

type draftEntry struct {
	answers   assessment.Answers
	expiresAt time.Time
}

type Drafts struct {
	mu   sync.RWMutex
	data map[string]draftEntry
}

func NewDrafts() *Drafts {
	return &Drafts{
		data: make(map[string]draftEntry),
	}
}

func draftKey(jobID, candidateID string) string {
	return jobID + "/" + candidateID
}

func (s *Drafts) Set(jobID, candidateID string, answers assessment.Answers, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[draftKey(jobID, candidateID)] = draftEntry{
		answers:   answers,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *Drafts) Peek(jobID, candidateID string) (assessment.Answers, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[draftKey(jobID, candidateID)]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.answers, true
}

func (s *Drafts) Consume(jobID, candidateID string) (assessment.Answers, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := draftKey(jobID, candidateID)
	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	delete(s.data, key)
	if time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.answers, true
}
