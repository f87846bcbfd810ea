package domain

import (
	"time"
)

// AuditStatus represents the status of a store audit
type AuditStatus string

const (
	AuditStatusNotStarted AuditStatus = "NOT_STARTED"
	AuditStatusInProgress AuditStatus = "IN_PROGRESS"
	AuditStatusPaused     AuditStatus = "PAUSED"
	AuditStatusSubmitted  AuditStatus = "SUBMITTED"
	AuditStatusCompleted  AuditStatus = "COMPLETED"
)

// ResponseEntry is a single answer collected during an audit walk-through
type ResponseEntry struct {
	QuestionID string    `json:"question_id"`
	Answer     string    `json:"answer"`
	Score      float64   `json:"score"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Audit represents one execution of a template at a store.
//
// Like Template, Audit is a value object: transitions return a new value.
// The caller must persist the returned value for a transition to take effect.
type Audit struct {
	ID         string          `json:"id"`
	StoreCode  string          `json:"store_code"`
	TemplateID string          `json:"template_id"`
	Status     AuditStatus     `json:"status"`
	Responses  []ResponseEntry `json:"responses"`
	StartedAt  time.Time       `json:"started_at"`
	Score      float64         `json:"score"`
	MaxScore   float64         `json:"max_score"`
}

// NewAudit creates an audit for the given store from a template
func NewAudit(storeCode, templateID string) Audit {
	return Audit{
		StoreCode:  storeCode,
		TemplateID: templateID,
		Status:     AuditStatusNotStarted,
	}
}

// Start begins the audit. Starting an already-started audit keeps the
// original start timestamp.
func (a Audit) Start() Audit {
	if a.Status == AuditStatusNotStarted {
		a.Status = AuditStatusInProgress
		a.StartedAt = time.Now()
	}
	return a
}

// Pause suspends an in-progress audit
func (a Audit) Pause() Audit {
	if a.Status == AuditStatusInProgress {
		a.Status = AuditStatusPaused
	}
	return a
}

// Resume continues a paused audit
func (a Audit) Resume() Audit {
	if a.Status == AuditStatusPaused {
		a.Status = AuditStatusInProgress
	}
	return a
}

// Submit hands the audit in for review
func (a Audit) Submit() Audit {
	a.Status = AuditStatusSubmitted
	return a
}

// Complete finishes the audit and records the final score pair. The scores
// are recorded as given: no bounds check against maxScore is performed.
func (a Audit) Complete(finalScore, maxScore float64) Audit {
	a.Status = AuditStatusCompleted
	a.Score = finalScore
	a.MaxScore = maxScore
	return a
}

// AddResponse appends an entry to the response sequence. Responses can only
// be collected while the audit is in progress or paused.
func (a Audit) AddResponse(entry ResponseEntry) (Audit, error) {
	switch a.Status {
	case AuditStatusSubmitted, AuditStatusCompleted:
		return a, ErrAuditClosed
	case AuditStatusNotStarted:
		return a, ErrAuditNotStarted
	}
	responses := make([]ResponseEntry, len(a.Responses), len(a.Responses)+1)
	copy(responses, a.Responses)
	a.Responses = append(responses, entry)
	return a, nil
}

// Open reports whether the status means the audit is still being worked on
// (in progress or paused)
func (s AuditStatus) Open() bool {
	return s == AuditStatusInProgress || s == AuditStatusPaused
}
