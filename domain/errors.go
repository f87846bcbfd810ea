package domain

// Custom errors
var (
	ErrAuditClosed     = NewDomainError("cannot add responses to a submitted or completed audit")
	ErrAuditNotStarted = NewDomainError("audit has not been started")
)

// DomainError represents a domain-specific error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func NewDomainError(message string) *DomainError {
	return &DomainError{Message: message}
}
