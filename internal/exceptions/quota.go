package exceptions

// QuotaExceededError is the canonical derived DOMException interface
// (spec.md §4.7): its name is fixed, it carries two extra nullable,
// non-negative number fields, and its constructor enforces
// requested >= quota when both are present.
type QuotaExceededError struct {
	DOMException
	Quota     *float64
	Requested *float64
}

// NewQuotaExceededError validates quota/requested per spec.md §4.7/§8.2
// Scenario F and constructs the exception, or returns a RangeError when the
// invariants are violated:
//   - quota, if present, must be >= 0.
//   - requested, if present, must be >= 0.
//   - if both are present, requested must be >= quota.
func NewQuotaExceededError(message string, quota, requested *float64) (*QuotaExceededError, *SimpleException) {
	if quota != nil && *quota < 0 {
		return nil, NewRangeError("quota must not be negative")
	}
	if requested != nil && *requested < 0 {
		return nil, NewRangeError("requested must not be negative")
	}
	if quota != nil && requested != nil && *requested < *quota {
		return nil, NewRangeError("requested must be greater than or equal to quota")
	}

	return &QuotaExceededError{
		DOMException: DOMException{Name: "QuotaExceededError", Message: message},
		Quota:        quota,
		Requested:    requested,
	}, nil
}

// Serialize extends DOMException.Serialize with the quota/requested fields
// (omitted when nil, matching spec.md §6.2's "optional fields are omitted
// when absent" rule).
func (e *QuotaExceededError) Serialize() map[string]any {
	out := e.DOMException.Serialize()
	if e.Quota != nil {
		out["quota"] = *e.Quota
	}
	if e.Requested != nil {
		out["requested"] = *e.Requested
	}
	return out
}
