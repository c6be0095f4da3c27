package service

import "errors"

// Validation errors for submitted visit records. These become per-record
// failure reasons in the sync response; they never abort sibling records
// in the same batch.
var (
	// ErrInvalidLocalID is returned when the record's local_id is not a
	// well-formed UUID.
	ErrInvalidLocalID = errors.New("local_id is not a valid uuid")

	// ErrEmptyCounts is returned when both adult and child counts are
	// zero.
	ErrEmptyCounts = errors.New("at least one of adult_count and child_count must be positive")

	// ErrNegativeCounts is returned when a count is below zero.
	ErrNegativeCounts = errors.New("visitor counts must not be negative")

	// ErrQuestionnaireOutOfScope is returned when the record targets a
	// questionnaire the device credential does not cover.
	ErrQuestionnaireOutOfScope = errors.New("questionnaire is not covered by device credential")

	// ErrSiteOutOfScope is returned when the record targets a site the
	// device credential does not cover.
	ErrSiteOutOfScope = errors.New("site is not covered by device credential")

	// ErrQuestionnaireInactive is returned when the targeted campaign is
	// closed.
	ErrQuestionnaireInactive = errors.New("questionnaire is not active")

	// ErrUnknownLocality is returned when the referenced locality does
	// not exist in the reference table.
	ErrUnknownLocality = errors.New("referenced locality does not exist")
)

// resultErrInternal is the per-record error text the server reports for a
// storage fault. Unlike validation verdicts it marks the record as worth
// retrying, so the device leaves it queued instead of quarantining it.
const resultErrInternal = "internal storage error"

// errValidationStore marks a storage fault hit while validating a record.
// It is not a verdict on the record itself: the device must keep the
// record queued and retry, exactly as for a failed insert.
var errValidationStore = errors.New("storage fault during validation")

// Device-side errors.
var (
	// ErrSyncInProgress is reported when a sync attempt is requested
	// while another one is already in flight. Callers treat it as a
	// no-op, not a failure.
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrOffline is reported when a sync attempt is requested while the
	// server is unreachable.
	ErrOffline = errors.New("device is offline")
)
