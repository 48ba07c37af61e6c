package errors

// Error code registry. Codes appear as problem titles so clients can match
// on them without parsing detail text.
const (
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeNotFound         = "NOT_FOUND"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)
