package submit_reservation

// Request carries the storefront session whose draft is being submitted
type Request struct {
	SessionID string
}

// Response carries the messaging hand-off result
type Response struct {
	// Link is the deep link the storefront navigates to
	Link string

	// Persisted reports whether the record-keeping write succeeded. The
	// hand-off happens either way; the flag only feeds the response body so
	// operators can spot silent persistence failures in access logs.
	Persisted bool
}
