package extractor

import "errors"

// Sentinel errors for content extraction failures. All of them are
// recoverable: the pipeline falls back to the feed summary and the
// article is still persisted.
var (
	// ErrInvalidURL is returned when the article URL is malformed or uses
	// a scheme other than http/https.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrPrivateIP is returned when the article URL resolves to a private,
	// loopback or link-local address (SSRF prevention).
	ErrPrivateIP = errors.New("URL resolves to private IP")

	// ErrTimeout is returned when the page fetch exceeds the configured
	// per-request timeout.
	ErrTimeout = errors.New("fetch timeout")

	// ErrTooManyRedirects is returned when the fetch exceeds the configured
	// redirect limit.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrBodyTooLarge is returned when the response body exceeds the
	// configured size limit.
	ErrBodyTooLarge = errors.New("response body too large")
)
