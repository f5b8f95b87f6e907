package adapter

import "errors"

var (
	// ErrConnection indicates the NAS could not be reached at all
	// (dial, TLS, or timeout failure before any API answer).
	ErrConnection = errors.New("file station unreachable")
	// ErrAPIUnavailable indicates the NAS does not offer a required API
	// or does not support the version this client speaks.
	ErrAPIUnavailable = errors.New("required file station api not available")
	// ErrAuthFailed indicates DSM rejected the login credentials.
	ErrAuthFailed = errors.New("file station authentication failed")
	// ErrFileStation indicates a non-upload FileStation operation
	// (e.g. listing shares) was rejected by the NAS.
	ErrFileStation = errors.New("file station request failed")
	// ErrUploadFailed indicates DSM rejected the file write.
	ErrUploadFailed = errors.New("file station upload failed")
)
