package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when the
// merged configuration violates an engine invariant.
var (
	// ErrInvalidKDFConfigs indicates unusable Argon2id parameters
	// (zero iterations, zero threads, or memory below what the chosen
	// parallelism requires).
	ErrInvalidKDFConfigs = errors.New("invalid KDF configuration")
	// ErrInvalidChunkSize indicates a non-positive file chunk size.
	ErrInvalidChunkSize = errors.New("invalid chunk size configuration")
)
