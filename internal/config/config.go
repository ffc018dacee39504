// SPDX-License-Identifier: Apache-2.0

package config

// StructuredConfig is the top-level configuration container for the
// envelope engine. It is populated by merging values from environment
// variables, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Crypto holds the key-derivation and chunking parameters.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables.
	// Populated via the CONFIG environment variable.
	JSONFilePath string `env:"CONFIG"`
}

// Crypto holds the tunable parameters of the envelope engine. The
// Argon2id numbers are security parameters, not policy: the engine
// only consumes them, deciding what is strong enough belongs to the
// deployment.
type Crypto struct {
	// KDFTime is the Argon2id time cost (iterations).
	// Env: CRYPTO_KDF_TIME
	KDFTime uint32 `env:"KDF_TIME"`

	// KDFMemory is the Argon2id memory cost in KiB.
	// Env: CRYPTO_KDF_MEMORY
	KDFMemory uint32 `env:"KDF_MEMORY"`

	// KDFThreads is the Argon2id parallelism degree.
	// Env: CRYPTO_KDF_THREADS
	KDFThreads uint8 `env:"KDF_THREADS"`

	// ChunkSize is the plaintext chunk size for file encryption in
	// bytes.
	// Env: CRYPTO_CHUNK_SIZE
	ChunkSize int `env:"CHUNK_SIZE"`
}

// GetStructuredConfig builds the engine configuration: environment
// variables first, then the optional JSON file, then defaults for
// anything still unset, followed by validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
