// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies
// the engine's invariants before any key is derived with it.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	c := cfg.Crypto

	if c.KDFTime == 0 || c.KDFThreads == 0 {
		return ErrInvalidKDFConfigs
	}
	// argon2 requires memory >= 8 KiB per thread.
	if c.KDFMemory < 8*uint32(c.KDFThreads) {
		return ErrInvalidKDFConfigs
	}

	if c.ChunkSize < 1 {
		return ErrInvalidChunkSize
	}

	return nil
}
