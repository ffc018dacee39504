// SPDX-License-Identifier: Apache-2.0

package crypto

import "golang.org/x/crypto/argon2"

// KDFParams are the Argon2id tuning parameters. Stored in a struct so
// they can be adjusted per deployment target (e.g. mobile vs. desktop)
// via configuration. Lowering them below the defaults is acceptable
// only in tests; the derived key is only as strong as these numbers.
type KDFParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
	KeyLen  uint32
}

// DefaultKDFParams returns the Argon2id parameters recommended by
// OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:    1,
		Memory:  64 * 1024, // 64 MiB
		Threads: 4,
		KeyLen:  KeySize,
	}
}

// DeriveMasterKey derives the 256-bit session master key from the
// user secret and salt using Argon2id. Deterministic: the same
// (secret, salt) pair always yields the same key, so the key itself
// never needs to be persisted. The result exists only in client
// memory and is never transmitted to the server.
func DeriveMasterKey(secret string, salt []byte, params KDFParams) []byte {
	return argon2.IDKey(
		[]byte(secret),
		salt,
		params.Time,
		params.Memory,
		params.Threads,
		params.KeyLen,
	)
}
