// SPDX-License-Identifier: Apache-2.0

package crypto

import "errors"

// Sentinel errors returned by the envelope engine. Callers should use
// [errors.Is] to match against these values. Error messages never
// include key material, plaintext, or raw ciphertext bytes.
var (
	// ErrIntegrity is returned when an AEAD tag check fails. A wrong
	// key and corrupted or tampered ciphertext are deliberately
	// indistinguishable: distinguishing them would tell an attacker
	// which of the two they got right.
	ErrIntegrity = errors.New("integrity check failed")

	// ErrFormat is returned when input cannot even reach the cipher:
	// malformed hex or base64, a truncated envelope, or an envelope
	// shorter than the 12-byte base IV.
	ErrFormat = errors.New("malformed encrypted input")

	// ErrInput is returned for invalid arguments, such as a key of the
	// wrong length or a non-positive chunk size.
	ErrInput = errors.New("invalid argument")
)
