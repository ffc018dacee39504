// SPDX-License-Identifier: Apache-2.0

package models

// WrappedKey is a data-encryption key encrypted under the session
// master key. Safe to store on the server: without the master key it
// is indistinguishable from random noise. Unwrapping with any other
// key fails the AEAD tag check, it never yields wrong bytes silently.
type WrappedKey struct {
	// Key is hex(ciphertext of the raw 32-byte DEK, tag included).
	Key string `json:"key"`

	// Nonce is hex(12-byte nonce) used when the DEK was wrapped.
	Nonce string `json:"nonce"`
}
