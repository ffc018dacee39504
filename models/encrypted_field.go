// SPDX-License-Identifier: Apache-2.0

package models

// EncryptedField is the stored form of one short text field (a title,
// note content, a tag list serialized as JSON). Ciphertext and nonce
// are transmitted as two separate hex strings; the server never sees
// either side decoded.
type EncryptedField struct {
	// Ciphertext is hex(AEAD ciphertext including the 16-byte tag).
	Ciphertext string `json:"ciphertext"`

	// Nonce is hex(12-byte nonce) used for exactly this field.
	// Every field gets its own fresh nonce; fields are never
	// concatenated before encryption.
	Nonce string `json:"nonce"`
}

type (
	// NameToken is a single base64(nonce ‖ ciphertext) string used for
	// filenames and MIME types. Unlike EncryptedField it is one token,
	// because older records may still hold unencrypted plain strings in
	// the same column and the decoder must be able to pass those through.
	NameToken string
)
