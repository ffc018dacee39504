// SPDX-License-Identifier: Apache-2.0

package models

// DefaultChunkSize is the plaintext chunk size used for file
// encryption when the caller does not override it (64 KiB).
const DefaultChunkSize = 64 * 1024

// FileMetadata travels out-of-band next to an encrypted file blob and
// carries everything needed to decrypt it deterministically. Sizes and
// chunk size are not secret; the name and MIME type are encrypted.
type FileMetadata struct {
	// EncryptedName is the base64(nonce ‖ ciphertext) token of the
	// original filename.
	EncryptedName NameToken `json:"encryptedName"`

	// EncryptedMimeType is the base64(nonce ‖ ciphertext) token of the
	// original MIME type.
	EncryptedMimeType NameToken `json:"encryptedMimeType"`

	// OriginalSize is the plaintext length in bytes.
	OriginalSize int64 `json:"originalSize"`

	// EncryptedSize is the envelope length in bytes:
	// 12 (base IV) + OriginalSize + 16 per chunk.
	EncryptedSize int64 `json:"encryptedSize"`

	// ChunkSize is the plaintext chunk size the file was split with.
	ChunkSize int `json:"chunkSize"`
}
