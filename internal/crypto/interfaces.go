// SPDX-License-Identifier: Apache-2.0

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/zerovault/zerovault/models"
)

// KeyChain owns key generation and the wrap/unwrap envelope step of
// the zero-knowledge scheme. It knows nothing about the network, the
// database, or users.
//
// Scheme:
//
//	salt      = GenerateSalt()                          (step 1)
//	masterKey = DeriveMasterKey(password, salt, params) (step 2)
//	dek       = GenerateDEK()                           (step 3)
//	wrapped   = WrapDEK(masterKey, dek)                 (step 4)
type KeyChain interface {
	// GenerateSalt returns a random 16-byte salt. The salt is not a
	// secret; it is stored on the server so the master key can be
	// re-derived. Two calls never collide in practice.
	GenerateSalt() ([]byte, error)

	// GenerateDEK returns a fresh random 256-bit data-encryption key.
	// One DEK encrypts exactly one item.
	GenerateDEK() ([]byte, error)

	// WrapDEK encrypts the DEK under the master key with a fresh
	// nonce. The result is safe to store next to the item.
	WrapDEK(masterKey, dek []byte) (models.WrappedKey, error)

	// UnwrapDEK reverses WrapDEK. Fails with ErrIntegrity when the
	// master key is wrong or the blob is corrupted, without revealing
	// which.
	UnwrapDEK(masterKey []byte, wrapped models.WrappedKey) ([]byte, error)
}

// FieldCipher encrypts and decrypts short UTF-8 strings: titles, note
// content, serialized tags, filenames, MIME types.
type FieldCipher interface {
	// EncryptField encrypts one string under a fresh random nonce and
	// returns hex-encoded ciphertext and nonce as a pair.
	EncryptField(key []byte, plaintext string) (models.EncryptedField, error)

	// DecryptField reverses EncryptField. ErrIntegrity on tamper or
	// wrong key, ErrFormat on malformed hex.
	DecryptField(key []byte, field models.EncryptedField) (string, error)

	// EncryptName produces the single-token base64(nonce ‖ ciphertext)
	// encoding used for filenames and MIME types.
	EncryptName(key []byte, name string) (models.NameToken, error)

	// DecryptName reverses EncryptName. Tokens that do not parse as an
	// encrypted blob are returned unchanged: legacy records predating
	// filename encryption share the same column.
	DecryptName(key []byte, token models.NameToken) (string, error)
}

// FileCipher streams arbitrarily large byte sources through the
// chunked envelope format: baseIV (12 bytes) followed by fixed-size
// chunks, each sealed independently under an index-derived nonce.
// All methods are safe for concurrent use on different files.
type FileCipher interface {
	// EncryptFile encrypts src into dst and returns the envelope size.
	// progress, if non-nil, is called after every chunk.
	EncryptFile(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, totalSize int64, chunkSize int, progress ProgressFunc) (int64, error)

	// DecryptFile decrypts an envelope produced by EncryptFile with
	// the same chunk size and returns the plaintext size. Any failed
	// chunk aborts the whole operation with ErrIntegrity.
	DecryptFile(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, totalSize int64, chunkSize int, progress ProgressFunc) (int64, error)

	// EncryptFileWithMeta additionally encrypts the filename and MIME
	// type and returns the out-of-band metadata record.
	EncryptFileWithMeta(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, name, mimeType string, totalSize int64, chunkSize int, progress ProgressFunc) (models.FileMetadata, error)

	// DecryptFileWithMeta reverses EncryptFileWithMeta, returning the
	// decrypted filename and MIME type.
	DecryptFileWithMeta(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, meta models.FileMetadata, progress ProgressFunc) (name, mimeType string, err error)
}
