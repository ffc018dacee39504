// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/zerovault/zerovault/internal/crypto"
	"github.com/zerovault/zerovault/models"
)

// VaultService is the session-scoped orchestration layer above the
// envelope engine. One VaultService corresponds to one unlocked
// session: Unlock derives and holds the master key, Close wipes it.
//
// All cryptographic work is delegated to the crypto package; this
// layer only decides which key encrypts what and memoizes decrypted
// items for the session.
type VaultService interface {
	// Unlock derives the session master key from the user secret and
	// salt. Must be called before any other operation.
	Unlock(secret string, salt []byte, params crypto.KDFParams) error

	// Close wipes the master key and clears the decrypted-item cache.
	// The service is unusable afterwards.
	Close()

	// EncryptNote encrypts every field of note under a fresh DEK and
	// returns the stored form together with the wrapped DEK.
	EncryptNote(note models.Note) (models.EncryptedNote, error)

	// DecryptNote reverses EncryptNote. Results are memoized per note
	// ID until InvalidateNote or Close.
	DecryptNote(enc models.EncryptedNote) (models.Note, error)

	// InvalidateNote drops the cached plaintext for id, forcing the
	// next DecryptNote to do the cryptographic work again. Called when
	// the item is known to have changed server-side.
	InvalidateNote(id uuid.UUID)

	// EncryptFile streams src into an encrypted envelope on dst under
	// a fresh DEK and returns the file metadata plus the wrapped DEK.
	EncryptFile(ctx context.Context, src io.Reader, dst io.Writer, name, mimeType string, size int64, progress crypto.ProgressFunc) (models.FileMetadata, models.WrappedKey, error)

	// DecryptFile reverses EncryptFile, returning the decrypted
	// filename and MIME type.
	DecryptFile(ctx context.Context, wrapped models.WrappedKey, meta models.FileMetadata, src io.Reader, dst io.Writer, progress crypto.ProgressFunc) (name, mimeType string, err error)

	// ExportBackup serializes a wrapped key and encrypted items into
	// one portable document.
	ExportBackup(wrappedDEK string, items []json.RawMessage) ([]byte, error)

	// ImportBackup parses a document produced by ExportBackup.
	ImportBackup(data []byte) (models.BackupDocument, error)
}
