// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/zerovault/zerovault/internal/backup"
	"github.com/zerovault/zerovault/internal/cache"
	"github.com/zerovault/zerovault/internal/crypto"
	"github.com/zerovault/zerovault/internal/logger"
	"github.com/zerovault/zerovault/models"
)

// vaultService is the private implementation of [VaultService].
//
// Unlock and Close delimit the session; the other methods may be
// called concurrently between them for different items. The master
// key is the only session state: every cryptographic call passes it
// (or a DEK) explicitly, no ambient state is read.
type vaultService struct {
	keys   crypto.KeyChain
	fields crypto.FieldCipher
	files  crypto.FileCipher

	decrypted *cache.DecryptedItems
	log       *logger.Logger

	chunkSize int
	masterKey []byte
}

// NewVaultService constructs a locked [VaultService]. chunkSize <= 0
// selects the default 64 KiB.
func NewVaultService(keys crypto.KeyChain, fields crypto.FieldCipher, files crypto.FileCipher, chunkSize int, log *logger.Logger) VaultService {
	if chunkSize < 1 {
		chunkSize = models.DefaultChunkSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &vaultService{
		keys:      keys,
		fields:    fields,
		files:     files,
		decrypted: cache.New(),
		log:       log,
		chunkSize: chunkSize,
	}
}

// Unlock implements [VaultService].
func (s *vaultService) Unlock(secret string, salt []byte, params crypto.KDFParams) error {
	if len(salt) == 0 {
		return fmt.Errorf("%w: empty salt", crypto.ErrInput)
	}
	s.masterKey = crypto.DeriveMasterKey(secret, salt, params)
	s.log.Debug().Msg("session unlocked")
	return nil
}

// Close implements [VaultService]. Best-effort scrubbing: the key
// buffer is overwritten before the reference is dropped, and all
// cached plaintext is released.
func (s *vaultService) Close() {
	crypto.Zero(s.masterKey)
	s.masterKey = nil
	s.decrypted.Clear()
	s.log.Debug().Msg("session closed")
}

func (s *vaultService) requireUnlocked() error {
	if s.masterKey == nil {
		return fmt.Errorf("%w: session is locked", crypto.ErrInput)
	}
	return nil
}

// EncryptNote implements [VaultService]. Each field gets its own
// fresh nonce under the note's own DEK; tags are serialized to JSON
// and encrypted as one field.
func (s *vaultService) EncryptNote(note models.Note) (models.EncryptedNote, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.EncryptedNote{}, err
	}

	dek, err := s.keys.GenerateDEK()
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("generate DEK: %w", err)
	}
	defer crypto.Zero(dek)

	wrapped, err := s.keys.WrapDEK(s.masterKey, dek)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("wrap DEK: %w", err)
	}

	encTitle, err := s.fields.EncryptField(dek, note.Title)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("encrypt title: %w", err)
	}
	encContent, err := s.fields.EncryptField(dek, note.Content)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("encrypt content: %w", err)
	}

	tagsJSON, err := json.Marshal(note.Tags)
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("marshal tags: %w", err)
	}
	encTags, err := s.fields.EncryptField(dek, string(tagsJSON))
	if err != nil {
		return models.EncryptedNote{}, fmt.Errorf("encrypt tags: %w", err)
	}

	s.log.Debug().Stringer("note_id", note.ID).Msg("note encrypted")
	return models.EncryptedNote{
		ID:         note.ID,
		Title:      encTitle,
		Content:    encContent,
		Tags:       encTags,
		WrappedKey: wrapped,
	}, nil
}

// DecryptNote implements [VaultService].
func (s *vaultService) DecryptNote(enc models.EncryptedNote) (models.Note, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.Note{}, err
	}

	if cached, ok := s.decrypted.Get(enc.ID); ok {
		if note, ok := cached.(models.Note); ok {
			return note, nil
		}
	}

	dek, err := s.keys.UnwrapDEK(s.masterKey, enc.WrappedKey)
	if err != nil {
		return models.Note{}, fmt.Errorf("unwrap DEK: %w", err)
	}
	defer crypto.Zero(dek)

	title, err := s.fields.DecryptField(dek, enc.Title)
	if err != nil {
		return models.Note{}, fmt.Errorf("decrypt title: %w", err)
	}
	content, err := s.fields.DecryptField(dek, enc.Content)
	if err != nil {
		return models.Note{}, fmt.Errorf("decrypt content: %w", err)
	}
	tagsJSON, err := s.fields.DecryptField(dek, enc.Tags)
	if err != nil {
		return models.Note{}, fmt.Errorf("decrypt tags: %w", err)
	}

	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return models.Note{}, fmt.Errorf("%w: unmarshal tags", crypto.ErrFormat)
	}

	note := models.Note{
		ID:      enc.ID,
		Title:   title,
		Content: content,
		Tags:    tags,
	}
	s.decrypted.Put(enc.ID, note)
	return note, nil
}

// InvalidateNote implements [VaultService].
func (s *vaultService) InvalidateNote(id uuid.UUID) {
	s.decrypted.Invalidate(id)
}

// EncryptFile implements [VaultService].
func (s *vaultService) EncryptFile(ctx context.Context, src io.Reader, dst io.Writer, name, mimeType string, size int64, progress crypto.ProgressFunc) (models.FileMetadata, models.WrappedKey, error) {
	if err := s.requireUnlocked(); err != nil {
		return models.FileMetadata{}, models.WrappedKey{}, err
	}

	dek, err := s.keys.GenerateDEK()
	if err != nil {
		return models.FileMetadata{}, models.WrappedKey{}, fmt.Errorf("generate DEK: %w", err)
	}
	defer crypto.Zero(dek)

	wrapped, err := s.keys.WrapDEK(s.masterKey, dek)
	if err != nil {
		return models.FileMetadata{}, models.WrappedKey{}, fmt.Errorf("wrap DEK: %w", err)
	}

	meta, err := s.files.EncryptFileWithMeta(ctx, dek, src, dst, name, mimeType, size, s.chunkSize, progress)
	if err != nil {
		return models.FileMetadata{}, models.WrappedKey{}, err
	}

	s.log.Debug().
		Int64("original_size", meta.OriginalSize).
		Int64("encrypted_size", meta.EncryptedSize).
		Int("chunk_size", meta.ChunkSize).
		Msg("file encrypted")
	return meta, wrapped, nil
}

// DecryptFile implements [VaultService].
func (s *vaultService) DecryptFile(ctx context.Context, wrapped models.WrappedKey, meta models.FileMetadata, src io.Reader, dst io.Writer, progress crypto.ProgressFunc) (string, string, error) {
	if err := s.requireUnlocked(); err != nil {
		return "", "", err
	}

	dek, err := s.keys.UnwrapDEK(s.masterKey, wrapped)
	if err != nil {
		return "", "", fmt.Errorf("unwrap DEK: %w", err)
	}
	defer crypto.Zero(dek)

	name, mimeType, err := s.files.DecryptFileWithMeta(ctx, dek, src, dst, meta, progress)
	if err != nil {
		return "", "", err
	}

	s.log.Debug().Int64("original_size", meta.OriginalSize).Msg("file decrypted")
	return name, mimeType, nil
}

// ExportBackup implements [VaultService].
func (s *vaultService) ExportBackup(wrappedDEK string, items []json.RawMessage) ([]byte, error) {
	return backup.Export(wrappedDEK, items)
}

// ImportBackup implements [VaultService].
func (s *vaultService) ImportBackup(data []byte) (models.BackupDocument, error) {
	return backup.Import(data)
}
