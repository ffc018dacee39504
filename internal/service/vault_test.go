// SPDX-License-Identifier: Apache-2.0

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/zerovault/zerovault/internal/crypto"
	"github.com/zerovault/zerovault/internal/logger"
	"github.com/zerovault/zerovault/internal/mock"
	"github.com/zerovault/zerovault/models"
)

var testKDFParams = crypto.KDFParams{Time: 1, Memory: 64, Threads: 1, KeyLen: 32}

// newRealVault builds a service over the real crypto components and
// unlocks it.
func newRealVault(t *testing.T) VaultService {
	t.Helper()
	fields := crypto.NewFieldCipher()
	svc := NewVaultService(crypto.NewKeyChain(), fields, crypto.NewFileCipher(fields), 1024, logger.Nop())
	require.NoError(t, svc.Unlock("password123", []byte("salt-salt-salt-A"), testKDFParams))
	return svc
}

func TestVaultService_NoteRoundTrip(t *testing.T) {
	svc := newRealVault(t)
	defer svc.Close()

	note := models.Note{
		ID:      uuid.New(),
		Title:   "groceries",
		Content: "milk, eggs, coffee",
		Tags:    []string{"home", "weekly"},
	}

	enc, err := svc.EncryptNote(note)
	require.NoError(t, err)

	// Every field carries its own nonce.
	assert.NotEqual(t, enc.Title.Nonce, enc.Content.Nonce)
	assert.NotEqual(t, enc.Title.Nonce, enc.Tags.Nonce)
	assert.NotEmpty(t, enc.WrappedKey.Key)

	got, err := svc.DecryptNote(enc)
	require.NoError(t, err)
	assert.Equal(t, note, got)
}

func TestVaultService_FreshDEKPerNote(t *testing.T) {
	svc := newRealVault(t)
	defer svc.Close()

	n1, err := svc.EncryptNote(models.Note{ID: uuid.New(), Title: "one"})
	require.NoError(t, err)
	n2, err := svc.EncryptNote(models.Note{ID: uuid.New(), Title: "two"})
	require.NoError(t, err)

	assert.NotEqual(t, n1.WrappedKey, n2.WrappedKey)
}

func TestVaultService_WrongPasswordRejected(t *testing.T) {
	svc := newRealVault(t)
	defer svc.Close()

	enc, err := svc.EncryptNote(models.Note{ID: uuid.New(), Title: "secret"})
	require.NoError(t, err)

	fields := crypto.NewFieldCipher()
	other := NewVaultService(crypto.NewKeyChain(), fields, crypto.NewFileCipher(fields), 1024, logger.Nop())
	require.NoError(t, other.Unlock("wrong password", []byte("salt-salt-salt-A"), testKDFParams))
	defer other.Close()

	_, err = other.DecryptNote(enc)
	assert.ErrorIs(t, err, crypto.ErrIntegrity)
}

func TestVaultService_FileRoundTrip(t *testing.T) {
	svc := newRealVault(t)
	defer svc.Close()

	plaintext := bytes.Repeat([]byte{'z'}, 5000)

	var envelope bytes.Buffer
	meta, wrapped, err := svc.EncryptFile(context.Background(), bytes.NewReader(plaintext), &envelope,
		"data.bin", "application/octet-stream", int64(len(plaintext)), nil)
	require.NoError(t, err)
	require.Equal(t, int64(len(plaintext)), meta.OriginalSize)

	var out bytes.Buffer
	name, mimeType, err := svc.DecryptFile(context.Background(), wrapped, meta, bytes.NewReader(envelope.Bytes()), &out, nil)
	require.NoError(t, err)

	assert.Equal(t, "data.bin", name)
	assert.Equal(t, "application/octet-stream", mimeType)
	assert.Equal(t, plaintext, out.Bytes())
}

func TestVaultService_LockedSessionRejectsOperations(t *testing.T) {
	fields := crypto.NewFieldCipher()
	svc := NewVaultService(crypto.NewKeyChain(), fields, crypto.NewFileCipher(fields), 1024, logger.Nop())

	_, err := svc.EncryptNote(models.Note{ID: uuid.New()})
	assert.ErrorIs(t, err, crypto.ErrInput)
}

func TestVaultService_CloseLocksSession(t *testing.T) {
	svc := newRealVault(t)
	svc.Close()

	_, err := svc.EncryptNote(models.Note{ID: uuid.New()})
	assert.ErrorIs(t, err, crypto.ErrInput)
}

// DecryptNote memoizes per note ID: the unwrap and field decryption
// run once until the entry is invalidated.
func TestVaultService_DecryptNoteUsesCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeys := mock.NewMockKeyChain(ctrl)
	mockFields := mock.NewMockFieldCipher(ctrl)
	mockFiles := mock.NewMockFileCipher(ctrl)

	svc := NewVaultService(mockKeys, mockFields, mockFiles, 1024, logger.Nop())
	require.NoError(t, svc.Unlock("password123", []byte("salt-salt-salt-A"), testKDFParams))
	defer svc.Close()

	enc := models.EncryptedNote{ID: uuid.New()}
	dek := bytes.Repeat([]byte{0xDD}, 32)

	mockKeys.EXPECT().UnwrapDEK(gomock.Any(), enc.WrappedKey).Return(append([]byte(nil), dek...), nil).Times(2)
	gomock.InOrder(
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Title).Return("title", nil),
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Content).Return("content", nil),
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Tags).Return(`["t"]`, nil),
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Title).Return("title", nil),
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Content).Return("content", nil),
		mockFields.EXPECT().DecryptField(gomock.Any(), enc.Tags).Return(`["t"]`, nil),
	)

	// First call decrypts, second is served from the cache.
	n1, err := svc.DecryptNote(enc)
	require.NoError(t, err)
	n2, err := svc.DecryptNote(enc)
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	// Invalidation forces a fresh decryption.
	svc.InvalidateNote(enc.ID)
	_, err = svc.DecryptNote(enc)
	require.NoError(t, err)
}

func TestVaultService_BackupRoundTrip(t *testing.T) {
	svc := newRealVault(t)
	defer svc.Close()

	items := []json.RawMessage{json.RawMessage(`{"id":"n1"}`)}
	data, err := svc.ExportBackup("cafebabe", items)
	require.NoError(t, err)

	doc, err := svc.ImportBackup(data)
	require.NoError(t, err)
	assert.Equal(t, "cafebabe", doc.WrappedDEK)
	require.Len(t, doc.Items, 1)
}
