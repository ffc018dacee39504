// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/zerovault/zerovault/models"
)

// fieldCipher is the private implementation of [FieldCipher].
type fieldCipher struct{}

// NewFieldCipher constructs the default [FieldCipher].
func NewFieldCipher() FieldCipher {
	return &fieldCipher{}
}

// EncryptField implements [FieldCipher]. It encrypts one UTF-8 string
// under key with a fresh random nonce and returns ciphertext and
// nonce as separate hex strings. The empty string is a valid input
// and round-trips to the empty string.
func (f *fieldCipher) EncryptField(key []byte, plaintext string) (models.EncryptedField, error) {
	gcm, err := newAEAD(key)
	if err != nil {
		return models.EncryptedField{}, err
	}

	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return models.EncryptedField{}, err
	}

	ct := gcm.Seal(nil, nonce, []byte(plaintext), nil)
	return models.EncryptedField{
		Ciphertext: hex.EncodeToString(ct),
		Nonce:      hex.EncodeToString(nonce),
	}, nil
}

// DecryptField implements [FieldCipher], the inverse of EncryptField.
// Returns [ErrFormat] on malformed hex and [ErrIntegrity] if the tag
// check fails.
func (f *fieldCipher) DecryptField(key []byte, field models.EncryptedField) (string, error) {
	gcm, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	ct, err := hex.DecodeString(field.Ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: decode field ciphertext", ErrFormat)
	}
	nonce, err := hex.DecodeString(field.Nonce)
	if err != nil {
		return "", fmt.Errorf("%w: decode field nonce", ErrFormat)
	}
	if len(nonce) != NonceSize {
		return "", fmt.Errorf("%w: field nonce must be %d bytes", ErrFormat, NonceSize)
	}

	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: decrypt field", ErrIntegrity)
	}
	return string(pt), nil
}

// EncryptName implements [FieldCipher]. Filenames and MIME types are
// carried as a single base64(nonce ‖ ciphertext) token because older
// records store them as plain strings in the same column, and one
// column cannot hold a two-string pair.
func (f *fieldCipher) EncryptName(key []byte, name string) (models.NameToken, error) {
	gcm, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return "", err
	}

	// Seal with the nonce as the destination prefix: blob = nonce ‖ ct.
	blob := gcm.Seal(nonce, nonce, []byte(name), nil)
	return models.NameToken(base64.StdEncoding.EncodeToString(blob)), nil
}

// DecryptName implements [FieldCipher], the inverse of EncryptName,
// with one deliberate compatibility exception: a token that is not
// valid base64, or too short to contain a nonce and tag, is treated
// as a pre-encryption legacy value and returned unchanged. This
// heuristic can misclassify an oddly short encrypted value as legacy
// plaintext; it is a migration aid, not a security boundary, and it
// must not spread to field or file decryption. A well-formed token
// that fails its tag check still returns [ErrIntegrity].
func (f *fieldCipher) DecryptName(key []byte, token models.NameToken) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(string(token))
	if err != nil || len(blob) < NonceSize+TagSize {
		// Legacy unencrypted value.
		return string(token), nil
	}

	gcm, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce, ct := blob[:NonceSize], blob[NonceSize:]
	pt, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return "", fmt.Errorf("%w: decrypt name", ErrIntegrity)
	}
	return string(pt), nil
}
