// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"encoding/hex"
	"fmt"

	"github.com/zerovault/zerovault/models"
)

// keyChain is the private implementation of [KeyChain].
type keyChain struct{}

// NewKeyChain constructs the default [KeyChain] backed by the OS
// CSPRNG and AES-256-GCM.
func NewKeyChain() KeyChain {
	return &keyChain{}
}

// GenerateSalt implements [KeyChain]. It reads 16 random bytes from
// the OS CSPRNG. The salt is not a secret — it is stored on the
// server in the clear so the master key can be re-derived on the next
// unlock.
func (k *keyChain) GenerateSalt() ([]byte, error) {
	return randomBytes(16)
}

// GenerateDEK implements [KeyChain]. It reads 32 random bytes from
// the OS CSPRNG and returns them as a fresh data-encryption key. One
// DEK encrypts exactly one item; its plaintext form never leaves
// process memory.
func (k *keyChain) GenerateDEK() ([]byte, error) {
	return randomBytes(KeySize)
}

// WrapDEK implements [KeyChain]. It encrypts the DEK's raw bytes
// under masterKey with a fresh random 12-byte nonce and returns
// ciphertext and nonce as separate hex strings. The wrapped form is
// safe to store next to the item it protects.
func (k *keyChain) WrapDEK(masterKey, dek []byte) (models.WrappedKey, error) {
	if len(dek) != KeySize {
		return models.WrappedKey{}, fmt.Errorf("%w: DEK must be %d bytes, got %d", ErrInput, KeySize, len(dek))
	}
	gcm, err := newAEAD(masterKey)
	if err != nil {
		return models.WrappedKey{}, err
	}

	nonce, err := randomBytes(NonceSize)
	if err != nil {
		return models.WrappedKey{}, err
	}

	ct := gcm.Seal(nil, nonce, dek, nil)
	return models.WrappedKey{
		Key:   hex.EncodeToString(ct),
		Nonce: hex.EncodeToString(nonce),
	}, nil
}

// UnwrapDEK implements [KeyChain]. It decrypts a wrapped DEK blob
// produced by [keyChain.WrapDEK]. Returns [ErrFormat] if either hex
// string is malformed or the nonce has the wrong length, and
// [ErrIntegrity] if the tag check fails — whether because masterKey
// is wrong or because the blob was corrupted is not disclosed.
func (k *keyChain) UnwrapDEK(masterKey []byte, wrapped models.WrappedKey) ([]byte, error) {
	gcm, err := newAEAD(masterKey)
	if err != nil {
		return nil, err
	}

	ct, err := hex.DecodeString(wrapped.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wrapped key", ErrFormat)
	}
	nonce, err := hex.DecodeString(wrapped.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: decode wrap nonce", ErrFormat)
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: wrap nonce must be %d bytes", ErrFormat, NonceSize)
	}

	dek, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: unwrap DEK", ErrIntegrity)
	}
	return dek, nil
}

// Zero overwrites key material in place. Best effort: Go gives no
// guarantee the GC has not already copied the slice, but scrubbing
// the canonical buffer bounds the window a key survives in memory.
func Zero(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
