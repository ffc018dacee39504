// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// Sizes of the AES-256-GCM primitive the engine is built on. Every
// binary layout in this package (wrapped keys, field blobs, file
// envelopes) is defined in terms of these three constants.
const (
	// KeySize is the symmetric key length: 256 bits.
	KeySize = 32

	// NonceSize is the GCM nonce length: 96 bits.
	NonceSize = 12

	// TagSize is the GCM authentication tag length appended to every
	// ciphertext.
	TagSize = 16
)

// newAEAD builds the AES-256-GCM primitive for key. The key length is
// the only thing validated here; everything else is the cipher's job.
func newAEAD(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ErrInput, KeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}

// randomBytes reads n bytes from the OS CSPRNG. crypto/rand is safe
// for concurrent use, so this is the engine's only shared resource.
func randomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("read random bytes: %w", err)
	}
	return buf, nil
}
