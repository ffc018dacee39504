// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/zerovault/zerovault/models"
)

// ProgressFunc is called after every chunk with the number of
// plaintext bytes processed so far and the total expected. A nil
// ProgressFunc disables reporting.
type ProgressFunc func(processed, total int64)

// chunkWindow is how many chunks are sealed or opened concurrently.
// Chunks are independent (each nonce is derived from its index, not
// from sequential state), so they can be processed in parallel as
// long as output is assembled in index order.
const chunkWindow = 4

// fileCipher is the private implementation of [FileCipher].
type fileCipher struct {
	fields FieldCipher
}

// NewFileCipher constructs a [FileCipher] that uses fields for the
// filename and MIME-type tokens in the metadata record.
func NewFileCipher(fields FieldCipher) FileCipher {
	return &fileCipher{fields: fields}
}

// chunkNonce derives the nonce for chunk i: the first 8 bytes of the
// base IV followed by the little-endian chunk index. Unique per chunk
// within a file because i never repeats, and unique across files
// because every file draws a fresh random base IV.
func chunkNonce(baseIV []byte, i uint32) []byte {
	nonce := make([]byte, NonceSize)
	copy(nonce, baseIV[:8])
	binary.LittleEndian.PutUint32(nonce[8:], i)
	return nonce
}

// EncryptFile implements [FileCipher]. It streams src through
// fixed-size chunks, seals each chunk under its index-derived nonce,
// and writes baseIV ‖ chunk_0 ‖ chunk_1 ‖ ... to dst. totalSize is
// used only for progress reporting. Returns the envelope size in
// bytes. A zero-length src still produces a valid 12-byte envelope.
func (fc *fileCipher) EncryptFile(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, totalSize int64, chunkSize int, progress ProgressFunc) (int64, error) {
	if chunkSize < 1 {
		return 0, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInput, chunkSize)
	}
	gcm, err := newAEAD(dek)
	if err != nil {
		return 0, err
	}

	baseIV, err := randomBytes(NonceSize)
	if err != nil {
		return 0, err
	}
	if _, err := dst.Write(baseIV); err != nil {
		return 0, fmt.Errorf("write base IV: %w", err)
	}

	var (
		written   = int64(NonceSize)
		processed int64
		index     uint32
	)

	// A window of plaintext chunks is read sequentially, sealed
	// concurrently, then written strictly in index order.
	plain := make([][]byte, chunkWindow)
	sealed := make([][]byte, chunkWindow)

	for {
		if err := ctx.Err(); err != nil {
			return written, err
		}

		// Fill the window.
		filled := 0
		for filled < chunkWindow {
			buf := make([]byte, chunkSize)
			n, err := io.ReadFull(src, buf)
			if n > 0 {
				plain[filled] = buf[:n]
				filled++
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			if err != nil {
				return written, fmt.Errorf("read source chunk: %w", err)
			}
		}
		if filled == 0 {
			break
		}

		g, _ := errgroup.WithContext(ctx)
		for slot := 0; slot < filled; slot++ {
			slot := slot
			nonce := chunkNonce(baseIV, index+uint32(slot))
			g.Go(func() error {
				sealed[slot] = gcm.Seal(nil, nonce, plain[slot], nil)
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return written, err
		}

		for slot := 0; slot < filled; slot++ {
			if _, err := dst.Write(sealed[slot]); err != nil {
				return written, fmt.Errorf("write chunk %d: %w", index, err)
			}
			written += int64(len(sealed[slot]))
			processed += int64(len(plain[slot]))
			index++
			if progress != nil {
				progress(processed, totalSize)
			}
		}

		if filled < chunkWindow {
			break // short window means the source is exhausted
		}
	}

	return written, nil
}

// DecryptFile implements [FileCipher]. It reads the 12-byte base IV,
// then iterates the remaining bytes in steps of chunkSize+16, opening
// each step under the same index-derived nonce EncryptFile used.
// totalSize is the expected plaintext length, used only for progress.
// Any single failed tag check aborts the whole operation with
// [ErrIntegrity]; no partially decrypted state is exposed. An
// envelope shorter than the base IV, or a trailing fragment too short
// to hold a tag, is [ErrFormat].
func (fc *fileCipher) DecryptFile(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, totalSize int64, chunkSize int, progress ProgressFunc) (int64, error) {
	if chunkSize < 1 {
		return 0, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInput, chunkSize)
	}
	gcm, err := newAEAD(dek)
	if err != nil {
		return 0, err
	}

	baseIV := make([]byte, NonceSize)
	if _, err := io.ReadFull(src, baseIV); err != nil {
		return 0, fmt.Errorf("%w: envelope shorter than base IV", ErrFormat)
	}

	var (
		processed int64
		index     uint32
		step      = chunkSize + TagSize
	)

	sealed := make([][]byte, chunkWindow)
	opened := make([][]byte, chunkWindow)

	for {
		if err := ctx.Err(); err != nil {
			return processed, err
		}

		filled := 0
		for filled < chunkWindow {
			buf := make([]byte, step)
			n, err := io.ReadFull(src, buf)
			if n > 0 {
				if n < TagSize {
					return processed, fmt.Errorf("%w: truncated chunk %d", ErrFormat, index+uint32(filled))
				}
				sealed[filled] = buf[:n]
				filled++
			}
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				break
			}
			if err != nil {
				return processed, fmt.Errorf("read envelope chunk: %w", err)
			}
		}
		if filled == 0 {
			break
		}

		g, _ := errgroup.WithContext(ctx)
		for slot := 0; slot < filled; slot++ {
			slot := slot
			idx := index + uint32(slot)
			nonce := chunkNonce(baseIV, idx)
			g.Go(func() error {
				pt, err := gcm.Open(nil, nonce, sealed[slot], nil)
				if err != nil {
					return fmt.Errorf("%w: chunk %d", ErrIntegrity, idx)
				}
				opened[slot] = pt
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return processed, err
		}

		for slot := 0; slot < filled; slot++ {
			if _, err := dst.Write(opened[slot]); err != nil {
				return processed, fmt.Errorf("write chunk %d: %w", index, err)
			}
			processed += int64(len(opened[slot]))
			index++
			if progress != nil {
				progress(processed, totalSize)
			}
		}

		if filled < chunkWindow {
			break
		}
	}

	return processed, nil
}

// EncryptFileWithMeta implements [FileCipher]. It runs EncryptFile and
// additionally encrypts the filename and MIME type into the metadata
// record that travels out-of-band next to the envelope.
func (fc *fileCipher) EncryptFileWithMeta(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, name, mimeType string, totalSize int64, chunkSize int, progress ProgressFunc) (models.FileMetadata, error) {
	if chunkSize < 1 {
		chunkSize = models.DefaultChunkSize
	}

	encName, err := fc.fields.EncryptName(dek, name)
	if err != nil {
		return models.FileMetadata{}, fmt.Errorf("encrypt file name: %w", err)
	}
	encMime, err := fc.fields.EncryptName(dek, mimeType)
	if err != nil {
		return models.FileMetadata{}, fmt.Errorf("encrypt mime type: %w", err)
	}

	encSize, err := fc.EncryptFile(ctx, dek, src, dst, totalSize, chunkSize, progress)
	if err != nil {
		return models.FileMetadata{}, err
	}

	return models.FileMetadata{
		EncryptedName:     encName,
		EncryptedMimeType: encMime,
		OriginalSize:      totalSize,
		EncryptedSize:     encSize,
		ChunkSize:         chunkSize,
	}, nil
}

// DecryptFileWithMeta implements [FileCipher], the inverse of
// EncryptFileWithMeta. Returns the decrypted filename and MIME type.
func (fc *fileCipher) DecryptFileWithMeta(ctx context.Context, dek []byte, src io.Reader, dst io.Writer, meta models.FileMetadata, progress ProgressFunc) (name, mimeType string, err error) {
	chunkSize := meta.ChunkSize
	if chunkSize < 1 {
		chunkSize = models.DefaultChunkSize
	}

	name, err = fc.fields.DecryptName(dek, meta.EncryptedName)
	if err != nil {
		return "", "", fmt.Errorf("decrypt file name: %w", err)
	}
	mimeType, err = fc.fields.DecryptName(dek, meta.EncryptedMimeType)
	if err != nil {
		return "", "", fmt.Errorf("decrypt mime type: %w", err)
	}

	if _, err = fc.DecryptFile(ctx, dek, src, dst, meta.OriginalSize, chunkSize, progress); err != nil {
		return "", "", err
	}
	return name, mimeType, nil
}
