package crypto

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/zerovault/zerovault/models"
)

func testDEK(b byte) []byte {
	return bytes.Repeat([]byte{b}, KeySize)
}

func encryptBytes(t *testing.T, fc FileCipher, dek, plaintext []byte, chunkSize int) []byte {
	t.Helper()
	var envelope bytes.Buffer
	n, err := fc.EncryptFile(context.Background(), dek, bytes.NewReader(plaintext), &envelope, int64(len(plaintext)), chunkSize, nil)
	if err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}
	if n != int64(envelope.Len()) {
		t.Fatalf("reported envelope size %d, buffer holds %d", n, envelope.Len())
	}
	return envelope.Bytes()
}

func decryptBytes(t *testing.T, fc FileCipher, dek, envelope []byte, total int64, chunkSize int) []byte {
	t.Helper()
	var plain bytes.Buffer
	if _, err := fc.DecryptFile(context.Background(), dek, bytes.NewReader(envelope), &plain, total, chunkSize, nil); err != nil {
		t.Fatalf("DecryptFile error: %v", err)
	}
	return plain.Bytes()
}

// envelopeSize is the chunk-count law: 12-byte base IV plus one
// 16-byte tag per ceil(size/chunkSize) chunks.
func envelopeSize(size, chunkSize int) int {
	chunks := (size + chunkSize - 1) / chunkSize
	return NonceSize + size + chunks*TagSize
}

func TestEncryptFile_ChunkCountLaw(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	cases := []struct {
		name      string
		size      int
		chunkSize int
	}{
		{"empty source", 0, 1024},
		{"one byte", 1, 1024},
		{"one byte below chunk boundary", 1023, 1024},
		{"exact single chunk", 1024, 1024},
		{"exact multiple chunks", 4096, 1024},
		{"multiple chunks plus remainder", 4097, 1024},
		{"more chunks than the parallel window", 10*1024 + 13, 1024},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			plaintext := bytes.Repeat([]byte{0xA5}, tc.size)
			envelope := encryptBytes(t, fc, dek, plaintext, tc.chunkSize)

			if got, want := len(envelope), envelopeSize(tc.size, tc.chunkSize); got != want {
				t.Fatalf("envelope size = %d, want %d", got, want)
			}

			got := decryptBytes(t, fc, dek, envelope, int64(tc.size), tc.chunkSize)
			if !bytes.Equal(got, plaintext) {
				t.Fatalf("round trip mismatch for size %d", tc.size)
			}
		})
	}
}

// Zero-length source: a valid envelope of exactly the 12-byte base IV
// and zero chunks.
func TestEncryptFile_EmptySource(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	envelope := encryptBytes(t, fc, dek, nil, models.DefaultChunkSize)
	if len(envelope) != NonceSize {
		t.Fatalf("envelope size = %d, want %d", len(envelope), NonceSize)
	}

	got := decryptBytes(t, fc, dek, envelope, 0, models.DefaultChunkSize)
	if len(got) != 0 {
		t.Fatalf("expected empty plaintext, got %d bytes", len(got))
	}
}

// 500 KiB of 'a' with 128 KiB chunks: exactly 4 chunks, and the
// decrypted output reproduces all 500 KiB.
func TestEncryptFile_500KiBIn128KiBChunks(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	const (
		size      = 500 * 1024
		chunkSize = 128 * 1024
	)
	plaintext := bytes.Repeat([]byte{'a'}, size)

	envelope := encryptBytes(t, fc, dek, plaintext, chunkSize)

	const wantChunks = 4
	if got, want := len(envelope), NonceSize+size+wantChunks*TagSize; got != want {
		t.Fatalf("envelope size = %d, want %d (4 chunks)", got, want)
	}

	got := decryptBytes(t, fc, dek, envelope, size, chunkSize)
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("decrypted output differs from 500 KiB of 'a'")
	}
}

func TestEncryptFile_BaseIVUniquePerFile(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)
	plaintext := []byte("same file twice")

	e1 := encryptBytes(t, fc, dek, plaintext, 1024)
	e2 := encryptBytes(t, fc, dek, plaintext, 1024)

	if bytes.Equal(e1[:NonceSize], e2[:NonceSize]) {
		t.Fatalf("expected different base IVs for two encryptions")
	}
	if bytes.Equal(e1, e2) {
		t.Fatalf("expected different envelopes for two encryptions")
	}
}

func TestDecryptFile_TamperDetection(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)
	plaintext := bytes.Repeat([]byte{0x3C}, 5000)

	envelope := encryptBytes(t, fc, dek, plaintext, 1024)

	// One flipped bit anywhere: base IV, chunk body, or tag.
	for _, offset := range []int{0, NonceSize + 100, len(envelope) - 1} {
		mutated := make([]byte, len(envelope))
		copy(mutated, envelope)
		mutated[offset] ^= 0x01

		var out bytes.Buffer
		_, err := fc.DecryptFile(context.Background(), dek, bytes.NewReader(mutated), &out, int64(len(plaintext)), 1024, nil)
		if !errors.Is(err, ErrIntegrity) {
			t.Fatalf("offset %d: got %v, want ErrIntegrity", offset, err)
		}
	}
}

func TestDecryptFile_WrongKey(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	plaintext := []byte("file under key A")

	envelope := encryptBytes(t, fc, testDEK(0x11), plaintext, 1024)

	var out bytes.Buffer
	_, err := fc.DecryptFile(context.Background(), testDEK(0x22), bytes.NewReader(envelope), &out, int64(len(plaintext)), 1024, nil)
	if !errors.Is(err, ErrIntegrity) {
		t.Fatalf("wrong key: got %v, want ErrIntegrity", err)
	}
}

func TestDecryptFile_TruncatedEnvelope(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	var out bytes.Buffer
	_, err := fc.DecryptFile(context.Background(), dek, bytes.NewReader([]byte{1, 2, 3}), &out, 0, 1024, nil)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("short envelope: got %v, want ErrFormat", err)
	}

	// Base IV present, but the trailing fragment cannot hold a tag.
	envelope := encryptBytes(t, fc, dek, []byte("some data"), 1024)
	truncated := envelope[:NonceSize+TagSize-1]
	out.Reset()
	_, err = fc.DecryptFile(context.Background(), dek, bytes.NewReader(truncated), &out, 0, 1024, nil)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("truncated chunk: got %v, want ErrFormat", err)
	}
}

func TestEncryptFile_ProgressReporting(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	const (
		size      = 2500
		chunkSize = 1000
	)
	plaintext := bytes.Repeat([]byte{0x0F}, size)

	var calls []int64
	progress := func(processed, total int64) {
		if total != size {
			t.Fatalf("progress total = %d, want %d", total, size)
		}
		calls = append(calls, processed)
	}

	var envelope bytes.Buffer
	if _, err := fc.EncryptFile(context.Background(), dek, bytes.NewReader(plaintext), &envelope, size, chunkSize, progress); err != nil {
		t.Fatalf("EncryptFile error: %v", err)
	}

	want := []int64{1000, 2000, 2500}
	if len(calls) != len(want) {
		t.Fatalf("progress calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Fatalf("progress calls = %v, want %v", calls, want)
		}
	}

	// Decryption reports symmetrically.
	calls = nil
	var out bytes.Buffer
	if _, err := fc.DecryptFile(context.Background(), dek, bytes.NewReader(envelope.Bytes()), &out, size, chunkSize, progress); err != nil {
		t.Fatalf("DecryptFile error: %v", err)
	}
	if len(calls) != len(want) || calls[len(calls)-1] != size {
		t.Fatalf("decrypt progress calls = %v, want %v", calls, want)
	}
}

func TestEncryptFile_ContextCancellation(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := fc.EncryptFile(ctx, dek, bytes.NewReader(bytes.Repeat([]byte{1}, 4096)), &out, 4096, 1024, nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled context: got %v, want context.Canceled", err)
	}
}

func TestEncryptFile_RejectsBadChunkSize(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	var out bytes.Buffer
	if _, err := fc.EncryptFile(context.Background(), dek, bytes.NewReader(nil), &out, 0, 0, nil); !errors.Is(err, ErrInput) {
		t.Fatalf("chunk size 0: got %v, want ErrInput", err)
	}
}

func TestEncryptFileWithMeta_RoundTrip(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	plaintext := bytes.Repeat([]byte{0x77}, 3*1024+17)

	var envelope bytes.Buffer
	meta, err := fc.EncryptFileWithMeta(context.Background(), dek, bytes.NewReader(plaintext), &envelope,
		"vacation.jpg", "image/jpeg", int64(len(plaintext)), 1024, nil)
	if err != nil {
		t.Fatalf("EncryptFileWithMeta error: %v", err)
	}

	if meta.OriginalSize != int64(len(plaintext)) {
		t.Fatalf("OriginalSize = %d, want %d", meta.OriginalSize, len(plaintext))
	}
	if meta.EncryptedSize != int64(envelope.Len()) {
		t.Fatalf("EncryptedSize = %d, envelope holds %d", meta.EncryptedSize, envelope.Len())
	}
	if meta.ChunkSize != 1024 {
		t.Fatalf("ChunkSize = %d, want 1024", meta.ChunkSize)
	}

	var out bytes.Buffer
	name, mime, err := fc.DecryptFileWithMeta(context.Background(), dek, bytes.NewReader(envelope.Bytes()), &out, meta, nil)
	if err != nil {
		t.Fatalf("DecryptFileWithMeta error: %v", err)
	}
	if name != "vacation.jpg" || mime != "image/jpeg" {
		t.Fatalf("name/mime = %q/%q, want vacation.jpg/image/jpeg", name, mime)
	}
	if !bytes.Equal(out.Bytes(), plaintext) {
		t.Fatalf("plaintext mismatch after metadata round trip")
	}
}

func TestEncryptFileWithMeta_DefaultChunkSize(t *testing.T) {
	fc := NewFileCipher(NewFieldCipher())
	dek := testDEK(0x11)

	var envelope bytes.Buffer
	meta, err := fc.EncryptFileWithMeta(context.Background(), dek, bytes.NewReader([]byte("tiny")), &envelope,
		"t.bin", "application/octet-stream", 4, 0, nil)
	if err != nil {
		t.Fatalf("EncryptFileWithMeta error: %v", err)
	}
	if meta.ChunkSize != models.DefaultChunkSize {
		t.Fatalf("ChunkSize = %d, want default %d", meta.ChunkSize, models.DefaultChunkSize)
	}
}
