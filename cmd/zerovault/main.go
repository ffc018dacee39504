// SPDX-License-Identifier: Apache-2.0

// Command zerovault encrypts and decrypts single files with the
// envelope engine. It exists to exercise the engine end to end from a
// shell; the real consumers embed the packages directly.
//
// The passphrase is taken from the ZEROVAULT_PASSPHRASE environment
// variable. Encryption writes the envelope next to a JSON sidecar
// holding the salt, the wrapped DEK, and the file metadata; decryption
// reads the same pair back.
package main

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/zerovault/zerovault/internal/config"
	"github.com/zerovault/zerovault/internal/crypto"
	"github.com/zerovault/zerovault/internal/logger"
	"github.com/zerovault/zerovault/internal/service"
	"github.com/zerovault/zerovault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// sidecarFile is the non-secret record stored next to the envelope.
type sidecarFile struct {
	Salt       string              `json:"salt"`
	WrappedKey models.WrappedKey   `json:"wrappedKey"`
	Metadata   models.FileMetadata `json:"metadata"`
}

func main() {
	printBuildInfo()

	mode := flag.String("mode", "", "encrypt or decrypt")
	in := flag.String("in", "", "input file path")
	out := flag.String("out", "", "output file path")
	sidecar := flag.String("sidecar", "", "sidecar JSON path (default: <out>.json on encrypt, <in>.json on decrypt)")
	flag.Parse()

	log := logger.NewLogger("zerovault-cli")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	secret := os.Getenv("ZEROVAULT_PASSPHRASE")
	if secret == "" {
		log.Fatal().Msg("ZEROVAULT_PASSPHRASE is not set")
	}
	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	params := crypto.KDFParams{
		Time:    cfg.Crypto.KDFTime,
		Memory:  cfg.Crypto.KDFMemory,
		Threads: cfg.Crypto.KDFThreads,
		KeyLen:  crypto.KeySize,
	}

	keys := crypto.NewKeyChain()
	fields := crypto.NewFieldCipher()
	svc := service.NewVaultService(keys, fields, crypto.NewFileCipher(fields), cfg.Crypto.ChunkSize, log)

	switch *mode {
	case "encrypt":
		if *sidecar == "" {
			*sidecar = *out + ".json"
		}
		err = runEncrypt(svc, keys, secret, params, *in, *out, *sidecar, log)
	case "decrypt":
		if *sidecar == "" {
			*sidecar = *in + ".json"
		}
		err = runDecrypt(svc, secret, params, *in, *out, *sidecar, log)
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", *mode).Msg("operation failed")
	}
}

func runEncrypt(svc service.VaultService, keys crypto.KeyChain, secret string, params crypto.KDFParams, in, out, sidecarPath string, log *logger.Logger) error {
	salt, err := keys.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	if err := svc.Unlock(secret, salt, params); err != nil {
		return err
	}
	defer svc.Close()

	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer dst.Close()

	mimeType := mime.TypeByExtension(filepath.Ext(in))
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	meta, wrapped, err := svc.EncryptFile(context.Background(), src, dst, filepath.Base(in), mimeType, info.Size(), chunkProgress(log))
	if err != nil {
		return err
	}

	record := sidecarFile{
		Salt:       hex.EncodeToString(salt),
		WrappedKey: wrapped,
		Metadata:   meta,
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal sidecar: %w", err)
	}
	if err := os.WriteFile(sidecarPath, data, 0o600); err != nil {
		return fmt.Errorf("write sidecar: %w", err)
	}

	log.Info().Str("envelope", out).Str("sidecar", sidecarPath).Msg("file encrypted")
	return nil
}

func runDecrypt(svc service.VaultService, secret string, params crypto.KDFParams, in, out, sidecarPath string, log *logger.Logger) error {
	data, err := os.ReadFile(sidecarPath)
	if err != nil {
		return fmt.Errorf("read sidecar: %w", err)
	}
	var record sidecarFile
	if err := json.Unmarshal(data, &record); err != nil {
		return fmt.Errorf("parse sidecar: %w", err)
	}
	salt, err := hex.DecodeString(record.Salt)
	if err != nil {
		return fmt.Errorf("decode salt: %w", err)
	}

	if err := svc.Unlock(secret, salt, params); err != nil {
		return err
	}
	defer svc.Close()

	src, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer dst.Close()

	name, mimeType, err := svc.DecryptFile(context.Background(), record.WrappedKey, record.Metadata, src, dst, chunkProgress(log))
	if err != nil {
		return err
	}

	log.Info().Str("name", name).Str("mime_type", mimeType).Str("output", out).Msg("file decrypted")
	return nil
}

// chunkProgress logs per-chunk progress at debug level.
func chunkProgress(log *logger.Logger) crypto.ProgressFunc {
	return func(processed, total int64) {
		log.Debug().Int64("processed", processed).Int64("total", total).Msg("chunk done")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
