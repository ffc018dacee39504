// SPDX-License-Identifier: Apache-2.0

// Package backup serializes wrapped keys and already-encrypted items
// into one portable document. It performs no cryptography of its own:
// everything it touches is ciphertext already, so an exported backup
// carries no plaintext.
package backup

import (
	"encoding/json"
	"fmt"

	"github.com/zerovault/zerovault/internal/crypto"
	"github.com/zerovault/zerovault/models"
)

// Export serializes one wrapped DEK and a list of encrypted items
// into a backup document. Items are opaque: whatever structure the
// caller hands in round-trips byte-exactly through Import.
func Export(wrappedDEK string, items []json.RawMessage) ([]byte, error) {
	doc := models.BackupDocument{
		WrappedDEK: wrappedDEK,
		Items:      items,
	}
	if doc.Items == nil {
		doc.Items = []json.RawMessage{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal backup document: %w", err)
	}
	return data, nil
}

// Import parses a backup document produced by Export. Structurally
// invalid input yields a parse error wrapping [crypto.ErrFormat]; it
// never panics or surfaces an unrelated error type.
func Import(data []byte) (models.BackupDocument, error) {
	var doc models.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.BackupDocument{}, fmt.Errorf("%w: parse backup document", crypto.ErrFormat)
	}
	if doc.WrappedDEK == "" {
		return models.BackupDocument{}, fmt.Errorf("%w: backup document has no wrapped key", crypto.ErrFormat)
	}
	return doc, nil
}
