// SPDX-License-Identifier: Apache-2.0

package models

import "encoding/json"

// BackupDocument is the portable export format: one wrapped DEK plus a
// list of already-encrypted items. It carries no plaintext and no new
// cryptography; items stay opaque so arbitrary nested structures
// round-trip byte-exactly.
type BackupDocument struct {
	// WrappedDEK is the hex-encoded wrapped key blob covering the
	// exported items.
	WrappedDEK string `json:"wrappedDEK"`

	// Items are the encrypted records exactly as stored.
	Items []json.RawMessage `json:"items"`
}
