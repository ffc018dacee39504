// SPDX-License-Identifier: Apache-2.0

package models

import "github.com/google/uuid"

// Note is the plaintext form of a vault note. It exists only in client
// memory; persistence always goes through EncryptedNote.
type Note struct {
	// ID identifies the note across its encrypted and decrypted forms.
	ID uuid.UUID `json:"id"`

	// Title is the display name of the note.
	Title string `json:"title"`

	// Content is the note body.
	Content string `json:"content"`

	// Tags are free-form labels. They are serialized to JSON and
	// encrypted as a single field.
	Tags []string `json:"tags"`
}

// EncryptedNote is the stored form of a Note. Each field is encrypted
// independently under the note's own DEK; the DEK itself is stored
// wrapped under the session master key. The server sees only this
// structure and cannot decrypt any part of it.
type EncryptedNote struct {
	ID uuid.UUID `json:"id"`

	Title   EncryptedField `json:"title"`
	Content EncryptedField `json:"content"`
	Tags    EncryptedField `json:"tags"`

	// WrappedKey is the note's DEK wrapped under the master key.
	WrappedKey WrappedKey `json:"wrappedKey"`
}
