// SPDX-License-Identifier: MIT
// Package: pointset
//
// id.go — opaque point identity.

package pointset

import (
	"fmt"

	"github.com/google/uuid"
)

// ID identifies a point for its whole lifetime inside a Set. The zero ID is
// never assigned.
type ID uuid.UUID

// NewID returns a random (version 4) ID.
func NewID() ID { return ID(uuid.New()) }

// ParseID parses the canonical textual form produced by String.
func ParseID(s string) (ID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return ID{}, setErrorf(opParseID, fmt.Errorf("%w: %w", ErrBadID, err))
	}
	if u == uuid.Nil {
		return ID{}, setErrorf(opParseID, fmt.Errorf("nil uuid: %w", ErrBadID))
	}

	return ID(u), nil
}

// String returns the canonical 36-character form.
func (id ID) String() string { return uuid.UUID(id).String() }

// IsZero reports whether id is the zero value.
func (id ID) IsZero() bool { return id == ID{} }

// MarshalText implements encoding.TextMarshaler, so IDs encode as strings in
// JSON and YAML.
func (id ID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := ParseID(string(b))
	if err != nil {
		return err
	}
	*id = parsed

	return nil
}
