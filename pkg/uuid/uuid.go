// Copyright (c) 2026 Syloma. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid generates the identifiers of the service: request ids and
submission journal ids.

Identifiers are UUIDv7, so journal rows sort by creation time on their
primary key.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string. It falls back to a random UUIDv4 when
// the clock-based generator fails.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// # Validation

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	return uuid.Validate(s) == nil
}
