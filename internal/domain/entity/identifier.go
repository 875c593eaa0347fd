package entity

import (
	domainerrors "cardapio/internal/domain/errors"
)

// Identifier is a validated SQL identifier (URL slug or schema name).
// It is the only value the persistence layer accepts for schema
// qualification, so every instance must come through ParseIdentifier.
type Identifier string

const (
	identifierMinLen = 3
	// Postgres truncates identifiers beyond 63 bytes; reject instead.
	identifierMaxLen = 63
)

// ParseIdentifier validates a user-supplied identifier candidate.
// Only lowercase ASCII letters, digits and underscore are allowed,
// which rules out quoting characters and anything else that could
// alter schema-qualified SQL text.
func ParseIdentifier(raw string) (Identifier, error) {
	if len(raw) < identifierMinLen {
		return "", domainerrors.ErrInvalidIdentifier.WithDetails("identifier must have at least 3 characters")
	}
	if len(raw) > identifierMaxLen {
		return "", domainerrors.ErrInvalidIdentifier.WithDetails("identifier must have at most 63 characters")
	}

	for _, r := range raw {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return "", domainerrors.ErrInvalidIdentifier.WithDetails("identifier may only contain lowercase letters, digits and underscore")
		}
	}

	return Identifier(raw), nil
}

func (i Identifier) String() string {
	return string(i)
}
