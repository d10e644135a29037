package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownIdentityKey is returned by ParseIdentityKey.
var ErrUnknownIdentityKey = errors.New("unknown identity key")

// IdentityKey selects how a player row is addressed across the dataset.
type IdentityKey string

const (
	// IdentityName addresses players by name only.
	IdentityName IdentityKey = "name"
	// IdentityNameClub disambiguates same-named players by club.
	IdentityNameClub IdentityKey = "name_club"
)

// ParseIdentityKey accepts "name" or "name_club"; empty means name.
func ParseIdentityKey(s string) (IdentityKey, error) {
	switch IdentityKey(strings.ToLower(strings.TrimSpace(s))) {
	case "", IdentityName:
		return IdentityName, nil
	case IdentityNameClub:
		return IdentityNameClub, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIdentityKey, s)
	}
}

// Identity returns the player's identity under key.
func (k IdentityKey) Identity(p Player) string {
	name := strings.TrimSpace(p.Name)
	if k == IdentityNameClub {
		return name + " (" + strings.TrimSpace(p.Club) + ")"
	}
	return name
}
