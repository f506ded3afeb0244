// Package codegen produces short human-facing codes (contact ids, image
// file names) with a verified-unique retry loop.
package codegen

import (
	"errors"
	"math/rand"
	"strings"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

const (
	attemptsPerWidth = 25
	maxWidenings     = 3
)

// ErrSpaceExhausted is returned when every attempt collided even after the
// numeric suffix was widened to its limit.
var ErrSpaceExhausted = errors.New("code space exhausted")

// Spec describes a code shape: an uppercase letter prefix followed by a
// fixed-width numeric suffix with no leading zero.
type Spec struct {
	Letters int
	Digits  int
}

var (
	ContactCode = Spec{Letters: 2, Digits: 4}
	FileName    = Spec{Letters: 3, Digits: 5}
)

// ExistsFunc reports whether a candidate is already taken. It must query
// live storage scoped to the single generated field.
type ExistsFunc func(code string) (bool, error)

// Generate draws candidates until one passes the live existence check. After
// attemptsPerWidth collisions the suffix is widened by one digit; once
// widening is exhausted it fails with ErrSpaceExhausted.
func Generate(spec Spec, exists ExistsFunc) (string, error) {
	digits := spec.Digits
	for widen := 0; widen <= maxWidenings; widen++ {
		for attempt := 0; attempt < attemptsPerWidth; attempt++ {
			code := draw(spec.Letters, digits)
			taken, err := exists(code)
			if err != nil {
				return "", err
			}
			if !taken {
				return code, nil
			}
		}
		digits++
	}
	return "", ErrSpaceExhausted
}

func draw(letters, digits int) string {
	var b strings.Builder
	for i := 0; i < letters; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	b.WriteByte('1' + byte(rand.Intn(9)))
	for i := 1; i < digits; i++ {
		b.WriteByte('0' + byte(rand.Intn(10)))
	}
	return b.String()
}
