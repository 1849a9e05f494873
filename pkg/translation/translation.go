// Package translation provides translation engines for recognised text.
package translation

import (
	"context"
	"errors"
	"strings"
)

// DefaultPrefix marks placeholder translations.
const DefaultPrefix = "[Translated] "

// ErrEmptyText is returned when there is nothing to translate.
var ErrEmptyText = errors.New("nothing to translate")

// Placeholder "translates" by prefixing the source text. It keeps the
// pipeline and storage contracts exercised until a real engine is plugged in.
type Placeholder struct {
	Prefix string
}

// NewPlaceholder returns a Placeholder using prefix, or DefaultPrefix when empty.
func NewPlaceholder(prefix string) *Placeholder {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Placeholder{Prefix: prefix}
}

// Translate returns Prefix + text.
func (p *Placeholder) Translate(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	return p.Prefix + text, nil
}
