package slugcheck

import (
	"errors"
	"strings"
)

const (
	DefaultContentType = "page"
	DefaultLanguage    = "default"
)

// DefaultSlugFields are the candidate slug elements, checked in order.
func DefaultSlugFields() []string {
	return []string{"url", "url_slug"}
}

// Config is the explicit per-call configuration for a detection or
// search run. Callers build it once and pass it in; there is no shared
// configuration state.
type Config struct {
	ContentType string   `json:"content_type"`
	SlugFields  []string `json:"slug_fields"` // primary first, then fallbacks
	Languages   []string `json:"languages"`
}

func DefaultConfig() Config {
	return Config{
		ContentType: DefaultContentType,
		SlugFields:  DefaultSlugFields(),
		Languages:   []string{DefaultLanguage},
	}
}

// Validate reports the single hard configuration requirement: without a
// content type identifier there is nothing to query.
func (c Config) Validate() error {
	if strings.TrimSpace(c.ContentType) == "" {
		return errors.New("content type identifier is required")
	}
	return nil
}

// withDefaults fills the optional parts so the pipeline never has to
// special-case empty field or language lists.
func (c Config) withDefaults() Config {
	if len(c.SlugFields) == 0 {
		c.SlugFields = DefaultSlugFields()
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{DefaultLanguage}
	}
	return c
}
