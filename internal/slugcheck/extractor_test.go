package slugcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slugwatch/internal/delivery"
)

func rawItem(name, codename string, elements map[string]string) delivery.RawItem {
	els := make(map[string]delivery.Element, len(elements))
	for k, v := range elements {
		els[k] = delivery.Element{Value: v}
	}
	return delivery.RawItem{
		System:   delivery.System{Name: name, Codename: codename, Type: "page", Language: "en"},
		Elements: els,
	}
}

var candidateFields = []string{"url", "url_slug"}

func TestExtractRecordPrefersPrimaryField(t *testing.T) {
	item := rawItem("Home", "home_page", map[string]string{"url": "home", "url_slug": "home-alt"})

	rec := ExtractRecord(item, "en", candidateFields)
	require.Equal(t, "home", rec.Slug)
	require.Equal(t, "url", rec.SlugField)
	assert.Equal(t, "Home", rec.Name)
	assert.Equal(t, "home_page", rec.Codename)
	assert.Equal(t, "en", rec.Language)
}

func TestExtractRecordFallsBackToSecondary(t *testing.T) {
	rec := ExtractRecord(rawItem("About", "about_page", map[string]string{"url_slug": "about"}), "de", candidateFields)
	require.Equal(t, "about", rec.Slug)
	require.Equal(t, "url_slug", rec.SlugField)
	require.Equal(t, "de", rec.Language)
}

func TestExtractRecordEmptyStringCountsAsAbsent(t *testing.T) {
	// present-but-empty primary must fall through, same for whitespace
	item := rawItem("About", "about_page", map[string]string{"url": "   ", "url_slug": "about"})
	rec := ExtractRecord(item, "en", candidateFields)
	require.Equal(t, "about", rec.Slug)
	require.Equal(t, "url_slug", rec.SlugField)
}

func TestExtractRecordPlaceholders(t *testing.T) {
	rec := ExtractRecord(rawItem("", "", map[string]string{"url": "orphan"}), "en", candidateFields)
	assert.Equal(t, "(unnamed)", rec.Name)
	assert.Equal(t, "(unknown)", rec.Codename)
	assert.Equal(t, "orphan", rec.Slug)
}

func TestHasSlug(t *testing.T) {
	assert.True(t, HasSlug(rawItem("A", "a", map[string]string{"url": "a"}), candidateFields))
	assert.True(t, HasSlug(rawItem("B", "b", map[string]string{"url_slug": "b"}), candidateFields))
	assert.False(t, HasSlug(rawItem("C", "c", map[string]string{"url": ""}), candidateFields))
	assert.False(t, HasSlug(rawItem("D", "d", nil), candidateFields))
}
