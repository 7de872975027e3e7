package slugcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
	require.Error(t, Config{}.Validate())
	require.Error(t, Config{ContentType: "   "}.Validate())
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{ContentType: "page"}.withDefaults()
	assert.Equal(t, DefaultSlugFields(), cfg.SlugFields)
	assert.Equal(t, []string{DefaultLanguage}, cfg.Languages)

	custom := Config{
		ContentType: "article",
		SlugFields:  []string{"slug"},
		Languages:   []string{"en"},
	}.withDefaults()
	assert.Equal(t, []string{"slug"}, custom.SlugFields)
	assert.Equal(t, []string{"en"}, custom.Languages)
}
