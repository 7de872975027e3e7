package slugcheck

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func rec(codename, language, slug string) ContentRecord {
	return ContentRecord{
		Name:      codename,
		Codename:  codename,
		Language:  language,
		Slug:      slug,
		SlugField: "url",
	}
}

func TestBuildIndexGroupsBySlug(t *testing.T) {
	records := []ContentRecord{
		rec("home_page", "en", "home"),
		rec("home_page", "de", "home"),
		rec("about_page", "en", "about"),
	}

	idx := BuildIndex(records)
	require.Len(t, idx, 2)
	require.Len(t, idx["home"], 2)
	require.Len(t, idx["about"], 1)
}

func TestBuildIndexPreservesCount(t *testing.T) {
	records := []ContentRecord{
		rec("a", "en", "x"),
		rec("b", "en", "x"),
		rec("c", "de", "y"),
		rec("c", "en", "y"),
		rec("d", "en", "z"),
	}

	idx := BuildIndex(records)

	total := 0
	for slug, list := range idx {
		total += len(list)
		for _, r := range list {
			require.Equal(t, slug, r.Slug)
		}
	}
	require.Equal(t, len(records), total)
}

func TestBuildIndexEmpty(t *testing.T) {
	require.Empty(t, BuildIndex(nil))
}
