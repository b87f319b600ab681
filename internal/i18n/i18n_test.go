package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

func TestNew_MatchesLocale(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"en", language.English},
		{"en-GB", language.English},
		{"et", language.Estonian},
		{"et-EE", language.Estonian},
		{"", language.English},
		{"xx", language.English},
	}
	for _, tt := range tests {
		tr, err := New(tt.locale)
		require.NoError(t, err, tt.locale)
		assert.Equal(t, tt.want, tr.Language(), tt.locale)
	}
}

func TestTranslator_T(t *testing.T) {
	en := MustNew("en")
	et := MustNew("et")

	assert.Equal(t, "Delete", en.T("overview.delete"))
	assert.Equal(t, "Kustuta", et.T("overview.delete"))
	assert.Equal(t, "no.such.key", et.T("no.such.key"))
	assert.Equal(t, "Copied service id svc-1", en.Tf("overview.services.copied", "svc-1"))
}

// Every key in the English catalog must exist in each shipped translation.
func TestCatalogsHaveSameKeys(t *testing.T) {
	load := func(name string) map[string]string {
		data, err := localeFS.ReadFile("locales/" + name + ".yaml")
		require.NoError(t, err)
		out := map[string]string{}
		require.NoError(t, yaml.Unmarshal(data, &out))
		return out
	}

	en := load("en")
	et := load("et")
	for key := range en {
		assert.Contains(t, et, key)
	}
	assert.Len(t, et, len(en))
}
