// Package i18n looks up console strings in embedded YAML catalogs.
//
// Catalogs are flat maps from dotted keys to messages. Lookups fall back to
// English, then to the key itself, so a missing translation never renders
// as an empty label.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// Supported lists the catalogs shipped with svcctl; the first entry is the fallback.
var Supported = []language.Tag{language.English, language.Estonian}

var matcher = language.NewMatcher(Supported)

// Translator resolves message keys for one locale.
type Translator struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

// New returns a Translator for the best supported match of locale
// (a BCP 47 string such as "et" or "en-GB").
func New(locale string) (*Translator, error) {
	_, index := language.MatchStrings(matcher, locale)
	tag := Supported[index]

	fallback, err := loadCatalog(Supported[0])
	if err != nil {
		return nil, err
	}
	messages := fallback
	if tag != Supported[0] {
		if messages, err = loadCatalog(tag); err != nil {
			return nil, err
		}
	}

	return &Translator{tag: tag, messages: messages, fallback: fallback}, nil
}

// MustNew is New for the compiled-in catalogs, which always parse.
func MustNew(locale string) *Translator {
	t, err := New(locale)
	if err != nil {
		panic(err)
	}
	return t
}

func loadCatalog(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	data, err := localeFS.ReadFile(path.Join("locales", base.String()+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("missing catalog for %s: %w", tag, err)
	}
	messages := make(map[string]string)
	if err := yaml.Unmarshal(data, &messages); err != nil {
		return nil, fmt.Errorf("invalid catalog for %s: %w", tag, err)
	}
	return messages, nil
}

// Language is the tag the translator resolved to.
func (t *Translator) Language() language.Tag {
	return t.tag
}

// T returns the message for key.
func (t *Translator) T(key string) string {
	if msg, ok := t.messages[key]; ok {
		return msg
	}
	if msg, ok := t.fallback[key]; ok {
		return msg
	}
	return key
}

// Tf formats the message for key with args.
func (t *Translator) Tf(key string, args ...interface{}) string {
	return fmt.Sprintf(t.T(key), args...)
}
