// Package i18n translates user-visible bot messages per guild. Languages are
// loaded lazily from the settings store and cached; nothing here is a
// process-wide registry, the Translator is injected where it is needed.
package i18n

import (
	"fmt"
	"log"
	"sync"
)

// DefaultLanguage is used for unknown guilds and as the fallback catalog.
const DefaultLanguage = "en"

// LanguageSource resolves the configured language of a guild.
type LanguageSource interface {
	GuildLanguage(guildID string) (string, error)
}

// Translator renders message keys in a guild's configured language.
type Translator struct {
	source LanguageSource

	mu    sync.RWMutex
	cache map[string]string // guildID -> language
}

// New creates a Translator backed by the given settings source.
func New(source LanguageSource) *Translator {
	return &Translator{
		source: source,
		cache:  make(map[string]string),
	}
}

// Languages lists the catalog languages a guild can choose from.
func Languages() []string {
	langs := make([]string, 0, len(catalogs))
	for l := range catalogs {
		langs = append(langs, l)
	}
	return langs
}

// Supported reports whether a catalog exists for the language code.
func Supported(lang string) bool {
	_, ok := catalogs[lang]
	return ok
}

// Language returns the cached language for a guild, consulting the source
// on first use. Lookup failures fall back to the default language.
func (t *Translator) Language(guildID string) string {
	t.mu.RLock()
	lang, ok := t.cache[guildID]
	t.mu.RUnlock()
	if ok {
		return lang
	}

	lang = DefaultLanguage
	if t.source != nil {
		stored, err := t.source.GuildLanguage(guildID)
		if err != nil {
			log.Printf("[I18N] Language lookup failed for guild %s: %v", guildID, err)
		} else if Supported(stored) {
			lang = stored
		}
	}

	t.mu.Lock()
	t.cache[guildID] = lang
	t.mu.Unlock()
	return lang
}

// Invalidate drops the cached language for a guild, forcing a reload on the
// next lookup. Called when the guild changes its settings.
func (t *Translator) Invalidate(guildID string) {
	t.mu.Lock()
	delete(t.cache, guildID)
	t.mu.Unlock()
}

// T renders a message key in the guild's language, formatting args into the
// catalog template. Missing keys fall back to English, then to the key
// itself so a broken catalog stays visible instead of silent.
func (t *Translator) T(guildID, key string, args ...any) string {
	lang := t.Language(guildID)

	msg, ok := catalogs[lang][key]
	if !ok {
		msg, ok = catalogs[DefaultLanguage][key]
	}
	if !ok {
		log.Printf("[I18N] Missing message key: %s", key)
		return key
	}
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}
