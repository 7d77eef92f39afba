package i18n

import (
	"errors"
	"testing"
)

type fakeSource struct {
	langs map[string]string
	calls int
	err   error
}

func (f *fakeSource) GuildLanguage(guildID string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.langs[guildID], nil
}

func TestTranslateAndCache(t *testing.T) {
	src := &fakeSource{langs: map[string]string{"g1": "ko"}}
	tr := New(src)

	if got := tr.T("g1", "music.paused"); got != "⏸️ 일시정지." {
		t.Errorf("unexpected translation: %q", got)
	}
	// Second lookup must come from the cache
	tr.T("g1", "music.resumed")
	if src.calls != 1 {
		t.Errorf("expected 1 source call, got %d", src.calls)
	}
}

func TestFallbacks(t *testing.T) {
	src := &fakeSource{langs: map[string]string{"g1": "zz"}}
	tr := New(src)

	// Unsupported stored language falls back to English
	if got := tr.T("g1", "music.paused"); got != "⏸️ Paused." {
		t.Errorf("expected English fallback, got %q", got)
	}
	// Unknown keys surface the key itself
	if got := tr.T("g1", "no.such.key"); got != "no.such.key" {
		t.Errorf("expected key passthrough, got %q", got)
	}
}

func TestSourceErrorDefaultsToEnglish(t *testing.T) {
	tr := New(&fakeSource{err: errors.New("db down")})
	if lang := tr.Language("g1"); lang != DefaultLanguage {
		t.Errorf("expected default language on error, got %q", lang)
	}
}

func TestInvalidate(t *testing.T) {
	src := &fakeSource{langs: map[string]string{"g1": "en"}}
	tr := New(src)

	tr.Language("g1")
	src.langs["g1"] = "ko"
	tr.Language("g1")
	if src.calls != 1 {
		t.Fatalf("expected cached language, got %d calls", src.calls)
	}

	tr.Invalidate("g1")
	if lang := tr.Language("g1"); lang != "ko" {
		t.Errorf("expected reloaded language ko, got %q", lang)
	}
	if src.calls != 2 {
		t.Errorf("expected 2 source calls after invalidate, got %d", src.calls)
	}
}

func TestFormatting(t *testing.T) {
	tr := New(nil)
	if got := tr.T("g1", "music.volume_set", 42); got != "🔊 Volume set to **42%**." {
		t.Errorf("unexpected formatted message: %q", got)
	}
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	// Every language must carry every key English has, and define no keys
	// English lacks, so a guild's language never changes which replies are
	// localized.
	en := catalogs[DefaultLanguage]
	for lang, catalog := range catalogs {
		if lang == DefaultLanguage {
			continue
		}
		for key := range en {
			if _, ok := catalog[key]; !ok {
				t.Errorf("language %q is missing key %q", lang, key)
			}
		}
		for key := range catalog {
			if _, ok := en[key]; !ok {
				t.Errorf("language %q has stray key %q", lang, key)
			}
		}
	}
}
