package ui

import "testing"

func TestLocalization_DefaultLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}

	if text := l.GetText(KeyAppTitle); text != "TrackDrop" {
		t.Errorf("Expected app title TrackDrop, got %s", text)
	}
}

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language ru, got %s", l.GetCurrentLanguage())
	}

	if text := l.GetText(KeyDropPrompt); text != "Перетащите аудиофайл сюда" {
		t.Errorf("Unexpected Russian drop prompt: %s", text)
	}

	// Unknown language should be ignored
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should not change current, got %s", l.GetCurrentLanguage())
	}

	// "system" resolves to English
	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected system to resolve to en, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalization_UnknownKeyFallsBackToKey(t *testing.T) {
	l := NewLocalization()

	if text := l.GetText("no_such_key"); text != "no_such_key" {
		t.Errorf("Expected key itself as fallback, got %s", text)
	}
}
