package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle       = "app_title"
	KeyDropPrompt     = "drop_prompt"
	KeyDropHint       = "drop_hint"
	KeyRecognizing    = "recognizing"
	KeyPlay           = "play"
	KeySettings       = "settings"
	KeyFile           = "file"
	KeyLanguage       = "language"
	KeyServerEndpoint = "server_endpoint"
	KeyRequestTimeout = "request_timeout"
	KeyAutoOpenStream = "auto_open_stream"
	KeySave           = "save"
	KeyCancel         = "cancel"
	KeySettingsSaved  = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:       "TrackDrop",
		KeyDropPrompt:     "Drop an audio file here",
		KeyDropHint:       "or click to browse",
		KeyRecognizing:    "Recognizing...",
		KeyPlay:           "Play",
		KeySettings:       "Settings",
		KeyFile:           "File",
		KeyLanguage:       "Language",
		KeyServerEndpoint: "Server Endpoint",
		KeyRequestTimeout: "Request Timeout (seconds)",
		KeyAutoOpenStream: "Open stream after recognition",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
		KeySettingsSaved:  "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:       "TrackDrop",
		KeyDropPrompt:     "Перетащите аудиофайл сюда",
		KeyDropHint:       "или нажмите для выбора",
		KeyRecognizing:    "Распознавание...",
		KeyPlay:           "Слушать",
		KeySettings:       "Настройки",
		KeyFile:           "Файл",
		KeyLanguage:       "Язык",
		KeyServerEndpoint: "Адрес сервера",
		KeyRequestTimeout: "Таймаут запроса (сек)",
		KeyAutoOpenStream: "Открывать поток после распознавания",
		KeySave:           "Сохранить",
		KeyCancel:         "Отмена",
		KeySettingsSaved:  "Настройки успешно сохранены!",
	}
}
