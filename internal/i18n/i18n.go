package i18n

// Language represents a supported language.
type Language string

const (
	// Spanish is the Spanish language.
	Spanish Language = "es"
	// English is the English language.
	English Language = "en"
)

// DefaultLanguage is the fallback language.
const DefaultLanguage = Spanish

// translations maps language codes to translation keys and their values.
var translations = map[Language]map[string]string{
	Spanish: {
		"home.title":            "FitApp",
		"home.tagline":          "Tu plan de entrenamiento semanal.",
		"home.generate":         "Generar plan",
		"home.regenerate":       "Regenerar día",
		"home.no-plan":          "Todavía no hay plan. Genera uno para empezar.",
		"home.rest":             "Descanso",
		"preferences.title":     "Preferencias",
		"preferences.save":      "Guardar",
		"preferences.level":     "Nivel de actividad",
		"preferences.goal":      "Objetivo",
		"preferences.template":  "Tipo de plan",
		"preferences.days":      "Días de entrenamiento",
		"preferences.quiet":     "Modo silencioso",
		"preferences.equipment": "Equipamiento disponible",
		"language.picker.label": "Idioma",
		"language.name.es":      "Español",
		"language.name.en":      "English",
	},
	English: {
		"home.title":            "FitApp",
		"home.tagline":          "Your weekly training plan.",
		"home.generate":         "Generate plan",
		"home.regenerate":       "Regenerate day",
		"home.no-plan":          "No plan yet. Generate one to get started.",
		"home.rest":             "Rest",
		"preferences.title":     "Preferences",
		"preferences.save":      "Save",
		"preferences.level":     "Activity level",
		"preferences.goal":      "Goal",
		"preferences.template":  "Plan type",
		"preferences.days":      "Training days",
		"preferences.quiet":     "Quiet mode",
		"preferences.equipment": "Available equipment",
		"language.picker.label": "Language",
		"language.name.es":      "Español",
		"language.name.en":      "English",
	},
}

// SupportedLanguages returns a list of all supported languages.
func SupportedLanguages() []Language {
	return []Language{Spanish, English}
}

// IsSupported checks if a language is supported.
func IsSupported(lang Language) bool {
	_, ok := translations[lang]
	return ok
}

// Translate returns the translation for the given key in the specified language.
// If the key is not found, it falls back to the default language.
// If still not found, it returns the key itself.
func Translate(lang Language, key string) string {
	if langTranslations, ok := translations[lang]; ok {
		if translation, ok := langTranslations[key]; ok {
			return translation
		}
	}

	if lang != DefaultLanguage {
		if langTranslations, ok := translations[DefaultLanguage]; ok {
			if translation, ok := langTranslations[key]; ok {
				return translation
			}
		}
	}

	return key
}
