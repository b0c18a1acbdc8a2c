package card

import "strings"

// Localized strings for the card chrome. The card itself renders numbers and
// language names verbatim; only the default title and the empty-state message
// are translated.
var (
	defaultTitles = map[string]string{
		"en":    "Most Used Languages",
		"de":    "Meist verwendete Sprachen",
		"es":    "Lenguajes más usados",
		"fr":    "Langages les plus utilisés",
		"it":    "Linguaggi più utilizzati",
		"ja":    "最も使用されている言語",
		"ko":    "가장 많이 사용된 언어",
		"pt-br": "Linguagens mais usadas",
		"ru":    "Наиболее часто используемые языки",
		"zh-cn": "最常用的语言",
	}

	noDataMessages = map[string]string{
		"en":    "No languages data.",
		"de":    "Keine Sprachdaten.",
		"es":    "Sin datos de lenguajes.",
		"fr":    "Aucune donnée de langage.",
		"it":    "Nessun dato sui linguaggi.",
		"ja":    "言語データがありません。",
		"ko":    "언어 데이터가 없습니다.",
		"pt-br": "Sem dados de linguagens.",
		"ru":    "Нет данных о языках.",
		"zh-cn": "没有语言数据。",
	}
)

// normalizeLocale folds a locale tag to the lookup form ("pt-BR" -> "pt-br").
func normalizeLocale(locale string) string {
	return strings.ToLower(strings.TrimSpace(locale))
}

// IsLocaleSupported reports whether strings exist for the locale.
func IsLocaleSupported(locale string) bool {
	_, ok := defaultTitles[normalizeLocale(locale)]
	return ok
}

// DefaultTitle returns the localized default card title, falling back to
// English for unknown locales.
func DefaultTitle(locale string) string {
	if title, ok := defaultTitles[normalizeLocale(locale)]; ok {
		return title
	}
	return defaultTitles["en"]
}

// NoDataMessage returns the localized empty-state message, falling back to
// English for unknown locales.
func NoDataMessage(locale string) string {
	if msg, ok := noDataMessages[normalizeLocale(locale)]; ok {
		return msg
	}
	return noDataMessages["en"]
}
