package translation

import "strings"

var languageNames = map[string]string{
	"en": "English",
	"el": "Greek",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"ru": "Russian",
	"ja": "Japanese",
	"ko": "Korean",
	"zh": "Chinese",
	"ar": "Arabic",
	"hi": "Hindi",
	"nl": "Dutch",
	"pl": "Polish",
	"tr": "Turkish",
	"vi": "Vietnamese",
	"th": "Thai",
	"id": "Indonesian",
	"cs": "Czech",
	"da": "Danish",
	"fi": "Finnish",
	"no": "Norwegian",
	"ro": "Romanian",
	"hu": "Hungarian",
	"he": "Hebrew",
	"uk": "Ukrainian",
	"bg": "Bulgarian",
	"hr": "Croatian",
	"sk": "Slovak",
	"sl": "Slovenian",
	"et": "Estonian",
	"lv": "Latvian",
	"lt": "Lithuanian",
}

// LanguageName returns the English name for an ISO 639-1 code in any case,
// or the upper-cased code when it is not known.
func LanguageName(code string) string {
	if name, ok := languageNames[strings.ToLower(code)]; ok {
		return name
	}
	return strings.ToUpper(code)
}
