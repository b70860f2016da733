// Package locale validates the locale codes accepted by the static data
// service ("en_US", "ko_KR", ...).
package locale

import (
	"fmt"
	"slices"
	"strings"
)

// validLocales lists the locales static data is published in.
var validLocales = map[string]string{
	"cs_CZ": "Czech",
	"de_DE": "German",
	"el_GR": "Greek",
	"en_AU": "Australian English",
	"en_GB": "British English",
	"en_PH": "Philippine English",
	"en_PL": "English (Poland)",
	"en_SG": "Singaporean English",
	"en_US": "American English",
	"es_AR": "Argentinian Spanish",
	"es_ES": "Spanish",
	"es_MX": "Mexican Spanish",
	"fr_FR": "French",
	"hu_HU": "Hungarian",
	"id_ID": "Indonesian",
	"it_IT": "Italian",
	"ja_JP": "Japanese",
	"ko_KR": "Korean",
	"ms_MY": "Malay",
	"nl_NL": "Dutch",
	"pl_PL": "Polish",
	"pt_BR": "Brazilian Portuguese",
	"pt_PT": "European Portuguese",
	"ro_RO": "Romanian",
	"ru_RU": "Russian",
	"th_TH": "Thai",
	"tr_TR": "Turkish",
	"vn_VN": "Vietnamese",
	"zh_CN": "Simplified Chinese",
	"zh_MY": "Chinese (Malaysia)",
	"zh_TW": "Traditional Chinese",
}

// Normalize rewrites a locale to the ll_CC form the API uses.
// Accepts: "pt-br", "PT_BR", "pt-BR" -> "pt_BR"
func Normalize(loc string) string {
	base, country, ok := strings.Cut(strings.ReplaceAll(loc, "-", "_"), "_")
	if !ok {
		return strings.ToLower(base)
	}
	return strings.ToLower(base) + "_" + strings.ToUpper(country)
}

// Validate checks that loc is a published locale.
// An empty locale is valid and means the server default.
func Validate(loc string) error {
	if loc == "" {
		return nil
	}
	if _, ok := validLocales[Normalize(loc)]; !ok {
		return fmt.Errorf("invalid locale %q (use codes like 'en_US', 'ko_KR'): %w", loc, ErrInvalid)
	}
	return nil
}

// Language extracts the lowercase language part of a locale.
// Examples: "pt_BR" -> "pt", "en-us" -> "en"
func Language(loc string) string {
	base, _, _ := strings.Cut(Normalize(loc), "_")
	return base
}

// DisplayName returns a human-readable name for a locale.
// Falls back to the code itself for unknown locales.
func DisplayName(loc string) string {
	if name, ok := validLocales[Normalize(loc)]; ok {
		return name
	}
	return loc
}

// All returns every published locale, sorted.
func All() []string {
	out := make([]string, 0, len(validLocales))
	for code := range validLocales {
		out = append(out, code)
	}
	slices.Sort(out)
	return out
}
