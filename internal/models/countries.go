package models

import "strings"

// chartCountries is the closed set of country codes the trending/charts
// surface supports. Codes outside this set are rejected up front, before any
// upstream call. The upstream "ZZ" global pseudo-code is intentionally not
// part of the set.
var chartCountries = map[string]struct{}{
	"AE": {}, "AR": {}, "AT": {}, "AU": {}, "BE": {}, "BO": {}, "BR": {},
	"CA": {}, "CH": {}, "CL": {}, "CO": {}, "CR": {}, "CZ": {}, "DE": {},
	"DK": {}, "DO": {}, "EC": {}, "EG": {}, "ES": {}, "FI": {}, "FR": {},
	"GB": {}, "GT": {}, "HN": {}, "HU": {}, "ID": {}, "IE": {}, "IL": {},
	"IN": {}, "IT": {}, "JP": {}, "KE": {}, "KR": {}, "MX": {}, "NG": {},
	"NI": {}, "NL": {}, "NO": {}, "NZ": {}, "PA": {}, "PE": {}, "PL": {},
	"PT": {}, "PY": {}, "RO": {}, "RS": {}, "RU": {}, "SA": {}, "SE": {},
	"TR": {}, "TZ": {}, "UA": {}, "UG": {}, "US": {}, "UY": {}, "VE": {},
	"ZA": {},
}

// IsSupportedCountry reports whether code (case-insensitive) is in the
// charts allow-list.
func IsSupportedCountry(code string) bool {
	_, ok := chartCountries[strings.ToUpper(code)]
	return ok
}

// NormalizeCountry upper-cases a country code for upstream use.
func NormalizeCountry(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
