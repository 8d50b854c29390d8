package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// License represents the closed license vocabulary of the local catalog.
// Values match the license tokens used by the model hub.
type License string

// Known licenses, grouped by how freely they can be used commercially.
const (
	// Permissive licenses safe for commercial use.
	LicenseApache20        License = "apache-2.0"
	LicenseMIT             License = "mit"
	LicenseBSD             License = "bsd"
	LicenseBSD3Clause      License = "bsd-3-clause"
	LicenseBSD3ClauseClear License = "bsd-3-clause-clear"
	LicenseCC010           License = "cc0-1.0"
	LicenseAFL30           License = "afl-3.0"

	// Attribution or restricted-use licenses.
	LicenseCCBY40     License = "cc-by-4.0"
	LicenseCCBYSA30   License = "cc-by-sa-3.0"
	LicenseCCBYSA40   License = "cc-by-sa-4.0"
	LicenseOpenRAIL   License = "openrail"
	LicenseOpenRAILPP License = "openrail++"

	// Non-commercial or copyleft licenses.
	LicenseCCBYNC40   License = "cc-by-nc-4.0"
	LicenseCCBYNCSA40 License = "cc-by-nc-sa-4.0"
	LicenseCCBYNCND40 License = "cc-by-nc-nd-4.0"
	LicenseGPL30      License = "gpl-3.0"
	LicenseAGPL30     License = "agpl-3.0"
	LicenseLlama2     License = "llama2"
	LicenseLlama3     License = "llama3"

	// Fallbacks.
	LicenseOther   License = "other"
	LicenseUnknown License = "unknown"
)

// licenses holds every member of the closed vocabulary for parse lookups.
var licenses = []License{
	LicenseApache20,
	LicenseMIT,
	LicenseBSD,
	LicenseBSD3Clause,
	LicenseBSD3ClauseClear,
	LicenseCC010,
	LicenseAFL30,
	LicenseCCBY40,
	LicenseCCBYSA30,
	LicenseCCBYSA40,
	LicenseOpenRAIL,
	LicenseOpenRAILPP,
	LicenseCCBYNC40,
	LicenseCCBYNCSA40,
	LicenseCCBYNCND40,
	LicenseGPL30,
	LicenseAGPL30,
	LicenseLlama2,
	LicenseLlama3,
	LicenseOther,
	LicenseUnknown,
}

// ParseLicense maps a raw hub license token to the closed vocabulary.
// Matching is case-insensitive; unrecognized or empty input yields
// LicenseUnknown. It never fails.
func ParseLicense(raw string) License {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return LicenseUnknown
	}
	for _, l := range licenses {
		if string(l) == raw {
			return l
		}
	}
	return LicenseUnknown
}

// String returns the string representation of a License.
func (l License) String() string {
	return string(l)
}

// CommercialUse reports whether this license generally allows commercial
// use. This is a heuristic, not legal advice.
func (l License) CommercialUse() bool {
	switch l {
	case LicenseApache20, LicenseMIT, LicenseBSD, LicenseBSD3Clause,
		LicenseBSD3ClauseClear, LicenseCC010, LicenseAFL30,
		LicenseCCBY40, LicenseOpenRAIL, LicenseOpenRAILPP:
		return true
	}
	return false
}

var titleCaser = cases.Title(language.English)

// Display returns a human-readable form of the license for CLI output
// and API responses, e.g. "Apache-2.0" or "Unknown".
func (l License) Display() string {
	switch l {
	case LicenseMIT:
		return "MIT"
	case LicenseUnknown, LicenseOther:
		return titleCaser.String(string(l))
	}
	return strings.ToUpper(string(l[:1])) + string(l[1:])
}
