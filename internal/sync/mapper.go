package sync

import (
	"fmt"
	"strings"

	"github.com/pocketai/hubsync/pkg/catalog"
)

// MapLicense maps a raw hub license token to the catalog's closed
// vocabulary. Unrecognized or missing input maps to LicenseUnknown; it
// never fails.
func MapLicense(raw string) catalog.License {
	return catalog.ParseLicense(raw)
}

// MapTags normalizes a raw hub tag list into the catalog's tag set:
// trimmed, lower-cased, de-duplicated, original order preserved. Empty
// or absent input yields an empty set.
func MapTags(raw []string) []string {
	tags := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, t := range raw {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		tags = append(tags, t)
	}
	return tags
}

// DeriveSlug derives the catalog slug from a hub identifier. It is a
// pure function of its input: the same hub id always yields the same
// slug, which is what makes re-runs idempotent and lets the slug
// uniqueness constraint catch collisions with independently created
// records.
func DeriveSlug(hubID string) string {
	return strings.ReplaceAll(strings.ToLower(hubID), "/", "-")
}

// fallbackDescription is used when the hub card carries no summary or
// description for a model.
func fallbackDescription(hubID string) string {
	return fmt.Sprintf("Model synced from the hub: %s", hubID)
}
