package sync

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pocketai/hubsync/pkg/catalog"
)

// Result represents the outcome of one sync run.
type Result struct {
	Created  int                     // Models newly inserted into the catalog
	Updated  int                     // Existing models whose metadata was overwritten
	Skipped  int                     // Models whose per-item processing failed
	Skips    []Skip                  // One entry per skipped model, for audit logs
	Licenses map[catalog.License]int // Applied records tallied per mapped license kind
}

// Skip records why a single model was skipped during a run.
type Skip struct {
	HubID  string `json:"hub_id"`
	Reason string `json:"reason"`
}

// Total returns the number of items the run attempted.
func (r *Result) Total() int {
	return r.Created + r.Updated + r.Skipped
}

// HasSkips reports whether any item failed during the run.
func (r *Result) HasSkips() bool {
	return r.Skipped > 0
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("created %d, updated %d, skipped %d", r.Created, r.Updated, r.Skipped)
}

// LicenseBreakdown returns the per-license tally of applied records in
// display casing and stable order, e.g. "Apache-2.0: 2, MIT: 1". Empty
// when no record was applied.
func (r *Result) LicenseBreakdown() string {
	if len(r.Licenses) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Licenses))
	for l, n := range r.Licenses {
		parts = append(parts, fmt.Sprintf("%s: %d", l.Display(), n))
	}
	sort.Strings(parts)
	return strings.Join(parts, ", ")
}

func (r *Result) skip(hubID string, err error) {
	r.Skipped++
	r.Skips = append(r.Skips, Skip{HubID: hubID, Reason: err.Error()})
}

func (r *Result) countLicense(l catalog.License) {
	if r.Licenses == nil {
		r.Licenses = make(map[catalog.License]int)
	}
	r.Licenses[l]++
}
