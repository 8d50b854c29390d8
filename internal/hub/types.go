package hub

import "strings"

// Model is the strict descriptor the rest of the system consumes for one
// publicly listed hub model. All fallback and defaulting rules for the
// hub's loosely-typed metadata are applied once, here at the boundary.
type Model struct {
	HubID       string   // Globally unique hub identifier, "org/name"
	Name        string   // Repo part of the hub identifier
	Description string   // Card summary, falling back to card description
	Tags        []string // Raw hub tags
	Task        string   // Pipeline task label
	License     string   // Raw license token, "unknown" when absent
	URL         string   // Canonical hub page
	SHA         string   // Current revision, informational
}

// wireModel mirrors the hub's list-models response shape.
type wireModel struct {
	ID          string    `json:"id"`
	Private     bool      `json:"private"`
	Tags        []string  `json:"tags"`
	PipelineTag string    `json:"pipeline_tag"`
	SHA         string    `json:"sha"`
	CardData    *cardData `json:"cardData"`
}

type cardData struct {
	License     string `json:"license"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
}

// descriptor converts a wire model into the strict descriptor, applying
// the card-data fallbacks. Returns false for items the engine must never
// see: private models and models without an identifier.
func (w *wireModel) descriptor(siteURL string) (Model, bool) {
	if w.ID == "" || w.Private {
		return Model{}, false
	}

	name := w.ID
	if i := strings.LastIndex(w.ID, "/"); i >= 0 {
		name = w.ID[i+1:]
	}

	description := ""
	license := "unknown"
	if w.CardData != nil {
		description = w.CardData.Summary
		if description == "" {
			description = w.CardData.Description
		}
		if w.CardData.License != "" {
			license = w.CardData.License
		}
	}

	return Model{
		HubID:       w.ID,
		Name:        name,
		Description: description,
		Tags:        w.Tags,
		Task:        w.PipelineTag,
		License:     license,
		URL:         strings.TrimSuffix(siteURL, "/") + "/" + w.ID,
		SHA:         w.SHA,
	}, true
}
