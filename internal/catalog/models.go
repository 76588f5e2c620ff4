// Package catalog acquires and caches the exercise catalog that plan
// generation draws from. Exercises come from a local snapshot, a remote
// per-body-part API, or a built-in fallback list, and look identical to
// consumers regardless of origin.
package catalog

// Exercise is a single catalog entry. The shape mirrors the remote API and is
// treated as read-only by the plan engine.
type Exercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	NameES           string   `json:"nameEs,omitempty"`
	BodyPart         string   `json:"bodyPart"`
	Target           string   `json:"target"`
	SecondaryMuscles []string `json:"secondaryMuscles,omitempty"`
	Equipment        string   `json:"equipment"`
	Category         string   `json:"category,omitempty"`
	Difficulty       string   `json:"difficulty,omitempty"`
	Instructions     []string `json:"instructions,omitempty"`
	Description      string   `json:"description,omitempty"`
	DescriptionES    string   `json:"descriptionEs,omitempty"`
	GifURL           string   `json:"gifUrl,omitempty"`
}

// DisplayName returns the localized name when available for the given
// language, falling back to the primary name.
func (e Exercise) DisplayName(lang string) string {
	if lang == "es" && e.NameES != "" {
		return e.NameES
	}
	return e.Name
}

// LocalizedDescription returns the description for the given language,
// falling back to the primary description.
func (e Exercise) LocalizedDescription(lang string) string {
	if lang == "es" && e.DescriptionES != "" {
		return e.DescriptionES
	}
	return e.Description
}
