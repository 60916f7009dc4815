package domain

// Repository represents one GitHub repository owned by the user.
type Repository struct {
	// Name is the short repository identifier, unique per owner.
	Name string
	// URL is the repository URL as reported by the API. Entries sourced
	// from the listing endpoint carry the api.github.com form until they
	// are rewritten for display.
	URL string
	// Private is the last-known visibility. It is nil for repositories
	// entered by hand, where no lookup ever happened.
	Private *bool
}

// VisibilityTag returns "private", "public", or "" when visibility is unknown.
func (r Repository) VisibilityTag() string {
	if r.Private == nil {
		return ""
	}
	if *r.Private {
		return "private"
	}
	return "public"
}
