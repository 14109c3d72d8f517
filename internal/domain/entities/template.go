package entities

// BuilderTemplate is a code-defined starter bundle applied in one step
// to initialize a shop's look. Templates are immutable and never
// persisted; applying one replaces the draft's colors, fonts, card
// style, hero settings, and section list wholesale.
type BuilderTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
	HeadingFont string            `json:"headingFont"`
	BodyFont    string            `json:"bodyFont"`
	CardStyle   string            `json:"cardStyle"`
	Hero        HeroSettings      `json:"hero"`
	Gradient    string            `json:"gradient,omitempty"`
	Sections    []Section         `json:"sections"`
}
