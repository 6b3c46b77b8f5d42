package domain

// Skill is one card in the skills grid.
type Skill struct {
	Icon        IconKind `json:"icon" yaml:"icon" validate:"required,icon"`
	Title       string   `json:"title" yaml:"title" validate:"required"`
	Description string   `json:"description" yaml:"description" validate:"required"`
	Level       Level    `json:"level" yaml:"level" validate:"required"`
}

// Project is one card in the projects grid. ImageURL, GithubURL and LiveURL are
// optional; an empty string means the field is absent.
type Project struct {
	Title        string   `json:"title" yaml:"title" validate:"required"`
	Description  string   `json:"description" yaml:"description" validate:"required"`
	Technologies []string `json:"technologies" yaml:"technologies" validate:"dive,required"`
	ImageURL     string   `json:"imageUrl,omitempty" yaml:"imageUrl,omitempty" validate:"omitempty,href"`
	GithubURL    string   `json:"githubUrl,omitempty" yaml:"githubUrl,omitempty" validate:"omitempty,href"`
	LiveURL      string   `json:"liveUrl,omitempty" yaml:"liveUrl,omitempty" validate:"omitempty,href"`
}

// HasImage reports whether the project declares an image.
func (p Project) HasImage() bool { return p.ImageURL != "" }

// HasSource reports whether the project links to its source repository.
func (p Project) HasSource() bool { return p.GithubURL != "" }

// HasDemo reports whether the project links to a live demo.
func (p Project) HasDemo() bool { return p.LiveURL != "" }

// Achievement is a headline number shown in the hero.
type Achievement struct {
	Value string   `json:"value" yaml:"value" validate:"required"`
	Label string   `json:"label" yaml:"label" validate:"required"`
	Icon  IconKind `json:"icon" yaml:"icon" validate:"required,icon"`
}

// Service is an area of practice shown in the hero.
type Service struct {
	Name string   `json:"name" yaml:"name" validate:"required"`
	Icon IconKind `json:"icon" yaml:"icon" validate:"required,icon"`
}

// Stat is a bare value/label counter.
type Stat struct {
	Value string `json:"value" yaml:"value" validate:"required"`
	Label string `json:"label" yaml:"label" validate:"required"`
}

// Education is one entry of the education timeline. Description is markdown.
type Education struct {
	Degree      string `json:"degree" yaml:"degree" validate:"required"`
	Institution string `json:"institution" yaml:"institution" validate:"required"`
	Description string `json:"description" yaml:"description"`
	NoteLabel   string `json:"noteLabel,omitempty" yaml:"noteLabel,omitempty" validate:"required_with=Note"`
	Note        string `json:"note,omitempty" yaml:"note,omitempty"`
}

// ContactLink is an outbound link in the contact section.
type ContactLink struct {
	Kind  IconKind `json:"kind" yaml:"kind" validate:"required,icon"`
	Label string   `json:"label" yaml:"label" validate:"required"`
	URL   string   `json:"url" yaml:"url" validate:"required,href"`
}

// External reports whether the link leaves the site in a new tab. Mail links
// open in place.
func (l ContactLink) External() bool {
	return len(l.URL) < 7 || l.URL[:7] != "mailto:"
}

// Owner is the person the portfolio presents. Bio is markdown.
type Owner struct {
	Greeting     string `json:"greeting" yaml:"greeting"`
	Name         string `json:"name" yaml:"name" validate:"required"`
	Role         string `json:"role" yaml:"role" validate:"required"`
	Bio          string `json:"bio" yaml:"bio"`
	CallToAction string `json:"callToAction" yaml:"callToAction"`
}

// Site carries document-level metadata.
type Site struct {
	Title       string `json:"title" yaml:"title" validate:"required"`
	Description string `json:"description" yaml:"description"`
	Credit      string `json:"credit" yaml:"credit"`
}

// Profile is the complete, immutable content of the site. Slice order is
// render order.
type Profile struct {
	Site         Site          `json:"site" yaml:"site"`
	Owner        Owner         `json:"owner" yaml:"owner"`
	Achievements []Achievement `json:"achievements" yaml:"achievements" validate:"dive"`
	Services     []Service     `json:"services" yaml:"services" validate:"dive"`
	Highlights   []Stat        `json:"highlights" yaml:"highlights" validate:"dive"`
	Skills       []Skill       `json:"skills" yaml:"skills" validate:"dive"`
	Education    []Education   `json:"education" yaml:"education" validate:"dive"`
	Projects     []Project     `json:"projects" yaml:"projects" validate:"dive"`
	Contacts     []ContactLink `json:"contacts" yaml:"contacts" validate:"dive"`
}
