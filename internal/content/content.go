// Package content defines the portfolio's content model and its default literal content.
package content

// Content is everything the portfolio renders.
type Content struct {
	Profile    Profile      `yaml:"profile"`
	Skills     []SkillGroup `yaml:"skills" validate:"dive"`
	Projects   []Project    `yaml:"projects" validate:"dive"`
	Experience []Experience `yaml:"experience" validate:"dive"`
	Education  []Education  `yaml:"education" validate:"dive"`
}

// Profile is the hero, about and footer content.
type Profile struct {
	Name        string   `yaml:"name" validate:"required"`
	Headline    string   `yaml:"headline" validate:"required"`
	Location    string   `yaml:"location"`
	Phone       string   `yaml:"phone"`
	CVURL       string   `yaml:"cv_url" validate:"omitempty,link"`
	GitHubURL   string   `yaml:"github_url" validate:"omitempty,link"`
	LinkedInURL string   `yaml:"linkedin_url" validate:"omitempty,link"`
	MailURL     string   `yaml:"mail_url" validate:"omitempty,link"`
	About       []string `yaml:"about" validate:"min=1,dive,required"`
	Year        string   `yaml:"year" validate:"required,numeric,len=4"`
}

// SkillGroup is one category card in the skills section.
type SkillGroup struct {
	Category string   `yaml:"category" validate:"required"`
	Icon     string   `yaml:"icon" validate:"omitempty,icon"`
	Skills   []string `yaml:"skills" validate:"min=1,dive,required"`
}

// Project is one project card. DemoURL is optional.
type Project struct {
	Title        string   `yaml:"title" validate:"required"`
	Description  string   `yaml:"description" validate:"required"`
	Technologies []string `yaml:"technologies" validate:"dive,required"`
	RepoURL      string   `yaml:"repo_url" validate:"required,link"`
	DemoURL      string   `yaml:"demo_url" validate:"omitempty,link"`
}

// HasDemo reports whether the card should render a demo link.
func (p Project) HasDemo() bool { return p.DemoURL != "" }

// Experience is one entry of the experience timeline.
type Experience struct {
	Company          string   `yaml:"company" validate:"required"`
	Role             string   `yaml:"role" validate:"required"`
	Period           string   `yaml:"period" validate:"required"`
	Responsibilities []string `yaml:"responsibilities" validate:"dive,required"`
}

// Education is one entry of the education list.
type Education struct {
	Course      string `yaml:"course" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
	Year        string `yaml:"year" validate:"required"`
}
