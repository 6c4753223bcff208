package model

type NavLink struct {
	Label string
	Href  string
}

// IsPage reports whether the link points at another page rather than a
// section anchor on the home page.
func (l NavLink) IsPage() bool {
	return len(l.Href) > 0 && l.Href[0] == '/'
}

type SocialLink struct {
	Label string
	Href  string
	Text  string
}

type Owner struct {
	FirstName string
	LastName  string
	Initials  string
	Role      string
	Pitch     string
	Bio       string
	Email     string
	Links     []SocialLink
}

type FocusArea struct {
	Title   string
	Summary string
}

type SkillGroup struct {
	Title  string
	Skills []string
}

const (
	ProjectCompleted = "Completed"
	ProjectOngoing   = "Ongoing"
)

type Project struct {
	Title       string
	Featured    bool
	Status      string
	Description string
	Highlights  []string
	Tech        []string
	URL         string
}

type Publication struct {
	Kind     string
	Venue    string
	Title    string
	Abstract string
	URL      string
}

type Certification struct {
	Name   string
	Issuer string
	URL    string
}

type Education struct {
	Degree      string
	Institution string
	Score       string
	Period      string
}

// Portfolio is the full set of static home page data.
type Portfolio struct {
	Owner          Owner
	Nav            []NavLink
	Focus          []FocusArea
	Skills         []SkillGroup
	Projects       []Project
	Publications   []Publication
	Certifications []Certification
	Education      []Education
}
