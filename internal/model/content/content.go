package content

import (
	"unicode"
	"unicode/utf8"
)

// Site is every piece of hand-authored copy the portfolio renders.
type Site struct {
	Profile      Profile      `yaml:"profile"`
	Nav          []NavItem    `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	About        About        `yaml:"about"`
	Experience   Experiences  `yaml:"experience"`
	Achievements Achievements `yaml:"achievements"`
	Testimonials Testimonials `yaml:"testimonials"`
	Social       Social       `yaml:"social"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

// Link is a plain outbound anchor.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile identifies the coach.
type Profile struct {
	Brand          string `yaml:"brand"`
	FirstName      string `yaml:"firstName"`
	LastName       string `yaml:"lastName"`
	Role           string `yaml:"role"`
	Credential     string `yaml:"credential"`
	Academy        Link   `yaml:"academy"`
	FIDEID         string `yaml:"fideId"`
	FIDEProfileURL string `yaml:"fideProfileUrl"`
	ImageURL       string `yaml:"imageUrl"`
	ImageAlt       string `yaml:"imageAlt"`
}

// FullName joins first and last name.
func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// NavItem points at a section anchor.
type NavItem struct {
	Anchor string `yaml:"anchor"`
	Label  string `yaml:"label"`
}

// SectionHeader is the title block every section opens with.
type SectionHeader struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
}

// Stat is a headline number shown in the hero banner.
type Stat struct {
	Icon  string `yaml:"icon"`
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

type Hero struct {
	Description  string `yaml:"description"`
	Stats        []Stat `yaml:"stats"`
	PrimaryCTA   string `yaml:"primaryCta"`
	SecondaryCTA string `yaml:"secondaryCta"`
	ProfileNote  string `yaml:"profileNote"`
}

// Card is an icon, a title and one line of description.
type Card struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Qualification is a line of text with an optional trailing link.
type Qualification struct {
	Text string `yaml:"text"`
	Link *Link  `yaml:"link,omitempty"`
}

type About struct {
	Header         SectionHeader   `yaml:"header"`
	Paragraphs     []string        `yaml:"paragraphs"`
	Qualifications []Qualification `yaml:"qualifications"`
	Skills         []Card          `yaml:"skills"`
}

// Experience is one position in the work history.
type Experience struct {
	Title      string   `yaml:"title"`
	Company    string   `yaml:"company"`
	CompanyURL string   `yaml:"companyUrl"`
	Period     string   `yaml:"period"`
	Status     string   `yaml:"status"`
	Highlights []string `yaml:"highlights"`
}

type Experiences struct {
	Header SectionHeader `yaml:"header"`
	Items  []Experience  `yaml:"items"`
}

// Achievement is a competitive result.
type Achievement struct {
	Title string `yaml:"title"`
	Event string `yaml:"event"`
	Date  string `yaml:"date"`
	Type  string `yaml:"type"`
}

type Achievements struct {
	Header      SectionHeader `yaml:"header"`
	Competitive []Achievement `yaml:"competitive"`
	Teaching    []Card        `yaml:"teaching"`
}

// Testimonial is a peer endorsement.
type Testimonial struct {
	Name    string `yaml:"name"`
	Role    string `yaml:"role"`
	Content string `yaml:"content"`
	Rating  int    `yaml:"rating"`
}

// Initial is the first letter of the author's name, used as an avatar.
func (t Testimonial) Initial() string {
	r, _ := utf8.DecodeRuneInString(t.Name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Stars returns one element per rating point so templates can range over it.
func (t Testimonial) Stars() []struct{} {
	if t.Rating <= 0 {
		return nil
	}
	return make([]struct{}, t.Rating)
}

type Testimonials struct {
	Header SectionHeader `yaml:"header"`
	Items  []Testimonial `yaml:"items"`
	CTA    CallToAction  `yaml:"cta"`
}

type CallToAction struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Button      string `yaml:"button"`
	URL         string `yaml:"url,omitempty"`
}

// SocialLink is a profile on an external network.
type SocialLink struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
	Action      string `yaml:"action"`
	Color       string `yaml:"color"`
	Background  string `yaml:"background"`
}

type Social struct {
	Header    SectionHeader `yaml:"header"`
	Links     []SocialLink  `yaml:"links"`
	Highlight CallToAction  `yaml:"highlight"`
}

// ContactDetail is an email, phone or location line; Href may be empty.
type ContactDetail struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Href  string `yaml:"href,omitempty"`
}

type Contact struct {
	Header          SectionHeader   `yaml:"header"`
	Intro           string          `yaml:"intro"`
	Details         []ContactDetail `yaml:"details"`
	CoachingOptions []string        `yaml:"coachingOptions"`
}

type Footer struct {
	Description string          `yaml:"description"`
	QuickLinks  []NavItem       `yaml:"quickLinks"`
	Academy     []string        `yaml:"academy"`
	Contact     []ContactDetail `yaml:"contact"`
	Copyright   string          `yaml:"copyright"`
	Credentials []string        `yaml:"credentials"`
}
