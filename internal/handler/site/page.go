package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"

	"github.com/venturechess/portfolio/backend/internal/model/content"
	"github.com/venturechess/portfolio/backend/internal/model/contact"
	"github.com/venturechess/portfolio/backend/internal/service/contactform"
)

//go:embed templates/*.html
var templateFS embed.FS

// Sections is the fixed top-to-bottom order of the page.
var Sections = []string{
	"header",
	"hero",
	"about",
	"experience",
	"achievements",
	"testimonials",
	"social",
	"contact",
	"footer",
}

// PageData is everything one render of the page needs.
type PageData struct {
	Site  content.Site
	Form  FormView
	Toast *contactform.Notification
}

// FormView is the visitor's contact form as the contact section shows it.
type FormView struct {
	Action            string
	Values            contact.Submission
	Submitting        bool
	ExperienceOptions []contact.Option
	SessionOptions    []contact.Option
}

func newFormView(action string, values contact.Submission, submitting bool) FormView {
	return FormView{
		Action:            action,
		Values:            values,
		Submitting:        submitting,
		ExperienceOptions: contact.ExperienceOptions(),
		SessionOptions:    contact.SessionOptions(),
	}
}

type layoutData struct {
	Title       string
	Description string
	Sections    []template.HTML
	Toast       *contactform.Notification
}

// Page composes the sections into one document.
type Page struct {
	tmpl *template.Template
}

// NewPage parses the embedded section templates.
func NewPage() (*Page, error) {
	tmpl, err := template.New("page").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	for _, name := range append([]string{"layout"}, Sections...) {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("template %q is missing", name)
		}
	}
	return &Page{tmpl: tmpl}, nil
}

// Render writes the full page. Nothing is written when a section fails.
func (p *Page) Render(w io.Writer, data PageData) error {
	sections := make([]template.HTML, 0, len(Sections))
	for _, name := range Sections {
		var buf bytes.Buffer
		if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
			return fmt.Errorf("render section %s: %w", name, err)
		}
		sections = append(sections, template.HTML(buf.String()))
	}

	profile := data.Site.Profile
	layout := layoutData{
		Title:       strings.TrimSpace(profile.FullName() + " | " + profile.Role),
		Description: data.Site.Hero.Description,
		Sections:    sections,
		Toast:       data.Toast,
	}

	var out bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&out, "layout", layout); err != nil {
		return fmt.Errorf("render layout: %w", err)
	}
	_, err := out.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"icon":        icon,
	"href":        href,
	"socialStyle": socialStyle,
	"upper":       strings.ToUpper,
	"lower":       strings.ToLower,
}

var iconName = regexp.MustCompile(`^[a-z0-9-]+$`)

func icon(name string) template.HTML {
	name = strings.ToLower(strings.TrimSpace(name))
	if !iconName.MatchString(name) {
		return ""
	}
	return template.HTML(`<span class="icon icon-` + name + `" aria-hidden="true"></span>`)
}

// href admits the schemes the content uses; html/template alone rejects tel:.
func href(raw string) template.URL {
	raw = strings.TrimSpace(raw)
	lower := strings.ToLower(raw)
	for _, scheme := range []string{"https://", "http://", "mailto:", "tel:"} {
		if strings.HasPrefix(lower, scheme) {
			return template.URL(raw)
		}
	}
	if strings.HasPrefix(raw, "#") {
		return template.URL(raw)
	}
	return "#"
}

var cssColor = regexp.MustCompile(`^(#[0-9A-Fa-f]{3,8}|rgba?\(\s*\d{1,3}\s*,\s*\d{1,3}\s*,\s*\d{1,3}\s*(,\s*(0|1|0?\.\d+)\s*)?\))$`)

func socialStyle(link content.SocialLink) template.CSS {
	var decls []string
	if cssColor.MatchString(link.Color) {
		decls = append(decls, "--social-color: "+link.Color)
	}
	if cssColor.MatchString(link.Background) {
		decls = append(decls, "--social-bg: "+link.Background)
	}
	return template.CSS(strings.Join(decls, "; "))
}
