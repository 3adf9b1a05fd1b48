package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Provider exposes the static content to presentational sections.
type Provider interface {
	Site() Site
}

// StaticProvider serves a Site fixed at construction.
type StaticProvider struct {
	site Site
}

// NewStaticProvider returns a Provider for site.
func NewStaticProvider(site Site) *StaticProvider {
	return &StaticProvider{site: site}
}

func (p *StaticProvider) Site() Site {
	return p.site
}

// Seed returns the bundled portfolio content. The embedded document is part
// of the binary, so a parse failure is a programming error.
func Seed() Site {
	site, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("content: bundled content.yaml is invalid: %v", err))
	}
	return site
}

// Load returns the content in path, or the bundled content when path is empty.
func Load(path string) (Site, error) {
	if path == "" {
		return Seed(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("read content file: %w", err)
	}
	site, err := Parse(raw)
	if err != nil {
		return Site{}, fmt.Errorf("content file %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes and validates a content document. Unknown keys are rejected
// so typos in hand-edited files surface at startup.
func Parse(raw []byte) (Site, error) {
	var site Site
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return Site{}, fmt.Errorf("decode content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return Site{}, err
	}
	return site, nil
}

// Validate checks the fields every section depends on.
func (s Site) Validate() error {
	var errs []error
	if s.Profile.Brand == "" {
		errs = append(errs, errors.New("profile.brand is required"))
	}
	if s.Profile.FirstName == "" {
		errs = append(errs, errors.New("profile.firstName is required"))
	}
	for i, item := range s.Nav {
		if item.Anchor == "" || item.Label == "" {
			errs = append(errs, fmt.Errorf("nav[%d]: anchor and label are required", i))
		}
	}
	for i, t := range s.Testimonials.Items {
		if t.Rating < 0 || t.Rating > 5 {
			errs = append(errs, fmt.Errorf("testimonials.items[%d]: rating must be between 0 and 5", i))
		}
	}
	for i, link := range s.Social.Links {
		if err := checkURL(link.URL); err != nil {
			errs = append(errs, fmt.Errorf("social.links[%d]: %w", i, err))
		}
	}
	for i, exp := range s.Experience.Items {
		if exp.CompanyURL == "" {
			continue
		}
		if err := checkURL(exp.CompanyURL); err != nil {
			errs = append(errs, fmt.Errorf("experience.items[%d]: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func checkURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url %q must be absolute http(s)", raw)
	}
	return nil
}
