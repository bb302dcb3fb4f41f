// Package content holds the static marketing catalogue: programs, coaches,
// membership plans, FAQs, nutrition services and contact details.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultYAML []byte

// Domain errors
var (
	ErrNoClubName    = errors.New("club name is required")
	ErrNoPrograms    = errors.New("at least one program is required")
	ErrNoPlans       = errors.New("at least one plan is required")
	ErrDuplicatePlan = errors.New("plan ids must be unique")
)

// Stat is a headline number with a caption.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Club is the site-wide branding block.
type Club struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Stats   []Stat `yaml:"stats"`
}

// Program is a training program card. Description is markdown.
type Program struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Tag         string `yaml:"tag"`
	Duration    string `yaml:"duration"`
	Description string `yaml:"description"`
}

// Trainer is a coach profile.
type Trainer struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	Role           string   `yaml:"role"`
	Speciality     string   `yaml:"speciality"`
	Experience     string   `yaml:"experience"`
	Certifications []string `yaml:"certifications"`
	Bio            string   `yaml:"bio"`
	Stats          []Stat   `yaml:"stats"`
}

// Plan is a membership tier on the pricing page.
type Plan struct {
	ID          string   `yaml:"id"`
	Price       string   `yaml:"price"` // USD per period, or "Custom"
	Period      string   `yaml:"period"`
	Tag         string   `yaml:"tag"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Missing     []string `yaml:"missing"`
	CTA         string   `yaml:"cta"`
	Featured    bool     `yaml:"featured"`
}

// IsCustom reports whether the plan is quoted rather than priced.
func (p Plan) IsCustom() bool {
	return p.Price == "Custom"
}

// FAQ is a question/answer pair. Answer is markdown.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Card is a titled, tagged blurb used by the nutrition sections.
type Card struct {
	Title       string `yaml:"title"`
	Tag         string `yaml:"tag"`
	Description string `yaml:"description"`
}

// Nutrition groups the nutrition page sections.
type Nutrition struct {
	Services []Card `yaml:"services"`
	Phases   []Card `yaml:"phases"`
}

// ContactInfo is one of the contact page info cards.
type ContactInfo struct {
	Icon  string `yaml:"icon"`
	Label string `yaml:"label"`
	Value string `yaml:"value"`
	Sub   string `yaml:"sub"`
}

// Social is a social media handle.
type Social struct {
	Label  string `yaml:"label"`
	Handle string `yaml:"handle"`
}

// Contact groups the contact page sections.
type Contact struct {
	Info    []ContactInfo `yaml:"info"`
	Socials []Social      `yaml:"socials"`
}

// Catalogue is the full site content.
type Catalogue struct {
	Club      Club      `yaml:"club"`
	Programs  []Program `yaml:"programs"`
	Trainers  []Trainer `yaml:"trainers"`
	Plans     []Plan    `yaml:"plans"`
	FAQs      []FAQ     `yaml:"faqs"`
	Nutrition Nutrition `yaml:"nutrition"`
	Contact   Contact   `yaml:"contact"`
}

// Validate checks the catalogue is renderable.
// PRE: Catalogue is decoded
// POST: Returns nil if valid, error otherwise
func (c *Catalogue) Validate() error {
	if c.Club.Name == "" {
		return ErrNoClubName
	}
	if len(c.Programs) == 0 {
		return ErrNoPrograms
	}
	if len(c.Plans) == 0 {
		return ErrNoPlans
	}
	seen := make(map[string]bool, len(c.Plans))
	for _, p := range c.Plans {
		if seen[p.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicatePlan, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Decode reads a YAML catalogue and validates it.
// PRE: r yields YAML
// POST: Returns a validated Catalogue or the first decode/validation error
func Decode(r io.Reader) (Catalogue, error) {
	var c Catalogue
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return Catalogue{}, fmt.Errorf("decode content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalogue{}, err
	}
	return c, nil
}

// Default returns the catalogue embedded in the binary.
func Default() (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return Catalogue{}, fmt.Errorf("decode embedded content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalogue{}, err
	}
	return c, nil
}

// Load returns the catalogue at path, or the embedded one when path is empty.
func Load(path string) (Catalogue, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return Catalogue{}, fmt.Errorf("open content: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
