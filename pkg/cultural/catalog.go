package cultural

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Saying is a cultural proverb with its romanization and meaning.
type Saying struct {
	Chinese  string `yaml:"chinese"`
	Pinyin   string `yaml:"pinyin"`
	English  string `yaml:"english"`
	Context  string `yaml:"context"`
	Heritage string `yaml:"heritage"`
}

// Period describes one historical window an ancestor may have lived through.
type Period struct {
	Name               string   `yaml:"name"`
	StartYear          int      `yaml:"startYear"`
	EndYear            int      `yaml:"endYear"`
	KeyEvents          []string `yaml:"keyEvents"`
	EconomicConditions []string `yaml:"economicConditions"`
	SocialContext      []string `yaml:"socialContext"`
}

// Occupation describes a traditional trade.
type Occupation struct {
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	SocialStatus  string   `yaml:"socialStatus"`
	CommonRegions []string `yaml:"commonRegions"`
	TimePeriods   []string `yaml:"timePeriods"`
}

// Catalog is the read-only cultural reference database shipped with the
// application.
type Catalog struct {
	Sayings     []Saying     `yaml:"sayings"`
	Periods     []Period     `yaml:"periods"`
	Occupations []Occupation `yaml:"occupations"`
}

// LoadCatalog decodes the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	catalog := &Catalog{}
	if err := yaml.Unmarshal(catalogYAML, catalog); err != nil {
		return nil, err
	}
	return catalog, nil
}

// SayingsForHeritage returns the sayings tied to an ethnicity slug.
func (c *Catalog) SayingsForHeritage(heritage string) []Saying {
	var out []Saying
	for _, s := range c.Sayings {
		if s.Heritage == heritage {
			out = append(out, s)
		}
	}
	return out
}

// PeriodForYear returns the historical period covering the given year.
func (c *Catalog) PeriodForYear(year int) (Period, bool) {
	for _, p := range c.Periods {
		if year >= p.StartYear && year <= p.EndYear {
			return p, true
		}
	}
	return Period{}, false
}

// Search filters the catalog with a case-insensitive free-text query across
// sayings, periods and occupations.
func (c *Catalog) Search(query string) *Catalog {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c
	}

	out := &Catalog{}
	for _, s := range c.Sayings {
		if containsFold(q, s.Chinese, s.Pinyin, s.English, s.Context, s.Heritage) {
			out.Sayings = append(out.Sayings, s)
		}
	}
	for _, p := range c.Periods {
		if containsFold(q, append([]string{p.Name}, p.KeyEvents...)...) {
			out.Periods = append(out.Periods, p)
		}
	}
	for _, o := range c.Occupations {
		if containsFold(q, o.Name, o.Description, o.SocialStatus) {
			out.Occupations = append(out.Occupations, o)
		}
	}
	return out
}

func containsFold(query string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}
