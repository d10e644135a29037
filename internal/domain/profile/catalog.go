package profile

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// RoleConfig is the on-disk shape of one role.
type RoleConfig struct {
	Name      string                `koanf:"name"`
	Positions []string              `koanf:"positions"`
	Languages map[string][]Category `koanf:"languages"`
}

// Catalog is the validated set of role profiles, keyed by role and language.
// It is built once at startup and never mutated afterwards.
type Catalog struct {
	roles    []string
	profiles map[string]map[string]RoleProfile // lower(role) -> lang -> profile
	canon    map[string]string                 // lower(role) -> configured name
}

// RoleInfo describes a role for listings.
type RoleInfo struct {
	Name      string   `json:"name"`
	Languages []string `json:"languages"`
	Positions []string `json:"positions"`
}

// NewCatalog validates roles and builds a Catalog. Any configuration error
// fails the whole catalog; nothing is scored with a partially valid profile.
func NewCatalog(roles []RoleConfig) (*Catalog, error) {
	if len(roles) == 0 {
		return nil, fmt.Errorf("%w: no roles configured", ErrInvalidProfile)
	}
	c := &Catalog{
		profiles: make(map[string]map[string]RoleProfile, len(roles)),
		canon:    make(map[string]string, len(roles)),
	}
	for _, rc := range roles {
		name := strings.TrimSpace(rc.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: role without a name", ErrInvalidProfile)
		}
		key := strings.ToLower(name)
		if _, dup := c.canon[key]; dup {
			return nil, fmt.Errorf("%w: duplicate role %q", ErrInvalidProfile, name)
		}
		if len(rc.Languages) == 0 {
			return nil, fmt.Errorf("%w: role %q has no languages", ErrInvalidProfile, name)
		}

		positions := make(map[string]struct{}, len(rc.Positions))
		for _, p := range rc.Positions {
			if code := strings.ToUpper(strings.TrimSpace(p)); code != "" {
				positions[code] = struct{}{}
			}
		}

		byLang := make(map[string]RoleProfile, len(rc.Languages))
		for lang, cats := range rc.Languages {
			code := normalizeLanguage(lang)
			if err := validateCategories(name, code, cats); err != nil {
				return nil, err
			}
			byLang[code] = RoleProfile{
				Role:       name,
				Language:   code,
				Categories: cloneCategories(cats),
				positions:  positions,
			}
		}
		c.canon[key] = name
		c.profiles[key] = byLang
		c.roles = append(c.roles, name)
	}
	return c, nil
}

func validateCategories(role, lang string, cats []Category) error {
	if len(cats) == 0 {
		return fmt.Errorf("%w: role %q language %q has no categories", ErrInvalidProfile, role, lang)
	}
	names := make(map[string]struct{}, len(cats))
	for _, cat := range cats {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("%w: role %q language %q has an unnamed category", ErrInvalidProfile, role, lang)
		}
		if _, dup := names[cat.Name]; dup {
			return fmt.Errorf("%w: role %q language %q repeats category %q", ErrInvalidProfile, role, lang, cat.Name)
		}
		names[cat.Name] = struct{}{}

		if len(cat.Weights) == 0 {
			return fmt.Errorf("%w: category %q of role %q (%s) has no weights", ErrInvalidProfile, cat.Name, role, lang)
		}
		metrics := make(map[string]struct{}, len(cat.Weights))
		for _, w := range cat.Weights {
			if strings.TrimSpace(w.Metric) == "" {
				return fmt.Errorf("%w: category %q of role %q has a weight without metric", ErrInvalidProfile, cat.Name, role)
			}
			if _, dup := metrics[w.Metric]; dup {
				return fmt.Errorf("%w: category %q of role %q weights %q twice", ErrInvalidProfile, cat.Name, role, w.Metric)
			}
			metrics[w.Metric] = struct{}{}
			if math.IsNaN(w.Weight) || math.IsInf(w.Weight, 0) {
				return fmt.Errorf("%w: category %q of role %q has a non-finite weight for %q", ErrInvalidProfile, cat.Name, role, w.Metric)
			}
		}
	}
	return nil
}

func cloneCategories(cats []Category) []Category {
	out := make([]Category, len(cats))
	for i, c := range cats {
		out[i] = Category{Name: c.Name, Weights: append([]Weight(nil), c.Weights...)}
	}
	return out
}

// normalizeLanguage maps display names used by the UI ("Español", "English")
// onto language codes.
func normalizeLanguage(s string) string {
	switch l := strings.ToLower(strings.TrimSpace(s)); l {
	case "español", "espanol", "spanish":
		return "es"
	case "english", "inglés", "ingles":
		return "en"
	default:
		return l
	}
}

// Profile returns the profile for role in lang. Role matching is case
// insensitive; lang accepts codes or display names.
func (c *Catalog) Profile(role, lang string) (RoleProfile, error) {
	byLang, ok := c.profiles[strings.ToLower(strings.TrimSpace(role))]
	if !ok {
		return RoleProfile{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
	p, ok := byLang[normalizeLanguage(lang)]
	if !ok {
		return RoleProfile{}, fmt.Errorf("%w: %q for role %q", ErrUnknownLanguage, lang, role)
	}
	return p, nil
}

// Roles lists configured roles in configuration order.
func (c *Catalog) Roles() []RoleInfo {
	out := make([]RoleInfo, 0, len(c.roles))
	for _, name := range c.roles {
		byLang := c.profiles[strings.ToLower(name)]
		info := RoleInfo{Name: name}
		var positions map[string]struct{}
		for lang, p := range byLang {
			info.Languages = append(info.Languages, lang)
			positions = p.positions
		}
		for code := range positions {
			info.Positions = append(info.Positions, code)
		}
		sort.Strings(info.Languages)
		sort.Strings(info.Positions)
		out = append(out, info)
	}
	return out
}
