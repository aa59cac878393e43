package themes

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Accent identifies the closed set of brand accent palettes. Accents are a
// build-time contract: an unrecognized value is a configuration error, not
// user input to fall back on.
type Accent string

const (
	AccentIndigo  Accent = "indigo"
	AccentEmerald Accent = "emerald"
	AccentBlue    Accent = "blue"
	AccentAmber   Accent = "amber"
)

// ThemeTokens is the set of visual-role tokens every section renderer
// consumes. Values are utility-class fragments; the engine treats them as
// opaque strings.
type ThemeTokens struct {
	Accent      Accent
	Badge       string
	Button      string
	Gradient    string
	Border      string
	Placeholder string
}

// NavItem is a single navigation descriptor rendered in the brand header.
type NavItem struct {
	Href      string
	Label     string
	Highlight bool
}

// Link is a labeled URL used in product and company link lists.
type Link struct {
	Href  string
	Label string
}

// BrandConfig carries the per-site constants: brand identity, accent key,
// navigation and link lists, and the content gateway base URL. It is
// immutable for the lifetime of a build and passed explicitly into every
// composition call.
type BrandConfig struct {
	Name string
	// Key is the stable identifier content records are scoped by. Defaults
	// to a slug of Name when empty.
	Key          string
	Accent       Accent
	Tagline      string
	NavItems     []NavItem
	ProductLinks []Link
	CompanyLinks []Link
	GatewayURL   string
}

// Validate rejects misconfigured brands before any page is composed.
func (c BrandConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required),
		validation.Field(&c.Accent, validation.Required, validation.By(validateAccent)),
		validation.Field(&c.GatewayURL, validation.Required, is.URL),
		validation.Field(&c.NavItems, validation.Each(validation.By(validateNavItem))),
	)
}

func validateAccent(value any) error {
	accent, _ := value.(Accent)
	_, err := Resolve(accent)
	return err
}

func validateNavItem(value any) error {
	item, _ := value.(NavItem)
	return validation.ValidateStruct(&item,
		validation.Field(&item.Href, validation.Required),
		validation.Field(&item.Label, validation.Required),
	)
}
