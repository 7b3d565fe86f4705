// Package content serves the marketing site's copy dictionary. The
// payload is static, read-only data compiled into the binary; the front
// end fetches it once and renders every page section from it.
package content

// NavItem is one header navigation link.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Hero is the landing page's above-the-fold copy.
type Hero struct {
	Eyebrow             string `json:"eyebrow"`
	Headline            string `json:"headline"`
	CategoryStatement   string `json:"categoryStatement"`
	ContrarianStatement string `json:"contrarianStatement"`
	Thesis              string `json:"thesis"`
	Subhead             string `json:"subhead"`
	PrimaryCTA          string `json:"primaryCta"`
	SecondaryCTA        string `json:"secondaryCta"`
}

// IndustryMistake names a common failure mode the product positions against.
type IndustryMistake struct {
	Title   string `json:"title"`
	Problem string `json:"problem"`
	Impact  string `json:"impact"`
}

type Differentiator struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Proof  string `json:"proof"`
}

type ProofPoint struct {
	Label     string `json:"label"`
	Statement string `json:"statement"`
}

// Platform splits the architecture pitch into its two planes.
type Platform struct {
	ControlPlane []string `json:"controlPlane"`
	DataPlane    []string `json:"dataPlane"`
}

type Connector struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

type RuntimeStep struct {
	Step        string `json:"step"`
	Description string `json:"description"`
}

// Site is the complete content dictionary.
type Site struct {
	Brand              string            `json:"brand"`
	Nav                []NavItem         `json:"nav"`
	Hero               Hero              `json:"hero"`
	IndustryMistakes   []IndustryMistake `json:"industryMistakes"`
	IndustryClose      string            `json:"industryClose"`
	DifferentiatorLine string            `json:"differentiatorLine"`
	Differentiators    []Differentiator  `json:"differentiators"`
	ProofPoints        []ProofPoint      `json:"proofPoints"`
	Platform           Platform          `json:"platform"`
	Safety             []string          `json:"safety"`
	Connectors         []Connector       `json:"connectors"`
	Flow               []RuntimeStep     `json:"flow"`
}

type Service interface {
	Site() *Site
}

type contentService struct{}

func New() Service {
	return &contentService{}
}

func (s *contentService) Site() *Site {
	return &siteContent
}
