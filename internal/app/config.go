package app

// Config carries all settings for one generation run. Precedence is explicit
// flags, then the optional config file, then environment fallbacks.
type Config struct {
	// ContentDir is the directory holding markdown articles.
	ContentDir string
	// OutputDir receives one <slug>.jsonld file per article.
	OutputDir string
	// HTMLDir, when set, points at rendered pages (<slug>/index.html) that
	// get the payload injected in place.
	HTMLDir string

	SiteURL     string
	SiteName    string
	DefaultLang string

	PublisherName string
	PublisherLogo string

	Verbose bool
}
