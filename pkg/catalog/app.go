// Package catalog defines the app portfolio records and the rules for editing them.
package catalog

// LocalizedText holds one string per supported language.
type LocalizedText struct {
	EN string `json:"en" yaml:"en"`
	TR string `json:"tr" yaml:"tr"`
}

// Get returns the text for lang.
func (t LocalizedText) Get(lang Language) string {
	if lang == Turkish {
		return t.TR
	}
	return t.EN
}

// Set stores the text for lang.
func (t *LocalizedText) Set(lang Language, value string) {
	if lang == Turkish {
		t.TR = value
		return
	}
	t.EN = value
}

// IsEmpty reports whether both languages are empty.
func (t LocalizedText) IsEmpty() bool {
	return t.EN == "" && t.TR == ""
}

// Feature is one highlighted capability of an app.
type Feature struct {
	Title       LocalizedText `json:"title" yaml:"title"`
	Description LocalizedText `json:"description" yaml:"description"` // markdown
	IconName    string        `json:"iconName" yaml:"iconName"`
}

// PolicySection is one titled section of an app's privacy policy.
type PolicySection struct {
	Title   LocalizedText `json:"title" yaml:"title"`
	Content LocalizedText `json:"content" yaml:"content"` // markdown
}

// App is a single portfolio entry.
type App struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Tagline       LocalizedText   `json:"tagline" yaml:"tagline"`
	Description   LocalizedText   `json:"description" yaml:"description"` // markdown
	IconURL       string          `json:"iconUrl" yaml:"iconUrl"`
	Screenshots   []string        `json:"screenshots" yaml:"screenshots"`
	Features      []Feature       `json:"features" yaml:"features"`
	DownloadLink  string          `json:"downloadLink" yaml:"downloadLink"`
	Category      LocalizedText   `json:"category" yaml:"category"`
	Rating        float64         `json:"rating" yaml:"rating"`
	ReviewsCount  int             `json:"reviewsCount" yaml:"reviewsCount"`
	Version       string          `json:"version" yaml:"version"`
	LastUpdated   LocalizedText   `json:"lastUpdated" yaml:"lastUpdated"`
	PrivacyPolicy []PolicySection `json:"privacyPolicy" yaml:"privacyPolicy"`
}

// New returns an app with the defaults an editor starts from.
func New() App {
	return App{
		IconURL:       "https://picsum.photos/200",
		Screenshots:   []string{},
		Features:      []Feature{},
		Rating:        5.0,
		Version:       "1.0.0",
		PrivacyPolicy: []PolicySection{},
	}
}

// DefaultIcon is used for new features.
const DefaultIcon = "Activity"

// Icons lists the feature icon names the site can display.
var Icons = []string{
	"Activity", "Shield", "Zap", "Globe", "Heart", "BarChart3",
	"CloudRain", "Lock", "Smartphone", "Music", "Camera", "Map",
	"MessageCircle", "Bell", "Calendar", "Clock", "Search", "Settings",
}

// Clone returns a copy of a that shares no slices with it. Missing lists
// come back empty so they encode as [] rather than null.
func (a App) Clone() App {
	c := a
	c.Screenshots = cloneList(a.Screenshots)
	c.Features = cloneList(a.Features)
	c.PrivacyPolicy = cloneList(a.PrivacyPolicy)
	return c
}

func cloneList[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
