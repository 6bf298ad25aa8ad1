package iconcache

// DefaultIconType is used for activities whose icon is missing or unknown.
const DefaultIconType = "iconPlus"

// Component is a loaded icon ready for a rendering layer.
type Component struct {
	Name  string
	Glyph string
}

// Loader produces the component of one icon type. Loaders may block; the
// cache runs each one at most once per instance on its own goroutine.
type Loader func() (Component, error)

var glyphs = map[string]string{
	"iconSearch":    "⌕",
	"iconPlus":      "+",
	"iconMinus":     "-",
	"iconEdit":      "✎",
	"iconDestroy":   "✗",
	"iconDownload":  "↓",
	"iconList":      "☰",
	"iconView":      "◉",
	"iconEmail":     "✉",
	"iconMessage":   "»",
	"iconSorting":   "↕",
	"iconPresent":   "★",
	"iconAddUser":   "⊕",
	"iconPhoneText": "☏",
	"iconLock":      "#",
}

// DefaultLoaders returns a fresh registry of every built-in icon.
func DefaultLoaders() map[string]Loader {
	loaders := make(map[string]Loader, len(glyphs))
	for name, glyph := range glyphs {
		component := Component{Name: name, Glyph: glyph}
		loaders[name] = func() (Component, error) { return component, nil }
	}
	return loaders
}
