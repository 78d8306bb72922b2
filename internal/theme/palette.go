package theme

// Palette is the terminal rendition of a mode, using the Tailwind slate/blue/purple shades
// the page uses.
type Palette struct {
	Background string
	Text       string
	Muted      string
	Accent     string
	Secondary  string
	Border     string
	Chip       string
}

var palettes = map[Mode]Palette{
	Dark: {
		Background: "#020617", // slate-950
		Text:       "#ffffff",
		Muted:      "#cbd5e1", // slate-300
		Accent:     "#60a5fa", // blue-400
		Secondary:  "#c084fc", // purple-400
		Border:     "#334155", // slate-700
		Chip:       "#1e293b", // slate-800
	},
	Light: {
		Background: "#f8fafc", // slate-50
		Text:       "#0f172a", // slate-900
		Muted:      "#475569", // slate-600
		Accent:     "#2563eb", // blue-600
		Secondary:  "#9333ea", // purple-600
		Border:     "#e2e8f0", // slate-200
		Chip:       "#f1f5f9", // slate-100
	},
}

// Palette returns the colors for m.
func (m Mode) Palette() Palette {
	return palettes[Mode(m.String())]
}
