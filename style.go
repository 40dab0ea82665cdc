package prettydiff

// ColorKind identifies a palette entry or the continuous CMYK variant.
type ColorKind int

// Palette colors. Gray and Default extend the 16-color ANSI palette;
// ColorCMYK marks an arbitrary continuous color for backends that support
// one.
const (
	Black ColorKind = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	Gray
	Default
	ColorCMYK
)

// Color is a palette color or an arbitrary CMYK value. The CMYK components
// are only meaningful when Kind is ColorCMYK; each is in [0, 1].
type Color struct {
	Kind       ColorKind
	C, M, Y, K float64
}

// Named returns a palette color.
func Named(k ColorKind) Color {
	return Color{Kind: k}
}

// CMYK returns a continuous color for backends that support one.
func CMYK(c, m, y, k float64) Color {
	return Color{Kind: ColorCMYK, C: c, M: m, Y: y, K: k}
}

// rgb values for the palette, used by backends that need concrete color
// values. The 16 ANSI entries use the VGA palette.
var paletteRGB = map[ColorKind][3]uint8{
	Black:         {0x00, 0x00, 0x00},
	Red:           {0xaa, 0x00, 0x00},
	Green:         {0x00, 0xaa, 0x00},
	Yellow:        {0xaa, 0x55, 0x00},
	Blue:          {0x00, 0x00, 0xaa},
	Magenta:       {0xaa, 0x00, 0xaa},
	Cyan:          {0x00, 0xaa, 0xaa},
	White:         {0xaa, 0xaa, 0xaa},
	BrightBlack:   {0x55, 0x55, 0x55},
	BrightRed:     {0xff, 0x55, 0x55},
	BrightGreen:   {0x55, 0xff, 0x55},
	BrightYellow:  {0xff, 0xff, 0x55},
	BrightBlue:    {0x55, 0x55, 0xff},
	BrightMagenta: {0xff, 0x55, 0xff},
	BrightCyan:    {0x55, 0xff, 0xff},
	BrightWhite:   {0xff, 0xff, 0xff},
	Gray:          {0x80, 0x80, 0x80},
}

// RGB returns the color as 8-bit RGB components. CMYK values are converted;
// Default maps to black and should be special-cased by backends that can
// express "no color override".
func (c Color) RGB() (r, g, b uint8) {
	if c.Kind == ColorCMYK {
		r = uint8((1 - c.C) * (1 - c.K) * 255)
		g = uint8((1 - c.M) * (1 - c.K) * 255)
		b = uint8((1 - c.Y) * (1 - c.K) * 255)
		return r, g, b
	}
	v := paletteRGB[c.Kind]
	return v[0], v[1], v[2]
}

// StyleKind identifies a text style.
type StyleKind int

// Text styles. Foreground and Background carry a Color.
const (
	Bold StyleKind = iota
	Underline
	Emph
	Blink
	Dim
	Inverse
	Hide
	Reset
	Foreground
	Background
)

// Style is one element of a rule's style list.
type Style struct {
	Kind  StyleKind
	Color Color // Foreground and Background only
}

// Fg returns a foreground color style.
func Fg(c Color) Style {
	return Style{Kind: Foreground, Color: c}
}

// Bg returns a background color style.
func Bg(c Color) Style {
	return Style{Kind: Background, Color: c}
}

// Annex is decorated text glued before or after a styled body.
type Annex struct {
	Text   string
	Styles []Style
}

// Rule is the declarative styling assigned to one semantic diff category:
// an optional prefix and suffix annex, the body style list, and a name used
// by backends that generate named markup (the LaTeX macro table).
type Rule struct {
	Prefix Annex
	Suffix Annex
	Styles []Style
	Name   string
}

// Rules maps each semantic diff category to its Rule. The table is built
// once from configuration and treated as immutable for the whole render.
type Rules struct {
	LineSame        Rule
	LineOld         Rule
	LineNew         Rule
	LineUnified     Rule
	WordSameOld     Rule
	WordSameNew     Rule
	WordSameUnified Rule
	WordOld         Rule
	WordNew         Rule
	HunkHeader      Rule
	HeaderOld       Rule
	HeaderNew       Rule
}

// All returns every rule in a fixed order so backends that emit per-rule
// definitions (the LaTeX preamble) produce reproducible output.
func (r Rules) All() []Rule {
	return []Rule{
		r.HeaderOld,
		r.HeaderNew,
		r.HunkHeader,
		r.LineSame,
		r.LineOld,
		r.LineNew,
		r.LineUnified,
		r.WordSameOld,
		r.WordSameNew,
		r.WordSameUnified,
		r.WordOld,
		r.WordNew,
	}
}

const hunkHeaderPad = " ============================================================"

// DefaultRules returns the standard rule table: red for removed content,
// green for added, a bright blue hunk header, and bold word-level
// highlights inside refined lines.
func DefaultRules() Rules {
	return Rules{
		LineSame: Rule{
			Name:   "line-same",
			Prefix: Annex{Text: " |"},
		},
		LineOld: Rule{
			Name:   "line-old",
			Prefix: Annex{Text: "-|", Styles: []Style{Fg(Named(Red))}},
			Styles: []Style{Fg(Named(Red))},
		},
		LineNew: Rule{
			Name:   "line-new",
			Prefix: Annex{Text: "+|", Styles: []Style{Fg(Named(Green))}},
			Styles: []Style{Fg(Named(Green))},
		},
		LineUnified: Rule{
			Name:   "line-unified",
			Prefix: Annex{Text: "!|", Styles: []Style{Fg(Named(Yellow))}},
		},
		WordSameOld:     Rule{Name: "word-same-old"},
		WordSameNew:     Rule{Name: "word-same-new"},
		WordSameUnified: Rule{Name: "word-same-unified"},
		WordOld: Rule{
			Name:   "word-old",
			Styles: []Style{{Kind: Bold}, Fg(Named(Red))},
		},
		WordNew: Rule{
			Name:   "word-new",
			Styles: []Style{{Kind: Bold}, Fg(Named(Green))},
		},
		HunkHeader: Rule{
			Name:   "hunk-header",
			Prefix: Annex{Text: "@|", Styles: []Style{Fg(Named(BrightBlue))}},
			Suffix: Annex{Text: hunkHeaderPad, Styles: []Style{Fg(Named(BrightBlue))}},
			Styles: []Style{Fg(Named(BrightBlue))},
		},
		HeaderOld: Rule{
			Name:   "header-old",
			Prefix: Annex{Text: "------ ", Styles: []Style{{Kind: Bold}, Fg(Named(Red))}},
			Styles: []Style{{Kind: Bold}, Fg(Named(Red))},
		},
		HeaderNew: Rule{
			Name:   "header-new",
			Prefix: Annex{Text: "++++++ ", Styles: []Style{{Kind: Bold}, Fg(Named(Green))}},
			Styles: []Style{{Kind: Bold}, Fg(Named(Green))},
		},
	}
}

// LightRules returns a rule table tuned for light backgrounds: the same
// shape as DefaultRules with dimmer context and darker highlight colors.
func LightRules() Rules {
	r := DefaultRules()
	r.LineSame.Styles = []Style{{Kind: Dim}}
	r.WordSameUnified.Styles = []Style{{Kind: Dim}}
	r.HunkHeader.Styles = []Style{Fg(Named(Blue))}
	r.HunkHeader.Prefix.Styles = []Style{Fg(Named(Blue))}
	r.HunkHeader.Suffix.Styles = []Style{Fg(Named(Blue))}
	return r
}
