package viewer

import "github.com/charmbracelet/lipgloss"

// Colors shared across the viewer chrome.
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#F59E0B") // Amber
	surfaceColor = lipgloss.Color("#1F2937") // Dark gray
	textColor    = lipgloss.Color("#F3F4F6") // Light gray
	mutedColor   = lipgloss.Color("#9CA3AF") // Muted gray
	borderColor  = lipgloss.Color("#374151") // Border gray
	hoverColor   = lipgloss.Color("#4C1D95") // Hover column background
)

// Styles.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(textColor)

	nameGutterStyle = lipgloss.NewStyle().
			Foreground(borderColor)

	rulerStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	rulerHoverStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(hoverColor).
			Bold(true)

	tooltipStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Background(surfaceColor).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), false, true).
			BorderForeground(borderColor)

	helpModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2).
			Background(surfaceColor).
			Foreground(textColor).
			Width(62)
)

// residueColors maps single-letter residue codes to their display color,
// roughly the Clustal grouping: hydrophobic blue, positive red, negative
// magenta, polar green, special-cased G/P/C, aromatic cyan. Nucleotide codes
// reuse the same table.
var residueColors = map[byte]lipgloss.Color{
	'A': lipgloss.Color("#80A0F0"),
	'I': lipgloss.Color("#80A0F0"),
	'L': lipgloss.Color("#80A0F0"),
	'M': lipgloss.Color("#80A0F0"),
	'F': lipgloss.Color("#80A0F0"),
	'W': lipgloss.Color("#80A0F0"),
	'V': lipgloss.Color("#80A0F0"),
	'K': lipgloss.Color("#F01505"),
	'R': lipgloss.Color("#F01505"),
	'E': lipgloss.Color("#C048C0"),
	'D': lipgloss.Color("#C048C0"),
	'N': lipgloss.Color("#15C015"),
	'Q': lipgloss.Color("#15C015"),
	'S': lipgloss.Color("#15C015"),
	'T': lipgloss.Color("#15C015"),
	'C': lipgloss.Color("#F08080"),
	'G': lipgloss.Color("#F09048"),
	'P': lipgloss.Color("#C0C000"),
	'H': lipgloss.Color("#15A4A4"),
	'Y': lipgloss.Color("#15A4A4"),
	'U': lipgloss.Color("#15C015"),
	'-': lipgloss.Color("#6B7280"),
}

// fallbackResidueColor is used for codes outside the table, including the
// fallback glyph substituted for missing cells.
var fallbackResidueColor = mutedColor

// residueStyles precomputes one style per byte value so the grid cell
// renderer never allocates styles per frame. Index 0 is the plain style,
// index 1 the hover-column variant.
var residueStyles = buildResidueStyles()

func buildResidueStyles() [2][256]lipgloss.Style {
	var styles [2][256]lipgloss.Style
	for b := 0; b < 256; b++ {
		color, ok := residueColors[byte(b)]
		if !ok {
			color = fallbackResidueColor
		}
		styles[0][b] = lipgloss.NewStyle().Foreground(color)
		styles[1][b] = lipgloss.NewStyle().Foreground(color).Background(hoverColor)
	}
	return styles
}
