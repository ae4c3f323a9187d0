// Package style resolves document style settings into concrete layout metrics.
package style

import (
	"strings"

	"github.com/jonathan/resume-editor/internal/types"
)

// PxPerMM converts millimeters to CSS pixels at the 96-DPI reference.
const PxPerMM = 3.78

// Dimensions is a physical page size in millimeters.
type Dimensions struct {
	WidthMM  float64
	HeightMM float64
}

var pageDimensions = map[types.PageSize]Dimensions{
	types.PageA4:     {WidthMM: 210, HeightMM: 297},
	types.PageLetter: {WidthMM: 216, HeightMM: 279},
	types.PageLegal:  {WidthMM: 216, HeightMM: 356},
}

// ResolvePageDimensions maps a page size to its physical dimensions.
// Unknown sizes resolve to A4.
func ResolvePageDimensions(size types.PageSize) Dimensions {
	if dims, ok := pageDimensions[size]; ok {
		return dims
	}
	return pageDimensions[types.PageA4]
}

// ContentStyle is the text style handed to renderers.
type ContentStyle struct {
	FontFamily string
	FontSizePt float64
	LineHeight float64
}

// ResolveContentStyle maps document style to a renderer-facing content style.
func ResolveContentStyle(ds types.DocumentStyle) ContentStyle {
	family := strings.ReplaceAll(strings.ToLower(string(ds.Font)), "_", " ")
	return ContentStyle{
		FontFamily: family,
		FontSizePt: ds.FontSize,
		LineHeight: ds.LineSpacing,
	}
}

// MMToPx converts a length in millimeters to pixels.
func MMToPx(mm float64) float64 {
	return mm * PxPerMM
}

// ContentWidthMM returns the printable width of the page once both side margins are removed.
func ContentWidthMM(ds types.DocumentStyle) float64 {
	dims := ResolvePageDimensions(ds.PageSize)
	return dims.WidthMM - 2*ds.Margins
}

// ContentHeightMM returns the printable height of the page once both vertical margins are removed.
func ContentHeightMM(ds types.DocumentStyle) float64 {
	dims := ResolvePageDimensions(ds.PageSize)
	return dims.HeightMM - 2*ds.Margins
}
