package style

import (
	"math"

	"github.com/jonathan/resume-editor/internal/types"
)

// Patch is a partial style update. Nil fields leave the current value untouched.
type Patch struct {
	Font        *types.Font
	FontSize    *float64
	LineSpacing *float64
	Margins     *float64
	PageSize    *types.PageSize
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Font == nil && p.FontSize == nil && p.LineSpacing == nil && p.Margins == nil && p.PageSize == nil
}

// Merge applies the patch on top of base and clamps the result.
// The returned errors describe every value that had to be adjusted.
func Merge(base types.DocumentStyle, patch Patch) (types.DocumentStyle, []*InvalidValueError) {
	merged := base
	if patch.Font != nil {
		merged.Font = *patch.Font
	}
	if patch.FontSize != nil {
		merged.FontSize = *patch.FontSize
	}
	if patch.LineSpacing != nil {
		merged.LineSpacing = *patch.LineSpacing
	}
	if patch.Margins != nil {
		merged.Margins = *patch.Margins
	}
	if patch.PageSize != nil {
		merged.PageSize = *patch.PageSize
	}
	return Clamp(merged)
}

// Clamp forces every style value into its valid range.
// Unknown fonts fall back to the default font and unknown page sizes to A4.
func Clamp(ds types.DocumentStyle) (types.DocumentStyle, []*InvalidValueError) {
	var adjusted []*InvalidValueError
	defaults := types.DefaultDocumentStyle()

	if f, ok := types.ParseFont(string(ds.Font)); ok {
		ds.Font = f
	} else {
		adjusted = append(adjusted, &InvalidValueError{Field: "font", Value: string(ds.Font), Adjusted: string(defaults.Font)})
		ds.Font = defaults.Font
	}

	if p, ok := types.ParsePageSize(string(ds.PageSize)); ok {
		ds.PageSize = p
	} else {
		adjusted = append(adjusted, &InvalidValueError{Field: "pageSize", Value: string(ds.PageSize), Adjusted: string(types.PageA4)})
		ds.PageSize = types.PageA4
	}

	var err *InvalidValueError
	if ds.FontSize, err = ClampFontSize(ds.FontSize); err != nil {
		adjusted = append(adjusted, err)
	}
	if ds.LineSpacing, err = ClampLineSpacing(ds.LineSpacing); err != nil {
		adjusted = append(adjusted, err)
	}
	if ds.Margins, err = ClampMargins(ds.Margins); err != nil {
		adjusted = append(adjusted, err)
	}

	return ds, adjusted
}

// ClampFontSize clamps a font size into [8, 16].
func ClampFontSize(v float64) (float64, *InvalidValueError) {
	return clampField("fontSize", v, types.MinFontSize, types.MaxFontSize)
}

// ClampLineSpacing clamps a line spacing into [1.0, 2.0].
func ClampLineSpacing(v float64) (float64, *InvalidValueError) {
	return clampField("lineSpacing", v, types.MinLineSpacing, types.MaxLineSpacing)
}

// ClampMargins clamps margins into [10, 30] millimeters.
func ClampMargins(v float64) (float64, *InvalidValueError) {
	return clampField("margins", v, types.MinMargins, types.MaxMargins)
}

func clampField(field string, v, lo, hi float64) (float64, *InvalidValueError) {
	clamped := v
	switch {
	case math.IsNaN(v):
		clamped = lo
	case v < lo:
		clamped = lo
	case v > hi:
		clamped = hi
	default:
		return v, nil
	}
	return clamped, &InvalidValueError{Field: field, Value: formatFloat(v), Adjusted: formatFloat(clamped)}
}
