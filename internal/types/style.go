package types

import "strings"

// Font is one of the supported font families.
type Font string

// Supported fonts.
const (
	FontMerriweather  Font = "MERRIWEATHER"
	FontArial         Font = "ARIAL"
	FontTimesNewRoman Font = "TIMES_NEW_ROMAN"
	FontHelvetica     Font = "HELVETICA"
	FontCalibri       Font = "CALIBRI"
	FontCambria       Font = "CAMBRIA"
	FontGeorgia       Font = "GEORGIA"
)

// Fonts returns all supported fonts in menu order.
func Fonts() []Font {
	return []Font{FontMerriweather, FontArial, FontTimesNewRoman, FontHelvetica, FontCalibri, FontCambria, FontGeorgia}
}

// ParseFont resolves a font name, accepting spaces in place of underscores and any case.
// The second return value is false when the name is not a supported font.
func ParseFont(name string) (Font, bool) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	for _, f := range Fonts() {
		if string(f) == normalized {
			return f, true
		}
	}
	return "", false
}

// PageSize is one of the supported paper formats.
type PageSize string

// Supported page sizes.
const (
	PageA4     PageSize = "A4"
	PageLetter PageSize = "LETTER"
	PageLegal  PageSize = "LEGAL"
)

// PageSizes returns all supported page sizes.
func PageSizes() []PageSize {
	return []PageSize{PageA4, PageLetter, PageLegal}
}

// ParsePageSize resolves a page size name case-insensitively.
func ParsePageSize(name string) (PageSize, bool) {
	normalized := PageSize(strings.ToUpper(strings.TrimSpace(name)))
	for _, p := range PageSizes() {
		if p == normalized {
			return p, true
		}
	}
	return "", false
}

// Style limits. Values outside these ranges are clamped, never rejected.
const (
	MinFontSize     = 8.0
	MaxFontSize     = 16.0
	FontSizeStep    = 0.5
	MinLineSpacing  = 1.0
	MaxLineSpacing  = 2.0
	LineSpacingStep = 0.1
	MinMargins      = 10.0
	MaxMargins      = 30.0
	MarginsStep     = 1.0
)

// DocumentStyle holds the typography and page settings of the document.
type DocumentStyle struct {
	Font        Font     `json:"font" validate:"oneof=MERRIWEATHER ARIAL TIMES_NEW_ROMAN HELVETICA CALIBRI CAMBRIA GEORGIA"`
	FontSize    float64  `json:"fontSize" validate:"gte=8,lte=16"`
	LineSpacing float64  `json:"lineSpacing" validate:"gte=1,lte=2"`
	Margins     float64  `json:"margins" validate:"gte=10,lte=30"`
	PageSize    PageSize `json:"pageSize" validate:"oneof=A4 LETTER LEGAL"`
}

// DefaultDocumentStyle returns the style of a freshly created document.
func DefaultDocumentStyle() DocumentStyle {
	return DocumentStyle{
		Font:        FontMerriweather,
		FontSize:    11,
		LineSpacing: 1.5,
		Margins:     20,
		PageSize:    PageA4,
	}
}
