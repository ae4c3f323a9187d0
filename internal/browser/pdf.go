package browser

import (
	"context"
	"log"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
)

const mmPerInch = 25.4

// PDFRenderer prints the rendered preview with Chrome. Each preview page
// becomes one PDF page, so a split document yields page one followed by
// page two.
type PDFRenderer struct {
	Timeout time.Duration
	Verbose bool
}

func (r *PDFRenderer) RenderPDF(ctx context.Context, doc types.ResumeDocument, st pagination.State, opts rendering.DisplayOptions) ([]byte, error) {
	html, err := rendering.RenderPreview(doc, rendering.NewLayout(doc, st), opts)
	if err != nil {
		return nil, err
	}

	browserCtx, cancel := newBrowserContext(ctx, r.Timeout)
	defer cancel()

	width, height := paperSizeInches(style.ResolvePageDimensions(doc.DocumentStyle.PageSize))

	var pdf []byte
	err = chromedp.Run(browserCtx,
		loadHTML(html),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(width).
				WithPaperHeight(height).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "chrome print failed", Cause: err}
	}

	if r.Verbose {
		log.Printf("[BROWSER] Printed %d page(s), %d bytes", st.PageCount(), len(pdf))
	}
	return pdf, nil
}

func paperSizeInches(d style.Dimensions) (float64, float64) {
	return d.WidthMM / mmPerInch, d.HeightMM / mmPerInch
}
