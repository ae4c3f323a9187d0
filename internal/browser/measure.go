package browser

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/types"
)

const measureScript = `(() => {
	const content = document.getElementById('resume-content');
	const sections = Array.from(document.querySelectorAll('.resume-section')).map(el => ({
		id: el.dataset.section,
		height: el.offsetHeight,
	}));
	return { total: content ? content.scrollHeight : 0, sections };
})()`

type sectionHeight struct {
	ID     string  `json:"id"`
	Height float64 `json:"height"`
}

type measureResult struct {
	Total    float64         `json:"total"`
	Sections []sectionHeight `json:"sections"`
}

// Measurer measures section heights of the rendered preview in headless Chrome.
type Measurer struct {
	Timeout time.Duration
	Verbose bool
}

func (m *Measurer) Measure(ctx context.Context, doc types.ResumeDocument) (*pagination.Measurement, error) {
	html, err := rendering.RenderMeasureHTML(doc)
	if err != nil {
		return nil, &pagination.MeasurementError{Message: "failed to render measurement page", Cause: err}
	}

	browserCtx, cancel := newBrowserContext(ctx, m.Timeout)
	defer cancel()

	var result measureResult
	if err := chromedp.Run(browserCtx,
		loadHTML(html),
		chromedp.Evaluate(measureScript, &result),
	); err != nil {
		return nil, &pagination.MeasurementError{Message: "browser measurement failed", Cause: err}
	}

	heights, err := orderHeights(result.Sections, doc.SectionOrder)
	if err != nil {
		return nil, &pagination.MeasurementError{Message: "unexpected measurement", Cause: err}
	}

	if m.Verbose {
		log.Printf("[BROWSER] Measured %d sections, content height %.1fpx", len(heights), result.Total)
	}
	return &pagination.Measurement{Heights: heights, Total: result.Total}, nil
}

// orderHeights returns the measured heights in section order.
func orderHeights(measured []sectionHeight, order []types.SectionID) ([]float64, error) {
	byID := make(map[string]float64, len(measured))
	for _, s := range measured {
		byID[s.ID] = s.Height
	}

	heights := make([]float64, len(order))
	for i, id := range order {
		h, ok := byID[string(id)]
		if !ok {
			return nil, fmt.Errorf("section %q was not rendered", id)
		}
		heights[i] = h
	}
	return heights, nil
}
