package browser

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/jonathan/resume-editor/internal/pagination"
	"github.com/jonathan/resume-editor/internal/rendering"
	"github.com/jonathan/resume-editor/internal/style"
	"github.com/jonathan/resume-editor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHeights(t *testing.T) {
	measured := []sectionHeight{
		{ID: "skills", Height: 40},
		{ID: "summary", Height: 80},
		{ID: "courses", Height: 0},
		{ID: "education", Height: 120},
		{ID: "experience", Height: 300},
	}

	heights, err := orderHeights(measured, types.AllSections())
	require.NoError(t, err)
	assert.Equal(t, []float64{80, 300, 120, 40, 0}, heights)

	_, err = orderHeights(measured[:4], types.AllSections())
	assert.Error(t, err)
}

func TestPaperSizeInches(t *testing.T) {
	w, h := paperSizeInches(style.ResolvePageDimensions(types.PageA4))
	assert.InDelta(t, 8.27, w, 0.01)
	assert.InDelta(t, 11.69, h, 0.01)

	w, h = paperSizeInches(style.ResolvePageDimensions(types.PageLetter))
	assert.InDelta(t, 8.5, w, 0.01)
	assert.InDelta(t, 10.98, h, 0.01)
}

func requireChrome(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping browser test in short mode")
	}
	for _, name := range []string{"google-chrome", "chromium", "chromium-browser", "headless-shell"} {
		if _, err := exec.LookPath(name); err == nil {
			return
		}
	}
	t.Skip("Chrome not installed")
}

func TestMeasurer_Chrome(t *testing.T) {
	requireChrome(t)

	doc := types.NewDocument()
	doc.Contact.FullName = "Ada Lovelace"
	doc.Summary = "Engineer"
	doc.Skills = []string{"Go"}

	m := &Measurer{Timeout: 20 * time.Second}
	got, err := m.Measure(context.Background(), doc)
	require.NoError(t, err)
	require.Len(t, got.Heights, 5)
	assert.Greater(t, got.Heights[0], 0.0)
	assert.Zero(t, got.Heights[4])
	assert.Greater(t, got.Total, got.Heights[0])
}

func TestPDFRenderer_Chrome(t *testing.T) {
	requireChrome(t)

	doc := types.NewDocument()
	doc.Contact.FullName = "Ada Lovelace"
	r := &PDFRenderer{Timeout: 20 * time.Second}

	pdf, err := r.RenderPDF(context.Background(), doc, pagination.SinglePage(doc), rendering.DisplayOptions{})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
