// Package browser measures and prints rendered resumes in headless Chrome.
package browser

import (
	"context"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// DefaultTimeout bounds a single browser session.
const DefaultTimeout = 30 * time.Second

// newBrowserContext starts a headless browser. Requires Chrome/Chromium to
// be installed on the system.
func newBrowserContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	timeoutCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)

	return timeoutCtx, func() {
		cancelTimeout()
		cancelBrowser()
		cancelAlloc()
	}
}

// loadHTML replaces the content of a blank page with html and waits for layout.
func loadHTML(html string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
	}
}
