package service

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"

	"mumbai-homes/models"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BrochureService renders a project brochure: HTML from a template, PDF
// via headless Chrome printing that HTML. Used when a project has no
// uploaded brochure.
type BrochureService struct {
	baseURL string // base URL of this server, e.g. "http://localhost:8080"
}

// NewBrochureService creates a new BrochureService
func NewBrochureService(baseURL string) *BrochureService {
	return &BrochureService{baseURL: baseURL}
}

// ChromeAvailable reports whether a Chrome/Chromium binary can be found.
// Deployments without one skip brochure generation entirely.
func ChromeAvailable() bool {
	return detectChromePath() != ""
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks CHROME_PATH env var first, then common installation paths
func detectChromePath() string {
	if chromePath := os.Getenv("CHROME_PATH"); chromePath != "" {
		if _, err := os.Stat(chromePath); err == nil {
			return chromePath
		}
	}

	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// RenderBrochureHTML renders the brochure template for a project
func (s *BrochureService) RenderBrochureHTML(project models.ProjectDetails) (string, error) {
	templatePath := filepath.Join("templates", "brochure.html")
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to parse brochure template: %w", err)
	}

	templateData := struct {
		Project     models.ProjectDetails
		GeneratedAt string
	}{
		Project:     project,
		GeneratedAt: time.Now().Format("2 January 2006"),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute brochure template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF renders the brochure page for a project in headless Chrome
// and prints it to an A4 PDF.
func (s *BrochureService) GeneratePDF(ctx context.Context, projectID int64) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	chromePath := detectChromePath()
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	if chromePath != "" {
		opts = append(opts, chromedp.ExecPath(chromePath))
	}
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	renderURL := fmt.Sprintf("%s/admin/projects/%d/brochure/render", s.baseURL, projectID)

	var pdfBuf []byte
	err := chromedp.Run(chromedpCtx,
		chromedp.EmulateViewport(794, 1123), // A4 at 96 DPI
		chromedp.Navigate(renderURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(time.Second), // let inline images settle
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm = 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate brochure PDF: %w", err)
	}

	return pdfBuf, nil
}
