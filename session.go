package blazebook

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session wraps a single browsing context for the lifetime of one scenario.
// It is the concrete DomAccessor every page model composes; no two scenarios
// ever share a session.
type Session struct {
	id   string
	page playwright.Page
	cfg  Config
	log  *slog.Logger
}

var _ DomAccessor = (*Session)(nil)

// ID is the short identifier used in logs and artifact names.
func (s *Session) ID() string { return s.id }

// Page exposes the underlying playwright page for the rare operation the
// capability set does not cover.
func (s *Session) Page() playwright.Page { return s.page }

// Open navigates to path (absolute or relative to the configured base URL)
// and waits for the page to settle.
func (s *Session) Open(path string) error {
	if _, err := s.page.Goto(path, playwright.PageGotoOptions{
		Timeout: s.navMillis(),
	}); err != nil {
		return &NavigationError{URL: path, Err: err}
	}
	return s.AwaitStable()
}

// AwaitStable blocks until no network activity has been observed for the
// networkidle window. Used as a barrier after every navigation-triggering
// action.
func (s *Session) AwaitStable() error {
	if err := s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State:   playwright.LoadStateNetworkidle,
		Timeout: s.navMillis(),
	}); err != nil {
		return &NavigationError{URL: s.page.URL(), Err: err}
	}
	return nil
}

func (s *Session) ReadText(selector string) string {
	text, _ := s.LookupText(selector)
	return text
}

func (s *Session) LookupText(selector string) (string, bool) {
	loc := s.page.Locator(selector)
	count, err := loc.Count()
	if err != nil || count == 0 {
		return "", false
	}
	text, err := loc.First().TextContent(playwright.LocatorTextContentOptions{
		Timeout: s.actionMillis(),
	})
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(text), true
}

func (s *Session) LastText(selector string) (string, bool) {
	loc := s.page.Locator(selector)
	count, err := loc.Count()
	if err != nil || count == 0 {
		return "", false
	}
	text, err := loc.Last().TextContent(playwright.LocatorTextContentOptions{
		Timeout: s.actionMillis(),
	})
	if err != nil {
		return "", false
	}
	return strings.TrimSpace(text), true
}

func (s *Session) Texts(selector string) []string {
	texts, err := s.page.Locator(selector).AllTextContents()
	if err != nil {
		return nil
	}
	return texts
}

func (s *Session) Count(selector string) int {
	count, err := s.page.Locator(selector).Count()
	if err != nil {
		return 0
	}
	return count
}

func (s *Session) IsShown(selector string) bool {
	visible, err := s.page.Locator(selector).First().IsVisible()
	if err != nil {
		return false
	}
	return visible
}

func (s *Session) InputValue(selector string) (string, error) {
	value, err := s.page.Locator(selector).InputValue(playwright.LocatorInputValueOptions{
		Timeout: s.actionMillis(),
	})
	if err != nil {
		return "", &ElementNotFoundError{Selector: selector, Err: err}
	}
	return value, nil
}

func (s *Session) Click(selector string) error {
	if err := s.page.Locator(selector).Click(playwright.LocatorClickOptions{
		Timeout: s.actionMillis(),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) ClickNth(selector string, index int) error {
	if err := s.page.Locator(selector).Nth(index).Click(playwright.LocatorClickOptions{
		Timeout: s.actionMillis(),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) Fill(selector, value string) error {
	loc := s.page.Locator(selector)
	if err := loc.Clear(playwright.LocatorClearOptions{Timeout: s.actionMillis()}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	if err := loc.Fill(value, playwright.LocatorFillOptions{Timeout: s.actionMillis()}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) SelectValue(selector, value string) error {
	selected, err := s.page.Locator(selector).SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	}, playwright.LocatorSelectOptionOptions{Timeout: s.actionMillis()})
	if err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	if len(selected) == 0 {
		return &ElementNotFoundError{Selector: selector, Err: fmt.Errorf("no option with value %q", value)}
	}
	return nil
}

func (s *Session) Check(selector string) error {
	if err := s.page.Locator(selector).Check(playwright.LocatorCheckOptions{
		Timeout: s.actionMillis(),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

func (s *Session) WaitVisible(selector string) error {
	if err := s.page.Locator(selector).First().WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: s.actionMillis(),
	}); err != nil {
		return &ElementNotFoundError{Selector: selector, Err: err}
	}
	return nil
}

// Capture takes a full-page screenshot and writes it under
// <artifactDir>/screenshots/<name>.png. An empty name gets a timestamp.
func (s *Session) Capture(name string) ([]byte, error) {
	if name == "" {
		name = fmt.Sprintf("screenshot-%d", time.Now().UnixMilli())
	}
	path := artifactPath(s.cfg.ArtifactDir, "screenshots", name)
	img, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("capture %s: %w", name, err)
	}
	s.log.Info("captured screenshot", "name", name, "path", path)
	return img, nil
}

// CaptureElement screenshots the first element matching selector.
func (s *Session) CaptureElement(selector, name string) ([]byte, error) {
	if name == "" {
		name = fmt.Sprintf("element-%d", time.Now().UnixMilli())
	}
	path := artifactPath(s.cfg.ArtifactDir, "screenshots", name)
	img, err := s.page.Locator(selector).First().Screenshot(playwright.LocatorScreenshotOptions{
		Path: playwright.String(path),
	})
	if err != nil {
		return nil, fmt.Errorf("capture element %s: %w", name, err)
	}
	s.log.Info("captured element screenshot", "name", name, "selector", selector)
	return img, nil
}

// Title returns the current document title.
func (s *Session) Title() (string, error) { return s.page.Title() }

// URL returns the current page URL.
func (s *Session) URL() string { return s.page.URL() }

// Content returns the full page markup.
func (s *Session) Content() (string, error) { return s.page.Content() }

func (s *Session) actionMillis() *float64 {
	return playwright.Float(float64(s.cfg.ActionTimeout.Milliseconds()))
}

func (s *Session) navMillis() *float64 {
	return playwright.Float(float64(s.cfg.NavTimeout.Milliseconds()))
}

// artifactPath builds the <category>/<name>.png convention shared with the
// surrounding runner.
func artifactPath(dir, category, name string) string {
	return filepath.Join(dir, category, name+".png")
}
