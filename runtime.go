package blazebook

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// Runtime owns the playwright driver and one launched browser engine.
// Sessions are isolated contexts carved out of that browser, one per scenario.
type Runtime struct {
	cfg     Config
	pw      *playwright.Playwright
	browser playwright.Browser
	device  *playwright.DeviceDescriptor
	log     *slog.Logger
}

// Start launches the playwright driver and the configured browser engine.
// A configured device profile is validated here so scenarios fail fast on
// typos instead of mid-journey.
func Start(cfg Config) (*Runtime, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	engine, err := engineFor(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	var device *playwright.DeviceDescriptor
	if cfg.Device != "" {
		device = pw.Devices[cfg.Device]
		if device == nil {
			pw.Stop()
			return nil, fmt.Errorf("unknown device profile %q", cfg.Device)
		}
	}

	browser, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", engine.Name(), err)
	}

	log := slog.Default().With("engine", engine.Name())
	log.Info("browser ready", "headless", cfg.Headless, "device", cfg.Device)

	return &Runtime{cfg: cfg, pw: pw, browser: browser, device: device, log: log}, nil
}

func engineFor(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch strings.ToLower(name) {
	case "", "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser engine %q", name)
	}
}

// NewSession opens an isolated context and page. The returned close func
// tears both down; sessions share nothing with each other.
func (rt *Runtime) NewSession() (*Session, func(), error) {
	opts := playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(rt.cfg.BaseURL),
	}
	if d := rt.device; d != nil {
		opts.UserAgent = playwright.String(d.UserAgent)
		opts.Viewport = &playwright.Size{Width: d.Viewport.Width, Height: d.Viewport.Height}
		opts.DeviceScaleFactor = playwright.Float(d.DeviceScaleFactor)
		opts.IsMobile = playwright.Bool(d.IsMobile)
		opts.HasTouch = playwright.Bool(d.HasTouch)
	}

	ctx, err := rt.browser.NewContext(opts)
	if err != nil {
		return nil, nil, fmt.Errorf("new context: %w", err)
	}
	page, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, nil, fmt.Errorf("new page: %w", err)
	}
	page.SetDefaultTimeout(float64(rt.cfg.ActionTimeout.Milliseconds()))
	page.SetDefaultNavigationTimeout(float64(rt.cfg.NavTimeout.Milliseconds()))

	id := uuid.NewString()[:8]
	s := &Session{
		id:   id,
		page: page,
		cfg:  rt.cfg,
		log:  rt.log.With("session", id),
	}
	s.log.Info("session opened", "base", rt.cfg.BaseURL)

	closeFn := func() {
		page.Close()
		ctx.Close()
		s.log.Info("session closed")
	}
	return s, closeFn, nil
}

// Close shuts down the browser and the playwright driver.
func (rt *Runtime) Close() error {
	if err := rt.browser.Close(); err != nil {
		return fmt.Errorf("close browser: %w", err)
	}
	return rt.pw.Stop()
}
