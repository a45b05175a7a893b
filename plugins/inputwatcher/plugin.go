// Package inputwatcher re-runs a comparison whenever one of its input images
// changes on disk.
//
// Both input directories are watched with fsnotify. Events for the two input
// files are debounced, the images are reloaded, and the OnChange callback
// receives the fresh pair. Events for any other file (including the rendered
// output) are ignored.
package inputwatcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/splitview/internal/domain"
	"github.com/bft-labs/splitview/internal/ports"
	"github.com/bft-labs/splitview/pkg/log"
)

// ErrAlreadyRunning is returned when Initialize is called twice without Shutdown.
var ErrAlreadyRunning = errors.New("inputwatcher: already running")

// Loader decodes an image file.
type Loader interface {
	Load(path string) (domain.Grid, string, error)
}

// ChangeFunc receives a freshly loaded before/after pair.
type ChangeFunc func(ctx context.Context, before, after domain.Grid) error

// Config holds configuration options for the input watcher.
type Config struct {
	// DebounceDelay is the delay to wait after a file change before reloading.
	// Default: 100 milliseconds
	DebounceDelay time.Duration

	// RetryInitial is the first delay before retrying a failed reload.
	// It doubles on every attempt up to RetryMax.
	// Default: 200 milliseconds
	RetryInitial time.Duration

	// RetryMax caps the retry delay.
	// Default: 2 seconds
	RetryMax time.Duration

	// MaxRetries is how many times a failed reload is retried before
	// waiting for the next file event. Zero disables retries.
	// Default: 5
	MaxRetries int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DebounceDelay: 100 * time.Millisecond,
		RetryInitial:  200 * time.Millisecond,
		RetryMax:      2 * time.Second,
		MaxRetries:    5,
	}
}

// Plugin watches the before and after files of one comparison.
type Plugin struct {
	mu sync.Mutex

	debounceDelay time.Duration
	retryInitial  time.Duration
	retryMax      time.Duration
	maxRetries    int
	loader        Loader
	onChange      ChangeFunc
	logger        ports.Logger

	beforePath string
	afterPath  string

	cancel   context.CancelFunc
	wg       sync.WaitGroup
	debounce *time.Timer
	reloads  int
}

// New creates an input watcher. A nil logger discards output.
func New(cfg Config, loader Loader, onChange ChangeFunc, logger ports.Logger) *Plugin {
	def := DefaultConfig()
	if cfg.DebounceDelay <= 0 {
		cfg.DebounceDelay = def.DebounceDelay
	}
	if cfg.RetryInitial <= 0 {
		cfg.RetryInitial = def.RetryInitial
	}
	if cfg.RetryMax < cfg.RetryInitial {
		cfg.RetryMax = max(def.RetryMax, cfg.RetryInitial)
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Plugin{
		debounceDelay: cfg.DebounceDelay,
		retryInitial:  cfg.RetryInitial,
		retryMax:      cfg.RetryMax,
		maxRetries:    cfg.MaxRetries,
		loader:        loader,
		onChange:      onChange,
		logger:        logger,
	}
}

// Name returns the plugin identifier.
func (p *Plugin) Name() string {
	return "inputwatcher"
}

// Initialize loads both images once, delivers them to OnChange and starts
// watching. The initial load error, if any, is returned and nothing is
// started.
func (p *Plugin) Initialize(ctx context.Context, beforePath, afterPath string) error {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	var err error
	if p.beforePath, err = filepath.Abs(beforePath); err == nil {
		p.afterPath, err = filepath.Abs(afterPath)
	}
	p.mu.Unlock()
	if err != nil {
		return fmt.Errorf("resolve input path: %w", err)
	}

	if err := p.Reload(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	for _, dir := range p.watchDirs() {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	p.logger.Info("input watcher started",
		log.String("before", p.beforePath),
		log.String("after", p.afterPath))

	p.wg.Add(1)
	go p.watchLoop(watchCtx, watcher)
	return nil
}

// Shutdown stops the watcher and waits for the loop to exit.
func (p *Plugin) Shutdown(ctx context.Context) error {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	if p.debounce != nil {
		p.debounce.Stop()
	}
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload reads both inputs and calls OnChange.
func (p *Plugin) Reload(ctx context.Context) error {
	p.mu.Lock()
	beforePath, afterPath := p.beforePath, p.afterPath
	p.mu.Unlock()

	before, _, err := p.loader.Load(beforePath)
	if err != nil {
		return fmt.Errorf("load before image: %w", err)
	}
	after, _, err := p.loader.Load(afterPath)
	if err != nil {
		return fmt.Errorf("load after image: %w", err)
	}

	if err := p.onChange(ctx, before, after); err != nil {
		return err
	}

	p.mu.Lock()
	p.reloads++
	n := p.reloads
	p.mu.Unlock()
	p.logger.Debug("inputs reloaded", log.Int("reloads", n))
	return nil
}

// Reloads returns how many times OnChange has completed successfully.
func (p *Plugin) Reloads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reloads
}

func (p *Plugin) watchLoop(ctx context.Context, watcher *fsnotify.Watcher) {
	defer p.wg.Done()
	defer watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !p.isInput(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			p.debounceReload(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			p.logger.Error("input watcher error", log.Err(err))
		}
	}
}

func (p *Plugin) debounceReload(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.debounce != nil {
		p.debounce.Stop()
	}

	b := newBackoff(p.retryInitial, p.retryMax)
	p.debounce = time.AfterFunc(p.debounceDelay, func() {
		p.reloadWithRetry(ctx, b, 0)
	})
}

// reloadWithRetry reloads the inputs. A half-written file shows up as a
// decode error, so failures are retried with backoff until maxRetries is
// reached. A new file event replaces any pending retry.
func (p *Plugin) reloadWithRetry(ctx context.Context, b *backoff, attempt int) {
	if ctx.Err() != nil {
		return
	}
	err := p.Reload(ctx)
	if err == nil {
		return
	}
	if attempt >= p.maxRetries {
		p.logger.Warn("reload failed", log.Err(err), log.Int("attempts", attempt+1))
		return
	}

	wait := b.next()
	p.logger.Debug("reload failed, retrying",
		log.Err(err),
		log.Int("attempt", attempt+1),
		log.Duration("retry_in", wait))

	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		return
	}
	p.debounce = time.AfterFunc(wait, func() {
		p.reloadWithRetry(ctx, b, attempt+1)
	})
}

func (p *Plugin) isInput(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return abs == p.beforePath || abs == p.afterPath
}

func (p *Plugin) watchDirs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	a, b := filepath.Dir(p.beforePath), filepath.Dir(p.afterPath)
	if a == b {
		return []string{a}
	}
	return []string{a, b}
}
