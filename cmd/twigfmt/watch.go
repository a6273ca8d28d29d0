package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/kissumisha/ultimate-twig/config"
	"github.com/kissumisha/ultimate-twig/pkg/twig/formatter"
)

// watcher monitors a directory tree and reformats templates as they change
type watcher struct {
	fsw    *fsnotify.Watcher
	root   string
	cfg    *config.Config
	stdout io.Writer
	stderr io.Writer

	// Track last change time to debounce rapid changes
	mu         sync.Mutex
	lastChange time.Time
}

// watchCommand implements the 'twigfmt watch <dir>' subcommand
func watchCommand(args []string) {
	root := "."
	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			root = arg
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", root)
		os.Exit(1)
	}

	w, err := newWatcher(root, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := w.start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	<-ctx.Done()
	w.logInfo("stopped")
}

// newWatcher creates a template watcher rooted at dir
func newWatcher(root string, stdout, stderr io.Writer) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	cfg := config.Defaults()
	if found := config.Find(root); found != "" {
		loaded, err := config.Load(found)
		if err != nil {
			fmt.Fprintf(stderr, "[WATCH ERROR] %v (using defaults)\n", err)
		} else {
			cfg = loaded
		}
	}

	return &watcher{
		fsw:    fsw,
		root:   root,
		cfg:    cfg,
		stdout: stdout,
		stderr: stderr,
	}, nil
}

// start begins watching for template changes
func (w *watcher) start(ctx context.Context) error {
	if err := w.watchDirRecursive(w.root); err != nil {
		return err
	}
	w.logInfo("watching: %s", w.root)

	go w.eventLoop(ctx)
	return nil
}

// watchDirRecursive adds a directory and its subdirectories to the watch list
func (w *watcher) watchDirRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // Skip errors
		}
		if info.IsDir() {
			// Skip hidden directories
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return w.fsw.Add(path)
		}
		return nil
	})
}

// eventLoop processes file system events
func (w *watcher) eventLoop(ctx context.Context) {
	// Debounce duration - wait for rapid changes to settle
	const debounce = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}

			// Only handle write and create events
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			// New subdirectories need to be added to the watch list
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.watchDirRecursive(event.Name); err != nil {
						w.logError("failed to watch %s: %v", event.Name, err)
					}
					continue
				}
			}

			// Debounce rapid changes
			w.mu.Lock()
			if time.Since(w.lastChange) < debounce {
				w.mu.Unlock()
				continue
			}
			w.lastChange = time.Now()
			w.mu.Unlock()

			w.handleFileChange(event.Name)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logError("watcher error: %v", err)
		}
	}
}

// handleFileChange reformats a changed template file in place
func (w *watcher) handleFileChange(path string) {
	if !isTemplate(path) {
		return
	}

	if w.cfg.Excluded(path) {
		return
	}

	content, err := os.ReadFile(path)
	if err != nil {
		w.logError("reading %s: %v", path, err)
		return
	}

	source := string(content)
	formatted := formatter.Format(source, w.cfg.Options())
	if formatted != "" && !strings.HasSuffix(formatted, "\n") {
		formatted += "\n"
	}

	if formatted == source {
		return
	}

	if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
		w.logError("writing %s: %v", path, err)
		return
	}
	w.logInfo("formatted: %s", path)
}

// isTemplate reports whether path looks like a Twig template
func isTemplate(path string) bool {
	name := strings.ToLower(filepath.Base(path))
	return strings.HasSuffix(name, ".twig") || strings.HasSuffix(name, ".html.twig")
}

// close stops the watcher
func (w *watcher) close() error {
	return w.fsw.Close()
}

func (w *watcher) logInfo(format string, args ...interface{}) {
	fmt.Fprintf(w.stdout, "[WATCH] "+format+"\n", args...)
}

func (w *watcher) logError(format string, args ...interface{}) {
	fmt.Fprintf(w.stderr, "[WATCH ERROR] "+format+"\n", args...)
}
