package templates

import (
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Shortcut is a one-click prompt template shown on the input screen.
type Shortcut struct {
	Icon   string `yaml:"icon" json:"icon"`
	Label  string `yaml:"label" json:"label"`
	Prompt string `yaml:"prompt,omitempty" json:"prompt,omitempty"`
}

// Library holds the shortcut templates, loaded from a YAML file with the
// built-in set as fallback, and hot-reloads the file while the server
// runs.
type Library struct {
	logger  *zap.Logger
	path    string
	watcher *fsnotify.Watcher
	done    chan bool

	mu        sync.RWMutex
	shortcuts []Shortcut
}

// NewLibrary creates a shortcut library backed by the given file. A
// missing or unreadable file leaves the built-in defaults in place.
func NewLibrary(logger *zap.Logger, path string) *Library {
	l := &Library{
		logger:    logger,
		path:      path,
		done:      make(chan bool),
		shortcuts: defaultShortcuts(),
	}
	l.reload()
	return l
}

// Shortcuts returns a snapshot of the current shortcut list.
func (l *Library) Shortcuts() []Shortcut {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Shortcut, len(l.shortcuts))
	copy(out, l.shortcuts)
	return out
}

// Watch starts watching the template file for changes and reloads it on
// write. It is a no-op when the file does not exist.
func (l *Library) Watch() error {
	if _, err := os.Stat(l.path); err != nil {
		l.logger.Info("template file absent, using built-in shortcuts",
			zap.String("file", l.path))
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	l.watcher = watcher

	go func() {
		defer watcher.Close()

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}

				l.logger.Debug("template file event",
					zap.String("file", event.Name),
					zap.String("op", event.Op.String()))

				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					l.reload()
				}

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				l.logger.Error("template watcher error", zap.Error(err))

			case <-l.done:
				return
			}
		}
	}()

	if err := watcher.Add(l.path); err != nil {
		return err
	}

	l.logger.Info("watching template file", zap.String("file", l.path))
	return nil
}

// Stop stops the file watcher.
func (l *Library) Stop() {
	close(l.done)
}

func (l *Library) reload() {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return
	}

	var file struct {
		Shortcuts []Shortcut `yaml:"shortcuts"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		l.logger.Warn("failed to parse template file",
			zap.String("file", l.path), zap.Error(err))
		return
	}
	if len(file.Shortcuts) == 0 {
		return
	}

	l.mu.Lock()
	l.shortcuts = file.Shortcuts
	l.mu.Unlock()

	l.logger.Info("loaded shortcut templates",
		zap.String("file", l.path),
		zap.Int("count", len(file.Shortcuts)))
}

// defaultShortcuts mirrors the stock prompt shortcuts of the input screen.
func defaultShortcuts() []Shortcut {
	return []Shortcut{
		{Icon: "🏠", Label: "Home screen"},
		{Icon: "👤", Label: "Sign up form"},
		{Icon: "🔍", Label: "Search page"},
		{Icon: "⚙️", Label: "Settings page"},
		{Icon: "👤", Label: "User profile"},
		{Icon: "📋", Label: "Details screen"},
		{Icon: "🛒", Label: "Checkout form"},
		{Icon: "💪", Label: "Health & fitness"},
		{Icon: "🛒", Label: "E-commerce app"},
		{Icon: "🍕", Label: "Food delivery app"},
		{Icon: "💬", Label: "Chat list"},
		{Icon: "📰", Label: "Article page"},
		{Icon: "📰", Label: "News feed"},
		{Icon: "✉️", Label: "Email app"},
		{Icon: "📋", Label: "Task management app"},
		{Icon: "🏢", Label: "Real estate listing page"},
		{Icon: "📅", Label: "Event booking"},
		{Icon: "📊", Label: "Finance dashboard"},
		{Icon: "🕐", Label: "Job board UI"},
		{Icon: "💡", Label: "Smart home"},
	}
}
