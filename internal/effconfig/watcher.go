package effconfig

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"github.com/hyperblaze/ssenrah/internal/backendlog"
)

// selfWriteSuppressWindow is how long a path is ignored after this process
// wrote it, so a write we made ourselves does not bounce back as a file
// change notification.
const selfWriteSuppressWindow = 200 * time.Millisecond

// selfWriteGCHorizon bounds how long a suppressed-write timestamp is kept
// around before it is garbage collected on the next insert.
const selfWriteGCHorizon = time.Second

// Watcher watches the user config directory and, when a project is open,
// the project's .claude directory and CLAUDE.md for changes, delivering
// FileChangeEvent values to subscribers. It suppresses events for paths this
// process itself wrote within selfWriteSuppressWindow.
type Watcher struct {
	fsWatcher *fsnotify.Watcher

	mu            sync.Mutex
	subscribers   map[string]chan FileChangeEvent
	selfWrites    map[string]time.Time
	projectRoot   *string
	watchedPaths  map[string]bool
	stopCh        chan struct{}
	stopOnce      sync.Once
}

// NewWatcher creates a Watcher and begins watching the user-scope config
// directory and ~/.claude.json.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, PlatformErr("failed to create file watcher: " + err.Error())
	}

	w := &Watcher{
		fsWatcher:    fsw,
		subscribers:  make(map[string]chan FileChangeEvent),
		selfWrites:   make(map[string]time.Time),
		watchedPaths: make(map[string]bool),
		stopCh:       make(chan struct{}),
	}

	if err := w.watchUserScope(); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.run()
	return w, nil
}

func (w *Watcher) watchUserScope() error {
	configDir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := w.addWatchRecursive(configDir); err != nil {
		backendlog.For("watcher").WithError(err).WithField("path", configDir).Warn("could not watch user config directory")
	}

	home, err := HomeDir()
	if err == nil {
		claudeJSON := filepath.Join(home, ".claude.json")
		if err := w.addWatch(claudeJSON); err != nil {
			backendlog.For("watcher").WithError(err).WithField("path", claudeJSON).Debug("could not watch ~/.claude.json")
		}
	}

	return nil
}

// SetProjectRoot updates the directories watched for project and local
// scope changes. Passing nil removes any project-scoped watches.
func (w *Watcher) SetProjectRoot(root *string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.projectRoot != nil {
		oldClaudeDir := filepath.Join(*w.projectRoot, ".claude")
		oldClaudeMD := filepath.Join(*w.projectRoot, "CLAUDE.md")
		w.removeWatchTreeLocked(oldClaudeDir)
		w.removeWatchLocked(oldClaudeMD)
	}

	w.projectRoot = root
	if root == nil {
		return
	}

	claudeDir := filepath.Join(*root, ".claude")
	w.addWatchRecursiveLocked(claudeDir)

	claudeMD := filepath.Join(*root, "CLAUDE.md")
	if err := w.fsWatcher.Add(claudeMD); err == nil {
		w.watchedPaths[claudeMD] = true
	}
}

func (w *Watcher) addWatch(path string) error {
	if err := w.fsWatcher.Add(path); err != nil {
		return PlatformErr("failed to watch " + path + ": " + err.Error())
	}
	w.mu.Lock()
	w.watchedPaths[path] = true
	w.mu.Unlock()
	return nil
}

// addWatchRecursive watches root and, if it is a directory, every directory
// beneath it, matching the original's use of notify::RecursiveMode::Recursive
// (fsnotify has no native recursion, so each subdirectory needs its own
// watch). Missing paths and individual unreadable subdirectories are skipped
// rather than failing the whole call.
func (w *Watcher) addWatchRecursive(root string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addWatchRecursiveLocked(root)
}

func (w *Watcher) addWatchRecursiveLocked(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return PlatformErr("failed to watch " + root + ": " + err.Error())
	}
	if !info.IsDir() {
		if err := w.fsWatcher.Add(root); err != nil {
			return PlatformErr("failed to watch " + root + ": " + err.Error())
		}
		w.watchedPaths[root] = true
		return nil
	}

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if addErr := w.fsWatcher.Add(path); addErr == nil {
			w.watchedPaths[path] = true
		}
		return nil
	})
}

func (w *Watcher) removeWatchLocked(path string) {
	if w.watchedPaths[path] {
		w.fsWatcher.Remove(path)
		delete(w.watchedPaths, path)
	}
}

// removeWatchTreeLocked removes the watch on root and on every previously
// watched path beneath it.
func (w *Watcher) removeWatchTreeLocked(root string) {
	prefix := root + string(filepath.Separator)
	for path := range w.watchedPaths {
		if path == root || strings.HasPrefix(path, prefix) {
			w.fsWatcher.Remove(path)
			delete(w.watchedPaths, path)
		}
	}
}

// Subscribe registers a new subscriber and returns its id and event channel.
// Callers must call Unsubscribe when done.
func (w *Watcher) Subscribe() (string, <-chan FileChangeEvent) {
	id := uuid.NewString()
	ch := make(chan FileChangeEvent, 32)

	w.mu.Lock()
	w.subscribers[id] = ch
	w.mu.Unlock()

	backendlog.WatchSubscribed(id)
	return id, ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (w *Watcher) Unsubscribe(id string) {
	w.mu.Lock()
	ch, ok := w.subscribers[id]
	delete(w.subscribers, id)
	w.mu.Unlock()

	if ok {
		close(ch)
		backendlog.WatchUnsubscribed(id)
	}
}

// MarkSelfWrite records that this process just wrote path, so the
// corresponding filesystem event is suppressed.
func (w *Watcher) MarkSelfWrite(path string) {
	now := time.Now()

	w.mu.Lock()
	defer w.mu.Unlock()

	for p, ts := range w.selfWrites {
		if now.Sub(ts) > selfWriteGCHorizon {
			delete(w.selfWrites, p)
		}
	}
	w.selfWrites[path] = now
}

func (w *Watcher) isSelfWrite(path string) bool {
	// atomicWrite stages content in a sibling temp file; its events count as
	// a write to the destination path.
	path = strings.TrimSuffix(path, ".ssenrah-tmp")

	w.mu.Lock()
	defer w.mu.Unlock()

	ts, ok := w.selfWrites[path]
	if !ok {
		return false
	}
	return time.Since(ts) <= selfWriteSuppressWindow
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			backendlog.For("watcher").WithError(err).Warn("file watcher error")
		case <-w.stopCh:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		w.watchIfNewDir(event.Name)
	}

	if w.isSelfWrite(event.Name) {
		return
	}

	kind := classifyEventKind(event)
	scope := detectScope(event.Name, w.CurrentProjectRoot())

	fsEvent := FileChangeEvent{
		Path:  event.Name,
		Kind:  kind,
		Scope: string(scope),
	}
	backendlog.WatchEvent(fsEvent.Path, string(fsEvent.Kind), fsEvent.Scope)

	w.mu.Lock()
	subs := make([]chan FileChangeEvent, 0, len(w.subscribers))
	for _, ch := range w.subscribers {
		subs = append(subs, ch)
	}
	w.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- fsEvent:
		default:
			backendlog.For("watcher").WithField("path", event.Name).Debug("dropping file change event, subscriber channel full")
		}
	}
}

// watchIfNewDir extends the recursive watch onto path when it is a freshly
// created directory under a tree this watcher already covers. Without this,
// a directory created after SetProjectRoot or NewWatcher ran would never be
// watched, since fsnotify does not recurse on its own.
func (w *Watcher) watchIfNewDir(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	parent := filepath.Dir(path)
	if !w.watchedPaths[parent] {
		return
	}
	w.addWatchRecursiveLocked(path)
}

// CurrentProjectRoot returns a snapshot of the project root this watcher is
// currently scoped to, or nil if none.
func (w *Watcher) CurrentProjectRoot() *string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.projectRoot == nil {
		return nil
	}
	root := *w.projectRoot
	return &root
}

// Close stops the watcher and releases its underlying file descriptors.
func (w *Watcher) Close() error {
	w.stopOnce.Do(func() {
		close(w.stopCh)
	})
	return w.fsWatcher.Close()
}

func classifyEventKind(event fsnotify.Event) FileChangeKind {
	switch {
	case event.Op&fsnotify.Create != 0:
		return ChangeCreated
	case event.Op&fsnotify.Remove != 0 || event.Op&fsnotify.Rename != 0:
		return ChangeDeleted
	default:
		return ChangeModified
	}
}

// detectScope classifies a changed path into a scope by substring matching,
// consistent with how the path resolver lays files out on disk. Local scope
// (settings.local.json, CLAUDE.local.md) takes priority over project scope,
// any path containing "managed" (directory or file name) is managed, and
// everything else belongs to the user scope.
func detectScope(path string, projectRoot *string) Scope {
	base := filepath.Base(path)

	if base == "settings.local.json" || base == "CLAUDE.local.md" {
		return ScopeLocal
	}
	if strings.Contains(path, "managed") {
		return ScopeManaged
	}
	if projectRoot != nil && strings.HasPrefix(path, *projectRoot) {
		return ScopeProject
	}
	if strings.Contains(path, string(filepath.Separator)+".claude"+string(filepath.Separator)) ||
		strings.HasSuffix(filepath.Dir(path), ".claude") {
		return ScopeProject
	}
	return ScopeUser
}
