// Package log provides the juggler audit log. Every CLI command and MCP tool
// call is recorded in ~/.juggler/log/juggler-log.db so route table changes and
// lookups can be traced across projects.
//
// Entries are built fluently and written once the operation finishes:
//
//	log.Event("core:resolve", "resolve").
//		Target(url).
//		Resolved(m.URL).
//		Detail("redirects", len(m.Redirects)).
//		Write(err)
//
// The source is "{feature}:{command}" for CLI commands and "mcp:{tool}" for
// MCP tools.
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global *Logger
	mu     sync.Mutex
)

// Entry represents a single log entry.
type Entry struct {
	Source   string // e.g. "core:routes", "mcp:juggler_resolve"
	Action   string // verb: list, check, resolve, browse, set
	Target   string // input: URL, config key or snapshot file
	Resolved string // output: final URL or selected route

	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool
	Error   string
	Detail  map[string]any
}

// Builder constructs a log entry. Create with [Event] and finish with
// [Builder.Write].
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Target sets what the operation was asked to act on.
func (b *Builder) Target(target string) *Builder {
	b.entry.Target = target
	return b
}

// Resolved sets what the operation produced, when it differs from the target.
func (b *Builder) Resolved(s string) *Builder {
	b.entry.Resolved = s
	return b
}

// Detail adds a key-value pair to the entry's detail map. It can be called
// any number of times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write records the entry, deriving success from err.
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Callers may ignore the error; logging is best-effort.
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// SetProject sets the project identifier for subsequent entries. dir is
// normally the absolute working directory.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. It is a no-op when the logger is not open.
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}
