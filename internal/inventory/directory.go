// Package inventory tracks the applications that secrets belong to. Secret
// writes are refused for applications the directory does not know about.
package inventory

import (
	"context"
	"sync"
	"time"
)

// App is a registered application owning secrets.
type App struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemoryDirectory is an in-process application registry.
type MemoryDirectory struct {
	mu   sync.RWMutex
	apps map[string]App
}

// NewMemoryDirectory creates an empty directory.
func NewMemoryDirectory() *MemoryDirectory {
	return &MemoryDirectory{
		apps: make(map[string]App),
	}
}

// Register adds or replaces an application in the directory.
func (d *MemoryDirectory) Register(app App) {
	if app.CreatedAt.IsZero() {
		app.CreatedAt = time.Now().UTC()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.apps[app.ID] = app
}

// Exists reports whether the application is registered.
func (d *MemoryDirectory) Exists(_ context.Context, appID string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.apps[appID]
	return ok, nil
}
