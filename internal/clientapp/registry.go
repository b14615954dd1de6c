package clientapp

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
)

// ErrAppNotFound is returned when no client app is registered for the
// requested application id and version.
var ErrAppNotFound = errors.New("client app not found")

// Manifest describes an installed application bundle found on disk.
type Manifest struct {
	AppID      string
	AppVersion string
	Path       string
}

// Registry maps application identity to executable client apps and
// tracks the bundles installed under the apps directory.
type Registry struct {
	mu      sync.RWMutex
	apps    map[string]ClientApp
	bundles map[string]Manifest
}

func NewRegistry() *Registry {
	return &Registry{
		apps:    make(map[string]ClientApp),
		bundles: make(map[string]Manifest),
	}
}

// defaultRegistry collects apps registered at init time, typically via
// blank imports of app packages in a binary's main.
var defaultRegistry = NewRegistry()

// Register adds an app to the process-wide default registry.
func Register(appID, appVersion string, app ClientApp) {
	defaultRegistry.Register(appID, appVersion, app)
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

func appKey(appID, appVersion string) string {
	return appID + "@" + appVersion
}

// Register binds an executable app to an application id and version.
func (r *Registry) Register(appID, appVersion string, app ClientApp) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[appKey(appID, appVersion)] = app
}

// Resolve returns the app registered for the given identity.
func (r *Registry) Resolve(appID, appVersion string) (ClientApp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	app, exists := r.apps[appKey(appID, appVersion)]
	if !exists {
		return nil, fmt.Errorf("%s@%s: %w", appID, appVersion, ErrAppNotFound)
	}
	return app, nil
}

// LoadBundles scans dir for bundle manifests (app.yaml anywhere below
// dir) and records them. Returns the manifests found.
func (r *Registry) LoadBundles(dir string) ([]Manifest, error) {
	paths, err := doublestar.FilepathGlob(filepath.Join(dir, "**", "app.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan app bundles: %w", err)
	}

	manifests := make([]Manifest, 0, len(paths))
	for _, path := range paths {
		manifest, err := readManifest(path)
		if err != nil {
			return nil, err
		}
		manifests = append(manifests, manifest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range manifests {
		r.bundles[appKey(m.AppID, m.AppVersion)] = m
	}
	return manifests, nil
}

// Bundle returns the installed bundle manifest for an identity, if any.
func (r *Registry) Bundle(appID, appVersion string) (Manifest, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, exists := r.bundles[appKey(appID, appVersion)]
	return m, exists
}

func readManifest(path string) (Manifest, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	m := Manifest{
		AppID:      v.GetString("app.id"),
		AppVersion: v.GetString("app.version"),
		Path:       filepath.Dir(path),
	}
	if m.AppID == "" || m.AppVersion == "" {
		return Manifest{}, fmt.Errorf("manifest %s: app.id and app.version are required", path)
	}
	return m, nil
}
