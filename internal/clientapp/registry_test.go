package clientapp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fedlink/fedlink/internal/shared/message"
)

func noopApp(ctx context.Context, run message.Run, msg *message.Message) (*message.Message, error) {
	return msg.CreateReply(nil), nil
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry()
	registry.Register("demo/app", "v1.0.0", noopApp)

	app, err := registry.Resolve("demo/app", "v1.0.0")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if app == nil {
		t.Fatal("Expected a registered app")
	}
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	registry := NewRegistry()
	registry.Register("demo/app", "v1.0.0", noopApp)

	_, err := registry.Resolve("demo/app", "v2.0.0")
	if !errors.Is(err, ErrAppNotFound) {
		t.Errorf("Expected ErrAppNotFound, got %v", err)
	}
}

func writeManifest(t *testing.T, dir, appID, appVersion string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("Failed to create bundle dir: %v", err)
	}
	manifest := "app:\n  id: " + appID + "\n  version: " + appVersion + "\n"
	if err := os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(manifest), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}
}

func TestRegistry_LoadBundles(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, filepath.Join(dir, "demo-app", "v1"), "demo/app", "v1.0.0")
	writeManifest(t, filepath.Join(dir, "demo-app", "v2"), "demo/app", "v2.0.0")

	registry := NewRegistry()
	manifests, err := registry.LoadBundles(dir)
	if err != nil {
		t.Fatalf("LoadBundles failed: %v", err)
	}
	if len(manifests) != 2 {
		t.Fatalf("Expected 2 manifests, got %d", len(manifests))
	}

	m, exists := registry.Bundle("demo/app", "v2.0.0")
	if !exists {
		t.Fatal("Expected bundle for demo/app@v2.0.0")
	}
	if m.Path != filepath.Join(dir, "demo-app", "v2") {
		t.Errorf("Unexpected bundle path: %s", m.Path)
	}
}

func TestRegistry_LoadBundles_MissingIdentity(t *testing.T) {
	dir := t.TempDir()
	bundleDir := filepath.Join(dir, "broken")
	if err := os.MkdirAll(bundleDir, 0o755); err != nil {
		t.Fatalf("Failed to create bundle dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(bundleDir, "app.yaml"), []byte("app:\n  id: demo/app\n"), 0o644); err != nil {
		t.Fatalf("Failed to write manifest: %v", err)
	}

	registry := NewRegistry()
	if _, err := registry.LoadBundles(dir); err == nil {
		t.Error("Expected an error for a manifest without app.version")
	}
}

func TestRegistry_LoadBundles_EmptyDir(t *testing.T) {
	registry := NewRegistry()
	manifests, err := registry.LoadBundles(t.TempDir())
	if err != nil {
		t.Fatalf("LoadBundles failed: %v", err)
	}
	if len(manifests) != 0 {
		t.Errorf("Expected no manifests, got %d", len(manifests))
	}
}
