package layout

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	domainlayout "github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/infra/discovery"
)

func mkdirs(t *testing.T, root string, rels ...string) {
	t.Helper()
	for _, rel := range rels {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(rel)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", rel, err)
		}
	}
}

func TestResolverFindsConventionalDirectories(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"src/MyProj.Application/Repositories",
		"src/MyProj.Application/Features",
		"src/MyProj.Persistence/Repositories",
		"src/MyProj.WebAPI/Controllers",
		"MyProj.WebAPI.Dtos",
	)
	resolver := NewResolver(root, "MyProj", nil, discovery.NewWalker(), nil)

	tests := []struct {
		layer domainlayout.Layer
		want  string
	}{
		{domainlayout.ApplicationRepositories, "src/MyProj.Application/Repositories"},
		{domainlayout.PersistenceRepositories, "src/MyProj.Persistence/Repositories"},
		{domainlayout.ApplicationFeatures, "src/MyProj.Application/Features"},
		{domainlayout.WebAPIControllers, "src/MyProj.WebAPI/Controllers"},
		{domainlayout.WebAPIDtos, "MyProj.WebAPI.Dtos"},
	}
	for _, tt := range tests {
		got, err := resolver.Resolve(tt.layer)
		if err != nil {
			t.Fatalf("Resolve(%s): %v", tt.layer, err)
		}
		if want := filepath.Join(root, filepath.FromSlash(tt.want)); got != want {
			t.Fatalf("Resolve(%s) = %s, want %s", tt.layer, got, want)
		}
	}
}

func TestResolverMissingLayer(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "src/MyProj.Application/Repositories")
	resolver := NewResolver(root, "MyProj", nil, discovery.NewWalker(), nil)

	if _, err := resolver.Resolve(domainlayout.WebAPIProfiles); !errors.Is(err, domainlayout.ErrLayerNotFound) {
		t.Fatalf("expected ErrLayerNotFound, got %v", err)
	}
}

func TestResolverCachesBindings(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root, "src/MyProj.Application/Repositories")
	resolver := NewResolver(root, "MyProj", nil, discovery.NewWalker(), nil)

	first, err := resolver.Resolve(domainlayout.ApplicationRepositories)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// A directory created later that sorts first must not change the binding.
	mkdirs(t, root, "a/MyProj.Application.Repositories")
	second, err := resolver.Resolve(domainlayout.ApplicationRepositories)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if first != second {
		t.Fatalf("binding changed between lookups: %s then %s", first, second)
	}
}

func TestResolverSkipsBuildOutput(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"bin/MyProj.Application/Repositories",
		"src/MyProj.Application/Repositories",
	)
	resolver := NewResolver(root, "MyProj", nil, discovery.NewWalker(), nil)

	got, err := resolver.Resolve(domainlayout.ApplicationRepositories)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(root, "src", "MyProj.Application", "Repositories"); got != want {
		t.Fatalf("Resolve() = %s, want %s", got, want)
	}
}

func TestResolverHonoursRuleOverride(t *testing.T) {
	root := t.TempDir()
	mkdirs(t, root,
		"a/MyProj.Application.Repositories.Legacy",
		"src/MyProj.Application/Repositories",
	)

	byDefault, err := NewResolver(root, "MyProj", nil, discovery.NewWalker(), nil).Resolve(domainlayout.ApplicationRepositories)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(root, "a", "MyProj.Application.Repositories.Legacy"); byDefault != want {
		t.Fatalf("contains rule: got %s, want %s", byDefault, want)
	}

	bindings := domainlayout.DefaultBindings().Override(map[domainlayout.Layer]domainlayout.MatchRule{
		domainlayout.ApplicationRepositories: domainlayout.MatchSuffix,
	})
	got, err := NewResolver(root, "MyProj", bindings, discovery.NewWalker(), nil).Resolve(domainlayout.ApplicationRepositories)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(root, "src", "MyProj.Application", "Repositories"); got != want {
		t.Fatalf("suffix rule: got %s, want %s", got, want)
	}
}
