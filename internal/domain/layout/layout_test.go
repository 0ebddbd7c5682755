package layout

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestKey(t *testing.T) {
	if got := Key("Shop", ApplicationRepositories); got != "Shop.Application.Repositories" {
		t.Fatalf("Key() = %q", got)
	}
	if got := Key("Shop", WebAPIDtos); got != "Shop.WebAPI.Dtos" {
		t.Fatalf("Key() = %q", got)
	}
}

func TestMatches(t *testing.T) {
	root := filepath.FromSlash("/work")
	tests := []struct {
		name string
		dir  string
		key  string
		rule MatchRule
		want bool
	}{
		{name: "nested project folder", dir: "src/Shop.Application/Repositories", key: "Shop.Application.Repositories", rule: MatchContains, want: true},
		{name: "dotted folder name", dir: "Shop.Application.Repositories", key: "Shop.Application.Repositories", rule: MatchContains, want: true},
		{name: "contains allows deeper dirs", dir: "src/Shop.Application/Repositories/Sub", key: "Shop.Application.Repositories", rule: MatchContains, want: true},
		{name: "contains respects boundaries", dir: "src/Shop.Application/RepositoriesOld", key: "Shop.Application.Repositories", rule: MatchContains, want: false},
		{name: "other project prefix", dir: "src/MyShop.Application/Repositories", key: "Shop.Application.Repositories", rule: MatchContains, want: false},
		{name: "suffix exact end", dir: "src/Shop.Application/Features", key: "Shop.Application.Features", rule: MatchSuffix, want: true},
		{name: "suffix rejects deeper dirs", dir: "src/Shop.Application/Features/Products", key: "Shop.Application.Features", rule: MatchSuffix, want: false},
		{name: "root itself", dir: "", key: "Shop.Application.Features", rule: MatchSuffix, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := filepath.Join(root, filepath.FromSlash(tc.dir))
			if got := Matches(root, dir, tc.key, tc.rule); got != tc.want {
				t.Fatalf("Matches(%q) = %v, want %v", tc.dir, got, tc.want)
			}
		})
	}
}

func TestResolveFirstMatchWins(t *testing.T) {
	root := filepath.FromSlash("/work")
	dirs := []string{
		filepath.Join(root, "a", "Shop.Persistence", "Services"),
		filepath.Join(root, "b", "Shop.Persistence", "Services"),
	}
	got, err := Resolve(root, dirs, Key("Shop", PersistenceServices), MatchContains)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != dirs[0] {
		t.Fatalf("Resolve() = %q, want %q", got, dirs[0])
	}
}

func TestResolveMissingDirectory(t *testing.T) {
	root := filepath.FromSlash("/work")
	dirs := []string{filepath.Join(root, "src", "Shop.Domain", "Entities")}
	_, err := Resolve(root, dirs, Key("MyProj", ApplicationRepositories), MatchContains)
	if !errors.Is(err, ErrLayerNotFound) {
		t.Fatalf("expected ErrLayerNotFound, got %v", err)
	}
}

func TestParseMatchRule(t *testing.T) {
	for input, want := range map[string]MatchRule{
		"contains":  MatchContains,
		"Suffix":    MatchSuffix,
		"endswith":  MatchSuffix,
		" suffix  ": MatchSuffix,
	} {
		got, err := ParseMatchRule(input)
		if err != nil {
			t.Fatalf("ParseMatchRule(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("ParseMatchRule(%q) = %q, want %q", input, got, want)
		}
	}
	if _, err := ParseMatchRule("regex"); err == nil {
		t.Fatal("expected error for unknown rule")
	}
}

func TestDefaultBindingsCoverAllLayers(t *testing.T) {
	bindings := DefaultBindings()
	for _, layer := range Layers() {
		if _, ok := bindings[layer]; !ok {
			t.Fatalf("missing binding for %s", layer)
		}
	}
	if bindings.Rule(ApplicationFeatures) != MatchSuffix {
		t.Fatalf("features must use suffix matching")
	}
}

func TestParseLayer(t *testing.T) {
	for _, value := range []string{"WebAPI/Dtos", "webapi.dtos", " WEBAPI/DTOS "} {
		got, err := ParseLayer(value)
		if err != nil {
			t.Fatalf("ParseLayer(%q): %v", value, err)
		}
		if got != WebAPIDtos {
			t.Fatalf("ParseLayer(%q) = %s", value, got)
		}
	}
	if _, err := ParseLayer("Domain/Entities"); !errors.Is(err, errUnknownLayer) {
		t.Fatalf("expected errUnknownLayer, got %v", err)
	}
}

func TestBindingsOverrideCopies(t *testing.T) {
	base := DefaultBindings()
	got := base.Override(map[Layer]MatchRule{ApplicationRepositories: MatchSuffix})
	if got.Rule(ApplicationRepositories) != MatchSuffix {
		t.Fatalf("override not applied")
	}
	if base.Rule(ApplicationRepositories) != MatchContains {
		t.Fatalf("base bindings mutated")
	}
}
