// Where: internal/domain/artifact/renderer_snapshot_test.go
// What: Snapshot tests for rendered C# artifacts.
// Why: Detect unintended template changes with stable fixtures.
package artifact

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRendererSnapshots(t *testing.T) {
	n := NewNames(sampleParams())

	cases := []struct {
		name   string
		golden string
		render func() (string, error)
	}{
		{"repository interface", "repository_interface.golden", func() (string, error) { return RenderRepositoryInterface(n) }},
		{"repository", "repository.golden", func() (string, error) { return RenderRepository(n) }},
		{"service interface", "service_interface.golden", func() (string, error) { return RenderServiceInterface(n) }},
		{"service", "service.golden", func() (string, error) { return RenderService(n) }},
		{"create request", "request_create.golden", func() (string, error) { return RenderRequest(n, n.Op(OpCreate)) }},
		{"get by id request", "request_getbyid.golden", func() (string, error) { return RenderRequest(n, n.Op(OpGetByID)) }},
		{"list request", "request_getlist.golden", func() (string, error) { return RenderRequest(n, n.Op(OpGetList)) }},
		{"create response", "response_create.golden", func() (string, error) { return RenderResponse(n, n.Op(OpCreate)) }},
		{"create handler", "handler_create.golden", func() (string, error) { return RenderHandler(n, n.Op(OpCreate)) }},
		{"delete handler", "handler_delete.golden", func() (string, error) { return RenderHandler(n, n.Op(OpDelete)) }},
		{"update handler", "handler_update.golden", func() (string, error) { return RenderHandler(n, n.Op(OpUpdate)) }},
		{"get by id handler", "handler_getbyid.golden", func() (string, error) { return RenderHandler(n, n.Op(OpGetByID)) }},
		{"list handler", "handler_getlist.golden", func() (string, error) { return RenderHandler(n, n.Op(OpGetList)) }},
		{"business rules", "business_rules.golden", func() (string, error) { return RenderBusinessRules(n) }},
		{"feature profile", "feature_profile.golden", func() (string, error) { return RenderFeatureProfile(n) }},
		{"update dto", "dto_update.golden", func() (string, error) { return RenderDto(n, n.Op(OpUpdate)) }},
		{"list dto", "dto_getlist.golden", func() (string, error) { return RenderDto(n, n.Op(OpGetList)) }},
		{"web profile", "web_profile.golden", func() (string, error) { return RenderWebProfile(n) }},
		{"controller", "controller.golden", func() (string, error) { return RenderController(n) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			content, err := tc.render()
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			assertSnapshot(t, tc.golden, content)
		})
	}
}

func assertSnapshot(t *testing.T, name, content string) {
	t.Helper()
	path := filepath.Join("testdata", "renderer", name)
	if os.Getenv("UPDATE_SNAPSHOTS") == "1" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir snapshot dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("snapshot missing %s (set UPDATE_SNAPSHOTS=1): %v", path, err)
	}
	if content != string(expected) {
		t.Fatalf("snapshot mismatch for %s\n---want\n%s\n---got\n%s", path, expected, content)
	}
}
