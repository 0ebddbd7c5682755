package command

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/poruru/layergen/internal/infra/interaction"
	"github.com/poruru/layergen/internal/infra/logging"
)

var errPromptQueueEmpty = errors.New("prompt queue empty")

func setWorkingDir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore cwd %s: %v", prev, err)
		}
	})
}

type promptCall struct {
	kind    string
	title   string
	options []string
}

// scriptedPrompter answers prompts from queues and records every call.
type scriptedPrompter struct {
	inputs       []string
	selects      []string
	selectValues []string
	confirms     []bool
	calls        []promptCall
}

func (p *scriptedPrompter) Input(title string, suggestions []string) (string, error) {
	p.record("input", title, suggestions)
	return popQueued(&p.inputs)
}

func (p *scriptedPrompter) Select(title string, options []string) (string, error) {
	p.record("select", title, options)
	return popQueued(&p.selects)
}

func (p *scriptedPrompter) SelectValue(title string, options []interaction.SelectOption) (string, error) {
	values := make([]string, 0, len(options))
	for _, opt := range options {
		values = append(values, opt.Value)
	}
	p.record("select-value", title, values)
	return popQueued(&p.selectValues)
}

func (p *scriptedPrompter) Confirm(title string, _ bool) (bool, error) {
	p.record("confirm", title, nil)
	if len(p.confirms) == 0 {
		return false, errPromptQueueEmpty
	}
	value := p.confirms[0]
	p.confirms = p.confirms[1:]
	return value, nil
}

func (p *scriptedPrompter) record(kind, title string, options []string) {
	p.calls = append(p.calls, promptCall{
		kind:    kind,
		title:   title,
		options: append([]string{}, options...),
	})
}

func (p *scriptedPrompter) find(title string) (promptCall, bool) {
	for _, call := range p.calls {
		if call.title == title {
			return call, true
		}
	}
	return promptCall{}, false
}

func popQueued(values *[]string) (string, error) {
	if len(*values) == 0 {
		return "", errPromptQueueEmpty
	}
	value := (*values)[0]
	*values = (*values)[1:]
	return value, nil
}

// fixtureDirs are the layer directories of a conventional solution named MyProj.
var fixtureDirs = []string{
	"src/MyProj.Application/Repositories",
	"src/MyProj.Application/Services",
	"src/MyProj.Application/Features",
	"src/MyProj.Persistence/Repositories",
	"src/MyProj.Persistence/Services",
	"src/MyProj.WebAPI/Controllers",
	"src/MyProj.WebAPI/Dtos",
	"src/MyProj.WebAPI/Profiles",
}

func newFixtureProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFixtureFile(t, root, "MyProj.sln", "")
	writeFixtureFile(t, root, "src/MyProj.Domain/Entities/Product.cs",
		"namespace MyProj.Domain.Entities;\n\npublic class Product\n{\n    public int Id { get; set; }\n}\n")
	for _, dir := range fixtureDirs {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(dir)), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return root
}

func writeFixtureFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
}

func fixturePath(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}

// testDeps returns dependencies rooted at root with a quiet logger.
func testDeps(root string, out *bytes.Buffer, prompter interaction.Prompter, tty bool) Dependencies {
	return Dependencies{
		Out:       out,
		ErrOut:    &bytes.Buffer{},
		Prompter:  prompter,
		IsTTY:     func() bool { return tty },
		Getwd:     func() (string, error) { return root, nil },
		NewLogger: func(logging.Options) (*zap.Logger, func()) { return zap.NewNop(), func() {} },
	}
}
