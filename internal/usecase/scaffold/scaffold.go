// Where: internal/usecase/scaffold/scaffold.go
// What: Mode-driven synthesis workflow.
// Why: Sequence render, resolve and write without CLI or filesystem concerns.
package scaffold

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/poruru/layergen/internal/domain/artifact"
	"github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/domain/mode"
)

var (
	ErrEmptyInput = errors.New("input must not be empty")

	errResolverNotConfigured = errors.New("directory resolver is not configured")
	errWriterNotConfigured   = errors.New("writer is not configured")
)

// DirectoryResolver maps a logical layer to an existing directory.
type DirectoryResolver interface {
	Resolve(layer layout.Layer) (string, error)
}

// Writer persists one rendered file.
type Writer interface {
	Write(path, content string) error
}

// Inputs supplies values that are only asked for when an action needs them.
type Inputs interface {
	FeatureGroup() (string, error)
	Controller(featureGroup string) (string, error)
}

// Request captures one generation run.
type Request struct {
	Project      string
	Entity       string
	IDType       string
	Mode         mode.Mode
	FeatureGroup string
	Controller   string
	DbContext    string
}

// Result reports what a run produced. Written is filled even when Run fails
// so callers can report the files left behind.
type Result struct {
	Written      []string
	FeatureGroup string
	Controller   string
}

// Engine runs the actions of a mode in order.
type Engine struct {
	Resolver DirectoryResolver
	Writer   Writer
	Inputs   Inputs
	Logger   *zap.Logger
}

// NewEngine constructs an Engine. A nil logger disables diagnostics.
func NewEngine(resolver DirectoryResolver, writer Writer, inputs Inputs, logger *zap.Logger) Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return Engine{
		Resolver: resolver,
		Writer:   writer,
		Inputs:   inputs,
		Logger:   logger,
	}
}

// Run validates req and executes every action of its mode. The first error
// aborts the run; files already written are kept.
func (e Engine) Run(req Request) (Result, error) {
	var result Result
	if e.Resolver == nil {
		return result, errResolverNotConfigured
	}
	if e.Writer == nil {
		return result, errWriterNotConfigured
	}
	req, err := normalizeRequest(req)
	if err != nil {
		return result, err
	}

	params := artifact.Params{
		Project:      req.Project,
		Entity:       req.Entity,
		IDType:       req.IDType,
		FeatureGroup: req.FeatureGroup,
		Controller:   req.Controller,
		DbContext:    req.DbContext,
	}
	for _, action := range req.Mode.Actions() {
		if err := e.collectInputs(action, &params); err != nil {
			return result, err
		}
		result.FeatureGroup = params.FeatureGroup
		result.Controller = params.Controller

		written, err := e.runAction(action, params)
		result.Written = append(result.Written, written...)
		if err != nil {
			return result, fmt.Errorf("%s: %w", action, err)
		}
	}
	return result, nil
}

func normalizeRequest(req Request) (Request, error) {
	req.Project = strings.TrimSpace(req.Project)
	req.Entity = strings.TrimSpace(req.Entity)
	req.FeatureGroup = strings.TrimSpace(req.FeatureGroup)
	req.Controller = strings.TrimSpace(req.Controller)
	if req.Project == "" {
		return req, fmt.Errorf("%w: project name", ErrEmptyInput)
	}
	if req.Entity == "" {
		return req, fmt.Errorf("%w: entity name", ErrEmptyInput)
	}
	idType, err := mode.ParseIDType(req.IDType)
	if err != nil {
		return req, err
	}
	req.IDType = idType
	if !req.Mode.Valid() {
		return req, fmt.Errorf("%w: %q", mode.ErrUnknownMode, req.Mode)
	}
	return req, nil
}

func (e Engine) collectInputs(action mode.Action, params *artifact.Params) error {
	if action != mode.ActionFeature && action != mode.ActionRouting {
		return nil
	}
	if params.FeatureGroup == "" {
		value, err := e.ask(func(in Inputs) (string, error) { return in.FeatureGroup() })
		if err != nil {
			return err
		}
		if value == "" {
			return fmt.Errorf("%w: feature group name", ErrEmptyInput)
		}
		params.FeatureGroup = value
	}
	if action == mode.ActionRouting && params.Controller == "" {
		group := params.FeatureGroup
		value, err := e.ask(func(in Inputs) (string, error) { return in.Controller(group) })
		if err != nil {
			return err
		}
		if value == "" {
			return fmt.Errorf("%w: controller name", ErrEmptyInput)
		}
		params.Controller = value
	}
	return nil
}

func (e Engine) ask(fn func(Inputs) (string, error)) (string, error) {
	if e.Inputs == nil {
		return "", nil
	}
	value, err := fn(e.Inputs)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (e Engine) runAction(action mode.Action, params artifact.Params) ([]string, error) {
	artifacts, err := artifact.Render(action, params)
	if err != nil {
		return nil, err
	}

	dirs := make(map[layout.Layer]string)
	for _, layer := range artifact.Layers(artifacts) {
		dir, err := e.Resolver.Resolve(layer)
		if err != nil {
			return nil, err
		}
		e.logger().Debug("layer resolved", zap.String("layer", string(layer)), zap.String("dir", dir))
		dirs[layer] = dir
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		target := filepath.Join(dirs[a.Layer], filepath.FromSlash(a.RelativePath))
		if err := e.Writer.Write(target, a.Content); err != nil {
			return written, fmt.Errorf("write %s: %w", target, err)
		}
		e.logger().Debug("artifact written", zap.String("path", target), zap.Int("bytes", len(a.Content)))
		written = append(written, target)
	}
	return written, nil
}

func (e Engine) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
