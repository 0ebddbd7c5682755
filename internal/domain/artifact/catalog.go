// Where: internal/domain/artifact/catalog.go
// What: Render functions per artifact kind and per family.
// Why: Give the orchestrator a pure mapping from parameters to files.
package artifact

import (
	"fmt"
	"path"

	"github.com/poruru/layergen/internal/domain/layout"
	"github.com/poruru/layergen/internal/domain/mode"
)

// RenderRepositoryInterface renders I{Entity}Repository.
func RenderRepositoryInterface(n Names) (string, error) {
	return renderTemplate("repository_interface.cs.tmpl", n)
}

// RenderRepository renders the EF-backed {Entity}Repository.
func RenderRepository(n Names) (string, error) {
	return renderTemplate("repository.cs.tmpl", n)
}

// RenderServiceInterface renders I{Entity}Service with its five operations.
func RenderServiceInterface(n Names) (string, error) {
	return renderTemplate("service_interface.cs.tmpl", n)
}

// RenderService renders the default service implementation. The generated
// Add and Update stamp CreatedDate / UpdatedDate when they run.
func RenderService(n Names) (string, error) {
	return renderTemplate("service.cs.tmpl", n)
}

func RenderRequest(n Names, op OpNames) (string, error) {
	return renderTemplate("request.cs.tmpl", opData{N: n, Op: op})
}

func RenderResponse(n Names, op OpNames) (string, error) {
	return renderTemplate("response.cs.tmpl", opData{N: n, Op: op})
}

func RenderHandler(n Names, op OpNames) (string, error) {
	return renderTemplate("handler.cs.tmpl", opData{N: n, Op: op})
}

func RenderBusinessRules(n Names) (string, error) {
	return renderTemplate("business_rules.cs.tmpl", n)
}

// RenderFeatureProfile renders the entity <-> request/response mapping declarations.
func RenderFeatureProfile(n Names) (string, error) {
	return renderTemplate("feature_profile.cs.tmpl", n)
}

func RenderController(n Names) (string, error) {
	return renderTemplate("controller.cs.tmpl", n)
}

func RenderDto(n Names, op OpNames) (string, error) {
	return renderTemplate("dto.cs.tmpl", opData{N: n, Op: op})
}

// RenderWebProfile renders the DTO -> request mapping declarations.
func RenderWebProfile(n Names) (string, error) {
	return renderTemplate("web_profile.cs.tmpl", n)
}

// Gateway renders the repository interface and implementation.
func Gateway(p Params) ([]Artifact, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := NewNames(p)
	b := builder{}
	b.add(layout.ApplicationRepositories, n.RepositoryInterface+".cs", RenderRepositoryInterface, n)
	b.add(layout.PersistenceRepositories, n.Repository+".cs", RenderRepository, n)
	return b.result()
}

// Service renders the service interface and implementation.
func Service(p Params) ([]Artifact, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	n := NewNames(p)
	b := builder{}
	b.add(layout.ApplicationServices, n.ServiceInterface+".cs", RenderServiceInterface, n)
	b.add(layout.PersistenceServices, n.Service+".cs", RenderService, n)
	return b.result()
}

// Feature renders request, handler and response for every operation plus the
// business-rule stub and the feature mapping profile.
func Feature(p Params) ([]Artifact, error) {
	if err := p.validateFeature(); err != nil {
		return nil, err
	}
	n := NewNames(p)
	b := builder{}
	for _, op := range n.Ops {
		dir := path.Join(n.FeatureGroup, op.Folder)
		b.addOp(layout.ApplicationFeatures, path.Join(dir, op.Request+".cs"), RenderRequest, n, op)
		b.addOp(layout.ApplicationFeatures, path.Join(dir, op.Handler+".cs"), RenderHandler, n, op)
		b.addOp(layout.ApplicationFeatures, path.Join(dir, op.Response+".cs"), RenderResponse, n, op)
	}
	b.add(layout.ApplicationFeatures, path.Join(n.FeatureGroup, "Profiles", n.FeatureProfile+".cs"), RenderFeatureProfile, n)
	b.add(layout.ApplicationFeatures, path.Join(n.FeatureGroup, "Rules", n.BusinessRules+".cs"), RenderBusinessRules, n)
	return b.result()
}

// Routing renders the controller, one DTO per operation and the web mapping profile.
func Routing(p Params) ([]Artifact, error) {
	if err := p.validateRouting(); err != nil {
		return nil, err
	}
	n := NewNames(p)
	b := builder{}
	b.add(layout.WebAPIControllers, n.ControllerClass+".cs", RenderController, n)
	for _, op := range n.Ops {
		b.addOp(layout.WebAPIDtos, path.Join(n.Entity, op.Dto+".cs"), RenderDto, n, op)
	}
	b.add(layout.WebAPIProfiles, n.WebProfile+".cs", RenderWebProfile, n)
	return b.result()
}

// Render dispatches one generation action to its family.
func Render(action mode.Action, p Params) ([]Artifact, error) {
	switch action {
	case mode.ActionGateway:
		return Gateway(p)
	case mode.ActionService:
		return Service(p)
	case mode.ActionFeature:
		return Feature(p)
	case mode.ActionRouting:
		return Routing(p)
	}
	return nil, fmt.Errorf("unknown action %q", action)
}

// builder collects artifacts and keeps the first render error.
type builder struct {
	artifacts []Artifact
	err       error
}

func (b *builder) add(layer layout.Layer, rel string, render func(Names) (string, error), n Names) {
	if b.err != nil {
		return
	}
	content, err := render(n)
	b.push(layer, rel, content, err)
}

func (b *builder) addOp(layer layout.Layer, rel string, render func(Names, OpNames) (string, error), n Names, op OpNames) {
	if b.err != nil {
		return
	}
	content, err := render(n, op)
	b.push(layer, rel, content, err)
}

func (b *builder) push(layer layout.Layer, rel, content string, err error) {
	if err != nil {
		b.err = fmt.Errorf("%s: %w", rel, err)
		return
	}
	b.artifacts = append(b.artifacts, Artifact{Layer: layer, RelativePath: rel, Content: content})
}

func (b *builder) result() ([]Artifact, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.artifacts, nil
}

// Layers returns the distinct layers referenced by artifacts, in first-use order.
func Layers(artifacts []Artifact) []layout.Layer {
	seen := map[layout.Layer]bool{}
	var layers []layout.Layer
	for _, a := range artifacts {
		if seen[a.Layer] {
			continue
		}
		seen[a.Layer] = true
		layers = append(layers, a.Layer)
	}
	return layers
}
