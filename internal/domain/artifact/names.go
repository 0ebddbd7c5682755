// Where: internal/domain/artifact/names.go
// What: Naming table for every generated identifier and namespace.
// Why: Cross-references stay byte-identical because every template reads the same table.
package artifact

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/poruru/layergen/internal/meta"
)

// OpKind names one of the five request operations.
type OpKind string

const (
	OpCreate  OpKind = "Create"
	OpDelete  OpKind = "Delete"
	OpUpdate  OpKind = "Update"
	OpGetByID OpKind = "GetById"
	OpGetList OpKind = "GetList"
)

// Operation is the fixed prefix/suffix row for one operation.
type Operation struct {
	Kind           OpKind
	Category       string // Commands or Queries
	RequestSuffix  string // Command or Query
	ResponsePrefix string
	HasID          bool
	HTTPAttribute  string
	Binding        string
}

// Operations returns the operation table in generation order.
func Operations() []Operation {
	return []Operation{
		{Kind: OpCreate, Category: "Commands", RequestSuffix: "Command", ResponsePrefix: "Created", HTTPAttribute: "HttpPost", Binding: "FromBody"},
		{Kind: OpDelete, Category: "Commands", RequestSuffix: "Command", ResponsePrefix: "Deleted", HasID: true, HTTPAttribute: "HttpDelete", Binding: "FromQuery"},
		{Kind: OpUpdate, Category: "Commands", RequestSuffix: "Command", ResponsePrefix: "Updated", HasID: true, HTTPAttribute: "HttpPut", Binding: "FromBody"},
		{Kind: OpGetByID, Category: "Queries", RequestSuffix: "Query", ResponsePrefix: "GetById", HasID: true, HTTPAttribute: `HttpGet("{Id}")`, Binding: "FromRoute"},
		{Kind: OpGetList, Category: "Queries", RequestSuffix: "Query", ResponsePrefix: "GetList", HTTPAttribute: "HttpGet", Binding: "FromQuery"},
	}
}

// OpNames are the identifiers derived for one operation of one entity.
type OpNames struct {
	Operation
	Action    string
	Request   string
	Response  string
	Result    string
	Handler   string
	Dto       string
	Folder    string
	Namespace string
}

// Mapping is one type-to-type correspondence in a mapping profile.
type Mapping struct {
	Source      string
	Destination string
	Reverse     bool
}

// Names holds every identifier used across a generation request.
type Names struct {
	Project      string
	Entity       string
	IDType       string
	FeatureGroup string
	Controller   string

	EntityNamespace string

	RepositoryInterface              string
	Repository                       string
	RepositoryField                  string
	RepositoryParam                  string
	ApplicationRepositoriesNamespace string
	PersistenceRepositoriesNamespace string
	ContextsNamespace                string
	DbContext                        string

	ServiceInterface             string
	Service                      string
	ApplicationServicesNamespace string
	PersistenceServicesNamespace string

	FeaturesNamespace        string
	FeatureNamespace         string
	RulesNamespace           string
	BusinessRules            string
	FeatureProfilesNamespace string
	FeatureProfile           string

	ControllerClass      string
	ControllersNamespace string
	DtosNamespace        string
	WebProfilesNamespace string
	WebProfile           string

	Ops []OpNames
}

// NewNames derives the naming table from p. It never fails; validation is separate.
func NewNames(p Params) Names {
	entity := strings.TrimSpace(p.Entity)
	project := strings.TrimSpace(p.Project)
	group := strings.TrimSpace(p.FeatureGroup)
	controller := strings.TrimSuffix(strings.TrimSpace(p.Controller), "Controller")
	dbContext := strings.TrimSpace(p.DbContext)
	if dbContext == "" {
		dbContext = meta.DefaultDbContext
	}

	n := Names{
		Project:      project,
		Entity:       entity,
		IDType:       strings.TrimSpace(p.IDType),
		FeatureGroup: group,
		Controller:   controller,

		EntityNamespace: project + ".Domain.Entities",

		RepositoryInterface:              "I" + entity + "Repository",
		Repository:                       entity + "Repository",
		RepositoryField:                  "_" + lowerFirst(entity) + "Repository",
		RepositoryParam:                  lowerFirst(entity) + "Repository",
		ApplicationRepositoriesNamespace: project + ".Application.Repositories",
		PersistenceRepositoriesNamespace: project + ".Persistence.Repositories",
		ContextsNamespace:                project + ".Persistence.Contexts",
		DbContext:                        dbContext,

		ServiceInterface:             "I" + entity + "Service",
		Service:                      entity + "Service",
		ApplicationServicesNamespace: project + ".Application.Services",
		PersistenceServicesNamespace: project + ".Persistence.Services",

		FeaturesNamespace: project + ".Application.Features",
		BusinessRules:     entity + "BusinessRules",
		FeatureProfile:    "MappingProfiles",

		ControllerClass:      controller + "Controller",
		ControllersNamespace: project + ".WebAPI.Controllers",
		DtosNamespace:        project + ".WebAPI.Dtos." + entity,
		WebProfilesNamespace: project + ".WebAPI.Profiles",
		WebProfile:           entity + "MappingProfiles",
	}
	n.FeatureNamespace = n.FeaturesNamespace + "." + group
	n.RulesNamespace = n.FeatureNamespace + ".Rules"
	n.FeatureProfilesNamespace = n.FeatureNamespace + ".Profiles"

	for _, op := range Operations() {
		n.Ops = append(n.Ops, n.opNames(op))
	}
	return n
}

func (n Names) opNames(op Operation) OpNames {
	request := string(op.Kind) + n.Entity + op.RequestSuffix
	response := op.ResponsePrefix + n.Entity + "Response"
	result := response
	if op.Kind == OpGetList {
		result = "Paginate<" + response + ">"
	}
	folder := op.Category + "/" + string(op.Kind)
	return OpNames{
		Operation: op,
		Action:    string(op.Kind),
		Request:   request,
		Response:  response,
		Result:    result,
		Handler:   request + "Handler",
		Dto:       string(op.Kind) + n.Entity + "Dto",
		Folder:    folder,
		Namespace: n.FeatureNamespace + "." + strings.ReplaceAll(folder, "/", "."),
	}
}

// Op returns the names for kind.
func (n Names) Op(kind OpKind) OpNames {
	for _, op := range n.Ops {
		if op.Kind == kind {
			return op
		}
	}
	return OpNames{}
}

// FeatureMappings groups the entity correspondences declared by the feature
// profile, one group per operation.
func (n Names) FeatureMappings() [][]Mapping {
	entity := n.Entity
	create, update := n.Op(OpCreate), n.Op(OpUpdate)
	list := n.Op(OpGetList)
	return [][]Mapping{
		{
			{Source: entity, Destination: create.Request, Reverse: true},
			{Source: entity, Destination: create.Response, Reverse: true},
		},
		{
			{Source: entity, Destination: n.Op(OpDelete).Response, Reverse: true},
		},
		{
			{Source: entity, Destination: update.Request, Reverse: true},
			{Source: entity, Destination: update.Response, Reverse: true},
		},
		{
			{Source: entity, Destination: n.Op(OpGetByID).Response, Reverse: true},
		},
		{
			{Source: entity, Destination: list.Response, Reverse: true},
			{Source: "Paginate<" + entity + ">", Destination: list.Result, Reverse: true},
		},
	}
}

// RouteMappings lists the DTO to request correspondences of the web profile.
func (n Names) RouteMappings() []Mapping {
	mappings := make([]Mapping, 0, len(n.Ops))
	for _, op := range n.Ops {
		mappings = append(mappings, Mapping{Source: op.Dto, Destination: op.Request})
	}
	return mappings
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
