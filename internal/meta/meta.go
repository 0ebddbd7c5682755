// Where: internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep tool identity and project conventions in one place.
package meta

const (
	// Tool Identity
	AppName   = "layergen"
	Slug      = "layergen"
	EnvPrefix = "LAYERGEN"

	// Directory Layout
	HomeDir        = ".layergen"
	ConfigFileName = "config.yaml"

	// Project Conventions
	DefaultEntitiesDir = "Domain/Entities"
	DefaultSourceExt   = ".cs"
	SolutionExt        = ".sln"
	DefaultDbContext   = "ProjectDbContext"
)
