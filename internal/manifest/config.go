package manifest

const (
	DefaultModulePrefix = "../modules/"
	DefaultVersion      = "1.0.0-SNAPSHOT"
)

type Config struct {
	Enabled bool
	// Path of the generated pom.xml
	Path string

	GroupID    string
	ArtifactID string
	Version    string
	// ModulePrefix is prepended to each project name in <module>.
	ModulePrefix string
}
