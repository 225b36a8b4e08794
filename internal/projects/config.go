package projects

type Config struct {
	// WorkHome holds one working copy per project, named after the project.
	WorkHome string
	// RemoteURLs are the remotes under management.
	RemoteURLs []string
}
