package resolver

import (
	"errors"
	"strings"

	"github.com/handiism/mvn-downloader/internal/model"
)

const (
	// BrowseMarker precedes the group/artifact/version segments in a
	// coordinate browse URL.
	BrowseMarker = "mvnrepository.com/artifact/"

	// DefaultRepositoryURL is the Maven Central host root.
	DefaultRepositoryURL = "https://repo1.maven.org/maven2/"
)

// ErrUnresolvable is the error callers report when Resolve returns no targets.
var ErrUnresolvable = errors.New("could not parse the provided URL")

// Coordinate identifies an artifact in a Maven repository.
type Coordinate struct {
	Group    string
	Artifact string
	Version  string
}

// Path returns the repository-relative base path of the coordinate,
// without a file extension:
//
//	org/example/libfoo/2.3.1/libfoo-2.3.1
func (c Coordinate) Path() string {
	return strings.ReplaceAll(c.Group, ".", "/") + "/" + c.Artifact + "/" + c.Version + "/" + c.FileStem()
}

// FileStem returns "<artifact>-<version>".
func (c Coordinate) FileStem() string {
	return c.Artifact + "-" + c.Version
}

// Resolver maps inputs to download targets against one repository.
//
// Example:
//
//	r := NewResolver("https://mirror.example.com/maven2")
//	targets, version := r.Resolve("https://mvnrepository.com/artifact/org.example/libfoo/2.3.1")
//	// targets[0].URL == "https://mirror.example.com/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.jar"
type Resolver struct {
	repositoryURL string
}

// NewResolver creates a Resolver for the given repository root. An empty
// root selects DefaultRepositoryURL.
func NewResolver(repositoryURL string) *Resolver {
	repositoryURL = strings.TrimSpace(repositoryURL)
	if repositoryURL == "" {
		repositoryURL = DefaultRepositoryURL
	}
	if !strings.HasSuffix(repositoryURL, "/") {
		repositoryURL += "/"
	}
	return &Resolver{repositoryURL: repositoryURL}
}

// RepositoryURL returns the repository root, always ending in "/".
func (r *Resolver) RepositoryURL() string {
	return r.repositoryURL
}

var defaultResolver = NewResolver(DefaultRepositoryURL)

// Resolve resolves input against Maven Central. See Resolver.Resolve.
func Resolve(input string) (model.TargetSet, string) {
	return defaultResolver.Resolve(input)
}

// Resolve returns the targets for input and, for coordinate inputs, the
// version. Coordinate inputs always produce the jar first and the pom
// second. An input that carries the browse marker but not a complete
// coordinate resolves to nothing.
func (r *Resolver) Resolve(input string) (model.TargetSet, string) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ""
	}

	if strings.Contains(input, BrowseMarker) {
		coord, ok := ParseCoordinate(input)
		if !ok {
			return nil, ""
		}
		base := r.repositoryURL + coord.Path()
		stem := coord.FileStem()
		return model.TargetSet{
			model.NewTarget(base+".jar", stem+".jar"),
			model.NewTarget(base+".pom", stem+".pom"),
		}, coord.Version
	}

	filename := input[strings.LastIndex(input, "/")+1:]
	if filename == "" {
		return nil, ""
	}
	return model.TargetSet{model.NewTarget(input, filename)}, ""
}

// ParseCoordinate extracts group, artifact and version from a browse URL.
// The three segments following BrowseMarker are used; anything after them
// (a trailing slash, a tab name) is ignored, as are query strings and
// fragments.
func ParseCoordinate(input string) (Coordinate, bool) {
	idx := strings.LastIndex(input, BrowseMarker)
	if idx == -1 {
		return Coordinate{}, false
	}
	rest := input[idx+len(BrowseMarker):]
	if cut := strings.IndexAny(rest, "?#"); cut != -1 {
		rest = rest[:cut]
	}

	parts := strings.Split(rest, "/")
	if len(parts) < 3 {
		return Coordinate{}, false
	}

	coord := Coordinate{
		Group:    strings.TrimSpace(parts[0]),
		Artifact: strings.TrimSpace(parts[1]),
		Version:  strings.TrimSpace(parts[2]),
	}
	if coord.Group == "" || coord.Artifact == "" || coord.Version == "" {
		return Coordinate{}, false
	}
	return coord, true
}
