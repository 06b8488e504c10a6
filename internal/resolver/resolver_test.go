package resolver

import (
	"strings"
	"testing"

	"github.com/handiism/mvn-downloader/internal/model"
)

func TestResolve_Coordinate(t *testing.T) {
	targets, version := Resolve("https://mvnrepository.com/artifact/org.example/libfoo/2.3.1")

	want := model.TargetSet{
		model.NewTarget("https://repo1.maven.org/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.jar", "libfoo-2.3.1.jar"),
		model.NewTarget("https://repo1.maven.org/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.pom", "libfoo-2.3.1.pom"),
	}
	if !targets.Equal(want) {
		t.Fatalf("Resolve() targets = %v, want %v", targets, want)
	}
	if version != "2.3.1" {
		t.Errorf("Resolve() version = %q, want %q", version, "2.3.1")
	}
}

func TestResolve_CoordinateVariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		group   string
		version string
	}{
		{"trailing slash", "https://mvnrepository.com/artifact/com.google.guava/guava/33.0.0-jre/", "com/google/guava", "33.0.0-jre"},
		{"extra segment", "https://mvnrepository.com/artifact/com.google.guava/guava/33.0.0-jre/usages", "com/google/guava", "33.0.0-jre"},
		{"query string", "https://mvnrepository.com/artifact/org.slf4j/slf4j-api/2.0.9?repo=central", "org/slf4j", "2.0.9"},
		{"no scheme", "mvnrepository.com/artifact/io.netty/netty-all/4.1.100.Final", "io/netty", "4.1.100.Final"},
		{"surrounding whitespace", "  https://www.mvnrepository.com/artifact/a.b.c/d/1  ", "a/b/c", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			targets, version := Resolve(tt.input)
			if len(targets) != 2 {
				t.Fatalf("Resolve(%q) returned %d targets, want 2", tt.input, len(targets))
			}
			if version != tt.version {
				t.Errorf("version = %q, want %q", version, tt.version)
			}
			for _, target := range targets {
				if !strings.HasPrefix(target.URL, DefaultRepositoryURL+tt.group+"/") {
					t.Errorf("URL %q does not start with repository path %q", target.URL, tt.group)
				}
			}
			if !strings.HasSuffix(targets[0].Filename, ".jar") || !strings.HasSuffix(targets[1].Filename, ".pom") {
				t.Errorf("filenames = %v, want jar then pom", targets.Filenames())
			}
		})
	}
}

func TestResolve_Fallback(t *testing.T) {
	tests := []struct {
		input    string
		filename string
	}{
		{"https://example.com/files/thing.bin", "thing.bin"},
		{"https://example.com/download?id=7", "download?id=7"},
		{"plainname.zip", "plainname.zip"},
		{"https://repo1.maven.org/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.jar", "libfoo-2.3.1.jar"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			targets, version := Resolve(tt.input)
			if len(targets) != 1 {
				t.Fatalf("Resolve(%q) returned %d targets, want 1", tt.input, len(targets))
			}
			if targets[0].URL != tt.input {
				t.Errorf("URL = %q, want %q", targets[0].URL, tt.input)
			}
			if targets[0].Filename != tt.filename {
				t.Errorf("Filename = %q, want %q", targets[0].Filename, tt.filename)
			}
			if version != "" {
				t.Errorf("version = %q, want empty", version)
			}
		})
	}
}

func TestResolve_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"https://mvnrepository.com/artifact/",
		"https://mvnrepository.com/artifact/org.example",
		"https://mvnrepository.com/artifact/org.example/libfoo",
		"https://mvnrepository.com/artifact/org.example//2.3.1",
		"https://example.com/files/",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			targets, version := Resolve(input)
			if len(targets) != 0 {
				t.Errorf("Resolve(%q) = %v, want no targets", input, targets)
			}
			if version != "" {
				t.Errorf("Resolve(%q) version = %q, want empty", input, version)
			}
		})
	}
}

func TestResolve_Idempotent(t *testing.T) {
	inputs := []string{
		"https://mvnrepository.com/artifact/org.example/libfoo/2.3.1",
		"https://example.com/files/thing.bin",
		"https://mvnrepository.com/artifact/broken",
	}

	for _, input := range inputs {
		first, v1 := Resolve(input)
		second, v2 := Resolve(input)
		if !first.Equal(second) || v1 != v2 {
			t.Errorf("Resolve(%q) not idempotent: %v/%q vs %v/%q", input, first, v1, second, v2)
		}
	}
}

func TestNewResolver_RepositoryURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", DefaultRepositoryURL},
		{"https://mirror.example.com/maven2", "https://mirror.example.com/maven2/"},
		{"https://mirror.example.com/maven2/", "https://mirror.example.com/maven2/"},
	}

	for _, tt := range tests {
		r := NewResolver(tt.in)
		if got := r.RepositoryURL(); got != tt.want {
			t.Errorf("NewResolver(%q).RepositoryURL() = %q, want %q", tt.in, got, tt.want)
		}
	}

	r := NewResolver("https://mirror.example.com/maven2")
	targets, _ := r.Resolve("https://mvnrepository.com/artifact/org.example/libfoo/2.3.1")
	want := "https://mirror.example.com/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.jar"
	if len(targets) == 0 || targets[0].URL != want {
		t.Errorf("mirror jar URL = %v, want %q", targets, want)
	}
}

func TestCoordinate_Path(t *testing.T) {
	c := Coordinate{Group: "org.apache.commons", Artifact: "commons-lang3", Version: "3.14.0"}
	want := "org/apache/commons/commons-lang3/3.14.0/commons-lang3-3.14.0"
	if got := c.Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}
