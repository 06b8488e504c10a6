package model

import (
	"errors"
	"testing"
)

func TestTarget_Stem(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"libfoo-2.3.1.jar", "libfoo-2.3.1"},
		{"libfoo-2.3.1.pom", "libfoo-2.3.1"},
		{"thing.bin", "thing"},
		{"archive.tar.gz", "archive.tar"},
		{"noext", "noext"},
		{".bashrc", ".bashrc"},
		{".hidden.tar", ".hidden"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			target := NewTarget("https://example.com/"+tt.filename, tt.filename)
			if got := target.Stem(); got != tt.want {
				t.Errorf("Stem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTargetSet_Validate(t *testing.T) {
	tests := []struct {
		name    string
		set     TargetSet
		wantErr bool
	}{
		{"empty", nil, true},
		{"single", TargetSet{NewTarget("https://example.com/a.jar", "a.jar")}, false},
		{"missing url", TargetSet{NewTarget(" ", "a.jar")}, true},
		{"missing filename", TargetSet{NewTarget("https://example.com/", "")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.set.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if err := (TargetSet{}).Validate(); !errors.Is(err, ErrEmptyTargetSet) {
		t.Errorf("Validate() on empty set = %v, want ErrEmptyTargetSet", err)
	}
}

func TestTargetSet_EqualAndFilenames(t *testing.T) {
	a := TargetSet{
		NewTarget("https://example.com/a.jar", "a.jar"),
		NewTarget("https://example.com/a.pom", "a.pom"),
	}
	b := TargetSet{
		NewTarget("https://example.com/a.jar", "a.jar"),
		NewTarget("https://example.com/a.pom", "a.pom"),
	}

	if !a.Equal(b) {
		t.Error("Equal() = false for identical sets")
	}
	if a.Equal(b[:1]) {
		t.Error("Equal() = true for sets of different length")
	}

	names := a.Filenames()
	if len(names) != 2 || names[0] != "a.jar" || names[1] != "a.pom" {
		t.Errorf("Filenames() = %v", names)
	}
}
