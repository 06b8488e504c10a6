// Package ioutils provides file system utilities for the mvn-downloader.
//
// This package contains functions for:
//   - File copying and moving
//   - Filename sanitization
//   - Directory creation
//
// All functions that accept a context.Context respect cancellation,
// though file operations themselves may not be interruptible.
package ioutils

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultFileName replaces a filename that sanitizes down to nothing.
const DefaultFileName = "download"

var (
	invalidChars  = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots  = regexp.MustCompile(`\.+$`)
	multipleSpace = regexp.MustCompile(`\s+`)
)

// CopyFile copies a file from source to destination.
//
// The destination file is created with mode 0644 if it doesn't exist,
// or truncated if it does. The source file must exist and be readable.
func CopyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destFile, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err = io.Copy(destFile, sourceFile); err != nil {
		destFile.Close()
		return err
	}
	return destFile.Close()
}

// MoveFile renames src to dst, replacing dst if it exists. When a rename
// is not possible (different devices), the file is copied and the source
// removed.
func MoveFile(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := CopyFile(ctx, src, dst); err != nil {
		os.Remove(dst)
		return err
	}
	return os.Remove(src)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Song: Part 1/2")     // Returns "Song_ Part 1_2"
//	SanitizeFileName("guava-33.0.jar...")   // Returns "guava-33.0.jar"
//	SanitizeFileName("Name   with  spaces") // Returns "Name with spaces"
func SanitizeFileName(name string) string {
	name = invalidChars.ReplaceAllString(name, "_")
	name = trailingDots.ReplaceAllString(name, "")
	name = multipleSpace.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// SafeComponent turns an untrusted filename into a single path component
// that stays inside whatever directory it is joined to. Separators become
// underscores, so "../x" becomes ".._x"; names that reduce to "", "." or
// ".." become DefaultFileName.
func SafeComponent(name string) string {
	name = strings.TrimSpace(SanitizeFileName(name))
	if name == "" || name == "." || name == ".." {
		return DefaultFileName
	}
	return name
}

// ArchiveName derives the archive filename from the first downloaded file:
// the extension is replaced with ".zip" and only ASCII letters, digits,
// spaces, '.', '_' and '-' are kept.
//
// Example:
//
//	ArchiveName("libfoo-2.3.1.jar") // "libfoo-2.3.1.zip"
//	ArchiveName("thing.bin")        // "thing.zip"
//	ArchiveName("we!rd:na(me).jar") // "werdname.zip"
func ArchiveName(filename string) string {
	stem := fileStem(filename)

	var b strings.Builder
	for _, r := range stem {
		if isArchiveNameRune(r) {
			b.WriteRune(r)
		}
	}

	stem = strings.TrimSpace(b.String())
	if stem == "" || strings.Trim(stem, ".") == "" {
		stem = DefaultFileName
	}
	return stem + ".zip"
}

// fileStem strips the extension. Leading dots belong to the name, so
// ".bashrc" has no extension.
func fileStem(filename string) string {
	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	if strings.Trim(stem, ".") == "" {
		return filename
	}
	return stem
}

func isArchiveNameRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == ' ', r == '.', r == '_', r == '-':
		return true
	}
	return false
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0755)
}
