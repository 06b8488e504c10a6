// Package ioutils provides file system and archive utilities.
//
// This package contains functions for:
//   - Filename sanitization for cross-platform compatibility
//   - Neutralizing untrusted filenames before they touch the disk
//   - Deriving archive names
//   - Directory creation and file moves
//   - Writing ZIP archives
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// SafeComponent goes further and guarantees a single, non-empty path
// component, so "../../etc/passwd" can never escape its directory.
//
// # Archives
//
//	name := ioutils.ArchiveName("libfoo-2.3.1.jar") // "libfoo-2.3.1.zip"
//	err := ioutils.CreateZip(ctx, "/out/libfoo-2.3.1.zip", scratchDir, []string{"libfoo-2.3.1.jar", "libfoo-2.3.1.pom"})
package ioutils
