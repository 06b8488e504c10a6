// Package resolver turns a free-form input string into the ordered list of
// files to download.
//
// Two input shapes are understood:
//
//  1. An mvnrepository.com browse page for a Maven coordinate, such as
//     https://mvnrepository.com/artifact/org.example/libfoo/2.3.1.
//     The coordinate is templated into repository URLs for the artifact
//     jar and its pom, in that order.
//  2. Anything else, which is treated as a direct download URL whose last
//     path segment is the filename.
//
// # Basic Usage
//
//	targets, version := resolver.Resolve(input)
//	if len(targets) == 0 {
//	    // ask the user for a corrected URL
//	}
//
// Resolving performs no I/O and never panics; an input that cannot be
// turned into at least one target yields an empty set and an empty
// version.
package resolver
