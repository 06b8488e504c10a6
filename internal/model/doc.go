// Package model defines the core data structures used throughout
// the mvn-downloader application.
//
// # Target
//
// Target is one file to fetch: the URL it lives at and the bare filename
// it is saved under:
//
//	t := model.NewTarget("https://repo1.maven.org/maven2/org/example/libfoo/2.3.1/libfoo-2.3.1.jar", "libfoo-2.3.1.jar")
//
// # TargetSet
//
// TargetSet is the ordered list produced by the resolver and consumed by
// the download engine. Order is significant: the first file that is
// actually downloaded names the resulting archive.
//
//	set := model.TargetSet{jar, pom}
//	if err := set.Validate(); err != nil {
//	    // empty set or a target without a URL
//	}
package model
