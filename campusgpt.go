// Package campusgpt provides a bounded-domain website search pipeline.
// It crawls a campus website breadth-first, stores extracted page text,
// builds a TF-IDF index over the stored corpus, and answers free-text
// queries with ranked snippets for an external chat consumer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, robots/).
package campusgpt
