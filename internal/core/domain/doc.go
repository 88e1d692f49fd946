// Package domain defines the core entities for lawdata.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Statute, Article, Paragraph, Item, Subitem: the statute document tree
//   - Precedent: a court decision or administrative ruling
//   - ArticleReference, PrecedentReference: parsed citations
//   - ResolvedContent: the outcome of one content resolution
//   - ContentResult, ListResult: endpoint results with the raw payload kept
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
