// Package pkg provides the core libraries for langcard language-usage cards.
//
// # Overview
//
// langcard turns the language byte counts of a GitHub user's repositories into
// an SVG card. The pkg directory is organized into:
//
//  1. [langstats] - Domain logic (fetch, weighting, normalization, trimming)
//  2. [card] - Card assembly (frame, themes, locale strings, text measurement)
//  3. [card/langs] - The five layout renderers and their shared geometry
//  4. [github] - GraphQL client for the repository/language data source
//  5. [cache], [httputil], [errors], [observability] - Infrastructure
//
// # Architecture
//
// The typical data flow through langcard:
//
//	GitHub GraphQL API
//	         ↓
//	    [langstats] package (aggregate + weight + normalize)
//	         ↓
//	    [langstats] Trim (hide filter + display count)
//	         ↓
//	    [card/langs] package (layout geometry + markup)
//	         ↓
//	    [card] package (frame, theme, title)
//	         ↓
//	    SVG output
//
// # Quick Start
//
// Fetch, aggregate, and render a card:
//
//	client, _ := github.NewClient(os.Getenv("GITHUB_TOKEN"))
//	table, _ := langstats.Aggregate(ctx, client, langstats.Options{Username: "octocat"})
//	svg, _ := langs.RenderCard(ctx, table, langs.CardOptions{Layout: langs.LayoutDonut})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...            # All tests
//	go test ./pkg/card/langs/... # Specific package
//
// [langstats]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/langstats
// [card]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/card
// [card/langs]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/card/langs
// [github]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/github
// [cache]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/cache
// [httputil]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/httputil
// [errors]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/langcard/pkg/observability
package pkg
