// Package cli implements the command-line interface for mealdb.
//
// The cli package provides:
// - One subcommand per TheMealDB lookup
// - Plain text and markdown rendering of meals
// - A pager for long recipe pages
// - Browser integration for meal pages
package cli
