// Package mcp implements the Model Context Protocol server for mealdb.
//
// The mcp package exposes every TheMealDB lookup as an MCP tool served over stdio.
package mcp
