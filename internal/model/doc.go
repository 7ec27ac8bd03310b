// Package model defines the domain types shared across the application:
// issues and their severities as reported by SonarQube, metric summaries,
// the quality gate verdict, and the assembled report that the writers render.
//
// All types in this package are plain data. They hold what the API returned
// (or what the generator derived from it) and carry no behavior beyond
// parsing, formatting, and counting helpers.
package model
