// Package main provides the entry point for the sonarpdf CLI.
//
// sonarpdf queries a SonarQube server for one project's quality gate,
// metrics, and unresolved issues, and renders them as a formatted PDF
// report (or Markdown/JSON on request).
//
// Usage:
//
//	SONAR_QUBE_URL=https://sonar.example.com \
//	SONAR_QUBE_AUTH_TOKEN=squ_... \
//	SONAR_QUBE_PROJECT_KEY=my-project \
//	sonarpdf
//
// See --help for all available options.
package main

// main is the entry point for sonarpdf.
func main() {
	Execute()
}
