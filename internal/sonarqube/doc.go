// Package sonarqube wraps the SonarQube Web API endpoints this tool needs:
// issue search, component measures, quality gate status, rule details, and
// source line retrieval.
//
// All calls are authenticated GETs carrying the configured bearer token.
// Failures map onto two error types: NetworkError when the request never
// produced an HTTP response, and APIError when the server answered with a
// non-2xx status or a body that does not decode. There is no retry logic;
// a slow or unreachable server surfaces as a NetworkError and aborts the run.
package sonarqube
