package config

import "os"

// LoadEnv reads the three required values from the process environment into
// the config. It fails with a MissingConfigurationError naming the first
// variable that is unset or empty. No other environment state is read.
//
// The values are stored exactly as found; URL normalization (trailing slash
// handling) is the API client's concern, so the round-trip property holds:
// what the environment says is what the Config carries.
func (c *Config) LoadEnv() error {
	serverURL := os.Getenv(EnvServerURL)
	if serverURL == "" {
		return &MissingConfigurationError{Variable: EnvServerURL}
	}

	authToken := os.Getenv(EnvAuthToken)
	if authToken == "" {
		return &MissingConfigurationError{Variable: EnvAuthToken}
	}

	projectKey := os.Getenv(EnvProjectKey)
	if projectKey == "" {
		return &MissingConfigurationError{Variable: EnvProjectKey}
	}

	c.ServerURL = serverURL
	c.AuthToken = authToken
	c.ProjectKey = projectKey
	return nil
}
