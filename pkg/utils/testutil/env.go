package testutil

import (
	"os"
	"testing"
)

// GetEnvOrSkip returns the value of the environment variable. If not set, skip the test.
func GetEnvOrSkip(t *testing.T, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("Environment variable %s is not set, skipping test", key)
	}
	return value
}

// BitbucketEnv holds Bitbucket credentials and a repository for integration tests
type BitbucketEnv struct {
	Workspace string
	Repo      string
	User      string
	Password  string
}

// BitbucketEnvOrSkip reads Bitbucket credentials and a repository to test
// against. The test is skipped unless all of them are set.
func BitbucketEnvOrSkip(t *testing.T) BitbucketEnv {
	t.Helper()
	return BitbucketEnv{
		Workspace: GetEnvOrSkip(t, "TEST_BITBUCKET_WORKSPACE"),
		Repo:      GetEnvOrSkip(t, "TEST_BITBUCKET_REPO"),
		User:      GetEnvOrSkip(t, "BB_USER_ID"),
		Password:  GetEnvOrSkip(t, "BB_APP_PASS"),
	}
}

// DatadogEnv holds Datadog credentials for integration tests
type DatadogEnv struct {
	Site   string
	APIKey string
	AppKey string
}

// DatadogEnvOrSkip reads Datadog keys. DD_SITE is optional.
func DatadogEnvOrSkip(t *testing.T) DatadogEnv {
	t.Helper()
	return DatadogEnv{
		Site:   os.Getenv("DD_SITE"),
		APIKey: GetEnvOrSkip(t, "DD_API_KEY"),
		AppKey: GetEnvOrSkip(t, "DD_APP_KEY"),
	}
}
