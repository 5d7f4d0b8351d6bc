package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDefaults(t *testing.T, c *Config) {
	t.Helper()
	assert.Equal(t, "", c.DatabaseDSN)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 60*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, "admin", c.S3RootUser)
	assert.Equal(t, "secretpassword", c.S3RootPassword)
	assert.Equal(t, "drop", c.S3Bucket)
	assert.Equal(t, "us-east-1", c.S3Region)
	assert.Equal(t, "http://127.0.0.1:9000/", c.S3BaseEndpoint)
	assert.Equal(t, "json", c.LogFormat)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assertDefaults(t, &c)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"testbin"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assertDefaults(t, c)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"database_dsn": "postgres://json",
		"log_format":   "text",
	})
	os.Args = []string{"testbin", "-c", path, "-l", "zap"}

	c := LoadConfig()

	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "zap", c.LogFormat)
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
}
