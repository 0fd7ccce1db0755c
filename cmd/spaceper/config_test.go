// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/spaceper/pkg/types"
)

func newTestViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("SPACEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setConfigDefaults(v)
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(newTestViper(), nil)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadConfig_FileEnvAndSecrets(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "spaceper.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
upstream:
  base_url: http://localhost:9000
  timeout: 5s
search:
  limit: 25
  only_full_content: false
cache:
  backend: memory
  ttl: 1m
server:
  allow_origins: ["http://a.test", "http://b.test"]
`), 0o644))

	t.Setenv("SPACEPER_SERVER_ADDR", ":9999")

	v := newTestViper()
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v, map[string]string{"upstream-api-key": "k1", "redis-password": "pw"})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000", cfg.Upstream.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, types.DefaultInsightTimeout, cfg.Upstream.InsightTimeout)
	assert.Equal(t, 25, cfg.Search.Limit)
	assert.False(t, cfg.Search.OnlyFullContent)
	assert.Equal(t, types.CacheMemory, cfg.Cache.Backend)
	assert.Equal(t, time.Minute, cfg.Cache.TTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowOrigins)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "k1", cfg.Upstream.APIKey)
	assert.Equal(t, "pw", cfg.Cache.RedisPassword)
}
