// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/spaceper/internal/secrets"
	"github.com/pdiddy/spaceper/pkg/types"
)

// setConfigDefaults registers every config key so that SPACEPER_* environment
// variables are seen by Unmarshal even when no config file sets them.
func setConfigDefaults(v *viper.Viper) {
	d := types.DefaultConfig()
	v.SetDefault("upstream.base_url", d.Upstream.BaseURL)
	v.SetDefault("upstream.timeout", d.Upstream.Timeout)
	v.SetDefault("upstream.user_agent", d.Upstream.UserAgent)
	v.SetDefault("upstream.insight_timeout", d.Upstream.InsightTimeout)
	v.SetDefault("upstream.api_key", "")
	v.SetDefault("search.limit", d.Search.Limit)
	v.SetDefault("search.only_full_content", d.Search.OnlyFullContent)
	v.SetDefault("search.keyword_limit", d.Search.KeywordLimit)
	v.SetDefault("cache.backend", string(d.Cache.Backend))
	v.SetDefault("cache.ttl", d.Cache.TTL)
	v.SetDefault("cache.redis_addr", "")
	v.SetDefault("cache.redis_password", "")
	v.SetDefault("cache.redis_db", 0)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("server.allow_origins", d.Server.AllowOrigins)
	v.SetDefault("server.max_body_bytes", d.Server.MaxBodyBytes)
	v.SetDefault("server.mode", d.Server.Mode)
}

// loadConfig resolves the effective configuration: defaults, then the config
// file, then SPACEPER_* environment variables, then bound flags, then
// secrets for any credential still empty.
func loadConfig(v *viper.Viper, loaded map[string]string) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	cfg.ApplyDefaults()
	secrets.Apply(&cfg, loaded)
	return cfg, nil
}
