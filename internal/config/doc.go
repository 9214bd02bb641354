// Package config provides centralized configuration management for the sales
// analytics pipeline. Configuration is loaded from the following sources in
// order of precedence:
//
//	1. Environment variables (highest priority)
//	2. YAML configuration file
//	3. Default values (lowest priority)
//
// All environment variables follow the pattern SALES_* for namespacing:
//
//	SALES_SERVER_PORT=8080
//	SALES_ENRICHMENT_BASE_URL=https://dummyjson.com
//	SALES_LOGGING_LEVEL=info
//
// The Paths type resolved via Config.ResolvePaths is the single source of
// truth for all file locations used by the pipeline.
package config
