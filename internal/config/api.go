package config

import (
	"fmt"
	"os"

	"github.com/drishti-labs/drishti/pkg/formatting"
	"github.com/drishti-labs/drishti/pkg/middleware"
	"github.com/drishti-labs/drishti/pkg/openapi"
	"github.com/drishti-labs/drishti/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "DRISHTI_CORS_ENABLED",
	Origins:          "DRISHTI_CORS_ORIGINS",
	AllowedMethods:   "DRISHTI_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "DRISHTI_CORS_ALLOWED_HEADERS",
	AllowCredentials: "DRISHTI_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "DRISHTI_CORS_MAX_AGE",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "DRISHTI_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "DRISHTI_PAGINATION_MAX_PAGE_SIZE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "DRISHTI_OPENAPI_TITLE",
	Description: "DRISHTI_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, CORS, pagination, and OpenAPI settings.
// DefaultActor attributes decision submissions that arrive without a session.
type APIConfig struct {
	BasePath      string                `toml:"base_path"`
	MaxUploadSize string                `toml:"max_upload_size"`
	DefaultActor  string                `toml:"default_actor"`
	CORS          middleware.CORSConfig `toml:"cors"`
	Pagination    pagination.Config     `toml:"pagination"`
	OpenAPI       openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) MaxUploadSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxUploadSize)
	if err != nil {
		return 50 * 1024 * 1024 // 50MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS, pagination, and OpenAPI configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.DefaultActor != "" {
		c.DefaultActor = overlay.DefaultActor
	}

	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "50MB"
	}
	if c.DefaultActor == "" {
		c.DefaultActor = "admin"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("DRISHTI_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("DRISHTI_API_MAX_UPLOAD_SIZE"); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv("DRISHTI_API_DEFAULT_ACTOR"); v != "" {
		c.DefaultActor = v
	}
}
