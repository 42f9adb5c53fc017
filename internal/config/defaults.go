// Package config resolves Questifier settings from flags, environment,
// config files and defaults.
package config

import (
	"github.com/josephgoksu/Questifier/internal/llm"
	"github.com/spf13/viper"
)

// Config keys
const (
	KeyProvider       = "llm.provider"
	KeyModel          = "llm.model"
	KeyAPIKeys        = "llm.apiKeys"
	KeyBaseURL        = "llm.baseURL"
	KeyRequestTimeout = "llm.requestTimeoutSeconds"
	KeyLogLevel       = "log.level"
	KeyLogFile        = "log.file"
	KeyTelemetry      = "telemetry.enabled"
	KeyTelemetryKey   = "telemetry.apiKey"
	KeyTelemetryHost  = "telemetry.endpoint"
	KeyTemplatesDir   = "prompts.templatesDir"
)

// DefaultLogLevel is used when log.level is unset.
const DefaultLogLevel = "info"

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyProvider, llm.DefaultProvider)
	v.SetDefault(KeyRequestTimeout, llm.DefaultRequestTimeoutSeconds)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyTelemetry, false)
}
