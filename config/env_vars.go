package config

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/caarlos0/env/v11"
)

// WebsiteEnvironmentVariables are the deploy-time knobs that are not CDK
// context: filesystem locations resolved on the machine running synth.
type WebsiteEnvironmentVariables struct {
	// SiteAssetsPath is the directory whose contents are uploaded to the
	// content bucket. Relative paths are resolved against the working dir.
	SiteAssetsPath string `env:"SITE_ASSETS_PATH" envDefault:"./site"`
	// SiteSettingsPath points at the optional site.toml settings file.
	SiteSettingsPath string `env:"SITE_SETTINGS_PATH" envDefault:"./site.toml"`
	// AlternativeDomainsPath points at the optional per-suffix alias file.
	AlternativeDomainsPath string `env:"ALTERNATIVE_DOMAINS_PATH" envDefault:"./alternative_domains.yaml"`
}

// GetEnvironmentVariables parses T from the process environment.
// Parsing only happens during synthesis so that list/diff style invocations
// that never bundle assets work without a fully configured environment.
func GetEnvironmentVariables[T any](scope constructs.Construct) T {
	var envObj T

	if !IsStackInSynthesis(scope) {
		return envObj
	}

	if err := env.Parse(&envObj); err != nil {
		panic(err)
	}

	return envObj
}

// IsStackInSynthesis reports whether the enclosing stack is being synthesized
// for deployment, i.e. asset bundling is required.
func IsStackInSynthesis(scope constructs.Construct) bool {
	stack := awscdk.Stack_Of(scope)
	if stack == nil {
		return false
	}
	return *stack.BundlingRequired()
}
