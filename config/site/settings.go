// Package site loads the optional site.toml settings file controlling how
// the static site is served: document names, CloudFront price class and
// default cache TTL. A missing file yields validated defaults, so a fresh
// checkout synthesizes without any configuration.
package site

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"
)

// Settings is the parsed site.toml.
type Settings struct {
	// IndexDocument is served for directory requests, and is required to
	// exist in the asset directory.
	IndexDocument string `toml:"index_document" validate:"required"`
	// ErrorDocument is served by S3 website hosting for missing objects.
	ErrorDocument string `toml:"error_document" validate:"required"`
	// PriceClass selects the CloudFront edge coverage: 100, 200 or all.
	PriceClass string `toml:"price_class" validate:"oneof=100 200 all"`
	// DefaultTTLSeconds caches content at the edge for this long unless the
	// origin says otherwise. Deploys invalidate everything anyway.
	DefaultTTLSeconds int `toml:"default_ttl_seconds" validate:"gte=0"`
	// SiteTitle feeds the rendered fallback error page.
	SiteTitle string `toml:"site_title" validate:"required"`
}

// DefaultSettings are used when no site.toml is present.
func DefaultSettings() Settings {
	return Settings{
		IndexDocument:     "index.html",
		ErrorDocument:     "404.html",
		PriceClass:        "100",
		DefaultTTLSeconds: int((24 * time.Hour).Seconds()),
		SiteTitle:         "naturism.is",
	}
}

// LoadSettings reads and validates the settings file at path. A missing file
// is not an error: defaults are returned. Unknown keys are rejected so typos
// fail the synth instead of being silently ignored.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	meta, err := toml.DecodeFile(path, &settings)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("error reading site settings file %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Settings{}, fmt.Errorf("unknown keys in %s: %v", path, undecoded)
	}

	if err := validator.New().Struct(settings); err != nil {
		return Settings{}, fmt.Errorf("invalid site settings in %s: %w", path, err)
	}

	return settings, nil
}

// CloudFrontPriceClass maps the configured price class onto the CDK enum.
func (s Settings) CloudFrontPriceClass() awscloudfront.PriceClass {
	switch s.PriceClass {
	case "200":
		return awscloudfront.PriceClass_PRICE_CLASS_200
	case "all":
		return awscloudfront.PriceClass_PRICE_CLASS_ALL
	default:
		return awscloudfront.PriceClass_PRICE_CLASS_100
	}
}

// DefaultTTL returns the default cache TTL as a CDK duration.
func (s Settings) DefaultTTL() awscdk.Duration {
	return awscdk.Duration_Seconds(jsii.Number(float64(s.DefaultTTLSeconds)))
}
