// Package siteasset validates the local static-site directory and packages
// it into bucket-deployment sources. It runs on the machine performing synth,
// before anything touches AWS, so a missing or broken asset directory fails
// fast instead of surfacing as a half-deployed stack.
package siteasset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/jsii-runtime-go"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/JuniperCamp/naturism.is/scripts/renderer"
)

// ManifestObjectKey is where the deploy manifest lands in the content bucket.
const ManifestObjectKey = "deploy-manifest.json"

// Sentinel errors for asset directory problems.
var (
	ErrSrcNotExist = errors.New("SrcPath does not exist")
	ErrSrcNotDir   = errors.New("SrcPath must be a directory")
	ErrNoIndex     = errors.New("index document missing from SrcPath")
)

// Options describes the site content to package.
type Options struct {
	// SrcPath is the local directory holding the built site.
	SrcPath string `validate:"required"`
	// IndexDocument must exist inside SrcPath; S3 website hosting serves it
	// for directory requests.
	IndexDocument string `validate:"required"`
	// ErrorDocument is served for missing objects. When SrcPath does not
	// contain one, a fallback page is rendered and uploaded alongside.
	ErrorDocument string `validate:"required"`
	// SiteTitle and SiteFQDN feed the rendered fallback error page.
	SiteTitle string `validate:"required"`
	SiteFQDN  string `validate:"required,fqdn"`
	// ApexFQDN and Aliases feed the deploy manifest.
	ApexFQDN string `validate:"required,fqdn"`
	Aliases  []string
	// Logger is optional; nil means no logging.
	Logger *zap.Logger
}

// Sources validates the asset directory and returns the sources for the
// bucket deployment: the directory itself, the deploy manifest, and the
// fallback error page when the directory lacks one.
func Sources(opt Options) ([]awss3deployment.ISource, error) {
	logger := opt.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("siteasset").With(zap.String("srcPath", opt.SrcPath))

	if err := validator.New().Struct(opt); err != nil {
		return nil, fmt.Errorf("invalid site asset options: %w", err)
	}

	srcInfo, err := os.Stat(opt.SrcPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %q", ErrSrcNotExist, opt.SrcPath)
		}
		return nil, fmt.Errorf("failed to stat SrcPath %q: %w", opt.SrcPath, err)
	}
	if !srcInfo.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrSrcNotDir, opt.SrcPath)
	}

	if _, err := os.Stat(filepath.Join(opt.SrcPath, opt.IndexDocument)); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrNoIndex, opt.IndexDocument)
	}

	sources := []awss3deployment.ISource{
		awss3deployment.Source_Asset(jsii.String(opt.SrcPath), nil),
	}

	if _, err := os.Stat(filepath.Join(opt.SrcPath, opt.ErrorDocument)); os.IsNotExist(err) {
		logger.Info("Error document not present in asset directory, rendering fallback",
			zap.String("errorDocument", opt.ErrorDocument))
		page, renderErr := renderer.Render(renderer.TplErrorPage, renderer.ErrorPageData{
			SiteTitle: opt.SiteTitle,
			SiteFQDN:  opt.SiteFQDN,
		})
		if renderErr != nil {
			return nil, fmt.Errorf("rendering fallback error page: %w", renderErr)
		}
		sources = append(sources, awss3deployment.Source_Data(jsii.String(opt.ErrorDocument), jsii.String(page), nil))
	}

	manifest, err := renderer.Render(renderer.TplDeployManifest, renderer.DeployManifestData{
		SiteFQDN:      opt.SiteFQDN,
		ApexFQDN:      opt.ApexFQDN,
		IndexDocument: opt.IndexDocument,
		ErrorDocument: opt.ErrorDocument,
		Aliases:       append([]string{}, opt.Aliases...),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering deploy manifest: %w", err)
	}
	sources = append(sources, awss3deployment.Source_Data(jsii.String(ManifestObjectKey), jsii.String(manifest), nil))

	logger.Info("Packaged site sources", zap.Int("sourceCount", len(sources)))

	return sources, nil
}

// MustSources is Sources for construct call sites, where configuration errors
// abort the synth.
func MustSources(opt Options) []awss3deployment.ISource {
	sources, err := Sources(opt)
	if err != nil {
		panic(err)
	}
	return sources
}
