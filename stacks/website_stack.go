package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/jsii-runtime-go"
	"go.uber.org/zap"

	"github.com/JuniperCamp/naturism.is/config"
	"github.com/JuniperCamp/naturism.is/config/alternativedomains"
	domaincfg "github.com/JuniperCamp/naturism.is/config/domain"
	sitecfg "github.com/JuniperCamp/naturism.is/config/site"
	"github.com/JuniperCamp/naturism.is/lib/constructs/website"
	"github.com/JuniperCamp/naturism.is/lib/siteasset"
)

// WebsiteStackProps configures the website stack.
type WebsiteStackProps struct {
	awscdk.StackProps
	// Cert is the us-east-1 certificate from the cert stack.
	Cert awscertificatemanager.ICertificate
}

// NewWebsiteStack creates the stack holding everything except the edge
// certificate: both buckets, the distribution, DNS records and the content
// deployment.
func NewWebsiteStack(app awscdk.App, id string, props *WebsiteStackProps) awscdk.Stack {
	stackProps := props.StackProps
	stackProps.CrossRegionReferences = jsii.Bool(true)
	stack := awscdk.NewStack(app, jsii.String(id), &stackProps)

	spec := config.DomainSpec(stack)
	envVars := config.GetEnvironmentVariables[config.WebsiteEnvironmentVariables](stack)

	settings, err := sitecfg.LoadSettings(envVars.SiteSettingsPath)
	if err != nil {
		panic(err)
	}
	altCfg, err := alternativedomains.LoadConfig(envVars.AlternativeDomainsPath)
	if err != nil {
		panic(err)
	}
	stackAlt := alternativedomains.GetConfigForStack(stack, altCfg)

	zone := domaincfg.LookupZone(stack, "Zone", spec)

	var sources []awss3deployment.ISource
	if config.IsStackInSynthesis(stack) {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		var aliases []string
		if stackAlt != nil {
			aliases = stackAlt.SortedAliasNames()
		}
		sources = siteasset.MustSources(siteasset.Options{
			SrcPath:       envVars.SiteAssetsPath,
			IndexDocument: settings.IndexDocument,
			ErrorDocument: settings.ErrorDocument,
			SiteTitle:     settings.SiteTitle,
			SiteFQDN:      *spec.SiteFQDN(),
			ApexFQDN:      *spec.ApexFQDN(),
			Aliases:       aliases,
			Logger:        logger,
		})
	} else {
		// Listing/diff style invocations skip asset packaging entirely;
		// a placeholder keeps the template shape stable.
		sources = []awss3deployment.ISource{
			awss3deployment.Source_Data(jsii.String(settings.IndexDocument), jsii.String(""), nil),
		}
	}

	site := website.NewWebsite(stack, "Website", &website.WebsiteProps{
		Spec:                spec,
		Zone:                zone,
		Certificate:         props.Cert,
		Settings:            settings,
		Sources:             sources,
		Alternatives:        stackAlt,
		ForceDestroyContent: config.GetForceDestroyContent(stack),
	})

	awscdk.NewCfnOutput(stack, jsii.String("ContentBucketName"), &awscdk.CfnOutputProps{Value: site.ContentBucket.BucketName()})
	awscdk.NewCfnOutput(stack, jsii.String("RedirectBucketName"), &awscdk.CfnOutputProps{Value: site.RedirectBucket.BucketName()})
	awscdk.NewCfnOutput(stack, jsii.String("DistributionId"), &awscdk.CfnOutputProps{Value: site.Distribution.DistributionId()})
	awscdk.NewCfnOutput(stack, jsii.String("SiteURL"), &awscdk.CfnOutputProps{Value: jsii.String("https://" + *spec.SiteFQDN())})

	return stack
}
