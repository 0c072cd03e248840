// Package website declares the full serving topology for the static site:
// content bucket, apex redirect bucket, CloudFront distribution, alias
// records and the asset deployment with cache invalidation.
package website

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfront"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscloudfrontorigins"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53targets"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3"
	"github.com/aws/aws-cdk-go/awscdk/v2/awss3deployment"
	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"

	"github.com/JuniperCamp/naturism.is/config/alternativedomains"
	domaincfg "github.com/JuniperCamp/naturism.is/config/domain"
	sitecfg "github.com/JuniperCamp/naturism.is/config/site"
	"github.com/JuniperCamp/naturism.is/lib/cdklogger"
)

// WebsiteProps wires the site construct.
type WebsiteProps struct {
	// Spec names the site: content bucket is "www.<apex>", redirect bucket
	// is the apex itself.
	Spec domaincfg.Spec
	// Zone is the hosted zone both alias records are created in.
	Zone awsroute53.IHostedZone
	// Certificate must be a us-east-1 certificate covering the site FQDN
	// and the apex (plus any alternative aliases).
	Certificate awscertificatemanager.ICertificate
	// Settings carry document names, price class and cache TTL.
	Settings sitecfg.Settings
	// Sources is the site content to upload, from siteasset.Sources.
	Sources []awss3deployment.ISource
	// Alternatives optionally adds extra distribution aliases.
	Alternatives *alternativedomains.StackSuffixConfig
	// ForceDestroyContent empties and deletes the content bucket on stack
	// teardown. Convenient for dev/preview deployments, not production-safe:
	// anything uploaded outside a deploy is lost with the stack. When false,
	// teardown of a non-empty bucket fails instead of losing data.
	ForceDestroyContent bool
}

// Website is the constructed topology.
type Website struct {
	constructs.Construct
	ContentBucket  awss3.Bucket
	RedirectBucket awss3.Bucket
	Distribution   awscloudfront.Distribution
	Deployment     awss3deployment.BucketDeployment
}

// NewWebsite declares the resources described in WebsiteProps under scope.
func NewWebsite(scope constructs.Construct, id string, props *WebsiteProps) *Website {
	wConstruct := constructs.NewConstruct(scope, jsii.String(id))
	w := &Website{Construct: wConstruct}

	siteFQDN := props.Spec.SiteFQDN()
	apexFQDN := props.Spec.ApexFQDN()

	// Content bucket, named after the site so the S3 website endpoint lines
	// up with the DNS name. Bucket names are globally unique; a collision
	// fails the deploy.
	contentProps := &awss3.BucketProps{
		BucketName:           siteFQDN,
		PublicReadAccess:     jsii.Bool(true),
		BlockPublicAccess:    awss3.BlockPublicAccess_BLOCK_ACLS(),
		WebsiteIndexDocument: jsii.String(props.Settings.IndexDocument),
		WebsiteErrorDocument: jsii.String(props.Settings.ErrorDocument),
	}
	if props.ForceDestroyContent {
		cdklogger.LogWarning(wConstruct, "", "Content bucket %s will be emptied and deleted on teardown", *siteFQDN)
		contentProps.RemovalPolicy = awscdk.RemovalPolicy_DESTROY
		contentProps.AutoDeleteObjects = jsii.Bool(true)
	}
	w.ContentBucket = awss3.NewBucket(wConstruct, jsii.String("ContentBucket"), contentProps)

	// Apex redirect bucket: every request is bounced to the canonical site
	// name over HTTPS. The bucket holds no objects, so destroying it with
	// the stack is safe.
	w.RedirectBucket = awss3.NewBucket(wConstruct, jsii.String("RedirectBucket"), &awss3.BucketProps{
		BucketName: apexFQDN,
		WebsiteRedirect: &awss3.RedirectTarget{
			HostName: siteFQDN,
			Protocol: awss3.RedirectProtocol_HTTPS,
		},
		RemovalPolicy: awscdk.RemovalPolicy_DESTROY,
	})

	domainNames := []*string{siteFQDN}
	var aliasNames []string
	if props.Alternatives != nil {
		aliasNames = props.Alternatives.SortedAliasNames()
		domainNames = append(domainNames, lo.Map(aliasNames, func(name string, _ int) *string {
			return jsii.String(name)
		})...)
		cdklogger.LogInfo(wConstruct, "", "Serving %d alternative alias(es) besides %s", len(aliasNames), *siteFQDN)
	}

	// Single origin, single default behavior. The origin is the bucket's
	// website endpoint rather than the REST endpoint, so S3 handles index
	// documents and redirects.
	w.Distribution = awscloudfront.NewDistribution(wConstruct, jsii.String("Distribution"), &awscloudfront.DistributionProps{
		DefaultBehavior: &awscloudfront.BehaviorOptions{
			Origin:               awscloudfrontorigins.NewS3StaticWebsiteOrigin(w.ContentBucket, nil),
			ViewerProtocolPolicy: awscloudfront.ViewerProtocolPolicy_REDIRECT_TO_HTTPS,
			CachePolicy: awscloudfront.NewCachePolicy(wConstruct, jsii.String("CachePolicy"), &awscloudfront.CachePolicyProps{
				DefaultTtl:                 props.Settings.DefaultTTL(),
				EnableAcceptEncodingGzip:   jsii.Bool(true),
				EnableAcceptEncodingBrotli: jsii.Bool(true),
			}),
		},
		DefaultRootObject: jsii.String(props.Settings.IndexDocument),
		DomainNames:       &domainNames,
		Certificate:       props.Certificate,
		PriceClass:        props.Settings.CloudFrontPriceClass(),
	})

	// Exactly two records for the canonical pair: apex resolves to the
	// redirect bucket, the site name to the distribution.
	awsroute53.NewARecord(wConstruct, jsii.String("ApexAliasRecord"), &awsroute53.ARecordProps{
		Zone:       props.Zone,
		RecordName: apexFQDN,
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewBucketWebsiteTarget(w.RedirectBucket, nil)),
	})
	awsroute53.NewARecord(wConstruct, jsii.String("SiteAliasRecord"), &awsroute53.ARecordProps{
		Zone:       props.Zone,
		RecordName: siteFQDN,
		Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(w.Distribution)),
	})
	for _, name := range aliasNames {
		if !props.Alternatives.Aliases[name].CreateRecordOrDefault() {
			continue
		}
		awsroute53.NewARecord(wConstruct, jsii.String("AliasRecord-"+name), &awsroute53.ARecordProps{
			Zone:       props.Zone,
			RecordName: jsii.String(name),
			Target:     awsroute53.RecordTarget_FromAlias(awsroute53targets.NewCloudFrontTarget(w.Distribution)),
		})
	}

	// Upload the site and purge every cached path, so a deploy is visible
	// immediately. The invalidation is always full, never partial.
	w.Deployment = awss3deployment.NewBucketDeployment(wConstruct, jsii.String("DeployWithInvalidation"), &awss3deployment.BucketDeploymentProps{
		Sources:           &props.Sources,
		DestinationBucket: w.ContentBucket,
		Distribution:      w.Distribution,
		DistributionPaths: jsii.Strings("/*"),
	})

	return w
}
