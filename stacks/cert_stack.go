package stacks

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/jsii-runtime-go"

	"github.com/JuniperCamp/naturism.is/config"
	"github.com/JuniperCamp/naturism.is/config/alternativedomains"
	domaincfg "github.com/JuniperCamp/naturism.is/config/domain"
)

// CertStackProps configures the certificate stack.
type CertStackProps struct {
	awscdk.StackProps
}

// CertStackExports carries what other stacks consume from the cert stack.
type CertStackExports struct {
	SiteCert awscertificatemanager.ICertificate
}

// NewCertStack creates a stack holding the site's ACM certificate, fixed at
// us-east-1 because CloudFront only presents certificates from that region.
// The certificate covers "www.<apex>" plus the apex, and any alternative
// aliases configured for the current stack suffix.
func NewCertStack(app awscdk.App, id string, props *CertStackProps) CertStackExports {
	stackProps := props.StackProps
	env := awscdk.Environment{}
	if stackProps.Env != nil {
		env = *stackProps.Env
	}
	env.Region = jsii.String("us-east-1")
	stackProps.Env = &env
	stackProps.CrossRegionReferences = jsii.Bool(true)

	stack := awscdk.NewStack(app, jsii.String(id), &stackProps)

	spec := config.DomainSpec(stack)

	envVars := config.GetEnvironmentVariables[config.WebsiteEnvironmentVariables](stack)
	altCfg, err := alternativedomains.LoadConfig(envVars.AlternativeDomainsPath)
	if err != nil {
		panic(err)
	}
	var additionalNames []string
	if stackAlt := alternativedomains.GetConfigForStack(stack, altCfg); stackAlt != nil {
		additionalNames = stackAlt.SANNames()
	}

	hd := domaincfg.NewHostedDomain(stack, "Domain", &domaincfg.HostedDomainProps{
		Spec:            spec,
		AdditionalNames: additionalNames,
	})

	return CertStackExports{
		SiteCert: hd.Cert,
	}
}
