package domain

import (
	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
	jsii "github.com/aws/jsii-runtime-go"
	"github.com/samber/lo"

	"github.com/JuniperCamp/naturism.is/lib/cdklogger"
	provider "github.com/JuniperCamp/naturism.is/lib/cert/provider"
)

// LookupZone finds the pre-existing hosted zone for the spec's base domain.
// The zone is owned outside this app; zone-not-found aborts synth/deploy
// before any resource is created.
func LookupZone(scope constructs.Construct, id string, spec Spec) awsroute53.IHostedZone {
	return awsroute53.HostedZone_FromLookup(scope, jsii.String(id), &awsroute53.HostedZoneProviderProps{
		DomainName: spec.ZoneDomain(),
	})
}

// HostedDomainProps holds inputs for creating a HostedDomain construct.
type HostedDomainProps struct {
	Spec Spec
	// EdgeCertificate issues the certificate in us-east-1, which CloudFront
	// requires. Leave false when the enclosing stack is already pinned there.
	EdgeCertificate bool
	// AdditionalNames are extra SANs beyond the apex domain.
	AdditionalNames []string
	// CertProvider overrides certificate issuance; nil uses the default.
	CertProvider provider.CertProvider
}

// HostedDomain looks up the hosted zone for the site's base domain and
// provisions a DNS-validated ACM certificate whose primary name is the "www"
// site FQDN and whose SANs always include the apex. Validation timeouts are
// ACM's to handle; nothing here retries.
type HostedDomain struct {
	constructs.Construct
	Zone awsroute53.IHostedZone
	Cert awscertificatemanager.ICertificate
	Spec Spec
}

// NewHostedDomain creates a HostedDomain under the given scope.
func NewHostedDomain(scope constructs.Construct, id string, props *HostedDomainProps) *HostedDomain {
	hdConstruct := constructs.NewConstruct(scope, jsii.String(id))
	hd := &HostedDomain{Construct: hdConstruct, Spec: props.Spec}

	hd.Zone = LookupZone(hdConstruct, "Zone", props.Spec)

	cdklogger.LogInfo(hdConstruct, "", "Setting up hosted domain. Site: %s, Apex: %s, EdgeCertificate: %t",
		*props.Spec.SiteFQDN(), *props.Spec.ApexFQDN(), props.EdgeCertificate)

	certProvider := props.CertProvider
	if certProvider == nil {
		certProvider = provider.New()
	}
	certScope := provider.ScopeRegion
	if props.EdgeCertificate {
		certScope = provider.ScopeEdge
	}

	// The certificate always covers both the site name and the bare domain,
	// plus any explicitly configured alternatives.
	sans := append([]string{*props.Spec.ApexFQDN()}, props.AdditionalNames...)
	hd.Cert = certProvider.Get(hdConstruct, "Cert", hd.Zone, *props.Spec.SiteFQDN(), certScope,
		lo.Map(sans, func(name string, _ int) *string { return jsii.String(name) }))

	awscdk.NewCfnOutput(hd.Construct, jsii.String("SiteDomain"), &awscdk.CfnOutputProps{Value: props.Spec.SiteFQDN()})
	awscdk.NewCfnOutput(hd.Construct, jsii.String("HostedZoneId"), &awscdk.CfnOutputProps{Value: hd.Zone.HostedZoneId()})
	awscdk.NewCfnOutput(hd.Construct, jsii.String("CertificateArn"), &awscdk.CfnOutputProps{Value: hd.Cert.CertificateArn()})

	return hd
}
