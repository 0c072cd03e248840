package provider

import (
	"github.com/aws/aws-cdk-go/awscdk/v2/awscertificatemanager"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/constructs-go/constructs/v10"
)

// CertScope indicates certificate issuance scope: edge or region.
type CertScope string

const (
	// ScopeEdge issues a certificate in us-east-1. CloudFront only accepts
	// certificates from that region, regardless of where the rest of the
	// stack deploys.
	ScopeEdge CertScope = "edge"
	// ScopeRegion issues a certificate in the same region as the calling stack.
	ScopeRegion CertScope = "region"
)

// CertProvider defines how to obtain an ACM certificate for a domain.
// Validation is always DNS-based against the given hosted zone: ACM writes a
// proof-of-ownership record and waits for it to resolve. A validation timeout
// stalls the deploy; nothing in this repository retries it.
type CertProvider interface {
	// Get returns an ACM certificate for fqdn, with the given extra SANs,
	// issued under the requested scope.
	Get(scope constructs.Construct, id string, zone awsroute53.IHostedZone, fqdn string, s CertScope, additionalSANs []*string) awscertificatemanager.ICertificate
}
