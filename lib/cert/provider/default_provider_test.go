package provider_test

import (
	"testing"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/aws-cdk-go/awscdk/v2/awsroute53"
	"github.com/aws/jsii-runtime-go"
	"github.com/stretchr/testify/require"

	provider "github.com/JuniperCamp/naturism.is/lib/cert/provider"
)

func newStack(t *testing.T, region string) awscdk.Stack {
	t.Helper()
	app := awscdk.NewApp(nil)
	return awscdk.NewStack(app, jsii.String("Test"), &awscdk.StackProps{
		Env: &awscdk.Environment{
			Account: jsii.String("123456789012"),
			Region:  jsii.String(region),
		},
	})
}

func TestEdgeCertLandsInUsEast1(t *testing.T) {
	stack := newStack(t, "eu-west-1")
	zone := awsroute53.NewHostedZone(stack, jsii.String("Zone"), &awsroute53.HostedZoneProps{
		ZoneName: jsii.String("example.com"),
	})

	cert := provider.New().Get(stack, "Cert", zone, "www.example.com", provider.ScopeEdge, nil)

	certStack := awscdk.Stack_Of(cert)
	require.NotNil(t, certStack)
	require.Equal(t, "us-east-1", *certStack.Region())
	// The certificate lives in a dedicated edge stack, not the caller's.
	require.NotEqual(t, *stack.StackName(), *certStack.StackName())
}

func TestRegionalCertStaysInStack(t *testing.T) {
	stack := newStack(t, "eu-west-1")
	zone := awsroute53.NewHostedZone(stack, jsii.String("Zone"), &awsroute53.HostedZoneProps{
		ZoneName: jsii.String("example.com"),
	})

	cert := provider.New().Get(stack, "Cert", zone, "www.example.com", provider.ScopeRegion, nil)

	certStack := awscdk.Stack_Of(cert)
	require.Equal(t, *stack.StackName(), *certStack.StackName())
	require.Equal(t, "eu-west-1", *certStack.Region())
}
