package main

import (
	"os"

	"github.com/aws/aws-cdk-go/awscdk/v2"
	"github.com/aws/jsii-runtime-go"

	"github.com/JuniperCamp/naturism.is/config"
	"github.com/JuniperCamp/naturism.is/stacks"
)

func main() {
	app := awscdk.NewApp(nil)

	certExports := stacks.NewCertStack(
		app,
		config.WithStackSuffix(app, "NaturismIs-Cert"),
		&stacks.CertStackProps{
			StackProps: awscdk.StackProps{
				Env:         env(),
				Description: jsii.String("us-east-1 ACM certificate for the naturism.is site, consumed by CloudFront"),
			},
		},
	)

	stacks.NewWebsiteStack(
		app,
		config.WithStackSuffix(app, "NaturismIs-Site"),
		&stacks.WebsiteStackProps{
			StackProps: awscdk.StackProps{
				Env:         env(),
				Description: jsii.String("Static site for naturism.is: content + redirect buckets, CloudFront, DNS records and content deployment"),
			},
			Cert: certExports.SiteCert,
		},
	)

	app.Synth(nil)
}

// env determines the AWS environment (account+region) in which our stack is
// to be deployed. For more information see:
// https://docs.aws.amazon.com/cdk/latest/guide/environments.html
func env() *awscdk.Environment {
	account := os.Getenv("CDK_DEPLOY_ACCOUNT")
	region := os.Getenv("CDK_DEPLOY_REGION")

	if len(account) == 0 || len(region) == 0 {
		account = os.Getenv("CDK_DEFAULT_ACCOUNT")
		region = os.Getenv("CDK_DEFAULT_REGION")
	}

	return &awscdk.Environment{
		Account: jsii.String(account),
		Region:  jsii.String(region),
	}
}
