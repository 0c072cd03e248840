package config

import (
	"fmt"

	"github.com/aws/constructs-go/constructs/v10"
	"github.com/aws/jsii-runtime-go"

	domaincfg "github.com/JuniperCamp/naturism.is/config/domain"
)

// Context keys read at synth time. All of them are optional and carry
// defaults suitable for the production deployment of naturism.is.
const (
	domainCtxKey       = "domain"
	stageCtxKey        = "stage"
	devPrefixCtxKey    = "devPrefix"
	stackSuffixCtxKey  = "stackSuffix"
	forceDestroyCtxKey = "forceDestroyContent"
)

// GetDomain reads the base registered domain from CDK context.
// Absence falls back to the production domain.
func GetDomain(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String(domainCtxKey))
	if raw == nil {
		return domaincfg.MainDomain
	}
	d, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", domainCtxKey, raw))
	}
	return d
}

// GetStage reads the deployment stage from CDK context.
// • Absence → prod
// • Bad value → panic with a clear message.
func GetStage(scope constructs.Construct) domaincfg.StageType {
	raw := scope.Node().TryGetContext(jsii.String(stageCtxKey))
	if raw == nil {
		return domaincfg.StageProd
	}
	s, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", stageCtxKey, raw))
	}
	stage, err := domaincfg.ParseStage(s)
	if err != nil {
		panic(fmt.Errorf("invalid %s=%q – allowed: prod | dev", stageCtxKey, s))
	}
	return stage
}

// GetDevPrefix reads the dev label prefix from CDK context. Only meaningful
// when stage is dev; domaincfg.Spec enforces the pairing.
func GetDevPrefix(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String(devPrefixCtxKey))
	if raw == nil {
		return ""
	}
	p, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", devPrefixCtxKey, raw))
	}
	return p
}

// DomainSpec assembles the domain Spec for the current synthesis from context.
func DomainSpec(scope constructs.Construct) domaincfg.Spec {
	return domaincfg.Spec{
		Domain:    GetDomain(scope),
		Stage:     GetStage(scope),
		DevPrefix: GetDevPrefix(scope),
	}
}

// GetForceDestroyContent reads the content-bucket teardown policy from
// context. True means `cdk destroy` empties and deletes the content bucket,
// trading data-loss risk for teardown convenience. The safe default is false:
// destroying a stack with a non-empty content bucket then fails explicitly.
// The checked-in cdk.json opts in for this site and documents the trade-off.
func GetForceDestroyContent(scope constructs.Construct) bool {
	raw := scope.Node().TryGetContext(jsii.String(forceDestroyCtxKey))
	switch v := raw.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		// Context values from the CLI arrive as strings.
		return v == "true"
	default:
		panic(fmt.Sprintf("context %q must be a bool, got %T", forceDestroyCtxKey, raw))
	}
}

// StackSuffix returns the raw stack suffix from context, empty when unset.
// The suffix distinguishes parallel deployments (e.g. "preview") and keys
// the alternative-domains configuration file.
func StackSuffix(scope constructs.Construct) string {
	raw := scope.Node().TryGetContext(jsii.String(stackSuffixCtxKey))
	if raw == nil {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		panic(fmt.Sprintf("context %q must be a string, got %T", stackSuffixCtxKey, raw))
	}
	return s
}

// WithStackSuffix appends the context stack suffix to a base stack name.
func WithStackSuffix(scope constructs.Construct, base string) string {
	if suffix := StackSuffix(scope); suffix != "" {
		return base + "-" + suffix
	}
	return base
}
