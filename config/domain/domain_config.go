package domain

import (
	"fmt"
	"strings"

	jsii "github.com/aws/jsii-runtime-go"
)

// MainDomain is the registered domain of the production site. The Route53
// hosted zone for it already exists and is never created by this app.
const MainDomain = "naturism.is"

// StageType defines allowed deployment stages.
type StageType string

const (
	// StageProd is the production stage
	StageProd StageType = "prod"
	// StageDev is the development stage
	StageDev StageType = "dev"
)

// ParseStage converts a raw string into a StageType, returning an error for
// unrecognized values.
func ParseStage(s string) (StageType, error) {
	switch StageType(s) {
	case StageProd, StageDev:
		return StageType(s), nil
	default:
		return "", fmt.Errorf("invalid stage %q", s)
	}
}

// Spec describes which site domain a deployment serves. The apex FQDN is the
// bare domain the redirect bucket answers for; the site itself lives at the
// "www" label in front of it. Dev deployments insert DevPrefix between "www"
// / apex and the base domain, so a whole parallel site can hang off the same
// hosted zone.
type Spec struct {
	Domain    string // base registered domain, e.g. "naturism.is"
	Stage     StageType
	DevPrefix string // required when Stage==StageDev
}

// apexParts returns the labels of the bare-domain FQDN in order.
func (s Spec) apexParts() []string {
	if s.Domain == "" {
		panic("Spec.Domain must not be empty")
	}
	if s.Stage == StageProd && s.DevPrefix != "" {
		panic("DevPrefix must be empty for prod stages")
	}
	parts := []string{}
	if s.Stage == StageDev {
		// Dev requires a DevPrefix label
		if s.DevPrefix == "" {
			panic("dev deployments must set Spec.DevPrefix")
		}
		parts = append(parts, s.DevPrefix)
	}
	parts = append(parts, s.Domain)
	return parts
}

// ApexFQDN returns the bare-domain FQDN, e.g. "naturism.is" or
// "preview.naturism.is" for dev.
func (s Spec) ApexFQDN() *string {
	return jsii.String(strings.Join(s.apexParts(), "."))
}

// SiteFQDN returns the canonical site FQDN: "www." prepended to the apex.
func (s Spec) SiteFQDN() *string {
	parts := append([]string{"www"}, s.apexParts()...)
	return jsii.String(strings.Join(parts, "."))
}

// ZoneDomain returns the domain the hosted zone is looked up by. Dev stages
// share the production zone, so this is always the base domain.
func (s Spec) ZoneDomain() *string {
	if s.Domain == "" {
		panic("Spec.Domain must not be empty")
	}
	return jsii.String(s.Domain)
}
