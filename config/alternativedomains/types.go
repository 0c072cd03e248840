package alternativedomains

import (
	"sort"

	"github.com/samber/lo"
)

// AliasOptions tunes how one extra FQDN is attached to the distribution.
type AliasOptions struct {
	// CreateRecord controls whether an A record is created in the site's
	// hosted zone for this alias. Set false for names whose DNS lives
	// elsewhere (e.g. a CNAME managed by another registrar). Defaults to true.
	CreateRecord *bool `yaml:"createRecord,omitempty"`
	// RequiresTlsSan controls whether the alias is added to the site
	// certificate's SubjectAlternativeNames. Defaults to true.
	RequiresTlsSan *bool `yaml:"requiresTlsSan,omitempty"`
}

// CreateRecordOrDefault returns CreateRecord, defaulting to true.
func (o AliasOptions) CreateRecordOrDefault() bool {
	return o.CreateRecord == nil || *o.CreateRecord
}

// RequiresTlsSanOrDefault returns RequiresTlsSan, defaulting to true.
func (o AliasOptions) RequiresTlsSanOrDefault() bool {
	return o.RequiresTlsSan == nil || *o.RequiresTlsSan
}

// StackSuffixConfig holds the extra distribution aliases for one stack suffix.
type StackSuffixConfig struct {
	// Aliases maps additional FQDNs served by the distribution to their options.
	Aliases map[string]AliasOptions `yaml:"aliases"`
}

// SortedAliasNames returns the alias FQDNs in deterministic order, so
// synthesized templates do not churn between runs.
func (c StackSuffixConfig) SortedAliasNames() []string {
	names := lo.Keys(c.Aliases)
	sort.Strings(names)
	return names
}

// SANNames returns the aliases that must appear on the certificate, sorted.
func (c StackSuffixConfig) SANNames() []string {
	return lo.Filter(c.SortedAliasNames(), func(name string, _ int) bool {
		return c.Aliases[name].RequiresTlsSanOrDefault()
	})
}

// AlternativeDomainConfig is the root structure of the configuration file,
// keyed by stack suffix (e.g. "preview").
type AlternativeDomainConfig map[string]StackSuffixConfig
