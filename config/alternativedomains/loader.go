// Package alternativedomains reads the optional alternative_domains.yaml
// file, which lets individual deployments (keyed by stack suffix) serve the
// distribution under extra FQDNs beyond the canonical www/apex pair.
package alternativedomains

import (
	"fmt"
	"os"

	"github.com/aws/constructs-go/constructs/v10"
	"gopkg.in/yaml.v3"

	infracfg "github.com/JuniperCamp/naturism.is/config"
)

// LoadConfig reads the alternative domains configuration from the given YAML
// file. A missing file is not an error: deployments without one simply have
// no alternative domains.
func LoadConfig(filePath string) (*AlternativeDomainConfig, error) {
	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading alternative domains config file %s: %w", filePath, err)
	}

	var config AlternativeDomainConfig
	if err := yaml.Unmarshal(yamlFile, &config); err != nil {
		return nil, fmt.Errorf("error unmarshalling alternative domains config from %s: %w", filePath, err)
	}

	return &config, nil
}

// GetConfigForStack retrieves the StackSuffixConfig for the current stack's
// suffix, or nil when the overall config is nil or has no entry for it.
func GetConfigForStack(scope constructs.Construct, cfg *AlternativeDomainConfig) *StackSuffixConfig {
	if cfg == nil {
		return nil
	}

	if stackConfig, ok := (*cfg)[infracfg.StackSuffix(scope)]; ok {
		return &stackConfig
	}

	return nil
}
