package homie5

import "fmt"

// DefaultDomain is the default first topic segment for Homie deployments.
const DefaultDomain HomieDomain = "homie"

// WildcardDomain subscribes across all domains (the MQTT "+" wildcard).
// It is valid in subscription topics only, never as a publish domain.
const WildcardDomain HomieDomain = "+"

// HomieDomain is the topic root namespace a Homie deployment publishes
// under. It must be a single topic segment: no '/', and no MQTT wildcard
// characters except the reserved WildcardDomain value.
type HomieDomain string

// NewDomain validates domain and returns it as a HomieDomain.
func NewDomain(domain string) (HomieDomain, error) {
	if domain == WildcardDomain.String() {
		return WildcardDomain, nil
	}
	if err := validateDomain(domain); err != nil {
		return "", err
	}
	return HomieDomain(domain), nil
}

func validateDomain(domain string) error {
	if domain == "" {
		return fmt.Errorf("%w: domain cannot be empty", ErrInvalidTopic)
	}
	for _, c := range domain {
		if c == '/' || c == '+' || c == '#' {
			return fmt.Errorf("%w: domain %q must be a single topic segment", ErrInvalidTopic, domain)
		}
	}
	return nil
}

func (d HomieDomain) String() string { return string(d) }
