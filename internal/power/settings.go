package power

import "strconv"

// DefaultTLD is served when the settings document does not name one.
const DefaultTLD = "test"

const (
	keyDNSPort        = "dns_port"
	keyHTTPPort       = "http_port"
	keyHTTPSPort      = "https_port"
	keyIPFWRuleNumber = "ipfw_rule_number"
	keyTLD            = "tld"
)

// Settings is the in-memory form of the settings document.
type Settings struct {
	store  *Store
	values map[string]any
}

func newSettings(store *Store, values map[string]any) *Settings {
	if values == nil {
		values = make(map[string]any)
	}
	return &Settings{store: store, values: values}
}

// Save writes the settings back through the store they came from.
func (s *Settings) Save() error {
	return s.store.Save(s)
}

// DNSPort is the port of the local DNS responder.
func (s *Settings) DNSPort() int { return s.intValue(keyDNSPort) }

// SetDNSPort sets DNSPort.
func (s *Settings) SetDNSPort(port int) { s.values[keyDNSPort] = port }

// HTTPPort is the port of the local HTTP proxy.
func (s *Settings) HTTPPort() int { return s.intValue(keyHTTPPort) }

// SetHTTPPort sets HTTPPort.
func (s *Settings) SetHTTPPort(port int) { s.values[keyHTTPPort] = port }

// HTTPSPort is the port of the local HTTPS proxy.
func (s *Settings) HTTPSPort() int { return s.intValue(keyHTTPSPort) }

// SetHTTPSPort sets HTTPSPort.
func (s *Settings) SetHTTPSPort(port int) { s.values[keyHTTPSPort] = port }

// FirewallRuleNumber identifies the firewall rule that forwards privileged ports.
func (s *Settings) FirewallRuleNumber() int { return s.intValue(keyIPFWRuleNumber) }

// SetFirewallRuleNumber sets FirewallRuleNumber.
func (s *Settings) SetFirewallRuleNumber(n int) { s.values[keyIPFWRuleNumber] = n }

// TLD returns the configured top-level domain or DefaultTLD.
func (s *Settings) TLD() string {
	if v, ok := s.values[keyTLD].(string); ok && v != "" {
		return v
	}
	return DefaultTLD
}

// SetTLD sets TLD.
func (s *Settings) SetTLD(tld string) { s.values[keyTLD] = tld }

func (s *Settings) intValue(key string) int {
	switch v := s.values[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, _ := strconv.Atoi(v)
		return n
	default:
		return 0
	}
}
