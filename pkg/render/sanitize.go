package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// SanitizePolicy names a bluemonday policy applied to rendered HTML.
type SanitizePolicy string

const (
	// SanitizeNone leaves output verbatim.
	SanitizeNone SanitizePolicy = "none"
	// SanitizeUGC keeps user-generated-content safe markup and drops scripts,
	// styles and event handlers.
	SanitizeUGC SanitizePolicy = "ugc"
	// SanitizeStrict strips every tag, leaving only text.
	SanitizeStrict SanitizePolicy = "strict"
)

// SanitizePolicies lists the accepted policy names.
func SanitizePolicies() []SanitizePolicy {
	return []SanitizePolicy{SanitizeNone, SanitizeUGC, SanitizeStrict}
}

// ParseSanitizePolicy resolves a policy name. Empty input maps to SanitizeNone.
func ParseSanitizePolicy(raw string) (SanitizePolicy, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return SanitizeNone, nil
	}
	for _, policy := range SanitizePolicies() {
		if string(policy) == name {
			return policy, nil
		}
	}
	return "", fmt.Errorf("render: unknown sanitize policy %q (want one of none, ugc, strict)", raw)
}

// Apply runs the policy over s.
func (p SanitizePolicy) Apply(s string) string {
	policy := p.policy()
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}

var (
	policyOnce     sync.Once
	ugcPolicy      *bluemonday.Policy
	strictPolicy *bluemonday.Policy
)

func (p SanitizePolicy) policy() *bluemonday.Policy {
	policyOnce.Do(func() {
		ugcPolicy = bluemonday.UGCPolicy()
		strictPolicy = bluemonday.StrictPolicy()
	})
	switch p {
	case SanitizeUGC:
		return ugcPolicy
	case SanitizeStrict:
		return strictPolicy
	default:
		return nil
	}
}
