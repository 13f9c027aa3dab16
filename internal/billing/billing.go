// Package billing exposes the subscription surface. Payment processing is
// an external collaborator; this package only produces the hosted-page
// URLs the user is redirected to.
package billing

import (
	"fmt"
	"net/url"
)

// Plan identifies a subscription tier.
type Plan string

const (
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
)

// IsValid reports whether p is a known plan.
func (p Plan) IsValid() bool {
	return p == PlanStarter || p == PlanPro
}

// Provider produces the external billing URLs for an owner.
type Provider interface {
	// CheckoutURL returns the hosted checkout page for upgrading to plan.
	CheckoutURL(ownerID string, plan Plan) (string, error)

	// PortalURL returns the hosted page for managing an existing
	// subscription.
	PortalURL(ownerID string) (string, error)
}

// HostedPages builds URLs against configured base addresses.
type HostedPages struct {
	CheckoutBase string
	PortalBase   string
}

func (h *HostedPages) CheckoutURL(ownerID string, plan Plan) (string, error) {
	if h.CheckoutBase == "" {
		return "", fmt.Errorf("billing is not configured: no checkout URL")
	}
	if !plan.IsValid() {
		return "", fmt.Errorf("unknown plan %q", plan)
	}
	return buildURL(h.CheckoutBase, url.Values{"owner": {ownerID}, "plan": {string(plan)}})
}

func (h *HostedPages) PortalURL(ownerID string) (string, error) {
	if h.PortalBase == "" {
		return "", fmt.Errorf("billing is not configured: no portal URL")
	}
	return buildURL(h.PortalBase, url.Values{"owner": {ownerID}})
}

func buildURL(base string, params url.Values) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid billing URL %q: %w", base, err)
	}
	q := u.Query()
	for key, values := range params {
		for _, v := range values {
			q.Set(key, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
