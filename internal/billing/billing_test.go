package billing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHostedPages_CheckoutURL(t *testing.T) {
	pages := &HostedPages{CheckoutBase: "https://pay.example.com/checkout"}

	u, err := pages.CheckoutURL("alice", PlanPro)
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/checkout?owner=alice&plan=pro", u)
}

func TestHostedPages_CheckoutURLEscapesOwner(t *testing.T) {
	pages := &HostedPages{CheckoutBase: "https://pay.example.com/checkout"}

	u, err := pages.CheckoutURL("team finance", PlanStarter)
	require.NoError(t, err)
	assert.Contains(t, u, "owner=team+finance")
}

func TestHostedPages_CheckoutURLRejectsUnknownPlan(t *testing.T) {
	pages := &HostedPages{CheckoutBase: "https://pay.example.com/checkout"}
	_, err := pages.CheckoutURL("alice", Plan("enterprise"))
	assert.Error(t, err)
}

func TestHostedPages_PortalURL(t *testing.T) {
	pages := &HostedPages{PortalBase: "https://pay.example.com/portal"}
	u, err := pages.PortalURL("alice")
	require.NoError(t, err)
	assert.Equal(t, "https://pay.example.com/portal?owner=alice", u)
}

func TestHostedPages_Unconfigured(t *testing.T) {
	pages := &HostedPages{}
	_, err := pages.CheckoutURL("alice", PlanPro)
	assert.Error(t, err)
	_, err = pages.PortalURL("alice")
	assert.Error(t, err)
}

func TestPlanIsValid(t *testing.T) {
	assert.True(t, PlanStarter.IsValid())
	assert.True(t, PlanPro.IsValid())
	assert.False(t, Plan("enterprise").IsValid())
	assert.False(t, Plan("").IsValid())
}
