// Package upgrade prints the hosted billing pages.
package upgrade

import (
	"fmt"

	"fintrack/fintrack/cmd/root"
	"fintrack/fintrack/internal/billing"

	"github.com/spf13/cobra"
)

var (
	plan   string
	portal bool
)

// Cmd represents the upgrade command.
var Cmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Get the checkout or subscription management link",
	Run:   upgradeFunc,
}

func upgradeFunc(cmd *cobra.Command, args []string) {
	pages := &billing.HostedPages{
		CheckoutBase: root.Cfg.Billing.CheckoutURL,
		PortalBase:   root.Cfg.Billing.PortalURL,
	}

	var (
		link string
		err  error
	)
	if portal {
		link, err = pages.PortalURL(root.OwnerID())
	} else {
		link, err = pages.CheckoutURL(root.OwnerID(), billing.Plan(plan))
	}
	if err != nil {
		root.Fail("Could not build the billing link", err)
	}
	fmt.Println(link)
}

func init() {
	Cmd.Flags().StringVarP(&plan, "plan", "p", string(billing.PlanPro), "Plan to upgrade to: starter or pro")
	Cmd.Flags().BoolVar(&portal, "portal", false, "Print the subscription management page instead")
}
