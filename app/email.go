package app

import (
	"fmt"
	"strings"

	"netcompare/domain/network"
)

// networkPitch is the one-line selling point used in follow-up emails
var networkPitch = map[network.Network]string{
	network.Mascom: "**Best Pricing**: Mascom offers the most affordable data packages, perfect for budget-conscious users.",
	network.Orange: "**Fastest Speed**: Orange has the fastest 4G/5G network in Botswana, ideal for streaming and downloads.",
	network.BTC:    "**Best Service**: BTC has the highest customer satisfaction ratings among the three networks.",
}

// EmailComposer generates the personalised follow-up email draft that
// is stored alongside each captured lead. The draft is markdown; the
// UI renders a preview, a human copies and sends it.
type EmailComposer struct{}

// NewEmailComposer creates an email composer
func NewEmailComposer() *EmailComposer {
	return &EmailComposer{}
}

// Compose builds the follow-up email for a recommendation. Scores come
// from the profile snapshot and render as N/A when the filtered data
// was empty.
func (e *EmailComposer) Compose(name string, rec network.Recommendation) string {
	if strings.TrimSpace(name) == "" {
		name = "there"
	}
	net := rec.Network

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: Your Perfect Network Match: %s\n\n", net)
	fmt.Fprintf(&b, "Hi %s!\n\n", name)
	fmt.Fprintf(&b, "Thanks for using our Network Comparison Tool! Based on your answers, we found that **%s** is your best match.\n\n", net)
	fmt.Fprintf(&b, "Here's why %s is perfect for you:\n\n", net)
	fmt.Fprintf(&b, "- %s\n", networkPitch[net])
	fmt.Fprintf(&b, "- %s\n\n", rec.Reason)

	b.WriteString("**Your Next Steps:**\n\n")
	fmt.Fprintf(&b, "1. Visit %s: %s\n", net, net.Website())
	b.WriteString("2. Ask for a student or corporate discount if applicable\n")
	b.WriteString("3. Mention the network comparison tool (they may have special offers!)\n\n")

	b.WriteString("**Quick Comparison:**\n\n")
	fmt.Fprintf(&b, "- Overall Rating: %s\n", rec.Profile.Overall)
	fmt.Fprintf(&b, "- Customer Service: %s\n", rec.Profile.Service)
	fmt.Fprintf(&b, "- Pricing: %s\n\n", rec.Profile.Pricing)

	b.WriteString("Have questions? Just reply to this email - we're here to help!\n\n")
	b.WriteString("Cheers,\nBotswana Network Comparison Team\n")

	return b.String()
}
