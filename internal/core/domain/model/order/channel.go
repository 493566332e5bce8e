package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Channel identifies the sales channel an order originated from.
type Channel int

const (
	// ChannelUnknown represents an invalid or undefined channel.
	// This value (0) helps catch uninitialized Channel values.
	ChannelUnknown Channel = iota

	// Ecommerce marks orders placed through the web storefront.
	Ecommerce

	// CallCenter marks orders placed through the call center.
	CallCenter

	// Store marks orders placed at a physical store.
	Store

	// Affiliate marks orders placed through an affiliate partner.
	Affiliate
)

// getChannelStrings returns a map of Channel values to their string representations.
func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		ChannelUnknown: "Unknown",
		Ecommerce:      "Ecommerce",
		CallCenter:     "CallCenter",
		Store:          "Store",
		Affiliate:      "Affiliate",
	}
}

// getValidChannelStrings returns a map of only valid Channel values.
func getValidChannelStrings() map[Channel]string {
	//nolint:exhaustive // ChannelUnknown is intentionally excluded as it's invalid
	return map[Channel]string{
		Ecommerce:  "Ecommerce",
		CallCenter: "CallCenter",
		Store:      "Store",
		Affiliate:  "Affiliate",
	}
}

// Validate checks if the Channel value is valid.
func (c Channel) Validate() error {
	if _, ok := getValidChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel", fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the human-readable name of the channel.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// ChannelFromString parses a channel from its string representation.
func ChannelFromString(value string) (Channel, error) {
	for c, str := range getValidChannelStrings() {
		if str == value {
			return c, nil
		}
	}
	return ChannelUnknown, errs.NewValueIsInvalidErrorWithCause(
		"channel",
		fmt.Errorf("%q is not a valid channel", value),
	)
}
