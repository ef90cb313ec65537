package assets

import (
	"github.com/hyperledger-labs/cc-tools/assets"
)

// MarketConfig is the single process-wide marketplace configuration record,
// mutable only through the admin transactions. It is injected into the
// settlement path by lookup, never held as ambient state.
var MarketConfig = assets.AssetType{
	Tag:         "marketConfig",
	Label:       "Marketplace Configuration",
	Description: "Protocol fee, recipients and administrator identity",

	Props: []assets.AssetProp{
		{
			Tag:      "configKey",
			Label:    "Configuration Key",
			DataType: "string",
			Required: true,
			IsKey:    true, // always "marketplace"
		},
		{
			Tag:         "feeBps",
			Label:       "Protocol Fee",
			Description: "Protocol fee in basis points, capped at 500",
			DataType:    "number",
			Required:    true,
		},
		{
			Tag:      "feeRecipient",
			Label:    "Fee Recipient",
			DataType: "string",
			Required: true,
		},
		{
			Tag:      "admin",
			Label:    "Administrator",
			DataType: "string",
			Required: true,
		},
		{
			Tag:         "pendingAdmin",
			Label:       "Nominated Administrator",
			Description: "Set by nomination, cleared on acceptance",
			DataType:    "string",
			Required:    false,
		},
		{
			Tag:         "paymentToken",
			Label:       "Payment Token Chaincode",
			DataType:    "string",
			Required:    true,
		},
		{
			Tag:         "operator",
			Label:       "Marketplace Operator Identity",
			Description: "Identity the marketplace holds token approvals and funds under",
			DataType:    "string",
			Required:    true,
		},
	},
}
