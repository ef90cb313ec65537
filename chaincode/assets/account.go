package assets

import (
	"github.com/hyperledger-labs/cc-tools/assets"
)

// Account carries the two balance tables of the marketplace for one client
// identity: funds deposited to pay for purchases, and sale proceeds pending
// withdrawal. Entries appear on first credit and persist indefinitely.
var Account = assets.AssetType{
	Tag:         "account",
	Label:       "Marketplace Account",
	Description: "Per-identity deposit and proceeds balances",

	Props: []assets.AssetProp{
		{
			Tag:      "address",
			Label:    "Account Address",
			DataType: "string",
			Required: true,
			IsKey:    true,
		},
		{
			Tag:         "deposits",
			Label:       "Deposited Funds",
			Description: "Funds available to spend on purchases",
			DataType:    "uint256",
			Required:    true,
		},
		{
			Tag:         "proceeds",
			Label:       "Pending Proceeds",
			Description: "Sale proceeds awaiting withdrawal",
			DataType:    "uint256",
			Required:    true,
		},
	},
}
