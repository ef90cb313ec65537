package assets

import (
	"github.com/hyperledger-labs/cc-tools/assets"
)

// ListingSeq is the monotonically increasing listing id counter. Ids are
// assigned once and never reused, even after a listing is sold or cancelled.
var ListingSeq = assets.AssetType{
	Tag:         "listingSeq",
	Label:       "Listing Sequence",
	Description: "Next listing identifier to assign",

	Props: []assets.AssetProp{
		{
			Tag:      "scope",
			Label:    "Sequence Scope",
			DataType: "string",
			Required: true,
			IsKey:    true,
		},
		{
			Tag:      "next",
			Label:    "Next Identifier",
			DataType: "number",
			Required: true,
		},
	},
}
