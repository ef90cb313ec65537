package assets

import (
	"github.com/hyperledger-labs/cc-tools/assets"
)

// Listing is a seller's standing offer to sell one NFT at a fixed price.
// Records are retained forever for audit reads; Sold and Cancelled are
// terminal states.
var Listing = assets.AssetType{
	Tag:         "listing",
	Label:       "NFT Listing",
	Description: "Fixed-price sale offer for one NFT",

	Props: []assets.AssetProp{
		{
			Tag:      "listingId",
			Label:    "Listing ID",
			DataType: "number",
			Required: true,
			IsKey:    true, // sequential, never reused
		},
		{
			Tag:      "seller",
			Label:    "Seller Address",
			DataType: "string",
			Required: true,
		},
		{
			Tag:         "assetContract",
			Label:       "Asset Contract",
			Description: "Chaincode name of the external NFT contract",
			DataType:    "string",
			Required:    true,
		},
		{
			Tag:      "assetId",
			Label:    "Asset ID",
			DataType: "string",
			Required: true,
		},
		{
			Tag:         "price",
			Label:       "Price",
			Description: "Sale price in the smallest currency unit",
			DataType:    "uint256",
			Required:    true,
		},
		{
			Tag:      "status",
			Label:    "Listing Status",
			DataType: "listingStatus",
			Required: true,
		},
		{
			Tag:      "createdAt",
			Label:    "Creation Timestamp",
			DataType: "datetime",
			Required: false,
		},
	},
}
