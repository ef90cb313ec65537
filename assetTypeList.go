package main

import (
	"github.com/hyperledger-labs/cc-tools/assets"

	marketAssets "github.com/atahabilder1/Royaltify/chaincode/assets"
)

var assetTypeList = []assets.AssetType{
	marketAssets.Listing,
	marketAssets.ListingSeq,
	marketAssets.Account,
	marketAssets.MarketConfig,
}
