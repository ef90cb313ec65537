package datatypes

import (
	"github.com/hyperledger-labs/cc-tools/assets"
)

// CustomDataTypes is registered with cc-tools at startup, before the asset
// list is initialized.
var CustomDataTypes = map[string]assets.DataType{
	"uint256":       uint256,
	"listingStatus": listingStatus,
}
