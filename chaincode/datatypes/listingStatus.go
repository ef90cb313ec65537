package datatypes

import (
	"fmt"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"

	"github.com/atahabilder1/Royaltify/chaincode/market"
)

// listingStatus is the closed listing lifecycle enumeration.
var listingStatus = assets.DataType{
	AcceptedFormats: []string{"string"},
	Description:     "listing lifecycle status",
	Parse: func(data interface{}) (string, interface{}, errors.ICCError) {
		status, ok := data.(string)
		if !ok {
			return "", nil, errors.NewCCError("status must be a string", 400)
		}
		for _, s := range market.Statuses {
			if status == s {
				return status, status, nil
			}
		}
		return "", nil, errors.NewCCError(fmt.Sprintf("invalid listing status %q", status), 400)
	},
}
