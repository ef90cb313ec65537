package datatypes

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"
)

// uint256 holds monetary amounts as canonical decimal strings. float64 only
// carries 53 mantissa bits, so prices like 10^18-1 would silently lose
// precision as plain numbers.
var uint256 = assets.DataType{
	AcceptedFormats: []string{"string", "number"},
	Description:     "unsigned 256-bit integer encoded as a decimal string",
	Parse: func(data interface{}) (string, interface{}, errors.ICCError) {
		var raw string
		switch value := data.(type) {
		case string:
			raw = value
		case float64:
			if value != math.Trunc(value) {
				return "", nil, errors.NewCCError(fmt.Sprintf("value %v is not an integer", value), 400)
			}
			raw = strconv.FormatFloat(value, 'f', -1, 64)
		default:
			return "", nil, errors.NewCCError("uint256 property must be a decimal string", 400)
		}

		parsed, ok := new(big.Int).SetString(raw, 10)
		if !ok {
			return "", nil, errors.NewCCError(fmt.Sprintf("invalid uint256 value %q", raw), 400)
		}
		if parsed.Sign() < 0 {
			return "", nil, errors.NewCCError(fmt.Sprintf("uint256 value %q must not be negative", raw), 400)
		}
		if parsed.BitLen() > 256 {
			return "", nil, errors.NewCCError(fmt.Sprintf("value %q overflows 256 bits", raw), 400)
		}

		canonical := parsed.String()
		return canonical, canonical, nil
	},
}
