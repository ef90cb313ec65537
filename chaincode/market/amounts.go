package market

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/hyperledger-labs/cc-tools/errors"
)

// ParseAmount converts a uint256 property or argument back into a big
// integer. Stored amounts are canonical decimal strings; numbers are
// accepted for convenience as long as they are non-negative integers.
func ParseAmount(v interface{}) (*big.Int, errors.ICCError) {
	var raw string
	switch value := v.(type) {
	case string:
		raw = value
	case float64:
		if value != math.Trunc(value) {
			return nil, errors.NewCCError(fmt.Sprintf("amount %v is not an integer", value), 400)
		}
		raw = strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return nil, errors.NewCCError(fmt.Sprintf("amount has unexpected type %T", v), 500)
	}

	amount, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, errors.NewCCError(fmt.Sprintf("invalid amount %q", raw), 400)
	}
	if amount.Sign() < 0 {
		return nil, errors.NewCCError(fmt.Sprintf("amount %q is negative", raw), 400)
	}
	return amount, nil
}
