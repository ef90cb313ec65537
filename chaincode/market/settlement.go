package market

import (
	"math/big"
)

const (
	// MaxFeeBps caps the protocol fee at 5% of the sale price.
	MaxFeeBps = 500

	// BpsDenominator is the basis-point scale both the protocol fee and
	// external royalties are expressed in.
	BpsDenominator = 10000
)

// Distribution is the exact split of a sale price between seller, protocol
// fee recipient and royalty receiver. The three amounts always sum to the
// price.
type Distribution struct {
	SellerAmount    *big.Int
	FeeAmount       *big.Int
	RoyaltyAmount   *big.Int
	RoyaltyReceiver string
}

// ComputeDistribution splits price for a completed sale.
//
// The protocol fee is floor(price * feeBps / 10000); feeBps must already be
// validated against MaxFeeBps. The royalty comes from the external contract
// and is not trusted: a missing receiver, a non-positive amount, or an
// amount that together with the fee exceeds the price is treated like any
// other malformed royalty answer and dropped to zero, with the remainder
// going to the seller.
func ComputeDistribution(price *big.Int, feeBps int64, royaltyReceiver string, royaltyAmount *big.Int) Distribution {
	fee := new(big.Int).Mul(price, big.NewInt(feeBps))
	fee.Quo(fee, big.NewInt(BpsDenominator))

	royalty := new(big.Int)
	if royaltyAmount != nil {
		royalty.Set(royaltyAmount)
	}
	if royaltyReceiver == "" || royalty.Sign() <= 0 {
		royaltyReceiver = ""
		royalty.SetInt64(0)
	}

	remainder := new(big.Int).Sub(price, fee)
	if royalty.Cmp(remainder) > 0 {
		royaltyReceiver = ""
		royalty.SetInt64(0)
	}

	seller := new(big.Int).Sub(remainder, royalty)

	return Distribution{
		SellerAmount:    seller,
		FeeAmount:       fee,
		RoyaltyAmount:   royalty,
		RoyaltyReceiver: royaltyReceiver,
	}
}
