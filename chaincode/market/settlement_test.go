package market

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad test amount " + s)
	}
	return v
}

func TestComputeDistribution_SplitsPriceExactly(t *testing.T) {
	// 1,000,000 at a 1% fee with a 50,000 royalty
	dist := ComputeDistribution(amt("1000000"), 100, "creator", amt("50000"))

	assert.Equal(t, "10000", dist.FeeAmount.String())
	assert.Equal(t, "50000", dist.RoyaltyAmount.String())
	assert.Equal(t, "940000", dist.SellerAmount.String())
	assert.Equal(t, "creator", dist.RoyaltyReceiver)
}

func TestComputeDistribution_NoFeeNoRoyalty(t *testing.T) {
	dist := ComputeDistribution(amt("12345"), 0, "", nil)

	assert.Equal(t, "0", dist.FeeAmount.String())
	assert.Equal(t, "0", dist.RoyaltyAmount.String())
	assert.Equal(t, "12345", dist.SellerAmount.String())
	assert.Equal(t, "", dist.RoyaltyReceiver)
}

func TestComputeDistribution_FeeRoundsDown(t *testing.T) {
	// 9999 at 1% is 99.99, which must floor to 99
	dist := ComputeDistribution(amt("9999"), 100, "", nil)

	assert.Equal(t, "99", dist.FeeAmount.String())
	assert.Equal(t, "9900", dist.SellerAmount.String())
}

func TestComputeDistribution_OversizedRoyaltyDropped(t *testing.T) {
	// Royalty plus fee would exceed the price; the claim is discarded.
	dist := ComputeDistribution(amt("1000000"), 100, "creator", amt("999999"))

	assert.Equal(t, "0", dist.RoyaltyAmount.String())
	assert.Equal(t, "", dist.RoyaltyReceiver)
	assert.Equal(t, "990000", dist.SellerAmount.String())
}

func TestComputeDistribution_RoyaltyWithoutReceiverDropped(t *testing.T) {
	dist := ComputeDistribution(amt("1000000"), 0, "", amt("50000"))

	assert.Equal(t, "0", dist.RoyaltyAmount.String())
	assert.Equal(t, "1000000", dist.SellerAmount.String())
}

func TestComputeDistribution_NegativeRoyaltyDropped(t *testing.T) {
	dist := ComputeDistribution(amt("1000000"), 0, "creator", big.NewInt(-1))

	assert.Equal(t, "0", dist.RoyaltyAmount.String())
	assert.Equal(t, "", dist.RoyaltyReceiver)
	assert.Equal(t, "1000000", dist.SellerAmount.String())
}

func TestComputeDistribution_WeiScaleAmounts(t *testing.T) {
	price := amt("1000000000000000000") // 10^18
	dist := ComputeDistribution(price, 250, "creator", amt("100000000000000000"))

	assert.Equal(t, "25000000000000000", dist.FeeAmount.String())
	assert.Equal(t, "100000000000000000", dist.RoyaltyAmount.String())
	assert.Equal(t, "875000000000000000", dist.SellerAmount.String())

	total := new(big.Int).Add(dist.SellerAmount, dist.FeeAmount)
	total.Add(total, dist.RoyaltyAmount)
	assert.Equal(t, price.String(), total.String())
}

func TestParseAmount(t *testing.T) {
	v, cerr := ParseAmount("1000000000000000000")
	require.Nil(t, cerr)
	assert.Equal(t, "1000000000000000000", v.String())

	v, cerr = ParseAmount(float64(42))
	require.Nil(t, cerr)
	assert.Equal(t, "42", v.String())

	_, cerr = ParseAmount(float64(1.5))
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())

	_, cerr = ParseAmount("-1")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())

	_, cerr = ParseAmount("not a number")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())

	_, cerr = ParseAmount(true)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(500), cerr.Status())
}
