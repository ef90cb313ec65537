package datatypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUint256_ParsesCanonicalString(t *testing.T) {
	key, value, cerr := uint256.Parse("1000000000000000000")
	require.Nil(t, cerr)
	assert.Equal(t, "1000000000000000000", key)
	assert.Equal(t, "1000000000000000000", value)
}

func TestUint256_CanonicalizesLeadingZeros(t *testing.T) {
	_, value, cerr := uint256.Parse("007")
	require.Nil(t, cerr)
	assert.Equal(t, "7", value)
}

func TestUint256_AcceptsIntegralNumbers(t *testing.T) {
	_, value, cerr := uint256.Parse(float64(1000000))
	require.Nil(t, cerr)
	assert.Equal(t, "1000000", value)
}

func TestUint256_RejectsFractions(t *testing.T) {
	_, _, cerr := uint256.Parse(float64(1.25))
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestUint256_RejectsNegatives(t *testing.T) {
	_, _, cerr := uint256.Parse("-5")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestUint256_RejectsOverflow(t *testing.T) {
	// 2^256 needs 257 bits
	_, _, cerr := uint256.Parse("115792089237316195423570985008687907853269984665640564039457584007913129639936")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestUint256_RejectsGarbage(t *testing.T) {
	_, _, cerr := uint256.Parse("0x1234")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())

	_, _, cerr = uint256.Parse(true)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestListingStatus_AcceptsKnownStatuses(t *testing.T) {
	for _, status := range []string{"Active", "Sold", "Cancelled"} {
		_, value, cerr := listingStatus.Parse(status)
		require.Nil(t, cerr, "status %s should parse", status)
		assert.Equal(t, status, value)
	}
}

func TestListingStatus_RejectsUnknownStatus(t *testing.T) {
	_, _, cerr := listingStatus.Parse("Expired")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}
