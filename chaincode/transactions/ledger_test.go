package transactions

import (
	"testing"

	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atahabilder1/Royaltify/chaincode/testutils"
)

func TestBootstrapMarket_InstallsSingleton(t *testing.T) {
	h := testutils.NewHarness(t)
	h.Stub.Creator = h.Admin.Creator

	cerr := BootstrapMarket(&sw.StubWrapper{Stub: h.Stub}, testutils.PaymentChaincode, testutils.Operator)
	require.Nil(t, cerr)

	config := marketConfig(t, h)
	assert.Equal(t, h.Admin.ID, config["admin"])
	assert.Equal(t, h.Admin.ID, config["feeRecipient"])
	assert.Equal(t, float64(0), config["feeBps"])
	assert.Equal(t, testutils.PaymentChaincode, config["paymentToken"])
	assert.Equal(t, testutils.Operator, config["operator"])
}

func TestBootstrapMarket_SecondCallIsNoOp(t *testing.T) {
	h := testutils.NewHarness(t)
	h.Stub.Creator = h.Admin.Creator
	require.Nil(t, BootstrapMarket(&sw.StubWrapper{Stub: h.Stub}, testutils.PaymentChaincode, testutils.Operator))

	// A later upgrade invoked by a different identity must not seize control.
	h.Stub.Creator = h.Seller.Creator
	require.Nil(t, BootstrapMarket(&sw.StubWrapper{Stub: h.Stub}, "other-token", "other-operator"))

	config := marketConfig(t, h)
	assert.Equal(t, h.Admin.ID, config["admin"])
	assert.Equal(t, testutils.PaymentChaincode, config["paymentToken"])
}
