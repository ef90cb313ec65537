package transactions

import (
	"testing"

	"github.com/hyperledger-labs/cc-tools/errors"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atahabilder1/Royaltify/chaincode/testutils"
)

func TestDepositFunds_CreditsBalance(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	payload, cerr := h.Run(h.Buyer, DepositFunds.Routine, map[string]interface{}{
		"amount": "500000",
	})
	require.Nil(t, cerr)
	assert.Equal(t, "500000", decode(t, payload)["deposits"])
	assert.Contains(t, h.Stub.Events, "fundsDeposited")

	// The tokens moved from the client to the marketplace operator.
	require.Len(t, h.Pay.Transfers, 1)
	assert.Equal(t, h.Buyer.ID, h.Pay.Transfers[0].From)
	assert.Equal(t, testutils.Operator, h.Pay.Transfers[0].To)
	assert.Equal(t, "500000", h.Pay.Transfers[0].Amount)

	// Deposits accumulate.
	payload, cerr = h.Run(h.Buyer, DepositFunds.Routine, map[string]interface{}{
		"amount": "250000",
	})
	require.Nil(t, cerr)
	assert.Equal(t, "750000", decode(t, payload)["deposits"])
}

func TestDepositFunds_RejectsZero(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Buyer, DepositFunds.Routine, map[string]interface{}{
		"amount": "0",
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
	assert.Empty(t, h.Pay.Transfers)
}

func TestDepositFunds_TokenFailureLeavesNoBalance(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)
	h.Pay.Failing = true

	_, cerr := h.Run(h.Buyer, DepositFunds.Routine, map[string]interface{}{
		"amount": "500000",
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(502), cerr.Status())

	payload, cerr := h.Run(h.Buyer, GetDeposit.Routine, map[string]interface{}{
		"address": h.Buyer.ID,
	})
	require.Nil(t, cerr)
	assert.Equal(t, "0", decode(t, payload)["deposits"])
}

func TestWithdrawProceeds_PaysOutFullBalance(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)
	h.SeedAccount(t, h.Seller.ID, "123", "940000")

	payload, cerr := h.Run(h.Seller, WithdrawProceeds.Routine, nil)
	require.Nil(t, cerr)
	assert.Equal(t, "940000", decode(t, payload)["amount"])
	assert.Contains(t, h.Stub.Events, "proceedsWithdrawn")

	require.Len(t, h.Pay.Transfers, 1)
	assert.Equal(t, testutils.Operator, h.Pay.Transfers[0].From)
	assert.Equal(t, h.Seller.ID, h.Pay.Transfers[0].To)
	assert.Equal(t, "940000", h.Pay.Transfers[0].Amount)

	// Proceeds are gone, deposits stay.
	assert.Equal(t, "0", proceedsOf(t, h, h.Seller.ID))
	assert.Equal(t, "123", depositsOf(t, h, h.Seller.ID))

	// A second withdrawal has nothing to pay.
	_, cerr = h.Run(h.Seller, WithdrawProceeds.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestWithdrawProceeds_NothingToWithdraw(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Seller, WithdrawProceeds.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestWithdrawProceeds_PayoutFailureRollsBack(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)
	h.SeedAccount(t, h.Seller.ID, "0", "940000")
	h.Pay.Failing = true

	_, cerr := h.Run(h.Seller, WithdrawProceeds.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(502), cerr.Status())

	// The zeroing was rolled back with the failed payout.
	assert.Equal(t, "940000", proceedsOf(t, h, h.Seller.ID))
}

func TestWithdrawProceeds_ReentrantWithdrawRejected(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)
	h.SeedAccount(t, h.Seller.ID, "0", "940000")

	var nested errors.ICCError
	h.Pay.Hook = func() {
		_, nested = WithdrawProceeds.Routine(&sw.StubWrapper{Stub: h.Stub}, nil)
	}

	_, cerr := h.Run(h.Seller, WithdrawProceeds.Routine, nil)
	require.Nil(t, cerr)
	require.NotNil(t, nested)
	assert.Equal(t, int32(409), nested.Status())

	// Exactly one payout went out.
	assert.Len(t, h.Pay.Transfers, 1)
}

func TestGetProceeds_UnknownAccountIsZero(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	payload, cerr := h.Run(h.Buyer, GetProceeds.Routine, map[string]interface{}{
		"address": h.Creator.ID,
	})
	require.Nil(t, cerr)
	assert.Equal(t, "0", decode(t, payload)["proceeds"])

	_, cerr = h.Run(h.Buyer, GetProceeds.Routine, map[string]interface{}{
		"address": "",
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}
