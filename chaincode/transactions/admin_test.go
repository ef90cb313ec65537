package transactions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atahabilder1/Royaltify/chaincode/testutils"
)

func marketConfig(t *testing.T, h *testutils.Harness) map[string]interface{} {
	t.Helper()
	payload, cerr := h.Run(h.Admin, GetMarketConfig.Routine, nil)
	require.Nil(t, cerr)
	return decode(t, payload)
}

func TestSetProtocolFee_WithinCap(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(250),
	})
	require.Nil(t, cerr)
	assert.Equal(t, float64(250), marketConfig(t, h)["feeBps"])
	assert.Contains(t, h.Stub.Events, "protocolFeeChanged")

	// The cap itself is allowed.
	_, cerr = h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(500),
	})
	require.Nil(t, cerr)
}

func TestSetProtocolFee_RejectsAboveCap(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(501),
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())

	// The stored rate did not move.
	assert.Equal(t, float64(100), marketConfig(t, h)["feeBps"])
}

func TestSetProtocolFee_RejectsFraction(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(10.5),
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestSetProtocolFee_AdminOnly(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Seller, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(0),
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())
}

func TestSetFeeRecipient(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Admin, SetFeeRecipient.Routine, map[string]interface{}{
		"feeRecipient": h.Creator.ID,
	})
	require.Nil(t, cerr)
	assert.Equal(t, h.Creator.ID, marketConfig(t, h)["feeRecipient"])
	assert.Contains(t, h.Stub.Events, "feeRecipientChanged")

	_, cerr = h.Run(h.Admin, SetFeeRecipient.Routine, map[string]interface{}{
		"feeRecipient": "",
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(400), cerr.Status())
}

func TestAdminHandoff_TwoPhase(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	// Nomination alone changes nothing about who is in charge.
	_, cerr := h.Run(h.Admin, NominateAdmin.Routine, map[string]interface{}{
		"pendingAdmin": h.Seller.ID,
	})
	require.Nil(t, cerr)
	config := marketConfig(t, h)
	assert.Equal(t, h.Admin.ID, config["admin"])
	assert.Equal(t, h.Seller.ID, config["pendingAdmin"])
	assert.Contains(t, h.Stub.Events, "adminNominated")

	// Only the nominee may accept.
	_, cerr = h.Run(h.Buyer, AcceptAdmin.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())

	_, cerr = h.Run(h.Seller, AcceptAdmin.Routine, nil)
	require.Nil(t, cerr)
	config = marketConfig(t, h)
	assert.Equal(t, h.Seller.ID, config["admin"])
	assert.Equal(t, "", config["pendingAdmin"])
	assert.Contains(t, h.Stub.Events, "adminChanged")

	// The former administrator lost their powers.
	_, cerr = h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(0),
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())
}

func TestNominateAdmin_AdminOnly(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Seller, NominateAdmin.Routine, map[string]interface{}{
		"pendingAdmin": h.Seller.ID,
	})
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())
}

func TestAcceptAdmin_WithoutNomination(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Seller, AcceptAdmin.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())
}

func TestNominateAdmin_Replaceable(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	_, cerr := h.Run(h.Admin, NominateAdmin.Routine, map[string]interface{}{
		"pendingAdmin": h.Seller.ID,
	})
	require.Nil(t, cerr)
	_, cerr = h.Run(h.Admin, NominateAdmin.Routine, map[string]interface{}{
		"pendingAdmin": h.Buyer.ID,
	})
	require.Nil(t, cerr)

	// The first nominee can no longer accept.
	_, cerr = h.Run(h.Seller, AcceptAdmin.Routine, nil)
	require.NotNil(t, cerr)
	assert.Equal(t, int32(403), cerr.Status())

	_, cerr = h.Run(h.Buyer, AcceptAdmin.Routine, nil)
	require.Nil(t, cerr)
	assert.Equal(t, h.Buyer.ID, marketConfig(t, h)["admin"])
}
