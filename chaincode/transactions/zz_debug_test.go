package transactions

import (
	"fmt"
	"testing"

	"github.com/atahabilder1/Royaltify/chaincode/testutils"
)

func TestZZDebugEvent(t *testing.T) {
	h := testutils.NewHarness(t)
	h.SeedConfig(t, 100, h.Admin.ID)

	payload, cerr := h.Run(h.Admin, SetProtocolFee.Routine, map[string]interface{}{
		"feeBps": float64(250),
	})
	fmt.Printf("cerr: %v\npayload: %s\nEvents: %v\n", cerr, payload, h.Stub.Events)
}
