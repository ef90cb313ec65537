package testutils

import (
	"fmt"
	"testing"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// Chaincode names and the marketplace operator identity used across tests.
const (
	NFTChaincode     = "nft"
	PaymentChaincode = "paytoken"
	Operator         = "royaltify-market"
)

// Harness bundles a mock ledger, a set of client identities and fakes for
// the two external contracts. Run applies a routine with Fabric's
// all-or-nothing semantics: a failing transaction leaves no writes behind.
type Harness struct {
	Stub *MockStub

	Admin   *Identity
	Seller  *Identity
	Buyer   *Identity
	Creator *Identity

	NFT *NFTFake
	Pay *PaymentFake

	txSeq int
}

func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		Stub:    NewMockStub(),
		Admin:   NewIdentity(t, "admin@org.example.com"),
		Seller:  NewIdentity(t, "seller@org.example.com"),
		Buyer:   NewIdentity(t, "buyer@org.example.com"),
		Creator: NewIdentity(t, "creator@org.example.com"),
		NFT: &NFTFake{
			Supports:  map[string]bool{"0x80ac58cd": true},
			Owners:    make(map[string]string),
			Approvals: map[string]bool{Operator: true},
		},
		Pay: &PaymentFake{},
	}

	h.Stub.InvokeHandler = func(chaincodeName string, args [][]byte, channel string) peer.Response {
		switch chaincodeName {
		case NFTChaincode:
			return h.NFT.Handle(args)
		case PaymentChaincode:
			return h.Pay.Handle(args)
		}
		return shim.Error(fmt.Sprintf("chaincode %s not found", chaincodeName))
	}
	return h
}

// Run executes routine as the given identity under a fresh transaction id.
// On error every write of the attempt is rolled back, the way a failed
// Fabric transaction discards its write set.
func (h *Harness) Run(as *Identity, routine func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError), req map[string]interface{}) ([]byte, errors.ICCError) {
	h.txSeq++
	h.Stub.TxID = fmt.Sprintf("tx-%04d", h.txSeq)
	h.Stub.Creator = as.Creator
	h.Stub.Events = make(map[string][]byte)

	stateCopy := make(map[string][]byte, len(h.Stub.State))
	for k, v := range h.Stub.State {
		stateCopy[k] = v
	}
	keysCopy := make([]string, 0, h.Stub.Keys.Len())
	for elem := h.Stub.Keys.Front(); elem != nil; elem = elem.Next() {
		keysCopy = append(keysCopy, elem.Value.(string))
	}

	payload, cerr := routine(&sw.StubWrapper{Stub: h.Stub}, req)
	if cerr != nil {
		h.Stub.State = stateCopy
		h.Stub.Keys.Init()
		for _, k := range keysCopy {
			h.Stub.Keys.PushBack(k)
		}
		h.Stub.Events = make(map[string][]byte)
	}
	return payload, cerr
}

// seed writes an asset map straight to the mock ledger through the real
// cc-tools key derivation, bypassing the transaction layer.
func (h *Harness) seed(t *testing.T, assetMap map[string]interface{}) {
	t.Helper()

	// cc-tools' Put requires a tx creator to resolve the writing MSP even
	// outside the transaction layer; all harness identities share one MSP,
	// so which one is set here is not observable in the seeded state.
	prevCreator := h.Stub.Creator
	h.Stub.Creator = h.Admin.Creator
	defer func() { h.Stub.Creator = prevCreator }()

	wrapper := &sw.StubWrapper{Stub: h.Stub}
	asset, cerr := assets.NewAsset(assetMap)
	if cerr != nil {
		t.Fatalf("failed to build %v fixture: %v", assetMap["@assetType"], cerr)
	}
	if _, cerr = asset.Put(wrapper); cerr != nil {
		t.Fatalf("failed to seed %v fixture: %v", assetMap["@assetType"], cerr)
	}
}

// SeedConfig installs the marketplace configuration singleton with the
// harness admin as administrator.
func (h *Harness) SeedConfig(t *testing.T, feeBps float64, feeRecipient string) {
	h.seed(t, map[string]interface{}{
		"@assetType":   "marketConfig",
		"configKey":    "marketplace",
		"feeBps":       feeBps,
		"feeRecipient": feeRecipient,
		"admin":        h.Admin.ID,
		"pendingAdmin": "",
		"paymentToken": PaymentChaincode,
		"operator":     Operator,
	})
}

// SeedListing installs a listing record and advances the id sequence past it.
func (h *Harness) SeedListing(t *testing.T, id float64, seller *Identity, assetID, price, status string) {
	h.seed(t, map[string]interface{}{
		"@assetType":    "listing",
		"listingId":     id,
		"seller":        seller.ID,
		"assetContract": NFTChaincode,
		"assetId":       assetID,
		"price":         price,
		"status":        status,
	})
	h.seed(t, map[string]interface{}{
		"@assetType": "listingSeq",
		"scope":      "listing",
		"next":       id + 1,
	})
}

// SeedAccount installs balance tables for an identity.
func (h *Harness) SeedAccount(t *testing.T, address, deposits, proceeds string) {
	h.seed(t, map[string]interface{}{
		"@assetType": "account",
		"address":    address,
		"deposits":   deposits,
		"proceeds":   proceeds,
	})
}
