package token

import (
	"encoding/json"
	"math/big"

	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

// Capability identifiers the marketplace probes external contracts for,
// matching the ERC-165 registry ids of the ownership/transfer and royalty
// interfaces.
const (
	InterfaceNFT       = "0x80ac58cd"
	InterfaceRoyalties = "0x2a55205a"
)

// Client talks to an external NFT chaincode on the same channel. Nothing the
// contract answers is trusted: status codes and payloads are validated on
// every call, and the optional royalty capability can never surface a hard
// error.
type Client struct {
	Chaincode string
	Channel   string
}

func (c Client) invoke(stub *sw.StubWrapper, args ...string) ([]byte, error) {
	raw := make([][]byte, len(args))
	for i, a := range args {
		raw[i] = []byte(a)
	}
	resp := stub.Stub.InvokeChaincode(c.Chaincode, raw, c.Channel)
	if resp.Status != shim.OK {
		return nil, errors.Errorf("chaincode %s: %s", c.Chaincode, resp.Message)
	}
	return resp.Payload, nil
}

// SupportsInterface reports whether the contract advertises the capability.
// Every failure mode of the query counts as "unsupported": the verifier
// fails closed so a reverting or malformed contract cannot get past it.
func (c Client) SupportsInterface(stub *sw.StubWrapper, ifaceID string) bool {
	payload, err := c.invoke(stub, "supportsInterface", ifaceID)
	if err != nil {
		return false
	}
	var supported bool
	if err := json.Unmarshal(payload, &supported); err != nil {
		return false
	}
	return supported
}

// OwnerOf returns the current holder of assetID.
func (c Client) OwnerOf(stub *sw.StubWrapper, assetID string) (string, error) {
	payload, err := c.invoke(stub, "ownerOf", assetID)
	if err != nil {
		return "", err
	}
	var owner string
	if err := json.Unmarshal(payload, &owner); err != nil {
		return "", errors.Wrap(err, "malformed ownerOf response")
	}
	if owner == "" {
		return "", errors.New("ownerOf returned an empty holder")
	}
	return owner, nil
}

// IsApprovedFor reports whether operator may move owner's asset, via either
// a per-asset approval or a blanket operator authorization.
func (c Client) IsApprovedFor(stub *sw.StubWrapper, owner, operator, assetID string) (bool, error) {
	payload, err := c.invoke(stub, "isApprovedFor", owner, operator, assetID)
	if err != nil {
		return false, err
	}
	var approved bool
	if err := json.Unmarshal(payload, &approved); err != nil {
		return false, errors.Wrap(err, "malformed isApprovedFor response")
	}
	return approved, nil
}

// Transfer moves assetID from holder to recipient. The token contract must
// abort if the holder or the authorization is stale at execution time, and
// that failure is surfaced as a hard error to the caller.
func (c Client) Transfer(stub *sw.StubWrapper, from, to, assetID string) error {
	_, err := c.invoke(stub, "transferFrom", from, to, assetID)
	return err
}

type royaltyInfo struct {
	Receiver string `json:"receiver"`
	Amount   string `json:"amount"`
}

// ResolveRoyalty asks the contract who is owed a royalty on a sale of
// assetID at salePrice. Contracts without the royalty capability, reverting
// contracts and garbage answers all resolve to no royalty: the lookup is
// advisory and must never be able to block a sale. The returned amount is
// not bounds-checked here; the settlement math applies its own policy.
func (c Client) ResolveRoyalty(stub *sw.StubWrapper, assetID string, salePrice *big.Int) (string, *big.Int) {
	if !c.SupportsInterface(stub, InterfaceRoyalties) {
		return "", big.NewInt(0)
	}
	payload, err := c.invoke(stub, "royaltyInfo", assetID, salePrice.String())
	if err != nil {
		return "", big.NewInt(0)
	}
	var info royaltyInfo
	if err := json.Unmarshal(payload, &info); err != nil {
		return "", big.NewInt(0)
	}
	amount, ok := new(big.Int).SetString(info.Amount, 10)
	if !ok || amount.Sign() < 0 || info.Receiver == "" {
		return "", big.NewInt(0)
	}
	return info.Receiver, amount
}
