package testutils

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// NFTFake stands in for an external NFT chaincode. Its failure switches let
// tests exercise reverting, lying and misbehaving contracts without a second
// chaincode process.
type NFTFake struct {
	Supports  map[string]bool   // interface id -> advertised
	Owners    map[string]string // asset id -> holder identity
	Approvals map[string]bool   // operator identity -> blanket approval

	RoyaltyReceiver string
	RoyaltyBps      int64
	RoyaltyAmount   string // overrides RoyaltyBps when set
	RoyaltyFails    bool
	RoyaltyGarbage  bool

	TransferFails bool
	TransferHook  func() // runs before the transfer, for reentrancy tests
	Transfers     []NFTTransfer
}

type NFTTransfer struct {
	From    string
	To      string
	AssetID string
}

// Handle dispatches an invocation the way the real contract would.
func (f *NFTFake) Handle(args [][]byte) peer.Response {
	if len(args) == 0 {
		return shim.Error("missing function name")
	}
	params := make([]string, 0, len(args)-1)
	for _, a := range args[1:] {
		params = append(params, string(a))
	}

	switch string(args[0]) {
	case "supportsInterface":
		payload, _ := json.Marshal(f.Supports[params[0]])
		return shim.Success(payload)

	case "ownerOf":
		owner, ok := f.Owners[params[0]]
		if !ok {
			return shim.Error("unknown asset")
		}
		payload, _ := json.Marshal(owner)
		return shim.Success(payload)

	case "isApprovedFor":
		payload, _ := json.Marshal(f.Approvals[params[1]])
		return shim.Success(payload)

	case "transferFrom":
		if f.TransferHook != nil {
			f.TransferHook()
		}
		if f.TransferFails {
			return shim.Error("transfer reverted")
		}
		from, to, assetID := params[0], params[1], params[2]
		if f.Owners[assetID] != from {
			return shim.Error("sender no longer holds the asset")
		}
		f.Owners[assetID] = to
		f.Transfers = append(f.Transfers, NFTTransfer{From: from, To: to, AssetID: assetID})
		return shim.Success(nil)

	case "royaltyInfo":
		if f.RoyaltyFails {
			return shim.Error("royalty lookup reverted")
		}
		if f.RoyaltyGarbage {
			return shim.Success([]byte("certainly not json"))
		}
		amount := f.RoyaltyAmount
		if amount == "" {
			price, ok := new(big.Int).SetString(params[1], 10)
			if !ok {
				return shim.Error("bad sale price")
			}
			amount = new(big.Int).Quo(
				new(big.Int).Mul(price, big.NewInt(f.RoyaltyBps)),
				big.NewInt(10000),
			).String()
		}
		payload, _ := json.Marshal(map[string]string{
			"receiver": f.RoyaltyReceiver,
			"amount":   amount,
		})
		return shim.Success(payload)
	}
	return shim.Error(fmt.Sprintf("unknown function %s", string(args[0])))
}

// PaymentFake stands in for the payment token chaincode.
type PaymentFake struct {
	Failing   bool
	Hook      func() // runs before the transfer, for reentrancy tests
	Transfers []PaymentTransfer
}

type PaymentTransfer struct {
	From   string
	To     string
	Amount string
}

func (f *PaymentFake) Handle(args [][]byte) peer.Response {
	if len(args) == 0 {
		return shim.Error("missing function name")
	}
	if string(args[0]) != "transfer" {
		return shim.Error(fmt.Sprintf("unknown function %s", string(args[0])))
	}
	if f.Hook != nil {
		f.Hook()
	}
	if f.Failing {
		return shim.Error("token transfer reverted")
	}
	f.Transfers = append(f.Transfers, PaymentTransfer{
		From:   string(args[1]),
		To:     string(args[2]),
		Amount: string(args[3]),
	})
	return shim.Success(nil)
}
