package token

import (
	"math/big"

	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/pkg/errors"
)

// Payment talks to the fungible payment-token chaincode that listings are
// priced in. The marketplace holds deposited and settled funds under its
// operator identity; the payment token trusts only this chaincode to move
// them.
type Payment struct {
	Chaincode string
	Channel   string
}

// Transfer moves amount between two accounts on the payment token. Used to
// pull deposits in and to pay withdrawals out; a failure aborts the whole
// marketplace transaction.
func (p Payment) Transfer(stub *sw.StubWrapper, from, to string, amount *big.Int) error {
	resp := stub.Stub.InvokeChaincode(p.Chaincode, [][]byte{
		[]byte("transfer"),
		[]byte(from),
		[]byte(to),
		[]byte(amount.String()),
	}, p.Channel)
	if resp.Status != shim.OK {
		return errors.Errorf("payment token %s: %s", p.Chaincode, resp.Message)
	}
	return nil
}
