package identity

import (
	"github.com/hyperledger-labs/cc-tools/errors"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
)

// CallerID returns the unique client identity of the transaction submitter.
// This string is the account address used across the listing and proceeds
// ledgers: sellers, buyers, royalty receivers and the administrator are all
// identified this way.
func CallerID(stub *sw.StubWrapper) (string, errors.ICCError) {
	id, err := cid.GetID(stub.Stub)
	if err != nil {
		return "", errors.WrapErrorWithStatus(err, "failed to resolve caller identity", 500)
	}
	return id, nil
}
