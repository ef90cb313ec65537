package market

import (
	"sync"

	"github.com/hyperledger-labs/cc-tools/errors"
)

// One non-reentrancy flag per transaction id, shared by every mutating
// operation. A cross-chaincode callback runs inside the same transaction, so
// an external token contract calling back into the marketplace trips the
// flag before it can touch state.
var (
	guardMtx sync.Mutex
	inFlight = make(map[string]bool)
)

// EnterGuard marks txID as having a mutating operation in flight. The nested
// attempt is rejected immediately; there is no blocking.
func EnterGuard(txID string) errors.ICCError {
	guardMtx.Lock()
	defer guardMtx.Unlock()
	if inFlight[txID] {
		return ErrReentrantCall()
	}
	inFlight[txID] = true
	return nil
}

// ExitGuard releases the flag. Must run on every exit path, including early
// failures.
func ExitGuard(txID string) {
	guardMtx.Lock()
	defer guardMtx.Unlock()
	delete(inFlight, txID)
}
