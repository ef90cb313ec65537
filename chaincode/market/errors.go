package market

import (
	"fmt"

	"github.com/hyperledger-labs/cc-tools/errors"
)

// Named failure conditions of the marketplace. Every error carries a stable
// message and status so callers can branch on the specific cause instead of
// an opaque failure.

func ErrZeroPrice() errors.ICCError {
	return errors.NewCCError("price must be greater than zero", 400)
}

func ErrZeroAmount() errors.ICCError {
	return errors.NewCCError("amount must be greater than zero", 400)
}

func ErrEmptyInput(field string) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("%s must not be empty", field), 400)
}

func ErrEmptyAddress() errors.ICCError {
	return errors.NewCCError("address must not be empty", 400)
}

func ErrListingNotFound(id int64) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("listing %d not found", id), 404)
}

func ErrListingNotActive(id int64) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("listing %d is not active", id), 409)
}

func ErrNotSeller() errors.ICCError {
	return errors.NewCCError("caller is not the listing seller", 403)
}

func ErrNotAdmin() errors.ICCError {
	return errors.NewCCError("caller is not the marketplace administrator", 403)
}

func ErrNotPendingAdmin() errors.ICCError {
	return errors.NewCCError("caller is not the nominated administrator", 403)
}

func ErrNotAssetHolder() errors.ICCError {
	return errors.NewCCError("caller does not hold the asset", 403)
}

func ErrOperatorNotAuthorized() errors.ICCError {
	return errors.NewCCError("marketplace is not authorized to transfer the asset", 403)
}

func ErrCannotBuyOwnListing() errors.ICCError {
	return errors.NewCCError("seller cannot buy their own listing", 403)
}

func ErrIncorrectPayment(sent, price string) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("payment of %s does not match listing price %s", sent, price), 400)
}

func ErrInsufficientFunds(have, need string) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("deposited funds %s cannot cover payment %s", have, need), 402)
}

func ErrNoProceeds() errors.ICCError {
	return errors.NewCCError("no proceeds to withdraw", 400)
}

func ErrFeeAboveCap(rate int64) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("fee of %d basis points exceeds the cap of %d", rate, MaxFeeBps), 400)
}

func ErrAssetNotSupported(contract string) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("contract %s does not support the required asset interface", contract), 422)
}

func ErrTransferFailed(cause error) errors.ICCError {
	return errors.NewCCError(fmt.Sprintf("external transfer failed: %v", cause), 502)
}

func ErrReentrantCall() errors.ICCError {
	return errors.NewCCError("reentrant call rejected", 409)
}
