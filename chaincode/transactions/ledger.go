package transactions

import (
	"math/big"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"

	"github.com/atahabilder1/Royaltify/chaincode/identity"
	"github.com/atahabilder1/Royaltify/chaincode/market"
)

const (
	configKey = "marketplace"
	seqScope  = "listing"

	// maxPageSize bounds the work a single active-listing scan may do.
	maxPageSize = 100
)

// getListing fetches a listing record, mapping a missing record to the
// marketplace's named not-found error. A listing that exists but is no
// longer active is returned normally; "never created" and "terminal" are
// different answers.
func getListing(stub *sw.StubWrapper, id float64) (*assets.Asset, errors.ICCError) {
	key, cerr := assets.NewKey(map[string]interface{}{
		"@assetType": "listing",
		"listingId":  id,
	})
	if cerr != nil {
		return nil, errors.WrapError(cerr, "failed to build listing key")
	}

	listing, cerr := key.Get(stub)
	if cerr != nil {
		if cerr.Status() == 404 {
			return nil, market.ErrListingNotFound(int64(id))
		}
		return nil, errors.WrapErrorWithStatus(cerr, "error reading listing", cerr.Status())
	}
	return listing, nil
}

// saveListing rewrites the full listing record with a new price and status,
// preserving identifier, parties and timestamps.
func saveListing(stub *sw.StubWrapper, listing *assets.Asset, price, status string) (assets.Asset, errors.ICCError) {
	listingMap := make(map[string]interface{})
	listingMap["@assetType"] = "listing"
	listingMap["@key"] = listing.GetProp("@key")
	listingMap["listingId"] = listing.GetProp("listingId")
	listingMap["seller"] = listing.GetProp("seller")
	listingMap["assetContract"] = listing.GetProp("assetContract")
	listingMap["assetId"] = listing.GetProp("assetId")
	listingMap["price"] = price
	listingMap["status"] = status
	listingMap["createdAt"] = listing.GetProp("createdAt")

	updated, cerr := assets.NewAsset(listingMap)
	if cerr != nil {
		return nil, errors.WrapError(cerr, "failed to update listing")
	}

	_, cerr = updated.Put(stub)
	if cerr != nil {
		return nil, errors.WrapErrorWithStatus(cerr, "error saving listing", cerr.Status())
	}
	return updated, nil
}

// listingCount returns how many listing ids have been assigned so far.
func listingCount(stub *sw.StubWrapper) (float64, errors.ICCError) {
	key, cerr := assets.NewKey(map[string]interface{}{
		"@assetType": "listingSeq",
		"scope":      seqScope,
	})
	if cerr != nil {
		return 0, errors.WrapError(cerr, "failed to build sequence key")
	}

	seq, cerr := key.Get(stub)
	if cerr != nil {
		if cerr.Status() == 404 {
			return 0, nil
		}
		return 0, errors.WrapErrorWithStatus(cerr, "error reading listing sequence", cerr.Status())
	}

	next, _ := seq.GetProp("next").(float64)
	return next, nil
}

// nextListingID reserves and returns the next sequential listing id.
func nextListingID(stub *sw.StubWrapper) (float64, errors.ICCError) {
	next, cerr := listingCount(stub)
	if cerr != nil {
		return 0, cerr
	}

	seqMap := make(map[string]interface{})
	seqMap["@assetType"] = "listingSeq"
	seqMap["scope"] = seqScope
	seqMap["next"] = next + 1

	seq, cerr := assets.NewAsset(seqMap)
	if cerr != nil {
		return 0, errors.WrapError(cerr, "failed to advance listing sequence")
	}
	_, cerr = seq.Put(stub)
	if cerr != nil {
		return 0, errors.WrapErrorWithStatus(cerr, "error saving listing sequence", cerr.Status())
	}
	return next, nil
}

// loadBalances returns the deposit and proceeds balances for address,
// defaulting both to zero when the account was never touched.
func loadBalances(stub *sw.StubWrapper, address string) (*big.Int, *big.Int, errors.ICCError) {
	key, cerr := assets.NewKey(map[string]interface{}{
		"@assetType": "account",
		"address":    address,
	})
	if cerr != nil {
		return nil, nil, errors.WrapError(cerr, "failed to build account key")
	}

	account, cerr := key.Get(stub)
	if cerr != nil {
		if cerr.Status() == 404 {
			return big.NewInt(0), big.NewInt(0), nil
		}
		return nil, nil, errors.WrapErrorWithStatus(cerr, "error reading account", cerr.Status())
	}

	deposits, cerr := market.ParseAmount(account.GetProp("deposits"))
	if cerr != nil {
		return nil, nil, cerr
	}
	proceeds, cerr := market.ParseAmount(account.GetProp("proceeds"))
	if cerr != nil {
		return nil, nil, cerr
	}
	return deposits, proceeds, nil
}

// storeBalances writes both balance tables for address, creating the account
// record on first use.
func storeBalances(stub *sw.StubWrapper, address string, deposits, proceeds *big.Int) errors.ICCError {
	accountMap := make(map[string]interface{})
	accountMap["@assetType"] = "account"
	accountMap["address"] = address
	accountMap["deposits"] = deposits.String()
	accountMap["proceeds"] = proceeds.String()

	account, cerr := assets.NewAsset(accountMap)
	if cerr != nil {
		return errors.WrapError(cerr, "failed to build account")
	}
	_, cerr = account.Put(stub)
	if cerr != nil {
		return errors.WrapErrorWithStatus(cerr, "error saving account", cerr.Status())
	}
	return nil
}

// creditProceeds adds amount to the pull-payment balance of address. The
// caller must touch each address at most once per transaction: committed
// state is read, so a second credit in the same transaction would not see
// the first.
func creditProceeds(stub *sw.StubWrapper, address string, amount *big.Int) errors.ICCError {
	deposits, proceeds, cerr := loadBalances(stub, address)
	if cerr != nil {
		return cerr
	}
	return storeBalances(stub, address, deposits, new(big.Int).Add(proceeds, amount))
}

// getConfig returns the marketConfig singleton.
func getConfig(stub *sw.StubWrapper) (*assets.Asset, errors.ICCError) {
	key, cerr := assets.NewKey(map[string]interface{}{
		"@assetType": "marketConfig",
		"configKey":  configKey,
	})
	if cerr != nil {
		return nil, errors.WrapError(cerr, "failed to build config key")
	}

	config, cerr := key.Get(stub)
	if cerr != nil {
		return nil, errors.WrapErrorWithStatus(cerr, "marketplace configuration not initialized", 500)
	}
	return config, nil
}

// storeConfig rewrites the full marketConfig singleton.
func storeConfig(stub *sw.StubWrapper, feeBps float64, feeRecipient, admin, pendingAdmin, paymentToken, operator string) errors.ICCError {
	configMap := make(map[string]interface{})
	configMap["@assetType"] = "marketConfig"
	configMap["configKey"] = configKey
	configMap["feeBps"] = feeBps
	configMap["feeRecipient"] = feeRecipient
	configMap["admin"] = admin
	configMap["pendingAdmin"] = pendingAdmin
	configMap["paymentToken"] = paymentToken
	configMap["operator"] = operator

	config, cerr := assets.NewAsset(configMap)
	if cerr != nil {
		return errors.WrapError(cerr, "failed to build marketplace configuration")
	}
	_, cerr = config.Put(stub)
	if cerr != nil {
		return errors.WrapErrorWithStatus(cerr, "error saving marketplace configuration", cerr.Status())
	}
	return nil
}

// BootstrapMarket creates the configuration singleton at instantiation time
// with the instantiating identity as administrator and fee recipient and a
// protocol fee of zero. It is a no-op when the configuration already exists.
func BootstrapMarket(stub *sw.StubWrapper, paymentToken, operator string) errors.ICCError {
	key, cerr := assets.NewKey(map[string]interface{}{
		"@assetType": "marketConfig",
		"configKey":  configKey,
	})
	if cerr != nil {
		return errors.WrapError(cerr, "failed to build config key")
	}
	if _, cerr = key.Get(stub); cerr == nil {
		return nil
	}

	admin, cerr := identity.CallerID(stub)
	if cerr != nil {
		return cerr
	}
	return storeConfig(stub, 0, admin, admin, "", paymentToken, operator)
}
