package transactions

import (
	"encoding/json"
	"math/big"
	"sort"

	"github.com/hyperledger-labs/cc-tools/errors"
	"github.com/hyperledger-labs/cc-tools/events"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger-labs/cc-tools/transactions"

	"github.com/atahabilder1/Royaltify/chaincode/identity"
	"github.com/atahabilder1/Royaltify/chaincode/market"
	"github.com/atahabilder1/Royaltify/chaincode/token"
)

var BuyNFT = transactions.Transaction{
	Tag:         "buyNFT",
	Label:       "Buy NFT",
	Description: "Purchases an active listing, distributing payment between seller, creator and protocol",
	Method:      "POST",

	Args: []transactions.Argument{
		{
			Tag:      "listingId",
			Label:    "Listing ID",
			DataType: "number",
			Required: true,
		},
		{
			Tag:         "payment",
			Label:       "Payment",
			Description: "Amount paid, which must equal the listing price exactly",
			DataType:    "uint256",
			Required:    true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		id, _ := req["listingId"].(float64)
		payment, _ := req["payment"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		buyer, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		listing, cerr := getListing(stub, id)
		if cerr != nil {
			return nil, cerr
		}
		if status, _ := listing.GetProp("status").(string); status != market.StatusActive {
			return nil, market.ErrListingNotActive(int64(id))
		}
		seller, _ := listing.GetProp("seller").(string)
		if seller == buyer {
			return nil, market.ErrCannotBuyOwnListing()
		}

		price, cerr := market.ParseAmount(listing.GetProp("price"))
		if cerr != nil {
			return nil, cerr
		}
		paid, cerr := market.ParseAmount(payment)
		if cerr != nil {
			return nil, cerr
		}
		if paid.Cmp(price) != 0 {
			return nil, market.ErrIncorrectPayment(paid.String(), price.String())
		}

		buyerDeposits, buyerProceeds, cerr := loadBalances(stub, buyer)
		if cerr != nil {
			return nil, cerr
		}
		if buyerDeposits.Cmp(price) < 0 {
			return nil, market.ErrInsufficientFunds(buyerDeposits.String(), price.String())
		}

		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}
		feeBps, _ := config.GetProp("feeBps").(float64)
		feeRecipient, _ := config.GetProp("feeRecipient").(string)

		// The listing leaves the active set before anything else changes, so
		// no code path reached from here on can sell it a second time.
		assetContract, _ := listing.GetProp("assetContract").(string)
		assetID, _ := listing.GetProp("assetId").(string)
		if _, cerr = saveListing(stub, listing, price.String(), market.StatusSold); cerr != nil {
			return nil, cerr
		}

		nft := token.Client{Chaincode: assetContract}
		royaltyReceiver, royaltyAmount := nft.ResolveRoyalty(stub, assetID, price)
		dist := market.ComputeDistribution(price, int64(feeBps), royaltyReceiver, royaltyAmount)

		// Each payee's share is accumulated first so every account record is
		// written exactly once; a read in this transaction only sees committed
		// state, not earlier writes.
		credits := make(map[string]*big.Int)
		credit := func(address string, amount *big.Int) {
			if amount.Sign() == 0 {
				return
			}
			if prev, ok := credits[address]; ok {
				credits[address] = new(big.Int).Add(prev, amount)
				return
			}
			credits[address] = amount
		}
		credit(seller, dist.SellerAmount)
		credit(dist.RoyaltyReceiver, dist.RoyaltyAmount)
		credit(feeRecipient, dist.FeeAmount)

		// The buyer's debit merges with any share owed back to the buyer,
		// e.g. when the buyer is the protocol fee recipient.
		if owed, ok := credits[buyer]; ok {
			buyerProceeds = new(big.Int).Add(buyerProceeds, owed)
			delete(credits, buyer)
		}
		cerr = storeBalances(stub, buyer, new(big.Int).Sub(buyerDeposits, price), buyerProceeds)
		if cerr != nil {
			return nil, cerr
		}

		payees := make([]string, 0, len(credits))
		for address := range credits {
			payees = append(payees, address)
		}
		sort.Strings(payees)
		for _, address := range payees {
			if cerr = creditProceeds(stub, address, credits[address]); cerr != nil {
				return nil, cerr
			}
		}

		// The external transfer is the last step. If the token contract
		// aborts, the whole write set above is discarded with it.
		if err := nft.Transfer(stub, seller, buyer, assetID); err != nil {
			return nil, market.ErrTransferFailed(err)
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"listingId":       id,
			"buyer":           buyer,
			"seller":          seller,
			"assetContract":   assetContract,
			"assetId":         assetID,
			"price":           price.String(),
			"royaltyReceiver": dist.RoyaltyReceiver,
			"royaltyAmount":   dist.RoyaltyAmount.String(),
			"feeAmount":       dist.FeeAmount.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "saleCompleted", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"listingId":       id,
			"buyer":           buyer,
			"sellerAmount":    dist.SellerAmount.String(),
			"royaltyReceiver": dist.RoyaltyReceiver,
			"royaltyAmount":   dist.RoyaltyAmount.String(),
			"feeAmount":       dist.FeeAmount.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode sale result to JSON format")
		}
		return resultJSON, nil
	},
}
