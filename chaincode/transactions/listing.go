package transactions

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"
	"github.com/hyperledger-labs/cc-tools/events"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger-labs/cc-tools/transactions"

	"github.com/atahabilder1/Royaltify/chaincode/identity"
	"github.com/atahabilder1/Royaltify/chaincode/market"
	"github.com/atahabilder1/Royaltify/chaincode/token"
)

var ListNFT = transactions.Transaction{
	Tag:         "listNFT",
	Label:       "List NFT",
	Description: "Creates a fixed-price listing for an NFT held by the caller",
	Method:      "POST",

	Args: []transactions.Argument{
		{
			Tag:         "assetContract",
			Label:       "Asset Contract",
			Description: "Chaincode name of the NFT contract",
			DataType:    "string",
			Required:    true,
		},
		{
			Tag:      "assetId",
			Label:    "Asset ID",
			DataType: "string",
			Required: true,
		},
		{
			Tag:         "price",
			Label:       "Price",
			Description: "Sale price in the smallest currency unit",
			DataType:    "uint256",
			Required:    true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		assetContract, _ := req["assetContract"].(string)
		assetID, _ := req["assetId"].(string)
		price, _ := req["price"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		if assetContract == "" {
			return nil, market.ErrEmptyInput("assetContract")
		}
		if assetID == "" {
			return nil, market.ErrEmptyInput("assetId")
		}
		priceAmount, cerr := market.ParseAmount(price)
		if cerr != nil {
			return nil, cerr
		}
		if priceAmount.Sign() == 0 {
			return nil, market.ErrZeroPrice()
		}

		seller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}
		operator, _ := config.GetProp("operator").(string)

		// The caller must hold the asset and the marketplace must already be
		// authorized to move it. Both facts live in the external contract and
		// are queried, never stored locally.
		nft := token.Client{Chaincode: assetContract}
		if !nft.SupportsInterface(stub, token.InterfaceNFT) {
			return nil, market.ErrAssetNotSupported(assetContract)
		}
		holder, err := nft.OwnerOf(stub, assetID)
		if err != nil {
			return nil, errors.WrapErrorWithStatus(err, "failed to query asset holder", 502)
		}
		if holder != seller {
			return nil, market.ErrNotAssetHolder()
		}
		approved, err := nft.IsApprovedFor(stub, seller, operator, assetID)
		if err != nil {
			return nil, errors.WrapErrorWithStatus(err, "failed to query transfer authorization", 502)
		}
		if !approved {
			return nil, market.ErrOperatorNotAuthorized()
		}

		id, cerr := nextListingID(stub)
		if cerr != nil {
			return nil, cerr
		}

		listingMap := make(map[string]interface{})
		listingMap["@assetType"] = "listing"
		listingMap["listingId"] = id
		listingMap["seller"] = seller
		listingMap["assetContract"] = assetContract
		listingMap["assetId"] = assetID
		listingMap["price"] = priceAmount.String()
		listingMap["status"] = market.StatusActive
		listingMap["createdAt"] = time.Now()

		listing, cerr := assets.NewAsset(listingMap)
		if cerr != nil {
			return nil, errors.WrapError(cerr, "failed to create listing")
		}
		_, cerr = listing.PutNew(stub)
		if cerr != nil {
			return nil, errors.WrapErrorWithStatus(cerr, "error saving listing", cerr.Status())
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"listingId":     id,
			"seller":        seller,
			"assetContract": assetContract,
			"assetId":       assetID,
			"price":         priceAmount.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "listingCreated", payload)

		listingJSON, nerr := json.Marshal(listing)
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listing to JSON format")
		}
		return listingJSON, nil
	},
}

var UpdateListing = transactions.Transaction{
	Tag:         "updateListing",
	Label:       "Update Listing",
	Description: "Replaces the price of an active listing",
	Method:      "PUT",

	Args: []transactions.Argument{
		{
			Tag:      "listingId",
			Label:    "Listing ID",
			DataType: "number",
			Required: true,
		},
		{
			Tag:      "newPrice",
			Label:    "New Price",
			DataType: "uint256",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		id, _ := req["listingId"].(float64)
		newPrice, _ := req["newPrice"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		priceAmount, cerr := market.ParseAmount(newPrice)
		if cerr != nil {
			return nil, cerr
		}
		if priceAmount.Sign() == 0 {
			return nil, market.ErrZeroPrice()
		}

		caller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		listing, cerr := getListing(stub, id)
		if cerr != nil {
			return nil, cerr
		}
		if seller, _ := listing.GetProp("seller").(string); seller != caller {
			return nil, market.ErrNotSeller()
		}
		if status, _ := listing.GetProp("status").(string); status != market.StatusActive {
			return nil, market.ErrListingNotActive(int64(id))
		}

		updated, cerr := saveListing(stub, listing, priceAmount.String(), market.StatusActive)
		if cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"listingId": id,
			"price":     priceAmount.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "listingUpdated", payload)

		listingJSON, nerr := json.Marshal(updated)
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listing to JSON format")
		}
		return listingJSON, nil
	},
}

var CancelListing = transactions.Transaction{
	Tag:         "cancelListing",
	Label:       "Cancel Listing",
	Description: "Cancels an active listing; the asset never left the seller",
	Method:      "PUT",

	Args: []transactions.Argument{
		{
			Tag:      "listingId",
			Label:    "Listing ID",
			DataType: "number",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		id, _ := req["listingId"].(float64)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		caller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		listing, cerr := getListing(stub, id)
		if cerr != nil {
			return nil, cerr
		}
		if seller, _ := listing.GetProp("seller").(string); seller != caller {
			return nil, market.ErrNotSeller()
		}
		if status, _ := listing.GetProp("status").(string); status != market.StatusActive {
			return nil, market.ErrListingNotActive(int64(id))
		}

		price, _ := listing.GetProp("price").(string)
		updated, cerr := saveListing(stub, listing, price, market.StatusCancelled)
		if cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"listingId": id,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "listingCancelled", payload)

		listingJSON, nerr := json.Marshal(updated)
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listing to JSON format")
		}
		return listingJSON, nil
	},
}

var ReadListing = transactions.Transaction{
	Tag:         "getListing",
	Label:       "Get Listing",
	Description: "Reads a listing by its identifier, terminal records included",
	Method:      "GET",
	ReadOnly:    true,

	Args: []transactions.Argument{
		{
			Tag:      "listingId",
			Label:    "Listing ID",
			DataType: "number",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		id, _ := req["listingId"].(float64)

		listing, cerr := getListing(stub, id)
		if cerr != nil {
			return nil, cerr
		}

		listingJSON, nerr := json.Marshal(listing)
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listing to JSON format")
		}
		return listingJSON, nil
	},
}

var GetActiveListings = transactions.Transaction{
	Tag:         "getActiveListings",
	Label:       "Get Active Listings",
	Description: "Pages through active listings by ascending identifier",
	Method:      "GET",
	ReadOnly:    true,

	Args: []transactions.Argument{
		{
			Tag:         "offset",
			Label:       "Offset",
			Description: "First listing identifier to scan",
			DataType:    "number",
			Required:    true,
		},
		{
			Tag:         "limit",
			Label:       "Limit",
			Description: "Scan window size, capped at 100",
			DataType:    "number",
			Required:    true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		offset, _ := req["offset"].(float64)
		limit, _ := req["limit"].(float64)

		if offset < 0 {
			return nil, errors.NewCCError("offset must not be negative", 400)
		}
		if limit <= 0 {
			return nil, errors.NewCCError("limit must be greater than zero", 400)
		}
		if limit > maxPageSize {
			limit = maxPageSize
		}

		count, cerr := listingCount(stub)
		if cerr != nil {
			return nil, cerr
		}

		// The scan window is [offset, offset+limit) over assigned ids, so
		// the work stays bounded by limit no matter how long the listing
		// history grows. A page may hold fewer than limit active entries.
		end := offset + limit
		if end > count {
			end = count
		}

		listings := make([]interface{}, 0)
		ids := make([]float64, 0)
		for id := offset; id < end; id++ {
			listing, cerr := getListing(stub, id)
			if cerr != nil {
				return nil, cerr
			}
			if status, _ := listing.GetProp("status").(string); status != market.StatusActive {
				continue
			}
			listings = append(listings, listing)
			ids = append(ids, id)
		}

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"listings":     listings,
			"ids":          ids,
			"listingCount": count,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listings to JSON format")
		}
		return resultJSON, nil
	},
}

var GetSellerListings = transactions.Transaction{
	Tag:         "getSellerListings",
	Label:       "Get Seller Listings",
	Description: "Returns every listing of a seller, any status, ascending id",
	Method:      "GET",
	ReadOnly:    true,

	Args: []transactions.Argument{
		{
			Tag:      "seller",
			Label:    "Seller Address",
			DataType: "string",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		seller, _ := req["seller"].(string)
		if seller == "" {
			return nil, market.ErrEmptyAddress()
		}

		query := map[string]interface{}{
			"selector": map[string]interface{}{
				"@assetType": "listing",
				"seller":     seller,
			},
		}
		search, cerr := assets.Search(stub, query, "", true)
		if cerr != nil {
			return nil, errors.WrapErrorWithStatus(cerr, "error searching listings", cerr.Status())
		}

		// CouchDB gives no ordering without an index; sort by id here.
		result := search.Result
		sort.Slice(result, func(i, j int) bool {
			a, _ := result[i]["listingId"].(float64)
			b, _ := result[j]["listingId"].(float64)
			return a < b
		})

		ids := make([]float64, 0, len(result))
		for _, listing := range result {
			id, _ := listing["listingId"].(float64)
			ids = append(ids, id)
		}

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"listings": result,
			"ids":      ids,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode listings to JSON format")
		}
		return resultJSON, nil
	},
}
