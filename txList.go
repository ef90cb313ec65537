package main

import (
	tx "github.com/hyperledger-labs/cc-tools/transactions"

	txdefs "github.com/atahabilder1/Royaltify/chaincode/transactions"
)

var txList = []tx.Transaction{
	txdefs.ListNFT,
	txdefs.UpdateListing,
	txdefs.CancelListing,
	txdefs.ReadListing,
	txdefs.GetActiveListings,
	txdefs.GetSellerListings,
	txdefs.BuyNFT,
	txdefs.DepositFunds,
	txdefs.WithdrawProceeds,
	txdefs.GetProceeds,
	txdefs.GetDeposit,
	txdefs.SetProtocolFee,
	txdefs.SetFeeRecipient,
	txdefs.NominateAdmin,
	txdefs.AcceptAdmin,
	txdefs.GetMarketConfig,
}
