package main

import (
	"github.com/hyperledger-labs/cc-tools/events"
)

var eventTypeList = []events.Event{
	{
		Tag:         "listingCreated",
		Label:       "Listing Created",
		Description: "A new listing entered the active set",
		Type:        events.EventLog,
	},
	{
		Tag:         "listingUpdated",
		Label:       "Listing Updated",
		Description: "An active listing changed price",
		Type:        events.EventLog,
	},
	{
		Tag:         "listingCancelled",
		Label:       "Listing Cancelled",
		Description: "A listing left the active set without a sale",
		Type:        events.EventLog,
	},
	{
		Tag:         "saleCompleted",
		Label:       "Sale Completed",
		Description: "A listing was bought and payment distributed",
		Type:        events.EventLog,
	},
	{
		Tag:         "fundsDeposited",
		Label:       "Funds Deposited",
		Description: "A client funded their deposit balance",
		Type:        events.EventLog,
	},
	{
		Tag:         "proceedsWithdrawn",
		Label:       "Proceeds Withdrawn",
		Description: "A client pulled their accumulated proceeds",
		Type:        events.EventLog,
	},
	{
		Tag:         "protocolFeeChanged",
		Label:       "Protocol Fee Changed",
		Description: "The administrator changed the fee rate",
		Type:        events.EventLog,
	},
	{
		Tag:         "feeRecipientChanged",
		Label:       "Fee Recipient Changed",
		Description: "The administrator changed the fee recipient",
		Type:        events.EventLog,
	},
	{
		Tag:         "adminNominated",
		Label:       "Administrator Nominated",
		Description: "The administrator nominated a successor",
		Type:        events.EventLog,
	},
	{
		Tag:         "adminChanged",
		Label:       "Administrator Changed",
		Description: "A nominated successor accepted administration",
		Type:        events.EventLog,
	},
}
