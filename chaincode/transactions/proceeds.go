package transactions

import (
	"encoding/json"
	"math/big"

	"github.com/hyperledger-labs/cc-tools/errors"
	"github.com/hyperledger-labs/cc-tools/events"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger-labs/cc-tools/transactions"

	"github.com/atahabilder1/Royaltify/chaincode/identity"
	"github.com/atahabilder1/Royaltify/chaincode/market"
	"github.com/atahabilder1/Royaltify/chaincode/token"
)

var DepositFunds = transactions.Transaction{
	Tag:         "depositFunds",
	Label:       "Deposit Funds",
	Description: "Moves payment tokens from the caller into their marketplace deposit balance",
	Method:      "POST",

	Args: []transactions.Argument{
		{
			Tag:      "amount",
			Label:    "Amount",
			DataType: "uint256",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		amountArg, _ := req["amount"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		amount, cerr := market.ParseAmount(amountArg)
		if cerr != nil {
			return nil, cerr
		}
		if amount.Sign() == 0 {
			return nil, market.ErrZeroAmount()
		}

		caller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}
		paymentToken, _ := config.GetProp("paymentToken").(string)
		operator, _ := config.GetProp("operator").(string)

		pay := token.Payment{Chaincode: paymentToken}
		if err := pay.Transfer(stub, caller, operator, amount); err != nil {
			return nil, market.ErrTransferFailed(err)
		}

		deposits, proceeds, cerr := loadBalances(stub, caller)
		if cerr != nil {
			return nil, cerr
		}
		deposits = new(big.Int).Add(deposits, amount)
		if cerr = storeBalances(stub, caller, deposits, proceeds); cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"address": caller,
			"amount":  amount.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "fundsDeposited", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"address":  caller,
			"deposits": deposits.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode deposit result to JSON format")
		}
		return resultJSON, nil
	},
}

var WithdrawProceeds = transactions.Transaction{
	Tag:         "withdrawProceeds",
	Label:       "Withdraw Proceeds",
	Description: "Pays out the caller's full accumulated sale proceeds",
	Method:      "POST",

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		caller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}

		deposits, proceeds, cerr := loadBalances(stub, caller)
		if cerr != nil {
			return nil, cerr
		}
		if proceeds.Sign() == 0 {
			return nil, market.ErrNoProceeds()
		}

		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}
		paymentToken, _ := config.GetProp("paymentToken").(string)
		operator, _ := config.GetProp("operator").(string)

		// The balance is zeroed before the payout call. A token contract that
		// dials back into the marketplace finds nothing left to withdraw, and
		// a failed payout discards the zeroing along with everything else.
		if cerr = storeBalances(stub, caller, deposits, big.NewInt(0)); cerr != nil {
			return nil, cerr
		}

		pay := token.Payment{Chaincode: paymentToken}
		if err := pay.Transfer(stub, operator, caller, proceeds); err != nil {
			return nil, market.ErrTransferFailed(err)
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"address": caller,
			"amount":  proceeds.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "proceedsWithdrawn", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"address": caller,
			"amount":  proceeds.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode withdrawal result to JSON format")
		}
		return resultJSON, nil
	},
}

var GetProceeds = transactions.Transaction{
	Tag:         "getProceeds",
	Label:       "Get Proceeds",
	Description: "Reads the pending sale proceeds of an address",
	Method:      "GET",
	ReadOnly:    true,

	Args: []transactions.Argument{
		{
			Tag:      "address",
			Label:    "Account Address",
			DataType: "string",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		address, _ := req["address"].(string)
		if address == "" {
			return nil, market.ErrEmptyAddress()
		}

		_, proceeds, cerr := loadBalances(stub, address)
		if cerr != nil {
			return nil, cerr
		}

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"address":  address,
			"proceeds": proceeds.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode proceeds to JSON format")
		}
		return resultJSON, nil
	},
}

var GetDeposit = transactions.Transaction{
	Tag:         "getDeposit",
	Label:       "Get Deposit",
	Description: "Reads the spendable deposit balance of an address",
	Method:      "GET",
	ReadOnly:    true,

	Args: []transactions.Argument{
		{
			Tag:      "address",
			Label:    "Account Address",
			DataType: "string",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		address, _ := req["address"].(string)
		if address == "" {
			return nil, market.ErrEmptyAddress()
		}

		deposits, _, cerr := loadBalances(stub, address)
		if cerr != nil {
			return nil, cerr
		}

		resultJSON, nerr := json.Marshal(map[string]interface{}{
			"address":  address,
			"deposits": deposits.String(),
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode deposits to JSON format")
		}
		return resultJSON, nil
	},
}
