package transactions

import (
	"encoding/json"
	"math"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/errors"
	"github.com/hyperledger-labs/cc-tools/events"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger-labs/cc-tools/transactions"

	"github.com/atahabilder1/Royaltify/chaincode/identity"
	"github.com/atahabilder1/Royaltify/chaincode/market"
)

// requireAdmin loads the marketplace configuration and checks the caller
// against its administrator identity.
func requireAdmin(stub *sw.StubWrapper) (map[string]interface{}, errors.ICCError) {
	caller, cerr := identity.CallerID(stub)
	if cerr != nil {
		return nil, cerr
	}
	config, cerr := getConfig(stub)
	if cerr != nil {
		return nil, cerr
	}
	admin, _ := config.GetProp("admin").(string)
	if caller != admin {
		return nil, market.ErrNotAdmin()
	}
	return configFields(config), nil
}

func configFields(config *assets.Asset) map[string]interface{} {
	fields := make(map[string]interface{})
	for _, tag := range []string{"feeBps", "feeRecipient", "admin", "pendingAdmin", "paymentToken", "operator"} {
		fields[tag] = config.GetProp(tag)
	}
	return fields
}

func rewriteConfig(stub *sw.StubWrapper, fields map[string]interface{}) errors.ICCError {
	feeBps, _ := fields["feeBps"].(float64)
	feeRecipient, _ := fields["feeRecipient"].(string)
	admin, _ := fields["admin"].(string)
	pendingAdmin, _ := fields["pendingAdmin"].(string)
	paymentToken, _ := fields["paymentToken"].(string)
	operator, _ := fields["operator"].(string)
	return storeConfig(stub, feeBps, feeRecipient, admin, pendingAdmin, paymentToken, operator)
}

var SetProtocolFee = transactions.Transaction{
	Tag:         "setProtocolFee",
	Label:       "Set Protocol Fee",
	Description: "Changes the protocol fee rate, bounded by the hard cap",
	Method:      "PUT",

	Args: []transactions.Argument{
		{
			Tag:         "feeBps",
			Label:       "Fee Rate",
			Description: "New protocol fee in basis points",
			DataType:    "number",
			Required:    true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		feeBps, _ := req["feeBps"].(float64)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		fields, cerr := requireAdmin(stub)
		if cerr != nil {
			return nil, cerr
		}

		if feeBps != math.Trunc(feeBps) || feeBps < 0 {
			return nil, errors.NewCCError("fee rate must be a non-negative integer", 400)
		}
		if int64(feeBps) > market.MaxFeeBps {
			return nil, market.ErrFeeAboveCap(int64(feeBps))
		}

		fields["feeBps"] = feeBps
		if cerr = rewriteConfig(stub, fields); cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"feeBps": feeBps,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "protocolFeeChanged", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{"feeBps": feeBps})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode fee rate to JSON format")
		}
		return resultJSON, nil
	},
}

var SetFeeRecipient = transactions.Transaction{
	Tag:         "setFeeRecipient",
	Label:       "Set Fee Recipient",
	Description: "Changes where the protocol fee share is credited",
	Method:      "PUT",

	Args: []transactions.Argument{
		{
			Tag:      "feeRecipient",
			Label:    "Fee Recipient",
			DataType: "string",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		feeRecipient, _ := req["feeRecipient"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		fields, cerr := requireAdmin(stub)
		if cerr != nil {
			return nil, cerr
		}
		if feeRecipient == "" {
			return nil, market.ErrEmptyAddress()
		}

		fields["feeRecipient"] = feeRecipient
		if cerr = rewriteConfig(stub, fields); cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"feeRecipient": feeRecipient,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "feeRecipientChanged", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{"feeRecipient": feeRecipient})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode fee recipient to JSON format")
		}
		return resultJSON, nil
	},
}

var NominateAdmin = transactions.Transaction{
	Tag:         "nominateAdmin",
	Label:       "Nominate Administrator",
	Description: "First half of the two-phase administrator handoff",
	Method:      "PUT",

	Args: []transactions.Argument{
		{
			Tag:      "pendingAdmin",
			Label:    "Nominated Administrator",
			DataType: "string",
			Required: true,
		},
	},

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		pendingAdmin, _ := req["pendingAdmin"].(string)

		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		fields, cerr := requireAdmin(stub)
		if cerr != nil {
			return nil, cerr
		}
		if pendingAdmin == "" {
			return nil, market.ErrEmptyAddress()
		}

		// A repeated nomination simply replaces the previous nominee; nothing
		// changes hands until the nominee accepts.
		fields["pendingAdmin"] = pendingAdmin
		if cerr = rewriteConfig(stub, fields); cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"pendingAdmin": pendingAdmin,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "adminNominated", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{"pendingAdmin": pendingAdmin})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode nomination to JSON format")
		}
		return resultJSON, nil
	},
}

var AcceptAdmin = transactions.Transaction{
	Tag:         "acceptAdmin",
	Label:       "Accept Administration",
	Description: "Second half of the handoff, callable only by the nominee",
	Method:      "PUT",

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		if cerr := market.EnterGuard(stub.Stub.GetTxID()); cerr != nil {
			return nil, cerr
		}
		defer market.ExitGuard(stub.Stub.GetTxID())

		caller, cerr := identity.CallerID(stub)
		if cerr != nil {
			return nil, cerr
		}
		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}
		fields := configFields(config)

		pendingAdmin, _ := fields["pendingAdmin"].(string)
		if pendingAdmin == "" || caller != pendingAdmin {
			return nil, market.ErrNotPendingAdmin()
		}

		previous, _ := fields["admin"].(string)
		fields["admin"] = caller
		fields["pendingAdmin"] = ""
		if cerr = rewriteConfig(stub, fields); cerr != nil {
			return nil, cerr
		}

		payload, nerr := json.Marshal(map[string]interface{}{
			"admin":         caller,
			"previousAdmin": previous,
		})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode event payload")
		}
		events.CallEvent(stub, "adminChanged", payload)

		resultJSON, nerr := json.Marshal(map[string]interface{}{"admin": caller})
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode handoff result to JSON format")
		}
		return resultJSON, nil
	},
}

var GetMarketConfig = transactions.Transaction{
	Tag:         "getMarketConfig",
	Label:       "Get Marketplace Configuration",
	Description: "Reads the marketplace configuration singleton",
	Method:      "GET",
	ReadOnly:    true,

	Routine: func(stub *sw.StubWrapper, req map[string]interface{}) ([]byte, errors.ICCError) {
		config, cerr := getConfig(stub)
		if cerr != nil {
			return nil, cerr
		}

		configJSON, nerr := json.Marshal(config)
		if nerr != nil {
			return nil, errors.WrapError(nerr, "failed to encode configuration to JSON format")
		}
		return configJSON, nil
	},
}
