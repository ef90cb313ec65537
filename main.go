package main

import (
	"log"
	"time"

	"github.com/hyperledger-labs/cc-tools/assets"
	"github.com/hyperledger-labs/cc-tools/events"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	tx "github.com/hyperledger-labs/cc-tools/transactions"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	pb "github.com/hyperledger/fabric-protos-go/peer"

	"github.com/atahabilder1/Royaltify/chaincode/datatypes"
	"github.com/atahabilder1/Royaltify/chaincode/transactions"
)

var version = "v1.0.0"

func SetupCC() error {
	tx.InitHeader(tx.Header{
		Name:    "Royaltify",
		Version: version,
		Colors: map[string][]string{
			"@default": {"#4267B2", "#34495E", "#ECF0F1"},
		},
		Title: map[string]string{
			"@default": "Royaltify NFT Marketplace",
		},
	})

	tx.InitTxList(txList)

	err := assets.CustomDataTypes(datatypes.CustomDataTypes)
	if err != nil {
		return err
	}
	assets.InitAssetList(assetTypeList)

	events.InitEventList(eventTypeList)

	return nil
}

func main() {
	err := SetupCC()
	if err != nil {
		log.Printf("Error setting up chaincode: %s", err)
		return
	}
	if err = shim.Start(new(CC)); err != nil {
		log.Printf("Error starting chaincode: %s", err)
	}
}

// CC implements the chaincode interface
type CC struct{}

// Init is called during chaincode instantiation. It validates the registered
// types and bootstraps the marketplace configuration with the instantiating
// identity as administrator. Optional instantiation arguments override the
// payment token chaincode name and the operator identity.
func (t *CC) Init(stub shim.ChaincodeStubInterface) (response pb.Response) {
	defer logTx(stub, time.Now(), &response)

	cerr := assets.StartupCheck()
	if cerr != nil {
		response = cerr.GetErrorResponse()
		return
	}
	cerr = tx.StartupCheck()
	if cerr != nil {
		response = cerr.GetErrorResponse()
		return
	}

	paymentToken := "paytoken"
	operator := "royaltify-market"
	args := stub.GetStringArgs()
	if len(args) > 0 && args[0] != "" {
		paymentToken = args[0]
	}
	if len(args) > 1 && args[1] != "" {
		operator = args[1]
	}

	cerr = transactions.BootstrapMarket(&sw.StubWrapper{Stub: stub}, paymentToken, operator)
	if cerr != nil {
		response = cerr.GetErrorResponse()
		return
	}

	response = shim.Success(nil)
	return
}

// Invoke routes every call to the registered transaction list.
func (t *CC) Invoke(stub shim.ChaincodeStubInterface) (response pb.Response) {
	defer logTx(stub, time.Now(), &response)

	result, cerr := tx.Run(stub)
	if cerr != nil {
		response = cerr.GetErrorResponse()
		return
	}
	response = shim.Success(result)
	return
}

func logTx(stub shim.ChaincodeStubInterface, beginTime time.Time, response *pb.Response) {
	fn, _ := stub.GetFunctionAndParameters()
	log.Printf("%d %s %s %s\n", response.Status, fn, time.Since(beginTime), response.Message)
}
