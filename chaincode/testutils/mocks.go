package testutils

import (
	"container/list"
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/golang/protobuf/ptypes/timestamp"
	sw "github.com/hyperledger-labs/cc-tools/stubwrapper"
	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
	"github.com/hyperledger/fabric-protos-go/peer"
)

// MockStub simulates the Fabric ledger for unit testing without a running
// network. Cross-chaincode calls are routed through InvokeHandler so tests
// can stand in for the external NFT and payment contracts.
type MockStub struct {
	State        map[string][]byte // key-value pairs simulating committed state
	TransientMap map[string][]byte
	TxID         string
	ChannelID    string
	Creator      []byte            // serialized identity of the calling client
	Events       map[string][]byte // events set by the transaction under test
	Keys         *list.List        // lexically ordered keys for range scans

	InvokeHandler func(chaincodeName string, args [][]byte, channel string) peer.Response
}

// NewMockStub creates a mock stub with empty state and no caller identity.
// Tests set Creator through the harness before invoking a transaction.
func NewMockStub() *MockStub {
	return &MockStub{
		State:        make(map[string][]byte),
		TransientMap: make(map[string][]byte),
		TxID:         "mock-tx-id",
		ChannelID:    "mock-channel",
		Events:       make(map[string][]byte),
		Keys:         list.New(),
	}
}

// NewMockStubWrapper creates a mock stub already wrapped for cc-tools.
func NewMockStubWrapper() (*sw.StubWrapper, *MockStub) {
	mockStub := NewMockStub()
	return &sw.StubWrapper{Stub: mockStub}, mockStub
}

// GetState retrieves the value for a given key from mock state
func (m *MockStub) GetState(key string) ([]byte, error) {
	return m.State[key], nil
}

// PutState stores a key-value pair in mock state
func (m *MockStub) PutState(key string, value []byte) error {
	if len(value) == 0 {
		delete(m.State, key)
		return nil
	}

	m.State[key] = value

	// Maintain ordered key list
	inserted := false
	for elem := m.Keys.Front(); elem != nil; elem = elem.Next() {
		elemValue := elem.Value.(string)
		comp := strings.Compare(key, elemValue)
		if comp < 0 {
			m.Keys.InsertBefore(key, elem)
			inserted = true
			break
		} else if comp == 0 {
			// Key already exists
			inserted = true
			break
		}
	}

	// If not inserted and list is not empty, add to end
	if !inserted {
		if m.Keys.Len() == 0 {
			m.Keys.PushFront(key)
		} else {
			m.Keys.PushBack(key)
		}
	}

	return nil
}

// DelState removes a key from mock state
func (m *MockStub) DelState(key string) error {
	delete(m.State, key)
	for elem := m.Keys.Front(); elem != nil; elem = elem.Next() {
		if elem.Value.(string) == key {
			m.Keys.Remove(elem)
			break
		}
	}
	return nil
}

// GetStateByRange returns an iterator for keys within a range
func (m *MockStub) GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error) {
	return NewMockStateRangeQueryIterator(m, startKey, endKey), nil
}

// GetStateByPartialCompositeKey returns an iterator for composite keys
func (m *MockStub) GetStateByPartialCompositeKey(objectType string, keys []string) (shim.StateQueryIteratorInterface, error) {
	partialCompositeKey := objectType
	for _, key := range keys {
		partialCompositeKey += string('\x00') + key
	}
	return NewMockStateRangeQueryIterator(m, partialCompositeKey, partialCompositeKey+string(rune(0x10FFFF))), nil
}

// GetQueryResult evaluates a CouchDB-style rich query against mock state.
// Only flat equality selectors are understood, which covers the queries the
// marketplace issues.
func (m *MockStub) GetQueryResult(query string) (shim.StateQueryIteratorInterface, error) {
	var parsed struct {
		Selector map[string]interface{} `json:"selector"`
	}
	if err := json.Unmarshal([]byte(query), &parsed); err != nil {
		return nil, fmt.Errorf("malformed rich query: %w", err)
	}

	matches := make([]*queryresult.KV, 0)
	for elem := m.Keys.Front(); elem != nil; elem = elem.Next() {
		key := elem.Value.(string)
		var doc map[string]interface{}
		if err := json.Unmarshal(m.State[key], &doc); err != nil {
			continue
		}
		matched := true
		for field, want := range parsed.Selector {
			if !reflect.DeepEqual(doc[field], want) {
				matched = false
				break
			}
		}
		if matched {
			matches = append(matches, &queryresult.KV{Key: key, Value: m.State[key]})
		}
	}
	return &MockQueryIterator{Results: matches}, nil
}

// GetHistoryForKey returns history for a key (not implemented in mock)
func (m *MockStub) GetHistoryForKey(key string) (shim.HistoryQueryIteratorInterface, error) {
	return &MockHistoryIterator{}, nil
}

// CreateCompositeKey creates a composite key
func (m *MockStub) CreateCompositeKey(objectType string, attributes []string) (string, error) {
	key := objectType
	for _, attr := range attributes {
		key += string('\x00') + attr
	}
	return key, nil
}

// SplitCompositeKey splits a composite key
func (m *MockStub) SplitCompositeKey(compositeKey string) (string, []string, error) {
	return "", []string{}, nil
}

// GetTransient returns the transient map
func (m *MockStub) GetTransient() (map[string][]byte, error) {
	return m.TransientMap, nil
}

// GetTxID returns the transaction ID
func (m *MockStub) GetTxID() string {
	return m.TxID
}

// GetChannelID returns the channel ID
func (m *MockStub) GetChannelID() string {
	return m.ChannelID
}

// GetTxTimestamp returns a mock timestamp
func (m *MockStub) GetTxTimestamp() (*timestamp.Timestamp, error) {
	now := time.Now()
	return &timestamp.Timestamp{
		Seconds: now.Unix(),
		Nanos:   int32(now.Nanosecond()),
	}, nil
}

// GetCreator returns the transaction creator
func (m *MockStub) GetCreator() ([]byte, error) {
	return m.Creator, nil
}

// GetDecorations is a no-op
func (m *MockStub) GetDecorations() map[string][]byte {
	return make(map[string][]byte)
}

// GetBinding returns empty binding
func (m *MockStub) GetBinding() ([]byte, error) {
	return []byte{}, nil
}

// GetSignedProposal returns nil
func (m *MockStub) GetSignedProposal() (*peer.SignedProposal, error) {
	return nil, nil
}

// GetArgs returns empty args
func (m *MockStub) GetArgs() [][]byte {
	return [][]byte{}
}

// GetStringArgs returns empty args
func (m *MockStub) GetStringArgs() []string {
	return []string{}
}

// GetFunctionAndParameters returns mock function name
func (m *MockStub) GetFunctionAndParameters() (string, []string) {
	return "mockFunction", []string{}
}

// GetArgsSlice returns empty slice
func (m *MockStub) GetArgsSlice() ([]byte, error) {
	return []byte{}, nil
}

// SetEvent records the event for later assertions
func (m *MockStub) SetEvent(name string, payload []byte) error {
	m.Events[name] = payload
	return nil
}

// InvokeChaincode routes cross-chaincode calls to the registered handler.
// Without a handler every call fails, mimicking an absent contract.
func (m *MockStub) InvokeChaincode(chaincodeName string, args [][]byte, channel string) peer.Response {
	if m.InvokeHandler == nil {
		return shim.Error(fmt.Sprintf("chaincode %s not found", chaincodeName))
	}
	return m.InvokeHandler(chaincodeName, args, channel)
}

// GetStateValidationParameter returns nil
func (m *MockStub) GetStateValidationParameter(key string) ([]byte, error) {
	return nil, nil
}

// SetStateValidationParameter is a no-op
func (m *MockStub) SetStateValidationParameter(key string, ep []byte) error {
	return nil
}

// GetPrivateData returns nil
func (m *MockStub) GetPrivateData(collection, key string) ([]byte, error) {
	return nil, nil
}

// GetPrivateDataHash is a no-op
func (m *MockStub) GetPrivateDataHash(collection string, key string) ([]byte, error) {
	return nil, nil
}

// PutPrivateData is a no-op
func (m *MockStub) PutPrivateData(collection, key string, value []byte) error {
	return nil
}

// DelPrivateData is a no-op
func (m *MockStub) DelPrivateData(collection, key string) error {
	return nil
}

// GetPrivateDataByRange returns empty iterator
func (m *MockStub) GetPrivateDataByRange(collection, startKey, endKey string) (shim.StateQueryIteratorInterface, error) {
	return NewMockStateRangeQueryIterator(m, startKey, endKey), nil
}

// GetPrivateDataByPartialCompositeKey returns empty iterator
func (m *MockStub) GetPrivateDataByPartialCompositeKey(collection, objectType string, keys []string) (shim.StateQueryIteratorInterface, error) {
	return NewMockStateRangeQueryIterator(m, "", ""), nil
}

// GetPrivateDataQueryResult returns empty iterator
func (m *MockStub) GetPrivateDataQueryResult(collection, query string) (shim.StateQueryIteratorInterface, error) {
	return NewMockStateRangeQueryIterator(m, "", ""), nil
}

// GetPrivateDataValidationParameter returns nil
func (m *MockStub) GetPrivateDataValidationParameter(collection, key string) ([]byte, error) {
	return nil, nil
}

// SetPrivateDataValidationParameter is a no-op
func (m *MockStub) SetPrivateDataValidationParameter(collection, key string, ep []byte) error {
	return nil
}

// GetQueryResultWithPagination is a no-op
func (m *MockStub) GetQueryResultWithPagination(query string, pageSize int32, bookmark string) (shim.StateQueryIteratorInterface, *peer.QueryResponseMetadata, error) {
	return nil, nil, nil
}

// GetStateByPartialCompositeKeyWithPagination is a no-op
func (m *MockStub) GetStateByPartialCompositeKeyWithPagination(objectType string, keys []string, pageSize int32, bookmark string) (shim.StateQueryIteratorInterface, *peer.QueryResponseMetadata, error) {
	return nil, nil, nil
}

// GetStateByRangeWithPagination is a no-op
func (m *MockStub) GetStateByRangeWithPagination(startKey, endKey string, pageSize int32, bookmark string) (shim.StateQueryIteratorInterface, *peer.QueryResponseMetadata, error) {
	return nil, nil, nil
}

// PurgePrivateData is a no-op
func (m *MockStub) PurgePrivateData(collection string, key string) error {
	return nil
}

// ///////////////////////////////////////////////////////////////
// MockQueryIterator returns a pre-computed rich query result    //
// ///////////////////////////////////////////////////////////////
type MockQueryIterator struct {
	Results []*queryresult.KV
	pos     int
}

func (it *MockQueryIterator) HasNext() bool {
	return it.pos < len(it.Results)
}

func (it *MockQueryIterator) Next() (*queryresult.KV, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("no more elements")
	}
	kv := it.Results[it.pos]
	it.pos++
	return kv, nil
}

func (it *MockQueryIterator) Close() error {
	return nil
}

// ///////////////////////////////////////////////////////////////
// MockHistoryIterator implements HistoryQueryIteratorInterface //
// ///////////////////////////////////////////////////////////////
type MockHistoryIterator struct{}

func (m *MockHistoryIterator) HasNext() bool {
	return false
}

func (m *MockHistoryIterator) Next() (*queryresult.KeyModification, error) {
	return nil, fmt.Errorf("no history")
}

func (m *MockHistoryIterator) Close() error {
	return nil
}

// //////////////////////////////
// MockStateRangeQueryIterator //
// //////////////////////////////
type MockStateRangeQueryIterator struct {
	Closed   bool
	Stub     *MockStub
	StartKey string
	EndKey   string
	Current  *list.Element
}

func (iter *MockStateRangeQueryIterator) HasNext() bool {
	if iter.Closed {
		return false
	}
	if iter.Current == nil {
		return false
	}

	current := iter.Current
	for current != nil {
		if iter.StartKey == "" && iter.EndKey == "" {
			return true
		}
		key := current.Value.(string)
		if strings.Compare(key, iter.StartKey) >= 0 && strings.Compare(key, iter.EndKey) < 0 {
			return true
		}
		if strings.Compare(key, iter.EndKey) >= 0 {
			return false
		}
		current = current.Next()
	}
	return false
}

func (iter *MockStateRangeQueryIterator) Next() (*queryresult.KV, error) {
	if iter.Closed {
		return nil, fmt.Errorf("iterator closed")
	}
	if !iter.HasNext() {
		return nil, fmt.Errorf("no more elements")
	}

	for iter.Current != nil {
		key := iter.Current.Value.(string)
		if strings.Compare(key, iter.StartKey) >= 0 && strings.Compare(key, iter.EndKey) < 0 {
			value := iter.Stub.State[key]
			iter.Current = iter.Current.Next()
			return &queryresult.KV{Key: key, Value: value}, nil
		}
		iter.Current = iter.Current.Next()
	}
	return nil, fmt.Errorf("no matching key found")
}

func (iter *MockStateRangeQueryIterator) Close() error {
	iter.Closed = true
	return nil
}

func NewMockStateRangeQueryIterator(stub *MockStub, startKey, endKey string) *MockStateRangeQueryIterator {
	return &MockStateRangeQueryIterator{
		Closed:   false,
		Stub:     stub,
		StartKey: startKey,
		EndKey:   endKey,
		Current:  stub.Keys.Front(),
	}
}
