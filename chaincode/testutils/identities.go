package testutils

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"

	"github.com/golang/protobuf/proto"
	"github.com/hyperledger/fabric-chaincode-go/pkg/cid"
	"github.com/hyperledger/fabric-protos-go/msp"
)

// Identity is a self-signed test client. ID carries the same value the
// chaincode derives from the transaction creator, so tests never hardcode
// the derivation format.
type Identity struct {
	Name    string
	Creator []byte
	ID      string
}

// NewIdentity generates a fresh ECDSA certificate for commonName and
// resolves the client identity the way the chaincode will see it.
func NewIdentity(t *testing.T, commonName string) *Identity {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		t.Fatalf("failed to generate key for %s: %v", commonName, err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		t.Fatalf("failed to generate serial for %s: %v", commonName, err)
	}

	template := x509.Certificate{
		SerialNumber: serial,
		Subject: pkix.Name{
			CommonName:   commonName,
			Organization: []string{"org.example.com"},
		},
		NotBefore: time.Now().Add(-time.Hour),
		NotAfter:  time.Now().Add(24 * time.Hour),
		KeyUsage:  x509.KeyUsageDigitalSignature,
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	if err != nil {
		t.Fatalf("failed to self-sign certificate for %s: %v", commonName, err)
	}
	certPEM := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})

	serialized := &msp.SerializedIdentity{
		Mspid:   "Org1MSP",
		IdBytes: certPEM,
	}
	creator, err := proto.Marshal(serialized)
	if err != nil {
		t.Fatalf("failed to serialize identity for %s: %v", commonName, err)
	}

	// Resolve the identity string against a throwaway stub.
	probe := NewMockStub()
	probe.Creator = creator
	id, err := cid.GetID(probe)
	if err != nil {
		t.Fatalf("failed to resolve identity for %s: %v", commonName, err)
	}

	return &Identity{
		Name:    commonName,
		Creator: creator,
		ID:      id,
	}
}
