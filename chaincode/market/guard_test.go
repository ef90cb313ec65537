package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuard_RejectsNestedEntry(t *testing.T) {
	require.Nil(t, EnterGuard("tx-1"))
	defer ExitGuard("tx-1")

	cerr := EnterGuard("tx-1")
	require.NotNil(t, cerr)
	assert.Equal(t, int32(409), cerr.Status())
}

func TestGuard_IndependentTransactions(t *testing.T) {
	require.Nil(t, EnterGuard("tx-a"))
	defer ExitGuard("tx-a")

	// A different transaction id is unaffected.
	require.Nil(t, EnterGuard("tx-b"))
	ExitGuard("tx-b")
}

func TestGuard_ReleasedAfterExit(t *testing.T) {
	require.Nil(t, EnterGuard("tx-c"))
	ExitGuard("tx-c")
	require.Nil(t, EnterGuard("tx-c"))
	ExitGuard("tx-c")
}
