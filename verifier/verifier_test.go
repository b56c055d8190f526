package verifier

import (
	"crypto/ed25519"
	"net/http/httptest"
	"testing"

	"github.com/TEENet-io/atomicswap-core/coordinatormetrics"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scrapeMetrics renders the registry's current exposition text.
func scrapeMetrics(t *testing.T, metrics *coordinatormetrics.Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	metrics.Handler().ServeHTTP(rec, req)
	return rec.Body.String()
}

func genValidator(t *testing.T, stake uint64, checkpointHash [32]byte, sign bool) ValidatorSignature {
	pub, priv, err := ed25519.GenerateKey(nil)
	require.NoError(t, err)

	sig := make([]byte, ed25519.SignatureSize)
	if sign {
		sig = ed25519.Sign(priv, checkpointHash[:])
	}
	return ValidatorSignature{PublicKey: pub, Signature: sig, Stake: stake}
}

// TestCheckpointThresholdS5 pins spec scenario S5: stakes {4,3,3}, any
// two signing gives 7/10 >= 2/3 (accepted); only the top validator
// alone gives 4/10 < 2/3 (rejected).
func TestCheckpointThresholdS5(t *testing.T) {
	checkpointHash := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-1")))

	v := NewVerifier(coordinatormetrics.NewRegistry())
	sigs := []ValidatorSignature{
		genValidator(t, 4, checkpointHash, true),
		genValidator(t, 3, checkpointHash, true),
		genValidator(t, 3, checkpointHash, false),
	}
	assert.True(t, v.VerifyCheckpoint(checkpointHash, sigs))

	checkpointHash2 := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-2")))
	v2 := NewVerifier(coordinatormetrics.NewRegistry())
	sigs2 := []ValidatorSignature{
		genValidator(t, 4, checkpointHash2, true),
		genValidator(t, 3, checkpointHash2, false),
		genValidator(t, 3, checkpointHash2, false),
	}
	assert.False(t, v2.VerifyCheckpoint(checkpointHash2, sigs2))
}

func TestCheckpointBitFlipFailsOnReevaluation(t *testing.T) {
	checkpointHash := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-3")))
	v := NewVerifier(coordinatormetrics.NewRegistry())
	good := genValidator(t, 10, checkpointHash, true)
	assert.True(t, v.VerifyCheckpoint(checkpointHash, []ValidatorSignature{good}))

	flipped := good
	flipped.Signature = append([]byte{}, good.Signature...)
	flipped.Signature[0] ^= 0x01

	checkpointHash2 := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-4")))
	assert.False(t, v.VerifyCheckpoint(checkpointHash2, []ValidatorSignature{flipped}))
}

func TestVerifyTransactionSortedPairMerkle(t *testing.T) {
	txHash := [32]byte(crypto.Keccak256Hash([]byte("tx-1")))
	sib1 := [32]byte(crypto.Keccak256Hash([]byte("sib-1")))
	sib2 := [32]byte(crypto.Keccak256Hash([]byte("sib-2")))

	level1 := sortedPairHash(txHash, sib1)
	root := sortedPairHash(level1, sib2)

	v := NewVerifier(coordinatormetrics.NewRegistry())
	validator := genValidator(t, 10, root, true)

	ok := v.VerifyTransaction(txHash, root, [][32]byte{sib1, sib2}, []ValidatorSignature{validator})
	assert.True(t, ok)

	wrongTx := [32]byte(crypto.Keccak256Hash([]byte("tx-bogus")))
	assert.False(t, v.VerifyTransaction(wrongTx, root, [][32]byte{sib1, sib2}, []ValidatorSignature{validator}))
}

func TestAddressMappingsAreDeterministic(t *testing.T) {
	foreign := [32]byte(crypto.Keccak256Hash([]byte("foreign-addr")))
	local1 := ForeignToLocalAddr(foreign)
	local2 := ForeignToLocalAddr(foreign)
	assert.Equal(t, local1, local2)

	back1 := LocalToForeignAddr(local1)
	back2 := LocalToForeignAddr(local1)
	assert.Equal(t, back1, back2)
}

// TestVerifyCheckpointReportsMetrics pins that an accepted and a
// rejected checkpoint each move the corresponding outcome counter.
func TestVerifyCheckpointReportsMetrics(t *testing.T) {
	metrics := coordinatormetrics.NewRegistry()
	v := NewVerifier(metrics)

	accepted := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-accepted")))
	v.VerifyCheckpoint(accepted, []ValidatorSignature{genValidator(t, 10, accepted, true)})

	rejected := [32]byte(crypto.Keccak256Hash([]byte("checkpoint-rejected")))
	v.VerifyCheckpoint(rejected, []ValidatorSignature{genValidator(t, 10, rejected, false)})

	body := scrapeMetrics(t, metrics)
	assert.Contains(t, body, `atomicswap_checkpoints_verified_total{outcome="accepted"} 1`)
	assert.Contains(t, body, `atomicswap_checkpoints_verified_total{outcome="rejected"} 1`)
}
