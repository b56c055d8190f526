package htlc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAndVerifyHashLock(t *testing.T) {
	secret := []byte("working_real_1754151588608")
	lock := ComputeHashLock(secret)

	assert.True(t, VerifyHash(lock, secret))
	assert.False(t, VerifyHash(lock, []byte("wrong secret")))
}

func TestVerifyHashBadSecret(t *testing.T) {
	lock := ComputeHashLock([]byte("s1"))
	assert.False(t, VerifyHash(lock, []byte("s2")))
}
