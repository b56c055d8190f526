package verifier

import "github.com/ethereum/go-ethereum/crypto"

// foreignDomainTag disambiguates local_to_foreign_addr from any other
// caller of Keccak-256 over a 20-byte input.
const foreignDomainTag = "sui_bridge_v1"

// ForeignToLocalAddr maps a Chain-S 32-byte address to its Chain-E
// 20-byte view: the last 20 bytes of Keccak-256(foreign32). This is a
// one-way, deterministic convenience mapping; it carries no security
// weight of its own, the Merkle/BFT verifier does that work.
func ForeignToLocalAddr(foreign [32]byte) [20]byte {
	digest := crypto.Keccak256Hash(foreign[:])
	var local [20]byte
	copy(local[:], digest[12:])
	return local
}

// LocalToForeignAddr maps a Chain-E 20-byte address to a 32-byte
// Chain-S view: Keccak-256(local20 ‖ "sui_bridge_v1").
func LocalToForeignAddr(local [20]byte) [32]byte {
	return [32]byte(crypto.Keccak256Hash(local[:], []byte(foreignDomainTag)))
}
