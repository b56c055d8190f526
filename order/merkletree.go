package order

import "github.com/ethereum/go-ethereum/crypto"

// MerkleTree builds an index-bit Merkle tree over leaf secrets, the
// scheme used for order partial-fill proofs (kept deliberately
// separate from the sorted-pair scheme in package verifier).
type MerkleTree struct {
	levels [][][32]byte
}

// BuildMerkleTree hashes each secret into a leaf and builds the tree
// bottom-up, duplicating the final odd node at each level.
func BuildMerkleTree(secrets [][]byte) *MerkleTree {
	leaves := make([][32]byte, len(secrets))
	for i, s := range secrets {
		leaves[i] = [32]byte(crypto.Keccak256Hash(s))
	}

	levels := [][][32]byte{leaves}
	cur := leaves
	for len(cur) > 1 {
		next := make([][32]byte, 0, (len(cur)+1)/2)
		for j := 0; j < len(cur); j += 2 {
			left := cur[j]
			right := left
			if j+1 < len(cur) {
				right = cur[j+1]
			}
			next = append(next, [32]byte(crypto.Keccak256Hash(left[:], right[:])))
		}
		levels = append(levels, next)
		cur = next
	}

	return &MerkleTree{levels: levels}
}

// Root returns the tree root. Defined for N >= 1.
func (m *MerkleTree) Root() [32]byte {
	top := m.levels[len(m.levels)-1]
	return top[0]
}

// ProofFor returns the sibling path for leaf index, bottom to top.
func (m *MerkleTree) ProofFor(index int) [][32]byte {
	proof := make([][32]byte, 0, len(m.levels)-1)
	idx := index
	for level := 0; level < len(m.levels)-1; level++ {
		cur := m.levels[level]
		sibIdx := idx ^ 1
		if sibIdx >= len(cur) {
			sibIdx = idx
		}
		proof = append(proof, cur[sibIdx])
		idx /= 2
	}
	return proof
}

// VerifyMerkleProof walks the index-bit scheme: at each step, if index
// is even the sibling is appended on the right, else on the left;
// index halves each step. Accept iff the final hash equals root.
func VerifyMerkleProof(leaf [32]byte, proof [][32]byte, root [32]byte, index uint64) bool {
	h := leaf
	idx := index
	for _, sib := range proof {
		if idx%2 == 0 {
			h = [32]byte(crypto.Keccak256Hash(h[:], sib[:]))
		} else {
			h = [32]byte(crypto.Keccak256Hash(sib[:], h[:]))
		}
		idx /= 2
	}
	return h == root
}
