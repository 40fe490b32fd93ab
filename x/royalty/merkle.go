package royalty

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/coin"
)

// rootSize is the size of a sha256 merkle root.
const rootSize = sha256.Size

// claimLeaf computes the leaf hash of a distribution entry. The amount is
// encoded with fixed width so that no two entries can collide.
func claimLeaf(collection weave.Address, recipient weave.Address, amount coin.Coin) []byte {
	h := sha256.New()
	h.Write(collection)
	h.Write(recipient)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(amount.Whole))
	h.Write(buf[:])
	binary.BigEndian.PutUint64(buf[:], uint64(amount.Fractional))
	h.Write(buf[:])
	h.Write([]byte(amount.Ticker))
	return h.Sum(nil)
}

// hashPair combines two nodes in sorted pair order, so no left/right
// flags are needed in proofs.
func hashPair(a []byte, b []byte) []byte {
	h := sha256.New()
	if bytes.Compare(a, b) <= 0 {
		h.Write(a)
		h.Write(b)
	} else {
		h.Write(b)
		h.Write(a)
	}
	return h.Sum(nil)
}

// verifyProof resolves a leaf through the given sibling path and compares
// the result with the expected root.
func verifyProof(root []byte, leaf []byte, proof [][]byte) bool {
	node := leaf
	for _, sibling := range proof {
		if len(sibling) != rootSize {
			return false
		}
		node = hashPair(node, sibling)
	}
	return bytes.Equal(node, root)
}
