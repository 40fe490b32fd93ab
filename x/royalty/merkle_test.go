package royalty

import (
	"testing"

	"github.com/iov-one/weave/coin"
	"github.com/iov-one/weave/weavetest"
)

func TestVerifyProof(t *testing.T) {
	collection := weavetest.NewCondition().Address()

	// A four entry distribution tree, built the same way an off chain
	// distributor would build it.
	recipients := [][]byte{
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
		weavetest.NewCondition().Address(),
	}
	amounts := []coin.Coin{
		coin.NewCoin(100, 0, "IOV"),
		coin.NewCoin(250, 0, "IOV"),
		coin.NewCoin(0, 5000, "IOV"),
		coin.NewCoin(99999, 0, "IOV"),
	}

	leaves := make([][]byte, 4)
	for i := range leaves {
		leaves[i] = claimLeaf(collection, recipients[i], amounts[i])
	}
	left := hashPair(leaves[0], leaves[1])
	right := hashPair(leaves[2], leaves[3])
	root := hashPair(left, right)

	proofs := [][][]byte{
		{leaves[1], right},
		{leaves[0], right},
		{leaves[3], left},
		{leaves[2], left},
	}

	for i := range leaves {
		if !verifyProof(root, leaves[i], proofs[i]) {
			t.Errorf("leaf %d does not verify", i)
		}
	}

	// Changing any part of the claimed entry must break the proof.
	tempered := claimLeaf(collection, recipients[0], coin.NewCoin(101, 0, "IOV"))
	if verifyProof(root, tempered, proofs[0]) {
		t.Error("a tempered amount must not verify")
	}
	tempered = claimLeaf(collection, recipients[1], amounts[0])
	if verifyProof(root, tempered, proofs[0]) {
		t.Error("a tempered recipient must not verify")
	}
	if verifyProof(root, leaves[0], proofs[1]) {
		t.Error("a mismatched proof must not verify")
	}
	if verifyProof(root, leaves[0], [][]byte{leaves[1], right[:16]}) {
		t.Error("a short sibling must not verify")
	}

	// A single entry distribution is the leaf itself.
	if !verifyProof(leaves[0], leaves[0], nil) {
		t.Error("an empty proof must verify against the leaf root")
	}
}

func TestClaimLeafEncoding(t *testing.T) {
	collection := weavetest.NewCondition().Address()
	recipient := weavetest.NewCondition().Address()

	a := claimLeaf(collection, recipient, coin.NewCoin(1, 0, "IOV"))
	b := claimLeaf(collection, recipient, coin.NewCoin(0, 1, "IOV"))
	if string(a) == string(b) {
		t.Fatal("whole and fractional amounts must not collide")
	}
	c := claimLeaf(collection, recipient, coin.NewCoin(1, 0, "ETH"))
	if string(a) == string(c) {
		t.Fatal("tickers must not collide")
	}
}
