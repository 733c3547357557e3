package cache

import (
	"testing"

	"github.com/sdeoras/servable/pipeline"
)

func TestKeyDiscriminates(t *testing.T) {
	imgs := [][]byte{[]byte("aaa"), []byte("bbb")}

	base := Key("tensorflow", pipeline.PolicyCenteredUnit, imgs)

	if Key("tensorflow", pipeline.PolicyCenteredUnit, imgs) != base {
		t.Fatal("key not deterministic")
	}
	if Key("onnx", pipeline.PolicyCenteredUnit, imgs) == base {
		t.Fatal("backend not part of the key")
	}
	if Key("tensorflow", pipeline.PolicyMeanSubtracted, imgs) == base {
		t.Fatal("policy not part of the key")
	}
	if Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{[]byte("bbb"), []byte("aaa")}) == base {
		t.Fatal("image order not part of the key")
	}
	if Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{[]byte("aaab"), []byte("bb")}) == base {
		t.Fatal("image boundaries not part of the key")
	}
}

// Image bytes can legally contain any value, so shifting a byte across an
// image boundary must change the key even when the concatenation is equal.
func TestKeyBoundaryShift(t *testing.T) {
	a := Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{{'a', 0x00}, {'b'}})
	b := Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{{'a'}, {0x00, 'b'}})
	if a == b {
		t.Fatal("distinct batches share a cache key after a boundary shift")
	}

	// an image byte must not masquerade as a field separator either
	a = Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{{0x00, 0x01}})
	b = Key("tensorflow", pipeline.PolicyCenteredUnit, [][]byte{{0x00}, {0x01}})
	if a == b {
		t.Fatal("one-image and two-image batches share a cache key")
	}
}
