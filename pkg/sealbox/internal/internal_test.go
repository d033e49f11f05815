package internal

import (
	"bytes"
	"testing"

	"github.com/codahale/gubbins/assert"
)

func TestASCIIEncode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "encoded zeros",
		[]byte("11111111111111111111111111111111"), ASCIIEncode(make([]byte, 32)))
}

func TestASCIIDecode(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte{0xa5}, 32)

	decoded, err := ASCIIDecode(ASCIIEncode(data))
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "round trip", data, decoded)
}

func TestASCIIDecode_badInput(t *testing.T) {
	t.Parallel()

	if _, err := ASCIIDecode([]byte("0OIl")); err == nil {
		t.Fatal("decoded invalid base58")
	}
}

func TestSliceForAppend(t *testing.T) {
	t.Parallel()

	head, tail := SliceForAppend([]byte("ok"), 3)

	assert.Equal(t, "head length", 5, len(head))
	assert.Equal(t, "tail length", 3, len(tail))
	assert.Equal(t, "prefix", []byte("ok"), head[:2])
}
