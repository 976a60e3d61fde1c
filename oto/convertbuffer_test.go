package oto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vsariola/tonic/oto"
)

func TestFloatBufferTo16BitLE(t *testing.T) {
	got := oto.FloatBufferTo16BitLE([]float32{0, 1, -1, 2, -2}, nil)
	want := []byte{
		0x00, 0x00,
		0xff, 0x7f,
		0x01, 0x80,
		0xff, 0x7f,
		0x01, 0x80,
	}
	assert.Equal(t, want, got)
}

func TestFloatBufferTo16BitLEReusesBuffer(t *testing.T) {
	tmp := make([]byte, 0, 64)
	got := oto.FloatBufferTo16BitLE([]float32{0.5}, tmp)
	assert.Len(t, got, 2)
	assert.Equal(t, 64, cap(got))
}
