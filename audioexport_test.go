package tonic_test

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsariola/tonic"
)

func TestWavPCM16(t *testing.T) {
	buffer := []float32{0, 0.5, -0.5, 1, 2, -2}
	wav, err := tonic.Wav(buffer, true)
	require.NoError(t, err)
	require.Len(t, wav, 44+2*len(buffer))
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, uint32(36+2*len(buffer)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(wav[20:22]))  // PCM
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(wav[22:24]))  // channels
	assert.Equal(t, uint32(tonic.SampleRate), binary.LittleEndian.Uint32(wav[24:28]))
	assert.Equal(t, uint16(16), binary.LittleEndian.Uint16(wav[34:36])) // bits
	assert.Equal(t, "data", string(wav[36:40]))
	assert.Equal(t, uint32(2*len(buffer)), binary.LittleEndian.Uint32(wav[40:44]))
	// clipped
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(wav[44+8:])))
	assert.Equal(t, int16(math.MinInt16), int16(binary.LittleEndian.Uint16(wav[44+10:])))
}

func TestWavFloat(t *testing.T) {
	buffer := make([]float32, 10)
	wav, err := tonic.Wav(buffer, false)
	require.NoError(t, err)
	require.Len(t, wav, 58+4*len(buffer))
	assert.Equal(t, uint32(50+4*len(buffer)), binary.LittleEndian.Uint32(wav[4:8]))
	assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(wav[20:22])) // IEEE float
	assert.Equal(t, "fact", string(wav[38:42]))
	assert.Equal(t, uint32(len(buffer)/2), binary.LittleEndian.Uint32(wav[46:50]))
	assert.Equal(t, "data", string(wav[50:54]))
}

func TestRaw(t *testing.T) {
	buffer := []float32{0.25, -1}
	raw, err := tonic.Raw(buffer, false)
	require.NoError(t, err)
	require.Len(t, raw, 8)
	assert.Equal(t, float32(0.25), math.Float32frombits(binary.LittleEndian.Uint32(raw)))

	raw, err = tonic.Raw(buffer, true)
	require.NoError(t, err)
	require.Len(t, raw, 4)
	assert.Equal(t, int16(-math.MaxInt16), int16(binary.LittleEndian.Uint16(raw[2:])))
}
