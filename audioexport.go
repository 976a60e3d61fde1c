package tonic

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// Wav encodes a stereo interleaved buffer as a .wav file at SampleRate. If
// pcm16 is true, the samples are converted to 16-bit signed integers;
// otherwise they are stored as IEEE float32.
func Wav(buffer []float32, pcm16 bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	writeWavHeader(buf, len(buffer), pcm16)
	if err := writeSamples(buf, buffer, pcm16); err != nil {
		return nil, fmt.Errorf("Wav failed: %w", err)
	}
	return buf.Bytes(), nil
}

// Raw encodes a buffer as headerless little-endian samples.
func Raw(buffer []float32, pcm16 bool) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := writeSamples(buf, buffer, pcm16); err != nil {
		return nil, fmt.Errorf("Raw failed: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSamples(buf *bytes.Buffer, data []float32, pcm16 bool) error {
	var err error
	if pcm16 {
		ints := make([]int16, len(data))
		for i, v := range data {
			ints[i] = int16(clamp(int(v*math.MaxInt16), math.MinInt16, math.MaxInt16))
		}
		err = binary.Write(buf, binary.LittleEndian, ints)
	} else {
		err = binary.Write(buf, binary.LittleEndian, data)
	}
	if err != nil {
		return fmt.Errorf("could not write samples: %w", err)
	}
	return nil
}

// writeWavHeader writes the RIFF header for length samples of stereo audio.
// Float files get an 18 byte fmt chunk and a fact chunk, PCM files the plain
// 16 byte fmt chunk.
func writeWavHeader(buf *bytes.Buffer, length int, pcm16 bool) {
	// http://www-mmsp.ece.mcgill.ca/Documents/AudioFormats/WAVE/WAVE.html
	const numChannels = 2
	bytesPerSample, fmtSize, format, riffSize := 4, 18, 3, 50+4*length // IEEE float
	if pcm16 {
		bytesPerSample, fmtSize, format, riffSize = 2, 16, 1, 36+2*length // PCM
	}
	le := func(v any) { binary.Write(buf, binary.LittleEndian, v) }
	buf.WriteString("RIFF")
	le(uint32(riffSize))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	le(uint32(fmtSize))
	le(uint16(format))
	le(uint16(numChannels))
	le(uint32(SampleRate))
	le(uint32(SampleRate * numChannels * bytesPerSample)) // bytes per second
	le(uint16(numChannels * bytesPerSample))              // block align
	le(uint16(8 * bytesPerSample))                        // bits per sample
	if !pcm16 {
		le(uint16(0)) // extension size
		buf.WriteString("fact")
		le(uint32(4))
		le(uint32(length / numChannels)) // frames
	}
	buf.WriteString("data")
	le(uint32(bytesPerSample * length))
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
