package audio

import (
	"encoding/base64"
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeFloat32(t *testing.T) {
	raw := make([]byte, 8)
	binary.LittleEndian.PutUint32(raw[0:], math.Float32bits(0.5))
	binary.LittleEndian.PutUint32(raw[4:], math.Float32bits(-1))

	samples, err := DecodeFloat32(raw)
	assert.NoError(t, err)
	assert.Equal(t, []float32{0.5, -1}, samples)
}

func TestDecodeFloat32BadLength(t *testing.T) {
	_, err := DecodeFloat32(make([]byte, 5))
	assert.Error(t, err)
}

func TestFloat32ToPCM16(t *testing.T) {
	pcm := Float32ToPCM16([]float32{0, 0.5, -0.5})
	assert.Len(t, pcm, 6)

	assert.Equal(t, int16(0), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(16384), int16(binary.LittleEndian.Uint16(pcm[2:])))
	assert.Equal(t, int16(-16384), int16(binary.LittleEndian.Uint16(pcm[4:])))
}

func TestFloat32ToPCM16Clamps(t *testing.T) {
	pcm := Float32ToPCM16([]float32{1.5, -1.5, 1})
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(math.MinInt16), int16(binary.LittleEndian.Uint16(pcm[2:])))
	assert.Equal(t, int16(math.MaxInt16), int16(binary.LittleEndian.Uint16(pcm[4:])))
}

func TestNewChunk(t *testing.T) {
	chunk := NewChunk([]byte{1, 2, 3})
	assert.Equal(t, PCMMimeType, chunk.MimeType)

	decoded, err := base64.StdEncoding.DecodeString(chunk.Data)
	assert.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, decoded)
}
