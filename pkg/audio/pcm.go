package audio

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"math"
)

const (
	SampleRate = 16000
	Channels   = 1

	// PCMMimeType is the realtime chunk mime type expected by the live
	// transcription endpoint.
	PCMMimeType = "audio/pcm;rate=16000"
)

// DecodeFloat32 interprets raw as little-endian float32 samples.
func DecodeFloat32(raw []byte) ([]float32, error) {
	if len(raw)%4 != 0 {
		return nil, fmt.Errorf("float32 frame length must be a multiple of 4, got %d", len(raw))
	}

	samples := make([]float32, len(raw)/4)
	for i := range samples {
		bits := binary.LittleEndian.Uint32(raw[i*4:])
		samples[i] = math.Float32frombits(bits)
	}
	return samples, nil
}

// Float32ToPCM16 converts float samples in [-1, 1] to 16-bit signed
// little-endian PCM, clamping out-of-range values.
func Float32ToPCM16(samples []float32) []byte {
	out := make([]byte, len(samples)*2)
	for i, s := range samples {
		v := int32(s * 32768)
		if v > math.MaxInt16 {
			v = math.MaxInt16
		} else if v < math.MinInt16 {
			v = math.MinInt16
		}
		binary.LittleEndian.PutUint16(out[i*2:], uint16(int16(v)))
	}
	return out
}

// Chunk is one realtime audio chunk ready to push into a live session.
type Chunk struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// NewChunk base64-encodes pcm bytes into a realtime input chunk.
func NewChunk(pcm []byte) Chunk {
	return Chunk{
		MimeType: PCMMimeType,
		Data:     base64.StdEncoding.EncodeToString(pcm),
	}
}
