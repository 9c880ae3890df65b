// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"encoding/binary"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"
	"github.com/ik5/physaudio/formats/internal/pcmsrc"
)

const headerSize = 44

// WritePCM16 writes a canonical 44-byte header WAV with interleaved 16-bit
// samples. Unlike Encode it only needs an io.Writer, so it can stream to
// sockets and pipes.
func WritePCM16(w io.Writer, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	const bytesPerSample = 2
	dataSize := uint32(len(samples) * bytesPerSample)

	header := make([]byte, headerSize)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")

	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16)
	binary.LittleEndian.PutUint16(header[20:22], pcmFormat)
	binary.LittleEndian.PutUint16(header[22:24], uint16(channels))
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], uint32(sampleRate*channels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[32:34], uint16(channels*bytesPerSample))
	binary.LittleEndian.PutUint16(header[34:36], 16)

	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)

	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("%w", err)
	}

	const chunk = 8192
	buf := make([]byte, min(len(samples), chunk)*bytesPerSample)
	for i := 0; i < len(samples); i += chunk {
		part := samples[i:min(i+chunk, len(samples))]
		out := buf[:len(part)*bytesPerSample]
		for j, s := range part {
			binary.LittleEndian.PutUint16(out[2*j:], uint16(s))
		}
		if _, err := w.Write(out); err != nil {
			return fmt.Errorf("%w", err)
		}
	}
	return nil
}

// WriteWAV16 writes mono 16-bit PCM at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	return WritePCM16(w, sampleRate, 1, samples)
}

// Encode writes samples through the go-audio WAV encoder, which patches
// the chunk sizes on Close and therefore needs to seek.
func Encode(ws io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	if channels <= 0 {
		return ErrInvalidChannels
	}

	enc := gowav.NewEncoder(ws, sampleRate, 16, channels, pcmFormat)
	if err := enc.Write(pcmsrc.IntBuffer(samples, sampleRate, channels)); err != nil {
		return fmt.Errorf("encoding wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("closing wav: %w", err)
	}
	return nil
}
