// SPDX-License-Identifier: EPL-2.0

package wav

import "io"

// WriteWAV16 writes a complete mono 16-bit PCM WAV at sampleRate.
func WriteWAV16(w io.Writer, sampleRate int, samples []int16) error {
	enc, err := NewEncoder[int16](w, sampleRate, 1)
	if err != nil {
		return err
	}

	if err := enc.WriteHeader(len(samples)); err != nil {
		return err
	}

	if _, err := WriteSamples(enc, samples); err != nil {
		return err
	}

	return nil
}
