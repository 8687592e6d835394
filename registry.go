// SPDX-License-Identifier: EPL-2.0

package riffwave

import (
	"path/filepath"
	"strings"

	"github.com/ik5/riffwave/audio"
	"github.com/ik5/riffwave/formats/aiff"
	"github.com/ik5/riffwave/formats/flac"
	"github.com/ik5/riffwave/formats/mp3"
	"github.com/ik5/riffwave/formats/vorbis"
	"github.com/ik5/riffwave/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder, keyed by the
// usual file extensions without the dot.
func NewRegistry(opts ...wav.Option) *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.SourceDecoder{Options: opts})
	reg.Register("wave", wav.SourceDecoder{Options: opts})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// FormatOf returns the registry key for a file name: its extension, lower
// cased and without the dot.
func FormatOf(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
