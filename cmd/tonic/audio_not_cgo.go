//go:build !cgo

package main

import (
	"errors"

	"github.com/vsariola/tonic"
)

func newAudioContext() (tonic.AudioContext, error) {
	// oto needs cgo on most platforms, so without it there is no playback
	return nil, errors.New("built without cgo, audio playback is not available")
}
