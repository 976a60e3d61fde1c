//go:build cgo

package main

import (
	"github.com/vsariola/tonic"
	"github.com/vsariola/tonic/oto"
)

func newAudioContext() (tonic.AudioContext, error) {
	c, err := oto.NewContext()
	if err != nil {
		return nil, err
	}
	return c, nil
}
