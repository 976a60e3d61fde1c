package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vsariola/tonic"
)

type (
	// Config holds the defaults read from the --config file. Flags given on
	// the command line override them.
	Config struct {
		Format   string      `yaml:"format,omitempty"`
		Template string      `yaml:"template,omitempty"`
		Audio    AudioConfig `yaml:"audio,omitempty"`
		MIDI     MIDIConfig  `yaml:"midi,omitempty"`
	}

	AudioConfig struct {
		BPM    float64 `yaml:"bpm,omitempty"`
		Octave int     `yaml:"octave,omitempty"`
		Hold   float64 `yaml:"hold,omitempty"`
		Gain   float32 `yaml:"gain,omitempty"`
		PCM16  bool    `yaml:"pcm16,omitempty"`
	}

	MIDIConfig struct {
		BPM      float64 `yaml:"bpm,omitempty"`
		Ticks    uint16  `yaml:"ticks,omitempty"`
		Velocity uint8   `yaml:"velocity,omitempty"`
		Channel  uint8   `yaml:"channel,omitempty"`
		Octave   int     `yaml:"octave,omitempty"`
	}
)

// LoadConfig reads a YAML config file. Unknown keys are an error, so typos do
// not go unnoticed.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open config: %w", err)
	}
	defer f.Close()
	var cfg Config
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse config %v: %w", path, err)
	}
	return &cfg, nil
}

// PlayOptions converts the audio settings to tonic.PlayOptions.
func (c AudioConfig) PlayOptions() tonic.PlayOptions {
	return tonic.PlayOptions{BPM: c.BPM, Octave: c.Octave, Hold: c.Hold}
}

// MIDIOptions converts the MIDI settings to tonic.MIDIOptions.
func (c MIDIConfig) MIDIOptions() tonic.MIDIOptions {
	return tonic.MIDIOptions{
		BPM:      c.BPM,
		Ticks:    c.Ticks,
		Velocity: c.Velocity,
		Channel:  c.Channel,
		Octave:   c.Octave,
	}
}
