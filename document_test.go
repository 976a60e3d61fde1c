package tonic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vsariola/tonic"
)

func TestDocumentRoundTrip(t *testing.T) {
	scales := []tonic.Scale{
		tonic.MustScale(tonic.Note(6), tonic.Named("harmonic minor")),
		tonic.MustScale(tonic.Note(2), tonic.Steps(1, 3, 3, 5)),
	}
	for _, s := range scales {
		j, err := json.Marshal(s)
		require.NoError(t, err)
		fromJSON, err := tonic.ParseScale(j)
		require.NoError(t, err, "%s", j)
		assert.True(t, s.Equal(fromJSON), "%#v != %#v", s, fromJSON)

		y, err := yaml.Marshal(s)
		require.NoError(t, err)
		fromYAML, err := tonic.ParseScale(y)
		require.NoError(t, err, "%s", y)
		assert.True(t, s.Equal(fromYAML), "%#v != %#v", s, fromYAML)
	}
}

func TestDocument(t *testing.T) {
	doc := tonic.MustScale(tonic.Note(49), tonic.Named("Dorian Mode")).Document()
	assert.Equal(t, tonic.ScaleDocument{Root: "C#", Name: "dorian"}, doc)

	doc = tonic.MustScale(tonic.Note(0), tonic.Steps(4, 3, 5)).Document()
	assert.Equal(t, tonic.ScaleDocument{Root: "C", Steps: []int{4, 3, 5}}, doc)
}

func TestParseScaleYAML(t *testing.T) {
	s, err := tonic.ParseScale([]byte("root: Eb\nname: pentatonic minor\n"))
	require.NoError(t, err)
	assert.Equal(t, "D#", s.Root().Name())
	assert.Equal(t, []int{3, 2, 2, 3, 2}, s.Intervals())

	s, err = tonic.ParseScale([]byte("root: G\nsteps: [2, 2, 3, 2, 3]\n"))
	require.NoError(t, err)
	name, err := s.Name()
	require.NoError(t, err)
	assert.Equal(t, "pentatonicmajor", name)
}

func TestParseScaleNamePrecedesSteps(t *testing.T) {
	s, err := tonic.ParseScale([]byte(`{"root": "C", "name": "minor", "steps": [1, 1]}`))
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2, 2, 1, 2, 2}, s.Intervals())
}

func TestParseScaleErrors(t *testing.T) {
	_, err := tonic.ParseScale([]byte(`{"root": "C"}`))
	assert.ErrorIs(t, err, tonic.ErrUnsupportedSpecifier)

	_, err = tonic.ParseScale([]byte(`{"root": "X", "name": "major"}`))
	assert.ErrorIs(t, err, tonic.ErrInvalidNote)

	_, err = tonic.ParseScale([]byte(`{"root": "C", "name": "natural minor"}`))
	assert.ErrorIs(t, err, tonic.ErrNameNotFound)

	_, err = tonic.ParseScale([]byte(`{"root": "C", "steps": [2, 0]}`))
	assert.ErrorIs(t, err, tonic.ErrInvalidPattern)

	_, err = tonic.ParseScale([]byte("root: [C\n"))
	assert.Error(t, err)
}
