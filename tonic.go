/*
Package tonic models rooted musical scales.

A Scale is a root Note and a cyclically repeating list of steps, in
semitones, between consecutive degrees:

	s, err := tonic.NewScale(c, tonic.Named("major"))
	s.Get(2)           // E0, the third
	s.Index(g)         // 4
	s.Transpose(e, 2)  // G0, a third up from E
	s.Names()          // [major ionian]
	s.Relative()       // A minor, true

Steps come from the built-in registry of named scales (Named), from another
scale (Like) or are given explicitly (Steps). Names are looked up after a
shallow normalization; see NormalizeName.

Besides the scale itself, the package renders scales as Standard MIDI Files
(WriteMIDI) and as audio (Play, SineSynth, Wav, Raw), and reads and writes
scale documents in YAML or JSON (ParseScale, Scale.Document).
*/
package tonic
