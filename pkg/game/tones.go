package game

import "math"

// PCM synthesis for the few sounds the game needs. The format matches what
// the ebiten audio context consumes: 16-bit signed little-endian, stereo,
// interleaved, at the context sample rate.

// appendTone appends a sine tone with a short attack/release envelope so
// notes start and stop without clicks.
func appendTone(buf []byte, sampleRate int, freq, duration, volume float64) []byte {
	n := int(float64(sampleRate) * duration)
	fade := int(float64(sampleRate) * 0.01)
	if fade*2 > n {
		fade = n / 2
	}
	for i := 0; i < n; i++ {
		env := 1.0
		if i < fade {
			env = float64(i) / float64(fade)
		} else if i > n-fade {
			env = float64(n-i) / float64(fade)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * volume * env
		s := int16(v * math.MaxInt16)
		lo, hi := byte(s), byte(s>>8)
		// left, right
		buf = append(buf, lo, hi, lo, hi)
	}
	return buf
}

// appendSilence appends a gap between notes.
func appendSilence(buf []byte, sampleRate int, duration float64) []byte {
	n := int(float64(sampleRate)*duration) * 4
	return append(buf, make([]byte, n)...)
}

// pickupPCM is a bright two-note blip played on collection.
func pickupPCM(sampleRate int) []byte {
	buf := appendTone(nil, sampleRate, 880, 0.07, 0.35)
	buf = appendTone(buf, sampleRate, 1318.5, 0.10, 0.35)
	return buf
}

// jumpPCM is a short rising tick.
func jumpPCM(sampleRate int) []byte {
	buf := appendTone(nil, sampleRate, 440, 0.04, 0.25)
	buf = appendTone(buf, sampleRate, 587.3, 0.05, 0.25)
	return buf
}

// winPCM is a small ascending arpeggio for the congratulation.
func winPCM(sampleRate int) []byte {
	var buf []byte
	for _, freq := range []float64{523.25, 659.25, 784.0, 1046.5} {
		buf = appendTone(buf, sampleRate, freq, 0.12, 0.3)
		buf = appendSilence(buf, sampleRate, 0.02)
	}
	return buf
}

// musicPCM is a quiet four-chord pad that loops seamlessly.
func musicPCM(sampleRate int) []byte {
	chords := [][]float64{
		{261.63, 329.63, 392.0},  // C major
		{220.0, 261.63, 329.63},  // A minor
		{174.61, 220.0, 261.63},  // F major
		{196.0, 246.94, 293.66},  // G major
	}
	const chordDur = 1.5
	var buf []byte
	for _, chord := range chords {
		n := int(float64(sampleRate) * chordDur)
		fade := int(float64(sampleRate) * 0.05)
		for i := 0; i < n; i++ {
			env := 1.0
			if i < fade {
				env = float64(i) / float64(fade)
			} else if i > n-fade {
				env = float64(n-i) / float64(fade)
			}
			var v float64
			for _, freq := range chord {
				v += math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
			}
			v = v / float64(len(chord)) * 0.12 * env
			s := int16(v * math.MaxInt16)
			lo, hi := byte(s), byte(s>>8)
			buf = append(buf, lo, hi, lo, hi)
		}
	}
	return buf
}
