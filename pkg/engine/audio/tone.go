package audio

import (
	"encoding/binary"
	"math"
	"time"
)

// fadeDuration is the linear fade applied at both ends of a tone to avoid clicks
const fadeDuration = 5 * time.Millisecond

// Synthesize renders a tone as signed 16-bit little-endian stereo PCM
func Synthesize(t Tone, sampleRate int) ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	samples := int(t.Duration.Seconds() * float64(sampleRate))
	fade := int(fadeDuration.Seconds() * float64(sampleRate))
	if fade*2 > samples {
		fade = samples / 2
	}

	buf := make([]byte, samples*4)
	for i := 0; i < samples; i++ {
		phase := t.Frequency * float64(i) / float64(sampleRate)
		v := oscillate(t.Waveform, phase) * t.Gain

		// Envelope
		switch {
		case fade > 0 && i < fade:
			v *= float64(i) / float64(fade)
		case fade > 0 && i >= samples-fade:
			v *= float64(samples-1-i) / float64(fade)
		}

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf, nil
}

// oscillate returns the waveform value in [-1, 1] at the given phase (in cycles)
func oscillate(w Waveform, phase float64) float64 {
	frac := phase - math.Floor(phase)
	switch w {
	case Sine:
		return math.Sin(2 * math.Pi * frac)
	case Square:
		if frac < 0.5 {
			return 1
		}
		return -1
	default:
		// Triangle: 0 at frac 0, peaks at 0.25, troughs at 0.75
		shifted := frac + 0.75
		shifted -= math.Floor(shifted)
		return 4*math.Abs(shifted-0.5) - 1
	}
}
