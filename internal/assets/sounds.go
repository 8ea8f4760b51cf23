package assets

import (
	"fmt"
	"math"
	"math/rand"
)

// Sound names one of the game's sound effects.
type Sound int

const (
	SoundDie Sound = iota
	SoundHit
	SoundPoint
	SoundSwoosh
	SoundWing
	soundCount
)

var soundNames = [soundCount]string{"die", "hit", "point", "swoosh", "wing"}

func (s Sound) String() string {
	if s >= 0 && s < soundCount {
		return soundNames[s]
	}
	return fmt.Sprintf("sound(%d)", int(s))
}

// AllSounds lists every sound effect.
func AllSounds() []Sound {
	out := make([]Sound, 0, soundCount)
	for s := Sound(0); s < soundCount; s++ {
		out = append(out, s)
	}
	return out
}

// Sounds holds pre-rendered PCM for every effect: signed 16-bit little endian,
// two interleaved channels.
type Sounds struct {
	sampleRate int
	pcm        [soundCount][]byte
}

// NewSounds synthesizes every effect at the given sample rate.
func NewSounds(sampleRate int) (*Sounds, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("assets: invalid sample rate %d", sampleRate)
	}
	s := &Sounds{sampleRate: sampleRate}
	for _, snd := range AllSounds() {
		s.pcm[snd] = encodeStereo(synth(snd, sampleRate))
	}
	return s, nil
}

// SampleRate returns the rate the PCM was rendered at.
func (s *Sounds) SampleRate() int {
	return s.sampleRate
}

// PCM returns the raw samples of a sound, or nil for an unknown one.
func (s *Sounds) PCM(snd Sound) []byte {
	if snd < 0 || snd >= soundCount {
		return nil
	}
	return s.pcm[snd]
}

// synth renders a mono waveform in [-1, 1].
func synth(snd Sound, rate int) []float64 {
	noise := rand.New(rand.NewSource(int64(snd) + 1))
	lowpass := newLowpass(noise)
	switch snd {
	case SoundWing:
		// Short filtered noise burst.
		return render(rate, 0.09, func(t, p float64) float64 {
			return lowpass(0.25) * decay(t, 40)
		})
	case SoundPoint:
		// Two rising chime notes.
		return render(rate, 0.22, func(t, p float64) float64 {
			freq := 988.0
			if t > 0.07 {
				freq = 1319
			}
			return square(freq*t) * 0.5 * decay(math.Mod(t, 0.07), 12)
		})
	case SoundHit:
		// Low thump with a noisy attack.
		return render(rate, 0.14, func(t, p float64) float64 {
			thump := math.Sin(2 * math.Pi * 110 * t)
			return (thump*0.8 + noise.Float64()*0.4 - 0.2) * decay(t, 25)
		})
	case SoundDie:
		// Falling tone.
		phase := 0.0
		return render(rate, 0.45, func(t, p float64) float64 {
			freq := 620 - 470*p
			phase += freq / float64(rate)
			return math.Sin(2*math.Pi*phase) * 0.7 * (1 - p)
		})
	case SoundSwoosh:
		// Noise that swells and fades.
		return render(rate, 0.3, func(t, p float64) float64 {
			return lowpass(0.08 + 0.3*p) * math.Sin(math.Pi*p) * 0.9
		})
	}
	return nil
}

// render samples fn for dur seconds. fn receives the time in seconds and the
// progress through the sound in [0, 1).
func render(rate int, dur float64, fn func(t, p float64) float64) []float64 {
	n := int(float64(rate) * dur)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(rate)
		out[i] = fn(t, float64(i)/float64(n))
	}
	return out
}

// newLowpass returns a source of white noise smoothed by a one-pole filter
// with coefficient k.
func newLowpass(rng *rand.Rand) func(k float64) float64 {
	var state float64
	return func(k float64) float64 {
		state += k * (rng.Float64()*2 - 1 - state)
		return state * 2
	}
}

func decay(t, rate float64) float64 {
	return math.Exp(-rate * t)
}

func square(cycles float64) float64 {
	if math.Mod(cycles, 1) < 0.5 {
		return 1
	}
	return -1
}

func encodeStereo(samples []float64) []byte {
	buf := make([]byte, len(samples)*4)
	for i, v := range samples {
		v = math.Max(-1, math.Min(1, v))
		s := int16(v * 0.8 * math.MaxInt16)
		for ch := 0; ch < 2; ch++ {
			idx := i*4 + ch*2
			buf[idx] = byte(s)
			buf[idx+1] = byte(s >> 8)
		}
	}
	return buf
}
