package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a wave whose frequency slides linearly from
// freq to endFreq over its duration.
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a fixed-frequency oscillator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator sliding from startFreq to endFreq.
func NewSweep(startFreq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     startFreq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(startFreq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration with the given attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, d, attack, release, rate)
}

// CreateShotSound is a falling square-wave zap.
func CreateShotSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return shaped(NewSweep(1400, 500, d, WaveSquare, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
}

// CreateEnemyShotSound is a lower, softer saw zap.
func CreateEnemyShotSound(rate beep.SampleRate) beep.Streamer {
	d := 100 * time.Millisecond
	return shaped(NewSweep(700, 300, d, WaveSaw, rate), d, 2*time.Millisecond, 50*time.Millisecond, rate)
}

// CreateExplosionSound is a noise burst over a low rumble.
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	d := 350 * time.Millisecond
	return beep.Mix(
		newVolume(shaped(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, 300*time.Millisecond, rate), 0.6),
		newVolume(shaped(NewSweep(120, 40, d, WaveSine, rate), d, time.Millisecond, 250*time.Millisecond, rate), 0.5),
	)
}

// CreateHitSound is a short harsh buzz.
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	d := 150 * time.Millisecond
	return shaped(NewOscillator(110, d, WaveSaw, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate)
}

// CreateLifeLostSound is two falling notes.
func CreateLifeLostSound(rate beep.SampleRate) beep.Streamer {
	d := 180 * time.Millisecond
	return beep.Seq(
		shaped(NewOscillator(392.00, d, WaveSquare, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate),
		shaped(NewOscillator(261.63, d, WaveSquare, rate), d, 5*time.Millisecond, 90*time.Millisecond, rate),
	)
}

// CreateLevelUpSound is a rising major arpeggio.
func CreateLevelUpSound(rate beep.SampleRate) beep.Streamer {
	d := 90 * time.Millisecond
	notes := []float64{523.25, 659.25, 783.99, 1046.50}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		parts = append(parts, shaped(NewOscillator(f, d, WaveSine, rate), d, 5*time.Millisecond, 40*time.Millisecond, rate))
	}
	return beep.Seq(parts...)
}

// CreateGameOverSound is a long falling sweep.
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	d := 1200 * time.Millisecond
	return shaped(NewSweep(440, 55, d, WaveSaw, rate), d, 10*time.Millisecond, 600*time.Millisecond, rate)
}

// GetSoundEffect returns the streamer for st mixed to its configured volume.
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	var s beep.Streamer
	switch st {
	case SoundShot:
		s = CreateShotSound(rate)
	case SoundEnemyShot:
		s = CreateEnemyShotSound(rate)
	case SoundExplosion:
		s = CreateExplosionSound(rate)
	case SoundHit:
		s = CreateHitSound(rate)
	case SoundLifeLost:
		s = CreateLifeLostSound(rate)
	case SoundLevelUp:
		s = CreateLevelUpSound(rate)
	case SoundGameOver:
		s = CreateGameOverSound(rate)
	default:
		return nil
	}
	return newVolume(s, cfg.EffectVolumes[st]*cfg.MasterVolume)
}
