// Package audio plays the looping footstep sound of the floor the avatar
// walks on.
package audio

import (
	"bytes"
	"encoding/binary"
	"log"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

const (
	stepInterval = 0.25 // Seconds between footfalls
	stepsPerLoop = 2
)

// floorTone describes how one footfall on a floor sounds
type floorTone struct {
	pitch float64 // Hz of the knock component, 0 for none
	noise float64 // Noise share in [0,1]
	decay float64 // Envelope decay rate per second
	gain  float64
}

var floorTones = map[entity.FloorID]floorTone{
	"grass": {pitch: 0, noise: 1, decay: 38, gain: 0.35},
	"wood":  {pitch: 190, noise: 0.35, decay: 28, gain: 0.6},
	"stone": {pitch: 420, noise: 0.5, decay: 45, gain: 0.5},
}

var defaultTone = floorTone{pitch: 140, noise: 0.6, decay: 32, gain: 0.45}

// FootstepPCM synthesizes one loop of footsteps for floor as 16-bit
// little-endian stereo PCM at sampleRate.
func FootstepPCM(floor entity.FloorID, sampleRate int) []byte {
	tone, ok := floorTones[floor]
	if !ok {
		tone = defaultTone
	}

	stepSamples := int(stepInterval * float64(sampleRate))
	total := stepSamples * stepsPerLoop
	buf := make([]byte, total*4)
	rng := rand.New(rand.NewSource(int64(len(floor)) + 7))

	lowpass := 0.0
	for i := 0; i < total; i++ {
		t := float64(i%stepSamples) / float64(sampleRate)
		env := math.Exp(-tone.decay * t)

		lowpass += 0.25 * (rng.Float64()*2 - 1 - lowpass)
		sample := tone.noise * lowpass
		if tone.pitch > 0 {
			sample += (1 - tone.noise) * math.Sin(2*math.Pi*tone.pitch*t)
		}
		sample *= env * tone.gain

		v := int16(math.Max(-1, math.Min(1, sample)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(v))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(v))
	}
	return buf
}

// Footsteps keeps one looping player per floor and plays the one matching
// the current floor while the avatar walks. A nil *Footsteps is silent.
type Footsteps struct {
	ctx     *audio.Context
	volume  float64
	players map[entity.FloorID]*audio.Player
	current *audio.Player
}

// NewFootsteps creates a footstep player. ctx may be nil to disable sound.
func NewFootsteps(ctx *audio.Context, volume float64) *Footsteps {
	if ctx == nil {
		return nil
	}
	return &Footsteps{
		ctx:     ctx,
		volume:  volume,
		players: make(map[entity.FloorID]*audio.Player),
	}
}

// Update starts, switches or pauses the loop
func (f *Footsteps) Update(floor entity.FloorID, walking bool) {
	if f == nil {
		return
	}
	if !walking {
		f.pause()
		return
	}

	p := f.player(floor)
	if p == nil {
		return
	}
	if p != f.current {
		f.pause()
		f.current = p
	}
	if !p.IsPlaying() {
		p.Play()
	}
}

// Stop pauses playback and rewinds every loop
func (f *Footsteps) Stop() {
	if f == nil {
		return
	}
	f.pause()
	for _, p := range f.players {
		if err := p.Rewind(); err != nil {
			log.Printf("footsteps: rewind: %v", err)
		}
	}
	f.current = nil
}

func (f *Footsteps) pause() {
	if f.current != nil && f.current.IsPlaying() {
		f.current.Pause()
	}
}

func (f *Footsteps) player(floor entity.FloorID) *audio.Player {
	if p, ok := f.players[floor]; ok {
		return p
	}
	pcm := FootstepPCM(floor, f.ctx.SampleRate())
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := f.ctx.NewPlayer(loop)
	if err != nil {
		log.Printf("footsteps: %s: %v", floor, err)
		return nil
	}
	p.SetVolume(f.volume)
	f.players[floor] = p
	return p
}
