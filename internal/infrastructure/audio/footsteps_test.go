package audio

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/portfoliotown/internal/domain/entity"
)

func peak(pcm []byte) int {
	m := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

func TestFootstepPCM_Shape(t *testing.T) {
	pcm := FootstepPCM("grass", 44100)

	// Two 0.25s steps of 16-bit stereo frames
	assert.Len(t, pcm, 2*11025*4)
	assert.Greater(t, peak(pcm), 0)
}

func TestFootstepPCM_ChannelsMatch(t *testing.T) {
	pcm := FootstepPCM("wood", 22050)

	for i := 0; i+3 < len(pcm); i += 4 {
		if pcm[i] != pcm[i+2] || pcm[i+1] != pcm[i+3] {
			t.Fatalf("frame %d differs between channels", i/4)
		}
	}
}

func TestFootstepPCM_FloorsDiffer(t *testing.T) {
	grass := FootstepPCM("grass", 22050)
	wood := FootstepPCM("wood", 22050)

	assert.Equal(t, len(grass), len(wood))
	assert.NotEqual(t, grass, wood)
}

func TestFootstepPCM_Deterministic(t *testing.T) {
	assert.Equal(t, FootstepPCM("wood", 22050), FootstepPCM("wood", 22050))
	assert.NotEmpty(t, FootstepPCM(entity.FloorID("marble"), 22050))
}

func TestFootsteps_NilIsSilent(t *testing.T) {
	var f *Footsteps = NewFootsteps(nil, 0.5)

	assert.Nil(t, f)
	assert.NotPanics(t, func() {
		f.Update("grass", true)
		f.Update("grass", false)
		f.Stop()
	})
}
