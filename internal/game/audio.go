package game

import (
	"bytes"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const sampleRate = 44100

type sound int

const (
	soundShot sound = iota
	soundKill
	soundWin
	soundLose
)

// soundBoard holds the synthesized effects. A nil board is silent.
type soundBoard struct {
	ctx     *audio.Context
	players map[sound]*audio.Player
}

func newSoundBoard() *soundBoard {
	ctx := audio.NewContext(sampleRate)
	return &soundBoard{
		ctx: ctx,
		players: map[sound]*audio.Player{
			soundShot: newBeep(ctx, 950, 0.05),
			soundKill: newBeep(ctx, 240, 0.12),
			soundWin:  newBeep(ctx, 660, 0.6),
			soundLose: newBeep(ctx, 110, 0.8),
		},
	}
}

// beepPCM synthesizes a sine tone as 16-bit little-endian stereo with a
// linear fade-out so it ends without a click.
func beepPCM(freq, durSec float64) []byte {
	n := int(sampleRate * durSec)
	pcm := make([]byte, n*4)
	const amp = 0.3
	for i := 0; i < n; i++ {
		fade := 1 - float64(i)/float64(n)
		v := math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * amp * fade
		s := int16(v * math.MaxInt16)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

func newBeep(ctx *audio.Context, freq, durSec float64) *audio.Player {
	p, err := audio.NewPlayer(ctx, bytes.NewReader(beepPCM(freq, durSec)))
	if err != nil {
		log.Printf("[Audio] Warning: beep %.0fHz unavailable: %v", freq, err)
		return nil
	}
	return p
}

func (sb *soundBoard) play(s sound) {
	if sb == nil {
		return
	}
	p := sb.players[s]
	if p == nil {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
