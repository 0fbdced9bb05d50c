package audio

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/pong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var format = beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2}

// cueFiles are the sound files looked up in the sfx directory
var cueFiles = map[game.Cue]string{
	game.CuePaddle: "paddle.mp3",
	game.CueWall:   "wall.mp3",
	game.CueScore:  "score.mp3",
}

// Options configures a Player
type Options struct {
	// SfxDir optionally holds paddle.mp3, wall.mp3 and score.mp3
	SfxDir string
	Logger *slog.Logger
}

// Player plays game cues through the speaker
type Player struct {
	mu      sync.Mutex
	buffers map[game.Cue]*beep.Buffer
	closed  bool
}

// New initializes the speaker and prepares every cue
func New(opts Options) (*Player, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	buffers, err := LoadCues(opts.SfxDir, log)
	if err != nil {
		return nil, err
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return nil, fmt.Errorf("failed to initialize speaker: %w", err)
	}

	return &Player{buffers: buffers}, nil
}

// Play starts the cue and returns immediately
func (p *Player) Play(c game.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	buf, ok := p.buffers[c]
	if !ok {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Close shuts down the audio system
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}

// Silent discards every cue
type Silent struct{}

func (Silent) Play(game.Cue) {}

// LoadCues renders every cue into a buffer. Files found in dir take precedence
// over the synthesized tones.
func LoadCues(dir string, log *slog.Logger) (map[game.Cue]*beep.Buffer, error) {
	buffers := make(map[game.Cue]*beep.Buffer, len(cueFiles))

	for cue, name := range cueFiles {
		if dir != "" {
			buf, err := loadFile(filepath.Join(dir, name))
			switch {
			case err == nil:
				log.Debug("loaded sound effect", "cue", cue.String(), "file", name)
				buffers[cue] = buf
				continue
			case errors.Is(err, fs.ErrNotExist):
				log.Debug("sound effect missing, using tone", "cue", cue.String(), "file", name)
			default:
				return nil, err
			}
		}
		buffers[cue] = synthesize(cue)
	}

	return buffers, nil
}

// loadFile decodes an mp3 file and resamples it to the speaker rate
func loadFile(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	streamer, fileFormat, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if fileFormat.SampleRate != sampleRate {
		s = beep.Resample(4, fileFormat.SampleRate, sampleRate, streamer)
	}

	buf := beep.NewBuffer(format)
	buf.Append(s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return buf, nil
}

// synthesize builds the fallback tone for a cue
func synthesize(c game.Cue) *beep.Buffer {
	buf := beep.NewBuffer(format)
	switch c {
	case game.CuePaddle:
		// High-pitched short beep
		buf.Append(squareWave(880, 50*time.Millisecond))
	case game.CueWall:
		// Medium-pitched short beep
		buf.Append(squareWave(440, 30*time.Millisecond))
	case game.CueScore:
		// Descending tone for score
		buf.Append(beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		))
	}
	return buf
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			// Square wave: positive or negative based on phase
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}
