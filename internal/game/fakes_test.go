package game

import "image/color"

// fixedSigns returns its signs in order, then repeats the last one
type fixedSigns struct {
	signs []int
	i     int
}

func (f *fixedSigns) Sign() int {
	if len(f.signs) == 0 {
		return 1
	}
	s := f.signs[f.i]
	if f.i < len(f.signs)-1 {
		f.i++
	}
	return s
}

type fakeAudio struct {
	cues []Cue
}

func (a *fakeAudio) Play(c Cue) {
	a.cues = append(a.cues, c)
}

func (a *fakeAudio) count(c Cue) int {
	n := 0
	for _, got := range a.cues {
		if got == c {
			n++
		}
	}
	return n
}

type fakeInput struct {
	pressed []Key
	held    map[Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{held: make(map[Key]bool)}
}

func (in *fakeInput) Pressed() []Key {
	p := in.pressed
	in.pressed = nil
	return p
}

func (in *fakeInput) Held(k Key) bool {
	return in.held[k]
}

type fakeRenderer struct {
	clears int
	rects  []Rect
}

func (r *fakeRenderer) Clear() {
	r.clears++
	r.rects = r.rects[:0]
}

func (r *fakeRenderer) FillRect(rect Rect, c color.Color) {
	r.rects = append(r.rects, rect)
}

type fakeDisplay struct {
	caption string
}

func (d *fakeDisplay) SetCaption(caption string) {
	d.caption = caption
}

type fakeClock float64

func (c fakeClock) FPS() float64 {
	return float64(c)
}

type harness struct {
	game     *Game
	renderer *fakeRenderer
	audio    *fakeAudio
	input    *fakeInput
	display  *fakeDisplay
}

func newHarness(opts Options) *harness {
	h := &harness{
		renderer: &fakeRenderer{},
		audio:    &fakeAudio{},
		input:    newFakeInput(),
		display:  &fakeDisplay{},
	}
	if opts.Signs == nil {
		opts.Signs = &fixedSigns{signs: []int{1}}
	}
	h.game = New(h.renderer, h.audio, h.input, h.display, fakeClock(60), opts)
	return h
}

// playing returns a harness already in the Playing phase
func playing(opts Options) *harness {
	h := newHarness(opts)
	h.game.state.Phase = PhasePlaying
	return h
}
