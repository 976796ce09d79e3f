package host

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/nf/c8/chip8"
)

var errNotTerminal = errors.New("terminal frontend: standard input is not a terminal")

const termHelp = "esc quits"

// termView draws the display with half-block runes, two pixel rows to a
// terminal cell, above a status line.
type termView struct {
	r *Runner

	app     *tview.Application
	display *tview.Box
	status  *tview.TextView

	mu    sync.Mutex
	frame frame
	beep  bool
	held  map[byte]time.Time // pressed keys and when to release them
}

func newTermView(r *Runner) *termView {
	v := &termView{
		r:       r,
		app:     tview.NewApplication(),
		display: tview.NewBox(),
		status: tview.NewTextView().
			SetWrap(false),
		held: make(map[byte]time.Time),
	}
	v.display.
		SetBorder(true).
		SetTitle(" c8 ")
	v.display.SetDrawFunc(v.draw)
	v.status.SetText(termHelp)
	v.status.SetBackgroundColor(tcell.ColorDarkGrey)

	rows := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.display, chip8.Height/2+2, 0, false).
		AddItem(v.status, 1, 0, false).
		AddItem(nil, 0, 1, false)
	cols := tview.NewFlex().
		AddItem(rows, chip8.Width+2, 0, false).
		AddItem(nil, 0, 1, false)
	v.app.SetRoot(cols, true)

	v.app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			v.app.Stop()
			return nil
		case tcell.KeyRune:
			if k, ok := r.cfg.Keymap.Lookup(ev.Rune()); ok {
				v.press(k)
			}
			return nil
		}
		return ev
	})
	return v
}

func (r *Runner) runTerminal(ctx context.Context) error {
	if !isTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	v := newTermView(r)
	done := make(chan struct{})
	go v.refresh(ctx, done)
	err := v.app.Run()
	close(done)
	return err
}

// refresh copies published frames into the view and releases held keys
// until done is closed. Once ctx is cancelled it stops the application,
// repeatedly, since Stop has no effect before the application starts.
func (v *termView) refresh(ctx context.Context, done <-chan struct{}) {
	t := time.NewTicker(time.Second / time.Duration(v.r.cfg.FrameRate))
	defer t.Stop()
	var seq uint64
	for {
		select {
		case <-done:
			return
		case now := <-t.C:
			if ctx.Err() != nil {
				v.app.Stop()
				continue
			}
			v.release(now)
			f, changed := v.r.fb.snapshot(seq)
			if !changed {
				continue
			}
			v.mu.Lock()
			v.beep = v.beep || f.beeps != v.frame.beeps
			v.frame = f
			v.mu.Unlock()
			seq = f.seq
			status := f.status
			if status == "" {
				status = termHelp
			}
			v.app.QueueUpdateDraw(func() {
				v.status.SetText(status)
			})
		}
	}
}

// press holds k down for KeyHold. Terminals report no key releases, but
// auto-repeat presses arrive often enough to keep a held key down.
func (v *termView) press(k byte) {
	v.mu.Lock()
	_, down := v.held[k]
	v.held[k] = time.Now().Add(v.r.cfg.KeyHold)
	v.mu.Unlock()
	if !down {
		v.r.KeyPress(k, true)
	}
}

func (v *termView) release(now time.Time) {
	var up []byte
	v.mu.Lock()
	for k, until := range v.held {
		if now.After(until) {
			delete(v.held, k)
			up = append(up, k)
		}
	}
	v.mu.Unlock()
	for _, k := range up {
		v.r.KeyPress(k, false)
	}
}

func (v *termView) draw(s tcell.Screen, x, y, width, height int) (int, int, int, int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.beep {
		s.Beep()
		v.beep = false
	}
	var (
		on    = tcell.NewRGBColor(int32(colorOn.R), int32(colorOn.G), int32(colorOn.B))
		off   = tcell.NewRGBColor(int32(colorOff.R), int32(colorOff.G), int32(colorOff.B))
		style = tcell.StyleDefault.Foreground(on).Background(off)
	)
	for cy := 0; cy < chip8.Height/2 && cy < height-2; cy++ {
		for cx := 0; cx < chip8.Width && cx < width-2; cx++ {
			var (
				top = v.frame.screen.Pixel(cx, 2*cy)
				bot = v.frame.screen.Pixel(cx, 2*cy+1)
				c   = ' '
			)
			switch {
			case top && bot:
				c = '█'
			case top:
				c = '▀'
			case bot:
				c = '▄'
			}
			s.SetContent(x+1+cx, y+1+cy, c, nil, style)
		}
	}
	return x + 1, y + 1, width - 2, height - 2
}
