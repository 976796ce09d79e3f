package host

import (
	"context"
	"image"
	"os"
	"time"

	"github.com/retroenv/retrogolib/log"
	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/image/draw"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/nf/c8/chip8"
)

func (r *Runner) runGUI(ctx context.Context) error {
	var err error
	driver.Main(func(s screen.Screen) {
		err = r.gui(ctx, s)
	})
	return err
}

func (r *Runner) gui(ctx context.Context, s screen.Screen) error {
	dim := image.Point{chip8.Width * r.cfg.Scale, chip8.Height * r.cfg.Scale}
	w, err := s.NewWindow(&screen.NewWindowOptions{
		Title:  "c8",
		Width:  dim.X,
		Height: dim.Y,
	})
	if err != nil {
		return err
	}
	defer w.Release()

	buf, err := s.NewBuffer(dim)
	if err != nil {
		return err
	}
	defer buf.Release()
	tex, err := s.NewTexture(dim)
	if err != nil {
		return err
	}
	defer tex.Release()

	type update struct{}
	type quit struct{}
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		t := time.NewTicker(time.Second / time.Duration(r.cfg.FrameRate))
		defer t.Stop()
		for {
			select {
			case <-t.C:
				w.Send(update{})
			case <-ctx.Done():
				w.Send(quit{})
				return
			case <-stop:
				return
			}
		}
	}()

	var (
		sz    size.Event
		img   = image.NewRGBA(image.Rect(0, 0, chip8.Width, chip8.Height))
		seq   uint64
		beeps int
		dirty bool
	)
	for {
		switch e := w.NextEvent().(type) {
		case quit:
			return nil

		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}

		case size.Event:
			sz = e
			if sz.WidthPx+sz.HeightPx == 0 {
				return nil
			}
			dirty = true

		case paint.Event:
			dirty = true

		case key.Event:
			if e.Code == key.CodeEscape {
				return nil
			}
			if e.Direction == key.DirNone {
				continue // auto-repeat
			}
			c := e.Rune
			if c <= 0 {
				c = codeRune(e.Code)
			}
			if k, ok := r.cfg.Keymap.Lookup(c); ok {
				r.KeyPress(k, e.Direction == key.DirPress)
			}

		case update:
			if f, changed := r.fb.snapshot(seq); changed {
				seq = f.seq
				if f.beeps != beeps {
					beeps = f.beeps
					// No audio output; ring the terminal bell. Write
					// errors are ignored.
					os.Stderr.WriteString("\a")
				}
				render(img, &f.screen)
				draw.NearestNeighbor.Scale(buf.RGBA(), buf.Bounds(), img, img.Bounds(), draw.Src, nil)
				tex.Upload(image.Point{}, buf, buf.Bounds())
				dirty = true
			}
			if dirty {
				w.Scale(sz.Bounds(), tex, tex.Bounds(), draw.Src, nil)
				w.Publish()
				dirty = false
			}

		case error:
			r.log.Error("Window event", log.Err(e))
		}
	}
}

// codeRune returns the rune typed by the letter or digit key c without
// modifiers, or -1.
func codeRune(c key.Code) rune {
	switch {
	case c >= key.CodeA && c <= key.CodeZ:
		return 'a' + rune(c-key.CodeA)
	case c >= key.Code1 && c <= key.Code9:
		return '1' + rune(c-key.Code1)
	case c == key.Code0:
		return '0'
	}
	return -1
}
