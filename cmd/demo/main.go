// Demo renders the normalized input state live: hold a key, drag the mouse
// or plug in a pad and watch the per-frame signals.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/milk9111/framepad/canvas"
	"github.com/milk9111/framepad/config"
	"github.com/milk9111/framepad/driver"
	"github.com/milk9111/framepad/input"
	"github.com/milk9111/framepad/pointer"
)

const (
	baseWidth  = 640
	baseHeight = 360
)

type Game struct {
	driver  *driver.Driver
	in      *input.Input
	pt      *pointer.Pointer
	watcher *config.Watcher
}

func (g *Game) Update() error {
	if g.watcher != nil {
		select {
		case name, ok := <-g.watcher.Events:
			if ok {
				g.reload(name)
			}
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("settings watcher: %v", err)
			}
		default:
		}
	}

	g.driver.Update()
	return nil
}

func (g *Game) reload(name string) {
	s, err := config.Load(name)
	if err != nil {
		log.Printf("reload settings: %v", err)
		return
	}
	if err := s.Apply(g.in, g.pt); err != nil {
		log.Printf("apply settings: %v", err)
		return
	}
	log.Printf("reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	var held, trig []string
	for _, b := range input.Buttons() {
		if g.in.IsPressed(b) {
			held = append(held, b.String())
		}
		if g.in.IsTriggered(b) {
			trig = append(trig, b.String())
		}
	}

	msg := fmt.Sprintf(
		"dir4: %d  dir8: %d\nheld: %s\ntriggered: %s\npointer: (%d, %d) pressed=%v trig=%v cancel=%v moved=%v released=%v click=%v\nwheel: (%.1f, %.1f)",
		g.in.Dir4(), g.in.Dir8(),
		strings.Join(held, " "),
		strings.Join(trig, " "),
		g.pt.X(), g.pt.Y(),
		g.pt.IsPressed(), g.pt.IsTriggered(), g.pt.IsCancelled(),
		g.pt.IsMoved(), g.pt.IsReleased(), g.pt.IsClicked(),
		g.pt.WheelX(), g.pt.WheelY(),
	)
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func main() {
	cfgPath := flag.String("config", "", "input settings yaml (optional)")
	watch := flag.Bool("watch", false, "reload settings when the file changes")
	flag.Parse()

	in := input.New()
	pt := pointer.New(canvas.Transform{Width: baseWidth, Height: baseHeight})

	if *cfgPath != "" {
		s, err := config.Load(*cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.Apply(in, pt); err != nil {
			log.Fatal(err)
		}
	}

	g := &Game{driver: driver.New(in, pt), in: in, pt: pt}

	if *cfgPath != "" && *watch {
		w, err := config.NewWatcher(*cfgPath)
		if err != nil {
			log.Printf("watch %s: %v", *cfgPath, err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("framepad demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
