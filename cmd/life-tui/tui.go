package main

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"sparselife/internal/sim"
	"sparselife/pkg/core"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// tui renders a Session into gocui views and drives it from a background
// ticker. All session access happens under mu.
type tui struct {
	g       *gocui.Gui
	session *sim.Session

	mu       sync.Mutex
	running  bool
	interval time.Duration
	density  float64
	quit     chan struct{}

	bindings   []keyBinding
	liveFiller string
	deadFiller string
}

func newTUI(session *sim.Session, interval time.Duration, density float64) (*tui, error) {
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}
	g.Mouse = true

	t := &tui{
		g:          g,
		session:    session,
		interval:   interval,
		density:    density,
		quit:       make(chan struct{}),
		liveFiller: aurora.Green("█").String(),
		deadFiller: "░",
	}
	t.bindings = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdStep, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'w', "W", "Toggle wrap", t.cmdWrap, ""},
		{'f', "F", "Random fill", t.cmdFill, ""},
		{gocui.MouseLeft, "MOUSE", "Toggle cell", t.cmdMouseToggle, "board"},
	}

	g.SetManagerFunc(t.layout)
	for _, kb := range t.bindings {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone,
			func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Run starts the ticker goroutine and blocks in the gocui main loop.
func (t *tui) Run() {
	go t.tick()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		log.Panicln(err)
	}
	close(t.quit)
	t.g.Close()
}

func (t *tui) tick() {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-t.quit:
			return
		case <-ticker.C:
			t.mu.Lock()
			if t.running {
				t.session.Advance()
			}
			t.mu.Unlock()
			t.g.Update(func(*gocui.Gui) error { return nil })
		}
	}
}

func (t *tui) layout(g *gocui.Gui) error {
	size := t.session.Size()
	boardW, boardH := size.W+1, size.H+1

	if v, err := g.SetView("board", 0, 0, boardW, boardH); err == nil || err == gocui.ErrUnknownView {
		v.Title = "The Life"
		t.renderBoard(v)
	}
	if v, err := g.SetView("status", 0, boardH+1, boardW, boardH+3); err == nil || err == gocui.ErrUnknownView {
		v.Frame = false
		t.renderStatus(v)
	}
	if v, err := g.SetView("help", 0, boardH+3, boardW, boardH+5); err == nil || err == gocui.ErrUnknownView {
		v.Frame = false
		t.renderHelp(v)
	}
	return nil
}

func (t *tui) renderBoard(v *gocui.View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v.Clear()
	size := t.session.Size()
	live := t.session.Live()
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if live.Has(core.Coord{X: x, Y: y}) {
				b.WriteString(t.liveFiller)
			} else {
				b.WriteString(t.deadFiller)
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(v, b.String())
}

func (t *tui) renderStatus(v *gocui.View) {
	t.mu.Lock()
	defer t.mu.Unlock()

	v.Clear()
	mode := aurora.Blue("stopped").String()
	if t.running {
		mode = aurora.Cyan("running").String()
	}
	fmt.Fprintf(v, "gen: %d | live: %d | wrap: %v | %s\n",
		t.session.Generation(), t.session.Population(), t.session.Wrap(), mode)
}

func (t *tui) renderHelp(v *gocui.View) {
	v.Clear()
	parts := make([]string, 0, len(t.bindings))
	for _, kb := range t.bindings {
		parts = append(parts, fmt.Sprintf("%s:%s", kb.name, kb.descr))
	}
	fmt.Fprintln(v, strings.Join(parts, " | "))
}

func (t *tui) cmdQuit(*gocui.View) error { return gocui.ErrQuit }

func (t *tui) cmdStep(*gocui.View) error {
	t.mu.Lock()
	if !t.running {
		t.session.Advance()
	}
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdRun(*gocui.View) error {
	t.mu.Lock()
	t.running = true
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdStop(*gocui.View) error {
	t.mu.Lock()
	t.running = false
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdClear(*gocui.View) error {
	t.mu.Lock()
	t.session.Clear()
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdWrap(*gocui.View) error {
	t.mu.Lock()
	t.session.SetWrap(!t.session.Wrap())
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdFill(*gocui.View) error {
	t.mu.Lock()
	t.session.RandomFill(t.density)
	t.mu.Unlock()
	return nil
}

func (t *tui) cmdMouseToggle(v *gocui.View) error {
	if v == nil || v.Name() != "board" {
		return nil
	}
	cx, cy := v.Cursor()
	t.mu.Lock()
	t.session.Toggle(cx, cy)
	t.mu.Unlock()
	return nil
}
