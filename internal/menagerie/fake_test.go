package menagerie

import (
	"fmt"

	"github.com/vovakirdan/menagerie/internal/config"
	"github.com/vovakirdan/menagerie/internal/core"
	"github.com/vovakirdan/menagerie/internal/registry"
)

// fakeDisplay scripts keystrokes and records every painted scene.
type fakeDisplay struct {
	rows, cols int
	keys       []int
	paints     []*core.Frame
}

func newFakeDisplay(keys ...int) *fakeDisplay {
	return &fakeDisplay{rows: 24, cols: 80, keys: keys}
}

func (d *fakeDisplay) Size() (int, int) { return d.rows, d.cols }
func (d *fakeDisplay) Rows() int { return d.rows }
func (d *fakeDisplay) Cols() int { return d.cols }
func (d *fakeDisplay) Paint(f *core.Frame) { d.paints = append(d.paints, f.Clone()) }
func (d *fakeDisplay) SetText(int, int, string) {}
func (d *fakeDisplay) HasKey() bool { return len(d.keys) > 0 }
func (d *fakeDisplay) Colors() []core.RGB { return core.ANSIPalette }

func (d *fakeDisplay) Key() (int, error) {
	if len(d.keys) == 0 {
		return 0, core.ErrNoKey
	}
	k := d.keys[0]
	d.keys = d.keys[1:]
	return k, nil
}

func (d *fakeDisplay) PushbackKey(code int) {
	d.keys = append([]int{code}, d.keys...)
}

func (d *fakeDisplay) lastPaint() *core.Frame {
	if len(d.paints) == 0 {
		return nil
	}
	return d.paints[len(d.paints)-1]
}

// post is a stationary one-cell critter that counts its moves.
type post struct {
	row, col int
	moves    int
}

func (p *post) Move() { p.moves++ }
func (p *post) Reverse() {}
func (p *post) Rotate() {}
func (p *post) Render(dst *core.Frame) { dst.Paint(p.row, p.col, core.White) }
func (p *post) Heading() core.Direction { return core.East }
func (p *post) Column() int { return p.col }
func (p *post) String() string { return fmt.Sprintf("post(%d,%d)", p.row, p.col) }

// ghost never renders anything.
type ghost struct{ moves int }

func (g *ghost) Move() { g.moves++ }
func (g *ghost) Reverse() {}
func (g *ghost) Rotate() {}
func (g *ghost) Render(*core.Frame) {}
func (g *ghost) Heading() core.Direction { return core.West }
func (g *ghost) Column() int { return -1 }
func (g *ghost) String() string { return "ghost" }

const (
	kindPost  = "test-post"
	kindGhost = "test-ghost"
)

func init() {
	registry.Register(kindPost, "stationary test cell", func(s registry.Spawn) core.Critter {
		return &post{row: s.Row, col: s.Col}
	})
	registry.Register(kindGhost, "invisible test critter", func(registry.Spawn) core.Critter {
		return &ghost{}
	})
}

func postAt(row, col int) config.CritterConfig {
	return config.CritterConfig{Kind: kindPost, Row: row, Col: col}
}

func testConfig(cast ...config.CritterConfig) config.Config {
	cfg := config.DefaultConfig()
	cfg.Critters = cast
	return cfg
}

// recorder is a Listener that remembers what it was told.
type recorder struct {
	fired  int
	killed []string
	over   []Result
}

func (r *recorder) OnFire() { r.fired++ }
func (r *recorder) OnKill(c core.Critter) { r.killed = append(r.killed, c.String()) }
func (r *recorder) OnRoundOver(res Result) { r.over = append(r.over, res) }
