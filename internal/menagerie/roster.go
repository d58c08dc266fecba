package menagerie

import "github.com/vovakirdan/menagerie/internal/core"

// slot holds one roster entry. A nil critter marks a dead slot; slots are
// never removed during a round so event indices stay valid.
type slot struct {
	critter    core.Critter
	projectile bool
}

type roster []slot

// add appends a critter and returns its stable index.
func (r *roster) add(c core.Critter, projectile bool) int {
	*r = append(*r, slot{critter: c, projectile: projectile})
	return len(*r) - 1
}

func (r roster) live(i int) bool {
	return i >= 0 && i < len(r) && r[i].critter != nil
}

func (r roster) get(i int) core.Critter {
	if !r.live(i) {
		return nil
	}
	return r[i].critter
}

// count returns the number of live critters.
func (r roster) count() int {
	n := 0
	for _, s := range r {
		if s.critter != nil {
			n++
		}
	}
	return n
}
