package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/menagerie/internal/core"
)

type stubCritter struct {
	s Spawn
}

func (c *stubCritter) Move() {}
func (c *stubCritter) Reverse() {}
func (c *stubCritter) Rotate() {}
func (c *stubCritter) Render(dst *core.Frame) { dst.Paint(c.s.Row, c.s.Col, core.White) }
func (c *stubCritter) Heading() core.Direction { return core.East }
func (c *stubCritter) Column() int { return c.s.Col }
func (c *stubCritter) String() string { return "Stub" }

func TestRegisterAndCreate(t *testing.T) {
	Register("test_stub", "stub for tests", func(s Spawn) core.Critter {
		return &stubCritter{s: s}
	})

	if !Exists("test_stub") {
		t.Fatal("test_stub should exist after Register")
	}

	c, err := Create("test_stub", Spawn{Row: 3, Col: 7})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if c.Column() != 7 {
		t.Errorf("Column() = %d, expected 7", c.Column())
	}

	found := false
	for _, info := range List() {
		if info.Kind == "test_stub" {
			found = true
			if info.Description != "stub for tests" {
				t.Errorf("Description = %q", info.Description)
			}
		}
	}
	if !found {
		t.Error("List() should include test_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_critter", Spawn{})
	if err == nil {
		t.Fatal("Create() of an unknown kind should fail")
	}
	if !strings.Contains(err.Error(), "no_such_critter") {
		t.Errorf("error %q should name the kind", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", "", func(s Spawn) core.Critter { return &stubCritter{s: s} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", "", func(s Spawn) core.Critter { return &stubCritter{s: s} })
}

func TestListSorted(t *testing.T) {
	Register("test_b", "", func(s Spawn) core.Critter { return &stubCritter{s: s} })
	Register("test_a", "", func(s Spawn) core.Critter { return &stubCritter{s: s} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].Kind > list[i].Kind {
			t.Errorf("List() not sorted: %q before %q", list[i-1].Kind, list[i].Kind)
		}
	}
}
