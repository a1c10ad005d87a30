package registry

import (
	"testing"

	"github.com/vovakirdan/mazechase/internal/core"
)

type stubGame struct {
	id, title string
	state     core.GameState
}

func (g *stubGame) ID() string                   { return g.id }
func (g *stubGame) Title() string                { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)     { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)          {}
func (g *stubGame) State() core.GameState        { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegistryLifecycle(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b", title: "Stub B"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a", title: "Stub A"} })

	if !Exists("zz_stub_a") {
		t.Fatal("Exists(zz_stub_a) = false, expected true")
	}
	if Exists("zz_missing") {
		t.Error("Exists(zz_missing) = true, expected false")
	}

	var ids []string
	for _, m := range List() {
		ids = append(ids, m.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "zz_stub_a":
			ia = i
		case "zz_stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected both stubs sorted by ID", ids)
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	// Each Create returns an independent instance
	g.Step(core.NewInputFrame())
	other, _ := Create("zz_stub_a")
	if other.State().Score != 0 {
		t.Errorf("State().Score = %d, expected 0 for a fresh instance", other.State().Score)
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create(zz_missing) error = nil, expected an error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() did not panic on a duplicate ID")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
