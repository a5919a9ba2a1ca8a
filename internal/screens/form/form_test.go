package form

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/assessgen/internal/assessment"
	"github.com/abhisek/assessgen/internal/reference"
	"github.com/abhisek/assessgen/internal/router"
)

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (router.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

type stubGenerator struct {
	calls []assessment.Request
	err   error
}

func (g *stubGenerator) Generate(_ context.Context, req assessment.Request) (*assessment.Assessment, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &assessment.Assessment{ID: "a1", Request: req, Raw: "Question 1: x"}, nil
}

func newTestForm(gen Generator) *FormScreen {
	newResults := func(a *assessment.Assessment) router.Screen {
		return &stubScreen{title: "results " + a.ID}
	}
	s := New(context.Background(), reference.Grade7, gen, newResults)
	s.Init()
	s.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return s
}

func key(code rune, mod tea.KeyMod) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code, Mod: mod}
}

func fill(s *FormScreen) {
	for i := range s.fields {
		s.fields[i].SetValue("value " + s.fields[i].Label)
	}
}

// runCmd executes cmd, expanding batches, and returns every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestTabCyclesFocus(t *testing.T) {
	s := newTestForm(&stubGenerator{})

	for want := 1; want <= fieldCount; want++ {
		s.Update(key(tea.KeyTab, 0))
		if s.focus != want%fieldCount {
			t.Fatalf("after %d tabs focus = %d", want, s.focus)
		}
	}
	s.Update(key(tea.KeyTab, tea.ModShift))
	if s.focus != fieldCount-1 {
		t.Fatalf("shift+tab focus = %d, want %d", s.focus, fieldCount-1)
	}
}

func TestSubmitIncompleteWarns(t *testing.T) {
	gen := &stubGenerator{}
	s := newTestForm(gen)
	s.fields[fieldNarrative].SetValue("only narrative")

	_, cmd := s.Update(key('g', tea.ModCtrl))
	if cmd != nil {
		t.Fatal("expected no command for an incomplete form")
	}
	if !strings.Contains(s.View(100, 34), "please fill in all fields") {
		t.Error("expected fill-in-all-fields warning in view")
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator called %d times", len(gen.calls))
	}
}

func TestSubmitGeneratesAndPushesResults(t *testing.T) {
	gen := &stubGenerator{}
	s := newTestForm(gen)
	fill(s)

	_, cmd := s.Update(key('g', tea.ModCtrl))
	if !s.generating {
		t.Fatal("expected generating state")
	}
	if !strings.Contains(s.View(100, 34), "Generating assessment") {
		t.Error("expected progress message in view")
	}

	var done tea.Msg
	for _, m := range runCmd(cmd) {
		if _, ok := m.(generatedMsg); ok {
			done = m
		}
	}
	if done == nil {
		t.Fatal("expected a generatedMsg")
	}
	if len(gen.calls) != 1 || gen.calls[0].Grade != reference.Grade7 {
		t.Fatalf("unexpected generator calls: %+v", gen.calls)
	}
	if gen.calls[0].Standards != "value Standards" {
		t.Errorf("standards = %q", gen.calls[0].Standards)
	}

	_, cmd = s.Update(done)
	if s.generating {
		t.Error("expected generating to end")
	}
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d", len(msgs))
	}
	push, ok := msgs[0].(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msgs[0])
	}
	if push.Screen.Title() != "results a1" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}

func TestSubmitGatewayErrorShown(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited")}
	s := newTestForm(gen)
	fill(s)

	_, cmd := s.Update(key('g', tea.ModCtrl))
	for _, m := range runCmd(cmd) {
		if _, ok := m.(generatedMsg); ok {
			s.Update(m)
		}
	}
	if !strings.Contains(s.View(100, 34), "An error occurred: rate limited") {
		t.Error("expected error in view")
	}
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	s := newTestForm(&stubGenerator{})
	fill(s)
	s.Update(key('g', tea.ModCtrl))

	s.Update(key(tea.KeyTab, 0))
	if s.focus != fieldNarrative {
		t.Error("focus moved while generating")
	}
	if s.CanLeave() {
		t.Error("form must not be left while generating")
	}
}
