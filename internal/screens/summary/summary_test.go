package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/soroban/internal/badges"
	"github.com/abhisek/soroban/internal/problemgen"
	"github.com/abhisek/soroban/internal/progress"
	"github.com/abhisek/soroban/internal/router"
	"github.com/abhisek/soroban/internal/screen"
	"github.com/abhisek/soroban/internal/session"
	"github.com/abhisek/soroban/internal/specs"
)

func testPlan() *session.Plan {
	return &session.Plan{
		ExamBody: specs.ExamZenshuren,
		Grade:    6,
		Subject:  specs.SubjectMul,
		Stage:    3,
	}
}

func testResult() *session.Result {
	p := progress.New(specs.ExamZenshuren)
	p.Coins = 420
	return &session.Result{
		Summary: &session.SessionSummary{
			Duration:       2*time.Minute + 5*time.Second,
			TotalQuestions: 10,
			Answered:       10,
			TotalCorrect:   9,
			Accuracy:       0.9,
			Rank:           badges.RankB,
			Cleared:        true,
			CoinsEarned:    54,
			Mistakes: []session.Mistake{{
				Problem: problemgen.Problem{Kind: problemgen.KindInline, Question: "123 × 45", Answer: "5535"},
				Input:   "5525",
			}},
		},
		Progress: p,
		Advance:  progress.Advance{SubjectUnlocked: specs.SubjectDiv},
		BadgeID:  badges.BuildRegisterBadgeID(6, specs.SubjectMul, badges.RankB),
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testPlan(), testResult())
	if s.Title() != "Stage Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Stage Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testPlan(), testResult())
	view := s.View(100, 30)
	for _, want := range []string{"Stage cleared!", "RANK B", "+54 coins", "Division", "Badge", "5,535", "2:05"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_Practice(t *testing.T) {
	plan := testPlan()
	plan.Practice = true
	res := testResult()
	res.Advance = progress.Advance{}
	res.BadgeID = ""
	s := New(plan, res)

	view := s.View(100, 30)
	if strings.Contains(view, "coins") {
		t.Error("practice should not show coins")
	}
	if !strings.Contains(view, "Practice") {
		t.Error("expected practice label")
	}
	if s.Init() != nil {
		t.Error("practice should not update the header")
	}
}

func TestSummaryScreen_InitUpdatesCoins(t *testing.T) {
	s := New(testPlan(), testResult())
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a status command")
	}
	msg, ok := cmd().(screen.StatusMsg)
	if !ok || msg.Coins != 420 {
		t.Errorf("got %#v, want StatusMsg{Coins: 420}", msg)
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, code := range []rune{tea.KeyEnter, tea.KeyEscape} {
		s := New(testPlan(), testResult())
		_, cmd := s.Update(tea.KeyPressMsg{Code: code})
		if cmd == nil {
			t.Fatalf("expected a command for key %q", code)
		}
		msg, ok := cmd().(router.PopToRootMsg)
		if !ok || !msg.Refresh {
			t.Errorf("got %#v, want PopToRootMsg{Refresh: true}", msg)
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testPlan(), testResult())
	if len(s.KeyHints()) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(s.KeyHints()))
	}
	if !s.InterceptsEsc() {
		t.Error("summary handles Esc itself")
	}
}
