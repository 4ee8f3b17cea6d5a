package trivia

import (
    "errors"
    "testing"
)

type fakeSource struct {
    questions []Question
    err       error
}

func (s *fakeSource) Fetch() ([]Question, error) {
    return s.questions, s.err
}

func TestPoolSeedSurvivesSourceFailure(t *testing.T) {
    batch := []Question{
        {Text: "q1", Answer: "a1"},
        {Text: "q2", Answer: "a2"},
        {Text: "q3", Answer: "a3"},
        {Text: "q4", Answer: "a4"},
        {Text: "q5", Answer: "a5"},
    }
    pool := NewPool(
        &fakeSource{err: errors.New("connection refused")},
        &fakeSource{questions: batch},
    )

    pool.Seed()
    if got := pool.Len(); got != len(batch) {
        t.Fatalf("pool has %d questions after seed, want %d", got, len(batch))
    }
}

func TestPoolGetQuestionSeedsWhenEmpty(t *testing.T) {
    pool := NewPool(&fakeSource{questions: []Question{
        {Text: "q1", Answer: "a1"},
        {Text: "q2", Answer: "a2"},
    }})

    seen := make(map[string]bool)
    for i := 0; i < 2; i++ {
        q := pool.GetQuestion()
        if q == nil {
            t.Fatalf("GetQuestion returned nil on pull %d", i+1)
        }
        if seen[q.Text] {
            t.Fatalf("question %q handed out twice", q.Text)
        }
        seen[q.Text] = true
    }
    if pool.Len() != 0 {
        t.Fatalf("pool should be drained, has %d", pool.Len())
    }
}

func TestPoolExhausted(t *testing.T) {
    pool := NewPool(&fakeSource{err: errors.New("down")})
    if q := pool.GetQuestion(); q != nil {
        t.Fatalf("GetQuestion on exhausted pool = %+v, want nil", q)
    }
}
