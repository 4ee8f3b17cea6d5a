package trivia

import (
    "log"
    "math/rand"
    "sync"
)

// Pool caches unused questions fetched from the remote sources and hands them
// out one at a time. A pool is safe to share between controllers; refills
// happen under the pool lock, so at most one is in flight at a time.
type Pool struct {
    mu        sync.Mutex
    sources   []Source
    questions []Question
}

func NewPool(sources ...Source) *Pool {
    if len(sources) == 0 {
        sources = []Source{NewOpenTDBSource(), NewJServiceSource()}
    }
    return &Pool{sources: sources}
}

// Seed refills the pool best-effort: every source is attempted, a failing
// source just contributes nothing, and the combined result is shuffled once.
func (p *Pool) Seed() {
    p.mu.Lock()
    defer p.mu.Unlock()
    p.seed()
}

func (p *Pool) seed() {
    for _, src := range p.sources {
        batch, err := src.Fetch()
        if err != nil {
            log.Printf("Failed to fetch questions from %T: %v", src, err)
            continue
        }
        p.questions = append(p.questions, batch...)
    }
    rand.Shuffle(len(p.questions), func(i, j int) {
        p.questions[i], p.questions[j] = p.questions[j], p.questions[i]
    })
}

// GetQuestion pops one question, refilling from the sources first if the pool
// is empty. Returns nil when even a refill yields nothing; callers treat that
// as "no question available" and try again later.
func (p *Pool) GetQuestion() *Question {
    p.mu.Lock()
    defer p.mu.Unlock()

    if len(p.questions) == 0 {
        p.seed()
    }
    if len(p.questions) == 0 {
        return nil
    }

    q := p.questions[len(p.questions)-1]
    p.questions = p.questions[:len(p.questions)-1]
    return &q
}

// Len reports how many questions are currently cached.
func (p *Pool) Len() int {
    p.mu.Lock()
    defer p.mu.Unlock()
    return len(p.questions)
}
