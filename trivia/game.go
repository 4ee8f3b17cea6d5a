package trivia

import (
    "errors"
    "fmt"
    "sort"
    "strings"
)

const leaderboardSize = 5

// Result classifies one answer attempt.
type Result int

const (
    Incorrect Result = iota
    Correct
    Won
)

// ErrNoQuestion is returned when an answer is checked while no question is
// pending. The routing contract keeps this from happening in normal play.
var ErrNoQuestion = errors.New("no question asked")

// Game is one round-set: a win threshold, per-player tallies and the question
// currently on the table. Questions are pulled lazily from the shared pool.
type Game struct {
    pool    *Pool
    toWin   int
    scores  map[string]int
    order   []string
    current *Question
}

func NewGame(pool *Pool, toWin int) *Game {
    return &Game{
        pool:   pool,
        toWin:  toWin,
        scores: make(map[string]int),
    }
}

// Question returns the pending question, pulling a fresh one from the pool if
// none is active. Nil means the pool is exhausted and there is nothing to ask.
func (g *Game) Question() *Question {
    if g.current == nil {
        g.current = g.pool.GetQuestion()
    }
    return g.current
}

// Check evaluates an answer attempt from a player. A correct answer bumps the
// player's score; reaching the win threshold yields Won. Incorrect attempts
// change nothing.
func (g *Game) Check(player, answer string) (Result, error) {
    if g.current == nil {
        return Incorrect, ErrNoQuestion
    }
    if !g.current.Check(answer) {
        return Incorrect, nil
    }
    if _, ok := g.scores[player]; !ok {
        g.order = append(g.order, player)
    }
    g.scores[player]++
    if g.scores[player] >= g.toWin {
        return Won, nil
    }
    return Correct, nil
}

// Skip drops the pending question so the next Question call pulls a new one.
func (g *Game) Skip() {
    g.current = nil
}

// Leaderboard renders the top scorers, highest first, ties kept in the order
// players first scored.
func (g *Game) Leaderboard() string {
    players := make([]string, len(g.order))
    copy(players, g.order)
    sort.SliceStable(players, func(i, j int) bool {
        return g.scores[players[i]] > g.scores[players[j]]
    })
    if len(players) > leaderboardSize {
        players = players[:leaderboardSize]
    }

    entries := make([]string, len(players))
    for i, player := range players {
        entries[i] = fmt.Sprintf("#%d: %s (%d)", i+1, player, g.scores[player])
    }
    return "Leaders: " + strings.Join(entries, " ")
}

func (g *Game) String() string {
    return g.Leaderboard()
}
