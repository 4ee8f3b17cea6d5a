package trivia

import (
    "log"
    "strconv"
    "strings"
    "sync"
    "time"
)

const (
    // StartCommand is the token that opens (or, while running, summarizes) a
    // game.
    StartCommand = "!trivia"

    // PulseInterval is how often the surrounding bot should call OnTick. The
    // controller only needs ticks finer than AnswerTimeout; the actual
    // cadence is the caller's concern.
    PulseInterval = 5 * time.Second

    // AnswerTimeout is how long a question stays open before the answer is
    // revealed.
    AnswerTimeout = 30 * time.Second

    defaultToWin = 5
    minToWin     = 1
)

// Message is the slice of an inbound chat line the controller cares about:
// who said it and what they said.
type Message struct {
    Nick string
    Text string
}

// GameCommand runs at most one trivia game. It is driven from outside by two
// kinds of events: inbound chat lines (OnEvent) and periodic ticks (OnTick).
// One mutex covers all state, so the two callbacks never interleave.
//
// A zero deadline means the current question has not been announced yet; the
// next tick announces it and starts the clock.
type GameCommand struct {
    mu       sync.Mutex
    pool     *Pool
    game     *Game
    deadline time.Time

    post    func(format string, args ...any)
    allowed func(Message) bool
}

// NewGameCommand wires a controller to its shared question pool, its outbound
// poster and an authorization gate. A nil gate allows everyone.
func NewGameCommand(pool *Pool, post func(format string, args ...any), allowed func(Message) bool) *GameCommand {
    if allowed == nil {
        allowed = func(Message) bool { return true }
    }
    return &GameCommand{pool: pool, post: post, allowed: allowed}
}

// Handles reports whether the controller wants to see a line whose first
// token is cmd: always for the start command, and for anything at all while a
// game is open, since any chat line might be an answer.
func (c *GameCommand) Handles(cmd string) bool {
    c.mu.Lock()
    defer c.mu.Unlock()
    return cmd == StartCommand || c.game != nil
}

// OnEvent feeds the controller one inbound line, split into its command token
// and the remainder. Returns whether the event was consumed.
func (c *GameCommand) OnEvent(cmd, remainder string, msg Message) bool {
    c.mu.Lock()
    defer c.mu.Unlock()

    if !c.allowed(msg) {
        return false
    }

    if cmd == StartCommand {
        if c.game != nil {
            c.post("%s", c.game.Leaderboard())
            return true
        }
        toWin := defaultToWin
        if n, err := strconv.Atoi(strings.TrimSpace(remainder)); err == nil && n >= minToWin {
            toWin = n
        }
        c.deadline = time.Time{}
        c.game = NewGame(c.pool, toWin)
        c.post("Started a trivia with %d to win", toWin)
        return true
    }

    if c.game == nil {
        return false
    }

    res, err := c.game.Check(msg.Nick, msg.Text)
    if err != nil {
        log.Printf("Answer from %s dropped: %v", msg.Nick, err)
        return false
    }

    switch res {
    case Won:
        c.game = nil
        c.post("WE GOT A WINRAR! Congrats %s", msg.Nick)
        return true
    case Correct:
        c.deadline = time.Time{}
        c.post("Indeed, %s: %s", msg.Nick, c.game.Question().Answer)
        c.game.Skip()
        return true
    }

    // Incorrect answers stay silent so ordinary chatter gets no reply.
    return false
}

// OnTick advances the deadline clock. With no game it does nothing. With an
// unannounced question it posts one and arms the deadline; once the deadline
// passes it reveals the answer and rolls over to the next question.
func (c *GameCommand) OnTick(now time.Time) {
    c.mu.Lock()
    defer c.mu.Unlock()

    if c.game == nil {
        return
    }

    if c.deadline.IsZero() {
        q := c.game.Question()
        if q == nil {
            log.Printf("Question pool exhausted, retrying next tick")
            return
        }
        c.deadline = now.Add(AnswerTimeout)
        c.post("%s", q.Text)
        return
    }

    if now.Before(c.deadline) {
        return
    }

    c.post("Too slow! Answer: %s", c.game.Question().Answer)
    c.game.Skip()
    c.deadline = time.Time{}
}
