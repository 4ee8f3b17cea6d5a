package trivia

import (
    "regexp"
    "strings"
)

const matchRatio = 0.87

// Question is one question/answer pair handed out by the pool. ID is the
// source identifier and is 0 for everything fetched from the remote providers.
type Question struct {
    ID     int
    Text   string
    Answer string
}

var reCleanup = regexp.MustCompile(`\s+|[\r\n]+|\b(?:the|an?|of)\b|[.!_,?()-]|<[^<]*>`)

// Normalize folds a free-text answer to a canonical form: lower-cased, with
// articles, punctuation, tags and whitespace runs collapsed to single spaces.
// The substitution repeats until it reaches a fixed point, since stripping a
// word or tag can expose new collapsible whitespace.
func Normalize(s string) string {
    s = strings.ToLower(s)
    for {
        next := strings.TrimSpace(reCleanup.ReplaceAllString(s, " "))
        if next == s {
            return s
        }
        s = next
    }
}

// Ratio is the Ratcliff/Obershelp similarity of two strings: 2*M/T where M is
// the total length of matching blocks found by greedy longest-common-substring
// recursion and T is the combined length. Always in [0,1].
func Ratio(a, b string) float64 {
    ra, rb := []rune(a), []rune(b)
    total := len(ra) + len(rb)
    if total == 0 {
        return 1
    }
    return 2 * float64(matchLen(ra, rb)) / float64(total)
}

func matchLen(a, b []rune) int {
    ai, bi, size := longestMatch(a, b)
    if size == 0 {
        return 0
    }
    return size +
        matchLen(a[:ai], b[:bi]) +
        matchLen(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest common substring, preferring the earliest
// position in a, then in b, on ties.
func longestMatch(a, b []rune) (ai, bi, size int) {
    // lengths[j] holds the match length ending at a[i-1], b[j-1]
    lengths := make([]int, len(b)+1)
    for i := 1; i <= len(a); i++ {
        prev := 0
        for j := 1; j <= len(b); j++ {
            cur := lengths[j]
            if a[i-1] == b[j-1] {
                lengths[j] = prev + 1
                if lengths[j] > size {
                    size = lengths[j]
                    ai = i - size
                    bi = j - size
                }
            } else {
                lengths[j] = 0
            }
            prev = cur
        }
    }
    return ai, bi, size
}

// Check reports whether a submitted answer is close enough to the expected
// one. An answer that normalizes to nothing never matches.
func (q Question) Check(answer string) bool {
    answer = Normalize(answer)
    if answer == "" {
        return false
    }
    expected := Normalize(q.Answer)
    return Ratio(expected, answer) >= matchRatio
}

func (q Question) String() string {
    return q.Text
}
