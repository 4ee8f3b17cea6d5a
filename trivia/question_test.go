package trivia

import "testing"

func TestNormalize(t *testing.T) {
    tests := []struct {
        name  string
        input string
        want  string
    }{
        {name: "lowercases", input: "PARIS", want: "paris"},
        {name: "strips articles", input: "The Eiffel Tower", want: "eiffel tower"},
        {name: "strips leading an", input: "An Apple", want: "apple"},
        {name: "strips of", input: "Lord of the Rings", want: "lord rings"},
        {name: "strips punctuation", input: "what?! no.", want: "what no"},
        {name: "collapses whitespace", input: "a  b\r\n c", want: "b c"},
        {name: "strips tags", input: "<i>Hamlet</i>", want: "hamlet"},
        {name: "empty", input: "", want: ""},
        {name: "only noise", input: "the (a) - an!", want: ""},
        {name: "article inside word kept", input: "theory", want: "theory"},
    }

    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := Normalize(tc.input); got != tc.want {
                t.Fatalf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
            }
        })
    }
}

func TestNormalizeIdempotent(t *testing.T) {
    inputs := []string{
        "The Great Wall of China!",
        "  lots\n\nof   space  ",
        "<b>bold</b> claim?",
        "a-n (odd) the_case",
        "plain",
        "",
    }
    for _, s := range inputs {
        once := Normalize(s)
        if twice := Normalize(once); twice != once {
            t.Fatalf("Normalize not idempotent for %q: %q != %q", s, once, twice)
        }
    }
}

func TestRatio(t *testing.T) {
    if got := Ratio("abc", "abc"); got != 1 {
        t.Fatalf("Ratio of identical strings = %v, want 1", got)
    }
    if got := Ratio("abc", "xyz"); got != 0 {
        t.Fatalf("Ratio of disjoint strings = %v, want 0", got)
    }
    if got := Ratio("", ""); got != 1 {
        t.Fatalf("Ratio of empty strings = %v, want 1", got)
    }

    pairs := [][2]string{
        {"trivia", "trivial"},
        {"george washington", "washington"},
        {"colour", "color"},
    }
    for _, p := range pairs {
        ab, ba := Ratio(p[0], p[1]), Ratio(p[1], p[0])
        if ab != ba {
            t.Fatalf("Ratio(%q, %q) = %v but swapped = %v", p[0], p[1], ab, ba)
        }
        if ab < 0 || ab > 1 {
            t.Fatalf("Ratio(%q, %q) = %v, out of [0,1]", p[0], p[1], ab)
        }
        if ab == 0 || ab == 1 {
            t.Fatalf("Ratio(%q, %q) = %v, expected a partial match", p[0], p[1], ab)
        }
    }
}

func TestQuestionCheck(t *testing.T) {
    q := Question{Text: "Trivia: Capital of France?", Answer: "Paris"}

    tests := []struct {
        name   string
        answer string
        want   bool
    }{
        {name: "exact", answer: "Paris", want: true},
        {name: "case and noise", answer: "  the PARIS! ", want: true},
        {name: "empty", answer: "", want: false},
        {name: "whitespace only", answer: "   ", want: false},
        {name: "normalizes to empty", answer: "the a an of", want: false},
        {name: "unrelated", answer: "Berlin", want: false},
        {name: "close typo", answer: "Pariss", want: true},
    }

    for _, tc := range tests {
        t.Run(tc.name, func(t *testing.T) {
            if got := q.Check(tc.answer); got != tc.want {
                t.Fatalf("Check(%q) = %v, want %v", tc.answer, got, tc.want)
            }
        })
    }
}

func TestQuestionCheckSelf(t *testing.T) {
    answers := []string{"Paris", "George Washington", "42", "True"}
    for _, a := range answers {
        q := Question{Answer: a}
        if !q.Check(a) {
            t.Fatalf("Check against own answer %q = false", a)
        }
    }
}
