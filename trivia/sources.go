package trivia

import (
    "encoding/json"
    "fmt"
    "html"
    "math/rand"
    "net/http"
    "strings"
    "time"
    "unicode/utf8"
)

const (
    fetchCount     = 50
    maxQuestionLen = 300
    maxClueValue   = 800

    openTDBURL  = "https://opentdb.com/api.php?amount=%d"
    jServiceURL = "http://jservice.io/api/random?count=%d"
)

// Source yields a batch of ready-to-ask questions. Fetch blocks on the
// network and may fail outright; the pool treats failures as an empty batch.
type Source interface {
    Fetch() ([]Question, error)
}

func fetchJSON(client *http.Client, url string, out any) error {
    resp, err := client.Get(url)
    if err != nil {
        return err
    }
    defer resp.Body.Close()

    if resp.StatusCode != http.StatusOK {
        return fmt.Errorf("%s: unexpected status %s", url, resp.Status)
    }
    return json.NewDecoder(resp.Body).Decode(out)
}

func unesc(s string) string {
    return strings.TrimSpace(html.UnescapeString(s))
}

// OpenTDBSource pulls multiple-choice and boolean items from the Open Trivia
// Database. URL is a format string taking the batch size; overridable in
// tests.
type OpenTDBSource struct {
    Client *http.Client
    URL    string
}

func NewOpenTDBSource() *OpenTDBSource {
    return &OpenTDBSource{
        Client: &http.Client{Timeout: 30 * time.Second},
        URL:    openTDBURL,
    }
}

type openTDBItem struct {
    Type             string   `json:"type"`
    Question         string   `json:"question"`
    CorrectAnswer    string   `json:"correct_answer"`
    IncorrectAnswers []string `json:"incorrect_answers"`
}

func (s *OpenTDBSource) Fetch() ([]Question, error) {
    var res struct {
        Results []openTDBItem `json:"results"`
    }
    if err := fetchJSON(s.Client, fmt.Sprintf(s.URL, fetchCount), &res); err != nil {
        return nil, err
    }

    var questions []Question
    for _, item := range res.Results {
        answer := unesc(item.CorrectAnswer)

        var question string
        if item.Type == "boolean" {
            question = fmt.Sprintf("True or false: %s", unesc(item.Question))
        } else {
            answers := make([]string, 0, len(item.IncorrectAnswers)+1)
            for _, a := range item.IncorrectAnswers {
                answers = append(answers, unesc(a))
            }
            answers = append(answers, answer)
            rand.Shuffle(len(answers), func(i, j int) {
                answers[i], answers[j] = answers[j], answers[i]
            })
            question = fmt.Sprintf("%s\n[%s]", unesc(item.Question), strings.Join(answers, "] ["))
        }

        question = "Trivia: " + question
        if utf8.RuneCountInString(question) > maxQuestionLen {
            continue
        }
        questions = append(questions, Question{Text: question, Answer: answer})
    }
    return questions, nil
}

// JServiceSource pulls random Jeopardy-style clues from jservice. High-value
// clues are dropped as too obscure; clues with no declared value are kept.
type JServiceSource struct {
    Client *http.Client
    URL    string
}

func NewJServiceSource() *JServiceSource {
    return &JServiceSource{
        Client: &http.Client{Timeout: 30 * time.Second},
        URL:    jServiceURL,
    }
}

type jServiceClue struct {
    Value    int    `json:"value"`
    Question string `json:"question"`
    Answer   string `json:"answer"`
}

func (s *JServiceSource) Fetch() ([]Question, error) {
    var clues []jServiceClue
    if err := fetchJSON(s.Client, fmt.Sprintf(s.URL, fetchCount), &clues); err != nil {
        return nil, err
    }

    var questions []Question
    for _, clue := range clues {
        if clue.Value > maxClueValue {
            continue
        }
        question := "Trivia: " + clue.Question
        if utf8.RuneCountInString(question) > maxQuestionLen {
            continue
        }
        questions = append(questions, Question{Text: question, Answer: clue.Answer})
    }
    return questions, nil
}
