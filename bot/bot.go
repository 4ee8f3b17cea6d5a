package bot

import (
    "fmt"
    "log"
    "os"
    "strings"
    "sync"
    "time"

    "quizparrot/trivia"

    "github.com/bwmarrin/discordgo"
    "github.com/joho/godotenv"
)

type Bot struct {
    Session *discordgo.Session
    Pool    *trivia.Pool

    mu       sync.Mutex
    commands map[string]*trivia.GameCommand // one controller per channel

    allowedChannels []string
    ignoredNicks    map[string]bool
    done            chan struct{}
}

func NewBot() (*Bot, error) {
    if err := godotenv.Load(); err != nil {
        return nil, err
    }

    token := os.Getenv("DISCORD_TOKEN")

    session, err := discordgo.New("Bot " + token)
    if err != nil {
        return nil, err
    }
    session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

    ignored := make(map[string]bool)
    for _, nick := range splitList(os.Getenv("TRIVIA_IGNORE")) {
        ignored[nick] = true
    }

    bot := &Bot{
        Session:         session,
        Pool:            trivia.NewPool(),
        commands:        make(map[string]*trivia.GameCommand),
        allowedChannels: splitList(os.Getenv("TRIVIA_CHANNELS")),
        ignoredNicks:    ignored,
        done:            make(chan struct{}),
    }

    session.AddHandler(bot.handleMessage)
    return bot, nil
}

func (b *Bot) Start() error {
    if err := b.Session.Open(); err != nil {
        return err
    }
    log.Println("Bot is running...")
    log.Printf("Logged in as: %s#%s\n", b.Session.State.User.Username, b.Session.State.User.Discriminator)
    log.Printf("Allowed Channels: %s\n", os.Getenv("TRIVIA_CHANNELS"))

    go b.runPulse()
    return nil
}

func (b *Bot) Stop() error {
    close(b.done)
    return b.Session.Close()
}

// runPulse drives every channel controller's deadline clock. The tick only
// needs to be finer than the answer timeout.
func (b *Bot) runPulse() {
    ticker := time.NewTicker(trivia.PulseInterval)
    defer ticker.Stop()

    for {
        select {
        case <-b.done:
            return
        case now := <-ticker.C:
            for _, c := range b.snapshot() {
                c.OnTick(now)
            }
        }
    }
}

func (b *Bot) snapshot() []*trivia.GameCommand {
    b.mu.Lock()
    defer b.mu.Unlock()
    cmds := make([]*trivia.GameCommand, 0, len(b.commands))
    for _, c := range b.commands {
        cmds = append(cmds, c)
    }
    return cmds
}

func (b *Bot) handleMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
    if m.Author.ID == s.State.User.ID {
        return
    }
    if !b.channelAllowed(m.ChannelID) {
        return
    }

    cmd, remainder := splitCommand(m.Content)

    if cmd == trivia.StartCommand && strings.TrimSpace(remainder) == "help" {
        b.handleHelp(s, m)
        return
    }

    c := b.command(m.ChannelID)
    if !c.Handles(cmd) {
        return
    }
    c.OnEvent(cmd, remainder, trivia.Message{Nick: m.Author.Username, Text: m.Content})
}

// command returns the controller for a channel, creating it on first contact.
// All controllers share one question pool.
func (b *Bot) command(channelID string) *trivia.GameCommand {
    b.mu.Lock()
    defer b.mu.Unlock()

    if c, ok := b.commands[channelID]; ok {
        return c
    }

    post := func(format string, args ...any) {
        if _, err := b.Session.ChannelMessageSend(channelID, fmt.Sprintf(format, args...)); err != nil {
            log.Printf("Error posting to channel %s: %v", channelID, err)
        }
    }
    allowed := func(msg trivia.Message) bool {
        return !b.ignoredNicks[msg.Nick]
    }

    c := trivia.NewGameCommand(b.Pool, post, allowed)
    b.commands[channelID] = c
    return c
}

func (b *Bot) channelAllowed(channelID string) bool {
    if len(b.allowedChannels) == 0 {
        return true
    }
    for _, id := range b.allowedChannels {
        if channelID == id {
            return true
        }
    }
    return false
}

func (b *Bot) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate) {
    lines := []string{
        "**Trivia Help**",
        "- **!trivia**: Start a game (5 correct answers to win), or show the leaderboard while one is running.",
        "- **!trivia <n>**: Start a game with n correct answers to win.",
        "- While a game is running, just type your answer in the channel. Close counts!",
        "- Questions time out after 30 seconds and the answer is revealed.",
    }
    s.ChannelMessageSendReply(m.ChannelID, strings.Join(lines, "\n"), m.Reference())
}

// splitCommand breaks an inbound line into its first token, lower-cased, and
// the rest.
func splitCommand(content string) (cmd, remainder string) {
    fields := strings.SplitN(strings.TrimSpace(content), " ", 2)
    cmd = strings.ToLower(fields[0])
    if len(fields) == 2 {
        remainder = fields[1]
    }
    return cmd, remainder
}

func splitList(s string) []string {
    var out []string
    for _, item := range strings.Split(s, ",") {
        if item = strings.TrimSpace(item); item != "" {
            out = append(out, item)
        }
    }
    return out
}
