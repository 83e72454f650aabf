// Package share builds the game over share message and the OSC 52 escape
// sequence that puts it on the player's clipboard.
package share

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// DefaultTemplate is used when the configured template is empty.
const DefaultTemplate = "I scored {{.Score}} in 2048! {{.URL}}"

// Data is the value the template is executed with.
type Data struct {
	Score   string // Locale-formatted score, e.g. "12,345"
	MaxTile string
	URL     string
}

// Sharer renders share messages for one configuration.
type Sharer struct {
	tmpl    *template.Template
	printer *message.Printer
	url     string
}

// New parses the template and locale in cfg.
func New(cfg config.ShareConfig) (*Sharer, error) {
	text := cfg.Template
	if text == "" {
		text = DefaultTemplate
	}
	tmpl, err := template.New("share").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("share: parse template: %w", err)
	}

	tag := language.English
	if cfg.Locale != "" {
		tag, err = language.Parse(cfg.Locale)
		if err != nil {
			return nil, fmt.Errorf("share: invalid locale %q: %w", cfg.Locale, err)
		}
	}

	s := &Sharer{tmpl: tmpl, printer: message.NewPrinter(tag), url: cfg.URL}

	// Fields that do not exist only fail on execution.
	if err := tmpl.Execute(io.Discard, Data{}); err != nil {
		return nil, fmt.Errorf("share: template: %w", err)
	}
	return s, nil
}

// Message returns the share text for a finished game.
func (s *Sharer) Message(score, maxTile int) string {
	data := Data{
		Score:   s.printer.Sprintf("%d", score),
		MaxTile: s.printer.Sprintf("%d", maxTile),
		URL:     s.url,
	}

	var sb strings.Builder
	if err := s.tmpl.Execute(&sb, data); err != nil {
		return fmt.Sprintf("I scored %s in 2048! %s", data.Score, s.url)
	}
	return strings.TrimSpace(sb.String())
}

// Sequence returns text as an OSC 52 clipboard escape sequence. Terminals
// that support it (including through SSH) place text on the local
// clipboard. environ is checked for TMUX and TERM so the sequence can be
// wrapped for tmux or GNU screen passthrough.
func Sequence(text string, environ []string) string {
	seq := osc52.New(text)
	switch multiplexer(environ) {
	case "tmux":
		seq = seq.Tmux()
	case "screen":
		seq = seq.Screen()
	}
	return seq.String()
}

func multiplexer(environ []string) string {
	term := ""
	for _, kv := range environ {
		k, v, _ := strings.Cut(kv, "=")
		switch k {
		case "TMUX":
			if v != "" {
				return "tmux"
			}
		case "TERM":
			term = v
		}
	}
	if strings.HasPrefix(term, "screen") {
		return "screen"
	}
	return ""
}
