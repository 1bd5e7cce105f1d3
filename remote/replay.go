package remote

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	coloring "github.com/mehbubakhan/EduExplorers-sub000"
)

// Stats counts what a replay did.
type Stats struct {
	Lines   int // non-blank lines read
	Draws   int // DRAW lines applied
	Skipped int // lines that failed to parse
}

// Replayer applies protocol lines to a session.
type Replayer struct {
	session *coloring.Session

	// OnMessage, if set, is called for every parsed message after it has
	// been applied.
	OnMessage func(Message)
}

// NewReplayer returns a Replayer that drives s.
func NewReplayer(s *coloring.Session) *Replayer {
	return &Replayer{session: s}
}

// Apply applies one message. DRAW becomes a PointerEvent; the other kinds
// do not touch the session.
func (r *Replayer) Apply(m Message) {
	if m.Kind == KindDraw {
		r.session.PointerEvent(m.Draw.PointerEvent())
	}
	if r.OnMessage != nil {
		r.OnMessage(m)
	}
}

// Run reads lines from in until EOF and applies them in order. Blank lines
// and lines starting with '#' are ignored; malformed lines are logged and
// skipped. Run stops early when ctx is done and returns its error.
func (r *Replayer) Run(ctx context.Context, in io.Reader) (Stats, error) {
	var st Stats
	sc := bufio.NewScanner(in)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		st.Lines++

		m, err := Parse(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			st.Skipped++
			coloring.Logger().Warn("remote: skipping line", "err", err)
			continue
		}
		r.Apply(m)
		if m.Kind == KindDraw {
			st.Draws++
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("remote: read: %w", err)
	}
	return st, nil
}
