package remote

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	coloring "github.com/mehbubakhan/EduExplorers-sub000"
)

// Sentinel errors wrapped by ParseError.
var (
	// ErrUnknownCommand is returned for a line whose first word is not a
	// protocol command.
	ErrUnknownCommand = errors.New("remote: unknown command")

	// ErrMalformed is returned for a known command with bad arguments.
	ErrMalformed = errors.New("remote: malformed message")
)

// ParseError describes a line that could not be parsed.
type ParseError struct {
	Line int // 1-based line number, 0 when parsed outside a stream
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("remote: line %d: %q: %v", e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("remote: %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind is the message type.
type Kind int

// Message kinds, one per protocol command.
const (
	// KindHello announces a user joining a room: "HELLO user room".
	KindHello Kind = iota + 1

	// KindDraw carries one stroke sample: "DRAW phase x y colorHex width".
	KindDraw

	// KindChat is free text: "CHAT text".
	KindChat

	// KindLeave ends the sender's participation: "LEAVE".
	KindLeave
)

// String returns the protocol command for k, or "UNKNOWN".
func (k Kind) String() string {
	switch k {
	case KindHello:
		return "HELLO"
	case KindDraw:
		return "DRAW"
	case KindChat:
		return "CHAT"
	case KindLeave:
		return "LEAVE"
	default:
		return "UNKNOWN"
	}
}

// Message is one parsed protocol line. Only the fields of its Kind are set.
type Message struct {
	Kind Kind

	User, Room string // HELLO
	Draw       Draw   // DRAW
	Text       string // CHAT
}

// Draw is the payload of a DRAW line.
type Draw struct {
	Phase coloring.Phase
	X, Y  float64
	Tool  coloring.Tool
	Color coloring.RGBA // unset for the eraser
	Width float64       // brush diameter
}

// PointerEvent converts d into the session event it replays as.
func (d Draw) PointerEvent() coloring.PointerEvent {
	return coloring.PointerEvent{
		X:      d.X,
		Y:      d.Y,
		Phase:  d.Phase,
		Tool:   d.Tool,
		Color:  d.Color,
		Radius: d.Width / 2,
	}
}

// Parse parses a single protocol line. Commands are case-insensitive and
// surrounding whitespace is ignored. Errors are *ParseError.
func Parse(line string) (Message, error) {
	trimmed := strings.TrimSpace(line)
	cmd, rest := trimmed, ""
	if i := strings.IndexFunc(trimmed, unicode.IsSpace); i >= 0 {
		cmd, rest = trimmed[:i], strings.TrimSpace(trimmed[i:])
	}

	fail := func(err error) (Message, error) {
		return Message{}, &ParseError{Text: trimmed, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}

	switch strings.ToUpper(cmd) {
	case "HELLO":
		f := strings.Fields(rest)
		if len(f) != 2 {
			return fail(fmt.Errorf("HELLO wants user and room, got %d fields", len(f)))
		}
		return Message{Kind: KindHello, User: f[0], Room: f[1]}, nil

	case "DRAW":
		d, err := parseDraw(strings.Fields(rest))
		if err != nil {
			return fail(err)
		}
		return Message{Kind: KindDraw, Draw: d}, nil

	case "CHAT":
		return Message{Kind: KindChat, Text: rest}, nil

	case "LEAVE":
		if rest != "" {
			return fail(errors.New("LEAVE takes no arguments"))
		}
		return Message{Kind: KindLeave}, nil
	}
	return Message{}, &ParseError{Text: trimmed, Err: ErrUnknownCommand}
}

func parseDraw(f []string) (Draw, error) {
	if len(f) != 5 {
		return Draw{}, fmt.Errorf("DRAW wants phase x y color width, got %d fields", len(f))
	}
	var d Draw

	phase, ok := parsePhase(f[0])
	if !ok {
		return Draw{}, fmt.Errorf("unknown phase %q", f[0])
	}
	d.Phase = phase

	var err error
	if d.X, err = parseFinite(f[1]); err != nil {
		return Draw{}, fmt.Errorf("x: %w", err)
	}
	if d.Y, err = parseFinite(f[2]); err != nil {
		return Draw{}, fmt.Errorf("y: %w", err)
	}

	switch strings.ToLower(f[3]) {
	case "erase", "eraser", "-":
		d.Tool = coloring.ToolErase
	default:
		if d.Color, err = coloring.ParseHex(f[3]); err != nil {
			return Draw{}, err
		}
	}

	if d.Width, err = parseFinite(f[4]); err != nil {
		return Draw{}, fmt.Errorf("width: %w", err)
	}
	if d.Width <= 0 {
		return Draw{}, fmt.Errorf("width must be positive, got %v", d.Width)
	}
	return d, nil
}

func parsePhase(s string) (coloring.Phase, bool) {
	switch strings.ToLower(s) {
	case "down", "press", "pressed":
		return coloring.PhaseDown, true
	case "move", "drag", "dragged":
		return coloring.PhaseMove, true
	case "up", "release", "released":
		return coloring.PhaseUp, true
	}
	return 0, false
}

func parseFinite(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not finite", s)
	}
	return v, nil
}

// String formats m as a protocol line.
func (m Message) String() string {
	switch m.Kind {
	case KindHello:
		return "HELLO " + m.User + " " + m.Room
	case KindDraw:
		color := "erase"
		if m.Draw.Tool != coloring.ToolErase {
			color = m.Draw.Color.Hex()
		}
		return fmt.Sprintf("DRAW %s %s %s %s %s", m.Draw.Phase,
			formatFloat(m.Draw.X), formatFloat(m.Draw.Y), color, formatFloat(m.Draw.Width))
	case KindChat:
		return "CHAT " + m.Text
	case KindLeave:
		return "LEAVE"
	}
	return ""
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
