// Command colordemo builds a coloring session, fills it with scripted or
// replayed strokes and writes the result as a PNG.
//
// Usage:
//
//	colordemo -text A -o a.png
//	colordemo -shape star -size 600x400 -replay strokes.txt
//	colordemo -config engine.toml -watch
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	coloring "github.com/mehbubakhan/EduExplorers-sub000"
	"github.com/mehbubakhan/EduExplorers-sub000/config"
	"github.com/mehbubakhan/EduExplorers-sub000/remote"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "colordemo:", err)
		os.Exit(1)
	}
}

type flags struct {
	config  string
	text    string
	shape   string
	size    string
	replay  string
	output  string
	thumb   int
	verbose bool
	watch   bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("colordemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "configuration file (.toml, .yaml, .json)")
	fs.StringVar(&f.text, "text", "A", "letter, number or word to color")
	fs.StringVar(&f.shape, "shape", "", "procedural shape kind; overrides -text")
	fs.StringVar(&f.size, "size", "", "canvas size WxH; overrides the config")
	fs.StringVar(&f.replay, "replay", "", "file of DRAW lines to replay instead of the scripted fill")
	fs.StringVar(&f.output, "o", "coloring.png", "output file")
	fs.IntVar(&f.thumb, "thumb", 0, "also write a thumbnail of this width")
	fs.BoolVar(&f.verbose, "v", false, "verbose logging")
	fs.BoolVar(&f.watch, "watch", false, "re-render whenever the config file changes")
	err := fs.Parse(args)
	return f, err
}

func run(ctx context.Context, args []string, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if f.config != "" {
		if cfg, err = config.Load(f.config); err != nil {
			return err
		}
	}

	level := cfg.LogLevel()
	if f.verbose {
		level = slog.LevelDebug
	}
	coloring.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer coloring.SetLogger(nil)

	if err := render(ctx, cfg, f); err != nil {
		return err
	}
	if !f.watch {
		return nil
	}
	if f.config == "" {
		return errors.New("-watch needs -config")
	}

	w, err := config.NewWatcher(f.config)
	if err != nil {
		return err
	}
	coloring.Logger().Info("watching for changes", "config", f.config)
	return w.Run(ctx, func(next *config.Config, err error) {
		if err != nil {
			coloring.Logger().Warn("config reload failed", "err", err)
			return
		}
		if err := render(ctx, next, f); err != nil {
			coloring.Logger().Warn("render failed", "err", err)
		}
	})
}

// render runs one session from target selection to output.
func render(ctx context.Context, cfg *config.Config, f flags) error {
	w, h := cfg.Canvas.Width, cfg.Canvas.Height
	if f.size != "" {
		var err error
		if w, h, err = parseSize(f.size); err != nil {
			return err
		}
	}

	target, err := targetFromFlags(f)
	if err != nil {
		return err
	}

	opts, err := cfg.SessionOptions()
	if err != nil {
		return err
	}
	s := coloring.NewSession(w, h, opts...)
	s.SelectTarget(target)

	if f.replay != "" {
		in, err := os.Open(f.replay)
		if err != nil {
			return err
		}
		st, err := remote.NewReplayer(s).Run(ctx, in)
		in.Close()
		if err != nil {
			return err
		}
		coloring.Logger().Info("replayed", "lines", st.Lines, "draws", st.Draws, "skipped", st.Skipped)
	} else {
		scriptedFill(s, cfg.BrushColor(), cfg.Brush.Radius)
	}

	p := s.QueryProgress()
	coloring.Logger().Info("progress", "key", target.Key(), "fraction", p.Fraction, "complete", p.IsComplete)

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(coloring.White.NRGBA()), image.Point{}, draw.Src)
	s.Render(canvas)

	if err := writePNG(f.output, canvas); err != nil {
		return err
	}
	if f.thumb > 0 {
		if err := writePNG(thumbPath(f.output), thumbnail(canvas, f.thumb)); err != nil {
			return err
		}
	}
	coloring.Logger().Info("saved", "path", f.output, "w", w, "h", h)
	return nil
}

func targetFromFlags(f flags) (coloring.ShapeDefinition, error) {
	if f.shape != "" {
		kind, err := coloring.ParseShapeKind(f.shape)
		if err != nil {
			return nil, err
		}
		return coloring.ProceduralShape{Kind: kind}, nil
	}
	return coloring.GlyphText{Text: f.text}, nil
}

// scriptedFill sweeps horizontal strokes one brush radius apart across the
// mask, then taps any included cell still unpainted.
func scriptedFill(s *coloring.Session, c coloring.RGBA, radius float64) {
	m := s.Mask()
	ox, oy := m.Offset()
	active := func() bool { return s.State() == coloring.StateActive }

	// Sweep each row from its first included cell to its last one.
	for my := 0; my < m.Height() && active(); my += max(1, int(radius)) {
		first, last := rowSpan(m, my)
		if first < 0 {
			continue
		}
		y := oy + float64(my) + 0.5
		s.PointerEvent(coloring.PointerEvent{X: ox + float64(first) + 0.5, Y: y, Phase: coloring.PhaseDown, Color: c, Radius: radius})
		s.PointerEvent(coloring.PointerEvent{X: ox + float64(last) + 0.5, Y: y, Phase: coloring.PhaseMove, Color: c, Radius: radius})
		s.PointerEvent(coloring.PointerEvent{Phase: coloring.PhaseUp})
	}
	for y := 0; y < m.Height() && active(); y++ {
		for x := 0; x < m.Width() && active(); x++ {
			if m.At(x, y) && !s.Surface().Painted(x, y) {
				s.PointerEvent(coloring.PointerEvent{
					X: ox + float64(x) + 0.5, Y: oy + float64(y) + 0.5,
					Phase: coloring.PhaseDown, Color: c, Radius: 0.75,
				})
			}
		}
	}
}

// rowSpan returns the first and last included cells of mask row y, or -1, -1.
func rowSpan(m *coloring.InclusionMask, y int) (first, last int) {
	first, last = -1, -1
	for x := 0; x < m.Width(); x++ {
		if m.At(x, y) {
			if first < 0 {
				first = x
			}
			last = x
		}
	}
	return first, last
}

func parseSize(s string) (w, h int, err error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WxH", s)
	}
	if w, err = strconv.Atoi(ws); err != nil || w < 1 {
		return 0, 0, fmt.Errorf("invalid width in %q", s)
	}
	if h, err = strconv.Atoi(hs); err != nil || h < 1 {
		return 0, 0, fmt.Errorf("invalid height in %q", s)
	}
	return w, h, nil
}

// thumbnail scales img to the given width, keeping its aspect ratio.
func thumbnail(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}

func thumbPath(path string) string {
	if i := strings.LastIndexByte(path, '.'); i > strings.LastIndexByte(path, '/') {
		return path[:i] + ".thumb" + path[i:]
	}
	return path + ".thumb.png"
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // path comes from the command line
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
