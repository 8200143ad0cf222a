// Command strokereplay replays a script of pointer events through a stroking
// session and reports what would be rendered.
//
// Script lines are
//
//	down x y     click at window position (x,y)
//	move x y     pointer motion to (x,y)
//	undo         remove the last curve
//	clear        discard the path
//	draw w h     render a frame for a w×h window
//
// Empty lines and lines starting with '#' are ignored.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	qs "github.com/npillmayer/quadstroke"
	"github.com/npillmayer/quadstroke/render"
	"github.com/npillmayer/quadstroke/session"
)

func main() {
	var (
		width     = flag.Float64("width", session.DefaultStrokeWidth, "stroke half-width")
		maxCurves = flag.Int("max", session.DefaultMaxCurves, "maximum number of curves")
		spirv     = flag.String("spirv", "", "write the compiled stroke shader to this file")
	)
	flag.Parse()

	if *spirv != "" {
		code, err := render.CompileStrokeShader()
		if err != nil {
			log.Fatalf("Failed to compile shader: %v", err)
		}
		if err := os.WriteFile(*spirv, code, 0o644); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Shader saved to %s (%d bytes)\n", *spirv, len(code))
	}

	in := io.Reader(os.Stdin)
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		in = f
	}

	rec := &session.Recorder{}
	s, err := session.New(rec,
		session.WithStrokeWidth(float32(*width)),
		session.WithMaxCurves(*maxCurves),
	)
	if err != nil {
		log.Fatal(err)
	}
	if err := replay(in, s, rec, os.Stdout); err != nil {
		log.Fatal(err)
	}
	fmt.Println(s)
}

// errSyntax is returned for script lines which cannot be parsed.
var errSyntax = errors.New("syntax error")

func replay(in io.Reader, s *session.Session, rec *session.Recorder, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := run(fields, s, rec, out); err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	return scanner.Err()
}

func run(fields []string, s *session.Session, rec *session.Recorder, out io.Writer) error {
	cmd, args := fields[0], fields[1:]
	switch cmd {
	case "down", "move", "draw":
		p, err := parsePoint(args)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd, err)
		}
		switch cmd {
		case "down":
			if err := s.PointerDown(p.X, p.Y); errors.Is(err, session.ErrCapacityExceeded) {
				fmt.Fprintf(out, "ignored click at %s: %v\n", p, err)
				return nil
			} else if err != nil {
				return err
			}
		case "move":
			return s.PointerMove(p.X, p.Y)
		case "draw":
			if err := s.Draw(p); err != nil {
				return err
			}
			fmt.Fprintf(out, "frame %d: %d curves, %d indices, covered area %.1f\n",
				len(rec.Draws), s.Mesh().N(), rec.Draws[len(rec.Draws)-1].IndexCount, s.CoveredArea())
		}
		return nil
	case "undo", "clear":
		if len(args) != 0 {
			return fmt.Errorf("%w: %s takes no arguments", errSyntax, cmd)
		}
		if cmd == "undo" {
			return s.Undo()
		}
		return s.Clear()
	}
	return fmt.Errorf("%w: unknown command %q", errSyntax, cmd)
}

func parsePoint(args []string) (qs.Vec2, error) {
	if len(args) != 2 {
		return qs.Origin, fmt.Errorf("%w: expected 2 coordinates, have %d", errSyntax, len(args))
	}
	var xy [2]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return qs.Origin, fmt.Errorf("%w: %v", errSyntax, err)
		}
		xy[i] = float32(f)
	}
	return qs.P(xy[0], xy[1]), nil
}
