package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"quadmatch/internal/app"
	"quadmatch/internal/core"
	"quadmatch/internal/render"
)

const help = "commands: <x> <y> click a cell, r restart, n new seed, q quit"

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	color := flag.Bool("color", true, "colorize cubes with ANSI escape codes")
	flag.Parse()

	logger := log.New(os.Stderr, "quadmatch-term: ", 0)

	board, err := cfg.NewBoard()
	if err != nil {
		logger.Fatalf("board setup: %v", err)
	}
	board.Reset(0)

	if err := play(board, os.Stdin, os.Stdout, *color, logger); err != nil {
		logger.Fatal(err)
	}
}

func play(board core.Board, in io.Reader, out io.Writer, ansi bool, logger *log.Logger) error {
	fmt.Fprintln(out, help)
	show(board, out, ansi)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return nil
		case "r":
			board.Reset(0)
		case "n":
			board.Reset(time.Now().UnixNano())
		default:
			p, err := parseCell(line)
			if err != nil {
				logger.Printf("%v (%s)", err, help)
				continue
			}
			if !app.Apply(board, p) {
				logger.Printf("click (%d,%d) ignored", p.X, p.Y)
				continue
			}
		}
		show(board, out, ansi)
	}
	return scanner.Err()
}

func parseCell(line string) (core.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return core.Point{}, fmt.Errorf("expected two coordinates, got %q", line)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return core.Point{}, fmt.Errorf("bad column %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return core.Point{}, fmt.Errorf("bad row %q", fields[1])
	}
	return core.Point{X: x, Y: y}, nil
}

func show(board core.Board, out io.Writer, ansi bool) {
	fmt.Fprint(out, render.ASCII(board.Frame(), ansi))
	params := board.Parameters()
	cubes, _ := params.Lookup("filled")
	cleared, _ := params.Lookup("cleared")
	status := fmt.Sprintf("cubes %s, last cleared %s", cubes.Value, cleared.Value)
	if board.Stalled() {
		status += ", board full: r to restart"
	}
	fmt.Fprintln(out, status)
}
