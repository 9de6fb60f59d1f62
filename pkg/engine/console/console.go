package console

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/iox"
	"github.com/tsumego/ishi/pkg/board"
	"github.com/tsumego/ishi/pkg/engine"
)

const ProtocolName = "console"

// Driver implements a console driver for debugging the board engine:
// placing stones, printing the board, scoring, and tactical ladder
// queries, one command per line.
type Driver struct {
	iox.AsyncCloser

	e *engine.Engine

	out chan<- string

	active atomic.Bool // a command that prints a follow-up board is in flight
}

func NewDriver(ctx context.Context, e *engine.Engine, in <-chan string) (*Driver, <-chan string) {
	out := make(chan string, 100)
	d := &Driver{
		AsyncCloser: iox.NewAsyncCloser(),
		e:           e,
		out:         out,
	}
	go d.process(ctx, in)

	return d, out
}

func (d *Driver) process(ctx context.Context, in <-chan string) {
	defer d.Close()
	defer close(d.out)

	logw.Infof(ctx, "Console protocol initialized")

	d.out <- fmt.Sprintf("engine %v (%v)", d.e.Name(), d.e.Author())
	d.printBoard(ctx)

	for {
		select {
		case line, ok := <-in:
			if !ok {
				logw.Infof(ctx, "Input stream broken. Exiting")
				return
			}

			parts := strings.Fields(line)
			if len(parts) == 0 {
				break
			}

			cmd := strings.ToLower(parts[0])
			args := parts[1:]

			switch cmd {
			case "reset", "r":
				d.e.Reset(ctx)
				d.printBoard(ctx)

			case "print", "p":
				d.printBoard(ctx)

			case "score", "s":
				black, white := d.e.Score()
				d.out <- fmt.Sprintf("score: black=%v white=%v", black, white)

			case "ladder-capture", "lc":
				d.tacticalQuery(args, "ladder capture", d.e.Board().IsLadderCapture)

			case "ladder-escape", "le":
				d.tacticalQuery(args, "ladder escape", d.e.Board().IsLadderEscape)

			case "quit", "exit", "q":
				return

			case "":
				// ignore empty command

			default:
				// Assume a move if not a recognized command.

				if err := d.place(ctx, cmd); err != nil {
					d.out <- fmt.Sprintf("invalid move: %v", err)
				} else {
					d.printBoard(ctx)
				}
			}

		case <-d.Closed():
			logw.Infof(ctx, "Driver closed")
			return
		}
	}
}

func (d *Driver) place(ctx context.Context, coord string) error {
	x, y, err := board.ParseCoordinate(coord)
	if err != nil {
		return err
	}
	return d.e.Place(ctx, x, y)
}

func (d *Driver) tacticalQuery(args []string, label string, fn func(board.Color, int, int) bool) {
	if len(args) == 0 {
		d.out <- fmt.Sprintf("usage: %v <coord>", label)
		return
	}
	x, y, err := board.ParseCoordinate(args[0])
	if err != nil {
		d.out <- fmt.Sprintf("invalid coordinate: %v", args[0])
		return
	}
	result := fn(d.e.Turn(), x, y)
	d.out <- fmt.Sprintf("%v %v: %v", label, args[0], result)
}

func (d *Driver) printBoard(ctx context.Context) {
	d.out <- ""
	for _, line := range strings.Split(d.e.Board().String(), "\n") {
		d.out <- line
	}
	d.out <- fmt.Sprintf("turn: %v, hash: 0x%x", d.e.Turn(), d.e.Board().ZobristHash())
	d.out <- ""

	logw.Debugf(ctx, "Board printed")
}
