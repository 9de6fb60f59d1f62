package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/seekerror/logw"
	"github.com/tsumego/ishi/pkg/engine"
	"github.com/tsumego/ishi/pkg/engine/console"
)

var (
	seed = flag.Int64("seed", 0, "Zobrist table random seed")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: ishi [options]

ISHI is a 19x19 Go (Weiqi/Baduk) board engine under Tromp-Taylor rules.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "ishi", "tsumego", engine.WithZobrist(*seed))

	in := engine.ReadStdinLines(ctx)
	driver, out := console.NewDriver(ctx, e, in)
	go engine.WriteStdoutLines(ctx, out)

	<-driver.Closed()
	logw.Infof(ctx, "Exiting")
}
