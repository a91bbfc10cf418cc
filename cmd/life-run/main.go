package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"quadlife/internal/config"
	"quadlife/pkg/sandbox"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := config.NewConfig()
	cfg.SeedMode = config.SeedRandom
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 100, "generations to simulate")
	rewind := flag.Int("rewind", 0, "generations to step back afterwards, verifying each restored frame")
	printGrid := flag.Bool("print", false, "print the final grid")
	var overrides kvList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	kv := make(map[string]string, len(overrides))
	for _, o := range overrides {
		parts := strings.SplitN(o, "=", 2)
		if len(parts) != 2 {
			continue
		}
		kv[parts[0]] = parts[1]
	}
	cfg.FromMap(kv)

	sb, err := cfg.NewSandbox()
	if err != nil {
		log.Fatal(err)
	}

	eng := sb.Engine()
	frames := [][]uint8{bytes.Clone(eng.Cells())}
	fmt.Printf("%d %d\n", eng.Generation(), eng.LiveCount())
	for i := 0; i < *steps; i++ {
		sb.StepForward()
		frames = append(frames, bytes.Clone(eng.Cells()))
		fmt.Printf("%d %d\n", eng.Generation(), eng.LiveCount())
	}

	for i := 0; i < *rewind; i++ {
		if !sb.StepBack() {
			fmt.Printf("rewind stopped at generation %d (history depth %d)\n", eng.Generation(), eng.Depth())
			break
		}
		gen := eng.Generation()
		if gen >= len(frames) || !bytes.Equal(frames[gen], eng.Cells()) {
			log.Fatalf("rewind mismatch at generation %d", gen)
		}
	}
	if *rewind > 0 {
		fmt.Printf("rewound to generation %d, population %d\n", eng.Generation(), eng.LiveCount())
	}

	if *printGrid {
		writeGrid(os.Stdout, sb)
	}
}

func writeGrid(w io.Writer, sb *sandbox.Sandbox) {
	size := sb.Size()
	cells := sb.Cells()
	var b strings.Builder
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			if cells[y*size.W+x] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	fmt.Fprint(w, b.String())
}
