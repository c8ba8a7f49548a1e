package main

import (
	"fmt"
	"io"
	"log"

	"github.com/younwookim/vaultcore/internal/application/replay"
	"github.com/younwookim/vaultcore/internal/infrastructure/config"
)

// runReplay plays a recording headless against freshly loaded configs and prints the outcome
func runReplay(w io.Writer, loader *config.Loader, movementName, arenaName, path string) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	s, err := loadSession(loader, movementName, arenaName)
	if err != nil {
		return err
	}
	if data.Arena != s.arena.ID {
		log.Printf("Replay was recorded in %q, playing in %q", data.Arena, s.arena.ID)
	}

	sum := replay.Run(s.ctrl, s.char, s.input, *data)
	printSummary(w, path, sum)
	return nil
}

func printSummary(w io.Writer, path string, s replay.Summary) {
	fmt.Fprintf(w, "Replay: %s\n", path)
	fmt.Fprintf(w, "Frames: %d\n", s.Frames)
	fmt.Fprintf(w, "Final position: (%.2f, %.2f, %.2f)\n", s.Final.X(), s.Final.Y(), s.Final.Z())
	fmt.Fprintf(w, "Jumps: %d\n", s.Jumps)
	fmt.Fprintf(w, "Landings: %d (hardest %.2f u/s)\n", s.Landings, s.HardestLanding)
	fmt.Fprintf(w, "Mantles: %d\n", s.Mantles)
	fmt.Fprintf(w, "Ledge grabs: %d\n", s.LedgeGrabs)
	fmt.Fprintf(w, "Fall damage: %d\n", s.FallDamage)
	fmt.Fprintf(w, "Health: %d\n", s.Health)
}
