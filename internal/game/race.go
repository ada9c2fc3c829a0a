package game

import (
	"math/rand"
	"time"
)

// Race simulates opponents for race-style games. The "other players"
// are fabricated locally from randomized per-tick progress; nothing
// here is networked, and bot state has no effect on scoring or on the
// session machine beyond the finish display.
type Race struct {
	// Target is the progress needed to finish (the question count).
	Target int

	// Player mirrors the player's correct-answer count.
	Player int

	// Bots holds the simulated opponents.
	Bots []Bot

	rnd *rand.Rand
}

// Bot is one simulated opponent.
type Bot struct {
	Name     string
	Progress int
}

var botNames = []string{"Robo Rex", "Count Ada", "Zippy", "Professor Pi", "Nova", "Turbo Ted"}

// NewRace creates a race to the given target with n simulated
// opponents.
func NewRace(target, n int) *Race {
	if n > len(botNames) {
		n = len(botNames)
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	bots := make([]Bot, n)
	perm := rnd.Perm(len(botNames))
	for i := range bots {
		bots[i] = Bot{Name: botNames[perm[i]]}
	}
	return &Race{Target: target, Bots: bots, rnd: rnd}
}

// Tick advances each bot by zero or one step. Roughly one step every
// four seconds keeps bots a touch slower than a steady player.
func (r *Race) Tick() {
	for i := range r.Bots {
		if r.Bots[i].Progress >= r.Target {
			continue
		}
		if r.rnd.Intn(4) == 0 {
			r.Bots[i].Progress++
		}
	}
}

// Standings returns the finish-order names, the player included as
// "You", sorted by progress descending.
func (r *Race) Standings() []string {
	type entry struct {
		name     string
		progress int
	}
	entries := []entry{{"You", r.Player}}
	for _, b := range r.Bots {
		entries = append(entries, entry{b.Name, b.Progress})
	}
	// Insertion sort; the field is tiny.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].progress > entries[j-1].progress; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}

// PlayerPlace returns the player's 1-based rank.
func (r *Race) PlayerPlace() int {
	place := 1
	for _, b := range r.Bots {
		if b.Progress > r.Player {
			place++
		}
	}
	return place
}
