package main

import (
	"testing"

	"github.com/joshuapare/nbtkit/internal/container"
	"github.com/joshuapare/nbtkit/internal/testutil"
)

// The three-item inventory encodes to 40, 88 and 40 bytes; the list payload
// is 173 bytes including its 5-byte header.
var (
	stone = testutil.Item{Slot: 0, ID: "minecraft:stone", Count: 64}
	book  = testutil.Item{Slot: 1, ID: "minecraft:written_book", Count: 1, Lore: "an unreasonably long lore"}
	torch = testutil.Item{Slot: 8, ID: "minecraft:torch", Count: 16}
)

func playerFile(t *testing.T) string {
	t.Helper()
	return testutil.WritePlayerFile(t, testutil.Player(stone, book, torch), container.Gzip)
}
