package nickname

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/stakewatch/stakewatch/internal/emitter"
)

// Pair is one colored symbol derived from an address.
type Pair struct {
	Color  emitter.Color
	Symbol string
}

// PairCount is the number of colored symbol pairs derived per address.
const PairCount = 2

// Word lists for nickname derivation. The lists are short on purpose:
// nicknames are a recognition aid, not unique identifiers, and
// collisions are acceptable.
var (
	adjectives = []string{
		"Brave", "Calm", "Clever", "Eager", "Fierce", "Gentle",
		"Hidden", "Jolly", "Keen", "Lucky", "Mellow", "Noble",
		"Proud", "Quick", "Silent", "Steady", "Swift", "Vivid",
		"Wise", "Zesty",
	}

	nouns = []string{
		"Falcon", "Willow", "Comet", "Harbor", "Lantern", "Meadow",
		"Nimbus", "Orchid", "Pylon", "Quartz", "Raven", "Summit",
		"Thistle", "Vertex", "Walnut", "Zenith", "Beacon", "Cinder",
		"Delta", "Ember",
	}

	symbols = []string{"■", "▣", "◆", "◇", "●", "○", "★", "☆"}

	// Directory symbols never use the default color; they would be
	// invisible as a recognition aid.
	symbolColors = []emitter.Color{
		emitter.ColorRed,
		emitter.ColorGreen,
		emitter.ColorYellow,
		emitter.ColorBlue,
	}
)

// FromAddress derives a nickname and PairCount colored symbol pairs
// from an address. The derivation hashes the address so nicknames are
// spread evenly even for addresses sharing a prefix. Malformed
// addresses still produce a deterministic result: the raw string bytes
// are hashed instead of the decoded address.
func FromAddress(address string) (string, [PairCount]Pair) {
	seed := strings.TrimPrefix(strings.ToLower(address), "0x")
	raw, err := hex.DecodeString(seed)
	if err != nil || len(raw) == 0 {
		raw = []byte(address)
	}

	digest := sha3.Sum256(raw)

	adjective := adjectives[int(digest[0])%len(adjectives)]
	noun := nouns[int(digest[1])%len(nouns)]
	name := adjective + " " + noun

	var pairs [PairCount]Pair
	for i := range pairs {
		pairs[i] = Pair{
			Color:  symbolColors[int(digest[2+2*i])%len(symbolColors)],
			Symbol: symbols[int(digest[3+2*i])%len(symbols)],
		}
	}

	return name, pairs
}
