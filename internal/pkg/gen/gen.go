package gen

import (
	"bufio"
	"fmt"
	"math/rand"
	"net/netip"
	"os"
	"strings"
	"time"
)

// Candidate is a single randomly generated probe target. It is ephemeral:
// generated, probed once, and discarded.
type Candidate struct {
	Scheme string
	Host   string
}

// URL returns the full request URL for the candidate.
func (c Candidate) URL() string {
	return fmt.Sprintf("%s://%s", c.Scheme, c.Host)
}

// Generator produces an infinite sequence of candidates. Duplicates are
// acceptable; probes are independent and cheap.
type Generator interface {
	Next() Candidate
}

// DefaultTLDs are tried randomly when no TLD list is configured.
var DefaultTLDs = []string{"com", "net", "org", "co.uk"}

// WordGenerator builds hostnames by joining 1-3 random words from a word
// list with a random top-level domain.
type WordGenerator struct {
	words []string
	tlds  []string
	rng   *rand.Rand
}

// NewWordGenerator creates a word-based candidate generator.
func NewWordGenerator(words, tlds []string) (*WordGenerator, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	if len(tlds) == 0 {
		tlds = DefaultTLDs
	}
	return &WordGenerator{
		words: words,
		tlds:  tlds,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Next returns a candidate like http://somewordpair.com.
func (g *WordGenerator) Next() Candidate {
	var sb strings.Builder
	n := g.rng.Intn(3) + 1
	for i := 0; i < n; i++ {
		sb.WriteString(g.words[g.rng.Intn(len(g.words))])
	}
	sb.WriteByte('.')
	sb.WriteString(g.tlds[g.rng.Intn(len(g.tlds))])

	return Candidate{Scheme: "http", Host: sb.String()}
}

// IPGenerator produces random public dotted-quad IPv4 candidates.
type IPGenerator struct {
	rng *rand.Rand
}

// NewIPGenerator creates a random-IPv4 candidate generator.
func NewIPGenerator() *IPGenerator {
	return &IPGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next draws random addresses until one lands outside the private and
// reserved ranges.
func (g *IPGenerator) Next() Candidate {
	for {
		addr := netip.AddrFrom4([4]byte{
			byte(g.rng.Intn(256)),
			byte(g.rng.Intn(256)),
			byte(g.rng.Intn(256)),
			byte(g.rng.Intn(256)),
		})
		if !isPublic(addr) {
			continue
		}
		return Candidate{Scheme: "http", Host: addr.String()}
	}
}

// isPublic reports whether the address is plausibly routable on the public
// Internet.
func isPublic(addr netip.Addr) bool {
	if addr.IsPrivate() || addr.IsLoopback() || addr.IsMulticast() ||
		addr.IsLinkLocalUnicast() || addr.IsLinkLocalMulticast() || addr.IsUnspecified() {
		return false
	}
	b := addr.As4()
	// 0.0.0.0/8 "this network"
	if b[0] == 0 {
		return false
	}
	// 100.64.0.0/10 carrier-grade NAT
	if b[0] == 100 && b[1] >= 64 && b[1] <= 127 {
		return false
	}
	// 192.0.2.0/24, 198.51.100.0/24, 203.0.113.0/24 documentation
	if (b[0] == 192 && b[1] == 0 && b[2] == 2) ||
		(b[0] == 198 && b[1] == 51 && b[2] == 100) ||
		(b[0] == 203 && b[1] == 0 && b[2] == 113) {
		return false
	}
	// 198.18.0.0/15 benchmarking
	if b[0] == 198 && (b[1] == 18 || b[1] == 19) {
		return false
	}
	// 240.0.0.0/4 reserved, includes 255.255.255.255
	if b[0] >= 240 {
		return false
	}
	return true
}

// LoadWordList reads a word list file, one word per line. Words are trimmed
// and lowercased; blank lines are skipped.
func LoadWordList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words = append(words, word)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	if len(words) == 0 {
		return nil, fmt.Errorf("word list %s contains no words", path)
	}

	return words, nil
}
