package gen

import (
	"net/netip"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWordGeneratorProducesParsableURLs(t *testing.T) {
	g, err := NewWordGenerator([]string{"alpha", "beta", "gamma"}, nil)
	if err != nil {
		t.Fatalf("NewWordGenerator: %v", err)
	}

	for i := 0; i < 1000; i++ {
		c := g.Next()
		u, err := url.Parse(c.URL())
		if err != nil {
			t.Fatalf("candidate %q does not parse: %v", c.URL(), err)
		}
		if u.Scheme != "http" {
			t.Fatalf("unexpected scheme %q", u.Scheme)
		}
		if u.Host == "" {
			t.Fatalf("candidate %q has empty host", c.URL())
		}
	}
}

func TestWordGeneratorUsesConfiguredTLDs(t *testing.T) {
	g, err := NewWordGenerator([]string{"word"}, []string{"dev"})
	if err != nil {
		t.Fatalf("NewWordGenerator: %v", err)
	}

	for i := 0; i < 100; i++ {
		c := g.Next()
		if !strings.HasSuffix(c.Host, ".dev") {
			t.Fatalf("candidate %q does not use configured TLD", c.Host)
		}
	}
}

func TestWordGeneratorRejectsEmptyList(t *testing.T) {
	if _, err := NewWordGenerator(nil, nil); err == nil {
		t.Fatal("expected error for empty word list")
	}
}

func TestIPGeneratorProducesPublicAddresses(t *testing.T) {
	g := NewIPGenerator()

	for i := 0; i < 10000; i++ {
		c := g.Next()
		addr, err := netip.ParseAddr(c.Host)
		if err != nil {
			t.Fatalf("candidate %q is not a valid address: %v", c.Host, err)
		}
		if !addr.Is4() {
			t.Fatalf("candidate %q is not IPv4", c.Host)
		}
		if addr.IsPrivate() || addr.IsLoopback() || addr.IsMulticast() || addr.IsUnspecified() {
			t.Fatalf("candidate %q is in a non-public range", c.Host)
		}
	}
}

func TestIsPublicRejectsReservedRanges(t *testing.T) {
	reserved := []string{
		"0.1.2.3",
		"10.0.0.1",
		"100.64.0.1",
		"100.127.255.254",
		"127.0.0.1",
		"169.254.1.1",
		"172.16.0.1",
		"192.0.2.10",
		"192.168.1.1",
		"198.18.0.1",
		"198.51.100.7",
		"203.0.113.9",
		"224.0.0.1",
		"240.0.0.1",
		"255.255.255.255",
	}
	for _, s := range reserved {
		if isPublic(netip.MustParseAddr(s)) {
			t.Errorf("expected %s to be rejected", s)
		}
	}

	public := []string{"1.1.1.1", "8.8.8.8", "100.128.0.1", "93.184.216.34"}
	for _, s := range public {
		if !isPublic(netip.MustParseAddr(s)) {
			t.Errorf("expected %s to be accepted", s)
		}
	}
}

func TestLoadWordList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "Alpha\n\n  beta  \nGAMMA\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	words, err := LoadWordList(path)
	if err != nil {
		t.Fatalf("LoadWordList: %v", err)
	}

	want := []string{"alpha", "beta", "gamma"}
	if len(words) != len(want) {
		t.Fatalf("got %d words, want %d", len(words), len(want))
	}
	for i, w := range want {
		if words[i] != w {
			t.Errorf("word %d: got %q, want %q", i, words[i], w)
		}
	}
}

func TestLoadWordListEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n\n"), 0644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	if _, err := LoadWordList(path); err == nil {
		t.Fatal("expected error for empty word list file")
	}
}

func TestLoadWordListMissingFile(t *testing.T) {
	if _, err := LoadWordList(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
