package tunnel

import (
	"strings"
	"testing"
)

const validConfig = `
[Interface]
PrivateKey = GDE2stv9TJizm8H8iQbXrWr9TBhx5wHj2tviwdQbv1Y=
Address = 172.16.0.2/32
DNS = 1.1.1.1, 1.0.0.1
MTU = 1280

[Peer]
PublicKey = bmXOC+F1FxEMF9dyiK2H5/1SUtzH0JuVo51h2wPfgyo=
AllowedIPs = 0.0.0.0/0, ::/0
Endpoint = 192.0.2.1:51820
`

func TestParseConfigValid(t *testing.T) {
	ifaceAddrs, dnsAddrs, mtu, ipc, err := parseConfig(strings.NewReader(validConfig))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}

	if len(ifaceAddrs) != 1 || ifaceAddrs[0].String() != "172.16.0.2" {
		t.Fatalf("unexpected interface addresses %v", ifaceAddrs)
	}
	if len(dnsAddrs) != 2 {
		t.Fatalf("unexpected DNS addresses %v", dnsAddrs)
	}
	if mtu != 1280 {
		t.Fatalf("got MTU %d, want 1280", mtu)
	}
	for _, want := range []string{"private_key=", "public_key=", "allowed_ip=0.0.0.0/0", "endpoint=192.0.2.1:51820"} {
		if !strings.Contains(ipc, want) {
			t.Errorf("UAPI config missing %q:\n%s", want, ipc)
		}
	}
}

func TestParseConfigDefaultMTU(t *testing.T) {
	config := strings.Replace(validConfig, "MTU = 1280\n", "", 1)
	_, _, mtu, _, err := parseConfig(strings.NewReader(config))
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if mtu != defaultMTU {
		t.Fatalf("got MTU %d, want default %d", mtu, defaultMTU)
	}
}

func TestParseConfigSkipsCommentsAndBlanks(t *testing.T) {
	config := "# leading comment\n" + validConfig + "\n# trailing comment\n"
	if _, _, _, _, err := parseConfig(strings.NewReader(config)); err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
}

func TestParseConfigMissingPeer(t *testing.T) {
	config := `
[Interface]
PrivateKey = GDE2stv9TJizm8H8iQbXrWr9TBhx5wHj2tviwdQbv1Y=
Address = 172.16.0.2/32
DNS = 1.1.1.1
`
	if _, _, _, _, err := parseConfig(strings.NewReader(config)); err == nil {
		t.Fatal("expected error for config without a peer")
	}
}

func TestParseConfigRejectsDuplicateSections(t *testing.T) {
	config := validConfig + "\n[Peer]\nPublicKey = bmXOC+F1FxEMF9dyiK2H5/1SUtzH0JuVo51h2wPfgyo=\n"
	if _, _, _, _, err := parseConfig(strings.NewReader(config)); err == nil {
		t.Fatal("expected error for duplicate [Peer] section")
	}
}

func TestParseConfigRejectsGarbageLine(t *testing.T) {
	config := strings.Replace(validConfig, "MTU = 1280", "not a key value pair", 1)
	if _, _, _, _, err := parseConfig(strings.NewReader(config)); err == nil {
		t.Fatal("expected error for malformed line")
	}
}

func TestParseConfigRejectsBadKey(t *testing.T) {
	config := strings.Replace(validConfig,
		"PrivateKey = GDE2stv9TJizm8H8iQbXrWr9TBhx5wHj2tviwdQbv1Y=",
		"PrivateKey = !!!not-base64!!!", 1)
	if _, _, _, _, err := parseConfig(strings.NewReader(config)); err == nil {
		t.Fatal("expected error for undecodable private key")
	}
}
