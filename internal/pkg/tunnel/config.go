package tunnel

import (
	"bufio"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"net/netip"
	"strconv"
	"strings"
)

// MTU is not typically present in WireGuard config files, so a default is
// provided.
const defaultMTU = 1420

// parseConfig reads a standard WireGuard configuration and returns the
// interface addresses, DNS servers, MTU, and a UAPI string for configuring
// the userspace device. Only one [Interface] and one [Peer] section is
// supported.
func parseConfig(config io.Reader) (ifaceAddrs, dnsAddrs []netip.Addr, mtu int, ipcConfig string, err error) {
	var havePrivateKey, havePublicKey, haveEndpoint, haveAllowedIPs bool
	var interfaceCount, peerCount int
	section := ""
	mtu = defaultMTU

	var ipc strings.Builder

	scanner := bufio.NewScanner(config)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}

		switch line {
		case "[Interface]":
			interfaceCount++
			if interfaceCount > 1 {
				return nil, nil, -1, "", fmt.Errorf("only one [Interface] section is supported")
			}
			section = "Interface"
			continue
		case "[Peer]":
			peerCount++
			if peerCount > 1 {
				return nil, nil, -1, "", fmt.Errorf("only one [Peer] section is supported")
			}
			section = "Peer"
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return nil, nil, -1, "", fmt.Errorf("invalid line in config: %s", line)
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch section + "/" + key {
		case "Interface/PrivateKey":
			keyHex, err := keyToHex(value)
			if err != nil {
				return nil, nil, -1, "", fmt.Errorf("failed to decode private key: %w", err)
			}
			fmt.Fprintf(&ipc, "private_key=%s\n", keyHex)
			havePrivateKey = true
		case "Interface/Address":
			for _, address := range strings.Split(value, ",") {
				prefix, err := netip.ParsePrefix(strings.TrimSpace(address))
				if err != nil {
					return nil, nil, -1, "", fmt.Errorf("failed to parse address: %w", err)
				}
				ifaceAddrs = append(ifaceAddrs, prefix.Addr())
			}
		case "Interface/DNS":
			for _, address := range strings.Split(value, ",") {
				addr, err := netip.ParseAddr(strings.TrimSpace(address))
				if err != nil {
					return nil, nil, -1, "", fmt.Errorf("failed to parse DNS address: %w", err)
				}
				dnsAddrs = append(dnsAddrs, addr)
			}
		case "Interface/MTU":
			mtu, err = strconv.Atoi(value)
			if err != nil {
				return nil, nil, -1, "", fmt.Errorf("failed to parse MTU: %w", err)
			}
		case "Peer/PublicKey":
			keyHex, err := keyToHex(value)
			if err != nil {
				return nil, nil, -1, "", fmt.Errorf("failed to decode public key: %w", err)
			}
			fmt.Fprintf(&ipc, "public_key=%s\n", keyHex)
			havePublicKey = true
		case "Peer/AllowedIPs":
			for _, allowed := range strings.Split(value, ",") {
				fmt.Fprintf(&ipc, "allowed_ip=%s\n", strings.TrimSpace(allowed))
				haveAllowedIPs = true
			}
		case "Peer/Endpoint":
			fmt.Fprintf(&ipc, "endpoint=%s\n", value)
			haveEndpoint = true
		default:
			// Keys like ListenPort or PersistentKeepalive are not needed for
			// an outbound-only userspace tunnel and are ignored.
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, -1, "", fmt.Errorf("failed to read config: %w", err)
	}

	complete := havePrivateKey && havePublicKey && haveEndpoint && haveAllowedIPs &&
		len(ifaceAddrs) > 0 && len(dnsAddrs) > 0
	if !complete {
		return nil, nil, -1, "", fmt.Errorf("configuration is missing mandatory fields")
	}

	return ifaceAddrs, dnsAddrs, mtu, ipc.String(), nil
}

// keyToHex converts a base64 WireGuard key to the hex form the UAPI expects.
func keyToHex(b64 string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(raw), nil
}
