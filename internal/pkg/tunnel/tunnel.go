// Package tunnel routes probe traffic through a userspace WireGuard device
// so sampling can run from an exit the local network does not provide.
package tunnel

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"

	"golang.zx2c4.com/wireguard/conn"
	"golang.zx2c4.com/wireguard/device"
	"golang.zx2c4.com/wireguard/tun"
	"golang.zx2c4.com/wireguard/tun/netstack"
)

// Tunnel is an up-and-running userspace WireGuard interface backed by a
// netstack. Its DialContext can be handed to the prober's HTTP client.
type Tunnel struct {
	tun  tun.Device
	tnet *netstack.Net
	dev  *device.Device
}

// Open reads a WireGuard configuration file and brings the tunnel up.
func Open(path string) (*Tunnel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open WireGuard config: %w", err)
	}
	defer f.Close()
	return New(f)
}

// New brings up a tunnel from a WireGuard configuration.
func New(config io.Reader) (*Tunnel, error) {
	ifaceAddrs, dnsAddrs, mtu, ipcConfig, err := parseConfig(config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse WireGuard config: %w", err)
	}

	tunDev, tnet, err := netstack.CreateNetTUN(ifaceAddrs, dnsAddrs, mtu)
	if err != nil {
		return nil, fmt.Errorf("failed to create netstack TUN: %w", err)
	}

	dev := device.NewDevice(tunDev, conn.NewDefaultBind(), device.NewLogger(device.LogLevelError, ""))
	if err := dev.IpcSet(ipcConfig); err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to configure WireGuard device: %w", err)
	}
	if err := dev.Up(); err != nil {
		dev.Close()
		return nil, fmt.Errorf("failed to bring up WireGuard device: %w", err)
	}

	return &Tunnel{tun: tunDev, tnet: tnet, dev: dev}, nil
}

// DialContext dials through the tunnel.
func (t *Tunnel) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return t.tnet.DialContext(ctx, network, addr)
}

// Close tears the tunnel down.
func (t *Tunnel) Close() {
	t.dev.Close()
}
