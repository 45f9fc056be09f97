package enrich

import (
	"context"
	"encoding/json"
	"os"
	"regexp"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/go-tangra/go-tangra-hwinfo/internal/model"
)

const resolvConfPath = "/etc/resolv.conf"

var (
	defaultRouteRe = regexp.MustCompile(`via\s+([\d.]+)(?:\s+dev\s+(\S+))?`)
	dnsTokenRe     = regexp.MustCompile(`^[\d.]+$|^[a-fA-F0-9:]+$`)
)

// ifaceAddr holds the first address of each family reported for an interface.
type ifaceAddr struct {
	IPv4 string
	IPv6 string
}

// applyAddresses merges live interface addresses from `ip -j addr` into the
// parsed network devices.
func applyAddresses(ctx context.Context, network *model.NetworkInfo) {
	out, err := run(ctx, "ip", "-j", "addr")
	if err != nil {
		log.Debug().Err(err).Msg("ip addr lookup failed")
		return
	}
	table, err := parseAddrTable([]byte(out))
	if err != nil {
		log.Debug().Err(err).Msg("ip addr output not parseable")
		return
	}
	mergeAddresses(network.Devices, table)
	mergeAddresses(network.VirtualDevices, table)
}

// parseAddrTable decodes `ip -j addr` output into a per-interface address
// map. Only the first address of each family counts; interfaces without any
// address are left out.
func parseAddrTable(out []byte) (map[string]ifaceAddr, error) {
	var ifaces []struct {
		IfName   string `json:"ifname"`
		AddrInfo []struct {
			Family string `json:"family"`
			Local  string `json:"local"`
		} `json:"addr_info"`
	}
	if err := json.Unmarshal(out, &ifaces); err != nil {
		return nil, err
	}

	table := make(map[string]ifaceAddr, len(ifaces))
	for _, iface := range ifaces {
		var addr ifaceAddr
		for _, a := range iface.AddrInfo {
			switch {
			case a.Family == "inet" && addr.IPv4 == "":
				addr.IPv4 = a.Local
			case a.Family == "inet6" && addr.IPv6 == "":
				addr.IPv6 = a.Local
			}
		}
		if addr.IPv4 != "" || addr.IPv6 != "" {
			table[iface.IfName] = addr
		}
	}
	return table, nil
}

// mergeAddresses fills empty address fields on devices from the table,
// keyed by interface name with the device name as fallback.
func mergeAddresses(devices []model.NetworkDevice, table map[string]ifaceAddr) {
	for i := range devices {
		name := devices[i].IF
		if name == "" {
			name = devices[i].Name
		}
		addr, ok := table[name]
		if !ok {
			continue
		}
		if devices[i].IP == "" {
			devices[i].IP = addr.IPv4
		}
		if devices[i].IPv6 == "" {
			devices[i].IPv6 = addr.IPv6
		}
	}
}

// applyRouting records the default gateway and the interface it goes out on.
func applyRouting(ctx context.Context, network *model.NetworkInfo) {
	out, err := run(ctx, "ip", "route", "show", "default")
	if err != nil {
		log.Debug().Err(err).Msg("default route lookup failed")
		return
	}
	gateway, dev := parseDefaultRoute(out)
	if gateway == "" {
		return
	}
	setIfEmpty(&network.Gateway, gateway)
	setIfEmpty(&network.GatewayInterface, dev)
}

// parseDefaultRoute extracts the gateway address and optional device name
// from `ip route show default` output.
func parseDefaultRoute(out string) (gateway, device string) {
	m := defaultRouteRe.FindStringSubmatch(out)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}

// applyDNS fills the DNS server list from resolvectl, falling back to
// /etc/resolv.conf when systemd-resolved reports nothing usable.
func applyDNS(ctx context.Context, network *model.NetworkInfo) {
	if len(network.DNSServers) > 0 {
		return
	}
	servers := resolvectlServers(ctx)
	if len(servers) == 0 {
		servers = resolvConfServers(resolvConfPath)
	}
	if len(servers) > 0 {
		network.DNSServers = servers
	}
}

func resolvectlServers(ctx context.Context) []string {
	out, err := run(ctx, "resolvectl", "dns")
	if err != nil {
		log.Debug().Err(err).Msg("resolvectl lookup failed")
		return nil
	}
	return parseResolvectl(out)
}

// parseResolvectl pulls server addresses out of `resolvectl dns` output.
// Lines look like "Link 2 (enp3s0): 192.168.1.1 8.8.8.8"; the systemd stub
// resolver is skipped and duplicates collapse.
func parseResolvectl(out string) []string {
	var servers []string
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Split(line, ":")
		if len(parts) < 2 {
			continue
		}
		for _, token := range strings.Fields(parts[len(parts)-1]) {
			if !dnsTokenRe.MatchString(token) {
				continue
			}
			if token == "127.0.0.53" || slices.Contains(servers, token) {
				continue
			}
			servers = append(servers, token)
		}
	}
	return servers
}

func resolvConfServers(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Debug().Err(err).Msg("resolv.conf not readable")
		return nil
	}
	return parseResolvConf(string(data))
}

// parseResolvConf collects nameserver entries, skipping local resolver stubs.
func parseResolvConf(data string) []string {
	var servers []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "nameserver") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		server := fields[1]
		if server == "127.0.0.53" || server == "127.0.0.1" || slices.Contains(servers, server) {
			continue
		}
		servers = append(servers, server)
	}
	return servers
}
