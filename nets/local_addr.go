package nets

import (
	"context"
	"net"
	"net/netip"
	"strings"
)

// IsLocalAddr reports whether addr, with or without a port, resolves to a
// loopback or private address. Lookup failures count as remote.
type IsLocalAddr func(ctx context.Context, addr string) (bool, error)

func (Module) IsLocalAddr() IsLocalAddr {
	return func(ctx context.Context, addr string) (bool, error) {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		host = strings.Trim(host, "[]")

		if ip, err := netip.ParseAddr(host); err == nil {
			return isLocalIP(ip), nil
		}
		if strings.EqualFold(host, "localhost") {
			return true, nil
		}

		ips, err := net.DefaultResolver.LookupNetIP(ctx, "ip", host)
		if err != nil {
			return false, nil
		}
		for _, ip := range ips {
			if isLocalIP(ip) {
				return true, nil
			}
		}
		return false, nil
	}
}

func isLocalIP(ip netip.Addr) bool {
	ip = ip.Unmap()
	return ip.IsLoopback() || ip.IsPrivate()
}
