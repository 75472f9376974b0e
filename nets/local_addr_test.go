package nets

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/modes"
)

func TestIsLocalAddr(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		isLocalAddr IsLocalAddr,
	) {
		for addr, want := range map[string]bool{
			"127.0.0.1:10000":      true,
			"[::1]:80":             true,
			"10.1.2.3":             true,
			"192.168.0.1:443":      true,
			"203.0.113.7:80":       false,
			"8.8.8.8":              false,
			"localhost:8080":       true,
			"[::ffff:127.0.0.1]:1": true,
		} {
			got, err := isLocalAddr(t.Context(), addr)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("%s: got %v", addr, got)
			}
		}
	})
}

func TestDevelopmentModeIsDirect(t *testing.T) {
	t.Setenv("ALL_PROXY", "socks5://127.0.0.1:1")
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Call(func(
		addr ProxyAddr,
		getURL GetProxyURL,
	) {
		if addr != "" {
			t.Fatalf("got %v", addr)
		}
		u, err := getURL()
		if err != nil || u != nil {
			t.Fatalf("got %v %v", u, err)
		}
	})
}
