package nets

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"sync"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/vars"
	"golang.org/x/net/proxy"
)

// ProxyAddr is the proxy used for fetching remote sources. Empty means direct.
type ProxyAddr string

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	if mode == modes.ModeDevelopment {
		return ""
	}
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()
	return vars.FirstNonZero(
		configs.First[ProxyAddr](loader, "proxy_addr"),
		ProxyAddr(os.Getenv("ALL_PROXY")),
		ProxyAddr(os.Getenv("all_proxy")),
		ProxyAddr(os.Getenv("HTTPS_PROXY")),
		ProxyAddr(os.Getenv("https_proxy")),
		ProxyAddr(os.Getenv("HTTP_PROXY")),
		ProxyAddr(os.Getenv("http_proxy")),
	)
}

type GetProxyURL func() (*url.URL, error)

func (Module) GetProxyURL(
	proxyAddr ProxyAddr,
) GetProxyURL {
	return sync.OnceValues(func() (*url.URL, error) {
		if proxyAddr == "" {
			return nil, nil
		}
		u, err := url.Parse(string(proxyAddr))
		if err != nil {
			return nil, err
		}
		if u.Scheme == "socks" {
			u.Scheme = "socks5"
		}
		return u, nil
	})
}

type GetProxyDialer func() (Dialer, error)

func (Module) GetProxyDialer(
	getURL GetProxyURL,
) GetProxyDialer {
	direct := &net.Dialer{}
	return sync.OnceValues(func() (Dialer, error) {
		u, err := getURL()
		if err != nil {
			return nil, err
		}
		if u == nil {
			return direct, nil
		}
		proxyDialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		dialer, ok := proxyDialer.(Dialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s: dialer without context support", u.Redacted())
		}
		return dialer, nil
	})
}
