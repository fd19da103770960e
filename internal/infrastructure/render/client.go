package render

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"syscall"
	"time"
)

var errNonPublicAddress = errors.New("refusing non-public address")

// sharedAddressSpace is carrier-grade NAT space, which IsPrivate does not
// cover.
var sharedAddressSpace = netip.MustParsePrefix("100.64.0.0/10")

// NewPublicClient returns the HTTP client used for remote assets. It only
// connects to public unicast addresses, which also holds for redirects and
// for names that resolve to internal hosts.
func NewPublicClient(timeout time.Duration) *http.Client {
	dialer := &net.Dialer{
		Timeout: 5 * time.Second,
		Control: publicOnly,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func publicOnly(_, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("splitting address: %w", err)
	}

	addr, err := netip.ParseAddr(host)
	if err != nil {
		return fmt.Errorf("parsing address: %w", err)
	}

	if !isPublic(addr) {
		return fmt.Errorf("%w: %s", errNonPublicAddress, addr)
	}
	return nil
}

func isPublic(addr netip.Addr) bool {
	addr = addr.Unmap()
	return addr.IsGlobalUnicast() &&
		!addr.IsPrivate() &&
		!sharedAddressSpace.Contains(addr)
}
