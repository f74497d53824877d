package extractor

import (
	"fmt"
	"net"
	"net/url"
)

// validateURL validates an article URL before making an HTTP request.
// It prevents Server-Side Request Forgery (SSRF) by:
//   - Checking the URL scheme (only http/https allowed)
//   - Resolving DNS to check for private IP addresses
//   - Blocking loopback, private, and link-local addresses
//
// Blocked ranges (when denyPrivateIPs is true):
//   - 127.0.0.0/8 (loopback), ::1 (IPv6 loopback)
//   - 10.0.0.0/8, 172.16.0.0/12, 192.168.0.0/16 (private), fc00::/7 (IPv6 private)
//   - 169.254.0.0/16 (link-local), fe80::/10 (IPv6 link-local)
func validateURL(urlStr string, denyPrivateIPs bool) error {
	u, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("%w: parse error: %v", ErrInvalidURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: scheme '%s' not allowed (only http/https)", ErrInvalidURL, u.Scheme)
	}

	hostname := u.Hostname()
	if hostname == "" {
		return fmt.Errorf("%w: empty hostname", ErrInvalidURL)
	}

	if !denyPrivateIPs {
		return nil
	}

	// DNS resolution to check for private IPs. This blocks article links that
	// point into the internal network.
	ips, err := net.LookupIP(hostname)
	if err != nil {
		return fmt.Errorf("%w: DNS lookup failed for %s: %v", ErrInvalidURL, hostname, err)
	}

	for _, ip := range ips {
		if isPrivateIP(ip) {
			return fmt.Errorf("%w: hostname '%s' resolves to %s", ErrPrivateIP, hostname, ip.String())
		}
	}

	return nil
}

// isPrivateIP reports whether an IP address is in a loopback, private, or
// link-local range. Supports both IPv4 and IPv6.
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast()
}
