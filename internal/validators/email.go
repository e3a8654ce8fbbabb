package validators

import (
	"net"
	"strings"
)

// HasDeliverableDomain checks that the address' domain resolves to a mail
// exchanger or at least to an address record. Used at registration only;
// logins trust what is already stored.
func HasDeliverableDomain(email string) bool {
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
