package validators

import (
	"net"
	"strings"
)

// Domains of throwaway inbox providers. Signups from these are refused
// before anything is written.
var disposableDomains = map[string]bool{
	"mailinator.com":    true,
	"guerrillamail.com": true,
	"10minutemail.com":  true,
	"tempmail.com":      true,
	"temp-mail.org":     true,
	"throwawaymail.com": true,
	"yopmail.com":       true,
	"trashmail.com":     true,
	"getnada.com":       true,
	"dispostable.com":   true,
	"maildrop.cc":       true,
	"sharklasers.com":   true,
}

func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

func IsDisposableEmail(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}
	return disposableDomains[domain]
}

func IsEmailDomainValid(email string) bool {
	domain := emailDomain(email)
	if domain == "" {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
