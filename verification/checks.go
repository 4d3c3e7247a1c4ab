package verification

import (
	"net/url"
	"strings"
)

// contextTermWindow is the number of characters inspected on each side of
// a company-name occurrence when checking for business context.
const contextTermWindow = 200

// businessContextTerms indicate a company name is being discussed as a
// business, not mentioned generically.
var businessContextTerms = []string{
	"announced",
	"raised",
	"launched",
	"acquired",
	"partnered",
	"company",
	"startup",
	"funding",
	"revenue",
	"customers",
	"product",
	"service",
	"platform",
	"technology",
	"ceo",
	"founded",
	"headquartered",
	"employees",
	"valuation",
}

// CheckDomainMatch reports whether companyDomain appears in articleURL
// with domain boundaries: the character before must not be alphanumeric,
// a dot, or a hyphen (so "x.acme.com" does not count as "acme.com"), and
// the character after must not be alphanumeric or a hyphen.
func CheckDomainMatch(articleURL, companyDomain string) bool {
	return domainAppearsIn(articleURL, companyDomain)
}

// CheckDomainInContent reports whether companyDomain appears in content
// with the same boundary rules as CheckDomainMatch.
func CheckDomainInContent(content, companyDomain string) bool {
	if content == "" {
		return false
	}
	return domainAppearsIn(content, companyDomain)
}

func domainAppearsIn(haystack, domainName string) bool {
	if domainName == "" {
		return false
	}
	lowerHay := strings.ToLower(haystack)
	lowerDomain := strings.ToLower(domainName)

	offset := 0
	for {
		idx := strings.Index(lowerHay[offset:], lowerDomain)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(lowerDomain)

		if boundaryBefore(lowerHay, start) && boundaryAfter(lowerHay, end) {
			return true
		}
		offset = start + 1
	}
}

func boundaryBefore(s string, pos int) bool {
	if pos == 0 {
		return true
	}
	c := s[pos-1]
	return !isAlphanumeric(c) && c != '.' && c != '-'
}

func boundaryAfter(s string, pos int) bool {
	if pos >= len(s) {
		return true
	}
	c := s[pos]
	return !isAlphanumeric(c) && c != '-'
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// CheckNameInContext reports whether companyName appears in content near
// business-related terms, distinguishing a company being discussed from a
// generic word match.
func CheckNameInContext(content, companyName string) bool {
	if content == "" || companyName == "" {
		return false
	}

	lowerContent := strings.ToLower(content)
	lowerName := strings.ToLower(companyName)

	offset := 0
	for {
		idx := strings.Index(lowerContent[offset:], lowerName)
		if idx < 0 {
			return false
		}
		pos := offset + idx

		start := pos - contextTermWindow
		if start < 0 {
			start = 0
		}
		end := pos + len(lowerName) + contextTermWindow
		if end > len(lowerContent) {
			end = len(lowerContent)
		}
		window := lowerContent[start:end]

		for _, term := range businessContextTerms {
			if strings.Contains(window, term) {
				return true
			}
		}
		offset = pos + 1
	}
}

// ExtractDomainFromURL returns the base host of a URL with any leading
// "www." stripped. Returns "" for unparseable URLs.
func ExtractDomainFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	return strings.TrimPrefix(host, "www.")
}
