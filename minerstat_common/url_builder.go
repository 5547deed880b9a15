package minerstat_common

import (
	"net/url"
	"strings"
)

const (
	schemeHTTP  = "http://"
	schemeHTTPS = "https://"
)

// BuildURL composes a full URL for a single list-valued query parameter.
// domain must not carry a scheme; secure selects https over http.
// Values are upper-cased, form-encoded and joined with commas, so an
// empty values slice yields a URL ending in "paramName=".
func BuildURL(secure bool, domain, paramName string, values []string) string {
	scheme := schemeHTTP
	if secure {
		scheme = schemeHTTPS
	}

	return scheme + BuildQueryURL(domain, paramName, values)
}

// BuildQueryURL is BuildURL without a scheme. Use it when domain already
// carries one.
func BuildQueryURL(domain, paramName string, values []string) string {
	var sb strings.Builder
	sb.WriteString(domain)
	sb.WriteString("?")
	sb.WriteString(paramName)
	sb.WriteString("=")
	sb.WriteString(encodeValues(values))

	return sb.String()
}

func encodeValues(values []string) string {
	encoded := make([]string, 0, len(values))
	for _, v := range values {
		encoded = append(encoded, url.QueryEscape(strings.ToUpper(v)))
	}

	return strings.Join(encoded, ",")
}
