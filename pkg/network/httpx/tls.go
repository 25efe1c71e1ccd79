package httpx

import "golang.org/x/crypto/acme/autocert"

const defaultCertCache = ".cache/autocert"

// autoCert makes a Let's Encrypt certificate manager.
// With an empty domain any host name is accepted.
func autoCert(domain, cacheDir string) *autocert.Manager {
	if cacheDir == "" {
		cacheDir = defaultCertCache
	}
	m := autocert.Manager{Prompt: autocert.AcceptTOS, Cache: autocert.DirCache(cacheDir)}
	if domain != "" {
		m.HostPolicy = autocert.HostWhitelist(domain)
	}
	return &m
}
