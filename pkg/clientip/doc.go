// Package clientip resolves the address of the caller submitting a form.
//
// FromRequest examines the proxy headers in Headers, highest priority first,
// and falls back to the connection's remote address:
//
//  1. CF-Connecting-IP: set by Cloudflare
//  2. X-Forwarded-For: comma-separated chain, the first valid hop is used
//  3. X-Real-IP: set by reverse proxies such as Nginx
//  4. RemoteAddr: TCP peer address
//
// Invalid values are skipped and the result is normalized with net.ParseIP.
// Headers is a package variable so deployments that are not behind Cloudflare
// can drop entries they do not trust.
//
// # Usage
//
//	r.Use(clientip.Middleware)
//	log := logger.New(logger.WithContextExtractors(clientip.LoggerExtractor()))
//
// Records logged with the request context then carry "client_ip".
//
// # Error Handling
//
// FromRequest never returns an error. When no candidate is a valid IP it
// returns "" and LoggerExtractor adds nothing.
package clientip
