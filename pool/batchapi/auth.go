package batchapi

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// sharedKeySigner signs requests using the batch Shared Key scheme.
type sharedKeySigner struct {
	account string
	key     []byte
}

func newSharedKeySigner(account, key string) (*sharedKeySigner, error) {
	decoded, err := base64.StdEncoding.DecodeString(key)
	if err != nil {
		return nil, fmt.Errorf("decode account key: %w", err)
	}

	return &sharedKeySigner{
		account: account,
		key:     decoded,
	}, nil
}

func (s *sharedKeySigner) sign(req *http.Request) {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(stringToSign(s.account, req)))
	signature := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	req.Header.Set("Authorization", fmt.Sprintf("SharedKey %s:%s", s.account, signature))
}

// stringToSign builds the canonical representation of the request. Batch uses
// the ocp-date header, so the Date line is always empty.
func stringToSign(account string, req *http.Request) string {
	contentLength := req.Header.Get("Content-Length")
	if contentLength == "0" {
		contentLength = ""
	}

	lines := []string{
		req.Method,
		req.Header.Get("Content-Encoding"),
		req.Header.Get("Content-Language"),
		contentLength,
		req.Header.Get("Content-MD5"),
		req.Header.Get("Content-Type"),
		"", // Date
		req.Header.Get("If-Modified-Since"),
		req.Header.Get("If-Match"),
		req.Header.Get("If-None-Match"),
		req.Header.Get("If-Unmodified-Since"),
		req.Header.Get("Range"),
	}

	return strings.Join(lines, "\n") + "\n" +
		canonicalHeaders(req.Header) +
		canonicalResource(account, req.URL)
}

func canonicalHeaders(h http.Header) string {
	var names []string

	for name := range h {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, "ocp-") {
			names = append(names, lower)
		}
	}

	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(strings.TrimSpace(h.Get(name)))
		b.WriteString("\n")
	}

	return b.String()
}

func canonicalResource(account string, u *url.URL) string {
	var b strings.Builder

	b.WriteString("/")
	b.WriteString(account)
	b.WriteString(u.EscapedPath())

	query := u.Query()
	params := make(map[string][]string, len(query))
	names := make([]string, 0, len(query))

	for name, values := range query {
		lower := strings.ToLower(name)
		if _, ok := params[lower]; !ok {
			names = append(names, lower)
		}

		params[lower] = append(params[lower], values...)
	}

	sort.Strings(names)

	for _, name := range names {
		values := params[name]
		sort.Strings(values)

		b.WriteString("\n")
		b.WriteString(name)
		b.WriteString(":")
		b.WriteString(strings.Join(values, ","))
	}

	return b.String()
}
