package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"conferenceschedule/internal/domain"
)

// CacheConfig controls the anonymous response cache.
type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
	Prefix  string
	// SessionCookie marks requests that may carry a session; they bypass the cache.
	SessionCookie string
	// MaxBodyBytes caps cached bodies. Larger responses are served but not stored.
	MaxBodyBytes int64
}

// cacheHeaderSkip lists headers that are never replayed from the cache.
var cacheHeaderSkip = map[string]struct{}{
	"Content-Length": {},
	"X-Cache":        {},
	"X-Request-Id":   {},
	"Set-Cookie":     {},
}

// captureWriter captures response status and body while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	limit    int64
	overflow bool
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	if !cw.overflow {
		if cw.limit > 0 && int64(cw.buf.Len()+len(b)) > cw.limit {
			cw.overflow = true
			cw.buf.Reset()
		} else {
			cw.buf.Write(b)
		}
	}
	return cw.ResponseWriter.Write(b)
}

func cacheKey(prefix string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.Method + " " + r.URL.RequestURI()))
	return fmt.Sprintf("%s:%x", prefix, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	hdrJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 8+len(hdrJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(hdrJSON)))
	copy(out[8:8+len(hdrJSON)], hdrJSON)
	copy(out[8+len(hdrJSON):], body)
	return out, nil
}

func decodePayload(bs []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(bs) < 8 {
		return 0, nil, nil, false
	}
	status = int(binary.BigEndian.Uint32(bs[0:4]))
	hlen := int(binary.BigEndian.Uint32(bs[4:8]))
	if hlen < 0 || 8+hlen > len(bs) {
		return 0, nil, nil, false
	}
	header = make(http.Header)
	if hlen > 0 {
		if err := json.Unmarshal(bs[8:8+hlen], &header); err != nil {
			return 0, nil, nil, false
		}
	}
	return status, header, bs[8+hlen:], true
}

// cacheable reports whether r is an anonymous read.
func cacheable(cfg CacheConfig, r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	if _, ok := UserIDFromContext(r.Context()); ok {
		return false
	}
	if r.Header.Get("Authorization") != "" {
		return false
	}
	if cfg.SessionCookie != "" {
		if _, err := r.Cookie(cfg.SessionCookie); err == nil {
			return false
		}
	}
	return true
}

// ResponseCache serves anonymous GET and HEAD responses from store. Only 200
// responses are stored. A nil store or a disabled config returns next unchanged.
// Store errors are logged and the request is served uncached.
func ResponseCache(cfg CacheConfig, store domain.ResponseCache, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled || store == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cacheable(cfg, r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := cacheKey(cfg.Prefix, r)

			bs, found, err := store.Get(ctx, key)
			if err != nil {
				logger.WarnContext(ctx, "response cache read failed", "key", key, "err", err)
			}
			if found {
				if status, hdr, body, ok := decodePayload(bs); ok {
					for k, vals := range hdr {
						if _, skip := cacheHeaderSkip[http.CanonicalHeaderKey(k)]; skip {
							continue
						}
						for _, v := range vals {
							w.Header().Add(k, v)
						}
					}
					w.Header().Set("X-Cache", "HIT")
					w.WriteHeader(status)
					if r.Method != http.MethodHead && len(body) > 0 {
						_, _ = w.Write(body)
					}
					return
				}
			}

			cw := &captureWriter{ResponseWriter: w, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			w.Header().Set("X-Cache", "MISS")
			next.ServeHTTP(cw, r)

			if cw.status != http.StatusOK || cw.overflow || r.Method == http.MethodHead {
				return
			}
			hdr := w.Header().Clone()
			for k := range cacheHeaderSkip {
				hdr.Del(k)
			}
			payload, err := encodePayload(cw.status, hdr, cw.buf.Bytes())
			if err != nil {
				logger.WarnContext(ctx, "response cache encode failed", "key", key, "err", err)
				return
			}
			// The request context may already be cancelled once the client is served.
			if err := store.Set(context.WithoutCancel(ctx), key, payload, ttl); err != nil {
				logger.WarnContext(ctx, "response cache write failed", "key", key, "err", err)
			}
		})
	}
}

// CacheKeyPrefix normalizes a configured prefix.
func CacheKeyPrefix(prefix string) string {
	prefix = strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if prefix == "" {
		return "schedule"
	}
	return prefix
}
