package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

var (
	compressors   = sync.Pool{New: func() any { return gzip.NewWriter(nil) }}
	decompressors = sync.Pool{New: func() any { return new(gzip.Reader) }}
)

// withGZip decodes gzip request bodies and encodes responses for clients
// that accept gzip. Stored images are already compressed and bypass it.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hasToken(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := newGzipBody(r.Body)
			if err != nil {
				writeMessage(w, "invalid gzip data", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
			r.ContentLength = -1
		}

		if !shouldCompress(r) {
			next.ServeHTTP(w, r)
			return
		}

		w.Header().Add("Vary", "Accept-Encoding")
		cw := &compressWriter{ResponseWriter: w}
		defer cw.finish()
		next.ServeHTTP(cw, r)
	})
}

func shouldCompress(r *http.Request) bool {
	switch {
	case r.Method == http.MethodHead:
		return false
	case strings.HasPrefix(r.URL.Path, "/uploads/"):
		return false
	}
	return hasToken(r.Header.Get("Accept-Encoding"), "gzip")
}

func hasToken(header, token string) bool {
	for part := range strings.SplitSeq(header, ",") {
		name, _, _ := strings.Cut(part, ";")
		if strings.EqualFold(strings.TrimSpace(name), token) {
			return true
		}
	}
	return false
}

// gzipBody returns its reader to the pool on Close.
type gzipBody struct {
	*gzip.Reader
}

func newGzipBody(src io.Reader) (*gzipBody, error) {
	zr := decompressors.Get().(*gzip.Reader)
	if err := zr.Reset(src); err != nil {
		decompressors.Put(zr)
		return nil, err
	}
	return &gzipBody{Reader: zr}, nil
}

func (b *gzipBody) Close() error {
	if b.Reader == nil {
		return nil
	}
	err := b.Reader.Close()
	decompressors.Put(b.Reader)
	b.Reader = nil
	return err
}

// compressWriter picks the encoding when the status line goes out.
// Bodiless statuses are written as is.
type compressWriter struct {
	http.ResponseWriter
	zw          *gzip.Writer
	wroteHeader bool
}

func (c *compressWriter) WriteHeader(status int) {
	if c.wroteHeader {
		return
	}
	c.wroteHeader = true

	h := c.Header()
	if status != http.StatusNoContent && status != http.StatusNotModified && h.Get("Content-Encoding") == "" {
		h.Set("Content-Encoding", "gzip")
		h.Del("Content-Length")
		c.zw = compressors.Get().(*gzip.Writer)
		c.zw.Reset(c.ResponseWriter)
	}
	c.ResponseWriter.WriteHeader(status)
}

func (c *compressWriter) Write(p []byte) (int, error) {
	if !c.wroteHeader {
		c.WriteHeader(http.StatusOK)
	}
	if c.zw == nil {
		return c.ResponseWriter.Write(p)
	}
	return c.zw.Write(p)
}

func (c *compressWriter) Unwrap() http.ResponseWriter {
	return c.ResponseWriter
}

func (c *compressWriter) finish() {
	if c.zw == nil {
		return
	}
	_ = c.zw.Close()
	compressors.Put(c.zw)
	c.zw = nil
}
