package middle

import (
	"net/http"
	"strings"
)

const textPlain string = "text/plain"

type middle func(http.Handler) http.Handler

func Use(use http.HandlerFunc, arrMiddle ...middle) http.Handler {
	for i := range arrMiddle {
		use = arrMiddle[len(arrMiddle)-1-i](use).ServeHTTP
	}
	return use
}

func Get() middle       { return method(http.MethodGet) }
func Post() middle      { return method(http.MethodPost) }
func TextPlain() middle { return contentType(textPlain) }

func method(method string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			if req.Method != method {
				rw.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			next.ServeHTTP(rw, req)
		})
	}
}

// contentType сравнивает только media type, параметры (charset) не учитываются
func contentType(contentType string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			mediaType, _, _ := strings.Cut(req.Header.Get("Content-Type"), ";")
			if strings.TrimSpace(mediaType) != contentType {
				rw.WriteHeader(http.StatusUnsupportedMediaType)
				return
			}
			next.ServeHTTP(rw, req)
		})
	}
}
