package middle

import (
	"log/slog"
	"net/http"
	"time"
)

type responseData struct {
	Status int `json:"httpStatus"`
	Size   int `json:"size"`
}

func newResponseData() *responseData {
	return &responseData{
		Status: http.StatusOK,
	}
}

type requestData struct {
	URI         string `json:"uri"`
	Method      string `json:"method"`
	ContentType string `json:"content-type"`
}

type loggingResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func newLoggingResponseWriter(rw http.ResponseWriter, resData *responseData) *loggingResponseWriter {
	return &loggingResponseWriter{
		ResponseWriter: rw,
		responseData:   resData,
	}
}

func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.Size += size

	return size, err
}

func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.responseData.Status = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

// Logger пишет одну запись на каждый запрос
func Logger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			reqData := &requestData{
				URI:         req.URL.String(),
				Method:      req.Method,
				ContentType: req.Header.Get("Content-Type"),
			}

			start := time.Now()
			resData := newResponseData()
			defer func() {
				log.Info("-resp-",
					"respData", resData,
					"reqData", reqData,
					"duration", time.Since(start),
				)
			}()

			lmw := newLoggingResponseWriter(rw, resData)

			next.ServeHTTP(lmw, req)
		})
	}
}

// Recover отвечает 500 вместо обрыва соединения при панике в обработчике
func Recover(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					log.Error("panic", "recover", rec, "uri", req.URL.String())
					http.Error(rw, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(rw, req)
		})
	}
}
