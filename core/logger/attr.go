package logger

import (
	"log/slog"
	"time"
)

// Helpers that take an optional value return the zero slog.Attr when the
// value is absent; slog drops empty attrs, so callers never branch on nil
// errors or empty strings before logging.

// Group nests attrs under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error records err under the "error" key, or nothing when err is nil.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Duration records d under the "duration" key.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed records the time passed since start under the "elapsed" key.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// RequestID tags the record with the request's correlation ID.
func RequestID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("request_id", id)
}

// Component identifies the subsystem emitting the log record.
func Component(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("component", name)
}

// Event names the lifecycle event being logged.
func Event(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("event", name)
}

// Method records the HTTP request method.
func Method(method string) slog.Attr {
	return slog.String("method", method)
}

// Path records the request URL path.
func Path(path string) slog.Attr {
	return slog.String("path", path)
}

// Query records the raw query string when one is present.
func Query(query string) slog.Attr {
	if query == "" {
		return slog.Attr{}
	}
	return slog.String("query", query)
}

// RemoteAddr records the client network address.
func RemoteAddr(addr string) slog.Attr {
	if addr == "" {
		return slog.Attr{}
	}
	return slog.String("remote_addr", addr)
}

// StatusCode records the HTTP response status.
func StatusCode(code int) slog.Attr {
	return slog.Int("status_code", code)
}

// BytesOut records the response body size.
func BytesOut(n int64) slog.Attr {
	return slog.Int64("bytes_out", n)
}

// Template records the name of the rendered template.
func Template(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("template", name)
}
