// Package gelf ships log lines to a Graylog endpoint over UDP.
package gelf

import (
	"encoding/json"
	"net"
	"os"
	"strings"
	"time"
)

// Syslog severity levels used in GELF payloads.
const (
	levelError   = 3
	levelWarning = 4
	levelInfo    = 6
)

// Writer implements io.Writer so it can sit behind log.SetOutput,
// typically via io.MultiWriter alongside stderr. One Write call maps to
// one GELF message; sends are fire-and-forget.
type Writer struct {
	conn    net.Conn
	host    string
	service string
}

// New dials the GELF UDP endpoint at addr (e.g. "127.0.0.1:12201").
func New(addr, service string) (*Writer, error) {
	conn, err := net.Dial("udp", addr)
	if err != nil {
		return nil, err
	}
	host, _ := os.Hostname()
	if host == "" {
		host = service
	}
	return &Writer{conn: conn, host: host, service: service}, nil
}

func (w *Writer) Close() error { return w.conn.Close() }

func (w *Writer) Write(p []byte) (int, error) {
	short := stripLogPrefix(strings.TrimRight(string(p), "\n"))

	level := levelInfo
	switch {
	case strings.Contains(short, "PANIC:"), strings.Contains(short, "Fatal"):
		level = levelError
	case strings.HasPrefix(short, "Warning:"):
		level = levelWarning
	}

	payload, err := json.Marshal(map[string]any{
		"version":       "1.1",
		"host":          w.host,
		"short_message": short,
		"timestamp":     float64(time.Now().UnixNano()) / 1e9,
		"level":         level,
		"_service":      w.service,
	})
	if err != nil {
		return len(p), nil
	}
	w.conn.Write(payload)
	return len(p), nil
}

// stripLogPrefix drops the stdlib log date/time prefix
// ("2006/01/02 15:04:05 ", exactly 20 characters when present).
func stripLogPrefix(msg string) string {
	if len(msg) > 20 && msg[4] == '/' && msg[7] == '/' && msg[10] == ' ' && msg[13] == ':' {
		return msg[20:]
	}
	return msg
}
