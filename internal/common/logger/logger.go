package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type Logger struct {
	service string
	out     io.Writer
	mu      *sync.Mutex
}

func New(service string) *Logger { return NewWriter(service, os.Stdout) }

// NewWriter logs to w instead of stdout.
func NewWriter(service string, w io.Writer) *Logger {
	return &Logger{service: service, out: w, mu: &sync.Mutex{}}
}

// With returns a logger for another service name sharing the same output.
func (l *Logger) With(service string) *Logger {
	return &Logger{service: service, out: l.out, mu: l.mu}
}

func (l *Logger) log(level, action, msg string, fields map[string]any, err error) {
	entry := map[string]any{
		"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		"level":      level,
		"service":    l.service,
		"action":     action,
		"message":    msg,
		"hostname":   hostname(),
		"request_id": "",
	}
	for k, v := range fields {
		entry[k] = v
	}
	if err != nil {
		entry["error"] = map[string]any{"msg": err.Error(), "stack": fmt.Sprintf("%T", err)}
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = json.NewEncoder(l.out).Encode(entry)
}

func (l *Logger) Info(action string, fields map[string]any) {
	l.log("INFO", action, action, fields, nil)
}
func (l *Logger) Debug(action string, fields map[string]any) {
	l.log("DEBUG", action, action, fields, nil)
}
func (l *Logger) Warn(action string, err error, fields map[string]any) {
	l.log("WARN", action, action, fields, err)
}
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log("ERROR", action, action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
