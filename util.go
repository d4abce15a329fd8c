package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"
)

var uptimeUnits = []struct {
	name string
	size time.Duration
}{
	{"day", 24 * time.Hour},
	{"hour", time.Hour},
	{"minute", time.Minute},
	{"second", time.Second},
}

// formatUptime spells out d from its largest non-zero unit down to seconds,
// e.g. "1 day, 0 hours, 3 minutes, 5 seconds".
func formatUptime(d time.Duration) string {
	d = d.Truncate(time.Second)
	var parts []string
	for _, u := range uptimeUnits {
		n := int(d / u.size)
		d -= time.Duration(n) * u.size
		if n == 0 && len(parts) == 0 && u.size != time.Second {
			continue
		}
		parts = append(parts, fmt.Sprintf("%d %s%s", n, u.name, plural(n)))
	}
	return strings.Join(parts, ", ")
}

// plural returns "s" if n != 1, otherwise "".
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// requestID returns the ID injected by requestIDMiddleware, or "".
func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func logInfo(format string, v ...any) {
	log.Printf("[INFO] "+format, v...)
}

func logWarn(format string, v ...any) {
	log.Printf("[WARN] "+format, v...)
}

// logFatal logs and exits.
func logFatal(format string, v ...any) {
	log.Fatalf("[FATAL] "+format, v...)
}

// logRequestInfo and logRequestWarn tag the line with the request ID carried
// by ctx.
func logRequestInfo(ctx context.Context, format string, v ...any) {
	logInfo("[request_id=%v] "+format, append([]any{requestID(ctx)}, v...)...)
}

func logRequestWarn(ctx context.Context, format string, v ...any) {
	logWarn("[request_id=%v] "+format, append([]any{requestID(ctx)}, v...)...)
}
