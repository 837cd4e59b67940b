package logger

import (
	"encoding/json"
	"strings"

	"github.com/sirupsen/logrus"
)

type Fields map[string]any

var log = logrus.New()

var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"oldpassword":   {},
	"old_password":  {},
	"newpassword":   {},
	"new_password":  {},
	"passwordhash":  {},
	"password_hash": {},
	"pin":           {},
	"sessionid":     {},
	"session_id":    {},
}

// Configure sets the global log level. Unknown levels fall back to info.
func Configure(level string) {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)
	log.SetFormatter(&logrus.JSONFormatter{})
}

func Info(message string, fields Fields) {
	log.WithFields(sanitizedLogrusFields(fields)).Info(message)
}

func Warn(message string, fields Fields) {
	log.WithFields(sanitizedLogrusFields(fields)).Warn(message)
}

func Error(message string, err error, fields Fields) {
	base := Fields{}
	for k, v := range fields {
		base[k] = v
	}
	if err != nil {
		base["error"] = err.Error()
	}

	log.WithFields(sanitizedLogrusFields(base)).Error(message)
}

// SanitizePayload masks credential fields before a payload is logged.
func SanitizePayload(payload any) any {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "<unavailable>"
	}

	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "<unavailable>"
	}

	return sanitizeValue(data)
}

func sanitizedLogrusFields(fields Fields) logrus.Fields {
	out := logrus.Fields{}
	for key, value := range fields {
		if isSensitiveKey(key) {
			out[key] = "******"
			continue
		}
		out[key] = sanitizeValue(value)
	}
	return out
}

func sanitizeValue(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, inner := range typed {
			if isSensitiveKey(key) {
				out[key] = "******"
				continue
			}
			out[key] = sanitizeValue(inner)
		}
		return out
	case []any:
		out := make([]any, 0, len(typed))
		for _, item := range typed {
			out = append(out, sanitizeValue(item))
		}
		return out
	default:
		return value
	}
}

func isSensitiveKey(key string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(key), "-", ""))
	_, ok := sensitiveKeys[normalized]
	return ok
}
