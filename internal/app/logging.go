package app

import (
	"log/slog"

	"github.com/treykane/photo-settings/internal/logging"
)

// appLog is the package logger, tagged component=app. Output goes to
// stderr so it does not interfere with the UI on stdout.
var appLog = logging.New("app")

// setStatusError shows status in the footer and logs err with attrs.
//
//	m.setStatusError("Invalid value", err, "section", s)
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
