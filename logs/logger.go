package logs

import (
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/reusee/turing/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+strings.TrimPrefix(name, "-log-")))
	}
}

type Logger = *slog.Logger

// Logger writes text records to Writer. Under a systemd service with the
// default Writer, records go to the journal instead, falling back to Writer
// if the journal is unavailable.
func (Module) Logger(
	writer Writer,
) Logger {
	terminal := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})

	handlers := []slog.Handler{terminal}
	if writer == Writer(os.Stderr) && isSystemdService() {
		journal, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err == nil {
			handlers = []slog.Handler{journal}
		} else {
			slog.New(terminal).Warn("new systemd journal handler", "error", err)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func isSystemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
