// Package notify entrega los mensajes de éxito y error de la vista de gestión.
package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jhoicas/storemanage/internal/application/storemanage"
	"github.com/jhoicas/storemanage/pkg/logger"
)

var (
	_ storemanage.Notifier = (*LogNotifier)(nil)
	_ storemanage.Notifier = (*WriterNotifier)(nil)
	_ storemanage.Notifier = Multi(nil)
)

// LogNotifier registra cada notificación con zerolog. Por defecto los éxitos van
// en info y los errores en error; WithLevel fija un nivel único.
type LogNotifier struct {
	log   *logger.Logger
	level zerolog.Level
}

// NewLogNotifier construye el notificador. log nil descarta todo.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	if log == nil {
		log = logger.Nop()
	}
	return &LogNotifier{log: log.Component("notify"), level: zerolog.NoLevel}
}

// WithLevel devuelve una copia que registra éxitos y errores en lvl. La CLI lo usa
// con debug porque el usuario ya ve cada mensaje en su terminal.
func (n *LogNotifier) WithLevel(lvl zerolog.Level) *LogNotifier {
	return &LogNotifier{log: n.log, level: lvl}
}

func (n *LogNotifier) Success(msg string) {
	n.event(zerolog.InfoLevel).Str("kind", "success").Msg(msg)
}

func (n *LogNotifier) Error(msg string) {
	n.event(zerolog.ErrorLevel).Str("kind", "error").Msg(msg)
}

func (n *LogNotifier) event(def zerolog.Level) *zerolog.Event {
	lvl := n.level
	if lvl == zerolog.NoLevel {
		lvl = def
	}
	zl := n.log.Zerolog()
	return zl.WithLevel(lvl)
}

// WriterNotifier escribe una línea por mensaje: "OK: ..." o "ERROR: ...".
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier construye el notificador sobre w (típicamente os.Stdout).
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Success(msg string) { n.write("OK", msg) }

func (n *WriterNotifier) Error(msg string) { n.write("ERROR", msg) }

func (n *WriterNotifier) write(prefix, msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.w, "%s: %s\n", prefix, msg)
}

// Multi reenvía cada mensaje a todos los notificadores, en orden.
type Multi []storemanage.Notifier

func (m Multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m Multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
