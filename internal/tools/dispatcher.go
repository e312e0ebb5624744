package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"transmission-mcp/internal/logging"
	"transmission-mcp/internal/services"
	"transmission-mcp/internal/services/transmission"
)

// ErrUnknownTool is returned when Call is asked for a tool that is not registered.
var ErrUnknownTool = fmt.Errorf("%w: unknown tool", services.ErrNotFound)

// Caller is the RPC surface the tools need; *transmission.Client satisfies it.
type Caller interface {
	CallInto(ctx context.Context, method string, arguments map[string]any, out any) error
}

type handlerFunc func(ctx context.Context, args Args) (string, error)

type tool struct {
	def     Definition
	handler handlerFunc
}

// Dispatcher routes tool invocations to their handlers.
type Dispatcher struct {
	client Caller
	logger *slog.Logger
	tools  map[string]tool
}

// NewDispatcher registers every Transmission tool against client.
func NewDispatcher(client Caller, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		client: client,
		logger: logging.NewComponentLogger(logger, "tools"),
		tools:  make(map[string]tool),
	}
	d.register(addTorrentDef, d.addTorrent)
	d.register(removeTorrentDef, d.removeTorrent)
	d.register(startTorrentDef, d.startTorrent)
	d.register(stopTorrentDef, d.stopTorrent)
	d.register(getTorrentInfoDef, d.getTorrentInfo)
	d.register(setTorrentPriorityDef, d.setTorrentPriority)
	d.register(setSpeedLimitsDef, d.setSpeedLimits)
	d.register(searchTorrentsDef, d.searchTorrents)
	d.register(getSessionStatsDef, d.getSessionStats)
	return d
}

func (d *Dispatcher) register(def Definition, handler handlerFunc) {
	d.tools[def.Name] = tool{def: def, handler: handler}
}

// Definitions lists the registered tools sorted by name.
func (d *Dispatcher) Definitions() []Definition {
	defs := make([]Definition, 0, len(d.tools))
	for _, t := range d.tools {
		defs = append(defs, t.def)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Call runs the named tool and returns its summary text.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := d.tools[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	if args == nil {
		args = map[string]any{}
	}
	ctx = services.WithTool(ctx, name)
	logger := logging.WithContext(ctx, d.logger)

	start := time.Now()
	text, err := t.handler(ctx, Args(args))
	if err != nil {
		logger.Debug("tool returned error",
			logging.Duration("duration", time.Since(start)),
			logging.String("kind", ErrorKind(err)),
		)
		return "", err
	}
	logger.Debug("tool completed", logging.Duration("duration", time.Since(start)))
	return text, nil
}

// ErrorKind names the failure class of a tool error for rendering.
func ErrorKind(err error) string {
	if kind := transmission.Kind(err); kind != "" {
		return kind
	}
	if errors.Is(err, ErrUnknownTool) {
		return "UnknownTool"
	}
	return services.Kind(err)
}
