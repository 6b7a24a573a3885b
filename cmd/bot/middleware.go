package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/Jacobbrewer1/artemis/cmd/bot/monitoring"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/Jacobbrewer1/artemis/pkg/request"
	"github.com/Jacobbrewer1/discordgo"
	"github.com/gorilla/mux"
)

// commandProcessor is the processor for a slash command.
type commandProcessor func(ctx context.Context, a IApp, i *discordgo.Interaction) error

// routePath is the path template of the matched route, so metrics are not labelled per ID. Unrouted requests keep
// their raw path.
func routePath(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return r.URL.Path
	}
	tmpl, err := route.GetPathTemplate()
	if err != nil {
		return r.URL.Path
	}
	return tmpl
}

// middlewareHttp records the request metrics and turns a panicking handler into a 500.
func middlewareHttp(l *slog.Logger, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)
		path := routePath(r)

		defer func() {
			if rec := recover(); rec != nil {
				l.Error("Panic in handler",
					slog.String("path", path),
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				request.Encode(l, cw, http.StatusInternalServerError, request.NewMessage(request.ErrInternalServer.Error()))
			}
			monitoring.HTTPRequest(path, r.Method, cw.StatusCode(), time.Since(now))
		}()

		handler(cw, r)
	}
}
