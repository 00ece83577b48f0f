package xhttp

import (
	"slices"
	"time"

	"github.com/nimasrn/retail-normalizer/pkg/logger"
	"github.com/valyala/fasthttp"
)

type Server = fasthttp.Server

type Engine struct {
	*Router
	*Server
	middle []MiddlewareFunc
}

func newServer() *fasthttp.Server {
	return &fasthttp.Server{
		Name:                  "retail-normalizer",
		ReadTimeout:           2500 * time.Millisecond,
		WriteTimeout:          2500 * time.Millisecond,
		IdleTimeout:           10 * time.Second,
		MaxRequestBodySize:    64 * 1024,
		NoDefaultServerHeader: true,
		CloseOnShutdown:       true,
		Logger:                logger.GetLogger(),
	}
}

// CreateServer returns an engine with the default router and panic recovery.
func CreateServer() *Engine {
	e := &Engine{
		Router: CreateDefaultRouter(),
		Server: newServer(),
	}
	e.Use(RecoverMiddleware)
	return e
}

func (e *Engine) ListenAndServe(addr string) error {
	e.DoRouting()
	e.Server.Logger.Printf("[xhttp] server is listening on %s", addr)
	return e.Server.ListenAndServe(addr)
}

// DoRouting installs the router as the server handler wrapped by the
// middleware chain, the first registered middleware running first.
func (e *Engine) DoRouting() {
	for method, route := range e.Router.List() {
		for _, r := range route {
			e.Server.Logger.Printf("[xhttp] method: %s, path: %s", method, r)
		}
	}
	e.Server.Handler = e.Router.Handler
	middle := slices.Clone(e.middle)
	slices.Reverse(middle)
	for _, m := range middle {
		e.Server.Handler = m(e.Server.Handler)
	}
}

// Use adds middleware to the end of the chain.
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

// Shutdown gracefully stops the server without interrupting active connections.
func (e *Engine) Shutdown() {
	e.Server.Logger.Printf("[xhttp] server is shutting down")
	if err := e.Server.Shutdown(); err != nil {
		e.Server.Logger.Printf("[xhttp] error while shutting down: %v", err)
	}
}
