package mcp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/planner/pkg/config"
)

// Transport selects how the planner MCP server is reached.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

const (
	defaultListenAddr = "127.0.0.1:8080"
	defaultPath       = "/mcp"
	shutdownTimeout   = 5 * time.Second
)

// Runner serves the planner tools until the context is done or stdin closes.
type Runner struct {
	Config  *config.Config
	Name    string
	Version string

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	HTTPServerCert   string
	HTTPServerKey    string
	// OnHTTPListening is called with the bound address before serving.
	OnHTTPListening func(net.Addr)
}

// NewServer builds the MCP server with every planner tool and resource.
func NewServer(name, version string, svc *Service) *server.MCPServer {
	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Look up planner page numbers, read page copy and generate the planner PDF."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

func (r Runner) Do(ctx context.Context) error {
	if r.Config == nil {
		return errors.New("mcp: no configuration")
	}
	name, version := r.Name, r.Version
	if name == "" {
		name = "planner"
	}
	if version == "" {
		version = "dev"
	}
	srv := NewServer(name, version, NewService(r.Config))

	switch r.Transport {
	case "", TransportStdio:
		return server.ServeStdio(srv)
	case TransportHTTP:
		return r.serveHTTP(ctx, srv)
	}
	return fmt.Errorf("mcp: unsupported transport %q (expected %s or %s)", r.Transport, TransportStdio, TransportHTTP)
}

// endpoint returns the normalized listen address and path.
func (r Runner) endpoint() (addr, path string) {
	addr = strings.TrimSpace(r.HTTPListenAddr)
	if addr == "" {
		addr = defaultListenAddr
	}
	path = strings.TrimSpace(r.HTTPEndpointPath)
	if path == "" {
		path = defaultPath
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return addr, path
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	tls := r.HTTPServerCert != "" || r.HTTPServerKey != ""
	if tls && (r.HTTPServerCert == "" || r.HTTPServerKey == "") {
		return errors.New("mcp: tls needs both a certificate and a key")
	}

	addr, path := r.endpoint()
	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	hs := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	stop := context.AfterFunc(ctx, func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = hs.Shutdown(sctx)
	})
	defer stop()

	if tls {
		err = hs.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = hs.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
