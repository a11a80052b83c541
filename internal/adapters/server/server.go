package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Server serves a handler and records its address for local clients.
type Server struct {
	http     *http.Server
	addrFile string
	listener net.Listener
}

// New creates a server for handler. When addrFile is not empty the bound
// address is written there while the server runs.
func New(handler http.Handler, addrFile string) *Server {
	return &Server{
		http: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		addrFile: addrFile,
	}
}

// Listen binds addr. Port 0 picks a free port.
func (s *Server) Listen(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrServerFailed.Error()), "addr", addr)
	}
	s.listener = lis

	if s.addrFile != "" {
		if err := os.MkdirAll(filepath.Dir(s.addrFile), domain.DirPerm); err != nil {
			_ = lis.Close()
			return zerr.Wrap(err, "failed to create server address directory")
		}
		if err := os.WriteFile(s.addrFile, []byte(s.Addr()), domain.PrivateFilePerm); err != nil {
			_ = lis.Close()
			return zerr.Wrap(err, "failed to write server address file")
		}
	}
	return nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Serve handles requests until ctx is done, then shuts down gracefully.
// Listen must have been called.
func (s *Server) Serve(ctx context.Context) error {
	if s.listener == nil {
		return zerr.Wrap(errors.New("server is not listening"), domain.ErrServerFailed.Error())
	}
	defer s.cleanup()

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := s.http.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, domain.ErrServerFailed.Error())
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrServerFailed.Error())
	}
}

func (s *Server) cleanup() {
	if s.addrFile != "" {
		_ = os.Remove(s.addrFile)
	}
}
