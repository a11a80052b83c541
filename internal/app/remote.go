package app

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	cookv1 "go.trai.ch/cook/api/cook/v1"
	"go.trai.ch/cook/internal/adapters/client"
	"go.trai.ch/cook/internal/core/domain"
	"go.trai.ch/zerr"
)

// sessionPollInterval is how often a remote book session is polled.
const sessionPollInterval = 500 * time.Millisecond

// RemoteOptions locates a running cook server.
type RemoteOptions struct {
	Root string
	// Addr overrides the address recorded by the server under Root.
	Addr string
}

func (o RemoteOptions) client() *client.Client {
	if o.Addr != "" {
		return client.New(o.Addr)
	}
	return client.New(client.ResolveAddr(absRoot(o.Root), domain.DefaultServerAddr))
}

// Status prints the state of a running server.
func (a *App) Status(ctx context.Context, opts RemoteOptions) error {
	st, err := opts.client().Status(ctx)
	if err != nil {
		return err
	}
	errs := "no"
	if st.HasErrors {
		errs = "yes"
	}
	_, _ = fmt.Fprintf(a.stdout, "state:   %s\npending: %d\nerrors:  %s\n", st.State, st.Pending, errs)
	if st.Session != "" {
		_, _ = fmt.Fprintf(a.stdout, "session: %s\n", st.Session)
	}
	return nil
}

// Manifest prints the packages a running server cooked for platform.
func (a *App) Manifest(ctx context.Context, opts RemoteOptions, platform string) error {
	pkgs, err := opts.client().Manifest(ctx, platform)
	if err != nil {
		return err
	}
	if len(pkgs) > 0 {
		_, _ = fmt.Fprintln(a.stdout, strings.Join(pkgs, "\n"))
	}
	return nil
}

// RequestOptions configures the Request method.
type RequestOptions struct {
	RemoteOptions
	Platform string
	Path     string
	// Out receives the cooked bytes. Empty means stdout.
	Out string
}

// Request asks a running server for one cooked package.
func (a *App) Request(ctx context.Context, opts RequestOptions) error {
	resp, err := opts.client().RequestPackage(ctx, opts.Platform, opts.Path)
	if resp != nil {
		for _, pkg := range resp.Unsolicited {
			a.logger.Info(fmt.Sprintf("also cooked %s", pkg))
		}
	}
	if err != nil {
		return err
	}

	if opts.Out == "" {
		_, err = a.stdout.Write(resp.Data)
		return err
	}
	if err := os.WriteFile(opts.Out, resp.Data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cooked package"), "path", opts.Out)
	}
	a.logger.Info(fmt.Sprintf("wrote %s to %s", resp.Package, opts.Out))
	return nil
}

// Dirty tells a running server that packages changed.
func (a *App) Dirty(ctx context.Context, opts RemoteOptions, packages []string) error {
	n, err := opts.client().MarkDirty(ctx, packages)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("marked %d packages dirty", n))
	return nil
}

// RemoteBook starts a book session on a running server and waits for it.
// An interrupt cancels the remote session.
func (a *App) RemoteBook(ctx context.Context, opts RemoteOptions, req cookv1.BookRequest) error {
	c := opts.client()
	id, err := c.StartBook(ctx, req)
	if err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("started %s", id))

	bg := context.WithoutCancel(ctx)
	interrupted := ctx.Done()
	ticker := time.NewTicker(sessionPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-interrupted:
			interrupted = nil
			if err := c.Cancel(bg, id); err != nil {
				a.logger.Warn(err.Error())
			} else {
				a.logger.Warn(fmt.Sprintf("cancelling %s", id))
			}
		case <-ticker.C:
		}

		running, err := c.Session(bg, id)
		if err != nil {
			return err
		}
		if running {
			continue
		}

		st, err := c.Status(bg)
		if err != nil {
			return err
		}
		if st.HasErrors {
			return zerr.With(domain.ErrCookSessionFailed, "session", id)
		}
		a.logger.Info(fmt.Sprintf("%s finished", id))
		return nil
	}
}
