package app

import (
	"context"
	"errors"

	"go.trai.ch/cook/internal/adapters/process"
	"go.trai.ch/cook/internal/engine/scheduler"
)

// ChildOptions configures the Child method.
type ChildOptions struct {
	Root         string
	ResponseFile string
	ResultFile   string
}

// Child cooks the partition handed over by a parent cooker and writes the
// result file the parent reads back. A cancelled child still reports what it
// cooked.
func (a *App) Child(ctx context.Context, opts ChildOptions) error {
	spec, err := process.ReadResponse(opts.ResponseFile)
	if err != nil {
		return err
	}

	rt, err := a.open(ctx, opts.Root, runtimeOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if cerr := rt.Close(ctx); cerr != nil {
			a.logger.Warn(cerr.Error())
		}
	}()
	// Children never spawn children.
	rt.host.Launcher = nil

	result, cookErr := scheduler.CookPartition(ctx, rt.host, spec, a.stdout)
	if result == nil {
		return cookErr
	}
	return errors.Join(cookErr, process.WriteJSON(opts.ResultFile, result))
}
