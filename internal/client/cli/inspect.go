package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/oluccaa/qualidade-sub001/internal/inspection"
)

func (a *App) workflow(arg string) (*inspection.Workflow, error) {
	n, err := a.resolve(arg)
	if err != nil {
		return nil, err
	}
	return inspection.NewWorkflow(n, a.backend, a.backend, a.session, a.logger)
}

func (a *App) inspect(ctx context.Context, args []string, fn func(context.Context, *inspection.Workflow) error) error {
	if len(args) == 0 {
		return errUsage
	}
	w, err := a.workflow(args[0])
	if err != nil {
		return err
	}
	if err := fn(ctx, w); err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderMetadata(w.File()))
	return a.explorer.Refresh(ctx)
}

func (a *App) Approve(ctx context.Context, args []string) error {
	return a.inspect(ctx, args, func(ctx context.Context, w *inspection.Workflow) error {
		return w.Approve(ctx)
	})
}

// Reject takes the reason from the remaining arguments or prompts for it.
func (a *App) Reject(ctx context.Context, args []string) error {
	return a.inspect(ctx, args, func(ctx context.Context, w *inspection.Workflow) error {
		reason := strings.Join(args[1:], " ")
		if reason == "" {
			var err error
			if reason, err = GetSimpleText(a.reader, "Rejection reason", a.out); err != nil {
				return err
			}
		}
		return w.Reject(ctx, reason)
	})
}

func (a *App) Revert(ctx context.Context, args []string) error {
	return a.inspect(ctx, args, func(ctx context.Context, w *inspection.Workflow) error {
		return w.RevertToPending(ctx)
	})
}

func (a *App) History(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	events, err := a.backend.History(ctx, n.ID)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, renderMetadata(n))
	fmt.Fprintln(a.out, renderHistory(events))
	return nil
}
