package cli

import (
	"context"
	"fmt"

	"github.com/oluccaa/qualidade-sub001/internal/viewer"
)

// View opens the preview on a listed document. The signed URL is printed
// so it can be opened in a browser.
func (a *App) View(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	if err := a.viewer.Open(ctx, n, a.explorer.State().Items); err != nil {
		return err
	}
	a.printViewer()
	return nil
}

func (a *App) viewerKey(key string) func(context.Context, []string) error {
	return func(ctx context.Context, _ []string) error {
		handled, err := a.viewer.HandleKey(ctx, key)
		if err != nil {
			return err
		}
		if !handled {
			fmt.Fprintln(a.out, "No document open, use 'view' first")
			return nil
		}
		a.printViewer()
		return nil
	}
}

func (a *App) Zoom(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "+" && args[0] != "-" && args[0] != "0") {
		return errUsage
	}
	return a.viewerKey(args[0])(ctx, nil)
}

func (a *App) printViewer() {
	s := a.viewer.State()
	if !s.Open {
		fmt.Fprintln(a.out, "Preview closed")
		return
	}
	fmt.Fprintln(a.out, renderViewer(s))
}

func renderViewer(s viewer.State) string {
	out := fmt.Sprintf("[%d/%d] %s  zoom %.0f%%", s.Index+1, s.Count, s.File.Name, s.Zoom*100)
	if s.Fullscreen {
		out += "  fullscreen"
	}
	if s.Err != nil {
		return out + "\n  " + s.Err.Error()
	}
	return out + "\n  " + s.URL
}
