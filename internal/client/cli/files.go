package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/filex"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// MaxUploadSize caps the files accepted by the upload command.
const MaxUploadSize = 64 << 20

var errUsage = errors.New("wrong arguments, see help")

// resolve finds a listed node by its 1-based row number, id or exact name.
func (a *App) resolve(arg string) (models.FileNode, error) {
	items := a.explorer.State().Items
	if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= len(items) {
		return items[n-1], nil
	}
	for _, it := range items {
		if it.ID == arg {
			return it, nil
		}
	}
	for _, it := range items {
		if it.Name == arg {
			return it, nil
		}
	}
	return models.FileNode{}, fmt.Errorf("%q: %w", arg, common.ErrorNotFound)
}

func (a *App) List(ctx context.Context, _ []string) error {
	s := a.explorer.State()
	if s.Err != nil {
		fmt.Fprintln(a.out, "Last error:", s.Err)
	}
	fmt.Fprintln(a.out, renderListing(s, a.explorer.Selection().Has))
	return nil
}

func (a *App) Cd(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	switch args[0] {
	case "..":
		if err := a.explorer.NavigateUp(ctx); err != nil {
			return err
		}
	case "/":
		if err := a.explorer.Navigate(ctx, models.RootID); err != nil {
			return err
		}
	default:
		n, err := a.resolve(args[0])
		if err != nil {
			return err
		}
		if !n.IsFolder() {
			return fmt.Errorf("%s: %w: not a folder", n.Name, common.ErrorValidation)
		}
		if err := a.explorer.Navigate(ctx, n.ID); err != nil {
			return err
		}
	}
	return a.List(ctx, nil)
}

func (a *App) Search(ctx context.Context, args []string) error {
	if err := a.explorer.SetSearch(ctx, strings.Join(args, " ")); err != nil {
		return err
	}
	return a.List(ctx, nil)
}

func (a *App) More(ctx context.Context, _ []string) error {
	if !a.explorer.State().HasMore {
		fmt.Fprintln(a.out, "No more items")
		return nil
	}
	if err := a.explorer.LoadMore(ctx); err != nil {
		return err
	}
	return a.List(ctx, nil)
}

func (a *App) Select(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	for _, arg := range args {
		n, err := a.resolve(arg)
		if err != nil {
			return err
		}
		a.explorer.Toggle(n.ID)
	}
	f := a.explorer.SelectionFacts()
	fmt.Fprintf(a.out, "%d selected\n", f.Count)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	blob, err := filex.ReadLimited(args[0], MaxUploadSize)
	if err != nil {
		return err
	}
	name := filepath.Base(args[0])
	if err := a.explorer.Upload(ctx, blob, name, "", a.explorer.State().CurrentFolderID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Uploaded %s (%d bytes)\n", name, len(blob))
	return nil
}

func (a *App) Mkdir(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	name := strings.Join(args, " ")
	if err := a.explorer.CreateFolder(ctx, name, a.explorer.State().CurrentFolderID); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Created folder %s\n", name)
	return nil
}

// Remove deletes the named items, or the selection when none are named,
// after a confirmation.
func (a *App) Remove(ctx context.Context, args []string) error {
	ids := a.explorer.Selection().IDs()
	if len(args) > 0 {
		ids = make([]string, 0, len(args))
		for _, arg := range args {
			n, err := a.resolve(arg)
			if err != nil {
				return err
			}
			ids = append(ids, n.ID)
		}
	}
	if len(ids) == 0 {
		return fmt.Errorf("%w: nothing to delete", common.ErrorValidation)
	}

	ok, err := GetConfirm(a.reader, fmt.Sprintf("Delete %d item(s) and everything inside?", len(ids)), a.out)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Cancelled")
		return nil
	}

	if err := a.explorer.Delete(ctx, ids); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %d item(s)\n", len(ids))
	return nil
}

func (a *App) Rename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errUsage
	}
	n, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	return a.explorer.Rename(ctx, n.ID, strings.Join(args[1:], " "))
}

func (a *App) Favorite(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := a.resolve(args[0])
	if err != nil {
		return err
	}
	if err := a.explorer.ToggleFavorite(ctx, n.ID); err != nil {
		return err
	}
	if n.IsFavorite {
		fmt.Fprintf(a.out, "Removed %s from favorites\n", n.Name)
	} else {
		fmt.Fprintf(a.out, "Added %s to favorites\n", n.Name)
	}
	return nil
}
