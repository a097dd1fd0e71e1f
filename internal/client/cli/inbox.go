package cli

import (
	"context"
	"fmt"

	"github.com/oluccaa/qualidade-sub001/internal/common"
	"github.com/oluccaa/qualidade-sub001/internal/models"
)

// Inbox lists unread notifications, or all of them with "all".
func (a *App) Inbox(ctx context.Context, args []string) error {
	unreadOnly := !(len(args) > 0 && args[0] == "all")
	items, err := a.backend.ListNotifications(ctx, unreadOnly)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(a.out, "No notifications")
		return nil
	}
	t := newTable("ID", "When", "Kind", "Title", "Message", "Read")
	for _, n := range items {
		read := ""
		if n.Read {
			read = "yes"
		}
		t.Row(n.ID, n.CreatedAt.Local().Format(timeLayout), string(n.Kind), n.Title, n.Body, read)
	}
	fmt.Fprintln(a.out, t.String())
	return nil
}

func (a *App) MarkRead(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	return a.backend.MarkNotificationRead(ctx, args[0])
}

// Notify sends an INFO notification to another user.
func (a *App) Notify(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		return fmt.Errorf("%w: title is required", common.ErrorValidation)
	}
	body, err := GetMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	if err := a.backend.AddNotification(ctx, a.currentUser(), args[0], title, body, models.NotificationInfo); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Sent")
	return nil
}
