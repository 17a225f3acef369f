package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/wasif-mahmood1/Todo-app/internal/markdown"
	"github.com/wasif-mahmood1/Todo-app/internal/ui"
	"github.com/wasif-mahmood1/Todo-app/task"
)

const defaultShowWidth = 80

func runShow(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}

	ctrl, err := newConsoleController()
	if err != nil {
		return err
	}
	if err := ctrl.Reload(cmd.Context()); err != nil {
		return err
	}

	item, ok := ctrl.Get(id)
	if !ok {
		return fmt.Errorf("todo %d: %w", id, task.ErrTaskNotFound)
	}

	rendered := markdown.Render(showWidth(), []byte(showDocument(item)))
	fmt.Println(string(rendered))
	return nil
}

func showDocument(item task.Task) string {
	status := "pending"
	if item.Completed {
		status = "completed"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", item.Text)
	fmt.Fprintf(&b, "- **ID**: %d\n", item.ID)
	fmt.Fprintf(&b, "- **Status**: %s\n", status)
	if !item.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "- **Created**: %s (%s)\n",
			item.CreatedAt.Local().Format(time.DateTime),
			ui.FormatTimeAgo(item.CreatedAt, time.Now()))
	}
	if item.HasImage() {
		fmt.Fprintf(&b, "- **Image**: %s\n", item.ImageSrc)
	}
	return b.String()
}

func showWidth() int {
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return defaultShowWidth
}
