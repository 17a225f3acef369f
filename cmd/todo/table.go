package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/wasif-mahmood1/Todo-app/internal/ui"
	"github.com/wasif-mahmood1/Todo-app/task"
	"github.com/wasif-mahmood1/Todo-app/tasklist"
)

// printTaskTable prints the task list in a table format.
func printTaskTable(ctrl *tasklist.Controller) {
	tasks := ctrl.Tasks()
	if len(tasks) == 0 {
		fmt.Println("No todos found.")
		return
	}

	fmt.Print(formatTaskTable(tasks, time.Now()))

	remaining, completed := ctrl.Counts()
	fmt.Printf("\n%d remaining, %d done\n", remaining, completed)
}

func formatTaskTable(tasks []task.Task, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "DONE", "AGE", "IMAGE", "TASK"}, len(tasks))

	for _, t := range tasks {
		image := "-"
		if t.HasImage() {
			image = "yes"
		}
		row := []string{
			strconv.FormatInt(t.ID, 10),
			ui.Checkbox(t.Completed),
			ui.FormatTimeAgeShort(t.CreatedAt, now),
			image,
			ui.TaskText(ui.TruncateTableCell(t.Text), t.Completed),
		}
		builder.AddRow(row)
	}

	return builder.String()
}
