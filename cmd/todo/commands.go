package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/wasif-mahmood1/Todo-app/internal/config"
	"github.com/wasif-mahmood1/Todo-app/internal/tasktui"
	"github.com/wasif-mahmood1/Todo-app/internal/ui"
	"github.com/wasif-mahmood1/Todo-app/media"
	"github.com/wasif-mahmood1/Todo-app/records"
	"github.com/wasif-mahmood1/Todo-app/task"
	"github.com/wasif-mahmood1/Todo-app/tasklist"
)

// todo list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

var listJSON bool

// todo add
var addCmd = &cobra.Command{
	Use:   "add <text>...",
	Short: "Add a new todo",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

var addImage string

// todo toggle
var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Flip a todo between pending and completed",
	Aliases: []string{"done"},
	Args:    cobra.ExactArgs(1),
	RunE:    runToggle,
}

// todo edit
var editCmd = &cobra.Command{
	Use:   "edit <id> <text>...",
	Short: "Replace a todo's text",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEdit,
}

// todo rm
var rmCmd = &cobra.Command{
	Use:     "rm <id>",
	Short:   "Delete a todo and its stored image",
	Aliases: []string{"delete"},
	Args:    cobra.ExactArgs(1),
	RunE:    runRemove,
}

// todo show
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show detailed information about a todo",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

// todo check-image
var checkImageCmd = &cobra.Command{
	Use:   "check-image <id>",
	Short: "Diagnose why a todo's image does not load",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckImage,
}

// todo ui
var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive task list",
	Args:  cobra.NoArgs,
	RunE:  runUI,
}

func init() {
	rootCmd.AddCommand(listCmd, addCmd, toggleCmd, editCmd, rmCmd, showCmd, checkImageCmd, uiCmd)

	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")
	addCmd.Flags().StringVarP(&addImage, "image", "i", "", "Path to an image file to upload with the todo")
}

// newController builds a controller from configuration, wiring the
// given notifier into it.
func newController(notifier tasklist.Notifier) (*tasklist.Controller, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if rootVerbose || os.Getenv("TODO_DEBUG") != "" {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}

	return tasklist.New(tasklist.Options{
		BaseURL:  cfg.Backend.BaseURL,
		Records:  records.NewClient(cfg.RecordsURL(), cfg.Records.APIKey),
		Media:    media.NewClient(cfg.Backend.BaseURL),
		Notifier: notifier,
		Log:      log,
	}), nil
}

func newConsoleController() (*tasklist.Controller, error) {
	return newController(ui.NewConsoleNotifier())
}

func parseTodoID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return id, nil
}

func runList(cmd *cobra.Command, args []string) error {
	ctrl, err := newConsoleController()
	if err != nil {
		return err
	}

	if err := ctrl.Initialize(cmd.Context()); err != nil {
		return err
	}

	if listJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(ctrl.Tasks())
	}

	printTaskTable(ctrl)
	return nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctrl, err := newConsoleController()
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	return ctrl.AddTask(cmd.Context(), text, addImage)
}

func runToggle(cmd *cobra.Command, args []string) error {
	id, err := parseTodoID(args[0])
	if err != nil {
		return err
	}

	ctrl, err := newConsoleController()
	if err != nil {
		return err
	}
	return ctrl.Toggle(cmd.Context(), id)
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	if !ctrl.BeginEdit(id) {
		return fmt.Errorf("todo %d: %w", id, task.ErrTaskNotFound)
	}
	ctrl.SetDraft(strings.Join(args[1:], " "))
	return ctrl.SaveEdit(cmd.Context(), id)
}

func runRemove(cmd *cobra.Command, args []string) error {
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

	if _, ok := ctrl.Get(id); !ok {
		return fmt.Errorf("todo %d: %w", id, task.ErrTaskNotFound)
	}
	return ctrl.Remove(cmd.Context(), id)
}

func runCheckImage(cmd *cobra.Command, args []string) error {
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
	if !item.HasImage() {
		fmt.Printf("Todo %d has no image.\n", id)
		return nil
	}

	if err := ctrl.HandleImageError(cmd.Context(), id); err != nil {
		return err
	}
	if item.ImagePath != "" {
		item, _ = ctrl.Get(id)
		fmt.Printf("Image is reachable at %s\n", item.ImageSrc)
	}
	return nil
}

func runUI(cmd *cobra.Command, args []string) error {
	status := tasktui.NewStatusNotifier()
	ctrl, err := newController(status)
	if err != nil {
		return err
	}
	return tasktui.Run(cmd.Context(), ctrl, status)
}
