package tasklist

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/wasif-mahmood1/Todo-app/internal/httpapi"
	"github.com/wasif-mahmood1/Todo-app/media"
	"github.com/wasif-mahmood1/Todo-app/task"
)

// Initialize probes the Media Service and loads the task list. A
// failed probe only warns; the controller stays interactive and later
// operations fail individually if the backend really is down.
func (c *Controller) Initialize(ctx context.Context) error {
	c.log.WithField("api_base", c.base).Debug("initializing")
	if err := c.media.CheckReachability(ctx); err != nil {
		c.log.WithError(err).Warn("backend unreachable")
		c.notify.Warn("cannot reach backend at %s; make sure the server is running", c.base)
	}
	return c.Reload(ctx)
}

// Reload replaces the in-memory list with the Records Service rows,
// resolving each task's image source. On failure the local list is
// left untouched.
func (c *Controller) Reload(ctx context.Context) error {
	tasks, err := c.records.List(ctx)
	if err != nil {
		c.notify.Error("failed to load todos: %v", err)
		return notified(err)
	}
	for i := range tasks {
		tasks[i].ImageSrc = task.ResolveImageSrc(c.base, tasks[i])
	}

	c.mu.Lock()
	c.tasks = tasks
	c.mu.Unlock()

	c.log.WithField("count", len(tasks)).Debug("loaded todos")
	return nil
}

// Add creates a task from the pending input and attachment. Nothing is
// inserted locally until the backend confirms the create; on success
// the input and attachment are cleared.
func (c *Controller) Add(ctx context.Context) error {
	c.mu.Lock()
	text := c.input
	attachment := c.attachment
	c.mu.Unlock()

	if err := task.ValidateText(text); err != nil {
		c.notify.Error("please enter a task")
		return notified(err)
	}

	var file io.Reader
	var filename string
	if attachment != "" {
		opened, err := os.Open(attachment)
		if err != nil {
			c.notify.Error("cannot read attachment: %v", err)
			return notified(err)
		}
		defer opened.Close()
		file = opened
		filename = filepath.Base(attachment)
	}

	c.setUploading(true)
	defer c.setUploading(false)

	c.log.WithFields(logrus.Fields{"task": text, "has_file": file != nil}).Debug("uploading todo")
	result, err := c.media.Create(ctx, text, file, filename)
	if err != nil {
		c.notify.Error("upload failed: %v", err)
		return notified(err)
	}

	created := c.taskFromCreate(text, result)

	c.mu.Lock()
	c.tasks = append(c.tasks, created)
	c.input = ""
	c.attachment = ""
	c.mu.Unlock()

	c.notify.Info("todo added")
	return nil
}

// AddTask is a convenience wrapper for one-shot bindings: it stages
// the text and attachment, then runs Add.
func (c *Controller) AddTask(ctx context.Context, text, attachment string) error {
	c.mu.Lock()
	c.input = text
	c.attachment = attachment
	c.mu.Unlock()
	return c.Add(ctx)
}

// taskFromCreate builds the list entry for a confirmed create. When
// the backend echoes the stored row, that row wins; otherwise a local
// task is synthesized around the returned storage reference.
func (c *Controller) taskFromCreate(text string, result *media.CreateResult) task.Task {
	if result.Todo != nil {
		created := *result.Todo
		switch {
		case result.Path != "":
			created.ImageSrc = task.ProxyURL(c.base, result.Path)
		case result.URL != "":
			created.ImageSrc = result.URL
		default:
			created.ImageSrc = task.ResolveImageSrc(c.base, created)
		}
		return created
	}

	now := c.now()
	created := task.Task{
		ID:        task.FallbackID(now),
		Text:      text,
		ImagePath: result.Path,
		ImageURL:  result.URL,
		CreatedAt: now,
	}
	switch {
	case result.Path != "":
		created.ImageSrc = task.ProxyURL(c.base, result.Path)
	case result.URL != "":
		created.ImageSrc = result.URL
	}
	return created
}

// Remove deletes a task: the backing record first, then best-effort
// cleanup of the stored image. Record-deletion failure leaves the list
// unchanged and never touches the file; cleanup failure only warns and
// never resurrects the task. Removing an unknown id is a no-op.
func (c *Controller) Remove(ctx context.Context, id int64) error {
	c.mu.Lock()
	item, ok := c.findLocked(id)
	c.mu.Unlock()
	if !ok {
		return nil
	}

	if err := c.records.Delete(ctx, id); err != nil {
		c.notify.Error("failed to delete: %v", err)
		return notified(err)
	}

	if item.ImagePath != "" && !task.HasScheme(item.ImagePath) {
		if err := c.media.DeleteFile(ctx, item.ImagePath); err != nil {
			c.log.WithError(err).WithField("path", item.ImagePath).Warn("stored image cleanup failed")
			c.notify.Warn("todo removed but failed to delete stored image")
		} else {
			c.log.WithField("path", item.ImagePath).Debug("removed stored image")
		}
	}

	c.mu.Lock()
	remaining := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	c.tasks = remaining
	if c.editingID == id {
		c.editingID = 0
		c.draft = ""
	}
	c.mu.Unlock()

	c.notify.Info("todo deleted")
	return nil
}

// BeginEdit opens an edit session for id, seeding the draft with the
// task's current text. At most one task is editable; any prior unsaved
// draft is discarded without confirmation.
func (c *Controller) BeginEdit(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.findLocked(id)
	if !ok {
		return false
	}
	c.editingID = id
	c.draft = item.Text
	return true
}

// CancelEdit abandons the active edit session without persisting.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editingID = 0
	c.draft = ""
}

// SaveEdit persists the draft text for the task being edited. On
// validation or network failure the edit session stays open.
func (c *Controller) SaveEdit(ctx context.Context, id int64) error {
	c.mu.Lock()
	draft := c.draft
	active := c.editingID == id
	c.mu.Unlock()
	if !active {
		return nil
	}

	if err := task.ValidateText(draft); err != nil {
		c.notify.Error("task cannot be empty")
		return notified(err)
	}

	if err := c.media.UpdateText(ctx, id, draft); err != nil {
		c.notify.Error("failed to edit: %v", err)
		return notified(err)
	}

	c.mu.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Text = draft
		}
	}
	c.editingID = 0
	c.draft = ""
	c.mu.Unlock()

	c.notify.Info("todo updated")
	return nil
}

// Toggle flips a task's completion through the backend and adopts the
// server-returned state as ground truth. On failure the local flag is
// unchanged.
func (c *Controller) Toggle(ctx context.Context, id int64) error {
	completed, err := c.media.Toggle(ctx, id)
	if err != nil {
		c.notify.Error("failed to update: %v", err)
		return notified(err)
	}

	c.mu.Lock()
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks[i].Completed = completed
		}
	}
	c.mu.Unlock()

	if completed {
		c.notify.Info("marked as completed")
	} else {
		c.notify.Info("marked as pending")
	}
	return nil
}

// HandleImageError is the rendering layer's hook for an image source
// that failed to load. For proxied storage keys a HEAD probe
// distinguishes a dead backend from a transient failure worth a retry
// render; for direct URLs there is nothing to retry, only a hint.
func (c *Controller) HandleImageError(ctx context.Context, id int64) error {
	c.mu.Lock()
	item, ok := c.findLocked(id)
	c.mu.Unlock()
	if !ok {
		return nil
	}

	c.log.WithFields(logrus.Fields{
		"id":         id,
		"image_path": item.ImagePath,
		"image_url":  item.ImageURL,
		"image_src":  item.ImageSrc,
	}).Debug("image load failed")

	switch {
	case item.ImagePath != "":
		if err := c.media.StatFile(ctx, item.ImagePath); err != nil {
			if httpapi.IsService(err) {
				c.notify.Error("backend error: %v; is the server running on %s?", err, c.base)
			} else {
				c.notify.Error("cannot reach backend at %s; is the server running?", c.base)
			}
			return notified(err)
		}
		proxy := task.ProxyURL(c.base, item.ImagePath)
		c.mu.Lock()
		for i := range c.tasks {
			if c.tasks[i].ID == id {
				c.tasks[i].ImageSrc = proxy
			}
		}
		c.mu.Unlock()
		return nil
	case item.ImageURL != "":
		c.notify.Error("image load failed; check the storage bucket CORS settings")
		return nil
	default:
		return nil
	}
}
