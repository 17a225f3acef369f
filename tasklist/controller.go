// Package tasklist implements the controller that owns all client-side
// state for the task list screen.
//
// The controller mediates between a presentation binding (CLI command
// or interactive TUI) and two external services: the Records Service
// (structured task rows) and the Media Service (uploads, file proxy,
// and the remaining mutations). Each operation performs one network
// round trip and then reconciles local state; no operation applies a
// local change before the backend confirms it.
package tasklist

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wasif-mahmood1/Todo-app/media"
	"github.com/wasif-mahmood1/Todo-app/task"
)

// RecordsService is the structured-record surface the controller
// consumes: the ordered list and record deletion.
type RecordsService interface {
	List(ctx context.Context) ([]task.Task, error)
	Delete(ctx context.Context, id int64) error
}

// MediaService is the upload/proxy surface the controller consumes.
type MediaService interface {
	CheckReachability(ctx context.Context) error
	Create(ctx context.Context, text string, file io.Reader, filename string) (*media.CreateResult, error)
	UpdateText(ctx context.Context, id int64, text string) error
	Toggle(ctx context.Context, id int64) (bool, error)
	DeleteFile(ctx context.Context, key string) error
	StatFile(ctx context.Context, key string) error
}

// Options configures a Controller.
type Options struct {
	// BaseURL is the backend base address used for image resolution.
	BaseURL string

	// Records and Media are the two external service clients.
	Records RecordsService
	Media   MediaService

	// Notifier receives user-visible notifications. Defaults to
	// NopNotifier.
	Notifier Notifier

	// Log receives diagnostic output. Defaults to a discarded logger.
	Log logrus.FieldLogger

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Controller owns the task list state and the transient editing state.
// Methods are safe for concurrent use; state mutations are serialized
// the way a browser event loop would serialize completion handlers.
type Controller struct {
	base    string
	records RecordsService
	media   MediaService
	notify  Notifier
	log     logrus.FieldLogger
	now     func() time.Time

	mu         sync.Mutex
	tasks      []task.Task
	input      string
	attachment string
	uploading  bool
	editingID  int64
	draft      string
}

// New creates a controller. Records and Media are required.
func New(opts Options) *Controller {
	notifier := opts.Notifier
	if notifier == nil {
		notifier = NopNotifier{}
	}
	log := opts.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &Controller{
		base:    opts.BaseURL,
		records: opts.Records,
		media:   opts.Media,
		notify:  notifier,
		log:     log,
		now:     now,
	}
}

// Tasks returns a snapshot of the list in canonical order.
func (c *Controller) Tasks() []task.Task {
	c.mu.Lock()
	defer c.mu.Unlock()
	snapshot := make([]task.Task, len(c.tasks))
	copy(snapshot, c.tasks)
	return snapshot
}

// Get returns the task with the given id.
func (c *Controller) Get(id int64) (task.Task, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.findLocked(id)
}

// Counts returns the remaining and completed task totals.
func (c *Controller) Counts() (remaining, completed int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, t := range c.tasks {
		if t.Completed {
			completed++
		} else {
			remaining++
		}
	}
	return remaining, completed
}

// Input returns the pending new-task text.
func (c *Controller) Input() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.input
}

// SetInput replaces the pending new-task text.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.input = text
}

// Attachment returns the pending image file path, if any.
func (c *Controller) Attachment() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.attachment
}

// AttachFile stages an image file to upload with the next Add.
func (c *Controller) AttachFile(path string) {
	c.mu.Lock()
	c.attachment = path
	c.mu.Unlock()
	if path != "" {
		c.notify.Info("image selected")
	}
}

// ClearAttachment drops the pending image file.
func (c *Controller) ClearAttachment() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.attachment = ""
}

// Uploading reports whether an Add upload is in flight.
func (c *Controller) Uploading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploading
}

// Editing returns the id and draft text of the active edit session.
func (c *Controller) Editing() (id int64, draft string, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID, c.draft, c.editingID != 0
}

// SetDraft updates the in-progress edit text.
func (c *Controller) SetDraft(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.editingID != 0 {
		c.draft = text
	}
}

// BaseURL returns the backend base address.
func (c *Controller) BaseURL() string {
	return c.base
}

func (c *Controller) findLocked(id int64) (task.Task, bool) {
	for _, t := range c.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

func (c *Controller) setUploading(value bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.uploading = value
}
