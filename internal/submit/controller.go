package submit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/interpretive-systems/labsend/internal/form"
	"github.com/interpretive-systems/labsend/internal/selection"
)

// maxResponseBody caps how much of the endpoint's reply is read.
const maxResponseBody = 1 << 20

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Controller sequences submit attempts: guard, encode, send, resolve. At most
// one attempt is in flight at a time.
type Controller struct {
	endpoint string
	client   Doer
	open     Opener
	newID    func() string
	log      *logrus.Entry

	mu      sync.Mutex
	busy    bool
	outcome Outcome
}

// Option configures a Controller.
type Option func(*Controller)

// WithClient sets the HTTP client used to send requests.
func WithClient(d Doer) Option {
	return func(c *Controller) { c.client = d }
}

// WithOpener replaces os.Open for reading selected files.
func WithOpener(o Opener) Option {
	return func(c *Controller) { c.open = o }
}

// WithLogger sets the log entry; the controller adds its own fields.
func WithLogger(l *logrus.Entry) Option {
	return func(c *Controller) { c.log = l }
}

// NewController returns a controller posting to endpoint, the full
// send-email URL.
func NewController(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint: endpoint,
		client:   http.DefaultClient,
		open:     osOpen,
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		c.log = logrus.NewEntry(l)
	}
	c.log = c.log.WithField("component", "submit")
	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Controller) Endpoint() string { return c.endpoint }

// Busy reports whether an attempt is in flight.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Outcome returns the most recent outcome.
func (c *Controller) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// Begin checks the in-flight flag and the required inputs. On success it
// marks the controller busy, clears the previous outcome and returns an
// Attempt that must be Run. It returns ErrBusy without touching state while
// another attempt is in flight, and a *ValidationError (recorded as a
// Failure outcome, busy untouched) when input is missing.
func (c *Controller) Begin(fields form.Fields, files []selection.File) (*Attempt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.busy {
		return nil, ErrBusy
	}
	if verr := validate(fields, files); verr != nil {
		c.outcome = failed(MsgAllFieldsRequired, verr)
		c.log.WithField("missing", verr.Missing).Info("submit rejected")
		return nil, verr
	}

	c.busy = true
	c.outcome = Outcome{}
	return &Attempt{
		c:      c,
		id:     c.newID(),
		fields: fields,
		files:  append([]selection.File(nil), files...),
	}, nil
}

// Submit runs a full attempt synchronously and returns its outcome. The
// error is non-nil only when Begin refused the attempt (ErrBusy or a
// *ValidationError); transport failures are reported in the Outcome.
func (c *Controller) Submit(ctx context.Context, fields form.Fields, files []selection.File) (Outcome, error) {
	a, err := c.Begin(fields, files)
	if err != nil {
		return c.Outcome(), err
	}
	return a.Run(ctx), nil
}

func validate(fields form.Fields, files []selection.File) *ValidationError {
	var missing []string
	for _, k := range fields.Missing() {
		missing = append(missing, string(k))
	}
	if len(files) == 0 {
		missing = append(missing, FieldFiles)
	}
	if len(missing) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing}
}

func (c *Controller) finish(o Outcome) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.outcome = o
}

func (c *Controller) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.busy = false
}

// Attempt is one admitted submit. Run may be called from any goroutine.
type Attempt struct {
	c      *Controller
	id     string
	fields form.Fields
	files  []selection.File

	once   sync.Once
	result Outcome
}

// ID is the request id sent as X-Request-ID.
func (a *Attempt) ID() string { return a.id }

// Run encodes and sends the request, records the outcome and clears busy.
// Only the first call does any work; later calls return the same outcome.
func (a *Attempt) Run(ctx context.Context) Outcome {
	a.once.Do(func() {
		defer a.c.release()
		a.result = a.send(ctx)
		a.c.finish(a.result)
	})
	return a.result
}

func (a *Attempt) send(ctx context.Context) Outcome {
	var total int64
	for _, f := range a.files {
		total += f.Size
	}
	log := a.c.log.WithFields(logrus.Fields{
		"request_id": a.id,
		"files":      len(a.files),
		"bytes":      total,
	})
	log.Info("submitting")

	msg, err := a.post(ctx)
	if err != nil {
		log.WithError(err).Error("submit failed")
		return failed(MsgSendFailed, err)
	}
	log.WithField("message", msg).Info("submit succeeded")
	return succeeded(msg)
}

func (a *Attempt) post(ctx context.Context) (string, error) {
	body, contentType := encodePayload(a.fields, a.files, a.c.open)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.c.endpoint, body)
	// Closing the reader stops the encoder goroutine and releases its file
	// whatever the doer did with the body.
	defer body.Close()
	if err != nil {
		return "", &TransportError{Op: "build request", Err: err}
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", a.id)

	resp, err := a.c.client.Do(req)
	if err != nil {
		return "", &TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", &TransportError{Op: "read response", Status: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &TransportError{
			Op:     "post",
			Status: resp.StatusCode,
			Err:    fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(raw))),
		}
	}
	msg, err := parseMessage(raw)
	if err != nil {
		return "", &TransportError{Op: "decode response", Status: resp.StatusCode, Err: err}
	}
	return msg, nil
}

// parseMessage pulls the "message" string out of a success body. An empty
// body or a missing/non-string message falls back to MsgSentFallback; a body
// that is not a JSON object is an error.
func parseMessage(raw []byte) (string, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return MsgSentFallback, nil
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return "", err
	}
	if s, ok := body["message"].(string); ok && strings.TrimSpace(s) != "" {
		return s, nil
	}
	return MsgSentFallback, nil
}
