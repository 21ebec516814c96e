// Package command interprets a tokenized command line against a task list.
package command

import (
	"github.com/charmbracelet/log"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/logging"
	"github.com/twiced-technology-gmbh/taskninja/internal/task"
)

// Saver persists the task list after a mutating operation.
type Saver interface {
	Save(l *board.List) error
}

// Recorder receives one entry per successful mutation.
type Recorder interface {
	Record(action string, position int, detail string) error
}

// Result is the outcome of a successful operation.
type Result struct {
	// Message is the response text: a confirmation, a help page, or the
	// rendered task listing.
	Message string
	// Tasks holds the tasks shown by list and search, in display order.
	Tasks []*task.Task
	// Listing reports whether Message is a rendered task listing.
	Listing bool
}

// handler runs one operation on the arguments that follow its name.
type handler func(in *Interpreter, args []string) (Result, error)

type operation struct {
	name    string
	alias   string
	mutates bool
	run     handler
}

// operations is the dispatch table. Order is the order of the help page.
var operations = []operation{
	{name: "help", alias: "h", run: (*Interpreter).runHelp},
	{name: "add", alias: "a", mutates: true, run: (*Interpreter).runAdd},
	{name: "delete", alias: "d", mutates: true, run: (*Interpreter).runDelete},
	{name: "complete", alias: "c", mutates: true, run: (*Interpreter).runComplete},
	{name: "incomplete", alias: "i", mutates: true, run: (*Interpreter).runIncomplete},
	{name: "list", alias: "l", run: (*Interpreter).runList},
	{name: "search", alias: "s", run: (*Interpreter).runSearch},
	{name: "edit", alias: "e", mutates: true, run: (*Interpreter).runEdit},
}

// operationsByToken indexes operations by name and alias. Filled in init:
// the help handler reads it, so a var initializer would form a cycle.
var operationsByToken map[string]*operation

func init() {
	operationsByToken = make(map[string]*operation, 2*len(operations))
	for i := range operations {
		op := &operations[i]
		operationsByToken[op.name] = op
		operationsByToken[op.alias] = op
	}
}

// lookup resolves an operation name or alias.
func lookup(token string) (*operation, bool) {
	op, ok := operationsByToken[token]
	return op, ok
}

func isHelpToken(token string) bool {
	return token == "help" || token == "-h" || token == "--help"
}

// Interpreter executes one command line against a task list.
type Interpreter struct {
	list     *board.List
	saver    Saver
	renderer board.Renderer
	recorder Recorder
	logger   *log.Logger
}

// Option configures an Interpreter.
type Option func(*Interpreter)

// WithLogger sets the logger for dispatch and save warnings.
func WithLogger(logger *log.Logger) Option {
	return func(in *Interpreter) { in.logger = logger }
}

// WithRecorder sets where successful mutations are recorded.
func WithRecorder(r Recorder) Option {
	return func(in *Interpreter) { in.recorder = r }
}

// New returns an interpreter over list. saver may be nil, which skips
// persistence.
func New(list *board.List, saver Saver, renderer board.Renderer, opts ...Option) *Interpreter {
	in := &Interpreter{
		list:     list,
		saver:    saver,
		renderer: renderer,
		logger:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// List returns the task list the interpreter operates on.
func (in *Interpreter) List() *board.List {
	return in.list
}

// Execute runs the operation named by args[0] with the remaining tokens.
// An empty command line returns the top-level help. Mutating operations
// persist the list whatever their outcome; a failed save is logged and
// never replaces the operation's own result.
func (in *Interpreter) Execute(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{Message: topHelp}, nil
	}

	op, ok := lookup(args[0])
	if !ok {
		return Result{}, clierr.NewInvalidMainOperation(args[0])
	}
	in.logger.Debug("dispatch", "operation", op.name, "args", args[1:])

	var (
		res Result
		err error
	)
	rest := args[1:]
	if len(rest) > 0 && isHelpToken(rest[0]) {
		res = Result{Message: helpTexts[op.name]}
	} else {
		res, err = op.run(in, rest)
	}

	if op.mutates {
		in.save()
	}
	return res, err
}

func (in *Interpreter) save() {
	if in.saver == nil {
		return
	}
	if err := in.saver.Save(in.list); err != nil {
		in.logger.Warn("saving tasks failed", "err", err)
	}
}

// record appends an activity entry. Failures are logged only.
func (in *Interpreter) record(action string, position int, detail string) {
	if in.recorder == nil {
		return
	}
	if err := in.recorder.Record(action, position, detail); err != nil {
		in.logger.Warn("recording activity failed", "err", err)
	}
}

// listing renders tasks, or reports that there are none.
func (in *Interpreter) listing(tasks []*task.Task) Result {
	if len(tasks) == 0 {
		return Result{Message: "No tasks found.", Tasks: []*task.Task{}}
	}
	return Result{
		Message: board.RenderTasks(tasks, in.renderer),
		Tasks:   tasks,
		Listing: true,
	}
}
