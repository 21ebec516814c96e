package command

import (
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskninja/internal/board"
	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
)

func isAllToken(token string) bool {
	return token == "all" || token == "-a" || token == "--all"
}

func (in *Interpreter) runAdd(args []string) (Result, error) {
	f, err := scanFields("add", args, scanOptions{bareTitle: true})
	if err != nil {
		return Result{}, err
	}
	if !f.hasTitle() {
		return Result{}, clierr.NewMissingRequiredArgument("add", "title")
	}

	flagged := f.flagged != nil && *f.flagged
	t := in.list.NewTask(*f.title, f.description, f.due, f.at, f.priority, false, flagged)
	in.record("add", t.Position, t.Title)
	return Result{Message: "'" + t.Title + "' added."}, nil
}

// target resolves the position argument shared by delete, complete and
// incomplete. It returns all=true for the all token, otherwise a 0-based
// index that may be out of range.
func target(op string, args []string) (index int, all bool, err error) {
	if len(args) == 0 {
		return 0, false, clierr.NewMissingRequiredArgument(op, "position")
	}
	if len(args) > 1 {
		return 0, false, clierr.NewInvalidArgument(op, args[1])
	}
	if isAllToken(args[0]) {
		return 0, true, nil
	}
	n, convErr := strconv.Atoi(args[0])
	if convErr != nil {
		return 0, false, clierr.NewInvalidArgument(op, args[0])
	}
	return n - 1, false, nil
}

func (in *Interpreter) runDelete(args []string) (Result, error) {
	index, all, err := target("delete", args)
	if err != nil {
		return Result{}, err
	}
	if all {
		msg := in.list.RemoveAll()
		in.record("delete", 0, "all")
		return Result{Message: msg}, nil
	}

	t, err := in.list.Get(index)
	if err != nil {
		return Result{}, clierr.NewTaskNotFound(args[0])
	}
	position := t.Position
	msg, err := in.list.RemoveTask(index)
	if err != nil {
		return Result{}, err
	}
	in.record("delete", position, t.Title)
	return Result{Message: msg}, nil
}

func (in *Interpreter) runComplete(args []string) (Result, error) {
	return in.mark("complete", args, true)
}

func (in *Interpreter) runIncomplete(args []string) (Result, error) {
	return in.mark("incomplete", args, false)
}

func (in *Interpreter) mark(op string, args []string, complete bool) (Result, error) {
	index, all, err := target(op, args)
	if err != nil {
		return Result{}, err
	}
	if all {
		msg := in.list.MarkAll(complete)
		in.record(op, 0, "all")
		return Result{Message: msg}, nil
	}

	markFn := in.list.MarkIncomplete
	if complete {
		markFn = in.list.MarkComplete
	}
	msg, err := markFn(index)
	if err != nil {
		return Result{}, clierr.NewTaskNotFound(args[0])
	}
	in.record(op, index+1, in.list.Tasks()[index].Title)
	return Result{Message: msg}, nil
}

func (in *Interpreter) runList(args []string) (Result, error) {
	var filters []board.FilterName
	for _, tok := range args {
		if isAllToken(tok) {
			return in.listing(in.list.Tasks()), nil
		}
		f, ok := board.ParseFilter(tok)
		if !ok {
			return Result{}, clierr.NewInvalidArgument("list", tok)
		}
		filters = append(filters, f)
	}
	return in.listing(in.list.Filter(filters...)), nil
}

func (in *Interpreter) runSearch(args []string) (Result, error) {
	exact := false
	var words []string
scan:
	for i, tok := range args {
		switch {
		case tok == "--":
			words = append(words, args[i+1:]...)
			break scan
		case tok == "-e" || tok == "--exact":
			exact = true
		case strings.HasPrefix(tok, "-") && len(tok) > 1:
			return Result{}, clierr.NewInvalidArgument("search", tok)
		default:
			words = append(words, tok)
		}
	}

	query := strings.Join(words, " ")
	if strings.TrimSpace(query) == "" {
		return Result{}, clierr.NewMissingRequiredArgument("search", "query")
	}
	return in.listing(in.list.Search(query, exact)), nil
}

func (in *Interpreter) runEdit(args []string) (Result, error) {
	if len(args) == 0 {
		return Result{}, clierr.NewMissingRequiredArgument("edit", "position")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return Result{}, clierr.NewInvalidArgument("edit", args[0])
	}

	f, err := scanFields("edit", args[1:], scanOptions{unflag: true})
	if err != nil {
		return Result{}, err
	}
	if f.title != nil && !f.hasTitle() {
		return Result{}, clierr.NewInvalidArgument("edit", "title")
	}

	patch := board.Patch{
		Title:       f.title,
		Description: f.description,
		DueDate:     f.due,
		DueTime:     f.at,
		Flagged:     f.flagged,
		Position:    f.priority,
	}
	if patch.IsEmpty() {
		return Result{}, clierr.NewMissingRequiredArgument("edit", "field")
	}

	t, err := in.list.Get(n - 1)
	if err != nil {
		return Result{}, clierr.NewTaskNotFound(args[0])
	}
	msg, err := in.list.EditTask(n-1, patch)
	if err != nil {
		return Result{}, err
	}
	in.record("edit", t.Position, t.Title)
	return Result{Message: msg}, nil
}

func (in *Interpreter) runHelp(args []string) (Result, error) {
	switch len(args) {
	case 0:
		return Result{Message: topHelp}, nil
	case 1:
		op, ok := lookup(args[0])
		if !ok {
			return Result{}, clierr.NewInvalidHelpOperation(args[0])
		}
		return Result{Message: helpTexts[op.name]}, nil
	default:
		return Result{}, clierr.NewInvalidArgument("help", args[1])
	}
}
