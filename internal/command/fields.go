package command

import (
	"strconv"
	"strings"

	"github.com/twiced-technology-gmbh/taskninja/internal/clierr"
	"github.com/twiced-technology-gmbh/taskninja/internal/date"
)

// expect is the argument scanner state: either a flag is expected next, or
// the value of the named field.
type expect int

const (
	expectFlag expect = iota
	expectTitle
	expectDescription
	expectDate
	expectTime
	expectPriority
)

// argument names the field a value flag feeds, as shown in errors.
func (e expect) argument() string {
	switch e {
	case expectTitle:
		return "title"
	case expectDescription:
		return "description"
	case expectDate:
		return "date"
	case expectTime:
		return "time"
	case expectPriority:
		return "priority"
	default:
		return "flag"
	}
}

var valueFlags = map[string]expect{
	"-t": expectTitle, "--title": expectTitle,
	"-d": expectDescription, "--description": expectDescription,
	"due": expectDate, "-D": expectDate, "--date": expectDate,
	"at": expectTime, "-T": expectTime, "--time": expectTime,
	"-p": expectPriority, "--priority": expectPriority,
}

func isFlagToken(token string) bool {
	return token == "flag" || token == "-f" || token == "--flag"
}

func isUnflagToken(token string) bool {
	return token == "-u" || token == "--unflag"
}

// fields collects the task attributes given on the command line. Nil means
// not given.
type fields struct {
	title       *string
	description *string
	due         *date.Fallible[date.Date]
	at          *date.Fallible[date.Time]
	priority    *int
	flagged     *bool
}

// scanOptions selects the grammar differences between add and edit.
type scanOptions struct {
	bareTitle bool // the first token may be a bare title
	unflag    bool // -u/--unflag clears the flag
}

// scanFields walks args as flag/value pairs. Date and time values are kept
// even when invalid; an invalid priority or any unknown token fails the scan.
func scanFields(op string, args []string, opts scanOptions) (fields, error) {
	var f fields
	state := expectFlag

	for i, tok := range args {
		switch state {
		case expectFlag:
			if next, ok := valueFlags[tok]; ok {
				state = next
				continue
			}
			switch {
			case isFlagToken(tok):
				f.flagged = boolPtr(true)
			case opts.unflag && isUnflagToken(tok):
				f.flagged = boolPtr(false)
			case opts.bareTitle && i == 0:
				f.title = &tok
			default:
				return f, clierr.NewInvalidArgument(op, tok)
			}
			continue
		case expectTitle:
			f.title = &tok
		case expectDescription:
			f.description = &tok
		case expectDate:
			due := date.ParseDue(tok)
			f.due = &due
		case expectTime:
			at := date.ParseDueTime(tok)
			f.at = &at
		case expectPriority:
			n, err := strconv.Atoi(tok)
			if err != nil || n < 0 {
				return f, clierr.NewInvalidArgument(op, tok)
			}
			f.priority = &n
		}
		state = expectFlag
	}

	switch state {
	case expectFlag:
		return f, nil
	case expectTitle:
		return f, clierr.NewMissingRequiredArgument(op, "title")
	default:
		return f, clierr.NewInvalidArgument(op, state.argument())
	}
}

// hasTitle reports whether a non-blank title was given.
func (f fields) hasTitle() bool {
	return f.title != nil && strings.TrimSpace(*f.title) != ""
}

func boolPtr(b bool) *bool { return &b }
