package command

const topHelp = `TaskNinja: A command line task manager.
Usage: taskninja [global flags] [operation] [arguments]

Operations:
    help, h         Display this help message or get more detailed help on an operation.
                     - e.g. 'taskninja help' or 'taskninja help add'
    add, a          Add a new task.
    delete, d       Delete a task.
    complete, c     Mark a task as complete.
    incomplete, i   Mark a task as incomplete.
    list, l         List all tasks.
    search, s       Search for tasks.
    edit, e         Edit a task.

Global flags (before the operation):
    --config-dir    Directory holding config.yml.
    --json          Print responses as JSON.
    --compact       Print task listings one line per task.
    --no-color      Disable colored output.
    --verbose       Log debug messages to stderr.
    --watch         Open a live view of the task list.`

// helpTexts holds each operation's detailed help, keyed by operation name.
var helpTexts = map[string]string{
	"help": topHelp,

	"add": `taskninja add: Add a new task.
Usage: taskninja add [title] [options]

Arguments for 'add':
    -h, --help              Display detailed help about the add operation.
    -t, --title             Title of the task. (Required)
                             - Can be given without the flag as the first argument.
    -d, --description       Description of the task. (Optional)
    due, -D, --date         Due date of the task. (YYYY-MM-DD or YYYY-Month_name-DD) (Optional)
    at, -T, --time          Due time of the task. (HH:MM) (Optional)
    flag, -f, --flag        Mark the task as important. (Optional)
    -p, --priority          Position to insert the task at. (1 or higher) (Optional)

Examples:
    taskninja add 'Get into Cornell.' -D 2022-09-12 -T 12:06 -f
    taskninja add -t 'Ask out for Last Hurrah.' due 2022-September-12
    taskninja add -t 'Blah blah blah.' -d 'More nonsense' flag -p 2`,

	"delete": `taskninja delete: Delete a task.
Usage: taskninja delete [position | all]

Arguments for 'delete':
    -h, --help              Display detailed help about the delete operation.
    position                Position of the task to delete, as shown by 'list'.
    all, -a, --all          Delete every task.

Examples:
    taskninja delete 2
    taskninja delete all`,

	"complete": `taskninja complete: Mark a task as complete.
Usage: taskninja complete [position | all]

Arguments for 'complete':
    -h, --help              Display detailed help about the complete operation.
    position                Position of the task, as shown by 'list'.
    all, -a, --all          Mark every task complete.

Examples:
    taskninja complete 1
    taskninja complete all`,

	"incomplete": `taskninja incomplete: Mark a task as incomplete.
Usage: taskninja incomplete [position | all]

Arguments for 'incomplete':
    -h, --help              Display detailed help about the incomplete operation.
    position                Position of the task, as shown by 'list'.
    all, -a, --all          Mark every task incomplete.

Examples:
    taskninja incomplete 1
    taskninja incomplete all`,

	"list": `taskninja list: List tasks.
Usage: taskninja list [filters]

Filters narrow each other, so 'list -c -f' shows tasks that are both
complete and flagged.

Arguments for 'list':
    -h, --help                      Display detailed help about the list operation.
    all, -a, --all                  List every task, ignoring other filters.
    complete, -c, --complete        Only complete tasks.
    incomplete, -i, --incomplete    Only incomplete tasks.
    flagged, -f, --flagged          Only flagged tasks.
    unflagged, -u, --unflagged      Only unflagged tasks.
    today, -t, --today              Only tasks due today.

Examples:
    taskninja list
    taskninja list incomplete flagged`,

	"search": `taskninja search: Search for tasks.
Usage: taskninja search [options] [query]

Matches the query against titles and descriptions, ignoring case.

Arguments for 'search':
    -h, --help              Display detailed help about the search operation.
    -e, --exact             Match case exactly.
    --                      Treat every later word as query text.

Examples:
    taskninja search cornell
    taskninja search -e 'Last Hurrah'
    taskninja search -- -1`,

	"edit": `taskninja edit: Edit a task.
Usage: taskninja edit [position] [options]

Arguments for 'edit':
    -h, --help              Display detailed help about the edit operation.
    -t, --title             New title.
    -d, --description       New description. An empty value removes it.
    due, -D, --date         New due date. (YYYY-MM-DD or YYYY-Month_name-DD)
    at, -T, --time          New due time. (HH:MM)
    flag, -f, --flag        Mark the task as important.
    -u, --unflag            Remove the important mark.
    -p, --priority          Move the task to this position.

Examples:
    taskninja edit 2 -t 'Get into Cornell.' -f
    taskninja edit 3 -p 1`,
}
