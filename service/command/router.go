package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/ownfm/extension"
	"github.com/viant/ownfm/policy"
	"github.com/viant/ownfm/service/action/system/storage"
	"github.com/viant/ownfm/service/session"
	"github.com/viant/ownfm/service/workspace"
	"github.com/viant/ownfm/tracing"
)

// Farewell is printed by quit.
const Farewell = "Exiting from program."

// Router maps the first token of a line to a command. Session commands are
// handled in place; file system commands run through the storage service
// registered in the actions registry.
type Router struct {
	session       *session.Session
	persister     session.Persister
	actions       *extension.Actions
	policy        *policy.Policy
	reportUnknown bool
	commands      map[string]*Command
	order         []*Command
}

// Commands returns the command table in help order.
func (r *Router) Commands() []*Command {
	return r.order
}

// Lookup returns a command by name
func (r *Router) Lookup(name string) *Command {
	return r.commands[name]
}

// Dispatch parses and runs one command line. Blank lines and, unless
// configured otherwise, unknown commands yield an empty result.
func (r *Router) Dispatch(ctx context.Context, line string) (result *Result, err error) {
	tokens, err := Parse(line)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return &Result{}, nil
	}
	name, args := tokens[0], tokens[1:]
	cmd := r.Lookup(name)
	if cmd == nil {
		if r.reportUnknown {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
		}
		return &Result{}, nil
	}
	if !cmd.Detached && r.policy != nil && !r.policy.IsAllowed(name) {
		return nil, fmt.Errorf("%w: %s", ErrCommandBlocked, name)
	}
	if !cmd.Detached && r.session.State() != session.Ready {
		return nil, ErrNoWorkDir
	}
	for i, arg := range cmd.Args {
		if arg.Optional {
			continue
		}
		if i >= len(args) || args[i] == "" {
			return nil, workspace.NewMissingArgumentError(arg.Name)
		}
	}

	ctx, span := tracing.StartSpan(ctx, "command."+name, "INTERNAL")
	span.WithAttributes(map[string]string{
		"command": name,
		"session": r.session.ID,
		"root":    r.session.Root(),
		"cursor":  r.session.Cursor(),
	})
	defer func() { tracing.EndSpan(span, err) }()
	return cmd.run(ctx, args)
}

func (r *Router) register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	r.order = append(r.order, cmd)
}

func (r *Router) execute(ctx context.Context, method string, input, output interface{}) error {
	return r.actions.Execute(ctx, storage.Name, method, input, output)
}

func (r *Router) help(_ context.Context, _ []string) (*Result, error) {
	result := &Result{}
	for _, cmd := range r.order {
		result.Lines = append(result.Lines, fmt.Sprintf("    %s - %s", cmd.Usage(), cmd.Description))
	}
	return result, nil
}

func (r *Router) quit(_ context.Context, _ []string) (*Result, error) {
	return &Result{Lines: []string{Farewell}, Quit: true}, nil
}

func (r *Router) showContent(ctx context.Context, args []string) (*Result, error) {
	output := &storage.ListOutput{}
	if err := r.execute(ctx, "list", &storage.ListInput{Name: arg(args, 0)}, output); err != nil {
		return nil, err
	}
	return lines(strings.Join(output.Names(), " ")), nil
}

func (r *Router) createDir(ctx context.Context, args []string) (*Result, error) {
	output := &storage.CreateDirOutput{}
	if err := r.execute(ctx, "createDir", &storage.CreateDirInput{Name: args[0]}, output); err != nil {
		return nil, err
	}
	return lines(fmt.Sprintf("Dir %s was created.", output.Path)), nil
}

func (r *Router) deleteDir(ctx context.Context, args []string) (*Result, error) {
	output := &storage.DeleteDirOutput{}
	if err := r.execute(ctx, "deleteDir", &storage.DeleteDirInput{Name: args[0]}, output); err != nil {
		return nil, err
	}
	if !output.Deleted {
		return lines(fmt.Sprintf("Dir %s was kept.", output.Path)), nil
	}
	return lines(fmt.Sprintf("Dir %s was deleted.", output.Path)), nil
}

func (r *Router) changeCurDir(ctx context.Context, args []string) (*Result, error) {
	location := workspace.Resolve(r.session.Cursor(), args[0])
	if err := r.session.SetCursor(ctx, location); err != nil {
		return nil, err
	}
	return lines(fmt.Sprintf("Current dir was changed to %s.", r.session.Cursor())), nil
}

func (r *Router) showCurDir(_ context.Context, _ []string) (*Result, error) {
	return lines(r.session.Cursor()), nil
}

func (r *Router) changeWorkDir(ctx context.Context, args []string) (*Result, error) {
	prevRoot, prevCursor := r.session.Root(), r.session.Cursor()
	location := workspace.Resolve(prevCursor, args[0])
	if err := r.session.SetRoot(ctx, location); err != nil {
		return nil, err
	}
	if r.persister != nil {
		if err := r.persister.SaveRoot(ctx, r.session.Root()); err != nil {
			r.restore(ctx, prevRoot, prevCursor)
			return nil, fmt.Errorf("failed to persist work dir: %w", err)
		}
	}
	if err := r.session.SetCursor(ctx, r.session.Root()); err != nil {
		return nil, err
	}
	return lines(
		fmt.Sprintf("Work dir was changed to %s.", r.session.Root()),
		fmt.Sprintf("Current dir was changed to %s.", r.session.Cursor()),
	), nil
}

func (r *Router) restore(ctx context.Context, root, cursor string) {
	if root == "" {
		return
	}
	if err := r.session.SetRoot(ctx, root); err == nil {
		_ = r.session.SetCursor(ctx, cursor)
	}
}

func (r *Router) showWorkDir(_ context.Context, _ []string) (*Result, error) {
	return lines(r.session.Root()), nil
}

func (r *Router) createEmptyFile(ctx context.Context, args []string) (*Result, error) {
	output := &storage.TouchOutput{}
	if err := r.execute(ctx, "touch", &storage.TouchInput{Name: args[0]}, output); err != nil {
		return nil, err
	}
	if !output.Created {
		return lines(fmt.Sprintf("File %s was touched.", output.Path)), nil
	}
	return lines(fmt.Sprintf("File %s was created.", output.Path)), nil
}

func (r *Router) writeToFile(ctx context.Context, args []string) (*Result, error) {
	output := &storage.WriteOutput{}
	if err := r.execute(ctx, "write", &storage.WriteInput{Name: args[0], Data: arg(args, 1)}, output); err != nil {
		return nil, err
	}
	result := lines(fmt.Sprintf("Data was written to file %s.", output.Path))
	if !output.Created {
		result.Lines = append(result.Lines, fmt.Sprintf("%d line(s) added, %d removed.", output.Stats.Added, output.Stats.Removed))
	}
	return result, nil
}

func (r *Router) deleteFile(ctx context.Context, args []string) (*Result, error) {
	output := &storage.DeleteFileOutput{}
	if err := r.execute(ctx, "deleteFile", &storage.DeleteFileInput{Name: args[0]}, output); err != nil {
		return nil, err
	}
	return lines(fmt.Sprintf("File %s was deleted.", output.Path)), nil
}

func (r *Router) transfer(method, verb string) handler {
	return func(ctx context.Context, args []string) (*Result, error) {
		output := &storage.TransferOutput{}
		if err := r.execute(ctx, method, &storage.TransferInput{Source: args[0], Dest: args[1]}, output); err != nil {
			return nil, err
		}
		return lines(fmt.Sprintf("File %s was %s to %s.", output.Source, verb, output.Dest)), nil
	}
}

func arg(args []string, index int) string {
	if index < len(args) {
		return args[index]
	}
	return ""
}

// New creates a router over a ready or awaiting session.
func New(sess *session.Session, persister session.Persister, actions *extension.Actions, opts ...Option) *Router {
	r := &Router{
		session:   sess,
		persister: persister,
		actions:   actions,
		commands:  map[string]*Command{},
	}
	for _, opt := range opts {
		opt(r)
	}
	name := Arg{Name: "name"}
	source, dest := Arg{Name: "name1"}, Arg{Name: "name2"}
	r.register(&Command{Name: "show_help", Description: "show help message", Detached: true, run: r.help})
	r.register(&Command{Name: "show_content", Args: []Arg{{Name: "name", Optional: true}}, Description: "show content of directory {name}, current directory by default", run: r.showContent})
	r.register(&Command{Name: "create_dir", Args: []Arg{name}, Description: "create directory {name}", run: r.createDir})
	r.register(&Command{Name: "delete_dir", Args: []Arg{name}, Description: "delete directory {name}", run: r.deleteDir})
	r.register(&Command{Name: "change_cur_dir", Args: []Arg{name}, Description: "change current directory to {name}", run: r.changeCurDir})
	r.register(&Command{Name: "show_cur_dir", Description: "show current directory", run: r.showCurDir})
	r.register(&Command{Name: "create_emptyf", Args: []Arg{name}, Description: "create empty file {name}", run: r.createEmptyFile})
	r.register(&Command{Name: "write_to_file", Args: []Arg{name, {Name: "data", Optional: true}}, Description: "write {data} to file {name}", run: r.writeToFile})
	r.register(&Command{Name: "delete_file", Args: []Arg{name}, Description: "delete file {name}", run: r.deleteFile})
	r.register(&Command{Name: "copy_file", Args: []Arg{source, dest}, Description: "copy file from {name1} to {name2}", run: r.transfer("copy", "copied")})
	r.register(&Command{Name: "move_file", Args: []Arg{source, dest}, Description: "move file from {name1} to {name2}", run: r.transfer("move", "moved")})
	r.register(&Command{Name: "rename_file", Args: []Arg{source, dest}, Description: "rename file from {name1} to {name2}", run: r.transfer("rename", "renamed")})
	r.register(&Command{Name: "change_work_dir", Args: []Arg{name}, Description: "change work directory", run: r.changeWorkDir})
	r.register(&Command{Name: "show_work_dir", Description: "show work directory", run: r.showWorkDir})
	r.register(&Command{Name: "quit", Description: "exit from program", Detached: true, run: r.quit})
	return r
}
