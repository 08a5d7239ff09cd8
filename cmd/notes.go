package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/internal/view"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// stdinPrompter asks on the terminal; anything but y/yes declines.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newStdinPrompter(in io.Reader, out io.Writer) *stdinPrompter {
	return &stdinPrompter{in: bufio.NewReader(in), out: out}
}

func (p *stdinPrompter) Alert(_ context.Context, msg string) {
	fmt.Fprintln(p.out, msg)
}

func (p *stdinPrompter) Confirm(_ context.Context, msg string) bool {
	fmt.Fprintf(p.out, "%s [y/N] ", msg)
	line, _ := p.in.ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

// printState writes the view and reports its error banner as the command error.
func printState(w io.Writer, s view.State, opts view.RenderOptions, asJSON bool) error {
	if asJSON {
		notes := s.Notes()
		if notes == nil {
			notes = []notestore.Note{}
		}
		out, err := sonic.MarshalString(notes)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, out)
	} else if err := view.RenderText(w, s, opts); err != nil {
		return err
	}
	if s.Status() == view.StatusError {
		return s.Failure()
	}
	return nil
}

// notesList 列出笔记
func notesList(ctx context.Context, v *view.View, w io.Writer, opts view.RenderOptions, asJSON bool) error {
	return printState(w, v.Activate(ctx), opts, asJSON)
}

// notesAdd 添加笔记，标题或内容为空时不发送请求
func notesAdd(ctx context.Context, v *view.View, w io.Writer, opts view.RenderOptions, title, content string) error {
	v.Activate(ctx)
	s := v.Create(ctx, title, content)
	if err := view.ValidateDraft(title, content); err != nil {
		return err
	}
	return printState(w, s, opts, false)
}

// notesDelete 删除笔记，确认被拒绝时不发送请求
func notesDelete(ctx context.Context, v *view.View, w io.Writer, opts view.RenderOptions, id string) error {
	v.Activate(ctx)
	return printState(w, v.Delete(ctx, notestore.NoteID(id)), opts, false)
}

func init() {
	flags := new(clientFlags)
	var (
		asJSON  bool
		title   string
		content string
		yes     bool
	)

	notesCommand := &cobra.Command{
		Use:   "notes",
		Short: "List, add and delete notes from the command line",
	}
	flags.register(notesCommand)

	// newView 每次命令执行创建一个视图
	newView := func(cmd *cobra.Command, assumeYes bool) (*view.View, *clientEnv, error) {
		env, err := newClientEnv(flags)
		if err != nil {
			return nil, nil, err
		}
		var prompter view.Prompter = newStdinPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
		if assumeYes {
			prompter = view.AssumeYes{}
		}
		return view.New(env.store, prompter, view.WithLogger(env.logger), view.WithLanguage(env.lang)), env, nil
	}

	signalContext := func() (context.Context, context.CancelFunc) {
		return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}

	listCommand := &cobra.Command{
		Use:          "list [--json]",
		Short:        "List notes, newest first",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, env, err := newView(cmd, false)
			if err != nil {
				return err
			}
			defer env.logger.Sync()
			ctx, stop := signalContext()
			defer stop()
			return notesList(ctx, v, cmd.OutOrStdout(), env.render, asJSON)
		},
	}
	listCommand.Flags().BoolVar(&asJSON, "json", false, "print notes as JSON")

	addCommand := &cobra.Command{
		Use:          "add --title <title> --content <content>",
		Short:        "Add a note",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, env, err := newView(cmd, false)
			if err != nil {
				return err
			}
			defer env.logger.Sync()
			ctx, stop := signalContext()
			defer stop()
			return notesAdd(ctx, v, cmd.OutOrStdout(), env.render, title, content)
		},
	}
	addCommand.Flags().StringVarP(&title, "title", "t", "", "note title")
	addCommand.Flags().StringVarP(&content, "content", "b", "", "note content")

	deleteCommand := &cobra.Command{
		Use:          "delete <id> [--yes]",
		Short:        "Delete a note after confirmation",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, env, err := newView(cmd, yes)
			if err != nil {
				return err
			}
			defer env.logger.Sync()
			ctx, stop := signalContext()
			defer stop()
			return notesDelete(ctx, v, cmd.OutOrStdout(), env.render, args[0])
		},
	}
	deleteCommand.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	notesCommand.AddCommand(listCommand, addCommand, deleteCommand)
	rootCmd.AddCommand(notesCommand)
}
