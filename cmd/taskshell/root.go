package main

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/phrazzld/tasktrack/internal/config"
	"github.com/phrazzld/tasktrack/internal/events"
	"github.com/phrazzld/tasktrack/internal/platform/logger"
	"github.com/phrazzld/tasktrack/internal/render"
	"github.com/phrazzld/tasktrack/internal/session"
	"github.com/phrazzld/tasktrack/internal/shell"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd builds the taskshell command. Flags are bound to a private viper
// instance so TASKTRACK_SHELL_LOG_LEVEL and TASKTRACK_SHELL_NO_COLOR work too.
func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "taskshell",
		Short: "Interactive priority task tracker",
		Long: `taskshell keeps a priority queue of pending tasks and a stack of
completed ones for the lifetime of the process. Complete always takes the
most urgent task; undo reopens the most recently completed one.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, v)
		},
	}

	cmd.Flags().String("log-level", "warn", "log level written to stderr (debug, info, warn, error)")
	cmd.Flags().Bool("no-color", false, "disable colored output")
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("no_color", cmd.Flags().Lookup("no-color"))

	v.SetEnvPrefix(config.EnvPrefix + "_SHELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return cmd
}

func runShell(cmd *cobra.Command, v *viper.Viper) error {
	level := v.GetString("log_level")
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", level)
	}

	log, err := logger.SetupWithWriter(level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	emitter := events.NewInMemoryEventEmitter(log)
	emitter.RegisterHandler(events.NewLoggingHandler(log))

	sess := session.New(uuid.New(),
		session.WithLogger(log),
		session.WithEmitter(emitter))
	log.Info("shell session started", "session_id", sess.ID.String())

	sh := &shell.Shell{
		Session:  sess,
		Renderer: render.New(!v.GetBool("no_color")),
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
	}
	return sh.Run(cmd.Context())
}
