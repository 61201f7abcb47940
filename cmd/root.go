/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/blacktop/uploadpost"
	"github.com/blacktop/uploadpost/internal/logutil"
)

const (
	envPrefix     = "UPLOADPOST"
	envAPIKey     = "UPLOADPOST_API_KEY"
	configName    = "config"
	configType    = "yaml"
	configDirName = "uploadpost"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	verbose bool
}

// Execute runs the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:   "uploadpost",
		Short: "Publish and manage posts through the Upload-Post API",
		Long: "uploadpost uploads videos, photos, text and documents to TikTok, Instagram, YouTube, " +
			"LinkedIn, Facebook, Pinterest, X, Threads, Reddit and Bluesky with a single request, " +
			"and queries upload status, analytics and schedules.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		Example: `  uploadpost video ./clip.mp4 --user alice --platform tiktok,instagram --title "Launch day"
  uploadpost photos https://cdn.example.com/a.jpg ./b.png --user alice --platform x --options x.json
  uploadpost text --user alice --platform linkedin,bluesky --title "Shipped" --link https://example.com
  uploadpost status 3f2c7c1e --api-key $KEY`,
	}

	flags := cmd.PersistentFlags()
	flags.String("api-key", "", "Upload-Post API key (env "+envAPIKey+")")
	flags.String("base-url", "", "API base URL (env UPLOADPOST_BASE_URL)")
	flags.Float64("rate", 0, "Maximum requests per minute, 0 for no limit")
	flags.StringVar(&a.cfgFile, "config", "", "Config file (default $HOME/.config/uploadpost/config.yaml)")
	flags.BoolVarP(&a.verbose, "verbose", "V", false, "Enable debug logging")
	flags.SortFlags = false

	_ = a.v.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = a.v.BindPFlag("base_url", flags.Lookup("base-url"))
	_ = a.v.BindPFlag("requests_per_minute", flags.Lookup("rate"))

	cmd.AddCommand(
		newVideoCommand(a),
		newPhotosCommand(a),
		newTextCommand(a),
		newDocumentCommand(a),
		newStatusCommand(a),
		newHistoryCommand(a),
		newAnalyticsCommand(a),
		newImpressionsCommand(a),
		newPostAnalyticsCommand(a),
		newMetricsCommand(a),
		newScheduleCommand(a),
		newUsersCommand(a),
		newJWTCommand(a),
		newPagesCommand(a),
		newCompletionCommand(),
	)

	return cmd
}

// setup applies --verbose and loads configuration. Values resolve from flags,
// then UPLOADPOST_* environment variables, then the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	logutil.SetVerbose(a.verbose)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			logutil.Debugf("no home directory, skipping config file: %v", err)
			return nil
		}
		a.v.AddConfigPath(filepath.Join(home, ".config", configDirName))
		a.v.SetConfigName(configName)
		a.v.SetConfigType(configType)
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	logutil.Debugf("loaded config: path=%s", a.v.ConfigFileUsed())

	return nil
}

// client builds an API client, prompting for the key when none is configured
// and stdin is a terminal.
func (a *app) client(cmd *cobra.Command) (*uploadpost.Client, error) {
	apiKey := strings.TrimSpace(a.v.GetString("api_key"))
	if apiKey == "" {
		key, err := promptAPIKey(cmd.InOrStdin(), cmd.ErrOrStderr())
		if err != nil {
			return nil, err
		}
		apiKey = key
	}

	return uploadpost.New(uploadpost.Config{
		APIKey:            apiKey,
		BaseURL:           a.v.GetString("base_url"),
		Logger:            logutil.Logger(),
		RequestsPerMinute: a.v.GetFloat64("requests_per_minute"),
	})
}

func promptAPIKey(in io.Reader, out io.Writer) (string, error) {
	missing := uploadpost.MissingEnvError{Variables: []string{envAPIKey}}

	file, ok := in.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return "", missing
	}

	fmt.Fprint(out, "Upload-Post API key: ")
	data, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("read api key: %w", err)
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", missing
	}
	return key, nil
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func newCompletionCommand() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate a shell completion script",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}
