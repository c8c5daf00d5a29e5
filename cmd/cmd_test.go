package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/algokit/algokit/cmd/util"
	"github.com/algokit/algokit/internal/config"
	"github.com/algokit/algokit/internal/mocks"
	"github.com/algokit/algokit/pkg/homework"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// executeCommand runs the full command tree with args and returns what was
// written to stdout. HOME must already point at a temporary directory.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("ALGOKIT_LOG_LEVEL", "none")

	root := NewRootCommand()
	root.AddCommand(NewParensCommand(), NewJosephusCommand(), NewMoveToFrontCommand(), NewVersionCommand())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestParensCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	out, err := executeCommand(t, "parens", "()", "[(])")
	require.NoError(t, err)
	require.Equal(t, "INPUT  BALANCED\n()     true\n[(])   false\n", out)

	out, err = executeCommand(t, "parens", "--output", "json", "[()]{}{[()()]()}")
	require.NoError(t, err)
	require.JSONEq(t, `[{"input": "[()]{}{[()()]()}", "balanced": true}]`, out)

	_, err = executeCommand(t, "parens")
	require.Error(t, err)
}

func TestJosephusCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	out, err := executeCommand(t, "josephus")
	require.NoError(t, err)
	require.Equal(t, "1 3 5 0 4 2 6\n", out)

	out, err = executeCommand(t, "josephus", "-n", "3", "-m", "3", "-o", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"people": 3, "step": 3, "order": [2, 0, 1]}`, out)

	out, err = executeCommand(t, "josephus", "--people", "0")
	require.NoError(t, err)
	require.Equal(t, "\n", out)
}

func TestMoveToFrontCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	out, err := executeCommand(t, "mtf", "abcab", "-o", "yaml")
	require.NoError(t, err)
	require.YAMLEq(t, "- input: abcab\n  result: cab\n", out)

	out, err = executeCommand(t, "move-to-front", "aaaa")
	require.NoError(t, err)
	require.Equal(t, "INPUT  RESULT\naaaa   a\n", out)
}

func TestVersionCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "algokit Version dev Date unknown commit id none\n", out)
}

func TestConfigPrecedence(t *testing.T) {
	util.PrepareTempConfigFile(t, `output:
  format: yaml
josephus:
  people: 4
  step: 1
`)

	t.Run("config_file", func(t *testing.T) {
		out, err := executeCommand(t, "josephus")
		require.NoError(t, err)
		require.YAMLEq(t, "order: [0, 1, 2, 3]\npeople: 4\nstep: 1\n", out)
	})

	t.Run("env_overrides_config_file", func(t *testing.T) {
		t.Setenv("ALGOKIT_OUTPUT_FORMAT", "json")

		out, err := executeCommand(t, "josephus")
		require.NoError(t, err)
		require.JSONEq(t, `{"people": 4, "step": 1, "order": [0, 1, 2, 3]}`, out)
	})

	t.Run("flag_overrides_env", func(t *testing.T) {
		t.Setenv("ALGOKIT_OUTPUT_FORMAT", "json")

		out, err := executeCommand(t, "josephus", "--output", "text", "--step", "2")
		require.NoError(t, err)
		require.Equal(t, "1 3 2 0\n", out)
	})
}

func TestReadConfigDefaults(t *testing.T) {
	util.PrepareTempConfigDir(t)
	viper.Reset()
	t.Cleanup(viper.Reset)

	NewRootCommand()
	cfg, err := ReadConfig()
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestInvalidConfig(t *testing.T) {
	util.PrepareTempConfigDir(t)

	tests := []struct {
		name string
		args []string
		err  string
	}{
		{
			name: "log_format",
			args: []string{"parens", "()", "--log-format", "xml"},
			err:  "config 'log.format' must be one of [text json]",
		},
		{
			name: "output_format",
			args: []string{"parens", "()", "--output", "csv"},
			err:  "config 'output.format' must be one of [text json yaml]",
		},
		{
			name: "stack_capacity",
			args: []string{"parens", "()", "--stack-initial-capacity=-1"},
			err:  "config 'stack.initialCapacity' (-1) cannot be negative",
		},
		{
			name: "josephus_step",
			args: []string{"josephus", "--step", "0"},
			err:  "config 'josephus.step' (0) must be greater than zero",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := executeCommand(t, test.args...)
			require.EqualError(t, err, test.err)
		})
	}
}

func TestInvalidConfigFile(t *testing.T) {
	util.PrepareTempConfigFile(t, "output: [unterminated\n")

	_, err := executeCommand(t, "version")
	require.NoError(t, err)

	_, err = executeCommand(t, "parens", "()")
	require.ErrorContains(t, err, "failed to load config")
}

func TestCommandContextLogging(t *testing.T) {
	t.Run("parens", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info("checking brackets", gomock.Any())
		mockLogger.EXPECT().Debug("checked input", gomock.Any(), gomock.Any()).Times(3)

		var out bytes.Buffer
		c, err := NewCommandContext(config.DefaultConfig(), mockLogger, &out)
		require.NoError(t, err)

		require.NoError(t, c.Parens([]string{"()", "(", "{[]}"}))
		require.Equal(t, "INPUT  BALANCED\n()     true\n(      false\n{[]}   true\n", out.String())
	})

	t.Run("josephus_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info("solving josephus", gomock.Any(), gomock.Any())
		mockLogger.EXPECT().Error("josephus failed", gomock.Any())

		c, err := NewCommandContext(config.DefaultConfig(), mockLogger, io.Discard)
		require.NoError(t, err)

		err = c.Josephus(3, 0)
		require.ErrorIs(t, err, homework.ErrInvalidJosephus)
	})

	t.Run("move_to_front", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		mockLogger.EXPECT().Info("applying move-to-front", gomock.Any())

		c, err := NewCommandContext(config.DefaultConfig(), mockLogger, io.Discard)
		require.NoError(t, err)
		require.NoError(t, c.MoveToFront([]string{"zyxzy"}))
	})
}

func TestNewCommandContextUnknownOutput(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Output.Format = "csv"

	_, err := NewCommandContext(cfg, nil, io.Discard)
	require.Error(t, err)
}
