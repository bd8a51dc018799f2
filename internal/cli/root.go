package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/tictactoe-go/internal/factory"
	redisstorage "github.com/mcoot/tictactoe-go/internal/storage/redis"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		cfg        *Config
		configPath string
		flagCfg    Config
	)

	rootCmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe in the terminal",
		Long: `tictactoe is a two player tic-tac-toe game for a single terminal.

Players take turns choosing a numbered cell. Three in a row wins on the
3x3 board and four in a row on the 4x4 board.

Settings can also be provided through TICTACTOE_* environment variables
or a YAML config file.`,
		Args: cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}

			// Flags win over the file and the environment
			flags := cmd.Flags()
			if flags.Changed("size") {
				loaded.BoardSize = flagCfg.BoardSize
			}
			if flags.Changed("first-player") {
				loaded.FirstPlayer = flagCfg.FirstPlayer
			}
			if flags.Changed("log-level") {
				loaded.LogLevel = flagCfg.LogLevel
			}
			if flags.Changed("log-format") {
				loaded.LogFormat = flagCfg.LogFormat
			}
			if flags.Changed("storage") {
				loaded.Storage = flagCfg.Storage
			}
			if flags.Changed("redis-url") {
				loaded.RedisURL = flagCfg.RedisURL
			}

			if err := loaded.Validate(); err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := cfg.NewLogger(cmd.ErrOrStderr())

			factoryCfg := factory.Config{
				Logger:      logger,
				StorageType: cfg.Storage,
			}
			if cfg.Storage == factory.StorageTypeRedis {
				redisCfg := redisstorage.DefaultConfig()
				redisCfg.URL = cfg.RedisURL
				factoryCfg.RedisConfig = &redisCfg
			}

			app, err := factory.New(factoryCfg)
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			session := NewSession(app.MatchController, cmd.InOrStdin(), cmd.OutOrStdout(), SessionOptions{
				BoardSize:   cfg.BoardSize,
				FirstPlayer: cfg.FirstPlayer,
			}, logger)
			return session.Run(cmd.Context())
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().IntVarP(&flagCfg.BoardSize, "size", "s", 0, "Board size: 3 or 4, 0 asks (env: TICTACTOE_BOARD_SIZE)")
	rootCmd.PersistentFlags().StringVarP(&flagCfg.FirstPlayer, "first-player", "f", "", "First player: 1, 2 or random, empty asks (env: TICTACTOE_FIRST_PLAYER)")
	rootCmd.PersistentFlags().StringVar(&flagCfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn, error (env: TICTACTOE_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagCfg.LogFormat, "log-format", LogFormatText, "Log format: text, json (env: TICTACTOE_LOG_FORMAT)")
	rootCmd.PersistentFlags().StringVar(&flagCfg.Storage, "storage", factory.StorageTypeMemory, "Match store: memory, redis (env: TICTACTOE_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&flagCfg.RedisURL, "redis-url", "redis://localhost:6379", "Redis URL (env: TICTACTOE_REDIS_URL)")

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
