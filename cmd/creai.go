package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/artifacts"
	"github.com/creai-labs/creai/internal/cache"
	"github.com/creai-labs/creai/internal/client"
	"github.com/creai-labs/creai/internal/config"
	"github.com/creai-labs/creai/internal/export"
	"github.com/creai-labs/creai/internal/templates"
	"github.com/creai-labs/creai/internal/web"
)

var (
	cfgFile    string
	backendURL string
	port       int
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "creai",
	Short: "AI-assisted UI component generator",
	Long:  "creAI is a front end for an AI component-generation service: describe a UI component in plain language and get back a live preview, its source code, and a description, with iterative modification.",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the creAI shell server",
	Long:  "Start the web shell: the generator UI plus a JSON API fronting the backend generation service",
	RunE:  runServe,
}

var generateCmd = &cobra.Command{
	Use:   "generate [prompt]",
	Short: "Generate a component from the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

var exportCmd = &cobra.Command{
	Use:   "export [artifact-id]",
	Short: "Export a saved component to a target language",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	generatePlatform string
	generateSave     bool
	exportLang       string
	exportOut        string
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.creai.yaml)")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "generation backend base URL")

	serveCmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")

	generateCmd.Flags().StringVar(&generatePlatform, "platform", "mobile", "target platform (mobile or web)")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "save the generated component to the artifact store")

	exportCmd.Flags().StringVar(&exportLang, "lang", "javascript", "target language")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (defaults to the component name)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".creai")
	}

	viper.SetEnvPrefix("creai")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// Initialize logger
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
}

// loadConfig merges defaults, the config file, and flag overrides.
func loadConfig() *config.Config {
	cfg := config.Default()
	if err := viper.Unmarshal(cfg); err != nil {
		logger.Warn("Failed to unmarshal config, using defaults", zap.Error(err))
	}
	if backendURL != "" {
		cfg.BackendURL = backendURL
	}
	return cfg
}

// buildCache selects the configured modification-cache backend.
func buildCache(cfg *config.Config) cache.Cache {
	if cfg.CacheBackend == "redis" {
		redisCache, err := cache.NewRedis(cache.RedisConfig{
			Address:  cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			TTL:      cfg.CacheTTL,
		}, logger)
		if err != nil {
			logger.Warn("Redis cache unavailable, falling back to memory", zap.Error(err))
		} else {
			return redisCache
		}
	}
	return cache.NewMemory(cfg.CacheTTL)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.HTTPPort = port

	modCache := buildCache(cfg)

	generationClient := client.New(client.Config{
		BaseURL:       cfg.BackendURL,
		ModifyTimeout: cfg.ModifyTimeout,
	}, logger, modCache)

	store := artifacts.NewJSONStore(cfg.ArtifactDir)

	library := templates.NewLibrary(logger, cfg.TemplatesFile)
	if err := library.Watch(); err != nil {
		logger.Warn("Template hot reload unavailable", zap.Error(err))
	}

	// Sweep expired cache entries on a schedule when the memory backend is
	// time-bounded; Redis expires entries itself.
	var janitor *cron.Cron
	if memCache, ok := modCache.(*cache.Memory); ok && cfg.CacheTTL > 0 {
		janitor = cron.New()
		janitor.AddFunc("@every 5m", func() {
			if removed := memCache.Sweep(); removed > 0 {
				logger.Info("Swept expired cache entries", zap.Int("removed", removed))
			}
		})
		janitor.Start()
	}

	server := web.NewServer(logger, generationClient, library, store, cfg.HTTPPort)
	go func() {
		if err := server.Start(); err != nil {
			logger.Error("Shell server failed", zap.Error(err))
		}
	}()

	logger.Info("creAI shell started",
		zap.Int("port", cfg.HTTPPort),
		zap.String("backend", cfg.BackendURL),
		zap.String("cache", cfg.CacheBackend))

	// Wait for interrupt signal
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	logger.Info("Shutting down creAI shell...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	server.Stop(ctx)
	library.Stop()
	if janitor != nil {
		janitor.Stop()
	}
	if closer, ok := modCache.(*cache.Redis); ok {
		closer.Close()
	}

	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	prompt := args[0]

	generationClient := client.New(client.Config{
		BaseURL:       cfg.BackendURL,
		ModifyTimeout: cfg.ModifyTimeout,
	}, logger, cache.NewMemory(0))

	fmt.Printf("🚀 Generating component (%s)...\n", generatePlatform)

	rec, err := generationClient.Generate(context.Background(), prompt, generatePlatform)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if rec.Description != "" {
		fmt.Printf("\n%s\n", rec.Description)
	}
	if rec.SourceCode != "" {
		fmt.Printf("\n%s\n", rec.SourceCode)
	} else {
		fmt.Println("\n(no code generated)")
	}

	if generateSave {
		store := artifacts.NewJSONStore(cfg.ArtifactDir)
		artifact := artifacts.NewArtifact("", prompt, generatePlatform, *rec)
		if err := store.Save(artifact); err != nil {
			return fmt.Errorf("failed to save artifact: %w", err)
		}
		fmt.Printf("\n✅ Saved as %s\n", artifact.ID)
	}

	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	store := artifacts.NewJSONStore(cfg.ArtifactDir)
	artifact, err := store.Get(args[0])
	if err != nil {
		return err
	}

	lang, ok := export.Lookup(exportLang)
	if !ok {
		return fmt.Errorf("unknown language %q", exportLang)
	}

	converted := export.Convert(artifact.Record.SourceCode, lang.ID)

	out := exportOut
	if out == "" {
		out = export.FileName(artifact.Name, lang)
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(out, []byte(converted), 0644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	fmt.Printf("✅ Exported %s to %s\n", artifact.Name, out)
	return nil
}

func Execute() error {
	return rootCmd.Execute()
}
