package application

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/automaxprocs/maxprocs"
	"go.uber.org/zap"

	"github.com/lk2023060901/lineage-gameserver-go/internal/gameserver/catalog"
	zlog "github.com/lk2023060901/lineage-gameserver-go/pkg/log"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/metrics"
	"github.com/lk2023060901/lineage-gameserver-go/pkg/util/merr"
	zviper "github.com/lk2023060901/lineage-gameserver-go/pkg/util/viper"
)

const (
	defaultConfigPath = "./config.yaml"
	configPathEnv     = "GAMESERVER_CONFIG_FILE_PATH"

	loggingKey = "logging"
	catalogKey = "sysmsg.catalog"
)

// Application is the main runtime container for a game server process.
// It owns configuration, loggers and the system message catalog.
type Application struct {
	cfg     *zviper.Config
	loggers map[string]*zlog.MLogger
	catalog *catalog.Registry
}

// New creates a new Application instance.
func New() *Application {
	return &Application{}
}

// Run parses os.Args and starts the application, see RunWithArgs.
func (a *Application) Run() error {
	return a.RunWithArgs(os.Args[1:])
}

// RunWithArgs loads the configuration file using the following priority:
//  1. Default: ./config.yaml
//  2. Env: GAMESERVER_CONFIG_FILE_PATH
//  3. CLI: --config <path> or --config=<path>
//
// then initialises logging, adjusts GOMAXPROCS to the container quota,
// registers metrics and loads the system message
// catalog named by sysmsg.catalog.
func (a *Application) RunWithArgs(args []string) error {
	cfg, err := a.loadConfig(args)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if err := a.initLogging(); err != nil {
		return err
	}
	if _, err := maxprocs.Set(maxprocs.Logger(zlog.S().Infof)); err != nil {
		zlog.Warn("failed to set GOMAXPROCS", zap.Error(err))
	}
	metrics.Register(metrics.GetRegisterer())

	return a.loadCatalog()
}

// Config returns the loaded configuration, if any.
func (a *Application) Config() *zviper.Config {
	return a.cfg
}

// Catalog returns the system message catalog. It is empty until Run succeeds.
func (a *Application) Catalog() *catalog.Registry {
	if a.catalog == nil {
		a.catalog = catalog.NewRegistry()
	}
	return a.catalog
}

// Logger returns a named logger created from configuration.
// If the name is unknown, it falls back to the global logger.
func (a *Application) Logger(name string) *zlog.MLogger {
	if lg, ok := a.loggers[name]; ok && lg != nil {
		return lg
	}
	return &zlog.MLogger{Logger: zlog.L()}
}

// loadConfig resolves config file path and loads it via viper wrapper.
func (a *Application) loadConfig(args []string) (*zviper.Config, error) {
	configPath := defaultConfigPath

	if envPath := os.Getenv(configPathEnv); envPath != "" {
		configPath = envPath
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--config" {
			if i+1 >= len(args) {
				return nil, merr.WrapErrParameterMissing("--config", "missing value after --config")
			}
			configPath = args[i+1]
			i++
			continue
		}
		if strings.HasPrefix(arg, "--config=") {
			val := strings.TrimPrefix(arg, "--config=")
			if val != "" {
				configPath = val
			}
			continue
		}
	}

	cfg := zviper.New()
	if err := cfg.LoadFile(configPath); err != nil {
		return nil, merr.WrapErrIoFailed(configPath, err)
	}

	return cfg, nil
}

// initLogging initializes global and module-level loggers.
func (a *Application) initLogging() error {
	if err := a.initGlobalLoggerFromEnv(); err != nil {
		return err
	}
	if err := a.initModuleLoggersFromConfig(); err != nil {
		return err
	}
	return nil
}

// initGlobalLoggerFromEnv configures the process-wide logger based on GAMESERVER_LOG_* env vars.
//
// Priority:
//   - GAMESERVER_LOG_ENABLE: "1"/"true" to enable outputs; others treated as disabled.
//   - GAMESERVER_LOG_LEVEL: log level (default "info").
//   - GAMESERVER_LOG_STDOUT: whether to log to stdout (default false).
//   - GAMESERVER_LOG_FILE_DIR: log directory.
//   - GAMESERVER_LOG_FILE: log file name (empty means no file).
//   - GAMESERVER_LOG_FORMAT: log format ("text" or "json", default "text").
func (a *Application) initGlobalLoggerFromEnv() error {
	enabled := getenvBool("GAMESERVER_LOG_ENABLE", false)

	cfg := &zlog.Config{
		Level:  getenvDefault("GAMESERVER_LOG_LEVEL", "info"),
		Format: getenvDefault("GAMESERVER_LOG_FORMAT", "text"),
		Stdout: getenvBool("GAMESERVER_LOG_STDOUT", false),
		File: zlog.FileLogConfig{
			RootPath: getenvDefault("GAMESERVER_LOG_FILE_DIR", ""),
			Filename: getenvDefault("GAMESERVER_LOG_FILE", ""),
		},
	}

	// When not enabled, direct all outputs to a discarded sink.
	if !enabled {
		cfg.Stdout = false
		cfg.File.Filename = ""
	}

	logger, props, err := zlog.InitLogger(cfg)
	if err != nil {
		return merr.WrapErrConfigInvalid("GAMESERVER_LOG_LEVEL", err.Error())
	}
	zlog.ReplaceGlobals(logger, props)
	return nil
}

// initModuleLoggersFromConfig creates named loggers from YAML config under "logging" key.
//
// Example:
//
//	logging:
//	  sysmsg:
//	    level: debug
//	    stdout: true
//	    file:
//	      rootpath: ./logs
//	      filename: sysmsg.log
func (a *Application) initModuleLoggersFromConfig() error {
	if a.cfg == nil {
		return nil
	}

	raw := make(map[string]zlog.Config)
	if err := a.cfg.UnmarshalKey(loggingKey, &raw); err != nil {
		return merr.WrapErrConfigInvalid(loggingKey, err.Error())
	}
	if len(raw) == 0 {
		return nil
	}

	a.loggers = make(map[string]*zlog.MLogger, len(raw))
	for name, lc := range raw {
		cfgCopy := lc
		logger, _, err := zlog.InitLogger(&cfgCopy)
		if err != nil {
			return merr.WrapErrConfigInvalid(loggingKey+"."+name, err.Error())
		}
		a.loggers[name] = &zlog.MLogger{Logger: logger.With(zlog.FieldModule(name))}
	}

	return nil
}

// loadCatalog loads the system message catalog. A relative path is resolved
// against the directory of the config file.
func (a *Application) loadCatalog() error {
	reg := a.Catalog()
	if lg, ok := a.loggers["catalog"]; ok {
		reg.SetLogger(lg)
	}

	path := a.cfg.GetString(catalogKey)
	if path == "" {
		return merr.WrapErrConfigNotFound(catalogKey)
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(a.cfg.ConfigFileDir(), path)
	}
	if err := reg.Load(path); err != nil {
		return errors.Wrap(err, "load system message catalog")
	}
	zlog.Info("application started",
		zap.String("catalog", path),
		zap.Int("messages", reg.Len()))
	return nil
}

func getenvDefault(key, def string) string {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	return val
}

func getenvBool(key string, def bool) bool {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return def
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return def
	}
}
