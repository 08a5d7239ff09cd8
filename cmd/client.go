package cmd

import (
	"fmt"
	"strings"
	"time"

	internalApp "github.com/haierkeys/quicknote/internal/app"
	"github.com/haierkeys/quicknote/internal/notestore"
	"github.com/haierkeys/quicknote/internal/view"
	"github.com/haierkeys/quicknote/pkg/code"
	"github.com/haierkeys/quicknote/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// clientFlags are shared by the ui, web and notes commands
// clientFlags 客户端命令通用参数
type clientFlags struct {
	config  string // Configuration file path // 配置文件路径
	baseURL string // Note store address, overrides client.base-url // 笔记服务地址
	lang    string // Message language // 提示语言
}

func (f *clientFlags) register(cmd *cobra.Command) {
	fs := cmd.PersistentFlags()
	fs.StringVarP(&f.config, "config", "c", "", "config file")
	fs.StringVarP(&f.baseURL, "base-url", "u", "", "note store address, overrides client.base-url")
	fs.StringVarP(&f.lang, "lang", "l", "", "message language en | zh-cn")
}

// clientEnv 客户端运行环境
type clientEnv struct {
	config *internalApp.AppConfig
	logger *zap.Logger
	store  *notestore.Client
	render view.RenderOptions
	lang   string
}

// newClientEnv loads config (the embedded default when no file is found) and builds the store client.
// Logs only go to the log file so terminal output stays clean.
func newClientEnv(f *clientFlags) (*clientEnv, error) {
	var (
		cfg *internalApp.AppConfig
		err error
	)
	path := f.config
	if path == "" {
		path = findConfig()
	}
	if path != "" {
		cfg, _, err = internalApp.LoadConfig(path)
	} else {
		cfg, err = internalApp.ParseConfig([]byte(configDefault))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if f.baseURL != "" {
		cfg.Client.BaseURL = f.baseURL
	}
	lang := cfg.App.Language
	if f.lang != "" {
		lang = f.lang
	}
	lang = strings.ToLower(strings.ReplaceAll(lang, "-", "_"))
	_ = code.SetGlobalDefaultLang(lang)

	lg := zap.NewNop()
	if cfg.Log.File != "" {
		if lg, err = logger.NewLogger(logger.Config{
			Level:      cfg.Log.Level,
			File:       cfg.Log.File,
			Production: cfg.Log.Production,
		}); err != nil {
			return nil, fmt.Errorf("initLogger: %w", err)
		}
	}

	store, err := notestore.New(cfg.Client.BaseURL,
		notestore.WithTimeout(cfg.GetClientTimeout()),
		notestore.WithLogger(lg),
	)
	if err != nil {
		return nil, err
	}
	lg.Info("note store client", zap.String(logger.FieldBaseURL, store.BaseURL()))

	return &clientEnv{
		config: cfg,
		logger: lg,
		store:  store,
		lang:   lang,
		render: view.RenderOptions{
			Location:   time.Local,
			TimeFormat: cfg.Client.TimeFormat,
			Lang:       lang,
		},
	}, nil
}
