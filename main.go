// 作品集页面入口
//
// 默认打开窗口；tui 子命令在终端里预览；validate 子命令只校验配置文件。
// 未指定 --config 时使用内嵌的 data/portfolio.yaml。
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/decker502/portfolio/pkg/app"
	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/decker502/portfolio/pkg/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	verbose    bool
	seed       uint64
	preset     string
	noWatch    bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Animated portfolio page with a starfield background",
	Long: `Opens the portfolio page in a window.

The page content (hero title, rotating labels, projects and social links)
comes from a YAML file. Without --config the embedded default is used.
A user supplied file is watched and reloaded when it changes.

Keys: arrows / PgUp / PgDn / Home / End scroll, G toggles pointer glow,
P switches the background preset, F11 toggles fullscreen.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logging.Init(verbose)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
	RunE: runWindow,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "portfolio YAML file (default: embedded)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "fixed random seed for the starfield (0 = saved or random)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "starfield preset: canvas or ambient")
	rootCmd.PersistentFlags().BoolVar(&noWatch, "no-watch", false, "do not reload the config file on change")

	rootCmd.AddCommand(tuiCmd, validateCmd)
}

func main() {
	embedded.Init(dataFS)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// content 已加载的作品集配置及其附属资源
type content struct {
	cfg     *config.PortfolioConfig
	images  fs.FS
	watcher *config.Watcher
}

// updates 热重载通道，未监视时为 nil
func (c *content) updates() <-chan *config.PortfolioConfig {
	if c.watcher == nil {
		return nil
	}
	return c.watcher.Updates()
}

func (c *content) close() {
	if c.watcher != nil {
		c.watcher.Stop()
	}
}

// loadContent 读取 --config 指定的文件或内嵌默认配置
//
// 用户文件的图片相对于文件所在目录解析，并在 ctx 结束前持续监视
func loadContent(ctx context.Context) (*content, error) {
	log := logging.Named("Main")

	if configPath == "" {
		data, err := embedded.ReadFile(embedded.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		cfg, err := config.ParsePortfolioConfig(data)
		if err != nil {
			return nil, err
		}
		images, err := fs.Sub(dataFS, "data")
		if err != nil {
			return nil, err
		}
		log.Debug("using embedded config")
		return &content{cfg: cfg, images: images}, nil
	}

	cfg, err := config.LoadPortfolioConfig(configPath)
	if err != nil {
		return nil, err
	}
	c := &content{cfg: cfg, images: os.DirFS(filepath.Dir(configPath))}
	if noWatch {
		return c, nil
	}

	w, err := config.NewWatcher(configPath, config.DefaultReloadDebounce)
	if err != nil {
		return nil, err
	}
	if err := w.Start(ctx); err != nil {
		w.Stop()
		// 监视失败不影响显示
		log.Warn("config reload disabled", zap.Error(err))
		return c, nil
	}
	c.watcher = w
	return c, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	c, err := loadContent(ctx)
	if err != nil {
		return err
	}
	defer c.close()

	portfolio, err := app.NewApp(app.Config{
		Content: c.cfg,
		Images:  c.images,
		Updates: c.updates(),
		Preset:  preset,
		Seed:    seed,
	})
	if err != nil {
		return err
	}
	portfolio.ConfigureWindow()
	return portfolio.Run()
}
