package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/haierkeys/quicknote/internal/view"
	"github.com/haierkeys/quicknote/internal/web"
	"github.com/haierkeys/quicknote/pkg/safe_close"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func init() {
	flags := new(clientFlags)
	var listen string

	webCommand := &cobra.Command{
		Use:          "web [-c config_file] [-u base_url] [--listen addr]",
		Short:        "Serve the note list to a browser",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newClientEnv(flags)
			if err != nil {
				return err
			}
			defer env.logger.Sync()

			if listen == "" {
				listen = env.config.Client.WebListen
			}
			gin.SetMode(gin.ReleaseMode)

			v := view.New(env.store, web.Prompter{}, view.WithLogger(env.logger), view.WithLanguage(env.lang))
			srv := &http.Server{
				Addr: listen,
				Handler: web.NewRouter(v, web.Config{
					TracerEnabled: env.config.Tracer.Enabled,
					TracerHeader:  env.config.Tracer.Header,
					Render:        env.render,
				}, env.logger),
				ReadHeaderTimeout: 10 * time.Second,
				MaxHeaderBytes:    1 << 20,
			}

			sc := safe_close.NewSafeClose()
			sc.Attach(func(done func(), closeSignal <-chan struct{}) {
				defer done()
				errChan := make(chan error, 1)
				go func() {
					errChan <- srv.ListenAndServe()
				}()
				select {
				case err := <-errChan:
					sc.SendCloseSignal(err)
				case <-closeSignal:
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := srv.Shutdown(ctx); err != nil {
						env.logger.Error("web shutdown error", zap.Error(err))
					}
				}
			})

			bootstrapLogger.Info("QuickNote web", zap.String("listen", "http://"+listen), zap.String("store", env.store.BaseURL()))

			go func() {
				quit := make(chan os.Signal, 1)
				signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
				<-quit
				sc.SendCloseSignal(nil)
			}()

			return sc.WaitClosed()
		},
	}

	flags.register(webCommand)
	webCommand.Flags().StringVar(&listen, "listen", "", "listen address, overrides client.web-listen")
	rootCmd.AddCommand(webCommand)
}
