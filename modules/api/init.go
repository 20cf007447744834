package api

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/facebookgo/inject"
	"github.com/gin-gonic/gin"
	"github.com/olebedev/config"
	"github.com/op/go-logging"
	"github.com/tryanzu/gomarket/modules/api/controller/cart"
	"github.com/tryanzu/gomarket/modules/exceptions"
)

var log = logging.MustGetLogger("api")

type Module struct {
	Dependencies ModuleDI
	Cart         cart.API
}

type ModuleDI struct {
	Config     *config.Config               `inject:""`
	Exceptions *exceptions.ExceptionsModule `inject:""`
}

// Populate fills the module controllers from the graph.
func (module *Module) Populate(g *inject.Graph) error {
	err := g.Provide(
		&inject.Object{Value: &module.Dependencies},
		&inject.Object{Value: &module.Cart},
	)
	if err != nil {
		return err
	}

	return g.Populate()
}

// Router builds the gin engine with every cart route.
func (module *Module) Router() *gin.Engine {
	if module.Dependencies.Config.UString("environment", "development") != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(module.Dependencies.Exceptions.Middleware())

	v1 := router.Group("/v1")

	// Cart routes
	v1.GET("/cart", module.Cart.Get)
	v1.POST("/cart", module.Cart.Add)
	v1.POST("/cart/:id/increment", module.Cart.Increment)
	v1.DELETE("/cart/:id", module.Cart.Delete)

	return router
}

// Run serves until an interrupt signal arrives.
func (module *Module) Run(bindTo string) error {
	srv := &http.Server{
		Addr:    bindTo,
		Handler: module.Router(),
	}

	failed := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", bindTo)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			failed <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with
	// a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	select {
	case err := <-failed:
		return err
	case <-quit:
	}
	log.Info("Shutdown Server ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
