package tasklist

import (
	"github.com/go-tasklist/tasklist/core"
)

// App wires the immutable per-process pieces together: the template
// renderer, the in-memory task store, and the route table. Everything that
// can fail fails here, before the process starts serving.
type App struct {
	Config   core.Config
	Store    *core.Store
	Renderer *core.Renderer
	Router   *core.Router
}

func NewApp(config core.Config, env string) (*App, error) {
	renderer, err := core.NewRenderer(config, env)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   config,
		Store:    core.NewStore(),
		Renderer: renderer,
		Router:   core.NewRouter(config, renderer),
	}

	if err := app.registerRoutes(); err != nil {
		return nil, err
	}

	return app, nil
}
