package tasklist

import (
	"net/http"

	"github.com/go-tasklist/tasklist/core"
)

func (app *App) registerRoutes() error {
	routes := []struct {
		method  string
		pattern string
		handler core.HandlerFunc
	}{
		{http.MethodGet, "/", app.home},
		{http.MethodGet, "/tasks/:category", app.listTasks},
		{http.MethodPost, "/tasks/:category", app.createTask},
		{http.MethodPut, "/tasks/:category/:id", app.toggleTask},
		{http.MethodGet, "/tasks/:category/confirm-delete/:id", app.confirmDelete},
		{http.MethodDelete, "/tasks/:category/:id", app.deleteTask},
	}

	for _, route := range routes {
		if err := app.Router.Handle(route.method, route.pattern, route.handler); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) home(r *http.Request, params map[string]string) (*core.Result, error) {
	return core.OK("index", map[string]interface{}{
		"Categories": core.Categories,
	}), nil
}

func (app *App) listTasks(r *http.Request, params map[string]string) (*core.Result, error) {
	category := params["category"]
	tasks, err := app.Store.List(category)
	if err != nil {
		return nil, err
	}

	return core.OK("tasks", map[string]interface{}{
		"Tasks":    tasks,
		"Category": category,
	}), nil
}

func (app *App) createTask(r *http.Request, params map[string]string) (*core.Result, error) {
	category := params["category"]

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	if name := r.PostFormValue("name"); name != "" {
		if _, err := app.Store.Add(category, name); err != nil {
			return nil, err
		}
	}

	tasks, err := app.Store.List(category)
	if err != nil {
		return nil, err
	}

	return core.OK("tasks", map[string]interface{}{
		"Tasks":    tasks,
		"Category": category,
	}).Trigger("task:created"), nil
}

func (app *App) toggleTask(r *http.Request, params map[string]string) (*core.Result, error) {
	task, err := app.Store.Toggle(params["category"], params["id"])
	if err != nil {
		return nil, err
	}

	return core.OK("task", map[string]interface{}{
		"Task":     task,
		"Category": params["category"],
	}), nil
}

func (app *App) confirmDelete(r *http.Request, params map[string]string) (*core.Result, error) {
	task, err := app.Store.Get(params["category"], params["id"])
	if err != nil {
		return nil, err
	}

	return core.OK("modal", map[string]interface{}{
		"Task":     task,
		"Category": params["category"],
	}), nil
}

// deleteTask mirrors the htmx delete dance: while tasks remain the response
// is empty so the client just drops the targeted row, and when the category
// empties the whole tab re-renders so the empty state shows.
func (app *App) deleteTask(r *http.Request, params map[string]string) (*core.Result, error) {
	category := params["category"]
	remaining, err := app.Store.Delete(category, params["id"])
	if err != nil {
		return nil, err
	}

	if remaining > 0 {
		return nil, nil
	}

	return core.OK("tasks", map[string]interface{}{
		"Tasks":    []core.Task{},
		"Category": category,
	}).Retarget("#tab-content").Reswap(core.SwapInner), nil
}
