package tasklist

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-tasklist/tasklist/core"
)

// newTestApp builds the app against the real templates/ and public/
// directories at the repo root, with the asset cache pointed at a temp dir.
func newTestApp(t *testing.T) *App {
	t.Helper()

	config := core.Config{
		Port:         8080,
		TemplatesDir: "templates",
		PublicDir:    "public",
		OutputDir:    t.TempDir(),
	}

	app, err := NewApp(config, "prod")
	if err != nil {
		t.Fatalf("NewApp failed: %v", err)
	}
	return app
}

func doRequest(t *testing.T, app *App, method, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if htmx {
		req.Header.Set(core.HeaderRequest, "true")
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

func TestApp_HomeFullPage(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodGet, "/", nil, false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("expected full document scaffolding")
	}
	if !strings.Contains(body, `id="tab-content"`) {
		t.Error("expected the tab target element")
	}
	for _, category := range core.Categories {
		if !strings.Contains(body, "/tasks/"+category) {
			t.Errorf("expected a tab for %s", category)
		}
	}
}

func TestApp_HomeFragment(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodGet, "/", nil, true)

	body := rec.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("fragment response should omit scaffolding")
	}
	if !strings.Contains(body, `id="tab-content"`) {
		t.Error("expected fragment content")
	}
}

func TestApp_ListTasksFragment(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodGet, "/tasks/personal", nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if strings.Contains(body, "<html") {
		t.Error("expected a fragment without scaffolding")
	}
	if !strings.Contains(body, "Personal tasks") {
		t.Errorf("expected category heading, got:\n%s", body)
	}
	if !strings.Contains(body, "Nothing to do") {
		t.Errorf("expected empty state, got:\n%s", body)
	}
}

// The form-echo scenario: submitting name=Ada renders a fragment containing
// the literal Ada when the marker is present and a full document when not.
func TestApp_CreateTask(t *testing.T) {
	app := newTestApp(t)
	form := url.Values{"name": {"Ada"}}

	rec := doRequest(t, app, http.MethodPost, "/tasks/personal", form, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Ada") {
		t.Errorf("expected the submitted name in the response, got:\n%s", body)
	}
	if strings.Contains(body, "<html") {
		t.Error("marker present: response should omit scaffolding")
	}
	if got := rec.Header().Get(core.HeaderTrigger); got != "task:created" {
		t.Errorf("expected task:created trigger, got %q", got)
	}

	rec = doRequest(t, app, http.MethodPost, "/tasks/personal", url.Values{"name": {"Grace"}}, false)
	if !strings.Contains(rec.Body.String(), "<html") {
		t.Error("marker absent: response should include scaffolding")
	}
	if !strings.Contains(rec.Body.String(), "Grace") {
		t.Error("expected the submitted name in the full page")
	}
}

func TestApp_CreateTaskIgnoresEmptyName(t *testing.T) {
	app := newTestApp(t)

	rec := doRequest(t, app, http.MethodPost, "/tasks/work", url.Values{"name": {""}}, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	tasks, _ := app.Store.List("work")
	if len(tasks) != 0 {
		t.Errorf("expected no task added, got %d", len(tasks))
	}
}

func TestApp_ToggleTask(t *testing.T) {
	app := newTestApp(t)
	task, _ := app.Store.Add("work", "ship it")

	rec := doRequest(t, app, http.MethodPut, "/tasks/work/"+task.ID, nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Undo") {
		t.Errorf("expected toggled row with Undo button, got:\n%s", body)
	}
	if !strings.Contains(body, "task-"+task.ID) {
		t.Errorf("expected the row element id, got:\n%s", body)
	}
}

func TestApp_ConfirmDeleteModal(t *testing.T) {
	app := newTestApp(t)
	task, _ := app.Store.Add("shopping", "milk")

	rec := doRequest(t, app, http.MethodGet, "/tasks/shopping/confirm-delete/"+task.ID, nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "milk") {
		t.Errorf("expected the task name in the modal, got:\n%s", body)
	}
	if !strings.Contains(body, "hx-delete=\"/tasks/shopping/"+task.ID+"\"") {
		t.Errorf("expected a delete button wired to the task, got:\n%s", body)
	}
}

func TestApp_DeleteTaskLeavesOthers(t *testing.T) {
	app := newTestApp(t)
	first, _ := app.Store.Add("personal", "one")
	app.Store.Add("personal", "two")

	rec := doRequest(t, app, http.MethodDelete, "/tasks/personal/"+first.ID, nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty body while tasks remain, got %q", rec.Body.String())
	}
}

func TestApp_DeleteLastTaskRefreshesTab(t *testing.T) {
	app := newTestApp(t)
	task, _ := app.Store.Add("personal", "only one")

	rec := doRequest(t, app, http.MethodDelete, "/tasks/personal/"+task.ID, nil, true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Nothing to do") {
		t.Errorf("expected the empty state, got:\n%s", rec.Body.String())
	}
	if got := rec.Header().Get(core.HeaderRetarget); got != "#tab-content" {
		t.Errorf("expected retarget to #tab-content, got %q", got)
	}
	if got := rec.Header().Get(core.HeaderReswap); got != string(core.SwapInner) {
		t.Errorf("expected innerHTML reswap, got %q", got)
	}
}

func TestApp_NotFoundPaths(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"unregistered path", http.MethodGet, "/nope"},
		{"unknown category", http.MethodGet, "/tasks/errands"},
		{"unknown task id", http.MethodPut, "/tasks/personal/nope"},
		{"delete unknown task", http.MethodDelete, "/tasks/personal/nope"},
		{"confirm unknown task", http.MethodGet, "/tasks/personal/confirm-delete/nope"},
		{"wrong method", http.MethodPatch, "/tasks/personal"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, app, tc.method, tc.path, nil, false)
			if rec.Code != http.StatusNotFound {
				t.Errorf("expected 404, got %d", rec.Code)
			}
			if rec.Body.Len() == 0 {
				t.Error("expected an error body")
			}
		})
	}
}

func TestApp_DuplicateRouteIsStartupError(t *testing.T) {
	app := newTestApp(t)

	err := app.Router.Handle(http.MethodGet, "/tasks/:category", app.listTasks)
	if err == nil {
		t.Fatal("expected duplicate registration to fail")
	}
}
