package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func captureOutput(f func()) string {
	orig := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	f()

	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

// inTempProject creates a minimal project layout (templates + public) in a
// temp dir and chdirs into it for the duration of the test.
func inTempProject(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	templatesDir := filepath.Join(tmp, "templates")
	if err := os.MkdirAll(templatesDir, 0755); err != nil {
		t.Fatal(err)
	}

	files := map[string]string{
		"layout.html": `{{ define "layout" }}<html><body>{{ template "content" . }}</body></html>{{ end }}`,
		"index.html":  `{{ define "content" }}<h1>Home</h1>{{ end }}`,
		"error.html":  `{{ define "content" }}<h1>{{ .Status }}</h1>{{ end }}`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(templatesDir, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := os.MkdirAll(filepath.Join(tmp, "public"), 0755); err != nil {
		t.Fatal(err)
	}

	originalCWD, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(originalCWD) })

	return tmp
}
