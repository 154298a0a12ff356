package endpoint

import "testing"

func TestResolve(t *testing.T) {
	tests := []struct {
		host       string
		wantHealth string
		wantAPI    string
	}{
		{"localhost", "http://localhost:5000/health", "http://localhost:5000/api"},
		{" LocalHost ", "http://localhost:5000/health", "http://localhost:5000/api"},
		{"tasks.example.com", "/health", "/api"},
		{"127.0.0.1", "/health", "/api"},
		{"", "/health", "/api"},
	}
	for _, tt := range tests {
		got := Resolve(tt.host)
		if got.Health != tt.wantHealth || got.API != tt.wantAPI {
			t.Errorf("Resolve(%q) = %+v, want health %q api %q", tt.host, got, tt.wantHealth, tt.wantAPI)
		}
	}
}

func TestTaskPaths(t *testing.T) {
	e := Resolve("localhost")
	if got := e.Tasks(); got != "http://localhost:5000/api/todos" {
		t.Errorf("Tasks() = %q", got)
	}
	if got := e.Task("42"); got != "http://localhost:5000/api/todos/42" {
		t.Errorf("Task(42) = %q", got)
	}
	if got := e.Task("a/b"); got != "http://localhost:5000/api/todos/a%2Fb" {
		t.Errorf("Task(a/b) = %q, want escaped id", got)
	}
	if !e.Local() {
		t.Error("expected local endpoints")
	}
	if Resolve("remote").Local() {
		t.Error("expected relative endpoints to be non-local")
	}
}
