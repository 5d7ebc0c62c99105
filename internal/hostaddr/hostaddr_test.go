// Where: cli/internal/hostaddr/hostaddr_test.go
// What: Tests for public host resolution.
// Why: Ensure explicit values win and templates render against detected IPs.
package hostaddr

import (
	"errors"
	"testing"
)

func TestResolveExplicitWins(t *testing.T) {
	r := Resolver{DetectIP: func() (string, error) {
		t.Fatal("detection should not run when explicit host is set")
		return "", nil
	}}

	got, err := r.Resolve("http://192.168.0.132:5000", "http://{{ .IP }}:{{ .Port }}", 5000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://192.168.0.132:5000" {
		t.Fatalf("unexpected host: %s", got)
	}
}

func TestResolveRendersTemplate(t *testing.T) {
	r := Resolver{DetectIP: func() (string, error) { return "192.168.1.20", nil }}

	got, err := r.Resolve("", "http://{{ .IP }}:{{ .Port }}", 5000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://192.168.1.20:5000" {
		t.Fatalf("unexpected host: %s", got)
	}
}

func TestResolveTemplateWithSprigFunctions(t *testing.T) {
	r := Resolver{DetectIP: func() (string, error) { return "192.168.1.20", nil }}

	got, err := r.Resolve("", `{{ printf "http://%s:%d" .IP .Port | lower }}/`, 5000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://192.168.1.20:5000" {
		t.Fatalf("unexpected host: %s", got)
	}
}

func TestResolveDetectionFailureFallsBackToLoopback(t *testing.T) {
	r := Resolver{DetectIP: func() (string, error) { return "", errors.New("no route") }}

	got, err := r.Resolve("", "http://{{ .IP }}:{{ .Port }}", 5000)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got != "http://127.0.0.1:5000" {
		t.Fatalf("unexpected fallback host: %s", got)
	}
}

func TestResolveBadTemplate(t *testing.T) {
	r := Resolver{DetectIP: func() (string, error) { return "192.168.1.20", nil }}

	if _, err := r.Resolve("", "http://{{ .IP", 5000); err == nil {
		t.Fatal("expected parse error")
	}
}
