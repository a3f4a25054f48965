//go:build integration

package test

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

// offlineEnv keeps the AWS SDK from reaching for real credentials.
func offlineEnv() []string {
	return append(os.Environ(),
		"SNAPPER_AWS_REGION=us-east-1",
		"SNAPPER_AWS_ACCESS_KEY_ID=test",
		"SNAPPER_AWS_SECRET_ACCESS_KEY=test",
		"AWS_LAMBDA_RUNTIME_API=",
	)
}

// TestServeStartStop tests serve mode endpoints and graceful shutdown
func TestServeStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "snapper.yaml")
	createTestConfig(t, configFile, `
cluster_identifier: orders-aurora
ttl:
  magnitude: 30
  unit: minute
schedule: "0 3 * * *"
server:
  listen_address: "127.0.0.1:19090"
  shutdown_timeout: 5s
telemetry:
  logging:
    level: debug
    format: json
`)

	binaryPath := buildSnapperBinary(t)

	cmd := exec.Command(binaryPath, "serve", "--config", configFile)
	cmd.Env = offlineEnv()
	cmd.Dir = tmpDir
	if err := cmd.Start(); err != nil {
		t.Fatalf("failed to start snapper: %v", err)
	}
	defer func() {
		if cmd.ProcessState == nil {
			cmd.Process.Kill()
		}
	}()

	if !waitForHealthy("http://127.0.0.1:19090/healthz", 10*time.Second) {
		t.Fatal("server did not become healthy")
	}

	resp, err := http.Get("http://127.0.0.1:19090/readyz")
	if err != nil {
		t.Fatalf("readyz request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("readyz status = %d, want 200", resp.StatusCode)
	}

	resp, err = http.Get("http://127.0.0.1:19090/metrics")
	if err != nil {
		t.Fatalf("metrics request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(body), "snapper_last_success_timestamp_seconds") {
		t.Errorf("metrics output missing snapper metrics:\n%s", body)
	}

	if err := cmd.Process.Signal(syscall.SIGTERM); err != nil {
		t.Fatalf("failed to signal snapper: %v", err)
	}

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("snapper exited with error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("snapper did not shut down")
	}
}

// TestValidateCommand tests exit codes and output of snapper validate
func TestValidateCommand(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	binaryPath := buildSnapperBinary(t)

	tests := []struct {
		name     string
		config   string
		wantCode int
	}{
		{
			name:     "valid",
			config:   "cluster_identifier: orders-aurora\n",
			wantCode: 0,
		},
		{
			name:     "missing cluster",
			config:   "ttl:\n  magnitude: 30\n",
			wantCode: 2,
		},
		{
			name:     "bad notification target",
			config:   "cluster_identifier: c1\nnotification:\n  target: my-topic\n",
			wantCode: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configFile := filepath.Join(t.TempDir(), "snapper.yaml")
			createTestConfig(t, configFile, tt.config)

			cmd := exec.Command(binaryPath, "validate", "--config", configFile)
			cmd.Env = offlineEnv()
			output, err := cmd.Output()

			code := 0
			if exitErr, ok := err.(*exec.ExitError); ok {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("failed to run validate: %v", err)
			}
			if code != tt.wantCode {
				t.Fatalf("exit code = %d, want %d", code, tt.wantCode)
			}

			if tt.wantCode == 0 {
				var result map[string]any
				if err := json.Unmarshal(output, &result); err != nil {
					t.Fatalf("validate output is not JSON: %v\n%s", err, output)
				}
				if result["prefix"] != "snapper-30-minute-orders-aurora" {
					t.Errorf("prefix = %v", result["prefix"])
				}
			}
		})
	}
}

// TestCommandVersionOutput tests the version command
func TestCommandVersionOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	binaryPath := buildSnapperBinary(t)

	output, err := exec.Command(binaryPath, "version").CombinedOutput()
	if err != nil {
		t.Fatalf("version command failed: %v\nOutput: %s", err, output)
	}

	for _, want := range []string{"Snapper", "Git Commit:", "Go Version:"} {
		if !strings.Contains(string(output), want) {
			t.Errorf("version output missing %q:\n%s", want, output)
		}
	}
}

// Helper functions

func createTestConfig(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to create config: %v", err)
	}
}

func buildSnapperBinary(t *testing.T) string {
	t.Helper()

	binaryPath := "../bin/snapper"
	if _, err := os.Stat(binaryPath); err == nil {
		return binaryPath
	}

	t.Log("Building snapper binary...")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../cmd/snapper")
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("failed to build snapper: %v\nOutput: %s", err, output)
	}

	return binaryPath
}

// waitForHealthy waits for a health endpoint to return 200
func waitForHealthy(url string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	client := &http.Client{Timeout: 1 * time.Second}

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return true
		}
		if resp != nil {
			resp.Body.Close()
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
