package config

import (
	"strings"
	"testing"
)

func TestValidate_ValidConfig(t *testing.T) {
	cfg := MinimalConfig()

	err := Validate(cfg)
	if err != nil {
		t.Errorf("expected valid config to pass validation, got error: %v", err)
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := &Config{}

	err := Validate(cfg)
	if err == nil {
		t.Fatal("expected validation to fail")
	}

	validationErr, ok := err.(ValidationError)
	if !ok {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	if len(validationErr.Errors) < 2 {
		t.Errorf("expected multiple errors, got %d", len(validationErr.Errors))
	}

	errMsg := validationErr.Error()
	if !strings.Contains(errMsg, "validation failed with") {
		t.Errorf("error message should mention multiple errors: %s", errMsg)
	}
}

func TestValidate_Fields(t *testing.T) {
	tests := []struct {
		name       string
		cfg        *Config
		wantError  bool
		errorField string
	}{
		{
			name:       "missing cluster",
			cfg:        NewTestConfig().WithCluster("  ").Build(),
			wantError:  true,
			errorField: "cluster_identifier",
		},
		{
			name:       "zero magnitude",
			cfg:        NewTestConfig().WithTTL(0, "day").Build(),
			wantError:  true,
			errorField: "ttl.magnitude",
		},
		{
			name:      "unknown unit is allowed",
			cfg:       NewTestConfig().WithTTL(3, "fortnight").Build(),
			wantError: false,
		},
		{
			name:       "target is not an ARN",
			cfg:        NewTestConfig().WithTarget("ops-alerts", false).Build(),
			wantError:  true,
			errorField: "notification.target",
		},
		{
			name:      "target is an ARN",
			cfg:       NewTestConfig().WithTarget("arn:aws:sns:us-east-1:123456789012:ops", true).Build(),
			wantError: false,
		},
		{
			name:       "half a credential pair",
			cfg:        NewTestConfig().WithStaticCredentials("AKIDEXAMPLE", "").Build(),
			wantError:  true,
			errorField: "aws.access_key_id",
		},
		{
			name:      "full credential pair",
			cfg:       NewTestConfig().WithStaticCredentials("AKIDEXAMPLE", "secret").Build(),
			wantError: false,
		},
		{
			name:       "bad schedule",
			cfg:        NewTestConfig().WithSchedule("every hour").Build(),
			wantError:  true,
			errorField: "schedule",
		},
		{
			name:       "negative shutdown timeout",
			cfg:        NewTestConfig().WithShutdownTimeout(-1).Build(),
			wantError:  true,
			errorField: "server.shutdown_timeout",
		},
		{
			name:       "bad log level",
			cfg:        NewTestConfig().WithLoggingLevel("verbose").Build(),
			wantError:  true,
			errorField: "telemetry.logging.level",
		},
		{
			name: "tracing ratio out of range",
			cfg: func() *Config {
				cfg := MinimalConfig()
				cfg.Telemetry.Tracing.Enabled = true
				cfg.Telemetry.Tracing.Sampler = "ratio"
				cfg.Telemetry.Tracing.SampleRatio = 1.5
				return cfg
			}(),
			wantError:  true,
			errorField: "telemetry.tracing.sample_ratio",
		},
		{
			name: "tracing sampler ignored when disabled",
			cfg: func() *Config {
				cfg := MinimalConfig()
				cfg.Telemetry.Tracing.Sampler = "sometimes"
				return cfg
			}(),
			wantError: false,
		},
		{
			name:       "bad log format",
			cfg:        NewTestConfig().WithLoggingFormat("xml").Build(),
			wantError:  true,
			errorField: "telemetry.logging.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.cfg)

			if tt.wantError {
				if err == nil {
					t.Fatal("expected validation error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorField) {
					t.Errorf("expected error about %q, got: %v", tt.errorField, err)
				}
			} else if err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestWarnings(t *testing.T) {
	if w := Warnings(MinimalConfig()); len(w) != 0 {
		t.Errorf("expected no warnings, got %v", w)
	}

	cfg := NewTestConfig().WithTTL(3, "fortnight").Build()
	cfg.Notification.PublishOnSuccess = true

	w := Warnings(cfg)
	if len(w) != 2 {
		t.Fatalf("expected 2 warnings, got %v", w)
	}
	if !strings.Contains(w[0], "fortnight") {
		t.Errorf("expected unit warning, got %q", w[0])
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  ValidationError
		want string
	}{
		{
			name: "no errors",
			err:  ValidationError{},
			want: "configuration validation failed",
		},
		{
			name: "single error",
			err:  ValidationError{Errors: []FieldError{{Field: "ttl.magnitude", Message: "must be positive, got 0"}}},
			want: "configuration validation failed: ttl.magnitude: must be positive, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
