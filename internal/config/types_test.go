package config

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/giantswarm/tconsole/pkg/console"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, console.DefaultPromptText, cfg.Prompt)
	assert.Equal(t, console.DefaultUnrecognizedInputText, cfg.UnrecognizedText)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.NotEmpty(t, cfg.HistoryFile)
	assert.Empty(t, cfg.ActiveCommands)
	assert.False(t, cfg.Validate().HasErrors())
}

func TestConsoleConfig_ConsoleTexts(t *testing.T) {
	cfg := ConsoleConfig{Prompt: "> ", UnrecognizedText: "eh?"}

	assert.Equal(t, console.Config{DefaultPrompt: "> ", UnrecognizedText: "eh?"}, cfg.ConsoleTexts())
}

func TestConsoleConfig_Validate(t *testing.T) {
	tests := []struct {
		name       string
		config     ConsoleConfig
		wantFields []string
	}{
		{
			name:   "empty config is valid",
			config: ConsoleConfig{},
		},
		{
			name:   "warning is accepted as a level",
			config: ConsoleConfig{LogLevel: "WARNING"},
		},
		{
			name:       "unknown log level",
			config:     ConsoleConfig{LogLevel: "chatty"},
			wantFields: []string{"logLevel"},
		},
		{
			name:       "blank command with a space",
			config:     ConsoleConfig{BlankCommand: "show status"},
			wantFields: []string{"blankCommand"},
		},
		{
			name:       "empty and spaced active command names",
			config:     ConsoleConfig{ActiveCommands: []string{"", "ok", "not ok"}},
			wantFields: []string{"activeCommands[0]", "activeCommands[2]"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := tc.config.Validate()

			var fields []string
			for _, e := range errs {
				fields = append(fields, e.Field)
			}
			assert.Equal(t, tc.wantFields, fields)
			assert.Equal(t, len(tc.wantFields) > 0, errs.HasErrors())
		})
	}
}

func TestValidationErrors_Error(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "no validation errors", errs.Error())

	errs.Add("prompt", "too long")
	assert.Equal(t, "field 'prompt': too long", errs.Error())

	errs.Add("", "global failure")
	assert.Equal(t, "validation failed: field 'prompt': too long; global failure", errs.Error())
}

func TestConfigurationError_DetailedError(t *testing.T) {
	ce := NewConfigurationErrorWithDetails("/etc/tconsole/config.yaml", ErrorTypeParse,
		"malformed yaml", "line 3: mapping values are not allowed", []string{"check indentation"})

	assert.Equal(t, "[parse] config.yaml: malformed yaml", ce.Error())
	report := ce.DetailedError()
	assert.Contains(t, report, "File: /etc/tconsole/config.yaml")
	assert.Contains(t, report, "Details: line 3")
	assert.Contains(t, report, "    - check indentation")
}

func TestConfigurationErrorCollection(t *testing.T) {
	cec := ConfigurationErrorCollection{}
	assert.False(t, cec.HasErrors())
	assert.Equal(t, "no configuration errors", cec.Error())

	cec.Add(NewConfigurationError("a.yaml", ErrorTypeIO, "denied"))
	assert.Equal(t, "[io] a.yaml: denied", cec.Error())

	cec.Add(NewConfigurationError("a.yaml", ErrorTypeValidation, "bad"))
	assert.True(t, cec.HasErrors())
	assert.Equal(t, "2 configuration errors: [io] a.yaml: denied (and 1 more)", cec.Error())
}
