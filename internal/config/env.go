package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables read by [ApplyEnv].
const (
	EnvTemplate      = "MEDIARENAME_TEMPLATE"
	EnvPattern       = "MEDIARENAME_PATTERN"
	EnvTemplatesFile = "MEDIARENAME_TEMPLATES_FILE"
	EnvMetadataFile  = "MEDIARENAME_METADATA_FILE"
	EnvLog           = "MEDIARENAME_LOG"
	EnvInfer         = "MEDIARENAME_INFER"
)

// DefaultEnvFile is the dotenv file looked up in the working directory.
const DefaultEnvFile = ".env"

// ApplyEnv overlays settings from envFile (dotenv format; a missing file is
// fine) and then from the process environment, which wins. Flags parsed
// later override both.
func ApplyEnv(cfg *Config, envFile string) error {
	vals := map[string]string{}
	if envFile != "" {
		fileVals, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: read %s: %w", envFile, err)
		}
		for k, v := range fileVals {
			vals[k] = v
		}
	}
	for _, k := range []string{EnvTemplate, EnvPattern, EnvTemplatesFile, EnvMetadataFile, EnvLog, EnvInfer} {
		if v, ok := os.LookupEnv(k); ok {
			vals[k] = v
		}
	}

	if v := strings.TrimSpace(vals[EnvTemplate]); v != "" {
		cfg.TemplateName = v
	}
	if v := vals[EnvPattern]; strings.TrimSpace(v) != "" {
		cfg.Pattern = v
	}
	if v := strings.TrimSpace(vals[EnvTemplatesFile]); v != "" {
		cfg.TemplatesFile = v
	}
	if v := strings.TrimSpace(vals[EnvMetadataFile]); v != "" {
		cfg.MetadataFile = v
	}
	if v := strings.TrimSpace(vals[EnvLog]); v != "" {
		cfg.LogFile = v
	}
	if v := strings.TrimSpace(vals[EnvInfer]); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s must be a boolean (got %q)", EnvInfer, v)
		}
		cfg.InferMetadata = b
	}
	return nil
}
