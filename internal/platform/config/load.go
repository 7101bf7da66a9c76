package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// listKeys are koanf keys whose env value is a comma-separated list.
var listKeys = map[string]bool{
	"edge.cors.allowed_origins": true,
	"edge.trusted_proxies":      true,
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configDir string
}

// WithConfigDir sets the directory where config YAML files are located.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) {
		o.configDir = dir
	}
}

// Load reads configuration using a layered hierarchy (highest precedence last):
//
//  1. Built-in defaults
//  2. Base config ({configDir}/base.yaml)
//  3. Profile config ({configDir}/{profile}.yaml)
//  4. Deployment variables inherited from the Node backend (HUBSPOT_ACCESS_TOKEN,
//     GMAIL_USER, ADMIN_EMAIL, ...), see legacyEnv
//  5. Environment variables (APP_ prefix)
//
// Environment variable mapping uses key matching against loaded config keys
// to resolve ambiguity between nesting separators and field-internal underscores:
//
//	APP_SERVER_PORT                 -> server.port
//	APP_CRM_ACCESS_TOKEN            -> crm.access_token
//	APP_EDGE_RATE_LIMIT_MAX_REQUESTS -> edge.rate_limit.max_requests
//	APP_EDGE_CORS_ALLOWED_ORIGINS   -> edge.cors.allowed_origins (comma-separated)
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	for key, val := range defaults() {
		if err := k.Set(key, val); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	basePath := filepath.Join(o.configDir, "base.yaml")
	if err := k.Load(file.Provider(basePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading base config %s: %w", basePath, err)
	}

	profilePath := filepath.Join(o.configDir, profile+".yaml")
	if err := k.Load(file.Provider(profilePath), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading profile config %s: %w", profilePath, err)
	}

	if err := applyLegacyEnv(k, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("loading legacy env vars: %w", err)
	}

	// Reverse lookup from known keys so that APP_SERVER_READ_TIMEOUT resolves
	// to "server.read_timeout" rather than "server.read.timeout".
	envLookup := buildEnvLookup(k.Keys())

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))

			koanfKey, ok := envLookup[key]
			if !ok {
				koanfKey = strings.ReplaceAll(key, "_", ".")
			}
			if listKeys[koanfKey] {
				return koanfKey, splitList(value)
			}
			return koanfKey, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// legacyEnv maps the variable names used by existing deployments to config
// keys. Milliseconds are converted for RATE_LIMIT_WINDOW_MS.
var legacyEnv = []struct {
	name string
	key  string
}{
	{"PORT", "server.port"},
	{"HUBSPOT_ACCESS_TOKEN", "crm.access_token"},
	{"GMAIL_USER", "mail.smtp.username"},
	{"GMAIL_APP_PASSWORD", "mail.smtp.password"},
	{"FROM_NAME", "mail.from_name"},
	{"FROM_EMAIL", "mail.from_address"},
	{"ADMIN_EMAIL", "mail.admin_address"},
	{"RATE_LIMIT_MAX_REQUESTS", "edge.rate_limit.max_requests"},
	{"RATE_LIMIT_WINDOW_MS", "edge.rate_limit.window"},
}

func applyLegacyEnv(k *koanf.Koanf, lookup func(string) (string, bool)) error {
	var errs []error

	for _, le := range legacyEnv {
		val, ok := lookup(le.name)
		if !ok || val == "" {
			continue
		}

		var v any = val
		if le.name == "RATE_LIMIT_WINDOW_MS" {
			ms, err := strconv.Atoi(val)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s must be an integer, got %q", le.name, val))
				continue
			}
			v = (time.Duration(ms) * time.Millisecond).String()
		}
		if err := k.Set(le.key, v); err != nil {
			errs = append(errs, fmt.Errorf("setting %s from %s: %w", le.key, le.name, err))
		}
	}

	// Gmail sends as the authenticated user unless told otherwise.
	if user, ok := lookup("GMAIL_USER"); ok && user != "" {
		if k.String("mail.from_address") == "" {
			_ = k.Set("mail.from_address", user)
		}
		if k.String("mail.admin_address") == "" {
			_ = k.Set("mail.admin_address", user)
		}
	}

	if frontend, ok := lookup("FRONTEND_URL"); ok && frontend != "" {
		origins := k.Strings("edge.cors.allowed_origins")
		if !slices.Contains(origins, frontend) {
			_ = k.Set("edge.cors.allowed_origins", append([]string{frontend}, origins...))
		}
	}

	return errors.Join(errs...)
}

// validateProfile checks that the profile name is safe and non-empty.
func validateProfile(profile string) error {
	if strings.TrimSpace(profile) == "" {
		return errors.New("profile must not be empty")
	}
	if strings.ContainsAny(profile, `/\`) {
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	}
	if strings.Contains(profile, "..") {
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}

// buildEnvLookup creates a reverse mapping from env-style keys to koanf dotted keys.
func buildEnvLookup(keys []string) map[string]string {
	lookup := make(map[string]string, len(keys))
	for _, key := range keys {
		lookup[strings.ReplaceAll(key, ".", "_")] = key
	}
	return lookup
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
