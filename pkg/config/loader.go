package config

import (
	stderrors "errors"
	"os"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/see/pkg/errors"
	"github.com/arthur-debert/see/pkg/logging"
	"github.com/arthur-debert/see/pkg/paths"
	"github.com/arthur-debert/see/pkg/types"
)

// DefaultShell runs rendered commands unless settings.shell overrides it
const DefaultShell = "/bin/sh"

// Config is a loaded configuration document
type Config struct {
	// Path is the config path as given to Load (not home-expanded)
	Path string

	// Rules are the validated command rules
	Rules *types.RuleSet

	// Shell executes rendered commands
	Shell string
}

// Load reads, parses and validates the configuration file at path.
//
// A leading ~ is expanded. The format is picked from the extension (.yaml
// and .yml are YAML, anything else TOML). Errors carry one of the codes
// CONFIG_NOT_FOUND, CONFIG_READ, CONFIG_PARSE or CONFIG_INVALID.
func Load(path string) (*Config, error) {
	logger := logging.GetLogger("config.loader")
	done := logging.LogOperationStart(logger, "load config")
	defer done()

	expanded := paths.ExpandHome(path)
	logger.Debug().Str("path", path).Str("expanded", expanded).Msg("Reading config")

	data, err := file.Provider(expanded).ReadBytes()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigNotFound,
				"unable to read config %q", path).WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrConfigRead,
			"unable to read config %q", path).WithDetail("path", path)
	}

	cfg, err := load(data, FormatForPath(expanded), path)
	if err != nil {
		return nil, err
	}
	cfg.Path = path

	logger.Info().
		Str("path", path).
		Int("patterns", len(cfg.Rules.Patterns())).
		Int("rules", cfg.Rules.Len()).
		Msg("Loaded config")

	return cfg, nil
}

// LoadBytes parses and validates a configuration document held in memory
func LoadBytes(data []byte, format Format) (*Config, error) {
	return load(data, format, "<bytes>")
}

func load(data []byte, format Format, source string) (*Config, error) {
	raw, err := format.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse,
			"unable to parse %s config %q", format, source).WithDetail("path", source)
	}

	rules, err := buildRuleSet(raw, documentOrder(format, data))
	if err != nil {
		return nil, withPath(err, source)
	}

	k, err := settingsKoanf(raw)
	if err != nil {
		return nil, err
	}

	shell, err := shellSetting(k)
	if err != nil {
		return nil, withPath(err, source)
	}

	return &Config{Rules: rules, Shell: shell}, nil
}

// settingsKoanf loads the settings table, and nothing else, into koanf.
// Pattern keys under actions contain dots and stay out of it.
func settingsKoanf(raw map[string]interface{}) (*koanf.Koanf, error) {
	k := koanf.New(".")

	settings, ok := raw[keySettings]
	if !ok {
		return k, nil
	}

	doc := map[string]interface{}{keySettings: settings}
	if err := k.Load(confmap.Provider(doc, ""), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to load settings")
	}
	return k, nil
}

// shellSetting reads settings.shell, falling back to DefaultShell
func shellSetting(k *koanf.Koanf) (string, error) {
	if !k.Exists(keySettings) {
		return DefaultShell, nil
	}
	if _, err := asTable(k.Get(keySettings)); err != nil {
		return "", invalidf(keySettings, "'settings' expected table, found %s", describe(k.Get(keySettings)))
	}
	if !k.Exists("settings.shell") {
		return DefaultShell, nil
	}
	shell, ok := k.Get("settings.shell").(string)
	if !ok || shell == "" {
		return "", invalidf("settings.shell", "'shell' expected non-empty string, found %s",
			describe(k.Get("settings.shell")))
	}
	return shell, nil
}

// withPath returns a copy of a validation error with the config source
// prefixed to its message and recorded as the path detail
func withPath(err error, source string) error {
	var seeErr *errors.SeeError
	if !stderrors.As(err, &seeErr) {
		return err
	}

	msg := "config " + quote(source) + " invalid: " + seeErr.Message
	out := errors.New(seeErr.Code, msg)
	if seeErr.Wrapped != nil {
		out = errors.Wrap(seeErr.Wrapped, seeErr.Code, msg)
	}
	return out.WithDetails(seeErr.Details).WithDetail("path", source)
}
