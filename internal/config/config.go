// Configuration is loaded from a yaml file placed on the server and
// validated against the rules in validation.go before the service starts.

package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/commercegate/paylink-console-service/internal/gateways"
)

type (
	DatabaseType string
	CacheType    string
)

const (
	Mysql    DatabaseType = "mysql"
	Inmemory DatabaseType = "inmemory"

	CacheRedis    CacheType = "redis"
	CacheInmemory CacheType = "inmemory"
)

type (
	Application struct {
		Service  ServiceConfig   `yaml:"service"`
		Server   ServerConfig    `yaml:"server"`
		Database DatabaseConfig  `yaml:"database"`
		Cache    CacheConfig     `yaml:"cache"`
		Security SecurityConfig  `yaml:"security"`
		Logging  LoggingConfig   `yaml:"logging"`
		Gateways []GatewayConfig `yaml:"gateways"`
	}

	ServiceConfig struct {
		Name string `yaml:"name"`
		// base url of the upstream payment-link API
		PaylinkAPI string `yaml:"paylink_api"`
		// base url of the shop profile service
		ShopService string `yaml:"shop_service"`
		// empty list means any currency is accepted
		AllowedCurrencies []string `yaml:"allowed_currencies"`
	}

	ServerConfig struct {
		BaseAddress  string `yaml:"address"`
		Port         int    `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout_seconds"`
		WriteTimeout int    `yaml:"write_timeout_seconds"`
		IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	}

	DatabaseConfig struct {
		Use        DatabaseType `yaml:"use"`
		Username   string       `yaml:"username"`
		Password   string       `yaml:"password"`
		Database   string       `yaml:"database"`
		Parameters []string     `yaml:"parameters"`
	}

	CacheConfig struct {
		Use        CacheType `yaml:"use"`
		RedisURL   string    `yaml:"redis_url"`
		TTLSeconds int       `yaml:"ttl_seconds"`
	}

	SecurityConfig struct {
		Fixed FixedTokenConfig `yaml:"fixed_token"`
		Oidc  OidcConfig       `yaml:"oidc"`
		Cors  CorsConfig       `yaml:"cors"`
	}

	FixedTokenConfig struct {
		Api string `yaml:"api"`
	}

	OidcConfig struct {
		TokenCookieName    string   `yaml:"token_cookie_name"`
		AdminRole          string   `yaml:"admin_role"`
		TokenPublicKeysPEM []string `yaml:"token_public_keys_PEM"`
	}

	CorsConfig struct {
		DisableCors bool   `yaml:"disable"`
		AllowOrigin string `yaml:"allow_origin"`
	}

	LoggingConfig struct {
		Severity string `yaml:"severity"`
	}

	// GatewayConfig overrides one entry of the compiled-in gateway
	// catalog. When the gateways list is empty the default catalog is
	// used.
	GatewayConfig struct {
		ID          string   `yaml:"id"`
		Name        string   `yaml:"name"`
		DisplayName string   `yaml:"display_name"`
		Description string   `yaml:"description"`
		Features    []string `yaml:"features"`
		Color       string   `yaml:"color"`
		Fee         string   `yaml:"fee"`
		Payout      string   `yaml:"payout"`
	}
)

var appConfig *Application

func UnmarshalFromYamlConfiguration(file io.Reader) (*Application, error) {
	d := yaml.NewDecoder(file)
	d.KnownFields(true)

	conf := &Application{}
	if err := d.Decode(conf); err != nil {
		return nil, err
	}

	return conf, nil
}

// LoadConfiguration reads, parses and validates the configuration file
// and caches it for GetApplicationConfig.
func LoadConfiguration(configFilePath string, logFunc func(format string, v ...interface{})) (*Application, error) {
	if configFilePath == "" {
		return nil, errors.New("no configuration file name provided")
	}

	f, err := os.Open(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open configuration file %s: %w", configFilePath, err)
	}
	defer f.Close()

	conf, err := UnmarshalFromYamlConfiguration(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}

	if err := Validate(conf, logFunc); err != nil {
		return nil, err
	}

	appConfig = conf
	return conf, nil
}

func GetApplicationConfig() (*Application, error) {
	if appConfig == nil {
		return nil, errors.New("configuration was not yet loaded")
	}

	return appConfig, nil
}

// GatewayRegistry builds the immutable gateway registry for this
// configuration, falling back to the compiled-in catalog.
func (a *Application) GatewayRegistry() (*gateways.Registry, error) {
	if len(a.Gateways) == 0 {
		return gateways.NewDefaultRegistry(), nil
	}

	descriptors := make([]gateways.Descriptor, 0, len(a.Gateways))
	for _, g := range a.Gateways {
		descriptors = append(descriptors, gateways.Descriptor{
			ID:            g.ID,
			CanonicalName: g.Name,
			DisplayName:   g.DisplayName,
			Description:   g.Description,
			FeatureTags:   g.Features,
			ColorTag:      g.Color,
			FeeRate:       g.Fee,
			PayoutTerm:    g.Payout,
		})
	}

	return gateways.NewRegistry(descriptors)
}

// CacheTTLSeconds returns the configured list/detail cache lifetime with
// a sane default.
func (c CacheConfig) CacheTTLSeconds() int {
	if c.TTLSeconds <= 0 {
		return 60
	}

	return c.TTLSeconds
}
