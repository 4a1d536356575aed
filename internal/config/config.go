// Package config contains utilities for loading configs
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/go-playground/validator/v10"
	"github.com/matt-dz/receitas/internal/log"
)

const (
	defaultConfigFilePath = "/data/receitas.yaml"
	configPathEnv         = "CONFIG_PATH"
)

const (
	EnvProd = "PROD"
	EnvDev  = "DEV"
)

const (
	defaultPort          = 3001
	defaultAPIBaseURL    = "http://localhost:3001"
	defaultDBHost        = "localhost"
	defaultDBPort        = 5432
	defaultImageFolder   = "receitas"
	defaultFileVolume    = "/data/files"
	defaultFileURLPrefix = "/files"
)

// DefaultAllowedOrigins are the web clients allowed to call the API when
// none are configured.
var DefaultAllowedOrigins = []string{
	"http://localhost:3004",
	"http://192.168.18.41:3004",
	"https://receitas-rose.vercel.app",
}

type ImageHostKind string

const (
	ImageHostCloudinary ImageHostKind = "cloudinary"
	ImageHostS3         ImageHostKind = "s3"
	ImageHostLocal      ImageHostKind = "local"
)

func (k ImageHostKind) Validate() error {
	switch k {
	case ImageHostCloudinary, ImageHostS3, ImageHostLocal:
		return nil
	}
	return fmt.Errorf("unknown image host: %q", k)
}

type LogLevel string

func (l LogLevel) Validate() error {
	_, err := log.ParseLevel(string(l))
	return err
}

func splitFieldList(param string) []string {
	// "A,B,C" or "A B C"
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// allOrNothing implements a cross-field validator for go-playground/validator.
//
// It succeeds only if the fields listed in the tag parameter are either all
// zero or all non-zero. It must be attached to a placeholder field and
// inspects the parent struct. Field names are given as a comma- or
// space-separated list (e.g. `validate:"allOrNothing=A,B,C"`).
//
// Nil pointers and interfaces count as zero; non-nil ones are dereferenced
// before the check. A missing parent, a non-struct parent, an unknown field
// name or an empty list fails the validation to signal misconfiguration.
func allOrNothing(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Pointer {
		if parent.IsNil() {
			return true // nothing to validate
		}
		parent = parent.Elem()
	}
	if parent.Kind() != reflect.Struct {
		return false
	}

	names := splitFieldList(fl.Param())
	if len(names) == 0 {
		return false
	}

	hasZero := false
	hasNonZero := false

	for _, name := range names {
		f := parent.FieldByName(name)
		if !f.IsValid() {
			return false // field name typo / not found
		}

		for (f.Kind() == reflect.Pointer || f.Kind() == reflect.Interface) && !f.IsNil() {
			f = f.Elem()
		}

		if f.IsZero() {
			hasZero = true
		} else {
			hasNonZero = true
		}

		if hasZero && hasNonZero {
			return false
		}
	}

	return true
}

func registerAllOrNothing(v *validator.Validate) {
	_ = v.RegisterValidation("allOrNothing", allOrNothing)
}

func formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors) //nolint:errorlint
	if !ok {
		return err
	}

	for _, e := range validationErrs {
		switch e.Tag() {
		case "allOrNothing":
			// "Config.Images.S3.Validate" -> "S3"
			parts := strings.Split(e.Namespace(), ".")
			var structName string
			//nolint:mnd
			if len(parts) >= 2 {
				structName = parts[len(parts)-2]
			}

			var fields string
			switch structName {
			case "Database":
				fields = "Port, Host, Database, User, and Password"
			case "Cloudinary":
				fields = "CloudName, APIKey, and APISecret"
			case "S3":
				fields = "AccessKey, SecretKey, Bucket, and PublicURL"
			default:
				fields = "all related fields"
			}

			return fmt.Errorf(
				"%s configuration is incomplete: either all fields must be set (%s) or all must be empty",
				structName, fields)
		case "required_without":
			return fmt.Errorf("database configuration is missing: set a database url or the database name, user and password")
		}
	}

	return err
}

type Database struct {
	URL      string `yaml:"url" validate:"omitempty,url"`
	Port     uint16 `yaml:"port"`
	Host     string `yaml:"host" validate:"omitempty,hostname_rfc1123"`
	Database string `yaml:"database" validate:"required_without=URL"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=Port Host Database User Password"`
}

// ConnString returns the Postgres connection string, preferring URL.
func (d Database) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.FormatUint(uint64(d.Port), 10)),
		Path:   "/" + d.Database,
	}
	return u.String()
}

type Cloudinary struct {
	CloudName string `yaml:"cloud_name"`
	APIKey    string `yaml:"api_key"`
	APISecret string `yaml:"api_secret"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=CloudName APIKey APISecret"`
}

type S3 struct {
	Endpoint  string `yaml:"endpoint" validate:"omitempty,url"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	PublicURL string `yaml:"public_url" validate:"omitempty,url"`

	Validate struct{} `yaml:"-" validate:"allOrNothing=AccessKey SecretKey Bucket PublicURL"`
}

type Fileserver struct {
	Volume    string `yaml:"volume"`
	URLPrefix string `yaml:"url_prefix"`
}

type Images struct {
	Host       ImageHostKind `yaml:"host" validate:"validateFn"`
	Folder     string        `yaml:"folder"`
	Cloudinary Cloudinary    `yaml:"cloudinary"`
	S3         S3            `yaml:"s3"`
	Fileserver Fileserver    `yaml:"fileserver"`
}

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins" validate:"dive,url"`
}

type Config struct {
	Port       uint16   `yaml:"port"`
	Env        string   `yaml:"env" validate:"omitempty,oneof=DEV PROD"`
	LogLevel   LogLevel `yaml:"log_level" validate:"omitempty,validateFn"`
	APIBaseURL string   `yaml:"api_base_url" validate:"url"`
	CORS       CORS     `yaml:"cors"`
	Database   Database `yaml:"database"`
	Images     Images   `yaml:"images"`
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func loadWithDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func validateConfig(conf Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	registerAllOrNothing(validate)
	if err := validate.Struct(conf); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func loadConfigFromEnv() (Config, error) {
	conf := Config{
		Env:        loadWithDefault("ENV", EnvDev),
		LogLevel:   LogLevel(loadWithDefault("LOG_LEVEL", "")),
		APIBaseURL: loadWithDefault("API_BASE_URL", defaultAPIBaseURL),
	}

	port := loadWithDefault("PORT", strconv.Itoa(defaultPort))
	if p, err := strconv.ParseUint(port, 10, 16); err != nil {
		return conf, fmt.Errorf("invalid PORT (%q): %w", port, err)
	} else {
		conf.Port = uint16(p)
	}

	// CORS
	conf.CORS.AllowedOrigins = DefaultAllowedOrigins
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		conf.CORS.AllowedOrigins = splitFieldList(origins)
	}

	// Database
	conf.Database = Database{
		URL:      loadWithDefault("DATABASE_URL", ""),
		Database: loadWithDefault("DATABASE", ""),
		User:     loadWithDefault("DATABASE_USER", ""),
		Password: loadWithDefault("DATABASE_PASSWORD", ""),
	}
	if conf.Database.URL == "" {
		conf.Database.Host = loadWithDefault("DATABASE_HOST", defaultDBHost)
		databasePort := loadWithDefault("DATABASE_PORT", strconv.Itoa(defaultDBPort))
		if p, err := strconv.ParseUint(databasePort, 10, 16); err != nil {
			return conf, fmt.Errorf("invalid DATABASE_PORT (%q): %w", databasePort, err)
		} else {
			conf.Database.Port = uint16(p)
		}
	}

	// Images
	conf.Images = Images{
		Host:   ImageHostKind(loadWithDefault("IMAGE_HOST", string(ImageHostCloudinary))),
		Folder: loadWithDefault("IMAGE_FOLDER", defaultImageFolder),
		Cloudinary: Cloudinary{
			CloudName: loadWithDefault("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    loadWithDefault("CLOUDINARY_API_KEY", ""),
			APISecret: loadWithDefault("CLOUDINARY_API_SECRET", ""),
		},
		S3: S3{
			Endpoint:  loadWithDefault("S3_ENDPOINT", ""),
			AccessKey: loadWithDefault("S3_ACCESS_KEY", ""),
			SecretKey: loadWithDefault("S3_SECRET_KEY", ""),
			Bucket:    loadWithDefault("S3_BUCKET", ""),
			Region:    loadWithDefault("S3_REGION", ""),
			PublicURL: loadWithDefault("S3_PUBLIC_URL", ""),
		},
		Fileserver: Fileserver{
			Volume:    loadWithDefault("FILESERVER_VOLUME", defaultFileVolume),
			URLPrefix: loadWithDefault("FILESERVER_URL_PREFIX", defaultFileURLPrefix),
		},
	}

	if err := validateConfig(conf); err != nil {
		return conf, err
	}
	return conf, nil
}

func loadConfigFromFile(path string) (Config, error) {
	// Read file
	contents, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	// Unmarshal into config
	var config Config
	if err := yaml.Unmarshal(contents, &config); err != nil {
		return Config{}, fmt.Errorf("unmarshaling config: %w", err)
	}

	// Set defaults
	if config.Port == 0 {
		config.Port = defaultPort
	}
	if config.Env == "" {
		config.Env = EnvDev
	}
	if config.APIBaseURL == "" {
		config.APIBaseURL = defaultAPIBaseURL
	}
	if len(config.CORS.AllowedOrigins) == 0 {
		config.CORS.AllowedOrigins = DefaultAllowedOrigins
	}
	if config.Database.URL == "" {
		if config.Database.Host == "" {
			config.Database.Host = defaultDBHost
		}
		if config.Database.Port == 0 {
			config.Database.Port = defaultDBPort
		}
	}
	if config.Images.Host == "" {
		config.Images.Host = ImageHostCloudinary
	}
	if config.Images.Folder == "" {
		config.Images.Folder = defaultImageFolder
	}
	if config.Images.Fileserver.Volume == "" {
		config.Images.Fileserver.Volume = defaultFileVolume
	}
	if config.Images.Fileserver.URLPrefix == "" {
		config.Images.Fileserver.URLPrefix = defaultFileURLPrefix
	}

	// Validate config
	if err := validateConfig(config); err != nil {
		return Config{}, err
	}

	return config, nil
}

func configFileExists(path string) bool {
	f, err := os.Lstat(path)
	if err != nil {
		return false
	}

	return !f.IsDir()
}

// LoadConfig reads the config file when there is one and the environment
// otherwise.
func LoadConfig() (Config, error) {
	path := loadWithDefault(configPathEnv, defaultConfigFilePath)
	if configFileExists(path) {
		return loadConfigFromFile(path)
	}

	return loadConfigFromEnv()
}
