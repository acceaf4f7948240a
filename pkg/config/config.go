package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Dataset  DatasetConfig
	Identity IdentityConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de los tokens de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// DatasetConfig origen del dataset de ventas.
// Si Path no está vacío se lee de disco; si no, se descarga desde URL.
type DatasetConfig struct {
	URL            string // URL del CSV "Warehouse and Retail Sales"
	Path           string // ruta local opcional (modo offline / desarrollo)
	TimeoutSeconds int    // timeout de la descarga HTTP
}

// IdentityConfig proveedor externo de credenciales (API estilo Identity Toolkit).
// Si BaseURL o APIKey están vacíos se usa el proveedor local en memoria.
type IdentityConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
}

// UseLocalProvider indica si debe usarse el proveedor de identidad en memoria.
func (c IdentityConfig) UseLocalProvider() bool {
	return c.BaseURL == "" || c.APIKey == ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, DATASET_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// Bind de variables de entorno (Viper las lee automáticamente si AutomaticEnv está activo)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "sales-dashboard"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "sales-dashboard"),
		},
		Dataset: DatasetConfig{
			URL:            getString(v, "DATASET_URL", ""),
			Path:           getString(v, "DATASET_PATH", ""),
			TimeoutSeconds: getInt(v, "DATASET_TIMEOUT_SECONDS", 30),
		},
		Identity: IdentityConfig{
			BaseURL:        getString(v, "IDENTITY_BASE_URL", ""),
			APIKey:         getString(v, "IDENTITY_API_KEY", ""),
			TimeoutSeconds: getInt(v, "IDENTITY_TIMEOUT_SECONDS", 10),
		},
	}

	if cfg.Dataset.URL == "" && cfg.Dataset.Path == "" {
		return nil, fmt.Errorf("config: DATASET_URL o DATASET_PATH es requerido")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
