package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	Store StoreConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
	Currency string // código ISO 4217 para formatear montos (COP, USD, ...)
}

// StoreConfig configuración del store local de datos.
type StoreConfig struct {
	Path     string // ruta del archivo de datos bbolt
	SeedDemo bool   // sembrar catálogo de demostración si el store está vacío
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_PATH, SEED_DEMO_DATA, etc.
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
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "pos-ventas"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Currency: getString(v, "APP_CURRENCY", "COP"),
		},
		Store: StoreConfig{
			Path:     getString(v, "DATA_PATH", "pos-ventas.db"),
			SeedDemo: getBool(v, "SEED_DEMO_DATA", true),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case bool:
			return v.GetBool(key)
		case string:
			b, err := strconv.ParseBool(v.GetString(key))
			if err != nil {
				return def
			}
			return b
		}
	}
	return def
}
