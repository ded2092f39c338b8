package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port           string `mapstructure:"PORT"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`

	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME"`

	RedisAddr string `mapstructure:"REDIS_ADDR"`

	AccessSecret string `mapstructure:"ACCESS_SECRET"`
	BcryptCost   int    `mapstructure:"BCRYPT_COST"`

	// Счет платформы, куда уходит комиссия и плата за сторадж
	VaultAccount string `mapstructure:"VAULT_ACCOUNT"`
	// Стартовый список админов, через запятую
	SeedAdmins string `mapstructure:"SEED_ADMINS"`
	// Цена байта персистентного состояния (в минимальных единицах)
	StorageByteCost int64 `mapstructure:"STORAGE_BYTE_COST"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	// ВАЖНО: явно биндим, чтобы Viper видел переменные без файла
	viper.BindEnv("PORT")
	viper.BindEnv("ALLOWED_ORIGINS")
	viper.BindEnv("DB_HOST")
	viper.BindEnv("DB_PORT")
	viper.BindEnv("DB_USER")
	viper.BindEnv("DB_PASSWORD")
	viper.BindEnv("DB_NAME")
	viper.BindEnv("REDIS_ADDR")
	viper.BindEnv("ACCESS_SECRET")
	viper.BindEnv("BCRYPT_COST")
	viper.BindEnv("VAULT_ACCOUNT")
	viper.BindEnv("SEED_ADMINS")
	viper.BindEnv("STORAGE_BYTE_COST")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("BCRYPT_COST", 10)
	viper.SetDefault("VAULT_ACCOUNT", "artemis.vault")
	viper.SetDefault("SEED_ADMINS", "e-learning,juanochando")
	viper.SetDefault("STORAGE_BYTE_COST", 100)

	err = viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		// Файла нет — работаем на ENV
	}

	err = viper.Unmarshal(&config)
	return
}

// OriginList разбирает ALLOWED_ORIGINS
func (c Config) OriginList() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{"http://localhost:3000"}
	}
	return out
}

// SeedAdminList разбирает SEED_ADMINS
func (c Config) SeedAdminList() []string {
	var out []string
	for _, id := range strings.Split(c.SeedAdmins, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			out = append(out, id)
		}
	}
	return out
}
