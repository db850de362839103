package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTP           HTTP
	Logger         Logger
	Postgres       Postgres
	AuthServiceURL string `env:"AUTH_SERVICE_URL"`
	Kafka          Kafka
	Gateway        Gateway
	Tax            Tax
}

type HTTP struct {
	Port          int    `env:"HTTP_PORT" envDefault:"8080"`
	APIKeyEnabled bool   `env:"HTTP_API_KEY_ENABLED" envDefault:"false"`
	APIKey        string `env:"HTTP_API_KEY" envDefault:"dev"`
}

type Logger struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type Postgres struct {
	DSN     string `env:"POSTGRES_DSN"`
	MaxConn int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
}

type Kafka struct {
	Brokers               []string `env:"KAFKA_BROKERS"`
	PaymentCompletedTopic string   `env:"KAFKA_PAYMENT_COMPLETED_TOPIC"`
}

// Gateway holds the payment gateway account and the notification secret the
// gateway signs webhook calls with.
type Gateway struct {
	Receiver     string `env:"GATEWAY_RECEIVER"`
	Secret       string `env:"GATEWAY_NOTIFICATION_SECRET"`
	CheckoutURL  string `env:"GATEWAY_CHECKOUT_URL" envDefault:"https://yoomoney.ru/quickpay/confirm.xml"`
	SuccessURL   string `env:"GATEWAY_SUCCESS_URL"`
	BuyerPaysFee bool   `env:"GATEWAY_BUYER_PAYS_FEE" envDefault:"true"`
}

type Tax struct {
	BaseURL string `env:"TAX_API_BASE_URL"`
	Token   string `env:"TAX_API_TOKEN"`
	INN     string `env:"TAX_PAYER_INN"`
}

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
